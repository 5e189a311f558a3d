package api

import "errors"

var (
	errUnknownCommand  = errors.New("unknown command")
	errRateLimited     = errors.New("rate limited")
	errHistoryDisabled = errors.New("history is disabled")
	errInvalidBody     = errors.New("invalid request body")
	errFailedToListen  = errors.New("failed to listen")
)
