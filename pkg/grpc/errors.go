package grpc

import (
	"errors"
)

var (
	errInternalError          = errors.New("internal error")
	errHealthServerRegistered = errors.New("health server already registered")
	errFailedToListen         = errors.New("failed to listen")
	errFailedToServe          = errors.New("failed to serve")
	errNotListening           = errors.New("server is not listening")
)
