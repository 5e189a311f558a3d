package agent

import "errors"

var (
	errFailedToCreateDataDir = errors.New("failed to create data directory")
	errFailedToOpenStore     = errors.New("failed to open history store")
	errFailedToStartDash     = errors.New("failed to start dashboard")
)
