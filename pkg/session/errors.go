package session

import "errors"

var (
	ErrSessionExists    = errors.New("a managed session already exists")
	ErrControllerClosed = errors.New("session controller is closed")
	ErrOpenFailed       = errors.New("failed to instantiate client")
	ErrNotConnected     = errors.New("client is not connected")
)
