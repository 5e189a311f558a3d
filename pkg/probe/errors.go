package probe

import "errors"

var (
	errNoAddress = errors.New("no IPv4 address for host")
	errShortPong = errors.New("unconnected pong too short")
	errBadMagic  = errors.New("unconnected pong carries wrong magic")
)
