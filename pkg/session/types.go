package session

import (
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
)

type EventType int

const (
	EventJoin EventType = iota + 1
	EventSpawn
	EventError
	EventDisconnect
	EventClose
	EventChat
)

var eventNames = map[EventType]string{
	EventJoin:       "join",
	EventSpawn:      "spawn",
	EventError:      "error",
	EventDisconnect: "disconnect",
	EventClose:      "close",
	EventChat:       "chat",
}

func (t EventType) String() string {
	if n, ok := eventNames[t]; ok {
		return n
	}

	return "unknown"
}

// Event is a lifecycle signal reported by a Client.
type Event struct {
	Type   EventType
	Err    error
	Reason string
	Chat   *models.ChatEntry
}

// Movement is a low impact positional update used to look active.
type Movement struct {
	X, Y, Z float32
	Pitch   float32
	Yaw     float32
	HeadYaw float32
}

// Outcome of a best-effort emission. Failures are logged, never returned.
type Outcome int

const (
	Sent Outcome = iota
	Skipped
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Sent:
		return "sent"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

type KeepAliveConfig struct {
	MinInterval time.Duration
	MaxInterval time.Duration
}

func (k KeepAliveConfig) withDefaults() KeepAliveConfig {
	if k.MinInterval <= 0 {
		k.MinInterval = 45 * time.Second
	}

	if k.MaxInterval < k.MinInterval {
		k.MaxInterval = k.MinInterval
	}

	return k
}
