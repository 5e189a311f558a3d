package models

import "time"

// Phase is the lifecycle phase of the managed session.
type Phase string

const (
	PhaseDisconnected Phase = "disconnected"
	PhaseConnecting   Phase = "connecting"
	PhaseConnected    Phase = "connected"
	PhaseInGame       Phase = "in_game"
	PhaseFatalError   Phase = "fatal_error"
)

var phaseLabels = map[Phase]string{
	PhaseDisconnected: "Disconnected",
	PhaseConnecting:   "Connecting...",
	PhaseConnected:    "Connected",
	PhaseInGame:       "In-Game",
	PhaseFatalError:   "Fatal Error",
}

// Label is the human readable form shown on the dashboard.
func (p Phase) Label() string {
	if l, ok := phaseLabels[p]; ok {
		return l
	}

	return string(p)
}

// Active reports whether the session has joined the server.
func (p Phase) Active() bool {
	return p == PhaseConnected || p == PhaseInGame
}

// SessionState is what the session controller reports to its observers
// after every transition.
type SessionState struct {
	Phase       Phase     `json:"phase"`
	ConnectedAt time.Time `json:"connected_at"`
	Attempts    int       `json:"attempts"`
	Following   bool      `json:"following"`
	IdleEnabled bool      `json:"idle_enabled"`
	LastError   string    `json:"last_error,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// ChatEntry is a chat line seen or sent by the session.
type ChatEntry struct {
	Time     time.Time `json:"time"`
	Source   string    `json:"source"`
	Message  string    `json:"message"`
	Outbound bool      `json:"outbound"`
}
