package models

import "time"

// ProbeSummary is the last liveness probe as shown on the dashboard.
type ProbeSummary struct {
	Time      time.Time     `json:"time"`
	Reachable bool          `json:"reachable"`
	RTT       time.Duration `json:"rtt"`
	MOTD      string        `json:"motd,omitempty"`
	Players   string        `json:"players,omitempty"`
}

// StatusSnapshot is the published view of the agent. Field names follow the
// dashboard's JSON contract.
type StatusSnapshot struct {
	Status            string        `json:"status"`
	Phase             Phase         `json:"phase"`
	ServerOnline      bool          `json:"serverOnline"`
	Uptime            int64         `json:"uptime"` // unix ms of the last join, 0 when not joined
	Memory            float64       `json:"memory"` // heap in MB
	Following         bool          `json:"following"`
	Idle              bool          `json:"idle"`
	ReconnectAttempts int           `json:"reconnectAttempts"`
	LastError         string        `json:"lastError,omitempty"`
	LastProbe         *ProbeSummary `json:"lastProbe,omitempty"`
	LastUpdate        int64         `json:"lastUpdate"` // unix ms
	ChatMessages      []ChatEntry   `json:"chatMessages"`
}

// Clone returns a copy that shares no mutable state with s.
func (s *StatusSnapshot) Clone() StatusSnapshot {
	out := *s

	out.ChatMessages = make([]ChatEntry, len(s.ChatMessages))
	copy(out.ChatMessages, s.ChatMessages)

	if s.LastProbe != nil {
		p := *s.LastProbe
		out.LastProbe = &p
	}

	return out
}
