// Package probe answers one question: is the upstream endpoint answering
// datagrams right now.
package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
)

//go:generate mockgen -destination=mock_probe.go -package=probe github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/probe Prober

// Prober sends one probe and waits at most timeout for any reply. It never
// returns an error: every transport failure is folded into an unreachable
// Result.
type Prober interface {
	Probe(ctx context.Context, endpoint models.Endpoint, timeout time.Duration) Result
}

// Result of one probe. Err is informational only.
type Result struct {
	Reachable bool
	RTT       time.Duration
	Info      *ServerInfo
	Err       error
}

// ServerInfo is what a Bedrock server advertises in its unconnected pong.
type ServerInfo struct {
	Edition       string
	MOTD          string
	Protocol      string
	Version       string
	PlayerCount   string
	MaxPlayers    string
	SubMOTD       string
	GameMode      string
	Advertisement string
}

// Players renders "count/max" for display.
func (s *ServerInfo) Players() string {
	if s == nil || s.PlayerCount == "" {
		return ""
	}

	return fmt.Sprintf("%s/%s", s.PlayerCount, s.MaxPlayers)
}

const (
	ModeRakNet = "raknet"
	ModeICMP   = "icmp"
)

// New returns the prober for mode, defaulting to the RakNet ping.
func New(mode string) Prober {
	if mode == ModeICMP {
		return NewICMPProber()
	}

	return NewRakNetProber()
}

func unreachable(err error) Result {
	return Result{Err: err}
}

// deadlineFor bounds ctx by timeout.
func deadlineFor(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return context.WithTimeout(ctx, timeout)
}

const defaultTimeout = 3 * time.Second
