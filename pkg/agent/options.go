package agent

import (
	"io"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/probe"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/session"
)

// Option customizes an Agent.
type Option func(*Agent)

// WithProber replaces the prober selected by the probe mode.
func WithProber(p probe.Prober) Option {
	return func(a *Agent) {
		a.prober = p
	}
}

// WithDialer replaces the gophertunnel dialer.
func WithDialer(d session.Dialer) Option {
	return func(a *Agent) {
		a.dialer = d
	}
}

// WithLoginPrompt sets where device login instructions are written.
func WithLoginPrompt(w io.Writer) Option {
	return func(a *Agent) {
		a.prompt = w
	}
}
