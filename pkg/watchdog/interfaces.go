package watchdog

import (
	"context"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/alerts"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/probe"
)

//go:generate mockgen -destination=mock_watchdog.go -package=watchdog github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/watchdog SessionManager,Notifier,ProbeObserver,LivenessObserver

// SessionManager is the part of the session controller the watchdog drives.
type SessionManager interface {
	HasSession() bool
	Create(ctx context.Context) error
	Stop(reason string) bool
}

// Notifier sends throttled alerts.
type Notifier interface {
	Alert(ctx context.Context, text string) alerts.Outcome
}

// ProbeObserver sees every probe result.
type ProbeObserver interface {
	ProbeObserved(at time.Time, res probe.Result)
}

// LivenessObserver sees online/offline flips only.
type LivenessObserver interface {
	LivenessChanged(online bool)
}
