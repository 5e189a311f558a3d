package api

import (
	"context"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/session"
)

//go:generate mockgen -destination=mock_api.go -package=api github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/api SessionCommander,StatusSource

// SessionCommander is what dashboard commands act on.
type SessionCommander interface {
	Stop(reason string) bool
	Reconnect(ctx context.Context) error
	StopActions()
	Chat(message string) session.Outcome
}

// StatusSource provides the published snapshot.
type StatusSource interface {
	Snapshot() models.StatusSnapshot
	Subscribe() (<-chan models.StatusSnapshot, func())
}
