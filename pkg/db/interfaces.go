// Package db pkg/db/interfaces.go
package db

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock_db.go -package=db github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/db Service

// Service represents all database operations.
type Service interface {
	RecordProbe(ctx context.Context, rec *ProbeRecord) error
	RecordSession(ctx context.Context, rec *SessionRecord) error

	GetProbeHistory(ctx context.Context, limit int) ([]ProbeRecord, error)
	GetSessionHistory(ctx context.Context, limit int) ([]SessionRecord, error)

	// Maintenance operations.

	CleanOldData(ctx context.Context, retention time.Duration) error
	Close() error
}
