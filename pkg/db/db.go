// Package db keeps probe and session history in SQLite.
package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const (
	defaultHistoryLimit = 100
	maxHistoryLimit     = 1000

	createTablesSQL = `
	CREATE TABLE IF NOT EXISTS probe_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp INTEGER NOT NULL,
		reachable BOOLEAN NOT NULL DEFAULT 0,
		rtt_ns INTEGER NOT NULL DEFAULT 0,
		error TEXT
	);

	CREATE TABLE IF NOT EXISTS session_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp INTEGER NOT NULL,
		phase TEXT NOT NULL,
		reason TEXT,
		attempts INTEGER NOT NULL DEFAULT 0,
		last_error TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_probe_history_time ON probe_history(timestamp);
	CREATE INDEX IF NOT EXISTS idx_session_history_time ON session_history(timestamp);
	`
)

// ProbeRecord is one stored liveness probe.
type ProbeRecord struct {
	Timestamp time.Time     `json:"timestamp"`
	Reachable bool          `json:"reachable"`
	RTT       time.Duration `json:"rtt"`
	Error     string        `json:"error,omitempty"`
}

// SessionRecord is one stored session transition.
type SessionRecord struct {
	Timestamp time.Time    `json:"timestamp"`
	Phase     models.Phase `json:"phase"`
	Reason    string       `json:"reason,omitempty"`
	Attempts  int          `json:"attempts"`
	LastError string       `json:"last_error,omitempty"`
}

// DB represents the database connection and operations.
type DB struct {
	*sql.DB
}

// New opens (creating if needed) the database at dbPath.
func New(dbPath string) (Service, error) {
	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedOpenDB, err)
	}

	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: %w", errFailedToEnableWAL, err)
	}

	db := &DB{sqlDB}
	if _, err := db.Exec(createTablesSQL); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: %w", errFailedToInit, err)
	}

	return db, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultHistoryLimit
	}

	if limit > maxHistoryLimit {
		return maxHistoryLimit
	}

	return limit
}
