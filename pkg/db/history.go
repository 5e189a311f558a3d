package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
)

func (db *DB) RecordProbe(ctx context.Context, rec *ProbeRecord) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO probe_history (timestamp, reachable, rtt_ns, error)
		VALUES (?, ?, ?, ?)`,
		rec.Timestamp.UnixMilli(), rec.Reachable, rec.RTT.Nanoseconds(), nullString(rec.Error))
	if err != nil {
		return fmt.Errorf("%w probe: %w", errFailedToInsert, err)
	}

	return nil
}

func (db *DB) RecordSession(ctx context.Context, rec *SessionRecord) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session_history (timestamp, phase, reason, attempts, last_error)
		VALUES (?, ?, ?, ?, ?)`,
		rec.Timestamp.UnixMilli(), string(rec.Phase), nullString(rec.Reason), rec.Attempts, nullString(rec.LastError))
	if err != nil {
		return fmt.Errorf("%w session: %w", errFailedToInsert, err)
	}

	return nil
}

// GetProbeHistory returns the newest probes first.
func (db *DB) GetProbeHistory(ctx context.Context, limit int) ([]ProbeRecord, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT timestamp, reachable, rtt_ns, error
		FROM probe_history
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%w probe history: %w", errFailedToQuery, err)
	}
	defer rows.Close()

	var out []ProbeRecord

	for rows.Next() {
		var (
			ts, rtt int64
			rec     ProbeRecord
			errText sql.NullString
		)

		if err := rows.Scan(&ts, &rec.Reachable, &rtt, &errText); err != nil {
			return nil, fmt.Errorf("%w probe: %w", errFailedToScan, err)
		}

		rec.Timestamp = time.UnixMilli(ts)
		rec.RTT = time.Duration(rtt)
		rec.Error = errText.String
		out = append(out, rec)
	}

	return out, rows.Err()
}

// GetSessionHistory returns the newest transitions first.
func (db *DB) GetSessionHistory(ctx context.Context, limit int) ([]SessionRecord, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT timestamp, phase, reason, attempts, last_error
		FROM session_history
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%w session history: %w", errFailedToQuery, err)
	}
	defer rows.Close()

	var out []SessionRecord

	for rows.Next() {
		var (
			ts             int64
			phase          string
			reason, lastEr sql.NullString
			rec            SessionRecord
		)

		if err := rows.Scan(&ts, &phase, &reason, &rec.Attempts, &lastEr); err != nil {
			return nil, fmt.Errorf("%w session: %w", errFailedToScan, err)
		}

		rec.Timestamp = time.UnixMilli(ts)
		rec.Phase = models.Phase(phase)
		rec.Reason = reason.String
		rec.LastError = lastEr.String
		out = append(out, rec)
	}

	return out, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
