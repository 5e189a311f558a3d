package db

import (
	"context"
	"fmt"
	"time"
)

// CleanOldData removes history older than retention.
func (db *DB) CleanOldData(ctx context.Context, retention time.Duration) (err error) {
	cutoff := time.Now().Add(-retention).UnixMilli()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToBeginTx, err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}

		err = tx.Commit()
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM probe_history WHERE timestamp < ?", cutoff); err != nil {
		return fmt.Errorf("%w probe history: %w", errFailedToClean, err)
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM session_history WHERE timestamp < ?", cutoff); err != nil {
		return fmt.Errorf("%w session history: %w", errFailedToClean, err)
	}

	return nil
}
