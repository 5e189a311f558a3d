package logger

import (
	"context"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
)

// ReopenableWriteSyncer is a file sink that can be reopened after the file
// was rotated away by an external tool.
type ReopenableWriteSyncer struct {
	path string
	cur  atomic.Pointer[os.File]
}

func NewReopenableWriteSyncer(path string) (*ReopenableWriteSyncer, error) {
	ws := &ReopenableWriteSyncer{path: path}
	if err := ws.Reopen(); err != nil {
		return nil, err
	}

	return ws, nil
}

// Reopen swaps in a fresh handle for the configured path.
func (ws *ReopenableWriteSyncer) Reopen() error {
	f, err := os.OpenFile(ws.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	if old := ws.cur.Swap(f); old != nil {
		return old.Close()
	}

	return nil
}

func (ws *ReopenableWriteSyncer) Write(p []byte) (int, error) {
	return ws.cur.Load().Write(p)
}

func (ws *ReopenableWriteSyncer) Sync() error {
	return ws.cur.Load().Sync()
}

func (ws *ReopenableWriteSyncer) Close() error {
	return ws.cur.Load().Close()
}

// Reopener is implemented by sinks that can reopen their file.
type Reopener interface {
	Reopen() error
}

// ReopenOnSignal reopens r every time sig fires until ctx is done.
func ReopenOnSignal(ctx context.Context, r Reopener, sig <-chan os.Signal, logger *zap.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sig:
			if err := r.Reopen(); err != nil {
				logger.Error("Failed to reopen log file", zap.Error(err))
				continue
			}

			logger.Info("Log file reopened")
		}
	}
}
