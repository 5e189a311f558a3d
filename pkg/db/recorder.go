package db

import (
	"context"
	"sync"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/probe"
	"go.uber.org/zap"
)

const (
	defaultRecorderQueue = 256
	writeTimeout         = 5 * time.Second
)

// Recorder persists probe results and session transitions without blocking
// the caller. Writes are queued and dropped when the queue is full.
type Recorder struct {
	store  Service
	logger *zap.Logger
	queue  chan func(ctx context.Context) error
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
	once   sync.Once
}

// NewRecorder starts the writer goroutine.
func NewRecorder(store Service, logger *zap.Logger) *Recorder {
	r := &Recorder{
		store:  store,
		logger: logger,
		queue:  make(chan func(ctx context.Context) error, defaultRecorderQueue),
		done:   make(chan struct{}),
	}

	go r.run()

	return r
}

func (r *Recorder) run() {
	defer close(r.done)

	for write := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)

		if err := write(ctx); err != nil {
			r.logger.Warn("Failed to persist history", zap.Error(err))
		}

		cancel()
	}
}

func (r *Recorder) enqueue(write func(ctx context.Context) error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return
	}

	select {
	case r.queue <- write:
	default:
		r.logger.Warn("History queue full, dropping record")
	}
}

// ProbeObserved records one watchdog probe.
func (r *Recorder) ProbeObserved(at time.Time, res probe.Result) {
	rec := &ProbeRecord{
		Timestamp: at,
		Reachable: res.Reachable,
		RTT:       res.RTT,
	}

	if res.Err != nil {
		rec.Error = res.Err.Error()
	}

	r.enqueue(func(ctx context.Context) error {
		return r.store.RecordProbe(ctx, rec)
	})
}

// SessionChanged records one session transition.
func (r *Recorder) SessionChanged(state models.SessionState) {
	rec := &SessionRecord{
		Timestamp: state.Timestamp,
		Phase:     state.Phase,
		Reason:    state.Reason,
		Attempts:  state.Attempts,
		LastError: state.LastError,
	}

	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	r.enqueue(func(ctx context.Context) error {
		return r.store.RecordSession(ctx, rec)
	})
}

// ChatReceived is a no-op; chat is not persisted.
func (*Recorder) ChatReceived(models.ChatEntry) {}

// Close drains pending writes. It does not close the underlying store.
func (r *Recorder) Close() {
	r.once.Do(func() {
		r.mu.Lock()
		r.closed = true
		close(r.queue)
		r.mu.Unlock()

		<-r.done
	})
}
