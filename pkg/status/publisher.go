// Package status keeps the dashboard snapshot and fans it out to
// subscribers.
package status

import (
	"context"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/probe"
	"go.uber.org/zap"
)

const (
	defaultInterval  = time.Second
	defaultChatLimit = 50
)

// Config wires a Publisher.
type Config struct {
	Interval  time.Duration
	ChatLimit int
	Memory    func() float64
	Now       func() time.Time
	Logger    *zap.Logger
}

// Publisher owns the StatusSnapshot. Broadcasts never block: a subscriber
// that has not drained its previous snapshot only ever sees the newest one.
type Publisher struct {
	interval  time.Duration
	chatLimit int
	memory    func() float64
	now       func() time.Time
	logger    *zap.Logger

	mu     sync.Mutex
	snap   models.StatusSnapshot
	subs   map[uint64]chan models.StatusSnapshot
	nextID uint64
	closed bool
}

func NewPublisher(cfg Config) *Publisher {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}

	if cfg.ChatLimit <= 0 {
		cfg.ChatLimit = defaultChatLimit
	}

	if cfg.Memory == nil {
		cfg.Memory = HeapMB
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	p := &Publisher{
		interval:  cfg.Interval,
		chatLimit: cfg.ChatLimit,
		memory:    cfg.Memory,
		now:       cfg.Now,
		logger:    cfg.Logger,
		subs:      make(map[uint64]chan models.StatusSnapshot),
	}

	p.snap = models.StatusSnapshot{
		Status:       models.PhaseDisconnected.Label(),
		Phase:        models.PhaseDisconnected,
		Idle:         true,
		LastUpdate:   p.now().UnixMilli(),
		ChatMessages: []models.ChatEntry{},
	}

	return p
}

// HeapMB is the Go heap in use, in megabytes with two decimals.
func HeapMB() float64 {
	var ms runtime.MemStats

	runtime.ReadMemStats(&ms)

	return math.Round(float64(ms.HeapAlloc)/1024/1024*100) / 100
}

// Snapshot returns a copy of the current snapshot.
func (p *Publisher) Snapshot() models.StatusSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.snap.Clone()
}

// Update refreshes the gauge and timestamp and broadcasts.
func (p *Publisher) Update() {
	mem := p.memory()

	p.mu.Lock()
	defer p.mu.Unlock()

	p.snap.Memory = mem
	p.snap.LastUpdate = p.now().UnixMilli()
	p.broadcastLocked()
}

// Subscribe returns a channel that immediately holds the current snapshot
// and then receives every broadcast. cancel releases the subscription.
func (p *Publisher) Subscribe() (<-chan models.StatusSnapshot, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := make(chan models.StatusSnapshot, 1)

	if p.closed {
		close(ch)
		return ch, func() {}
	}

	id := p.nextID
	p.nextID++
	p.subs[id] = ch
	ch <- p.snap.Clone()

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()

			if c, ok := p.subs[id]; ok {
				delete(p.subs, id)
				close(c)
			}
		})
	}
}

// Subscribers is the number of live subscriptions.
func (p *Publisher) Subscribers() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.subs)
}

func (p *Publisher) broadcastLocked() {
	for _, ch := range p.subs {
		snap := p.snap.Clone()

		select {
		case ch <- snap:
			continue
		default:
		}

		// replace the stale snapshot the subscriber has not read yet
		select {
		case <-ch:
		default:
		}

		select {
		case ch <- snap:
		default:
		}
	}
}

// SessionChanged projects a controller transition onto the snapshot.
func (p *Publisher) SessionChanged(st models.SessionState) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.snap.Phase = st.Phase
	p.snap.Status = st.Phase.Label()
	p.snap.Following = st.Following
	p.snap.Idle = st.IdleEnabled
	p.snap.ReconnectAttempts = st.Attempts
	p.snap.LastError = st.LastError

	if st.ConnectedAt.IsZero() {
		p.snap.Uptime = 0
	} else {
		p.snap.Uptime = st.ConnectedAt.UnixMilli()
	}

	p.snap.LastUpdate = p.now().UnixMilli()
	p.broadcastLocked()
}

// ChatReceived appends entry to the bounded chat log.
func (p *Publisher) ChatReceived(entry models.ChatEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.snap.ChatMessages = append(p.snap.ChatMessages, entry)
	if n := len(p.snap.ChatMessages); n > p.chatLimit {
		p.snap.ChatMessages = append([]models.ChatEntry(nil), p.snap.ChatMessages[n-p.chatLimit:]...)
	}

	p.broadcastLocked()
}

// LivenessChanged records the watchdog's view of the endpoint.
func (p *Publisher) LivenessChanged(online bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.snap.ServerOnline = online
	p.broadcastLocked()
}

// ProbeObserved records the latest probe.
func (p *Publisher) ProbeObserved(at time.Time, res probe.Result) {
	summary := &models.ProbeSummary{
		Time:      at,
		Reachable: res.Reachable,
		RTT:       res.RTT,
	}

	if res.Info != nil {
		summary.MOTD = res.Info.MOTD
		summary.Players = res.Info.Players()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.snap.LastProbe = summary
}

// Start broadcasts every interval until ctx is done.
func (p *Publisher) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Update()
		}
	}
}

// Close ends every subscription.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.closed = true

	for id, ch := range p.subs {
		delete(p.subs, id)
		close(ch)
	}

	p.logger.Debug("Status publisher closed")
}
