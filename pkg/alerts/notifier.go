package alerts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Outcome reports what Notifier.Alert did. Callers may ignore it; delivery
// failures never surface.
type Outcome int

const (
	Dispatched Outcome = iota
	Throttled
	Disabled
)

func (o Outcome) String() string {
	switch o {
	case Dispatched:
		return "dispatched"
	case Throttled:
		return "throttled"
	case Disabled:
		return "disabled"
	default:
		return "unknown"
	}
}

const defaultDeliveryTimeout = 15 * time.Second

// Notifier sends at most one alert per throttle interval to every enabled
// service. Delivery runs in the background and is never retried.
type Notifier struct {
	services []AlertService
	limiter  *rate.Limiter
	source   string
	title    string
	timeout  time.Duration
	logger   *zap.Logger
	now      func() time.Time

	mu       sync.Mutex
	lastSent time.Time
	wg       sync.WaitGroup
}

type NotifierOption func(*Notifier)

// WithClock replaces time.Now for throttling decisions.
func WithClock(now func() time.Time) NotifierOption {
	return func(n *Notifier) {
		n.now = now
	}
}

// WithSource sets the endpoint label attached to every alert.
func WithSource(source string) NotifierOption {
	return func(n *Notifier) {
		n.source = source
	}
}

func WithDeliveryTimeout(d time.Duration) NotifierOption {
	return func(n *Notifier) {
		n.timeout = d
	}
}

func NewNotifier(throttle time.Duration, logger *zap.Logger, services []AlertService, opts ...NotifierOption) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}

	n := &Notifier{
		services: services,
		limiter:  rate.NewLimiter(rate.Every(throttle), 1),
		title:    "AFK bot alert",
		timeout:  defaultDeliveryTimeout,
		logger:   logger,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

func (n *Notifier) enabled() []AlertService {
	out := make([]AlertService, 0, len(n.services))

	for _, svc := range n.services {
		if svc.IsEnabled() {
			out = append(out, svc)
		}
	}

	return out
}

// Alert dispatches text unless an alert already went out within the
// throttle interval. The send time is recorded before delivery starts.
func (n *Notifier) Alert(ctx context.Context, text string) Outcome {
	targets := n.enabled()
	if len(targets) == 0 {
		return Disabled
	}

	now := n.now()

	n.mu.Lock()
	if !n.limiter.AllowN(now, 1) {
		n.mu.Unlock()
		n.logger.Debug("alert throttled", zap.Time("last_sent", n.LastSent()), zap.String("text", text))

		return Throttled
	}

	n.lastSent = now
	n.mu.Unlock()

	alert := &WebhookAlert{
		Level:     Error,
		Title:     n.title,
		Message:   text,
		Timestamp: now.UTC().Format(time.RFC3339),
		Endpoint:  n.source,
	}

	deliveryCtx := context.WithoutCancel(ctx)

	for _, svc := range targets {
		n.wg.Add(1)

		go func(svc AlertService) {
			defer n.wg.Done()

			ctx, cancel := context.WithTimeout(deliveryCtx, n.timeout)
			defer cancel()

			a := *alert
			if err := svc.Alert(ctx, &a); err != nil {
				n.logger.Warn("alert delivery failed", zap.Error(err))
			}
		}(svc)
	}

	return Dispatched
}

// LastSent is the time of the last dispatched alert.
func (n *Notifier) LastSent() time.Time {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.lastSent
}

// Wait blocks until every in-flight delivery has finished.
func (n *Notifier) Wait() {
	n.wg.Wait()
}
