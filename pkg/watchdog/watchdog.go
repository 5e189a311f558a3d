/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package watchdog probes the upstream endpoint on a fixed period and
// creates or tears down the managed session to match.
package watchdog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/metrics"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/probe"
	"go.uber.org/zap"
)

const (
	defaultInterval = 27 * time.Second
	defaultTimeout  = 3 * time.Second

	reasonUnreachable = "endpoint unreachable"
)

// Config wires a Watchdog.
type Config struct {
	Endpoint models.Endpoint
	Prober   probe.Prober
	Sessions SessionManager
	Notifier Notifier
	Interval time.Duration
	Timeout  time.Duration
	Metrics  metrics.MetricStore
	Probes   []ProbeObserver
	Liveness []LivenessObserver
	Logger   *zap.Logger
	Now      func() time.Time
}

// Watchdog is the only component that creates or stops sessions based on
// reachability. Ticks run strictly one after another.
type Watchdog struct {
	endpoint models.Endpoint
	prober   probe.Prober
	sessions SessionManager
	notifier Notifier
	interval time.Duration
	timeout  time.Duration
	metrics  metrics.MetricStore
	probes   []ProbeObserver
	liveness []LivenessObserver
	logger   *zap.Logger
	now      func() time.Time

	tickMu sync.Mutex // serializes Tick
	mu     sync.RWMutex
	online bool

	lifeMu  sync.Mutex // guards stopped and wg.Add against Stop
	stopped bool
	done    chan struct{}
	wg      sync.WaitGroup
}

func New(cfg Config) *Watchdog {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Watchdog{
		endpoint: cfg.Endpoint,
		prober:   cfg.Prober,
		sessions: cfg.Sessions,
		notifier: cfg.Notifier,
		interval: cfg.Interval,
		timeout:  cfg.Timeout,
		metrics:  cfg.Metrics,
		probes:   cfg.Probes,
		liveness: cfg.Liveness,
		logger:   cfg.Logger.With(zap.String("component", "watchdog"), zap.String("endpoint", cfg.Endpoint.Address())),
		now:      cfg.Now,
		done:     make(chan struct{}),
	}
}

// Online reports the last confirmed liveness.
func (w *Watchdog) Online() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.online
}

// Tick runs one probe-and-decide cycle.
func (w *Watchdog) Tick(ctx context.Context) {
	w.tickMu.Lock()
	defer w.tickMu.Unlock()

	start := w.now()
	res := w.prober.Probe(ctx, w.endpoint, w.timeout)

	w.observe(start, res)

	// Session state may have moved while the probe was outstanding, so it is
	// queried again below rather than captured before the probe.
	if !res.Reachable {
		w.handleUnreachable(ctx, res)
		return
	}

	w.handleReachable(ctx, res)
}

func (w *Watchdog) handleUnreachable(ctx context.Context, res probe.Result) {
	if w.setOnline(false) {
		w.logger.Warn("Endpoint went offline", zap.Error(res.Err))
	}

	if w.sessions.HasSession() && w.sessions.Stop(reasonUnreachable) {
		w.logger.Info("Stopped session for unreachable endpoint")
	}

	outcome := w.notifier.Alert(ctx, fmt.Sprintf("%s is unreachable", w.endpoint.Address()))
	w.logger.Debug("Unreachable alert", zap.Stringer("outcome", outcome))
}

func (w *Watchdog) handleReachable(ctx context.Context, res probe.Result) {
	if w.setOnline(true) {
		w.logger.Info("Endpoint is online", zap.Duration("rtt", res.RTT))
	}

	if w.sessions.HasSession() {
		return
	}

	if err := w.sessions.Create(ctx); err != nil {
		w.logger.Warn("Session create failed", zap.Error(err))
	}
}

// setOnline stores the new liveness and reports whether it changed.
func (w *Watchdog) setOnline(online bool) bool {
	w.mu.Lock()
	changed := w.online != online
	w.online = online
	w.mu.Unlock()

	if changed {
		for _, o := range w.liveness {
			o.LivenessChanged(online)
		}
	}

	return changed
}

func (w *Watchdog) observe(at time.Time, res probe.Result) {
	if w.metrics != nil {
		w.metrics.Add(at, res.RTT, res.Reachable)
	}

	for _, o := range w.probes {
		o.ProbeObserved(at, res)
	}
}

// Start runs an initial tick, then one per interval until ctx is done or
// Stop is called. Start after Stop returns nil without ticking.
func (w *Watchdog) Start(ctx context.Context) error {
	w.lifeMu.Lock()
	if w.stopped {
		w.lifeMu.Unlock()
		return nil
	}

	w.wg.Add(1)
	w.lifeMu.Unlock()

	defer w.wg.Done()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-w.done:
			cancel()
		case <-ctx.Done():
		}
	}()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("Starting watchdog",
		zap.Duration("interval", w.interval),
		zap.Duration("timeout", w.timeout))

	w.Tick(ctx)

	for {
		select {
		case <-ctx.Done():
			select {
			case <-w.done:
				return nil
			default:
				return ctx.Err()
			}
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Stop ends the loop and waits for an in-flight tick.
func (w *Watchdog) Stop() {
	w.lifeMu.Lock()
	if !w.stopped {
		w.stopped = true
		close(w.done)
	}
	w.lifeMu.Unlock()

	w.wg.Wait()
}
