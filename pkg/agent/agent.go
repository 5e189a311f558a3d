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

// Package agent wires the watchdog, session controller, notifier, status
// publisher, history store and dashboard into one service.
package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/alerts"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/api"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/bedrock"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/config"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/db"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/lifecycle"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/metrics"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/probe"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/session"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/status"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/watchdog"
	"go.uber.org/zap"
)

const (
	dbFileName       = "afkbot.db"
	cleanupInterval  = time.Hour
	upstreamHealthID = "upstream"
)

// Agent is the afkbot service run by lifecycle.RunServer.
type Agent struct {
	cfg    *config.AgentConfig
	logger *zap.Logger
	prober probe.Prober
	dialer session.Dialer
	prompt io.Writer

	store     db.Service
	recorder  *db.Recorder
	buffer    metrics.MetricStore
	notifier  *alerts.Notifier
	publisher *status.Publisher
	sessions  *session.Controller
	watchdog  *watchdog.Watchdog
	dashboard *api.APIServer

	mu       sync.Mutex
	health   lifecycle.HealthReporter
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
	stopErr  error
}

// New builds every component. Nothing touches the network until Start.
func New(cfg *config.AgentConfig, logger *zap.Logger, opts ...Option) (*Agent, error) {
	a := &Agent{
		cfg:    cfg,
		logger: logger,
		prompt: os.Stderr,
	}

	for _, opt := range opts {
		opt(a)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w %s: %w", errFailedToCreateDataDir, cfg.DataDir, err)
	}

	store, err := db.New(filepath.Join(cfg.DataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToOpenStore, err)
	}

	a.store = store
	a.recorder = db.NewRecorder(store, logger)

	if cfg.Metrics.Enabled {
		a.buffer = metrics.NewBuffer(cfg.Metrics.Retention)
	}

	a.notifier = alerts.NewNotifier(cfg.Alerts.Throttle.Std(), logger, a.alertServices(),
		alerts.WithSource(cfg.Endpoint.Address()))

	a.publisher = status.NewPublisher(status.Config{
		ChatLimit: cfg.Dashboard.ChatLogSize,
		Logger:    logger,
	})

	if a.dialer == nil {
		a.dialer = a.bedrockDialer()
	}

	a.sessions = session.NewController(session.Config{
		Endpoint: cfg.Endpoint,
		Dialer:   a.dialer,
		KeepAlive: session.KeepAliveConfig{
			MinInterval: cfg.KeepAlive.MinInterval.Std(),
			MaxInterval: cfg.KeepAlive.MaxInterval.Std(),
		},
		Observers: []session.Observer{a.publisher, a.recorder},
		Logger:    logger,
	})

	if a.prober == nil {
		a.prober = probe.New(cfg.Probe.Mode)
	}

	a.watchdog = watchdog.New(watchdog.Config{
		Endpoint: cfg.Endpoint,
		Prober:   a.prober,
		Sessions: a.sessions,
		Notifier: a.notifier,
		Interval: cfg.Watchdog.Interval.Std(),
		Timeout:  cfg.Probe.Timeout.Std(),
		Metrics:  a.buffer,
		Probes:   []watchdog.ProbeObserver{a.publisher, a.recorder},
		Liveness: []watchdog.LivenessObserver{a.publisher, a},
		Logger:   logger,
	})

	a.dashboard = api.NewAPIServer(api.Config{
		ListenAddr:        cfg.Dashboard.Addr(),
		Endpoint:          cfg.Endpoint,
		Sessions:          a.sessions,
		Status:            a.publisher,
		History:           store,
		Metrics:           a.buffer,
		CommandsPerSecond: cfg.Dashboard.CommandsPerSecond,
		Logger:            logger,
	})

	return a, nil
}

func (a *Agent) alertServices() []alerts.AlertService {
	var services []alerts.AlertService

	ac := a.cfg.Alerts

	if ac.Telegram.Enabled() {
		services = append(services, alerts.NewTelegramAlerter(ac.Telegram.APIBase, ac.Telegram.Token, ac.Telegram.ChatID, a.logger))
	}

	if ac.Discord.URL != "" {
		services = append(services, alerts.NewDiscordWebhook(ac.Discord.URL, 0, a.logger))
	}

	for _, wh := range ac.Webhooks {
		services = append(services, alerts.NewWebhookAlerter(wh, a.logger))
	}

	if len(services) == 0 {
		a.logger.Info("No alert transport configured, alerts are disabled")
	}

	return services
}

func (a *Agent) bedrockDialer() session.Dialer {
	if a.cfg.Endpoint.Offline {
		return bedrock.NewDialer(nil, a.logger)
	}

	tokens := bedrock.NewTokenCache(a.cfg.DataDir, a.prompt, a.logger)

	return bedrock.NewDialer(tokens.Lazy(), a.logger)
}

// SetHealthReporter implements lifecycle.HealthAware.
func (a *Agent) SetHealthReporter(r lifecycle.HealthReporter) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.health = r
	r.SetComponentServing(upstreamHealthID, a.watchdog.Online())
}

// LivenessChanged mirrors endpoint liveness into the upstream health status.
func (a *Agent) LivenessChanged(online bool) {
	a.mu.Lock()
	h := a.health
	a.mu.Unlock()

	if h != nil {
		h.SetComponentServing(upstreamHealthID, online)
	}
}

// Start opens the dashboard listener, which is the only fatal step, then
// starts the periodic loops. A failed Start releases the history store.
func (a *Agent) Start(ctx context.Context) error {
	if err := a.dashboard.Start(ctx); err != nil {
		// lifecycle does not call Stop after a failed Start
		a.stopOnce.Do(func() {
			a.recorder.Close()
			a.stopErr = a.store.Close()
		})

		return fmt.Errorf("%w: %w", errFailedToStartDash, err)
	}

	ctx, cancel := context.WithCancel(ctx)

	a.mu.Lock()
	a.cancel = cancel
	a.mu.Unlock()

	a.logger.Info("Agent started",
		zap.String("endpoint", a.cfg.Endpoint.Address()),
		zap.String("dashboard", a.cfg.Dashboard.Addr()),
		zap.Duration("watchdog_interval", a.cfg.Watchdog.Interval.Std()))

	a.wg.Add(3)

	go func() {
		defer a.wg.Done()
		a.publisher.Start(ctx)
	}()

	go func() {
		defer a.wg.Done()

		if err := a.watchdog.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error("Watchdog stopped", zap.Error(err))
		}
	}()

	go func() {
		defer a.wg.Done()
		a.cleanupLoop(ctx)
	}()

	return nil
}

func (a *Agent) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.store.CleanOldData(ctx, a.cfg.DBRetention.Std()); err != nil {
				a.logger.Warn("History cleanup failed", zap.Error(err))
			}
		}
	}
}

// Stop tears everything down in order: watchdog, managed session,
// dashboard, loops, pending alerts, history.
func (a *Agent) Stop(ctx context.Context) error {
	a.stopOnce.Do(func() {
		a.stopErr = a.stop(ctx)
	})

	return a.stopErr
}

func (a *Agent) stop(ctx context.Context) error {
	var errs []error

	a.watchdog.Stop()
	a.sessions.Close()

	if err := a.dashboard.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("dashboard shutdown: %w", err))
	}

	a.publisher.Close()

	a.mu.Lock()
	cancel := a.cancel
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	a.wg.Wait()
	a.notifier.Wait()
	a.recorder.Close()

	if err := a.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("history store close: %w", err))
	}

	a.logger.Info("Agent stopped")

	return errors.Join(errs...)
}

// Sessions exposes the session controller.
func (a *Agent) Sessions() *session.Controller {
	return a.sessions
}

// Publisher exposes the status publisher.
func (a *Agent) Publisher() *status.Publisher {
	return a.publisher
}

// DashboardAddr is the bound dashboard address after Start.
func (a *Agent) DashboardAddr() string {
	if addr := a.dashboard.Addr(); addr != nil {
		return addr.String()
	}

	return ""
}
