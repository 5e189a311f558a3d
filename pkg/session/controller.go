/*-
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

// Package session owns the single managed client session: creation,
// event driven phase transitions, idle keep-alive and teardown.
package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
	"go.uber.org/zap"
)

const eventBuffer = 16

type Config struct {
	Endpoint  models.Endpoint
	Dialer    Dialer
	KeepAlive KeepAliveConfig
	Observers []Observer
	Logger    *zap.Logger

	// Rand returns a value in [0, 1). Defaults to math/rand/v2.
	Rand func() float64
	Now  func() time.Time
}

type managedSession struct {
	gen         uint64
	client      Client
	phase       models.Phase
	createdAt   time.Time
	connectedAt time.Time
	cancel      context.CancelFunc
	events      chan Event
	keepAlive   *keepAlive
}

// keepAlive is the cancellation handle of a session's idle timer.
type keepAlive struct {
	timer     *time.Timer
	cancelled bool
}

func (k *keepAlive) stop() {
	if k == nil {
		return
	}

	k.cancelled = true

	if k.timer != nil {
		k.timer.Stop()
	}
}

// Controller is the only owner of the managed session. All transitions and
// keep-alive emissions are serialized on mu.
type Controller struct {
	endpoint  models.Endpoint
	dialer    Dialer
	keepAlive KeepAliveConfig
	observers []Observer
	logger    *zap.Logger
	rand      func() float64
	now       func() time.Time

	mu        sync.Mutex
	session   *managedSession
	phase     models.Phase
	gen       uint64
	attempts  int
	following bool
	idle      bool
	lastErr   string
	closed    bool
}

func NewController(cfg Config) *Controller {
	c := &Controller{
		endpoint:  cfg.Endpoint,
		dialer:    cfg.Dialer,
		keepAlive: cfg.KeepAlive.withDefaults(),
		observers: cfg.Observers,
		logger:    cfg.Logger,
		rand:      cfg.Rand,
		now:       cfg.Now,
		phase:     models.PhaseDisconnected,
		idle:      true,
	}

	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	if c.rand == nil {
		c.rand = rand.Float64
	}

	if c.now == nil {
		c.now = time.Now
	}

	return c
}

// AddObserver registers o for every subsequent transition.
func (c *Controller) AddObserver(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.observers = append(c.observers, o)
}

// Create starts a new managed session. It fails when one already exists.
// A client that cannot be instantiated leaves the controller in
// FatalError with no session.
func (c *Controller) Create(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.createLocked(ctx)
}

func (c *Controller) createLocked(ctx context.Context) error {
	if c.closed {
		return ErrControllerClosed
	}

	if c.session != nil {
		return ErrSessionExists
	}

	c.attempts++
	c.gen++
	c.lastErr = ""
	c.idle = true
	c.following = false
	c.phase = models.PhaseConnecting
	c.notifyLocked("create")

	client, err := c.dialer.Open(c.endpoint)
	if err != nil {
		c.phase = models.PhaseFatalError
		c.lastErr = err.Error()
		c.logger.Error("failed to instantiate client",
			zap.String("endpoint", c.endpoint.Address()), zap.Error(err))
		c.notifyLocked("open failed")

		return fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	s := &managedSession{
		gen:       c.gen,
		client:    client,
		phase:     models.PhaseConnecting,
		createdAt: c.now(),
		cancel:    cancel,
		events:    make(chan Event, eventBuffer),
	}
	c.session = s

	c.logger.Info("session created",
		zap.String("endpoint", c.endpoint.Address()),
		zap.Uint64("generation", s.gen),
		zap.Int("attempt", c.attempts))

	go client.Run(runCtx, s.events)
	go c.consume(runCtx, s)

	return nil
}

func (c *Controller) consume(ctx context.Context, s *managedSession) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-s.events:
			if done := c.handle(s, ev); done {
				return
			}
		}
	}
}

// handle applies one event to s and reports whether s is finished.
func (c *Controller) handle(s *managedSession, ev Event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != s {
		return true
	}

	log := c.logger.With(zap.Stringer("event", ev.Type), zap.Uint64("generation", s.gen))

	switch ev.Type {
	case EventJoin:
		if s.phase != models.PhaseConnecting {
			return false
		}

		s.phase = models.PhaseConnected
		s.connectedAt = c.now()
		c.phase = s.phase
		c.startKeepAliveLocked(s)
		log.Info("joined server")
		c.notifyLocked("join")

	case EventSpawn:
		if s.phase != models.PhaseConnected {
			return false
		}

		s.phase = models.PhaseInGame
		c.phase = s.phase
		log.Info("spawned in world")
		c.notifyLocked("spawn")

	case EventError:
		if ev.Err != nil {
			c.lastErr = ev.Err.Error()
		}

		log.Warn("session error", zap.Error(ev.Err))
		c.notifyLocked("error")

	case EventChat:
		if ev.Chat != nil {
			for _, o := range c.observers {
				o.ChatReceived(*ev.Chat)
			}
		}

	case EventDisconnect, EventClose:
		reason := ev.Reason
		if reason == "" {
			reason = ev.Type.String()
		}

		log.Info("session ended", zap.String("reason", reason))
		c.teardownLocked(s, reason)

		return true
	}

	return false
}

// teardownLocked cancels the keep-alive, releases the client and clears the
// singleton so a later Create is permitted.
func (c *Controller) teardownLocked(s *managedSession, reason string) {
	s.keepAlive.stop()
	s.cancel()

	if err := s.client.Close(); err != nil {
		c.logger.Debug("client close failed", zap.Error(err))
	}

	s.phase = models.PhaseDisconnected
	c.session = nil
	c.phase = models.PhaseDisconnected
	c.notifyLocked(reason)
}

// Stop tears down the current session. It reports whether there was one.
func (c *Controller) Stop(reason string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return false
	}

	c.logger.Info("stopping session", zap.String("reason", reason))
	c.teardownLocked(c.session, reason)

	return true
}

// Reconnect resets the attempt counter, drops any current session and
// creates a fresh one.
func (c *Controller) Reconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		c.teardownLocked(c.session, "reconnect")
	}

	c.attempts = 0

	return c.createLocked(ctx)
}

// StopActions clears the following flag and pauses idle movement until the
// next session is created.
func (c *Controller) StopActions() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.following = false
	c.idle = false
	c.notifyLocked("actions stopped")
}

// Close stops any session and refuses further creation.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true

	if c.session != nil {
		c.teardownLocked(c.session, "shutdown")
	}
}

func (c *Controller) HasSession() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.session != nil
}

func (c *Controller) Phase() models.Phase {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.phase
}

func (c *Controller) State() models.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stateLocked("")
}

// Chat forwards message verbatim when it has visible text and the session
// has joined. Anything else is skipped silently.
func (c *Controller) Chat(message string) Outcome {
	if strings.TrimSpace(message) == "" {
		return Skipped
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.session
	if s == nil || !s.phase.Active() {
		return Skipped
	}

	if err := s.client.Chat(message); err != nil {
		c.logger.Warn("chat relay failed", zap.Error(err))
		return Failed
	}

	entry := models.ChatEntry{
		Time:     c.now(),
		Source:   c.endpoint.Username,
		Message:  message,
		Outbound: true,
	}
	for _, o := range c.observers {
		o.ChatReceived(entry)
	}

	return Sent
}

func (c *Controller) stateLocked(reason string) models.SessionState {
	st := models.SessionState{
		Phase:       c.phase,
		Attempts:    c.attempts,
		Following:   c.following,
		IdleEnabled: c.idle,
		LastError:   c.lastErr,
		Reason:      reason,
		Timestamp:   c.now(),
	}

	if c.session != nil && c.session.phase.Active() {
		st.ConnectedAt = c.session.connectedAt
	}

	return st
}

func (c *Controller) notifyLocked(reason string) {
	st := c.stateLocked(reason)

	for _, o := range c.observers {
		o.SessionChanged(st)
	}
}
