package session

import (
	"time"

	"go.uber.org/zap"
)

func (c *Controller) startKeepAliveLocked(s *managedSession) {
	s.keepAlive.stop()

	ka := &keepAlive{}
	s.keepAlive = ka
	c.scheduleLocked(s, ka)
}

func (c *Controller) scheduleLocked(s *managedSession, ka *keepAlive) {
	ka.timer = time.AfterFunc(c.nextIntervalLocked(), func() {
		c.keepAliveTick(s, ka)
	})
}

// nextIntervalLocked draws a period uniformly from the configured window.
func (c *Controller) nextIntervalLocked() time.Duration {
	span := c.keepAlive.MaxInterval - c.keepAlive.MinInterval

	return c.keepAlive.MinInterval + time.Duration(c.rand()*float64(span))
}

// keepAliveTick emits one movement if ka is still the live handle of the
// current session, then schedules the next one.
func (c *Controller) keepAliveTick(s *managedSession, ka *keepAlive) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ka.cancelled || c.session != s || !s.phase.Active() {
		return Skipped
	}

	out := Skipped

	if c.idle {
		if err := s.client.Move(c.randomMovementLocked()); err != nil {
			c.logger.Debug("keep-alive movement failed", zap.Error(err))

			out = Failed
		} else {
			out = Sent
		}
	}

	c.scheduleLocked(s, ka)

	return out
}

// randomMovementLocked nudges the player within one block and looks around.
func (c *Controller) randomMovementLocked() Movement {
	return Movement{
		X:       float32(c.rand()*2 - 1),
		Y:       0,
		Z:       float32(c.rand()*2 - 1),
		Pitch:   float32(c.rand()*90 - 45),
		Yaw:     float32(c.rand() * 360),
		HeadYaw: float32(c.rand() * 360),
	}
}
