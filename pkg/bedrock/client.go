package bedrock

import (
	"context"
	"sync"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/session"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sandertv/gophertunnel/minecraft"
	"github.com/sandertv/gophertunnel/minecraft/protocol/login"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
	"go.uber.org/zap"
)

// conn is the part of *minecraft.Conn the client uses.
type conn interface {
	DoSpawnContext(ctx context.Context) error
	ReadPacket() (packet.Packet, error)
	WritePacket(pk packet.Packet) error
	GameData() minecraft.GameData
	IdentityData() login.IdentityData
	Close() error
}

type dialFunc func(ctx context.Context) (conn, error)

type client struct {
	addr   string
	dial   dialFunc
	logger *zap.Logger

	mu     sync.Mutex
	conn   conn
	origin mgl32.Vec3
	tick   uint64
	closed bool
}

func newClient(addr string, dial dialFunc, logger *zap.Logger) *client {
	return &client{addr: addr, dial: dial, logger: logger}
}

// Run dials, spawns and then reads packets until the connection ends. A
// close event is always the last thing sent.
func (c *client) Run(ctx context.Context, events chan<- session.Event) {
	send := func(ev session.Event) bool {
		select {
		case events <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	defer send(session.Event{Type: session.EventClose})

	cn, err := c.dial(ctx)
	if err != nil {
		send(session.Event{Type: session.EventError, Err: err})
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		_ = cn.Close()

		return
	}

	c.conn = cn
	c.origin = cn.GameData().PlayerPosition
	c.mu.Unlock()

	if !send(session.Event{Type: session.EventJoin}) {
		return
	}

	if err := cn.DoSpawnContext(ctx); err != nil {
		send(session.Event{Type: session.EventError, Err: err})
		return
	}

	if !send(session.Event{Type: session.EventSpawn}) {
		return
	}

	for {
		pk, err := cn.ReadPacket()
		if err != nil {
			if ctx.Err() == nil {
				send(session.Event{Type: session.EventError, Err: err})
			}

			return
		}

		switch p := pk.(type) {
		case *packet.Text:
			if p.Message == "" {
				continue
			}

			send(session.Event{Type: session.EventChat, Chat: &models.ChatEntry{
				Time:    time.Now(),
				Source:  p.SourceName,
				Message: p.Message,
			}})
		case *packet.Disconnect:
			send(session.Event{Type: session.EventDisconnect, Reason: p.Message})
			return
		}
	}
}

// Move sends a player movement offset from the spawn position.
func (c *client) Move(m session.Movement) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.closed {
		return session.ErrNotConnected
	}

	c.tick++

	return c.conn.WritePacket(&packet.MovePlayer{
		EntityRuntimeID: c.conn.GameData().EntityRuntimeID,
		Position:        c.origin.Add(mgl32.Vec3{m.X, m.Y, m.Z}),
		Pitch:           m.Pitch,
		Yaw:             m.Yaw,
		HeadYaw:         m.HeadYaw,
		Mode:            packet.MoveModeNormal,
		OnGround:        true,
		Tick:            c.tick,
	})
}

func (c *client) Chat(message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.closed {
		return session.ErrNotConnected
	}

	id := c.conn.IdentityData()

	return c.conn.WritePacket(&packet.Text{
		TextType:   packet.TextTypeChat,
		SourceName: id.DisplayName,
		Message:    message,
		XUID:       id.XUID,
	})
}

func (c *client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true

	if c.conn == nil {
		return nil
	}

	c.logger.Debug("closing connection")

	return c.conn.Close()
}
