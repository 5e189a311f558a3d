package api

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 5 * time.Second
	maxMessageSize = 4096
)

type wsClient struct {
	conn   *websocket.Conn
	mu     sync.Mutex
	once   sync.Once
	cancel func()
}

func (c *wsClient) write(msg wsMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return c.conn.WriteJSON(msg)
}

func (c *wsClient) close() {
	c.once.Do(func() {
		c.cancel()

		c.mu.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeWait))
		c.mu.Unlock()

		_ = c.conn.Close()
	})
}

// handleWebsocket pushes the current snapshot on connect and every
// broadcast after it. Inbound frames are dashboard commands.
func (s *APIServer) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("Websocket upgrade failed", zap.Error(err))
		return
	}

	updates, cancel := s.status.Subscribe()
	client := &wsClient{conn: conn, cancel: cancel}

	s.mu.Lock()
	s.clients[client] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, client)
		s.mu.Unlock()

		client.close()
	}()

	go s.pushUpdates(client, updates)

	s.readCommands(r, client)
}

func (s *APIServer) pushUpdates(client *wsClient, updates <-chan models.StatusSnapshot) {
	for snap := range updates {
		if err := client.write(wsMessage{Type: "stats", Stats: &snap}); err != nil {
			s.logger.Debug("Dropping websocket subscriber", zap.Error(err))
			client.close()

			return
		}
	}
}

func (s *APIServer) readCommands(r *http.Request, client *wsClient) {
	client.conn.SetReadLimit(maxMessageSize)

	for {
		var req CommandRequest

		if err := client.conn.ReadJSON(&req); err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				s.logger.Debug("Websocket read ended", zap.Error(err))
			}

			return
		}

		var res CommandResult

		if s.limiter.Allow() {
			res = s.runCommand(r.Context(), req.Command, req.Message)
		} else {
			res = CommandResult{Command: req.Command, Error: errRateLimited.Error()}
		}

		if err := client.write(wsMessage{Type: "result", Result: &res}); err != nil {
			return
		}
	}
}
