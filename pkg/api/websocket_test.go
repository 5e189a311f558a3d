package api

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/session"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(url, "http")+"/ws", nil)
	require.NoError(t, err)

	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

// next reads frames until one of the wanted type arrives.
func next(t *testing.T, conn *websocket.Conn, typ string) wsMessage {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	for {
		var msg wsMessage
		require.NoError(t, conn.ReadJSON(&msg))

		if msg.Type == typ {
			return msg
		}
	}
}

func TestWebsocket_SnapshotOnConnectThenBroadcasts(t *testing.T) {
	f := newFixture(t, 100)
	f.pub.SessionChanged(models.SessionState{Phase: models.PhaseConnecting})

	srv := httptest.NewServer(f.server.Handler())
	defer srv.Close()

	conn := dial(t, srv.URL)

	first := next(t, conn, "stats")
	require.NotNil(t, first.Stats)
	assert.Equal(t, "Connecting...", first.Stats.Status)

	require.Eventually(t, func() bool { return f.pub.Subscribers() == 1 }, time.Second, 5*time.Millisecond)

	f.pub.SessionChanged(models.SessionState{Phase: models.PhaseInGame})

	second := next(t, conn, "stats")
	assert.Equal(t, "In-Game", second.Stats.Status)
}

func TestWebsocket_Commands(t *testing.T) {
	f := newFixture(t, 100)

	f.sessions.EXPECT().Chat("hi").Return(session.Sent)

	srv := httptest.NewServer(f.server.Handler())
	defer srv.Close()

	conn := dial(t, srv.URL)
	next(t, conn, "stats")

	require.NoError(t, conn.WriteJSON(CommandRequest{Command: CommandChat, Message: "hi"}))

	res := next(t, conn, "result")
	require.NotNil(t, res.Result)
	assert.True(t, res.Result.OK)
	assert.Equal(t, "sent", res.Result.Outcome)

	require.NoError(t, conn.WriteJSON(CommandRequest{Command: "dance"}))

	res = next(t, conn, "result")
	assert.False(t, res.Result.OK)
	assert.Equal(t, errUnknownCommand.Error(), res.Result.Error)
}

func TestWebsocket_DisconnectReleasesSubscription(t *testing.T) {
	f := newFixture(t, 100)

	srv := httptest.NewServer(f.server.Handler())
	defer srv.Close()

	conn := dial(t, srv.URL)
	next(t, conn, "stats")

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool { return f.pub.Subscribers() == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestStop_ClosesWebsocketClients(t *testing.T) {
	f := newFixture(t, 100)
	require.NoError(t, f.server.Start(context.Background()))

	conn := dial(t, "http://"+f.server.Addr().String())
	next(t, conn, "stats")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, f.server.Stop(ctx))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
	}

	assert.Zero(t, f.pub.Subscribers())
}
