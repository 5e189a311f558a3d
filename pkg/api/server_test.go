package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/db"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/metrics"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/session"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testEndpoint = models.Endpoint{Host: "play.example.net", Port: 19132, Username: "someone@example.com"}

type fixture struct {
	server   *APIServer
	sessions *MockSessionCommander
	history  *db.MockService
	pub      *status.Publisher
	buf      metrics.MetricStore
}

func newFixture(t *testing.T, cps float64) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		sessions: NewMockSessionCommander(ctrl),
		history:  db.NewMockService(ctrl),
		pub:      status.NewPublisher(status.Config{Memory: func() float64 { return 3.5 }}),
		buf:      metrics.NewBuffer(4),
	}

	f.server = NewAPIServer(Config{
		ListenAddr:        "127.0.0.1:0",
		Endpoint:          testEndpoint,
		Sessions:          f.sessions,
		Status:            f.pub,
		History:           f.history,
		Metrics:           f.buf,
		CommandsPerSecond: cps,
	})

	return f
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	rr := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rr, req)

	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))

	return v
}

func TestGetStatus(t *testing.T) {
	f := newFixture(t, 0)
	f.pub.SessionChanged(models.SessionState{Phase: models.PhaseConnected, Attempts: 2})

	rr := f.do(t, http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	raw := decode[map[string]any](t, rr)
	assert.Equal(t, "Connected", raw["status"])
	assert.EqualValues(t, 2, raw["reconnectAttempts"])
	assert.Contains(t, raw, "serverOnline")
	assert.Contains(t, raw, "chatMessages")
}

func TestGetConfig_HidesOnlineAccount(t *testing.T) {
	f := newFixture(t, 0)

	rr := f.do(t, http.MethodGet, "/api/config", "")
	require.Equal(t, http.StatusOK, rr.Code)

	cfg := decode[configResponse](t, rr)
	assert.Equal(t, "play.example.net", cfg.Host)
	assert.Equal(t, 19132, cfg.Port)
	assert.Empty(t, cfg.Username)
	assert.NotContains(t, rr.Body.String(), "someone@example.com")
}

func TestGetHistory(t *testing.T) {
	f := newFixture(t, 0)

	f.history.EXPECT().GetProbeHistory(gomock.Any(), 5).
		Return([]db.ProbeRecord{{Reachable: true, RTT: time.Millisecond}}, nil)
	f.history.EXPECT().GetSessionHistory(gomock.Any(), 0).Return(nil, nil)

	rr := f.do(t, http.MethodGet, "/api/history?limit=5", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]db.ProbeRecord](t, rr), 1)

	rr = f.do(t, http.MethodGet, "/api/sessions", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())
}

func TestGetHistory_Error(t *testing.T) {
	f := newFixture(t, 0)

	f.history.EXPECT().GetProbeHistory(gomock.Any(), gomock.Any()).Return(nil, errors.New("locked"))

	rr := f.do(t, http.MethodGet, "/api/history", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetHistory_Disabled(t *testing.T) {
	s := NewAPIServer(Config{Status: status.NewPublisher(status.Config{})})

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/history", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetMetrics(t *testing.T) {
	f := newFixture(t, 0)
	f.buf.Add(time.Now(), 8*time.Millisecond, true)

	rr := f.do(t, http.MethodGet, "/api/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)

	points := decode[[]models.MetricPoint](t, rr)
	require.Len(t, points, 1)
	assert.True(t, points[0].Reachable)
}

func TestCommands(t *testing.T) {
	f := newFixture(t, 100)

	f.sessions.EXPECT().StopActions()
	f.sessions.EXPECT().Stop(reasonDashboard).Return(false)
	f.sessions.EXPECT().Reconnect(gomock.Any()).Return(nil)

	rr := f.do(t, http.MethodPost, "/api/commands/stop", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode[CommandResult](t, rr).OK)

	rr = f.do(t, http.MethodPost, "/api/commands/disconnect", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "no session", decode[CommandResult](t, rr).Outcome)

	rr = f.do(t, http.MethodPost, "/api/commands/reconnect", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = f.do(t, http.MethodPost, "/api/commands/explode", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestReconnect_Failure(t *testing.T) {
	f := newFixture(t, 100)

	f.sessions.EXPECT().Reconnect(gomock.Any()).Return(session.ErrOpenFailed)

	rr := f.do(t, http.MethodPost, "/api/commands/reconnect", "")
	require.Equal(t, http.StatusBadGateway, rr.Code)

	res := decode[CommandResult](t, rr)
	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Error)
}

func TestChat(t *testing.T) {
	f := newFixture(t, 100)

	f.sessions.EXPECT().Chat("hello world").Return(session.Sent)
	f.sessions.EXPECT().Chat("").Return(session.Skipped)

	rr := f.do(t, http.MethodPost, "/api/chat", `{"message":"hello world"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode[CommandResult](t, rr).OK)

	rr = f.do(t, http.MethodPost, "/api/chat", `{"message":""}`)
	require.Equal(t, http.StatusOK, rr.Code)

	res := decode[CommandResult](t, rr)
	assert.False(t, res.OK)
	assert.Empty(t, res.Error)

	rr = f.do(t, http.MethodPost, "/api/chat", `not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCommands_RateLimited(t *testing.T) {
	f := newFixture(t, 1)

	f.sessions.EXPECT().StopActions().Times(1)

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/api/commands/stop", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, f.do(t, http.MethodPost, "/api/commands/stop", "").Code)
}

func TestIndexServed(t *testing.T) {
	f := newFixture(t, 0)

	rr := f.do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Bedrock AFK Bot")
}

func TestStart_FailsOnBusyPort(t *testing.T) {
	first := newFixture(t, 0)
	require.NoError(t, first.server.Start(context.Background()))

	defer func() { _ = first.server.Stop(context.Background()) }()

	second := NewAPIServer(Config{ListenAddr: first.server.Addr().String(), Status: first.pub})
	require.ErrorIs(t, second.Start(context.Background()), errFailedToListen)
}
