package agent

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/config"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/db"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/probe"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testConfig(t *testing.T) *config.AgentConfig {
	t.Helper()

	cfg := &config.AgentConfig{}
	cfg.SetDefaults()
	cfg.Endpoint.Host = "play.example.net"
	cfg.Endpoint.Offline = true
	cfg.Dashboard.ListenAddr = "127.0.0.1:0"
	cfg.Watchdog.Interval = config.Duration(time.Hour)
	cfg.DataDir = t.TempDir()

	require.NoError(t, cfg.Validate())

	return cfg
}

type fakeHealth struct {
	mu         sync.Mutex
	components map[string]bool
}

func (f *fakeHealth) SetServing(bool) {}

func (f *fakeHealth) SetComponentServing(component string, serving bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.components[component] = serving
}

func (f *fakeHealth) get(component string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.components[component]
}

func TestAgent_ReachableEndpointGetsSessionAndStopTearsDown(t *testing.T) {
	ctrl := gomock.NewController(t)

	prober := probe.NewMockProber(ctrl)
	dialer := session.NewMockDialer(ctrl)
	client := session.NewMockClient(ctrl)

	cfg := testConfig(t)

	prober.EXPECT().Probe(gomock.Any(), cfg.Endpoint, 3*time.Second).
		Return(probe.Result{Reachable: true, RTT: 5 * time.Millisecond}).AnyTimes()

	dialer.EXPECT().Open(cfg.Endpoint).Return(client, nil).Times(1)

	client.EXPECT().Run(gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, events chan<- session.Event) {
			events <- session.Event{Type: session.EventJoin}
			events <- session.Event{Type: session.EventSpawn}
			<-ctx.Done()
		})
	client.EXPECT().Move(gomock.Any()).Return(nil).AnyTimes()
	client.EXPECT().Close().Return(nil).Times(1)

	a, err := New(cfg, zap.NewNop(), WithProber(prober), WithDialer(dialer))
	require.NoError(t, err)

	health := &fakeHealth{components: map[string]bool{}}
	a.SetHealthReporter(health)
	assert.False(t, health.get(upstreamHealthID))

	require.NoError(t, a.Start(context.Background()))
	assert.NotEmpty(t, a.DashboardAddr())

	require.Eventually(t, func() bool {
		return a.Publisher().Snapshot().Phase == models.PhaseInGame
	}, 2*time.Second, 5*time.Millisecond)

	snap := a.Publisher().Snapshot()
	assert.True(t, snap.ServerOnline)
	assert.Equal(t, 1, snap.ReconnectAttempts)
	assert.NotZero(t, snap.Uptime)
	assert.True(t, health.get(upstreamHealthID))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, a.Stop(ctx))
	require.NoError(t, a.Stop(ctx))

	assert.False(t, a.Sessions().HasSession())
	assert.Equal(t, models.PhaseDisconnected, a.Sessions().Phase())
}

func TestAgent_StartFailsWhenDashboardPortBusy(t *testing.T) {
	ctrl := gomock.NewController(t)

	first, err := New(testConfig(t), zap.NewNop(),
		WithProber(probe.NewMockProber(ctrl)), WithDialer(session.NewMockDialer(ctrl)))
	require.NoError(t, err)

	// Start only the dashboard so no probe runs.
	require.NoError(t, first.dashboard.Start(context.Background()))

	defer func() { _ = first.Stop(context.Background()) }()

	cfg := testConfig(t)
	cfg.Dashboard.ListenAddr = first.DashboardAddr()

	second, err := New(cfg, zap.NewNop(),
		WithProber(probe.NewMockProber(ctrl)), WithDialer(session.NewMockDialer(ctrl)))
	require.NoError(t, err)

	require.ErrorIs(t, second.Start(context.Background()), errFailedToStartDash)

	// the history store is released without a Stop
	err = second.store.RecordProbe(context.Background(), &db.ProbeRecord{Timestamp: time.Now(), Reachable: true})
	require.Error(t, err)

	require.NoError(t, second.Stop(context.Background()))
}

func TestAgent_AlertServices(t *testing.T) {
	cfg := testConfig(t)
	cfg.Alerts.Telegram = config.TelegramConfig{Token: "t", ChatID: "c"}
	cfg.Alerts.Discord.URL = "https://discord.example/webhook"

	a, err := New(cfg, zap.NewNop(), WithProber(probe.NewMockProber(gomock.NewController(t))))
	require.NoError(t, err)

	defer func() { _ = a.Stop(context.Background()) }()

	assert.Len(t, a.alertServices(), 2)
}
