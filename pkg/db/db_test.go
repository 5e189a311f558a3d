package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestDB(t *testing.T) Service {
	t.Helper()

	svc, err := New(filepath.Join(t.TempDir(), "afkbot.db"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = svc.Close() })

	return svc
}

func TestProbeHistory_NewestFirst(t *testing.T) {
	svc := newTestDB(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Minute)

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.RecordProbe(ctx, &ProbeRecord{
			Timestamp: base.Add(time.Duration(i) * time.Second),
			Reachable: i != 1,
			RTT:       time.Duration(i+1) * time.Millisecond,
		}))
	}

	require.NoError(t, svc.RecordProbe(ctx, &ProbeRecord{
		Timestamp: base.Add(10 * time.Second),
		Error:     "i/o timeout",
	}))

	got, err := svc.GetProbeHistory(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.False(t, got[0].Reachable)
	assert.Equal(t, "i/o timeout", got[0].Error)
	assert.True(t, got[1].Reachable)
	assert.Equal(t, 3*time.Millisecond, got[1].RTT)
}

func TestSessionHistory_RoundTrip(t *testing.T) {
	svc := newTestDB(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, svc.RecordSession(ctx, &SessionRecord{
		Timestamp: now,
		Phase:     models.PhaseFatalError,
		Reason:    "open",
		Attempts:  2,
		LastError: "dial refused",
	}))

	got, err := svc.GetSessionHistory(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, models.PhaseFatalError, got[0].Phase)
	assert.Equal(t, "open", got[0].Reason)
	assert.Equal(t, 2, got[0].Attempts)
	assert.Equal(t, "dial refused", got[0].LastError)
	assert.Equal(t, now.UnixMilli(), got[0].Timestamp.UnixMilli())
}

func TestCleanOldData(t *testing.T) {
	svc := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, svc.RecordProbe(ctx, &ProbeRecord{Timestamp: time.Now().Add(-48 * time.Hour)}))
	require.NoError(t, svc.RecordProbe(ctx, &ProbeRecord{Timestamp: time.Now(), Reachable: true}))
	require.NoError(t, svc.RecordSession(ctx, &SessionRecord{
		Timestamp: time.Now().Add(-48 * time.Hour),
		Phase:     models.PhaseDisconnected,
	}))

	require.NoError(t, svc.CleanOldData(ctx, 24*time.Hour))

	probes, err := svc.GetProbeHistory(ctx, 10)
	require.NoError(t, err)
	require.Len(t, probes, 1)
	assert.True(t, probes[0].Reachable)

	sessions, err := svc.GetSessionHistory(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, defaultHistoryLimit, clampLimit(0))
	assert.Equal(t, defaultHistoryLimit, clampLimit(-5))
	assert.Equal(t, 10, clampLimit(10))
	assert.Equal(t, maxHistoryLimit, clampLimit(maxHistoryLimit+1))
}

func TestRecorder_PersistsObservations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockService(ctrl)
	now := time.Now()

	store.EXPECT().RecordProbe(gomock.Any(), &ProbeRecord{
		Timestamp: now,
		Error:     "timeout",
	}).Return(nil)

	store.EXPECT().RecordSession(gomock.Any(), &SessionRecord{
		Timestamp: now,
		Phase:     models.PhaseConnecting,
		Reason:    "watchdog",
		Attempts:  1,
	}).Return(errors.New("disk full"))

	rec := NewRecorder(store, zap.NewNop())

	rec.ProbeObserved(now, probe.Result{Err: errors.New("timeout")})
	rec.SessionChanged(models.SessionState{
		Phase:     models.PhaseConnecting,
		Reason:    "watchdog",
		Attempts:  1,
		Timestamp: now,
	})
	rec.ChatReceived(models.ChatEntry{Message: "ignored"})

	rec.Close()
	rec.Close()

	// dropped after close
	rec.ProbeObserved(now, probe.Result{Reachable: true})
}
