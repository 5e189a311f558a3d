package probe

import (
	"context"
	"testing"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestICMPProber_Loopback(t *testing.T) {
	conn, _, err := listenICMP()
	if err != nil {
		t.Skipf("ICMP sockets unavailable: %v", err)
	}

	require.NoError(t, conn.Close())

	res := NewICMPProber().Probe(context.Background(), models.Endpoint{Host: "127.0.0.1"}, 2*time.Second)
	assert.True(t, res.Reachable, "err: %v", res.Err)
}

func TestICMPProber_IPv6Rejected(t *testing.T) {
	res := NewICMPProber().Probe(context.Background(), models.Endpoint{Host: "::1"}, time.Second)

	assert.False(t, res.Reachable)
	assert.ErrorIs(t, res.Err, errNoAddress)
}
