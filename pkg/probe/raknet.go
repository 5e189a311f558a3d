package probe

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
)

const (
	idUnconnectedPing = 0x01
	idUnconnectedPong = 0x1c

	maxDatagram = 1500
)

// offlineMessageID is the RakNet "magic" present in every offline message.
var offlineMessageID = [16]byte{
	0x00, 0xff, 0xff, 0x00, 0xfe, 0xfe, 0xfe, 0xfe,
	0xfd, 0xfd, 0xfd, 0xfd, 0x12, 0x34, 0x56, 0x78,
}

// RakNetProber sends a RakNet unconnected ping over a fresh UDP socket. Any
// reply datagram counts as alive; a well formed pong also fills Result.Info.
type RakNetProber struct {
	guid uint64
	now  func() time.Time
}

func NewRakNetProber() *RakNetProber {
	var b [8]byte
	_, _ = rand.Read(b[:])

	return &RakNetProber{
		guid: binary.BigEndian.Uint64(b[:]),
		now:  time.Now,
	}
}

func (p *RakNetProber) Probe(ctx context.Context, endpoint models.Endpoint, timeout time.Duration) Result {
	ctx, cancel := deadlineFor(ctx, timeout)
	defer cancel()

	var d net.Dialer

	conn, err := d.DialContext(ctx, "udp", endpoint.Address())
	if err != nil {
		return unreachable(fmt.Errorf("dial %s: %w", endpoint.Address(), err))
	}
	defer func() { _ = conn.Close() }()

	deadline, _ := ctx.Deadline()
	if err := conn.SetDeadline(deadline); err != nil {
		return unreachable(err)
	}

	// unblock Read when the parent context is cancelled before the deadline
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Unix(1, 0))
	})
	defer stop()

	start := p.now()

	if _, err := conn.Write(p.ping(start)); err != nil {
		return unreachable(fmt.Errorf("write ping: %w", err))
	}

	buf := make([]byte, maxDatagram)

	n, err := conn.Read(buf)
	if err != nil {
		return unreachable(fmt.Errorf("read pong: %w", err))
	}

	res := Result{Reachable: true, RTT: p.now().Sub(start)}

	if info, err := parsePong(buf[:n]); err == nil {
		res.Info = info
	}

	return res
}

func (p *RakNetProber) ping(at time.Time) []byte {
	b := make([]byte, 0, 1+8+len(offlineMessageID)+8)
	b = append(b, idUnconnectedPing)
	b = binary.BigEndian.AppendUint64(b, uint64(at.UnixMilli()))
	b = append(b, offlineMessageID[:]...)
	b = binary.BigEndian.AppendUint64(b, p.guid)

	return b
}

// parsePong decodes an unconnected pong: id, ping time, server guid, magic,
// then a length-prefixed ';' separated status string.
func parsePong(b []byte) (*ServerInfo, error) {
	const header = 1 + 8 + 8 + 16 + 2

	if len(b) < header || b[0] != idUnconnectedPong {
		return nil, errShortPong
	}

	if [16]byte(b[17:33]) != offlineMessageID {
		return nil, errBadMagic
	}

	size := int(binary.BigEndian.Uint16(b[33:35]))
	if len(b) < header+size {
		return nil, errShortPong
	}

	fields := strings.Split(string(b[header:header+size]), ";")
	get := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}

		return ""
	}

	return &ServerInfo{
		Edition:       get(0),
		MOTD:          get(1),
		Protocol:      get(2),
		Version:       get(3),
		PlayerCount:   get(4),
		MaxPlayers:    get(5),
		SubMOTD:       get(7),
		GameMode:      get(8),
		Advertisement: string(b[header : header+size]),
	}, nil
}
