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

package probe

import (
	"context"
	"fmt"
	"net"
	"os"
	"sync/atomic"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
)

const protocolICMP = 1

// ICMPProber sends one echo request. It prefers the unprivileged datagram
// socket and falls back to a raw socket.
type ICMPProber struct {
	id  int
	seq atomic.Uint32
}

func NewICMPProber() *ICMPProber {
	return &ICMPProber{id: os.Getpid() & 0xffff}
}

func (p *ICMPProber) Probe(ctx context.Context, endpoint models.Endpoint, timeout time.Duration) Result {
	ctx, cancel := deadlineFor(ctx, timeout)
	defer cancel()

	ip, err := resolveIPv4(ctx, endpoint.Host)
	if err != nil {
		return unreachable(err)
	}

	conn, privileged, err := listenICMP()
	if err != nil {
		return unreachable(err)
	}
	defer func() { _ = conn.Close() }()

	deadline, _ := ctx.Deadline()
	if err := conn.SetDeadline(deadline); err != nil {
		return unreachable(err)
	}

	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Unix(1, 0))
	})
	defer stop()

	seq := int(p.seq.Add(1) & 0xffff)

	msg := icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{ID: p.id, Seq: seq, Data: []byte("afkbot")},
	}

	b, err := msg.Marshal(nil)
	if err != nil {
		return unreachable(fmt.Errorf("marshal echo: %w", err))
	}

	var dst net.Addr = &net.UDPAddr{IP: ip}
	if privileged {
		dst = &net.IPAddr{IP: ip}
	}

	start := time.Now()

	if _, err := conn.WriteTo(b, dst); err != nil {
		return unreachable(fmt.Errorf("write echo: %w", err))
	}

	buf := make([]byte, maxDatagram)

	for {
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			return unreachable(fmt.Errorf("read echo reply: %w", err))
		}

		reply, err := icmp.ParseMessage(protocolICMP, buf[:n])
		if err != nil {
			continue
		}

		if reply.Type != ipv4.ICMPTypeEchoReply {
			continue
		}

		// unprivileged sockets rewrite the id, so only the sequence is checked
		if echo, ok := reply.Body.(*icmp.Echo); ok && echo.Seq == seq {
			return Result{Reachable: true, RTT: time.Since(start)}
		}
	}
}

func listenICMP() (*icmp.PacketConn, bool, error) {
	conn, err := icmp.ListenPacket("udp4", "0.0.0.0")
	if err == nil {
		return conn, false, nil
	}

	conn, rawErr := icmp.ListenPacket("ip4:icmp", "0.0.0.0")
	if rawErr != nil {
		return nil, false, fmt.Errorf("failed to open ICMP socket: %w", rawErr)
	}

	return conn, true, nil
}

func resolveIPv4(ctx context.Context, host string) (net.IP, error) {
	if ip := net.ParseIP(host); ip != nil {
		if v4 := ip.To4(); v4 != nil {
			return v4, nil
		}

		return nil, fmt.Errorf("%w: %s", errNoAddress, host)
	}

	addrs, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", host, err)
	}

	if len(addrs) == 0 {
		return nil, fmt.Errorf("%w: %s", errNoAddress, host)
	}

	return addrs[0], nil
}
