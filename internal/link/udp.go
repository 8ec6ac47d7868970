// internal/link/udp.go
package link

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/klaussner/quadlink/internal/packet"
)

// UDPSink sends frames to the drone's control port, one datagram per
// frame. Writes carry a deadline so a wedged socket surfaces as a
// transport error instead of stalling the tick loop.
type UDPSink struct {
	conn    *net.UDPConn
	timeout time.Duration
}

// DialUDP connects a sink to the drone. timeout bounds each send;
// zero means no deadline.
func DialUDP(address string, port int, timeout time.Duration) (*UDPSink, error) {
	if address == "" {
		return nil, errors.New("link: drone address required")
	}

	raddr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(address, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("link: resolving drone address: %w", err)
	}

	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return nil, fmt.Errorf("link: dialing drone: %w", err)
	}

	return &UDPSink{conn: conn, timeout: timeout}, nil
}

// Send transmits one frame. Implements Sink.
func (u *UDPSink) Send(f packet.Frame) error {
	if u.timeout > 0 {
		if err := u.conn.SetWriteDeadline(time.Now().Add(u.timeout)); err != nil {
			return err
		}
	}
	_, err := u.conn.Write(f[:])
	return err
}

// Close releases the socket.
func (u *UDPSink) Close() error {
	return u.conn.Close()
}
