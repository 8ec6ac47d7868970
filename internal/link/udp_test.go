// internal/link/udp_test.go
package link

import (
	"bytes"
	"net"
	"testing"
	"time"

	"github.com/klaussner/quadlink/internal/control"
	"github.com/klaussner/quadlink/internal/packet"
)

func TestUDPSinkSendsOneDatagramPerFrame(t *testing.T) {
	lc, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer lc.Close()

	port := lc.LocalAddr().(*net.UDPAddr).Port
	sink, err := DialUDP("127.0.0.1", port, time.Second)
	if err != nil {
		t.Fatalf("DialUDP: %v", err)
	}
	defer sink.Close()

	f := packet.Encode(packet.Frame{}, control.Neutral(), 0)
	if err := sink.Send(f); err != nil {
		t.Fatalf("Send: %v", err)
	}

	buf := make([]byte, 64)
	lc.SetReadDeadline(time.Now().Add(time.Second))
	n, _, err := lc.ReadFromUDP(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if n != packet.Length {
		t.Fatalf("datagram length = %d, want %d", n, packet.Length)
	}
	if !bytes.Equal(buf[:n], f[:]) {
		t.Errorf("datagram payload differs from encoded frame")
	}
}

func TestDialUDPRequiresAddress(t *testing.T) {
	if _, err := DialUDP("", 9001, 0); err == nil {
		t.Errorf("expected error for empty address")
	}
}
