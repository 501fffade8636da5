package bus

import (
	"testing"

	"github.com/hatonacat/i8080go/memory"
)

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	ram, err := memory.NewRAM(256)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	return New(ram)
}

func TestReadWriteDelegatesToRAM(t *testing.T) {
	b := newTestBus(t)
	b.Write(0x10, 0x99)
	if got := b.Read(0x10); got != 0x99 {
		t.Fatalf("Read(0x10) = %#02x, want 0x99", got)
	}
}

func TestBDOSRequestReachesShim(t *testing.T) {
	b := newTestBus(t)
	b.BDOSRequest(2, 0, 0x41)
	if got, want := b.BDOS.Output(), "41"; got != want {
		t.Fatalf("BDOS.Output() = %q, want %q", got, want)
	}
}
