package bdos

import "testing"

// fakeReader is a tiny Reader stand-in so tests don't need the real
// memory package.
type fakeReader struct {
	mem [1 << 16]uint8
}

func (r *fakeReader) Read(addr uint16) uint8 { return r.mem[addr] }

func TestWriteByteFormatsHex(t *testing.T) {
	s := New()
	s.Request(&fakeReader{}, FuncWriteByte, 0, 0x0A)
	if got, want := s.Output(), "0a"; got != want {
		t.Fatalf("Output() = %q, want %q", got, want)
	}
	if got := s.LastByte(); got != 0x0A {
		t.Fatalf("LastByte() = %#02x, want 0x0A", got)
	}
}

func TestWriteStringSkipsPrefixAndStopsAtDollar(t *testing.T) {
	r := &fakeReader{}
	msg := []uint8{0, 0, 0, 0, 'H', 'i', '$', 'X'}
	for i, b := range msg {
		r.mem[0x0100+i] = b
	}
	s := New()
	s.Request(r, FuncWriteString, 0x01, 0x00)
	if got, want := s.Output(), "Hi"; got != want {
		t.Fatalf("Output() = %q, want %q", got, want)
	}
}

func TestUnknownFunctionIsNoOpButCounted(t *testing.T) {
	s := New()
	s.Request(&fakeReader{}, 42, 0, 0)
	if got := s.Output(); got != "" {
		t.Fatalf("Output() = %q, want empty", got)
	}
	if got := s.Calls(42); got != 1 {
		t.Fatalf("Calls(42) = %d, want 1", got)
	}
}

func TestMultipleWritesAccumulate(t *testing.T) {
	s := New()
	s.Request(&fakeReader{}, FuncWriteByte, 0, 0x41)
	s.Request(&fakeReader{}, FuncWriteByte, 0, 0x42)
	if got, want := s.Output(), "4142"; got != want {
		t.Fatalf("Output() = %q, want %q", got, want)
	}
	if got := s.Calls(FuncWriteByte); got != 2 {
		t.Fatalf("Calls(FuncWriteByte) = %d, want 2", got)
	}
}
