// Package bus wires memory.Bank and bdos.Shim together behind the single
// interface the cpu package depends on. It is a pure multiplexer: it holds
// no state of its own beyond references to the components it routes
// between.
package bus

import (
	"github.com/hatonacat/i8080go/bdos"
	"github.com/hatonacat/i8080go/memory"
)

// Bus routes CPU reads/writes to RAM and CPU-originated BDOS calls (CALL
// 0x0005) to the BDOS shim.
type Bus struct {
	RAM  memory.Bank
	BDOS *bdos.Shim
}

// New returns a Bus wrapping the given RAM bank with a fresh BDOS shim.
func New(ram memory.Bank) *Bus {
	return &Bus{
		RAM:  ram,
		BDOS: bdos.New(),
	}
}

// Read implements cpu.Bus.
func (b *Bus) Read(addr uint16) uint8 {
	return b.RAM.Read(addr)
}

// Write implements cpu.Bus.
func (b *Bus) Write(addr uint16, val uint8) {
	b.RAM.Write(addr, val)
}

// BDOSRequest implements cpu.Bus: the CPU trapped a CALL to 0x0005 and
// hands off the function code/arguments it found in C/D/E.
func (b *Bus) BDOSRequest(c, d, e uint8) {
	b.BDOS.Request(b.RAM, c, d, e)
}
