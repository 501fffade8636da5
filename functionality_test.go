// Package functionality does basic end-to-end verification of the 8080
// core: a full CPU wired to a real Bus and RAM, running a hand-assembled
// program rather than exercising cpu in isolation against a fake.
package functionality

import (
	"strings"
	"testing"

	"github.com/hatonacat/i8080go/bus"
	"github.com/hatonacat/i8080go/cpu"
	"github.com/hatonacat/i8080go/memory"
)

// assemble writes prog at 0x0100 (CP/M's conventional TPA origin) into a
// fresh 16KiB bank and returns a Chip ready to run it in self-test mode,
// matching how cmd/cpudiag loads a real diagnostic ROM.
func assemble(t *testing.T, prog []uint8) (*cpu.Chip, *bus.Bus) {
	t.Helper()
	ram, err := memory.NewRAM(16384)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	ram.PowerOn()
	if err := memory.LoadROM(ram, prog, 0x0100); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	b := bus.New(ram)
	c, err := cpu.Init(&cpu.ChipDef{Bus: b, SelfTest: true})
	if err != nil {
		t.Fatalf("cpu.Init: %v", err)
	}
	return c, b
}

func run(t *testing.T, c *cpu.Chip, maxSteps int) error {
	t.Helper()
	for i := 0; i < maxSteps; i++ {
		if err := c.Step(); err != nil {
			return err
		}
	}
	t.Fatalf("program did not halt within %d steps", maxSteps)
	return nil
}

// TestHelloWorldReportsViaBDOS is the smallest possible stand-in for
// CPUDIAG's own pattern: compute something, print a message through BDOS
// function 9, and trap out via CALL 0x0005. It exercises the CPU, Bus, and
// BDOS shim together exactly the way a real diagnostic ROM would.
func TestHelloWorldReportsViaBDOS(t *testing.T) {
	const msgAddr = 0x0200
	msg := append([]byte{0, 0, 0, 0}, []byte("CPU IS OPERATIONAL$")...)

	prog := make([]uint8, 0)
	prog = append(prog,
		0x3E, 0x02, // 0x0100: MVI A,2
		0xC6, 0x03, // 0x0102: ADI 3      (A = 5)
		0xFE, 0x05, // 0x0104: CPI 5      (Z set if A==5)
		0xCA, 0x0A, 0x01, // 0x0106: JZ 0x010A (taken)
		0x76, // 0x0109: unreachable, never-modeled opcode; would halt as unimplemented
		0x11, 0x00, 0x02, // 0x010A: LXI D,msgAddr
		0x0E, 0x09, // 0x010D: MVI C,9
		0xCD, 0x05, 0x00, // 0x010F: CALL 0x0005
	)
	// Pad up to msgAddr and place the message there.
	for len(prog) < msgAddr-0x0100 {
		prog = append(prog, 0x00)
	}
	prog = append(prog, msg...)

	c, b := assemble(t, prog)
	err := run(t, c, 1000)

	if trap, ok := err.(cpu.BDOSTrap); !ok || trap.Func != 9 {
		t.Fatalf("run() = %v (%T), want a BDOSTrap{Func:9}", err, trap)
	}
	if got, want := b.BDOS.Output(), "CPU IS OPERATIONAL"; got != want {
		t.Fatalf("console output = %q, want %q", got, want)
	}
}

// TestDiagFailureSentinel exercises the self-test halt condition CPUDIAG
// itself relies on: a jump to address 0x0000 is treated as a failure, not
// a legitimate branch.
func TestDiagFailureSentinel(t *testing.T) {
	prog := []uint8{
		0xC3, 0x00, 0x00, // JMP 0x0000
	}
	c, _ := assemble(t, prog)
	err := run(t, c, 10)
	if _, ok := err.(cpu.DiagFailure); !ok {
		t.Fatalf("run() = %v (%T), want DiagFailure", err, err)
	}
}

// TestUnimplementedOpcodeIsReported checks that a program that runs off
// into an opcode this core never modeled (here, HLT at 0x76) halts with a descriptive error instead of silently corrupting
// state.
func TestUnimplementedOpcodeIsReported(t *testing.T) {
	prog := []uint8{0x76}
	c, _ := assemble(t, prog)
	err := run(t, c, 10)
	unimpl, ok := err.(cpu.UnimplementedOpcode)
	if !ok {
		t.Fatalf("run() = %v (%T), want UnimplementedOpcode", err, err)
	}
	if !strings.Contains(unimpl.Error(), "0x76") {
		t.Fatalf("error %q should mention opcode 0x76", unimpl.Error())
	}
}
