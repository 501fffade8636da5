// cpudiag loads an 8080 CP/M-format diagnostic ROM (CPUDIAG and
// work-alikes) and runs it to completion, printing whatever it writes
// through the BDOS console shim. Given no ROM path, it runs a small bundled
// smoke-test ROM instead (see testdata/cpudiag.hex), assembled on the fly
// with package asm.
package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hatonacat/i8080go/asm"
	"github.com/hatonacat/i8080go/bus"
	"github.com/hatonacat/i8080go/cpu"
	"github.com/hatonacat/i8080go/memory"
)

//go:embed testdata/cpudiag.hex
var defaultROMListing string

var (
	ramSize  = flag.Int("ram_size", 16384, "RAM size in bytes; CPUDIAG is written for a 16KiB address space")
	origin   = flag.Int("origin", 0x0100, "address the ROM image is loaded at and execution begins from")
	selfTest = flag.Bool("selftest", true, "CPUDIAG mode: start at 0x0100, apply the two CPUDIAG patches, and treat a jump to address 0x0000 mid-run as its failure sentinel")
	maxSteps = flag.Int("max_steps", 50_000_000, "abort after this many instructions if the program never halts itself")
)

func loadROM() ([]byte, error) {
	switch len(flag.Args()) {
	case 0:
		return asm.Assemble(strings.NewReader(defaultROMListing), 0)
	case 1:
		return os.ReadFile(flag.Args()[0])
	default:
		return nil, fmt.Errorf("usage: %s [flags] [rom-file]", os.Args[0])
	}
}

func main() {
	flag.Parse()
	rom, err := loadROM()
	if err != nil {
		log.Fatalf("can't load ROM: %v", err)
	}

	ram, err := memory.NewRAM(*ramSize)
	if err != nil {
		log.Fatalf("can't initialize RAM: %v", err)
	}
	ram.PowerOn()
	if err := memory.LoadROM(ram, rom, uint16(*origin)); err != nil {
		log.Fatalf("can't load ROM: %v", err)
	}
	if *selfTest {
		// CPUDIAG patches: put 0x07 at 0x0170 so its stack pointer setup
		// works, and a JMP 0x05C2 at 0x059C to skip the DAA check.
		ram.Write(0x0170, 0x07)
		ram.Write(0x059C, 0xC3)
		ram.Write(0x059D, 0xC2)
		ram.Write(0x059E, 0x05)
	}

	b := bus.New(ram)
	chip, err := cpu.Init(&cpu.ChipDef{Bus: b, SelfTest: *selfTest})
	if err != nil {
		log.Fatalf("can't initialize CPU: %v", err)
	}

	var stepErr error
	steps := 0
	for ; steps < *maxSteps; steps++ {
		if stepErr = chip.Step(); stepErr != nil {
			break
		}
	}

	fmt.Print(b.BDOS.Output())

	var trap cpu.BDOSTrap
	switch {
	case errors.As(stepErr, &trap):
		fmt.Fprintf(os.Stderr, "\nhalted cleanly after %d instructions (%d cycles): %v\n", chip.Ops(), chip.Cycles(), stepErr)
		os.Exit(0)
	case stepErr != nil:
		fmt.Fprintf(os.Stderr, "\nhalted after %d instructions (%d cycles): %v\n", chip.Ops(), chip.Cycles(), stepErr)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "\nstopped after %d instructions without halting (max_steps reached)\n", steps)
		os.Exit(2)
	}
}
