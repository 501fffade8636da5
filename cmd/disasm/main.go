// disasm loads a raw 8080 binary and disassembles it to stdout starting at
// a chosen address, continuing until it runs out of loaded bytes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hatonacat/i8080go/disassemble"
	"github.com/hatonacat/i8080go/memory"
)

var (
	start  = flag.Int("start", 0x0100, "address to start disassembling from")
	offset = flag.Int("offset", 0x0100, "address to load the file at")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("usage: %s [flags] <file>", os.Args[0])
	}

	data, err := os.ReadFile(flag.Args()[0])
	if err != nil {
		log.Fatalf("can't read %s: %v", flag.Args()[0], err)
	}

	ram, err := memory.NewRAM(1 << 16)
	if err != nil {
		log.Fatalf("can't initialize RAM: %v", err)
	}
	ram.PowerOn()
	if err := memory.LoadROM(ram, data, uint16(*offset)); err != nil {
		log.Fatalf("can't load %s: %v", flag.Args()[0], err)
	}

	pc := uint16(*start)
	end := uint16(*offset) + uint16(len(data))
	for pc < end {
		text, length := disassemble.Step(pc, ram)
		fmt.Printf("%04X  %s\n", pc, text)
		pc += uint16(length)
	}
}
