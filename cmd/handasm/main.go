// handasm assembles a hand-written hex listing (see package asm) into a raw
// binary file. cmd/cpudiag does not need it for its bundled default ROM: it
// embeds testdata/cpudiag.hex and assembles it in-process with package asm.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hatonacat/i8080go/asm"
)

var offset = flag.Int("offset", 0x0000, "offset to start writing assembled data; everything prior is zero filled")

func main() {
	flag.Parse()
	if len(flag.Args()) != 2 {
		log.Fatalf("usage: %s [-offset N] <input.hex> <output.bin>", os.Args[0])
	}
	in, err := os.Open(flag.Args()[0])
	if err != nil {
		log.Fatalf("can't open %s: %v", flag.Args()[0], err)
	}
	defer in.Close()

	out, err := asm.Assemble(in, *offset)
	if err != nil {
		log.Fatalf("can't assemble %s: %v", flag.Args()[0], err)
	}
	if err := os.WriteFile(flag.Args()[1], out, 0o644); err != nil {
		log.Fatalf("can't write %s: %v", flag.Args()[1], err)
	}
}
