// Package disassemble implements a disassembler for 8080 opcodes.
package disassemble

import (
	"fmt"

	"github.com/hatonacat/i8080go/cpu"
	"github.com/hatonacat/i8080go/memory"
)

// Step disassembles the instruction at pc, returning its text rendering and
// the number of bytes it occupies. It does not interpret the instruction:
// a JMP target is printed, not followed, so disassembling straight through
// embedded data will desync in the usual way.
func Step(pc uint16, b memory.Bank) (string, int) {
	opcode := b.Read(pc)
	mnemonic, length, ok := cpu.Info(opcode)
	if !ok {
		return fmt.Sprintf(".DB $%02X", opcode), 1
	}
	switch length {
	case 2:
		return fmt.Sprintf("%-8s$%02X", mnemonic, b.Read(pc+1)), 2
	case 3:
		lo, hi := b.Read(pc+1), b.Read(pc+2)
		return fmt.Sprintf("%-8s$%02X%02X", mnemonic, hi, lo), 3
	default:
		return mnemonic, 1
	}
}
