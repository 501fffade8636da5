package cpu

// Info exposes the instruction-length metadata the disassemble package
// needs without reaching into the opcode table's unexported fields
// directly. ok is false for an opcode with no table entry, matching
// UnimplementedOpcode at Step time.
func Info(opcode uint8) (mnemonic string, length int, ok bool) {
	info := &opcodeTable[opcode]
	if info.exec == nil {
		return "", 1, false
	}
	switch info.mode {
	case amImm8, amImmIndirectHL:
		return info.mnemonic, 2, true
	case amImm16, amDirect:
		return info.mnemonic, 3, true
	default:
		return info.mnemonic, 1, true
	}
}
