package cpu

// execPUSH implements PUSH BC/DE/HL: push the pair's 16-bit value.
func execPUSH(c *Chip, info *instruction, ops *operands) uint8 {
	c.pushWord(c.pairValue(info.pair))
	return 0
}

// execPOP implements POP BC/DE/HL: pop a 16-bit value into the pair.
func execPOP(c *Chip, info *instruction, ops *operands) uint8 {
	c.setPairValue(info.pair, c.popWord())
	return 0
}

// execPUSHPSW implements PUSH PSW: push A in the high byte, F (masked to
// its five live bits) in the low byte.
func execPUSHPSW(c *Chip, info *instruction, ops *operands) uint8 {
	c.pushWord(uint16(c.reg(regA))<<8 | uint16(c.F&pswMask))
	return 0
}

// execPOPPSW implements POP PSW: pop into A and F, masking F so the three
// unused bit positions always read back zero regardless of what was on the
// stack.
func execPOPPSW(c *Chip, info *instruction, ops *operands) uint8 {
	word := c.popWord()
	c.setReg(regA, uint8(word>>8))
	c.F = uint8(word) & pswMask
	return 0
}

// execXTHL implements XTHL: exchange HL with the word at the top of the
// stack, without moving SP.
func execXTHL(c *Chip, info *instruction, ops *operands) uint8 {
	lo := c.bus.Read(c.SP)
	hi := c.bus.Read(c.SP + 1)
	stackVal := uint16(hi)<<8 | uint16(lo)
	hl := c.HL()
	c.bus.Write(c.SP, uint8(hl))
	c.bus.Write(c.SP+1, uint8(hl>>8))
	c.SetHL(stackVal)
	return 0
}

// execSPHL implements SPHL: SP <- HL.
func execSPHL(c *Chip, info *instruction, ops *operands) uint8 {
	c.SP = c.HL()
	return 0
}
