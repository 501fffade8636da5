package cpu

// execNOP implements NOP.
func execNOP(c *Chip, info *instruction, ops *operands) uint8 {
	return 0
}

// execJMP implements both JMP and the eight conditional JccMPs. All nine
// cost the same 10 cycles whether or not the jump is taken, so unlike
// CALL/RET there is no extra cycle count to report here.
func execJMP(c *Chip, info *instruction, ops *operands) uint8 {
	if c.condTrue(info.cond) {
		c.PC = ops.imm16
	}
	return 0
}

// execCALL implements the unconditional CALL. PC's address after CALL
// (post-fetch) is pushed to the stack and PC jumps to the target, except
// for the one target CPUDIAG actually calls: 0x0005, the CP/M BDOS entry
// point. Real CP/M would execute BDOS's own code at that address; this
// core has no BDOS code to run, so it intercepts the call directly and
// halts with BDOSTrap instead of pushing a return address into a program
// counter that would never come back.
func execCALL(c *Chip, info *instruction, ops *operands) uint8 {
	if ops.imm16 == 0x0005 {
		c.trappedVal = c.reg(regC)
		c.bus.BDOSRequest(c.reg(regC), c.reg(regD), c.reg(regE))
		c.halted = true
		c.haltErr = BDOSTrap{Func: c.trappedVal}
		return 0
	}
	c.pushWord(c.PC)
	c.PC = ops.imm16
	return 0
}

// execCALLcond implements the eight conditional CALLs. Conditional CALL
// costs 11 cycles when not taken, 17 when taken; the opcode table carries
// the base 11 and this reports the extra 6 when the branch is taken. Unlike
// execCALL, this never checks for the 0x0005 BDOS trap: CPUDIAG only ever
// reaches BDOS through an unconditional CALL, and the source's conditional
// call routine has no such check either, so a conditional CALL landing on
// 0x0005 pushes and jumps there like any other target instead of halting.
func execCALLcond(c *Chip, info *instruction, ops *operands) uint8 {
	if !c.condTrue(info.cond) {
		return 0
	}
	c.pushWord(c.PC)
	c.PC = ops.imm16
	return 6
}

// execRET implements the unconditional RET: pop the return address from
// the stack into PC.
func execRET(c *Chip, info *instruction, ops *operands) uint8 {
	c.PC = c.popWord()
	return 0
}

// execRETcond implements the eight conditional RETs. Conditional RET costs
// 5 cycles when not taken, 11 when taken.
func execRETcond(c *Chip, info *instruction, ops *operands) uint8 {
	if !c.condTrue(info.cond) {
		return 0
	}
	c.PC = c.popWord()
	return 6
}

// execPCHL implements PCHL: PC <- HL. Unlike a source bug that confused
// PCHL's target with the two bytes following the opcode (PCHL takes no
// immediate operand at all), this reads directly from the HL register
// pair.
func execPCHL(c *Chip, info *instruction, ops *operands) uint8 {
	c.PC = c.HL()
	return 0
}

// execEI implements EI: marks interrupts enabled. No interrupt delivery
// mechanism exists in this core, so this only updates observable state.
func execEI(c *Chip, info *instruction, ops *operands) uint8 {
	c.interruptsEnabled = true
	return 0
}

// execDI implements DI: marks interrupts disabled.
func execDI(c *Chip, info *instruction, ops *operands) uint8 {
	c.interruptsEnabled = false
	return 0
}

// execOUT implements OUT d. No I/O device exists behind this core; the
// port byte is fetched (matching real bus timing) and discarded.
func execOUT(c *Chip, info *instruction, ops *operands) uint8 {
	return 0
}

// pushWord pushes a 16-bit value onto the stack, high byte first, moving
// SP down by 2.
func (c *Chip) pushWord(v uint16) {
	c.SP -= 2
	c.bus.Write(c.SP+1, uint8(v>>8))
	c.bus.Write(c.SP, uint8(v))
}

// popWord pops a 16-bit value off the stack, moving SP up by 2.
func (c *Chip) popWord() uint16 {
	lo := c.bus.Read(c.SP)
	hi := c.bus.Read(c.SP + 1)
	c.SP += 2
	return uint16(hi)<<8 | uint16(lo)
}
