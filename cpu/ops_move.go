package cpu

// execMOV implements the 0x40-0x7F MOV matrix: register-to-register moves,
// plus MOV r,M and MOV M,r. Which of those three shapes applies is read
// straight off info/ops rather than needing a separate exec per shape: a
// reg2 of regNone (MOV r,M) means copy ops.val (already read from RAM[HL])
// into reg1; a reg1 of regNone (MOV M,r) means write reg2's value to
// RAM[HL].
func execMOV(c *Chip, info *instruction, ops *operands) uint8 {
	if info.mode == amRegIndirectHL {
		if info.reg1 == regNone {
			c.bus.Write(ops.addr, c.reg(info.reg2))
		} else {
			c.setReg(info.reg1, ops.val)
		}
		return 0
	}
	c.setReg(info.reg1, c.reg(info.reg2))
	return 0
}

// execMVI implements MVI r,d: reg1 <- the immediate byte.
func execMVI(c *Chip, info *instruction, ops *operands) uint8 {
	c.setReg(info.reg1, ops.imm8)
	return 0
}

// execMVIM implements MVI M,d: RAM[HL] <- the immediate byte.
func execMVIM(c *Chip, info *instruction, ops *operands) uint8 {
	c.bus.Write(ops.addr, ops.imm8)
	return 0
}

// execLXI implements LXI rp,d16: the pair <- the immediate word.
func execLXI(c *Chip, info *instruction, ops *operands) uint8 {
	c.setPairValue(info.pair, ops.imm16)
	return 0
}

// execLDA implements LDA adr: A <- RAM[adr]. amDirect already read the
// byte into ops.val.
func execLDA(c *Chip, info *instruction, ops *operands) uint8 {
	c.setReg(regA, ops.val)
	return 0
}

// execSTA implements STA adr: RAM[adr] <- A. amDirect's own read of
// RAM[adr] into ops.val is unused here; it is harmless since RAM reads
// never have side effects in this core.
func execSTA(c *Chip, info *instruction, ops *operands) uint8 {
	c.bus.Write(ops.addr, c.reg(regA))
	return 0
}

// execLHLD implements LHLD adr: L <- RAM[adr], H <- RAM[adr+1].
func execLHLD(c *Chip, info *instruction, ops *operands) uint8 {
	lo := c.bus.Read(ops.imm16)
	hi := c.bus.Read(ops.imm16 + 1)
	c.SetHL(uint16(hi)<<8 | uint16(lo))
	return 0
}

// execSHLD implements SHLD adr: RAM[adr] <- L, RAM[adr+1] <- H.
func execSHLD(c *Chip, info *instruction, ops *operands) uint8 {
	c.bus.Write(ops.imm16, c.reg(regL))
	c.bus.Write(ops.imm16+1, c.reg(regH))
	return 0
}

// execLDAX implements LDAX B/D: A <- RAM[BC or DE]. The addressing mode
// already read the byte into ops.val.
func execLDAX(c *Chip, info *instruction, ops *operands) uint8 {
	c.setReg(regA, ops.val)
	return 0
}

// execSTAX implements STAX B/D: RAM[BC or DE] <- A.
func execSTAX(c *Chip, info *instruction, ops *operands) uint8 {
	c.bus.Write(ops.addr, c.reg(regA))
	return 0
}

// execXCHG implements XCHG: swap HL and DE.
func execXCHG(c *Chip, info *instruction, ops *operands) uint8 {
	hl, de := c.HL(), c.DE()
	c.SetHL(de)
	c.SetDE(hl)
	return 0
}
