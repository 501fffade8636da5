package cpu

// addrMode tags how an opcode's operand bytes are fetched before exec runs,
// mirroring the small set of addressing modes the 8080 actually has.
type addrMode uint8

const (
	amImplicit       addrMode = iota // no operand bytes (NOP, MOV r,r, PUSH, ...)
	amImm8                           // one operand byte, used directly (MVI r,d / ADI / ...)
	amImm16                          // two operand bytes, a little-endian word (LXI, JMP, CALL)
	amDirect                         // two operand bytes forming an address; RAM[addr] is read into ops.val
	amRegDirect                      // operand lives in a register named by reg1 (and/or reg2)
	amRegIndirectBC                  // operand address is BC; RAM[BC] is read into ops.val
	amRegIndirectDE                  // operand address is DE; RAM[DE] is read into ops.val
	amRegIndirectHL                  // operand address is HL; RAM[HL] is read into ops.val
	amImmIndirectHL                  // one operand byte plus address HL (MVI M,d)
)

// regPair names a 16-bit register pair an instruction operates on as a
// whole, used by LXI/INX/DCX/DAD/PUSH/POP rather than the single-register
// regID above.
type regPair uint8

const (
	pairNone regPair = iota
	pairBC
	pairDE
	pairHL
	pairSP
	pairPSW // A and F, as PUSH PSW/POP PSW see them
)

// condition names one of the 8080's four flag tests, used by the
// conditional jump/call/return families. condAlways marks the unconditional
// form of each (JMP, CALL, RET).
type condition uint8

const (
	condAlways condition = iota
	condNZ
	condZ
	condNC
	condC
	condPO
	condPE
	condP
	condM
)

// condTrue evaluates a condition against the current flags.
func (c *Chip) condTrue(cond condition) bool {
	switch cond {
	case condAlways:
		return true
	case condNZ:
		return !c.flag(flagZ)
	case condZ:
		return c.flag(flagZ)
	case condNC:
		return !c.flag(flagCY)
	case condC:
		return c.flag(flagCY)
	case condPO:
		return !c.flag(flagP)
	case condPE:
		return c.flag(flagP)
	case condP:
		return !c.flag(flagS)
	case condM:
		return c.flag(flagS)
	}
	return false
}

// operands holds the values an addressing mode prepared for exec to
// consume. Not every field is meaningful for every mode; exec functions
// only read the ones their instruction's mode populates.
type operands struct {
	opcode uint8
	imm8   uint8  // amImm8, amImmIndirectHL
	imm16  uint16 // amImm16
	addr   uint16 // effective address: amDirect, amRegIndirect*, amImmIndirectHL
	val    uint8  // the operand's value, pre-read where a read makes sense
}

// opExec runs an instruction's operation given the operands its addressing
// mode prepared. It returns any cycles beyond the table's base cost
// (conditional jumps/calls/returns that were taken cost more than ones that
// were not).
type opExec func(c *Chip, info *instruction, ops *operands) uint8

// instruction is one opcode table entry. Not every field applies to every
// entry: reg1/reg2 address the single-register family, pair addresses the
// register-pair family, cond addresses the conditional-branch family. Which
// fields are live is determined entirely by which exec function is wired in.
type instruction struct {
	mnemonic string
	mode     addrMode
	reg1     regID
	reg2     regID
	pair     regPair
	cond     condition
	exec     opExec
	cycles   uint8
}

// opcodeTable is indexed directly by opcode. A zero-value entry (exec ==
// nil) means the reference implementation never modeled this opcode: IN,
// the eight RST vectors, and the undocumented NOP/JMP/CALL/RET duplicate
// encodings all fall through to UnimplementedOpcode at Step time. DI (0xF3)
// is the one opcode added beyond the reference implementation's table: a
// core that implements EI without its natural counterpart would be an
// obviously missing half of a pair, and DI costs nothing to add correctly.
var opcodeTable [256]instruction

// regOf maps the 8080's systematic 3-bit register field (000-111) to a
// regID, for the families below whose opcode encodes source/destination
// this way. Index 6 is the "M" slot: every family below special-cases it to
// an HL-indirect memory access instead of a register.
var regOf = [8]regID{regB, regC, regD, regE, regH, regL, regNone, regA}

func init() {
	initSingleOperandFamily()
	initMoveFamily()
	initArithmeticFamily()
	initMiscOpcodes()
}

// initSingleOperandFamily wires INR, DCR, and MVI r,d. All three share the
// same systematic encoding: opcode = base + 8*r, where r is regOf's index
// and r==6 selects the HL-indirect memory form instead of a register.
func initSingleOperandFamily() {
	for r := uint8(0); r < 8; r++ {
		if r == 6 {
			opcodeTable[0x04+r*8] = instruction{mnemonic: "INR M", mode: amRegIndirectHL, exec: execINR, cycles: 10}
			opcodeTable[0x05+r*8] = instruction{mnemonic: "DCR M", mode: amRegIndirectHL, exec: execDCR, cycles: 10}
			opcodeTable[0x06+r*8] = instruction{mnemonic: "MVI M,d", mode: amImmIndirectHL, exec: execMVIM, cycles: 10}
			continue
		}
		reg := regOf[r]
		opcodeTable[0x04+r*8] = instruction{mnemonic: "INR", mode: amRegDirect, reg1: reg, exec: execINR, cycles: 5}
		opcodeTable[0x05+r*8] = instruction{mnemonic: "DCR", mode: amRegDirect, reg1: reg, exec: execDCR, cycles: 5}
		opcodeTable[0x06+r*8] = instruction{mnemonic: "MVI", mode: amImm8, reg1: reg, exec: execMVI, cycles: 7}
	}
}

// initMoveFamily wires the 64-entry MOV r,r' matrix at 0x40-0x7F, skipping
// 0x76 (real silicon's HLT, never modeled here; Step reports it as any
// other unimplemented opcode).
func initMoveFamily() {
	for d := uint8(0); d < 8; d++ {
		for s := uint8(0); s < 8; s++ {
			opcode := 0x40 + d*8 + s
			if d == 6 && s == 6 {
				continue
			}
			switch {
			case d == 6:
				opcodeTable[opcode] = instruction{mnemonic: "MOV M,r", mode: amRegIndirectHL, reg1: regNone, reg2: regOf[s], exec: execMOV, cycles: 7}
			case s == 6:
				opcodeTable[opcode] = instruction{mnemonic: "MOV r,M", mode: amRegIndirectHL, reg1: regOf[d], reg2: regNone, exec: execMOV, cycles: 7}
			default:
				opcodeTable[opcode] = instruction{mnemonic: "MOV r,r", mode: amRegDirect, reg1: regOf[d], reg2: regOf[s], exec: execMOV, cycles: 5}
			}
		}
	}
}

// initArithmeticFamily wires ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP (register and
// HL-indirect forms at 0x80-0xBF) plus their immediate counterparts
// (ADI/ACI/SUI/SBI/ANI/XRI/ORI/CPI). Every addressing variant of a given
// mnemonic shares one exec function: prepareOperands already resolved
// ops.val to the right byte regardless of whether it came from a register,
// RAM[HL], or the instruction stream, so the arithmetic itself never needs
// to know which.
func initArithmeticFamily() {
	families := []struct {
		base    uint8
		mn      string
		exec    opExec
		immOp   uint8
		immMn   string
	}{
		{0x80, "ADD", execADD, 0xC6, "ADI"},
		{0x88, "ADC", execADC, 0xCE, "ACI"},
		{0x90, "SUB", execSUB, 0xD6, "SUI"},
		{0x98, "SBB", execSBB, 0xDE, "SBI"},
		{0xA0, "ANA", execANA, 0xE6, "ANI"},
		{0xA8, "XRA", execXRA, 0xEE, "XRI"},
		{0xB0, "ORA", execORA, 0xF6, "ORI"},
		{0xB8, "CMP", execCMP, 0xFE, "CPI"},
	}
	for _, f := range families {
		for r := uint8(0); r < 8; r++ {
			opcode := f.base + r
			if r == 6 {
				opcodeTable[opcode] = instruction{mnemonic: f.mn + " M", mode: amRegIndirectHL, exec: f.exec, cycles: 7}
				continue
			}
			opcodeTable[opcode] = instruction{mnemonic: f.mn, mode: amRegDirect, reg1: regOf[r], exec: f.exec, cycles: 4}
		}
		opcodeTable[f.immOp] = instruction{mnemonic: f.immMn, mode: amImm8, exec: f.exec, cycles: 7}
	}
}

// initMiscOpcodes wires every instruction whose opcode doesn't fall into
// one of the systematic families above: register-pair ops, branches,
// stack ops, direct-addressed loads/stores, and the single-byte
// control/rotate instructions.
func initMiscOpcodes() {
	pairs := []struct {
		ld, inx, dcx, dad uint8
		pair              regPair
		mn                string
	}{
		{0x01, 0x03, 0x0B, 0x09, pairBC, "BC"},
		{0x11, 0x13, 0x1B, 0x19, pairDE, "DE"},
		{0x21, 0x23, 0x2B, 0x29, pairHL, "HL"},
		{0x31, 0x33, 0x3B, 0x39, pairSP, "SP"},
	}
	for _, p := range pairs {
		opcodeTable[p.ld] = instruction{mnemonic: "LXI " + p.mn, mode: amImm16, pair: p.pair, exec: execLXI, cycles: 10}
		opcodeTable[p.inx] = instruction{mnemonic: "INX " + p.mn, pair: p.pair, exec: execINX, cycles: 5}
		opcodeTable[p.dcx] = instruction{mnemonic: "DCX " + p.mn, pair: p.pair, exec: execDCX, cycles: 5}
		opcodeTable[p.dad] = instruction{mnemonic: "DAD " + p.mn, pair: p.pair, exec: execDAD, cycles: 10}
	}

	opcodeTable[0x02] = instruction{mnemonic: "STAX B", mode: amRegIndirectBC, exec: execSTAX, cycles: 7}
	opcodeTable[0x0A] = instruction{mnemonic: "LDAX B", mode: amRegIndirectBC, exec: execLDAX, cycles: 7}
	opcodeTable[0x12] = instruction{mnemonic: "STAX D", mode: amRegIndirectDE, exec: execSTAX, cycles: 7}
	opcodeTable[0x1A] = instruction{mnemonic: "LDAX D", mode: amRegIndirectDE, exec: execLDAX, cycles: 7}

	opcodeTable[0x00] = instruction{mnemonic: "NOP", exec: execNOP, cycles: 4}
	opcodeTable[0x07] = instruction{mnemonic: "RLC", exec: execRLC, cycles: 4}
	opcodeTable[0x0F] = instruction{mnemonic: "RRC", exec: execRRC, cycles: 4}
	opcodeTable[0x17] = instruction{mnemonic: "RAL", exec: execRAL, cycles: 4}
	opcodeTable[0x1F] = instruction{mnemonic: "RAR", exec: execRAR, cycles: 4}
	opcodeTable[0x22] = instruction{mnemonic: "SHLD", mode: amImm16, exec: execSHLD, cycles: 16}
	opcodeTable[0x27] = instruction{mnemonic: "DAA", exec: execDAA, cycles: 4}
	opcodeTable[0x2A] = instruction{mnemonic: "LHLD", mode: amImm16, exec: execLHLD, cycles: 16}
	opcodeTable[0x2F] = instruction{mnemonic: "CMA", exec: execCMA, cycles: 4}
	opcodeTable[0x32] = instruction{mnemonic: "STA", mode: amDirect, exec: execSTA, cycles: 13}
	opcodeTable[0x37] = instruction{mnemonic: "STC", exec: execSTC, cycles: 4}
	opcodeTable[0x3A] = instruction{mnemonic: "LDA", mode: amDirect, exec: execLDA, cycles: 13}
	opcodeTable[0x3F] = instruction{mnemonic: "CMC", exec: execCMC, cycles: 4}

	jumps := []struct {
		op   uint8
		cond condition
		mn   string
	}{
		{0xC3, condAlways, "JMP"}, {0xC2, condNZ, "JNZ"}, {0xCA, condZ, "JZ"},
		{0xD2, condNC, "JNC"}, {0xDA, condC, "JC"}, {0xE2, condPO, "JPO"},
		{0xEA, condPE, "JPE"}, {0xF2, condP, "JP"}, {0xFA, condM, "JM"},
	}
	for _, j := range jumps {
		opcodeTable[j.op] = instruction{mnemonic: j.mn, mode: amImm16, cond: j.cond, exec: execJMP, cycles: 10}
	}

	opcodeTable[0xCD] = instruction{mnemonic: "CALL", mode: amImm16, cond: condAlways, exec: execCALL, cycles: 17}
	calls := []struct {
		op   uint8
		cond condition
		mn   string
	}{
		{0xC4, condNZ, "CNZ"}, {0xCC, condZ, "CZ"}, {0xD4, condNC, "CNC"},
		{0xDC, condC, "CC"}, {0xE4, condPO, "CPO"}, {0xEC, condPE, "CPE"},
		{0xF4, condP, "CP"}, {0xFC, condM, "CM"},
	}
	for _, call := range calls {
		opcodeTable[call.op] = instruction{mnemonic: call.mn, mode: amImm16, cond: call.cond, exec: execCALLcond, cycles: 11}
	}

	opcodeTable[0xC9] = instruction{mnemonic: "RET", exec: execRET, cycles: 10}
	rets := []struct {
		op   uint8
		cond condition
		mn   string
	}{
		{0xC0, condNZ, "RNZ"}, {0xC8, condZ, "RZ"}, {0xD0, condNC, "RNC"},
		{0xD8, condC, "RC"}, {0xE0, condPO, "RPO"}, {0xE8, condPE, "RPE"},
		{0xF0, condP, "RP"}, {0xF8, condM, "RM"},
	}
	for _, ret := range rets {
		opcodeTable[ret.op] = instruction{mnemonic: ret.mn, cond: ret.cond, exec: execRETcond, cycles: 5}
	}

	pushPop := []struct {
		pushOp, popOp uint8
		pair          regPair
		mn            string
	}{
		{0xC5, 0xC1, pairBC, "BC"},
		{0xD5, 0xD1, pairDE, "DE"},
		{0xE5, 0xE1, pairHL, "HL"},
	}
	for _, pp := range pushPop {
		opcodeTable[pp.pushOp] = instruction{mnemonic: "PUSH " + pp.mn, pair: pp.pair, exec: execPUSH, cycles: 11}
		opcodeTable[pp.popOp] = instruction{mnemonic: "POP " + pp.mn, pair: pp.pair, exec: execPOP, cycles: 10}
	}
	opcodeTable[0xF5] = instruction{mnemonic: "PUSH PSW", pair: pairPSW, exec: execPUSHPSW, cycles: 11}
	opcodeTable[0xF1] = instruction{mnemonic: "POP PSW", pair: pairPSW, exec: execPOPPSW, cycles: 10}

	opcodeTable[0xD3] = instruction{mnemonic: "OUT", mode: amImm8, exec: execOUT, cycles: 10}
	opcodeTable[0xE3] = instruction{mnemonic: "XTHL", exec: execXTHL, cycles: 18}
	opcodeTable[0xE9] = instruction{mnemonic: "PCHL", exec: execPCHL, cycles: 5}
	opcodeTable[0xEB] = instruction{mnemonic: "XCHG", exec: execXCHG, cycles: 4}
	opcodeTable[0xF9] = instruction{mnemonic: "SPHL", exec: execSPHL, cycles: 5}
	opcodeTable[0xFB] = instruction{mnemonic: "EI", exec: execEI, cycles: 4}
	opcodeTable[0xF3] = instruction{mnemonic: "DI", exec: execDI, cycles: 4}
}

// pairValue reads the 16-bit value of a register pair.
func (c *Chip) pairValue(p regPair) uint16 {
	switch p {
	case pairBC:
		return c.BC()
	case pairDE:
		return c.DE()
	case pairHL:
		return c.HL()
	case pairSP:
		return c.SP
	}
	return 0
}

// setPairValue stores a 16-bit value into a register pair.
func (c *Chip) setPairValue(p regPair, v uint16) {
	switch p {
	case pairBC:
		c.SetBC(v)
	case pairDE:
		c.SetDE(v)
	case pairHL:
		c.SetHL(v)
	case pairSP:
		c.SP = v
	}
}

// prepareOperands fetches whatever operand bytes info.mode calls for,
// advancing PC past them, and resolves ops.val/ops.addr so exec never has
// to know which addressing mode it was called through.
func (c *Chip) prepareOperands(info *instruction, ops *operands) {
	switch info.mode {
	case amImplicit:
		// nothing to fetch
	case amImm8:
		ops.imm8 = c.bus.Read(c.PC)
		c.PC++
		ops.val = ops.imm8
	case amImm16:
		lo := c.bus.Read(c.PC)
		c.PC++
		hi := c.bus.Read(c.PC)
		c.PC++
		ops.imm16 = uint16(hi)<<8 | uint16(lo)
	case amDirect:
		lo := c.bus.Read(c.PC)
		c.PC++
		hi := c.bus.Read(c.PC)
		c.PC++
		ops.addr = uint16(hi)<<8 | uint16(lo)
		ops.val = c.bus.Read(ops.addr)
	case amRegDirect:
		if info.reg1 != regNone {
			ops.val = c.reg(info.reg1)
		}
	case amRegIndirectBC:
		ops.addr = c.BC()
		ops.val = c.bus.Read(ops.addr)
	case amRegIndirectDE:
		ops.addr = c.DE()
		ops.val = c.bus.Read(ops.addr)
	case amRegIndirectHL:
		ops.addr = c.HL()
		ops.val = c.bus.Read(ops.addr)
	case amImmIndirectHL:
		ops.imm8 = c.bus.Read(c.PC)
		c.PC++
		ops.addr = c.HL()
	}
}
