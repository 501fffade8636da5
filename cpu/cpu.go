// Package cpu implements the Intel 8080 instruction set: registers, flags,
// the opcode dispatch table, and the fetch/execute loop. It has no
// knowledge of ROM files, CLI flags, or CPUDIAG's specific patches — those
// are host concerns (cmd/cpudiag). The CPU only knows how to execute bytes
// it is handed through the Bus interface below.
package cpu

import "fmt"

// regID indexes the 8080's 8-bit register file. Addressing-mode
// preparation bakes these into the opcode table directly rather than
// resolving a raw pointer per Step() the way the reference implementation
// does, which removes the aliasing hazards that come with storing *uint8
// into shared instruction state.
type regID uint8

const (
	regB regID = iota
	regC
	regD
	regE
	regH
	regL
	regA
	regF
	regNone // operand slot unused by this opcode
)

// Flag bit positions within F, per the 8080 programmer's reference.
const (
	flagCY uint8 = 1 << 0
	flagP  uint8 = 1 << 2
	flagAC uint8 = 1 << 4
	flagZ  uint8 = 1 << 6
	flagS  uint8 = 1 << 7

	// pswMask keeps only the five live flag bits; POP PSW masks F with this
	// so bits 1, 3, 5 always read back as zero.
	pswMask uint8 = 0b11010101
)

// Bus is the interface the CPU depends on for memory access and the BDOS
// trap channel. bus.Bus satisfies this; tests can supply a lighter fake.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
	BDOSRequest(c, d, e uint8)
}

// Chip is the Intel 8080 CPU state.
type Chip struct {
	regs [7]uint8 // indexed by regB..regA; regF is stored separately as F
	F    uint8
	PC   uint16
	SP   uint16

	interruptsEnabled bool

	bus Bus

	// selfTest, when true, makes Step treat PC==0x0000 mid-run as the
	// CPUDIAG failure sentinel rather than a legitimate jump target.
	selfTest bool

	cycles uint64
	ops    uint64

	halted     bool
	haltErr    error
	trappedVal uint8 // BDOS function code for BDOSTrap diagnostics
}

// ChipDef configures a new Chip.
type ChipDef struct {
	// Bus is the memory/BDOS multiplexer the CPU will read, write, and trap
	// through.
	Bus Bus
	// SelfTest marks this run as the CPUDIAG self-test: PC starts at
	// 0x0100 instead of 0x0000, and a jump to 0x0000 mid-run is treated as
	// the diagnostic's failure sentinel instead of a normal jump.
	SelfTest bool
}

// Init creates a Chip wired to the given Bus in its power-on state.
func Init(def *ChipDef) (*Chip, error) {
	if def.Bus == nil {
		return nil, fmt.Errorf("cpu: ChipDef.Bus must not be nil")
	}
	c := &Chip{
		bus:      def.Bus,
		selfTest: def.SelfTest,
	}
	if def.SelfTest {
		c.PC = 0x0100
	}
	return c, nil
}

// UnimplementedOpcode is returned by Step when it fetches an opcode with no
// table entry. 8080 opcodes the reference implementation never modeled
// (IN, the RST vectors, the undocumented NOP/JMP/CALL/RET duplicate
// encodings) fall into this bucket.
type UnimplementedOpcode struct {
	Opcode uint8
	PC     uint16
}

// Error implements error.
func (e UnimplementedOpcode) Error() string {
	return fmt.Sprintf("unimplemented opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// DiagFailure is returned by Step when, in self-test mode, PC becomes
// 0x0000 mid-run — CPUDIAG's own signal that a test case failed.
type DiagFailure struct{}

// Error implements error.
func (e DiagFailure) Error() string {
	return "CPU diag error found"
}

// BDOSTrap is returned by Step when the program executed CALL 0x0005. This
// is a clean, expected halt (the mechanism CPUDIAG uses to report success),
// not a failure.
type BDOSTrap struct {
	Func uint8
}

// Error implements error.
func (e BDOSTrap) Error() string {
	return fmt.Sprintf("BDOS trap executed (C=%d)", e.Func)
}

// reg returns the value of register r. regF is backed by Chip.F directly
// since it is manipulated through the dedicated flag helpers as well.
func (c *Chip) reg(r regID) uint8 {
	if r == regF {
		return c.F
	}
	return c.regs[r]
}

// setReg stores v into register r.
func (c *Chip) setReg(r regID, v uint8) {
	if r == regF {
		c.F = v & pswMask
		return
	}
	c.regs[r] = v
}

// Convenience accessors used by tests and the snapshot tool; all are thin
// wraps over the regID-indexed file above.
func (c *Chip) A() uint8 { return c.reg(regA) }
func (c *Chip) B() uint8 { return c.reg(regB) }
func (c *Chip) C() uint8 { return c.reg(regC) }
func (c *Chip) D() uint8 { return c.reg(regD) }
func (c *Chip) E() uint8 { return c.reg(regE) }
func (c *Chip) H() uint8 { return c.reg(regH) }
func (c *Chip) L() uint8 { return c.reg(regL) }

// SetA sets the accumulator; used by tests constructing fixture states.
func (c *Chip) SetA(v uint8) { c.setReg(regA, v) }

// HL returns the 16-bit register pair (H<<8 | L).
func (c *Chip) HL() uint16 {
	return uint16(c.reg(regH))<<8 | uint16(c.reg(regL))
}

// SetHL stores a 16-bit value into the H/L pair.
func (c *Chip) SetHL(v uint16) {
	c.setReg(regH, uint8(v>>8))
	c.setReg(regL, uint8(v))
}

// BC returns the 16-bit register pair (B<<8 | C).
func (c *Chip) BC() uint16 {
	return uint16(c.reg(regB))<<8 | uint16(c.reg(regC))
}

// DE returns the 16-bit register pair (D<<8 | E).
func (c *Chip) DE() uint16 {
	return uint16(c.reg(regD))<<8 | uint16(c.reg(regE))
}

// SetBC stores a 16-bit value into the B/C pair.
func (c *Chip) SetBC(v uint16) {
	c.setReg(regB, uint8(v>>8))
	c.setReg(regC, uint8(v))
}

// SetDE stores a 16-bit value into the D/E pair.
func (c *Chip) SetDE(v uint16) {
	c.setReg(regD, uint8(v>>8))
	c.setReg(regE, uint8(v))
}

// InterruptsEnabled reports whether EI has run more recently than DI. No
// interrupt is ever actually delivered; this is tracked purely as
// observable state (§9 open question).
func (c *Chip) InterruptsEnabled() bool {
	return c.interruptsEnabled
}

// Cycles returns the total virtual cycle count elapsed since power-on.
func (c *Chip) Cycles() uint64 {
	return c.cycles
}

// Ops returns the number of instructions executed since power-on.
func (c *Chip) Ops() uint64 {
	return c.ops
}

// Halted reports whether the CPU has stopped and Step will no longer
// execute instructions.
func (c *Chip) Halted() bool {
	return c.halted
}

// Step executes exactly one instruction: fetch, decode, run the
// addressing-mode preparer, run the operation, and advance the clock by
// the instruction's full documented cycle cost. It returns nil while the
// machine keeps running and a non-nil error from the step that halts it
// onward: once halted, further calls return the same error without
// executing anything, mirroring a real 8080's lack of any resume-from-fault
// path.
func (c *Chip) Step() error {
	if c.halted {
		return c.haltErr
	}

	originPC := c.PC
	opcode := c.bus.Read(c.PC)
	c.PC++

	info := &opcodeTable[opcode]
	if info.exec == nil {
		c.halted = true
		c.haltErr = UnimplementedOpcode{Opcode: opcode, PC: originPC}
		return c.haltErr
	}

	ops := operands{opcode: opcode}
	c.prepareOperands(info, &ops)

	extra := info.exec(c, info, &ops)
	c.cycles += uint64(info.cycles) + uint64(extra)
	c.ops++

	if c.halted {
		// The operation itself recognised a halting condition (the BDOS
		// trap); haltErr was already set by execCALL.
		return c.haltErr
	}

	if c.selfTest && c.PC == 0x0000 {
		c.halted = true
		c.haltErr = DiagFailure{}
		return c.haltErr
	}

	return nil
}
