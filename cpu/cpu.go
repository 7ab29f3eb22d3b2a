// Package cpu implements the MOS Technology 6502 microprocessor core: 151
// legal opcodes across 13 addressing modes, flag-precise arithmetic, and
// stack-based interrupt dispatch. It has no memory of its own beyond its
// registers; all reads and writes go through a Bus.
package cpu

import "gone6502/mask"

// Bus is the abstract capability the Cpu needs from whatever backs its
// address space. A routing bus (see package bus) is the production
// implementation; tests can supply a bare array-backed stand-in.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, v byte)
}

// Flags holds the eight bits of the status (P) register as named booleans
// rather than a single byte, since every instruction only ever tests or sets
// one or two of them by name. Byte() and SetFromByte() pack/unpack the
// register for PHP/PLP/BRK/RTI and reset.
//
//	7654 3210
//	NV1B DIZC
type Flags struct {
	Negative         bool
	Overflow         bool
	Unused           bool
	Break            bool
	Decimal          bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// Byte packs the flags into the conventional N V U B D I Z C bit layout
// (bit 7 down to bit 0). mask.I1 is the most-significant bit, mask.I8 the
// least, so the flag order below reads the same top-to-bottom as the 6502
// reference diagrams.
func (f Flags) Byte() byte {
	var p byte
	if f.Negative {
		p = mask.Set(p, mask.I1, 1)
	}
	if f.Overflow {
		p = mask.Set(p, mask.I2, 1)
	}
	if f.Unused {
		p = mask.Set(p, mask.I3, 1)
	}
	if f.Break {
		p = mask.Set(p, mask.I4, 1)
	}
	if f.Decimal {
		p = mask.Set(p, mask.I5, 1)
	}
	if f.InterruptDisable {
		p = mask.Set(p, mask.I6, 1)
	}
	if f.Zero {
		p = mask.Set(p, mask.I7, 1)
	}
	if f.Carry {
		p = mask.Set(p, mask.I8, 1)
	}
	return p
}

// SetFromByte unpacks p into f, overwriting every flag.
func (f *Flags) SetFromByte(p byte) {
	f.Negative = mask.IsSet(p, mask.I1)
	f.Overflow = mask.IsSet(p, mask.I2)
	f.Unused = mask.IsSet(p, mask.I3)
	f.Break = mask.IsSet(p, mask.I4)
	f.Decimal = mask.IsSet(p, mask.I5)
	f.InterruptDisable = mask.IsSet(p, mask.I6)
	f.Zero = mask.IsSet(p, mask.I7)
	f.Carry = mask.IsSet(p, mask.I8)
}

// setNZ sets Zero and Negative from v, the near-universal "did this
// operation produce zero, or a negative (bit-7-set) result" pair.
func (f *Flags) setNZ(v byte) {
	f.Zero = v == 0
	f.Negative = v&0x80 != 0
}

// InstructionRecord describes the instruction currently retired or in
// flight: its address, opcode byte, addressing mode, and cycle accounting.
type InstructionRecord struct {
	Addr             uint16
	Opcode           byte
	Mode             AddressingMode
	Mnemonic         Mnemonic
	BaseCycles       byte
	PageCrossPenalty bool // whether this opcode is penalty-eligible
	PageCrossed      bool // whether the addressing mode actually crossed a page
	BranchTaken      bool
	BranchPageCrossed bool
}

// Cpu is the 6502 register file plus the bookkeeping the scheduler and
// debug surface need: monotonic cycle/instruction counters, the in-flight
// instruction record, and the pending cycle debt a clock() tick drains.
type Cpu struct {
	Bus Bus

	A, X, Y byte
	SP      byte
	PC      uint16
	Flags   Flags

	Cycles       uint64 // total cycles retired, monotonic
	Instructions uint64 // total instructions retired

	Current    InstructionRecord
	OpAddr     uint16 // effective operand address of the in-flight instruction
	CyclesLeft byte   // cycles the in-flight instruction has not yet been charged for
}

// New returns a Cpu wired to bus, not yet reset.
func New(bus Bus) *Cpu {
	return &Cpu{Bus: bus}
}

// Read is a thin pass-through to the Bus, kept as a method so instruction
// implementations never need to reach through c.Bus directly.
func (c *Cpu) Read(addr uint16) byte { return c.Bus.Read(addr) }

// Write is the write-side equivalent of Read.
func (c *Cpu) Write(addr uint16, v byte) { c.Bus.Write(addr, v) }

// Reset loads PC from the reset vector, sets SP to $FF, clears A/X/Y, sets P
// to Unused only, and clears any in-flight instruction state.
func (c *Cpu) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFF
	c.Flags = Flags{Unused: true}

	lo := uint16(c.Read(0xFFFC))
	hi := uint16(c.Read(0xFFFD))
	c.PC = hi<<8 | lo

	c.OpAddr = 0
	c.CyclesLeft = 0
	c.Current = InstructionRecord{}
}

// Halted reports whether the Break flag is set — the signal BRK uses to tell
// a non-interactive scheduler to stop, and an interactive debugger to pause.
func (c *Cpu) Halted() bool {
	return c.Flags.Break
}

// push writes v to the stack page ($0100 | SP) then decrements SP, wrapping
// modulo 256.
func (c *Cpu) push(v byte) {
	c.Write(0x0100|uint16(c.SP), v)
	c.SP--
}

// pull increments SP, wrapping modulo 256, then reads from the stack page.
func (c *Cpu) pull() byte {
	c.SP++
	return c.Read(0x0100 | uint16(c.SP))
}

func (c *Cpu) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *Cpu) pullWord() uint16 {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	return hi<<8 | lo
}

// Clock represents one host tick of the CPU's clock. If the previous
// instruction left unconsumed cycles, this tick just drains one of them.
// Otherwise it fetches, decodes, and executes exactly one instruction and
// sets CyclesLeft to the cycles still owed for it.
func (c *Cpu) Clock() {
	if c.CyclesLeft > 0 {
		c.CyclesLeft--
		c.Cycles++
		return
	}

	opcode := c.Read(c.PC)
	c.PC++

	entry := opcodes[opcode]
	c.Current = InstructionRecord{
		Addr:             c.PC - 1,
		Opcode:           opcode,
		Mode:             entry.Mode,
		Mnemonic:         entry.Mnemonic,
		BaseCycles:       entry.BaseCycles,
		PageCrossPenalty: entry.PageCrossPenalty,
	}

	pageCrossed := c.decode(entry.Mode)
	c.Current.PageCrossed = pageCrossed
	if entry.PageCrossPenalty && pageCrossed {
		c.CyclesLeft++
	}

	c.execute(entry.Mnemonic)

	c.Instructions++
	c.Cycles++
	c.CyclesLeft += entry.BaseCycles - 1
}

// dispatchInterrupt pushes PC and P (with Break set as requested) and loads PC from
// vector. Shared by BRK, IRQ, and NMI — they differ only in the Break bit
// they push and the vector they load.
func (c *Cpu) dispatchInterrupt(vector uint16, brk bool) {
	c.pushWord(c.PC)

	pushed := c.Flags
	pushed.Break = brk
	pushed.Unused = true
	c.push(pushed.Byte())

	c.Flags.InterruptDisable = true
	lo := uint16(c.Read(vector))
	hi := uint16(c.Read(vector + 1))
	c.PC = hi<<8 | lo
}

// NMI services a non-maskable interrupt: always honored, regardless of the
// Interrupt-Disable flag.
func (c *Cpu) NMI() {
	c.dispatchInterrupt(0xFFFA, false)
	c.CyclesLeft = 7
}

// IRQ services a maskable interrupt request; suppressed entirely while
// InterruptDisable is set.
func (c *Cpu) IRQ() {
	if c.Flags.InterruptDisable {
		return
	}
	c.dispatchInterrupt(0xFFFE, false)
	c.CyclesLeft = 7
}
