package cpu

// AddressingMode names one of the 13 schemes a 6502 instruction can use to
// locate its operand.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Absolute
	AbsoluteX
	AbsoluteY
	ZeroPage
	ZeroPageX
	ZeroPageY
	IndirectX // (zp,X)
	IndirectY // (zp),Y
	Relative
	Indirect // JMP (abs)
)

var addressingModeNames = [...]string{
	Implied: "IMP", Accumulator: "ACC", Immediate: "IMM", Absolute: "ABS",
	AbsoluteX: "ABX", AbsoluteY: "ABY", ZeroPage: "ZPG", ZeroPageX: "ZPX",
	ZeroPageY: "ZPY", IndirectX: "ZIX", IndirectY: "ZIY", Relative: "REL",
	Indirect: "IND",
}

func (m AddressingMode) String() string {
	if int(m) < 0 || int(m) >= len(addressingModeNames) {
		return "???"
	}
	return addressingModeNames[m]
}

// OperandSpan returns the number of bytes the instruction occupies in
// memory, including its opcode byte — 1 for modes with no operand byte, 3
// for modes with a 16-bit operand, 2 otherwise. The disassembler uses this
// to find the next instruction's address.
func (m AddressingMode) OperandSpan() int {
	switch m {
	case Implied, Accumulator:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	default:
		return 2
	}
}

// decode executes the addressing mode for the instruction currently being
// fetched: it may advance PC, read operand bytes from the bus, and sets
// c.OpAddr to the instruction's effective operand address (Implied and
// Accumulator leave c.OpAddr untouched). It returns whether the indexed computation crossed a
// page boundary, for modes where that matters.
func (c *Cpu) decode(mode AddressingMode) bool {
	switch mode {
	case Implied, Accumulator:
		return false

	case Immediate:
		c.OpAddr = c.PC
		c.PC++
		return false

	case ZeroPage:
		c.OpAddr = uint16(c.Read(c.PC))
		c.PC++
		return false

	case ZeroPageX:
		v := c.Read(c.PC)
		c.PC++
		c.OpAddr = uint16(v + c.X)
		return false

	case ZeroPageY:
		v := c.Read(c.PC)
		c.PC++
		c.OpAddr = uint16(v + c.Y)
		return false

	case Relative:
		rel := int8(c.Read(c.PC))
		c.PC++
		c.OpAddr = uint16(int32(c.PC) + int32(rel))
		return false

	case Absolute:
		c.OpAddr = c.readWord(c.PC)
		c.PC += 2
		return false

	case AbsoluteX:
		base := c.readWord(c.PC)
		c.PC += 2
		c.OpAddr = base + uint16(c.X)
		return base&0xFF00 != c.OpAddr&0xFF00

	case AbsoluteY:
		base := c.readWord(c.PC)
		c.PC += 2
		c.OpAddr = base + uint16(c.Y)
		return base&0xFF00 != c.OpAddr&0xFF00

	case Indirect:
		ptr := c.readWord(c.PC)
		c.PC += 2
		c.OpAddr = c.readWordBuggy(ptr)
		return false

	case IndirectX:
		zp := c.Read(c.PC) + c.X // 8-bit wrap keeps the pointer on the zero page
		c.PC++
		c.OpAddr = c.readZeroPageWord(zp)
		return false

	case IndirectY:
		zp := c.Read(c.PC)
		c.PC++
		base := c.readZeroPageWord(zp)
		c.OpAddr = base + uint16(c.Y)
		return base&0xFF00 != c.OpAddr&0xFF00

	default:
		return false
	}
}

// readWord reads a little-endian 16-bit value at addr.
func (c *Cpu) readWord(addr uint16) uint16 {
	lo := uint16(c.Read(addr))
	hi := uint16(c.Read(addr + 1))
	return hi<<8 | lo
}

// readZeroPageWord reads a little-endian 16-bit pointer whose two bytes both
// live on the zero page, wrapping within page 0 the same way a real 6502
// does when the low pointer byte is $FF.
func (c *Cpu) readZeroPageWord(zp byte) uint16 {
	lo := uint16(c.Read(uint16(zp)))
	hi := uint16(c.Read(uint16(zp + 1)))
	return hi<<8 | lo
}

// readWordBuggy reproduces the famous JMP ($xxFF) hardware bug: when the
// low byte of the indirect pointer is $FF, the real 6502 fetches the high
// byte from $xx00 instead of crossing into the next page. See DESIGN.md for
// why this implementation reproduces it rather than fixing it.
func (c *Cpu) readWordBuggy(ptr uint16) uint16 {
	lo := uint16(c.Read(ptr))
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := uint16(c.Read(hiAddr))
	return hi<<8 | lo
}
