// Package disasm renders the bytes at an address range as 6502 assembly
// text, one line per instruction, by linearly sweeping the address space and
// trusting whatever opcode byte it finds at each step — it never follows
// control flow and does not distinguish code from data.
package disasm

import (
	"fmt"

	"gone6502/cpu"
)

// bus is the read surface disasm needs; cpu.Bus and bus.Bus both satisfy it.
type bus interface {
	Read(addr uint16) byte
}

// Line is one disassembled instruction: the address its opcode byte lives
// at, and the formatted "MNE operand" text.
type Line struct {
	Addr uint16
	Text string
}

// Sweep disassembles every instruction from $0000 up to (but not crossing)
// $FFFD, advancing by each instruction's OperandSpan. It does not stop at
// the first illegal opcode; XXX still occupies one byte and is rendered as
// "XXX".
func Sweep(b bus) []Line {
	var lines []Line
	var addr uint32 // wide enough to detect the 0xFFFD sweep limit without wrapping
	for addr < 0xFFFD {
		a := uint16(addr)
		mnemonic, mode := cpu.Lookup(b.Read(a))
		text := format(b, a, mnemonic, mode)
		lines = append(lines, Line{Addr: a, Text: text})
		addr += uint32(mode.OperandSpan())
	}
	return lines
}

// format renders a single instruction's mnemonic and operand using the
// per-addressing-mode syntax conventional in 6502 assemblers.
func format(b bus, addr uint16, mnemonic cpu.Mnemonic, mode cpu.AddressingMode) string {
	op8 := b.Read(addr + 1)
	op16 := uint16(b.Read(addr+2))<<8 | uint16(op8)

	var operand string
	switch mode {
	case cpu.Implied:
		operand = ""
	case cpu.Accumulator:
		operand = "A"
	case cpu.Immediate:
		operand = fmt.Sprintf("#$%02X", op8)
	case cpu.Absolute:
		operand = fmt.Sprintf("$%04X", op16)
	case cpu.AbsoluteX:
		operand = fmt.Sprintf("$%04X,X", op16)
	case cpu.AbsoluteY:
		operand = fmt.Sprintf("$%04X,Y", op16)
	case cpu.ZeroPage:
		operand = fmt.Sprintf("$%02X", op8)
	case cpu.ZeroPageX:
		operand = fmt.Sprintf("$%02X,X", op8)
	case cpu.ZeroPageY:
		operand = fmt.Sprintf("$%02X,Y", op8)
	case cpu.IndirectX:
		operand = fmt.Sprintf("($%02X,X)", op8)
	case cpu.IndirectY:
		operand = fmt.Sprintf("($%02X),Y", op8)
	case cpu.Indirect:
		operand = fmt.Sprintf("($%04X)", op16)
	case cpu.Relative:
		operand = fmt.Sprintf("$%02X", op8)
	}

	if operand == "" {
		return mnemonic.String()
	}
	return mnemonic.String() + " " + operand
}
