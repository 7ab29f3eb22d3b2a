package cpu

// opcodeEntry is one row of the 256-entry opcode table: which operation,
// which addressing mode, the base cycle count, and whether that count
// already accounts for the worst case or still owes a cycle when the
// addressing mode crosses a page. Entries not taken from the legal-opcode
// list (XXX, Implied, 2 cycles, no penalty) are the unused/illegal opcode
// slots.
type opcodeEntry struct {
	Mnemonic         Mnemonic
	Mode             AddressingMode
	BaseCycles       byte
	PageCrossPenalty bool
}

// opcodes is the dense, 256-entry instruction table, indexed directly by
// opcode byte. Illegal opcodes fall through to the XXX sentinel: they
// consume opcodeIllegalCycles cycles and perform no architectural effect,
// matching real silicon closely enough for this emulator's purposes without
// chasing undocumented-opcode semantics (an explicit Non-goal).
const opcodeIllegalCycles = 2

var opcodes = buildOpcodeTable()

// Lookup returns the mnemonic and addressing mode an opcode byte decodes
// to, for callers outside the package — the disassembler, chiefly — that
// need the table without needing cycle accounting.
func Lookup(opcode byte) (Mnemonic, AddressingMode) {
	e := opcodes[opcode]
	return e.Mnemonic, e.Mode
}

func buildOpcodeTable() [256]opcodeEntry {
	var t [256]opcodeEntry
	for i := range t {
		t[i] = opcodeEntry{Mnemonic: XXX, Mode: Implied, BaseCycles: opcodeIllegalCycles}
	}

	legal := map[byte]opcodeEntry{
		0x69: {Mnemonic: ADC, Mode: Immediate, BaseCycles: 2, PageCrossPenalty: false},
		0x65: {Mnemonic: ADC, Mode: ZeroPage, BaseCycles: 3, PageCrossPenalty: false},
		0x75: {Mnemonic: ADC, Mode: ZeroPageX, BaseCycles: 4, PageCrossPenalty: false},
		0x6D: {Mnemonic: ADC, Mode: Absolute, BaseCycles: 4, PageCrossPenalty: false},
		0x7D: {Mnemonic: ADC, Mode: AbsoluteX, BaseCycles: 4, PageCrossPenalty: true},
		0x79: {Mnemonic: ADC, Mode: AbsoluteY, BaseCycles: 4, PageCrossPenalty: true},
		0x61: {Mnemonic: ADC, Mode: IndirectX, BaseCycles: 6, PageCrossPenalty: false},
		0x71: {Mnemonic: ADC, Mode: IndirectY, BaseCycles: 5, PageCrossPenalty: true},
		0x29: {Mnemonic: AND, Mode: Immediate, BaseCycles: 2, PageCrossPenalty: false},
		0x25: {Mnemonic: AND, Mode: ZeroPage, BaseCycles: 3, PageCrossPenalty: false},
		0x35: {Mnemonic: AND, Mode: ZeroPageX, BaseCycles: 4, PageCrossPenalty: false},
		0x2D: {Mnemonic: AND, Mode: Absolute, BaseCycles: 4, PageCrossPenalty: false},
		0x3D: {Mnemonic: AND, Mode: AbsoluteX, BaseCycles: 4, PageCrossPenalty: true},
		0x39: {Mnemonic: AND, Mode: AbsoluteY, BaseCycles: 4, PageCrossPenalty: true},
		0x21: {Mnemonic: AND, Mode: IndirectX, BaseCycles: 6, PageCrossPenalty: false},
		0x31: {Mnemonic: AND, Mode: IndirectY, BaseCycles: 5, PageCrossPenalty: true},
		0x0A: {Mnemonic: ASL, Mode: Accumulator, BaseCycles: 2, PageCrossPenalty: false},
		0x06: {Mnemonic: ASL, Mode: ZeroPage, BaseCycles: 5, PageCrossPenalty: false},
		0x16: {Mnemonic: ASL, Mode: ZeroPageX, BaseCycles: 6, PageCrossPenalty: false},
		0x0E: {Mnemonic: ASL, Mode: Absolute, BaseCycles: 6, PageCrossPenalty: false},
		0x1E: {Mnemonic: ASL, Mode: AbsoluteX, BaseCycles: 7, PageCrossPenalty: false},
		0x24: {Mnemonic: BIT, Mode: ZeroPage, BaseCycles: 3, PageCrossPenalty: false},
		0x2C: {Mnemonic: BIT, Mode: Absolute, BaseCycles: 4, PageCrossPenalty: false},
		0x00: {Mnemonic: BRK, Mode: Implied, BaseCycles: 7, PageCrossPenalty: false},
		0xC9: {Mnemonic: CMP, Mode: Immediate, BaseCycles: 2, PageCrossPenalty: false},
		0xC5: {Mnemonic: CMP, Mode: ZeroPage, BaseCycles: 3, PageCrossPenalty: false},
		0xD5: {Mnemonic: CMP, Mode: ZeroPageX, BaseCycles: 4, PageCrossPenalty: false},
		0xCD: {Mnemonic: CMP, Mode: Absolute, BaseCycles: 4, PageCrossPenalty: false},
		0xDD: {Mnemonic: CMP, Mode: AbsoluteX, BaseCycles: 4, PageCrossPenalty: true},
		0xD9: {Mnemonic: CMP, Mode: AbsoluteY, BaseCycles: 4, PageCrossPenalty: true},
		0xC1: {Mnemonic: CMP, Mode: IndirectX, BaseCycles: 6, PageCrossPenalty: false},
		0xD1: {Mnemonic: CMP, Mode: IndirectY, BaseCycles: 5, PageCrossPenalty: true},
		0xE0: {Mnemonic: CPX, Mode: Immediate, BaseCycles: 2, PageCrossPenalty: false},
		0xE4: {Mnemonic: CPX, Mode: ZeroPage, BaseCycles: 3, PageCrossPenalty: false},
		0xEC: {Mnemonic: CPX, Mode: Absolute, BaseCycles: 4, PageCrossPenalty: false},
		0xC0: {Mnemonic: CPY, Mode: Immediate, BaseCycles: 2, PageCrossPenalty: false},
		0xC4: {Mnemonic: CPY, Mode: ZeroPage, BaseCycles: 3, PageCrossPenalty: false},
		0xCC: {Mnemonic: CPY, Mode: Absolute, BaseCycles: 4, PageCrossPenalty: false},
		0xC6: {Mnemonic: DEC, Mode: ZeroPage, BaseCycles: 5, PageCrossPenalty: false},
		0xD6: {Mnemonic: DEC, Mode: ZeroPageX, BaseCycles: 6, PageCrossPenalty: false},
		0xCE: {Mnemonic: DEC, Mode: Absolute, BaseCycles: 6, PageCrossPenalty: false},
		0xDE: {Mnemonic: DEC, Mode: AbsoluteX, BaseCycles: 7, PageCrossPenalty: false},
		0x49: {Mnemonic: EOR, Mode: Immediate, BaseCycles: 2, PageCrossPenalty: false},
		0x45: {Mnemonic: EOR, Mode: ZeroPage, BaseCycles: 3, PageCrossPenalty: false},
		0x55: {Mnemonic: EOR, Mode: ZeroPageX, BaseCycles: 4, PageCrossPenalty: false},
		0x4D: {Mnemonic: EOR, Mode: Absolute, BaseCycles: 4, PageCrossPenalty: false},
		0x5D: {Mnemonic: EOR, Mode: AbsoluteX, BaseCycles: 4, PageCrossPenalty: true},
		0x59: {Mnemonic: EOR, Mode: AbsoluteY, BaseCycles: 4, PageCrossPenalty: true},
		0x41: {Mnemonic: EOR, Mode: IndirectX, BaseCycles: 6, PageCrossPenalty: false},
		0x51: {Mnemonic: EOR, Mode: IndirectY, BaseCycles: 5, PageCrossPenalty: true},
		0xE6: {Mnemonic: INC, Mode: ZeroPage, BaseCycles: 5, PageCrossPenalty: false},
		0xF6: {Mnemonic: INC, Mode: ZeroPageX, BaseCycles: 6, PageCrossPenalty: false},
		0xEE: {Mnemonic: INC, Mode: Absolute, BaseCycles: 6, PageCrossPenalty: false},
		0xFE: {Mnemonic: INC, Mode: AbsoluteX, BaseCycles: 7, PageCrossPenalty: false},
		0x4C: {Mnemonic: JMP, Mode: Absolute, BaseCycles: 3, PageCrossPenalty: false},
		0x6C: {Mnemonic: JMP, Mode: Indirect, BaseCycles: 5, PageCrossPenalty: false},
		0x20: {Mnemonic: JSR, Mode: Absolute, BaseCycles: 6, PageCrossPenalty: false},
		0xA9: {Mnemonic: LDA, Mode: Immediate, BaseCycles: 2, PageCrossPenalty: false},
		0xA5: {Mnemonic: LDA, Mode: ZeroPage, BaseCycles: 3, PageCrossPenalty: false},
		0xB5: {Mnemonic: LDA, Mode: ZeroPageX, BaseCycles: 4, PageCrossPenalty: false},
		0xAD: {Mnemonic: LDA, Mode: Absolute, BaseCycles: 4, PageCrossPenalty: false},
		0xBD: {Mnemonic: LDA, Mode: AbsoluteX, BaseCycles: 4, PageCrossPenalty: true},
		0xB9: {Mnemonic: LDA, Mode: AbsoluteY, BaseCycles: 4, PageCrossPenalty: true},
		0xA1: {Mnemonic: LDA, Mode: IndirectX, BaseCycles: 6, PageCrossPenalty: false},
		0xB1: {Mnemonic: LDA, Mode: IndirectY, BaseCycles: 5, PageCrossPenalty: true},
		0xA2: {Mnemonic: LDX, Mode: Immediate, BaseCycles: 2, PageCrossPenalty: false},
		0xA6: {Mnemonic: LDX, Mode: ZeroPage, BaseCycles: 3, PageCrossPenalty: false},
		0xB6: {Mnemonic: LDX, Mode: ZeroPageY, BaseCycles: 4, PageCrossPenalty: false},
		0xAE: {Mnemonic: LDX, Mode: Absolute, BaseCycles: 4, PageCrossPenalty: false},
		0xBE: {Mnemonic: LDX, Mode: AbsoluteY, BaseCycles: 4, PageCrossPenalty: true},
		0xA0: {Mnemonic: LDY, Mode: Immediate, BaseCycles: 2, PageCrossPenalty: false},
		0xA4: {Mnemonic: LDY, Mode: ZeroPage, BaseCycles: 3, PageCrossPenalty: false},
		0xB4: {Mnemonic: LDY, Mode: ZeroPageX, BaseCycles: 4, PageCrossPenalty: false},
		0xAC: {Mnemonic: LDY, Mode: Absolute, BaseCycles: 4, PageCrossPenalty: false},
		0xBC: {Mnemonic: LDY, Mode: AbsoluteX, BaseCycles: 4, PageCrossPenalty: true},
		0x4A: {Mnemonic: LSR, Mode: Accumulator, BaseCycles: 2, PageCrossPenalty: false},
		0x46: {Mnemonic: LSR, Mode: ZeroPage, BaseCycles: 5, PageCrossPenalty: false},
		0x56: {Mnemonic: LSR, Mode: ZeroPageX, BaseCycles: 6, PageCrossPenalty: false},
		0x4E: {Mnemonic: LSR, Mode: Absolute, BaseCycles: 6, PageCrossPenalty: false},
		0x5E: {Mnemonic: LSR, Mode: AbsoluteX, BaseCycles: 7, PageCrossPenalty: false},
		0xEA: {Mnemonic: NOP, Mode: Implied, BaseCycles: 2, PageCrossPenalty: false},
		0x09: {Mnemonic: ORA, Mode: Immediate, BaseCycles: 2, PageCrossPenalty: false},
		0x05: {Mnemonic: ORA, Mode: ZeroPage, BaseCycles: 3, PageCrossPenalty: false},
		0x15: {Mnemonic: ORA, Mode: ZeroPageX, BaseCycles: 4, PageCrossPenalty: false},
		0x0D: {Mnemonic: ORA, Mode: Absolute, BaseCycles: 4, PageCrossPenalty: false},
		0x1D: {Mnemonic: ORA, Mode: AbsoluteX, BaseCycles: 4, PageCrossPenalty: true},
		0x19: {Mnemonic: ORA, Mode: AbsoluteY, BaseCycles: 4, PageCrossPenalty: true},
		0x01: {Mnemonic: ORA, Mode: IndirectX, BaseCycles: 6, PageCrossPenalty: false},
		0x11: {Mnemonic: ORA, Mode: IndirectY, BaseCycles: 5, PageCrossPenalty: true},
		0x2A: {Mnemonic: ROL, Mode: Accumulator, BaseCycles: 2, PageCrossPenalty: false},
		0x26: {Mnemonic: ROL, Mode: ZeroPage, BaseCycles: 5, PageCrossPenalty: false},
		0x36: {Mnemonic: ROL, Mode: ZeroPageX, BaseCycles: 6, PageCrossPenalty: false},
		0x2E: {Mnemonic: ROL, Mode: Absolute, BaseCycles: 6, PageCrossPenalty: false},
		0x3E: {Mnemonic: ROL, Mode: AbsoluteX, BaseCycles: 7, PageCrossPenalty: false},
		0x6A: {Mnemonic: ROR, Mode: Accumulator, BaseCycles: 2, PageCrossPenalty: false},
		0x66: {Mnemonic: ROR, Mode: ZeroPage, BaseCycles: 5, PageCrossPenalty: false},
		0x76: {Mnemonic: ROR, Mode: ZeroPageX, BaseCycles: 6, PageCrossPenalty: false},
		0x6E: {Mnemonic: ROR, Mode: Absolute, BaseCycles: 6, PageCrossPenalty: false},
		0x7E: {Mnemonic: ROR, Mode: AbsoluteX, BaseCycles: 7, PageCrossPenalty: false},
		0x40: {Mnemonic: RTI, Mode: Implied, BaseCycles: 6, PageCrossPenalty: false},
		0x60: {Mnemonic: RTS, Mode: Implied, BaseCycles: 6, PageCrossPenalty: false},
		0xE9: {Mnemonic: SBC, Mode: Immediate, BaseCycles: 2, PageCrossPenalty: false},
		0xE5: {Mnemonic: SBC, Mode: ZeroPage, BaseCycles: 3, PageCrossPenalty: false},
		0xF5: {Mnemonic: SBC, Mode: ZeroPageX, BaseCycles: 4, PageCrossPenalty: false},
		0xED: {Mnemonic: SBC, Mode: Absolute, BaseCycles: 4, PageCrossPenalty: false},
		0xFD: {Mnemonic: SBC, Mode: AbsoluteX, BaseCycles: 4, PageCrossPenalty: true},
		0xF9: {Mnemonic: SBC, Mode: AbsoluteY, BaseCycles: 4, PageCrossPenalty: true},
		0xE1: {Mnemonic: SBC, Mode: IndirectX, BaseCycles: 6, PageCrossPenalty: false},
		0xF1: {Mnemonic: SBC, Mode: IndirectY, BaseCycles: 5, PageCrossPenalty: true},
		0x85: {Mnemonic: STA, Mode: ZeroPage, BaseCycles: 3, PageCrossPenalty: false},
		0x95: {Mnemonic: STA, Mode: ZeroPageX, BaseCycles: 4, PageCrossPenalty: false},
		0x8D: {Mnemonic: STA, Mode: Absolute, BaseCycles: 4, PageCrossPenalty: false},
		0x9D: {Mnemonic: STA, Mode: AbsoluteX, BaseCycles: 5, PageCrossPenalty: false},
		0x99: {Mnemonic: STA, Mode: AbsoluteY, BaseCycles: 5, PageCrossPenalty: false},
		0x81: {Mnemonic: STA, Mode: IndirectX, BaseCycles: 6, PageCrossPenalty: false},
		0x91: {Mnemonic: STA, Mode: IndirectY, BaseCycles: 6, PageCrossPenalty: false},
		0x86: {Mnemonic: STX, Mode: ZeroPage, BaseCycles: 3, PageCrossPenalty: false},
		0x96: {Mnemonic: STX, Mode: ZeroPageY, BaseCycles: 4, PageCrossPenalty: false},
		0x8E: {Mnemonic: STX, Mode: Absolute, BaseCycles: 4, PageCrossPenalty: false},
		0x84: {Mnemonic: STY, Mode: ZeroPage, BaseCycles: 3, PageCrossPenalty: false},
		0x94: {Mnemonic: STY, Mode: ZeroPageX, BaseCycles: 4, PageCrossPenalty: false},
		0x8C: {Mnemonic: STY, Mode: Absolute, BaseCycles: 4, PageCrossPenalty: false},
		0x18: {Mnemonic: CLC, Mode: Implied, BaseCycles: 2, PageCrossPenalty: false},
		0x38: {Mnemonic: SEC, Mode: Implied, BaseCycles: 2, PageCrossPenalty: false},
		0x58: {Mnemonic: CLI, Mode: Implied, BaseCycles: 2, PageCrossPenalty: false},
		0x78: {Mnemonic: SEI, Mode: Implied, BaseCycles: 2, PageCrossPenalty: false},
		0xB8: {Mnemonic: CLV, Mode: Implied, BaseCycles: 2, PageCrossPenalty: false},
		0xD8: {Mnemonic: CLD, Mode: Implied, BaseCycles: 2, PageCrossPenalty: false},
		0xF8: {Mnemonic: SED, Mode: Implied, BaseCycles: 2, PageCrossPenalty: false},
		0xAA: {Mnemonic: TAX, Mode: Implied, BaseCycles: 2, PageCrossPenalty: false},
		0x8A: {Mnemonic: TXA, Mode: Implied, BaseCycles: 2, PageCrossPenalty: false},
		0xCA: {Mnemonic: DEX, Mode: Implied, BaseCycles: 2, PageCrossPenalty: false},
		0xE8: {Mnemonic: INX, Mode: Implied, BaseCycles: 2, PageCrossPenalty: false},
		0xA8: {Mnemonic: TAY, Mode: Implied, BaseCycles: 2, PageCrossPenalty: false},
		0x98: {Mnemonic: TYA, Mode: Implied, BaseCycles: 2, PageCrossPenalty: false},
		0x88: {Mnemonic: DEY, Mode: Implied, BaseCycles: 2, PageCrossPenalty: false},
		0xC8: {Mnemonic: INY, Mode: Implied, BaseCycles: 2, PageCrossPenalty: false},
		0x10: {Mnemonic: BPL, Mode: Relative, BaseCycles: 2, PageCrossPenalty: false},
		0x30: {Mnemonic: BMI, Mode: Relative, BaseCycles: 2, PageCrossPenalty: false},
		0x50: {Mnemonic: BVC, Mode: Relative, BaseCycles: 2, PageCrossPenalty: false},
		0x70: {Mnemonic: BVS, Mode: Relative, BaseCycles: 2, PageCrossPenalty: false},
		0x90: {Mnemonic: BCC, Mode: Relative, BaseCycles: 2, PageCrossPenalty: false},
		0xB0: {Mnemonic: BCS, Mode: Relative, BaseCycles: 2, PageCrossPenalty: false},
		0xD0: {Mnemonic: BNE, Mode: Relative, BaseCycles: 2, PageCrossPenalty: false},
		0xF0: {Mnemonic: BEQ, Mode: Relative, BaseCycles: 2, PageCrossPenalty: false},
		0x9A: {Mnemonic: TXS, Mode: Implied, BaseCycles: 2, PageCrossPenalty: false},
		0xBA: {Mnemonic: TSX, Mode: Implied, BaseCycles: 2, PageCrossPenalty: false},
		0x48: {Mnemonic: PHA, Mode: Implied, BaseCycles: 3, PageCrossPenalty: false},
		0x68: {Mnemonic: PLA, Mode: Implied, BaseCycles: 4, PageCrossPenalty: false},
		0x08: {Mnemonic: PHP, Mode: Implied, BaseCycles: 3, PageCrossPenalty: false},
		0x28: {Mnemonic: PLP, Mode: Implied, BaseCycles: 4, PageCrossPenalty: false},
	}
	for b, e := range legal {
		t[b] = e
	}
	return t
}
