package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// flatBus is a bare 64 KiB array satisfying the Bus interface, used so cpu
// tests don't need to pull in package bus.
type flatBus struct {
	ram [0x10000]byte
}

func (b *flatBus) Read(addr uint16) byte     { return b.ram[addr] }
func (b *flatBus) Write(addr uint16, v byte) { b.ram[addr] = v }

func (b *flatBus) load(data []byte, at uint16) {
	copy(b.ram[at:], data)
}

func newTestCpu() (*Cpu, *flatBus) {
	bus := &flatBus{}
	return New(bus), bus
}

func TestResetVector(t *testing.T) {
	c, bus := newTestCpu()
	bus.ram[0xFFFC] = 0x34
	bus.ram[0xFFFD] = 0x12

	c.Reset()

	assert.Equal(t, uint16(0x1234), c.PC)
	assert.Equal(t, byte(0xFF), c.SP)
	assert.Equal(t, byte(0), c.A)
	assert.True(t, c.Flags.Unused)
	assert.False(t, c.Flags.Break)
}

func TestPushPullRoundTrip(t *testing.T) {
	c, _ := newTestCpu()
	c.Reset()
	sp := c.SP

	c.push(0x42)
	assert.Equal(t, sp-1, c.SP)
	assert.Equal(t, byte(0x42), c.pull())
	assert.Equal(t, sp, c.SP)
}

func TestPushPullWordRoundTrip(t *testing.T) {
	c, _ := newTestCpu()
	c.Reset()

	c.pushWord(0xBEEF)
	assert.Equal(t, uint16(0xBEEF), c.pullWord())
}

func TestStackWrapsAtPageBoundary(t *testing.T) {
	c, bus := newTestCpu()
	c.Reset()
	c.SP = 0x00

	c.push(0x99)
	assert.Equal(t, byte(0xFF), c.SP)
	assert.Equal(t, byte(0x99), bus.ram[0x0100])
}

func TestPHPSetsBreakAndUnused(t *testing.T) {
	c, bus := newTestCpu()
	c.Reset()
	c.Flags = Flags{Carry: true}

	c.execute(PHP)
	pushed := bus.ram[0x0100|uint16(0xFF)]
	assert.True(t, pushed&0x10 != 0, "Break bit should be set on push")
	assert.True(t, pushed&0x20 != 0, "Unused bit should be set on push")
}

func TestPLPForcesFixedBits(t *testing.T) {
	c, _ := newTestCpu()
	c.Reset()
	c.push(0xFF) // all bits set, including Break

	c.execute(PLP)
	assert.False(t, c.Flags.Break, "PLP must clear the Break flag it reads")
	assert.True(t, c.Flags.Unused)
	assert.True(t, c.Flags.Carry)
}

func TestJSRRTSPairing(t *testing.T) {
	c, bus := newTestCpu()
	c.Reset()
	c.PC = 0x8000
	bus.ram[0x8000] = 0x20 // JSR
	bus.ram[0x8001] = 0x00
	bus.ram[0x8002] = 0x90
	bus.ram[0x9000] = 0x60 // RTS

	c.Clock() // JSR
	assert.Equal(t, uint16(0x9000), c.PC)

	for c.CyclesLeft > 0 {
		c.Clock()
	}
	c.Clock() // RTS
	assert.Equal(t, uint16(0x8003), c.PC)
}

func TestADCBinaryCarryAndOverflow(t *testing.T) {
	c, _ := newTestCpu()
	c.Reset()
	c.A = 0x50
	c.Flags.Carry = false

	c.adc(0x50) // 0x50 + 0x50 = 0xA0: signed overflow, no carry
	assert.Equal(t, byte(0xA0), c.A)
	assert.True(t, c.Flags.Overflow)
	assert.False(t, c.Flags.Carry)
	assert.True(t, c.Flags.Negative)
}

func TestADCUnsignedCarryOut(t *testing.T) {
	c, _ := newTestCpu()
	c.Reset()
	c.A = 0xFF
	c.Flags.Carry = false

	c.adc(0x01)
	assert.Equal(t, byte(0x00), c.A)
	assert.True(t, c.Flags.Carry)
	assert.True(t, c.Flags.Zero)
	assert.False(t, c.Flags.Overflow)
}

func TestSBCWithBorrow(t *testing.T) {
	c, _ := newTestCpu()
	c.Reset()
	c.A = 0x00
	c.Flags.Carry = false // C=0 means a borrow is already pending

	c.sbc(0x01)
	assert.Equal(t, byte(0xFE), c.A)
	assert.False(t, c.Flags.Carry, "borrow should propagate out")
}

func TestSBCNoBorrow(t *testing.T) {
	c, _ := newTestCpu()
	c.Reset()
	c.A = 0x10
	c.Flags.Carry = true // C=1 means no incoming borrow

	c.sbc(0x01)
	assert.Equal(t, byte(0x0F), c.A)
	assert.True(t, c.Flags.Carry)
}

func TestADCDecimalMode(t *testing.T) {
	c, _ := newTestCpu()
	c.Reset()
	c.Flags.Decimal = true
	c.A = 0x58
	c.Flags.Carry = false

	c.adc(0x46) // 58 + 46 = 104 in BCD
	assert.Equal(t, byte(0x04), c.A)
	assert.True(t, c.Flags.Carry)
}

func TestZeroPageXWraps(t *testing.T) {
	c, bus := newTestCpu()
	c.Reset()
	c.X = 0xFF
	c.PC = 0x8000
	bus.ram[0x8000] = 0x80

	crossed := c.decode(ZeroPageX)
	assert.False(t, crossed)
	assert.Equal(t, uint16(0x7F), c.OpAddr, "zero page indexing must wrap within page 0")
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, bus := newTestCpu()
	c.Reset()
	bus.ram[0x30FF] = 0x80
	bus.ram[0x3000] = 0x50 // high byte is fetched from $3000, not $3100
	bus.ram[0x3100] = 0xFF

	addr := c.readWordBuggy(0x30FF)
	assert.Equal(t, uint16(0x5080), addr)
}

func TestBranchNotTakenCyclesLeft(t *testing.T) {
	c, bus := newTestCpu()
	c.Reset()
	c.PC = 0x8000
	bus.ram[0x8000] = 0xD0 // BNE
	bus.ram[0x8001] = 0x10
	c.Flags.Zero = true // not taken

	c.Clock()
	assert.Equal(t, byte(1), c.CyclesLeft)
}

func TestBranchTakenSamePageCyclesLeft(t *testing.T) {
	c, bus := newTestCpu()
	c.Reset()
	c.PC = 0x8000
	bus.ram[0x8000] = 0xD0 // BNE
	bus.ram[0x8001] = 0x10
	c.Flags.Zero = false // taken, same page

	c.Clock()
	assert.Equal(t, byte(2), c.CyclesLeft)
}

func TestBranchTakenPageCrossCyclesLeft(t *testing.T) {
	c, bus := newTestCpu()
	c.Reset()
	c.PC = 0x80F0
	bus.ram[0x80F0] = 0xD0 // BNE
	bus.ram[0x80F1] = 0x20 // jumps past the page boundary
	c.Flags.Zero = false

	c.Clock()
	assert.Equal(t, byte(3), c.CyclesLeft)
}

func TestIllegalOpcodeConsumesCyclesOnly(t *testing.T) {
	c, bus := newTestCpu()
	c.Reset()
	c.PC = 0x8000
	bus.ram[0x8000] = 0x02 // no legal mnemonic maps here

	before := c.A
	c.Clock()
	assert.Equal(t, before, c.A)
	assert.Equal(t, uint64(1), c.Instructions)
}

// TestMultiplyByRepeatedAddition runs a classic 10*3 multiplication program
// one instruction at a time through all 41 instructions it executes, then
// checks the accumulator and the three memory cells it wrote.
func TestMultiplyByRepeatedAddition(t *testing.T) {
	program := []byte{
		0xA2, 0x0A, 0x8E, 0x00, 0x00, // LDX #$0A ; STX $0000
		0xA2, 0x03, 0x8E, 0x01, 0x00, // LDX #$03 ; STX $0001
		0xAC, 0x00, 0x00, // LDY $0000
		0xA9, 0x00, // LDA #$00
		0x18,                   // CLC
		0x6D, 0x01, 0x00, 0x88, // loop: ADC $0001 ; DEY
		0xD0, 0xFA, // BNE loop
		0x8D, 0x02, 0x00, // STA $0002
		0xEA, 0xEA, 0xEA, // NOP NOP NOP
	}

	c, bus := newTestCpu()
	bus.load(program, 0x8000)
	bus.ram[0xFFFC] = 0x00
	bus.ram[0xFFFD] = 0x80
	c.Reset()

	for c.Instructions < 41 {
		c.Clock()
		for c.CyclesLeft > 0 {
			c.Clock()
		}
	}

	assert.Equal(t, byte(30), c.A)
	assert.Equal(t, byte(0x0A), bus.ram[0x0000])
	assert.Equal(t, byte(0x03), bus.ram[0x0001])
	assert.Equal(t, byte(30), bus.ram[0x0002])
}

func TestNMIDispatch(t *testing.T) {
	c, bus := newTestCpu()
	c.Reset()
	c.PC = 0x8000
	bus.ram[0xFFFA] = 0x00
	bus.ram[0xFFFB] = 0x90

	c.NMI()
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.True(t, c.Flags.InterruptDisable)
	assert.Equal(t, byte(7), c.CyclesLeft)
}

func TestIRQSuppressedWhenDisabled(t *testing.T) {
	c, _ := newTestCpu()
	c.Reset()
	c.PC = 0x8000
	c.Flags.InterruptDisable = true

	c.IRQ()
	assert.Equal(t, uint16(0x8000), c.PC, "IRQ must be ignored while masked")
}
