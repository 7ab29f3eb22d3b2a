package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gone6502/cpu"
)

type flatBus struct {
	ram [0x10000]byte
}

func (b *flatBus) Read(addr uint16) byte     { return b.ram[addr] }
func (b *flatBus) Write(addr uint16, v byte) { b.ram[addr] = v }

func TestFrameTimerTracksCyclesPerFrame(t *testing.T) {
	ft := NewFrameTimer(60, 600)
	assert.Equal(t, uint64(10), ft.cyclesPerFrame)
	assert.False(t, ft.Computed())

	for i := 0; i < 10; i++ {
		ft.Clock()
	}
	assert.True(t, ft.Computed())

	ft.Reset()
	assert.False(t, ft.Computed())
}

func TestStepRunsOneInstructionToCompletion(t *testing.T) {
	bus := &flatBus{}
	bus.ram[0x8000] = 0xA9 // LDA #$05
	bus.ram[0x8001] = 0x05
	bus.ram[0xFFFC] = 0x00
	bus.ram[0xFFFD] = 0x80

	c := cpu.New(bus)
	c.Reset()

	s := New(c)
	s.Step()

	assert.Equal(t, byte(0x05), c.A)
	assert.Equal(t, byte(0), c.CyclesLeft, "Step must drain the full instruction, not just fetch it")
}

func TestRunHaltsOnBRK(t *testing.T) {
	bus := &flatBus{}
	bus.ram[0x8000] = 0x00 // BRK
	bus.ram[0xFFFC] = 0x00
	bus.ram[0xFFFD] = 0x80
	bus.ram[0xFFFE] = 0x00
	bus.ram[0xFFFF] = 0x90

	c := cpu.New(bus)
	c.Reset()

	s := New(c)
	s.MaxSpeed = true
	s.Run()

	deadline := time.Now().Add(time.Second)
	for !s.IsHalted() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	assert.True(t, s.IsHalted())
	assert.True(t, c.Halted())
}

func TestBreakpointHaltsExecution(t *testing.T) {
	bus := &flatBus{}
	bus.ram[0x8000] = 0xEA // NOP
	bus.ram[0x8001] = 0xEA // NOP
	bus.ram[0xFFFC] = 0x00
	bus.ram[0xFFFD] = 0x80

	c := cpu.New(bus)
	c.Reset()

	s := New(c)
	s.MaxSpeed = true
	s.Breakpoints = []uint16{0x8001}
	s.Run()

	deadline := time.Now().Add(time.Second)
	for !s.IsHalted() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	assert.True(t, s.IsHalted())
	assert.Equal(t, uint16(0x8001), c.PC)
}
