package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gone6502/cart"
	"gone6502/ioport"
	"gone6502/rng"
)

func blankROM() []byte {
	rom := make([]byte, 0x10+0x4000+0x2000)
	copy(rom[0:4], []byte{0x4E, 0x45, 0x53, 0x1A})
	return rom
}

func TestReadWriteIdentityOnRAM(t *testing.T) {
	b := New()
	b.Write(0x0200, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x0200))
}

func TestCartTakesPriorityOverRAMAboveCartBase(t *testing.T) {
	rom := blankROM()
	rom[0x10] = 0x99
	c, err := cart.New(rom)
	assert.NoError(t, err)

	b := New()
	b.AttachCart(c)
	assert.Equal(t, byte(0x99), b.Read(0x8000))

	b.Write(0x8000, 0x11) // cart writes are no-ops
	assert.Equal(t, byte(0x99), b.Read(0x8000))
}

func TestRNGWritesLandInRAMButReadsStayLive(t *testing.T) {
	b := New()
	b.AttachRNG(rng.New(1))

	b.Write(0x00FE, 0x55)
	assert.Equal(t, byte(0x55), b.RAM.Read(0x00FE), "a write to $00FE is not special-cased, so it lands in RAM")

	// But as long as the RNG is attached, Read($00FE) is served by the RNG,
	// not by whatever the write above put in RAM underneath it.
	assert.Equal(t, rng.New(1).Read(0x00FE), b.Read(0x00FE), "Read($00FE) is served by the attached RNG")
}

func TestRNGAddressFallsBackToRAMWhenDetached(t *testing.T) {
	b := New()
	b.Write(0x00FE, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x00FE))
}

func TestDeviceWindowClaimsAddress(t *testing.T) {
	b := New()
	serial := ioport.Open(0x4000, nil)
	b.AddDevice(serial)

	status := b.Read(0x4000)
	assert.Equal(t, byte(2), status, "no port attached reports TxReady only")
}

func TestCartShadowsDeviceMountedInCartSpace(t *testing.T) {
	rom := blankROM()
	c, err := cart.New(rom)
	assert.NoError(t, err)

	b := New()
	b.AttachCart(c)
	b.AddDevice(ioport.Open(0x8800, nil))

	// $8800 falls inside $8000-$FFFF, so the cartridge answers it; the
	// device mounted at the same address is unreachable while a cart is
	// attached.
	assert.Equal(t, c.Read(0x8800), b.Read(0x8800))
}

func TestNoOverrideFallsThroughToRAM(t *testing.T) {
	b := New()
	b.Write(0x0001, 0x7A)
	assert.Equal(t, byte(0x7A), b.Read(0x0001))
}
