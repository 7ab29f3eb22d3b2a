package cart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func blankROM() []byte {
	rom := make([]byte, headerSize+prgSize+chrSize)
	copy(rom[0:4], headerMagic[:])
	return rom
}

func TestNewAcceptsValidROM(t *testing.T) {
	_, err := New(blankROM())
	assert.NoError(t, err)
}

func TestNewRejectsBadHeader(t *testing.T) {
	rom := blankROM()
	copy(rom[0:4], []byte("SEGA"))

	_, err := New(rom)
	assert.True(t, errors.Is(err, ErrBadHeader))
}

func TestNewRejectsTruncatedImage(t *testing.T) {
	_, err := New(blankROM()[:100])
	assert.True(t, errors.Is(err, ErrTruncated))
}

func TestPRGMirroring(t *testing.T) {
	rom := blankROM()
	rom[headerSize] = 0xAB
	rom[headerSize+1] = 0xCD

	c, err := New(rom)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xAB), c.Read(0x8000))
	assert.Equal(t, byte(0xAB), c.Read(0xC000))
	assert.Equal(t, byte(0xCD), c.Read(0x8001))
	assert.Equal(t, byte(0xCD), c.Read(0xC001))
}

func TestCHRRead(t *testing.T) {
	rom := blankROM()
	rom[headerSize+prgSize+0x0010] = 0xAB

	c, err := New(rom)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xAB), c.Read(0x0010))
}

func TestWriteIsNoOp(t *testing.T) {
	c, err := New(blankROM())
	assert.NoError(t, err)

	before := c.Read(0x8000)
	c.Write(0x8000, 0xFF)
	assert.Equal(t, before, c.Read(0x8000))
}
