// Package cart implements the simplest iNES cartridge layout: NROM, fixed
// PRG/CHR banks with no switching.
package cart

import (
	"errors"
	"fmt"
)

const (
	headerSize = 0x10
	prgSize    = 0x4000 // 16 KiB
	chrSize    = 0x2000 // 8 KiB

	prgBase = 0x8000
	prgBank = 0x4000 // PRG is mirrored every 16 KiB across $8000-$FFFF
)

var headerMagic = [4]byte{0x4E, 0x45, 0x53, 0x1A} // "NES\x1A"

// ErrBadHeader is returned when the first four bytes of a ROM image don't
// match the iNES magic.
var ErrBadHeader = errors.New("cart: bad iNES header")

// ErrTruncated is returned when a ROM image is too short to hold its header,
// PRG-ROM, and CHR-ROM.
var ErrTruncated = errors.New("cart: truncated ROM image")

// Cart is an NROM-128 cartridge: one 16 KiB PRG bank (mirrored to fill
// $8000-$FFFF) and one 8 KiB CHR bank visible to the PPU.
type Cart struct {
	header [headerSize]byte
	prg    [prgSize]byte
	chr    [chrSize]byte
}

// New validates and decodes an iNES image. The slice must be at least
// headerSize+prgSize+chrSize (0x6010) bytes long.
func New(rom []byte) (*Cart, error) {
	if len(rom) < headerSize+prgSize+chrSize {
		return nil, fmt.Errorf("%w: need at least %#x bytes, got %#x", ErrTruncated, headerSize+prgSize+chrSize, len(rom))
	}

	c := &Cart{}
	copy(c.header[:], rom[:headerSize])
	if c.header[0] != headerMagic[0] || c.header[1] != headerMagic[1] ||
		c.header[2] != headerMagic[2] || c.header[3] != headerMagic[3] {
		return nil, ErrBadHeader
	}

	copy(c.prg[:], rom[headerSize:headerSize+prgSize])
	copy(c.chr[:], rom[headerSize+prgSize:headerSize+prgSize+chrSize])
	return c, nil
}

// Read implements the PPU-visible CHR window and the CPU-visible, mirrored
// PRG window. Any other address reads as 0.
func (c *Cart) Read(addr uint16) byte {
	switch {
	case addr <= 0x1FFF:
		return c.chr[addr]
	case addr >= prgBase:
		return c.prg[(int(addr)-prgBase)%prgBank]
	default:
		return 0
	}
}

// Write is a no-op: NROM has no bank-switching registers and no battery RAM
// in this implementation.
func (c *Cart) Write(addr uint16, v byte) {}
