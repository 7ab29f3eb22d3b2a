// Package bus implements the address-decoded routing at the center of the
// machine: a flat 64 KiB RAM region plus optional, pluggable references to a
// cartridge, an RNG, and zero or more I/O write-claimants.
//
// Routing is by range membership, checked in priority order: single-address
// overrides (the RNG) first, then range overrides (the cartridge, mounted
// I/O devices), then RAM as the default. The Bus never wraps addresses;
// every addr is already a uint16, so it is inherently bounded to 64 KiB.
package bus

import "gone6502/mem"

const rngAddr = 0x00FE

// cartridge is the read/write surface the Bus needs from an attached
// cartridge; cart.Cart satisfies it.
type cartridge interface {
	Read(addr uint16) byte
	Write(addr uint16, v byte)
}

// entropy is the read surface the Bus needs from an attached RNG;
// rng.RNG satisfies it.
type entropy interface {
	Read(addr uint16) byte
}

// Device is a pluggable, range-claiming I/O peripheral — a serial port, for
// instance. Contains reports whether an address belongs to the device's
// window; Read/Write service it when it does.
type Device interface {
	Contains(addr uint16) bool
	Read(addr uint16) byte
	Write(addr uint16, v byte)
}

// Bus owns RAM and holds optional references to one cartridge, one RNG, and
// any number of I/O devices.
type Bus struct {
	RAM *mem.Memory

	cart cartridge
	rng  entropy
	io   []Device
}

// New returns a Bus with freshly zeroed RAM and no peripherals attached.
func New() *Bus {
	return &Bus{RAM: mem.New()}
}

// AttachCart mounts (or, with nil, removes) a cartridge. $8000-$FFFF reads
// are served by the cartridge whenever one is attached.
func (b *Bus) AttachCart(c cartridge) {
	b.cart = c
}

// AttachRNG mounts (or, with nil, removes) an entropy source at $00FE.
func (b *Bus) AttachRNG(r entropy) {
	b.rng = r
}

// AddDevice registers an I/O write-claimant. Devices are consulted in
// registration order; the first whose Contains reports true wins.
func (b *Bus) AddDevice(d Device) {
	b.io = append(b.io, d)
}

// Read dispatches a 16-bit address to its owner: the RNG at $00FE, the
// cartridge across $8000-$FFFF, an I/O device's claimed window, or RAM. The
// cartridge is consulted before any I/O device, so a device mounted inside
// $8000-$FFFF is unreachable whenever a cartridge is attached; mount devices
// below $8000 to avoid being shadowed.
func (b *Bus) Read(addr uint16) byte {
	if addr == rngAddr && b.rng != nil {
		return b.rng.Read(addr)
	}
	if addr >= 0x8000 && b.cart != nil {
		return b.cart.Read(addr)
	}
	for _, d := range b.io {
		if d.Contains(addr) {
			return d.Read(addr)
		}
	}
	return b.RAM.Read(addr)
}

// Write dispatches similarly, except the cartridge silently discards writes
// (NROM has no bank-switching registers) and the RNG has no write-visible
// state, so writes to $00FE simply land in RAM like any other address.
func (b *Bus) Write(addr uint16, v byte) {
	if addr >= 0x8000 && b.cart != nil {
		b.cart.Write(addr, v)
		return
	}
	for _, d := range b.io {
		if d.Contains(addr) {
			d.Write(addr, v)
			return
		}
	}
	b.RAM.Write(addr, v)
}
