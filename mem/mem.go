// Package mem implements the flat 64 KiB byte array backing the machine's
// RAM. It has no notion of address-range routing; that is the Bus's job.
package mem

// Memory is a flat 64 KiB address space, zeroed on construction.
type Memory struct {
	ram [0x10000]byte
}

// New returns a zeroed Memory.
func New() *Memory {
	return &Memory{}
}

// Read returns the byte at addr. addr is taken modulo the 64 KiB range; since
// addr is already a uint16, no wrapping arithmetic is needed.
func (m *Memory) Read(addr uint16) byte {
	return m.ram[addr]
}

// Write stores v at addr.
func (m *Memory) Write(addr uint16, v byte) {
	m.ram[addr] = v
}

// Load copies data into the memory starting at offset, truncating any bytes
// that would run past the end of the address space.
func (m *Memory) Load(data []byte, offset uint16) {
	copy(m.ram[offset:], data)
}
