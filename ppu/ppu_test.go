package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCart struct{ chr [0x2000]byte }

func (f *fakeCart) Read(addr uint16) byte {
	if addr <= 0x1FFF {
		return f.chr[addr]
	}
	return 0
}

func TestReadWithoutCartReturnsZero(t *testing.T) {
	p := New()
	assert.Equal(t, byte(0), p.Read(0x0000))
}

func TestReadForwardsToAttachedCart(t *testing.T) {
	c := &fakeCart{}
	c.chr[0x0010] = 0xAB

	p := New()
	p.AttachCart(c)
	assert.Equal(t, byte(0xAB), p.Read(0x0010))
}

func TestWriteIsNoOp(t *testing.T) {
	p := New()
	p.Write(0x0000, 0xFF) // must not panic
}
