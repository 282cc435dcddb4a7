package elf

import (
	"encoding/binary"
)

// cursor decodes fixed-width little-endian fields from a byte buffer. The
// first read that runs past the end of the buffer records an IncompleteError
// carrying the exact shortfall; every read after that is a no-op returning
// the zero value.
type cursor struct {
	buf []byte
	off int
	err error
}

func newCursor(buf []byte, off int) *cursor {
	return &cursor{buf: buf, off: off}
}

// need reports whether n more bytes are available, recording the shortfall
// otherwise.
func (c *cursor) need(n int) bool {
	if c.err != nil {
		return false
	}
	if rest := len(c.buf) - c.off; rest < n {
		c.err = &IncompleteError{Needed: n - rest}
		return false
	}
	return true
}

func (c *cursor) Err() error {
	return c.err
}

func (c *cursor) Uint8() uint8 {
	if !c.need(1) {
		return 0
	}
	v := c.buf[c.off]
	c.off++
	return v
}

func (c *cursor) Uint16() uint16 {
	if !c.need(2) {
		return 0
	}
	v := binary.LittleEndian.Uint16(c.buf[c.off:])
	c.off += 2
	return v
}

func (c *cursor) Uint32() uint32 {
	if !c.need(4) {
		return 0
	}
	v := binary.LittleEndian.Uint32(c.buf[c.off:])
	c.off += 4
	return v
}

func (c *cursor) Uint64() uint64 {
	if !c.need(8) {
		return 0
	}
	v := binary.LittleEndian.Uint64(c.buf[c.off:])
	c.off += 8
	return v
}

// Bytes returns the next n bytes without copying them.
func (c *cursor) Bytes(n int) []byte {
	if !c.need(n) {
		return nil
	}
	v := c.buf[c.off : c.off+n : c.off+n]
	c.off += n
	return v
}
