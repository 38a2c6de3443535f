package icns

import (
	"encoding/binary"
	"fmt"
)

// cursor is a bounds-checked big-endian reader over a byte buffer.
// Sub-cursors share the underlying buffer; no reads copy data beyond the
// requested bytes. base tracks the absolute offset of data[0] in the source
// file so elements can report their position.
type cursor struct {
	data []byte
	base int
	pos  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

// remaining reports how many unread bytes are left in the cursor's scope.
func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

// offset is the absolute position of the next read in the source buffer.
func (c *cursor) offset() int {
	return c.base + c.pos
}

func (c *cursor) readByte() (byte, error) {
	if c.remaining() < 1 {
		return 0, fmt.Errorf("%w: need 1 byte at offset %d", ErrTruncatedData, c.offset())
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) readUint16() (uint16, error) {
	if c.remaining() < 2 {
		return 0, fmt.Errorf("%w: need 2 bytes at offset %d, have %d", ErrTruncatedData, c.offset(), c.remaining())
	}
	v := binary.BigEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v, nil
}

func (c *cursor) readUint32() (uint32, error) {
	if c.remaining() < 4 {
		return 0, fmt.Errorf("%w: need 4 bytes at offset %d, have %d", ErrTruncatedData, c.offset(), c.remaining())
	}
	v := binary.BigEndian.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, nil
}

// readBytes returns a view of the next n bytes without copying.
func (c *cursor) readBytes(n int) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncatedData, n, c.offset(), c.remaining())
	}
	b := c.data[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return b, nil
}

// sub carves a bounded sub-cursor over the next n bytes and advances past
// them. The sub-cursor cannot read outside its slice.
func (c *cursor) sub(n int) (*cursor, error) {
	off := c.offset()
	b, err := c.readBytes(n)
	if err != nil {
		return nil, err
	}
	return &cursor{data: b, base: off}, nil
}
