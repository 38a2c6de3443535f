package icns

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorReads(t *testing.T) {
	c := newCursor([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})

	b, err := c.readByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), b)

	v16, err := c.readUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0203), v16)

	v32, err := c.readUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04050607), v32)

	rest, err := c.readBytes(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08}, rest)
	assert.Equal(t, 0, c.remaining())
}

func TestCursorSub(t *testing.T) {
	c := newCursor([]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee})

	_, err := c.readByte()
	require.NoError(t, err)

	sub, err := c.sub(3)
	require.NoError(t, err)
	assert.Equal(t, 1, sub.base, "sub-cursor keeps the absolute offset")
	assert.Equal(t, 3, sub.remaining())

	// The parent is positioned past the sub-range.
	assert.Equal(t, 1, c.remaining())

	// The sub-cursor cannot read outside its bounds.
	_, err = sub.readBytes(4)
	assert.ErrorIs(t, err, ErrTruncatedData)
}

func TestCursorTruncated(t *testing.T) {
	for _, tc := range []struct {
		name string
		read func(c *cursor) error
	}{
		{"byte", func(c *cursor) error { _, err := c.readByte(); return err }},
		{"uint16", func(c *cursor) error { _, err := c.readUint16(); return err }},
		{"uint32", func(c *cursor) error { _, err := c.readUint32(); return err }},
		{"bytes", func(c *cursor) error { _, err := c.readBytes(2); return err }},
		{"sub", func(c *cursor) error { _, err := c.sub(2); return err }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.read(newCursor([]byte{0x01}))
			if !errors.Is(err, ErrTruncatedData) {
				t.Errorf("got %v, want ErrTruncatedData", err)
			}
		})
	}
}

func TestCursorZeroCopy(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	c := newCursor(buf)
	b, err := c.readBytes(4)
	require.NoError(t, err)

	buf[0] = 9
	assert.Equal(t, byte(9), b[0], "readBytes returns a view, not a copy")
}
