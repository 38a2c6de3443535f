package icns

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackBitsRepeatRun(t *testing.T) {
	// 0x83 repeats the next byte 0x83 - 125 = 6 times.
	got, err := decodePackBits(newCursor([]byte{0x83, 0xff}), 6)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0xff}, 6), got)
}

func TestPackBitsLiteral(t *testing.T) {
	got, err := decodePackBits(newCursor([]byte{0x02, 'a', 'b', 'c'}), 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestPackBitsMixed(t *testing.T) {
	// One literal byte, a minimal 3-byte run, two literal bytes.
	in := []byte{0x00, 0x11, 0x80, 0x22, 0x01, 0x33, 0x44}
	got, err := decodePackBits(newCursor(in), 6)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x11, 0x22, 0x22, 0x22, 0x33, 0x44}, got)
}

func TestPackBitsOverrun(t *testing.T) {
	// A 6-byte run does not fit in a 4-byte plane.
	_, err := decodePackBits(newCursor([]byte{0x83, 0xff}), 4)
	assert.ErrorIs(t, err, ErrRLEOverrun)

	// Same for an overshooting literal.
	_, err = decodePackBits(newCursor([]byte{0x03, 1, 2, 3, 4}), 2)
	assert.ErrorIs(t, err, ErrRLEOverrun)
}

func TestPackBitsUnderrun(t *testing.T) {
	// Stream ends before the plane is full.
	_, err := decodePackBits(newCursor([]byte{0x83}), 6)
	assert.ErrorIs(t, err, ErrRLEUnderrun)

	_, err = decodePackBits(newCursor(nil), 1)
	assert.ErrorIs(t, err, ErrRLEUnderrun)

	// Literal control promising more bytes than the stream holds.
	_, err = decodePackBits(newCursor([]byte{0x05, 1, 2}), 6)
	assert.ErrorIs(t, err, ErrRLEUnderrun)
}

func TestPackBitsConsecutivePlanes(t *testing.T) {
	// Channel planes are decoded back to back from one stream.
	in := append(rleRuns(0x10, 4), rleRuns(0x20, 4)...)
	planes, err := decodeChannels(newCursor(in), 4, 2)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0x10}, 4), planes[0])
	assert.Equal(t, bytes.Repeat([]byte{0x20}, 4), planes[1])
}

func TestDecodeRGB(t *testing.T) {
	var body []byte
	body = append(body, rleRuns(0xaa, 16)...)
	body = append(body, rleRuns(0xbb, 16)...)
	body = append(body, rleRuns(0xcc, 16)...)

	p, err := decodeRGB(body, 4, 4, false)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Width)
	assert.Equal(t, bytes.Repeat([]byte{0xaa}, 16), p.RGB[0])
	assert.Equal(t, bytes.Repeat([]byte{0xbb}, 16), p.RGB[1])
	assert.Equal(t, bytes.Repeat([]byte{0xcc}, 16), p.RGB[2])
}

func TestDecodeRGBTrailingBytes(t *testing.T) {
	// Historical encoders pad the stream; trailing bytes are tolerated.
	var body []byte
	for i := 0; i < 3; i++ {
		body = append(body, rleRuns(0x55, 16)...)
	}
	body = append(body, 0xde, 0xad)

	_, err := decodeRGB(body, 4, 4, false)
	assert.NoError(t, err)
}

func TestDecodeRGBZeroPrefix(t *testing.T) {
	var channels []byte
	for i := 0; i < 3; i++ {
		channels = append(channels, rleRuns(0x55, 16)...)
	}

	// Without the four-zero prefix the compressed data is misread.
	_, err := decodeRGB(channels, 4, 4, true)
	assert.Error(t, err)

	body := append([]byte{0, 0, 0, 0}, channels...)
	p, err := decodeRGB(body, 4, 4, true)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0x55}, 16), p.RGB[0])

	bad := append([]byte{0, 0, 0, 1}, channels...)
	_, err = decodeRGB(bad, 4, 4, true)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestDecodeARGB(t *testing.T) {
	body := []byte("ARGB")
	for _, v := range []byte{0x80, 0x11, 0x22, 0x33} {
		body = append(body, rleRuns(v, 16)...)
	}

	p, err := decodeARGB(body, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0x80}, 16), p.ARGB[0])
	assert.Equal(t, bytes.Repeat([]byte{0x33}, 16), p.ARGB[3])

	_, err = decodeARGB(body[4:], 4, 4)
	assert.ErrorIs(t, err, ErrSizeMismatch, "missing signature")

	_, err = decodeARGB([]byte("AR"), 4, 4)
	assert.ErrorIs(t, err, ErrSizeMismatch, "body shorter than the signature")
}

// rleRuns compresses n copies of v: repeat runs of up to 130 bytes, with a
// literal for a 1 or 2 byte remainder (repeat runs encode 3 at minimum).
func rleRuns(v byte, n int) []byte {
	var out []byte
	for n >= 3 {
		run := n
		if run > 130 {
			run = 130
		}
		out = append(out, byte(run+125), v)
		n -= run
	}
	if n > 0 {
		out = append(out, byte(n-1))
		for i := 0; i < n; i++ {
			out = append(out, v)
		}
	}
	return out
}
