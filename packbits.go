package icns

import "fmt"

// decodePackBits decompresses the ICNS variant of PackBits into exactly n
// bytes. A control byte of 0x80 or above repeats the following byte
// (control - 125) times; below 0x80 it is followed by (control + 1) literal
// bytes. Runs never cross the n-byte boundary: an overshooting run is an
// overrun, a stream that ends early is an underrun. The cursor is left
// positioned after the consumed input, so channel planes can be decoded
// back to back from one stream.
func decodePackBits(c *cursor, n int) ([]byte, error) {
	out := make([]byte, 0, n)
	for len(out) < n {
		control, err := c.readByte()
		if err != nil {
			return nil, fmt.Errorf("%w: %d of %d bytes decoded", ErrRLEUnderrun, len(out), n)
		}
		if control >= 0x80 {
			run := int(control) - 125
			if len(out)+run > n {
				return nil, fmt.Errorf("%w: run of %d at output %d of %d", ErrRLEOverrun, run, len(out), n)
			}
			b, err := c.readByte()
			if err != nil {
				return nil, fmt.Errorf("%w: %d of %d bytes decoded", ErrRLEUnderrun, len(out), n)
			}
			for i := 0; i < run; i++ {
				out = append(out, b)
			}
		} else {
			lit := int(control) + 1
			if len(out)+lit > n {
				return nil, fmt.Errorf("%w: literal of %d at output %d of %d", ErrRLEOverrun, lit, len(out), n)
			}
			b, err := c.readBytes(lit)
			if err != nil {
				return nil, fmt.Errorf("%w: %d of %d bytes decoded", ErrRLEUnderrun, len(out), n)
			}
			out = append(out, b...)
		}
	}
	return out, nil
}

// decodeChannels decodes count consecutive run-length-coded channel planes
// of n pixels each. Trailing bytes after the last channel are tolerated;
// some historical encoders pad the stream.
func decodeChannels(c *cursor, n, count int) ([][]byte, error) {
	planes := make([][]byte, count)
	for i := range planes {
		plane, err := decodePackBits(c, n)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", i, err)
		}
		planes[i] = plane
	}
	return planes, nil
}

// decodeRGB decodes a 24-bit icon body: three packed channel planes in
// R, G, B order. When zeroPrefix is set (it32) the body starts with four
// zero bytes before the compressed data.
func decodeRGB(data []byte, w, h int, zeroPrefix bool) (*RGBPayload, error) {
	c := newCursor(data)
	if zeroPrefix {
		prefix, err := c.readBytes(4)
		if err != nil {
			return nil, fmt.Errorf("%w: body shorter than zero prefix", ErrSizeMismatch)
		}
		for _, b := range prefix {
			if b != 0 {
				return nil, fmt.Errorf("%w: nonzero it32 prefix % x", ErrSizeMismatch, prefix)
			}
		}
	}
	planes, err := decodeChannels(c, w*h, 3)
	if err != nil {
		return nil, err
	}
	p := &RGBPayload{Width: w, Height: h}
	copy(p.RGB[:], planes)
	return p, nil
}

// decodeARGB decodes a 32-bit icon body: a literal "ARGB" signature
// followed by four packed channel planes in A, R, G, B order.
func decodeARGB(data []byte, w, h int) (*ARGBPayload, error) {
	c := newCursor(data)
	sig, err := c.readBytes(4)
	if err != nil {
		return nil, fmt.Errorf("%w: body shorter than ARGB signature", ErrSizeMismatch)
	}
	if string(sig) != "ARGB" {
		return nil, fmt.Errorf("%w: missing ARGB signature", ErrSizeMismatch)
	}
	planes, err := decodeChannels(c, w*h, 4)
	if err != nil {
		return nil, err
	}
	p := &ARGBPayload{Width: w, Height: h}
	copy(p.ARGB[:], planes)
	return p, nil
}
