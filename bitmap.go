package icns

import "fmt"

// Legacy uncompressed bitmap planes. Rows are byte-aligned top to bottom,
// bits packed MSB first for the sub-byte depths. All sizes are dictated by
// the registry; a body that is not exactly the expected plane size is a
// size mismatch, fatal to the element but not to the container.

// expandBits1 unpacks MSB-first 1-bit pixels into one byte per pixel,
// scaled to the given on value (1 for palette indices, 255 for alpha).
func expandBits1(data []byte, n int, on byte) []byte {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		if data[i/8]&(0x80>>(i%8)) != 0 {
			out[i] = on
		}
	}
	return out
}

// decodeIcon1Bit decodes a monochrome icon element: a 1-bit icon plane
// immediately followed by a 1-bit mask plane, w*h/8 bytes each.
func decodeIcon1Bit(data []byte, w, h int) (*BitmapPayload, error) {
	plane := w * h / 8
	if len(data) != 2*plane {
		return nil, fmt.Errorf("%w: 1-bit %dx%d icon wants %d bytes, body has %d", ErrSizeMismatch, w, h, 2*plane, len(data))
	}
	return &BitmapPayload{
		Depth:  1,
		Width:  w,
		Height: h,
		Index:  expandBits1(data[:plane], w*h, 1),
		Alpha:  expandBits1(data[plane:], w*h, 0xff),
	}, nil
}

// decodeIcon4Bit decodes a 4-bit indexed plane, high nibble first.
func decodeIcon4Bit(data []byte, w, h int) (*BitmapPayload, error) {
	if len(data) != w*h/2 {
		return nil, fmt.Errorf("%w: 4-bit %dx%d icon wants %d bytes, body has %d", ErrSizeMismatch, w, h, w*h/2, len(data))
	}
	index := make([]byte, w*h)
	for i, b := range data {
		index[2*i] = b >> 4
		index[2*i+1] = b & 0x0f
	}
	return &BitmapPayload{Depth: 4, Width: w, Height: h, Index: index}, nil
}

// decodeIcon8Bit decodes an 8-bit indexed plane, one byte per pixel.
func decodeIcon8Bit(data []byte, w, h int) (*BitmapPayload, error) {
	if len(data) != w*h {
		return nil, fmt.Errorf("%w: 8-bit %dx%d icon wants %d bytes, body has %d", ErrSizeMismatch, w, h, w*h, len(data))
	}
	index := make([]byte, len(data))
	copy(index, data)
	return &BitmapPayload{Depth: 8, Width: w, Height: h, Index: index}, nil
}

// decodeMask8Bit decodes an 8-bit alpha plane, one byte per pixel.
func decodeMask8Bit(data []byte, w, h int) (*MaskPayload, error) {
	if len(data) != w*h {
		return nil, fmt.Errorf("%w: 8-bit %dx%d mask wants %d bytes, body has %d", ErrSizeMismatch, w, h, w*h, len(data))
	}
	alpha := make([]byte, len(data))
	copy(alpha, data)
	return &MaskPayload{Width: w, Height: h, Alpha: alpha}, nil
}
