package icns

import "fmt"

// frame reads one element header at the cursor position and returns an
// element stub whose Data is a bounded view over the body. The declared
// total length includes the header; a length below headerSize violates the
// format and a length past the enclosing scope surfaces as truncation from
// the body sub-cursor.
func frame(c *cursor) (*Element, error) {
	off := c.offset()

	rawTag, err := c.readBytes(4)
	if err != nil {
		return nil, err
	}
	var tag Tag
	copy(tag[:], rawTag)

	length, err := c.readUint32()
	if err != nil {
		return nil, err
	}
	if length < headerSize {
		return nil, fmt.Errorf("%w: element %s at offset %d declares length %d", ErrMalformedHeader, tag, off, length)
	}

	body, err := c.sub(int(length) - headerSize)
	if err != nil {
		return nil, fmt.Errorf("element %s at offset %d: %w", tag, off, err)
	}

	return &Element{
		Tag:    tag,
		Length: length,
		Offset: off,
		Data:   body.data,
	}, nil
}
