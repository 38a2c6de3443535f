package icns

import (
	"fmt"
	"io"
	"math"
	"os"
)

// mainFamilyTag is the magic of the container and of its root element.
var mainFamilyTag = MakeTag("icns")

// Container is a fully parsed ICNS file. The element tree is immutable
// after Parse returns and is safe for concurrent read-only use, including
// materializing several icons in parallel.
type Container struct {
	// Root is the implicit top-level family wrapping the whole file.
	Root *Element

	data []byte
}

// Parse decodes an ICNS container from an in-memory buffer in one linear
// pass. The buffer must start with the "icns" magic and a big-endian total
// length equal to the buffer length; the element tree shares the buffer,
// which must not be mutated afterwards.
//
// Structural failures (truncation, malformed headers) abort the parse.
// Per-element codec failures do not: the affected element stays in the tree
// with its Err field set and a nil payload.
func Parse(data []byte) (*Container, error) {
	root, err := frame(newCursor(data))
	if err != nil {
		return nil, err
	}
	if root.Tag != mainFamilyTag {
		return nil, fmt.Errorf("%w: root element tagged %s, want icns", ErrMalformedHeader, root.Tag)
	}
	if int(root.Length) != len(data) {
		return nil, fmt.Errorf("%w: container declares %d bytes, file has %d", ErrMalformedHeader, root.Length, len(data))
	}
	if err := build(root); err != nil {
		return nil, err
	}
	return &Container{Root: root, data: data}, nil
}

// ParseReader reads a whole stream into memory and parses it.
func ParseReader(r io.Reader) (*Container, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read the icon container: %w", err)
	}
	return Parse(data)
}

// ParseFile parses the ICNS file stored at the given path.
func ParseFile(path string) (*Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open the icon container: %w", err)
	}
	return Parse(data)
}

// Elements returns the container's top-level elements in document order.
func (c *Container) Elements() []*Element {
	return c.Root.Children
}

// Find collects every element carrying the exact tag, nested families
// included, in document order. Duplicate tags are legal and all occurrences
// are returned.
func (c *Container) Find(tag Tag) []*Element {
	var out []*Element
	for _, top := range c.Root.Children {
		top.walk(func(e *Element) {
			if e.Tag == tag {
				out = append(out, e)
			}
		})
	}
	return out
}

// build resolves an element against the registry and decodes its body.
// Families recurse; their structural errors bubble up and abort the parse,
// except for trailing bytes too short to frame, which flag the family and
// keep its parsed children.
func build(e *Element) error {
	e.Info, _ = LookupType(e.Tag)

	switch e.Info.Role {
	case RoleFamily:
		c := &cursor{data: e.Data, base: e.Offset + headerSize}
		for c.remaining() > 0 {
			if c.remaining() < headerSize {
				e.Err = fmt.Errorf("%w: %d trailing bytes in %s family", ErrIncompleteContainer, c.remaining(), e.Tag)
				break
			}
			child, err := frame(c)
			if err != nil {
				return err
			}
			if err := build(child); err != nil {
				return err
			}
			e.Children = append(e.Children, child)
		}
	case RoleImage, RoleMask:
		e.Payload, e.Err = decodeImagePayload(e)
	case RoleMetadata:
		e.Payload, e.Err = decodeMetadataPayload(e)
	}
	// Unknown role: body kept verbatim in Data, nothing to decode.
	return nil
}

// decodeImagePayload dispatches an image or mask body to its codec based on
// the registry descriptor.
func decodeImagePayload(e *Element) (Payload, error) {
	w, h := e.Info.PixelWidth(), e.Info.PixelHeight()
	switch e.Info.Format {
	case Format1BitWithMask:
		return decodeIcon1Bit(e.Data, w, h)
	case Format4Bit:
		return decodeIcon4Bit(e.Data, w, h)
	case Format8Bit:
		return decodeIcon8Bit(e.Data, w, h)
	case Format8BitMask:
		return decodeMask8Bit(e.Data, w, h)
	case FormatRGB:
		return decodeRGB(e.Data, w, h, e.Info.ZeroPrefix)
	case FormatARGB:
		return decodeARGB(e.Data, w, h)
	case FormatPNGJP2:
		return &ImageDataPayload{
			PointWidth:  e.Info.PointWidth,
			PointHeight: e.Info.PointHeight,
			Scale:       e.Info.Scale,
			Data:        e.Data,
		}, nil
	default:
		return nil, fmt.Errorf("%w: no codec for %s", ErrUnsupportedFormat, e.Tag)
	}
}

// decodeMetadataPayload parses the known metadata elements. The info
// dictionary stays opaque by design.
func decodeMetadataPayload(e *Element) (Payload, error) {
	switch e.Tag {
	case MakeTag("TOC "):
		return decodeTOC(e.Data)
	case MakeTag("icnV"):
		if len(e.Data) != 4 {
			return nil, fmt.Errorf("%w: icnV wants 4 bytes, body has %d", ErrSizeMismatch, len(e.Data))
		}
		bits, _ := newCursor(e.Data).readUint32()
		return &VersionPayload{Version: math.Float32frombits(bits)}, nil
	default:
		return &InfoPayload{Data: e.Data}, nil
	}
}

// decodeTOC parses a table of contents: a flat run of element headers.
func decodeTOC(data []byte) (*TOCPayload, error) {
	if len(data)%headerSize != 0 {
		return nil, fmt.Errorf("%w: table of contents of %d bytes is not a whole number of headers", ErrSizeMismatch, len(data))
	}
	c := newCursor(data)
	toc := &TOCPayload{Entries: make([]TOCEntry, 0, len(data)/headerSize)}
	for c.remaining() > 0 {
		raw, _ := c.readBytes(4)
		var tag Tag
		copy(tag[:], raw)
		length, _ := c.readUint32()
		toc.Entries = append(toc.Entries, TOCEntry{Tag: tag, Length: length})
	}
	return toc, nil
}
