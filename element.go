package icns

import "bytes"

// headerSize is the fixed element header: 4-byte tag + 4-byte total length.
const headerSize = 8

// Element is one tagged, length-prefixed chunk of the container. Elements
// are immutable once parsed. Data is a zero-copy view into the source
// buffer; Payload holds the decoded body for known image, mask and metadata
// types, and Children the nested elements of family types.
//
// A per-element codec failure is recorded in Err and leaves the element in
// the tree with a nil Payload; it never aborts sibling parsing.
type Element struct {
	Tag      Tag
	Length   uint32 // total element length, header included
	Offset   int    // header offset in the source buffer
	Data     []byte // body bytes, Length-8 of them
	Info     TypeInfo
	Children []*Element
	Payload  Payload
	Err      error
}

// Known reports whether the element's tag is present in the type registry.
func (e *Element) Known() bool {
	return e.Info.Role != RoleUnknown
}

// walk visits e and all nested elements in document order.
func (e *Element) walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		c.walk(fn)
	}
}

// MaskFor finds the mask element for the given resolution among the
// family's direct children: an 8-bit mask if present, otherwise the 1-bit
// mask embedded in a monochrome icon element, matching what Mac OS X does.
// It returns nil when the family holds no matching mask. The association is
// derived from the registry by tag convention, never stored in the tree.
func (e *Element) MaskFor(pointWidth, pointHeight, scale int) *Element {
	var monochrome *Element
	for _, c := range e.Children {
		ti := c.Info
		if ti.PointWidth != pointWidth || ti.PointHeight != pointHeight || ti.Scale != scale {
			continue
		}
		if c.Err != nil {
			continue
		}
		switch ti.Format {
		case Format8BitMask:
			return c
		case Format1BitWithMask:
			if monochrome == nil {
				monochrome = c
			}
		}
	}
	return monochrome
}

// Payload is the decoded body of an element. The concrete type depends on
// the element's registry entry: BitmapPayload, RGBPayload, ARGBPayload,
// MaskPayload, ImageDataPayload, TOCPayload, VersionPayload or InfoPayload.
type Payload interface {
	payloadNode()
}

// BitmapPayload holds an uncompressed indexed-color plane (1, 4 or 8 bits
// per pixel), expanded to one palette index per byte. Alpha carries the
// companion 1-bit mask of monochrome icons as 0/255 values; it is nil for
// the maskless 4-bit and 8-bit formats.
type BitmapPayload struct {
	Depth  int
	Width  int
	Height int
	Index  []byte
	Alpha  []byte
}

// MaskPayload holds an 8-bit alpha plane, one byte per pixel.
type MaskPayload struct {
	Width  int
	Height int
	Alpha  []byte
}

// RGBPayload holds the three decompressed channel planes of a 24-bit
// run-length-encoded icon, each Width*Height bytes.
type RGBPayload struct {
	Width  int
	Height int
	RGB    [3][]byte
}

// ARGBPayload holds the four decompressed channel planes of a 32-bit
// run-length-encoded icon, alpha first.
type ARGBPayload struct {
	Width  int
	Height int
	ARGB   [4][]byte
}

// ImageDataPayload holds a compressed PNG or JPEG 2000 stream verbatim.
// The registry resolution is the nominal one; the stream carries its own
// intrinsic dimensions.
type ImageDataPayload struct {
	PointWidth  int
	PointHeight int
	Scale       int
	Data        []byte
}

var (
	pngSignature = []byte("\x89PNG\r\n\x1a\n")
	jp2Signature = []byte("\x00\x00\x00\x0cjP  \r\n\x87\n")
)

// IsPNG reports whether the stream starts with the PNG signature.
func (p *ImageDataPayload) IsPNG() bool {
	return bytes.HasPrefix(p.Data, pngSignature)
}

// IsJPEG2000 reports whether the stream starts with the JPEG 2000 signature.
func (p *ImageDataPayload) IsJPEG2000() bool {
	return bytes.HasPrefix(p.Data, jp2Signature)
}

// Kind sniffs the compressed sub-format from the stream signature.
func (p *ImageDataPayload) Kind() Kind {
	switch {
	case p.IsPNG():
		return KindPNG
	case p.IsJPEG2000():
		return KindJPEG2000
	default:
		return KindUnknown
	}
}

// TOCEntry is one table-of-contents record: the header of an element
// elsewhere in the family.
type TOCEntry struct {
	Tag    Tag
	Length uint32
}

// TOCPayload is the parsed 'TOC ' element. The table is informational only;
// framing never relies on it.
type TOCPayload struct {
	Entries []TOCEntry
}

// VersionPayload is the parsed 'icnV' Icon Composer version element.
type VersionPayload struct {
	Version float32
}

// InfoPayload is the 'info' dictionary: an NSKeyedArchiver binary plist,
// exposed as raw bytes and never interpreted.
type InfoPayload struct {
	Data []byte
}

func (*BitmapPayload) payloadNode()    {}
func (*MaskPayload) payloadNode()      {}
func (*RGBPayload) payloadNode()       {}
func (*ARGBPayload) payloadNode()      {}
func (*ImageDataPayload) payloadNode() {}
func (*TOCPayload) payloadNode()       {}
func (*VersionPayload) payloadNode()   {}
func (*InfoPayload) payloadNode()      {}
