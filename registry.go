package icns

import (
	"fmt"
	"strconv"
)

// Tag is the four-byte type code identifying an element. Type codes are
// conventionally ASCII but are not required to be printable (the dark mode
// family tag is not).
type Tag [4]byte

// MakeTag builds a Tag from a four-character string.
func MakeTag(s string) Tag {
	if len(s) != 4 {
		panic("icns: tag must be exactly 4 bytes: " + strconv.Quote(s))
	}
	var t Tag
	copy(t[:], s)
	return t
}

// String renders the tag with non-printable bytes hex-escaped.
func (t Tag) String() string {
	out := make([]byte, 0, 16)
	for _, b := range t {
		if b >= 0x20 && b < 0x7f {
			out = append(out, b)
		} else {
			out = append(out, fmt.Sprintf("\\x%02x", b)...)
		}
	}
	return string(out)
}

// Role classifies what an element's body holds.
type Role int

const (
	RoleUnknown Role = iota
	RoleImage
	RoleMask
	RoleFamily
	RoleMetadata
)

func (r Role) String() string {
	switch r {
	case RoleImage:
		return "image"
	case RoleMask:
		return "mask"
	case RoleFamily:
		return "family"
	case RoleMetadata:
		return "metadata"
	default:
		return "unknown"
	}
}

// Format selects the payload codec for image and mask elements.
type Format int

const (
	FormatNone Format = iota
	Format1BitWithMask
	Format4Bit
	Format8Bit
	FormatRGB
	Format8BitMask
	FormatARGB
	FormatPNGJP2
)

func (f Format) String() string {
	switch f {
	case Format1BitWithMask:
		return "1-bit monochrome icon and 1-bit mask"
	case Format4Bit:
		return "4-bit indexed color icon"
	case Format8Bit:
		return "8-bit indexed color icon"
	case FormatRGB:
		return "24-bit RGB icon"
	case Format8BitMask:
		return "8-bit mask"
	case FormatARGB:
		return "32-bit ARGB icon"
	case FormatPNGJP2:
		return "PNG or JPEG 2000 icon"
	default:
		return "raw data"
	}
}

// TypeInfo describes a registered element type: its semantic role, the
// payload codec and, for fixed-format images and masks, the resolution.
// Resolutions are stored in points plus a scale factor; HiDPI (@2x) types
// carry scale 2. The zero value stands for an unregistered type.
type TypeInfo struct {
	Role        Role
	Format      Format
	PointWidth  int
	PointHeight int
	Scale       int
	ZeroPrefix  bool // it32 only: body starts with four zero bytes
	Desc        string
}

// PixelWidth is the width in physical pixels (points times scale).
func (ti TypeInfo) PixelWidth() int { return ti.PointWidth * ti.Scale }

// PixelHeight is the height in physical pixels (points times scale).
func (ti TypeInfo) PixelHeight() int { return ti.PointHeight * ti.Scale }

// Describe returns a human-readable summary of the type.
func (ti TypeInfo) Describe() string {
	if ti.Desc != "" {
		return ti.Desc
	}
	switch ti.Role {
	case RoleImage, RoleMask:
		s := fmt.Sprintf("%s, %dx%d", ti.Format, ti.PixelWidth(), ti.PixelHeight())
		if ti.Scale > 1 {
			s += fmt.Sprintf(" (%dx%d@%dx)", ti.PointWidth, ti.PointHeight, ti.Scale)
		}
		return s
	default:
		return ti.Role.String()
	}
}

func family(desc string) TypeInfo {
	return TypeInfo{Role: RoleFamily, Desc: desc}
}

func icon(format Format, w, h, scale int) TypeInfo {
	role := RoleImage
	if format == Format8BitMask {
		role = RoleMask
	}
	return TypeInfo{Role: role, Format: format, PointWidth: w, PointHeight: h, Scale: scale}
}

// DarkModeTag is the (non-printable) type code of the dark mode variant
// family introduced in macOS 10.14.
var DarkModeTag = Tag{0xfd, 0xd9, 0x2f, 0xa8}

// typeRegistry maps every historically known element type, Mac OS 8.5
// through macOS 10.14. Lookup misses are not errors: unregistered tags
// classify as RoleUnknown and their bodies are kept verbatim.
var typeRegistry = map[Tag]TypeInfo{
	// Icon families.
	MakeTag("icns"): family("icon family"),
	MakeTag("tile"): family("tile variant family"),
	MakeTag("over"): family("rollover variant family"),
	MakeTag("drop"): family("drop variant family"),
	MakeTag("open"): family("open variant family"),
	MakeTag("odrp"): family("open drop variant family"),
	MakeTag("sbpp"): family("sbpp variant family"),
	MakeTag("sbtp"): family("sidebar variant family"),
	MakeTag("slct"): family("selected variant family"),
	DarkModeTag:     family("dark mode variant family"),

	// Metadata.
	MakeTag("TOC "): {Role: RoleMetadata, Desc: "table of contents"},
	MakeTag("icnV"): {Role: RoleMetadata, Desc: "Icon Composer version"},
	MakeTag("info"): {Role: RoleMetadata, Desc: "info dictionary"},

	// Classic bitmap icons, 16x12 ("mini").
	MakeTag("icm#"): icon(Format1BitWithMask, 16, 12, 1),
	MakeTag("icm4"): icon(Format4Bit, 16, 12, 1),
	MakeTag("icm8"): icon(Format8Bit, 16, 12, 1),

	// Classic bitmap icons, 16x16 ("small").
	MakeTag("ics#"): icon(Format1BitWithMask, 16, 16, 1),
	MakeTag("ics4"): icon(Format4Bit, 16, 16, 1),
	MakeTag("ics8"): icon(Format8Bit, 16, 16, 1),
	MakeTag("is32"): icon(FormatRGB, 16, 16, 1),
	MakeTag("s8mk"): icon(Format8BitMask, 16, 16, 1),

	// Classic bitmap icons, 32x32 ("large").
	MakeTag("ICN#"): icon(Format1BitWithMask, 32, 32, 1),
	MakeTag("icl4"): icon(Format4Bit, 32, 32, 1),
	MakeTag("icl8"): icon(Format8Bit, 32, 32, 1),
	MakeTag("il32"): icon(FormatRGB, 32, 32, 1),
	MakeTag("l8mk"): icon(Format8BitMask, 32, 32, 1),

	// Classic bitmap icons, 48x48 ("huge").
	MakeTag("ich#"): icon(Format1BitWithMask, 48, 48, 1),
	MakeTag("ich4"): icon(Format4Bit, 48, 48, 1),
	MakeTag("ich8"): icon(Format8Bit, 48, 48, 1),
	MakeTag("ih32"): icon(FormatRGB, 48, 48, 1),
	MakeTag("h8mk"): icon(Format8BitMask, 48, 48, 1),

	// Classic bitmap icons, 128x128 ("thumbnail"). The it32 body carries
	// four zero bytes before the compressed data.
	MakeTag("it32"): {Role: RoleImage, Format: FormatRGB, PointWidth: 128, PointHeight: 128, Scale: 1, ZeroPrefix: true},
	MakeTag("t8mk"): icon(Format8BitMask, 128, 128, 1),

	// ARGB bitmap icons.
	MakeTag("ic04"): icon(FormatARGB, 16, 16, 1),
	MakeTag("icsb"): icon(FormatARGB, 18, 18, 1),
	MakeTag("ic05"): icon(FormatARGB, 32, 32, 1),

	// PNG/JPEG 2000 icons, regular scale.
	MakeTag("icp4"): icon(FormatPNGJP2, 16, 16, 1),
	MakeTag("icp5"): icon(FormatPNGJP2, 32, 32, 1),
	MakeTag("icp6"): icon(FormatPNGJP2, 64, 64, 1),
	MakeTag("ic07"): icon(FormatPNGJP2, 128, 128, 1),
	MakeTag("ic08"): icon(FormatPNGJP2, 256, 256, 1),
	MakeTag("ic09"): icon(FormatPNGJP2, 512, 512, 1),

	// PNG/JPEG 2000 icons, HiDPI (@2x) scale.
	MakeTag("ic11"): icon(FormatPNGJP2, 16, 16, 2),
	MakeTag("icsB"): icon(FormatPNGJP2, 18, 18, 2),
	MakeTag("ic12"): icon(FormatPNGJP2, 32, 32, 2),
	MakeTag("ic13"): icon(FormatPNGJP2, 128, 128, 2),
	MakeTag("ic14"): icon(FormatPNGJP2, 256, 256, 2),
	MakeTag("ic10"): icon(FormatPNGJP2, 512, 512, 2),
}

// LookupType resolves a type code against the registry. A miss reports
// ok=false and a zero TypeInfo, never an error, so containers carrying
// undocumented element types stay readable.
func LookupType(tag Tag) (TypeInfo, bool) {
	ti, ok := typeRegistry[tag]
	return ti, ok
}
