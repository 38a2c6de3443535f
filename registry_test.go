package icns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupType(t *testing.T) {
	tests := []struct {
		tag    string
		role   Role
		format Format
		px     int
	}{
		{"ICN#", RoleImage, Format1BitWithMask, 32},
		{"icl8", RoleImage, Format8Bit, 32},
		{"is32", RoleImage, FormatRGB, 16},
		{"it32", RoleImage, FormatRGB, 128},
		{"t8mk", RoleMask, Format8BitMask, 128},
		{"ic04", RoleImage, FormatARGB, 16},
		{"ic07", RoleImage, FormatPNGJP2, 128},
		{"ic10", RoleImage, FormatPNGJP2, 1024},
		{"slct", RoleFamily, FormatNone, 0},
		{"TOC ", RoleMetadata, FormatNone, 0},
	}
	for _, tc := range tests {
		t.Run(tc.tag, func(t *testing.T) {
			ti, ok := LookupType(MakeTag(tc.tag))
			assert.True(t, ok)
			assert.Equal(t, tc.role, ti.Role)
			assert.Equal(t, tc.format, ti.Format)
			assert.Equal(t, tc.px, ti.PixelWidth())
		})
	}
}

func TestLookupTypeUnknown(t *testing.T) {
	ti, ok := LookupType(MakeTag("zzzz"))
	assert.False(t, ok)
	assert.Equal(t, RoleUnknown, ti.Role)
}

func TestHiDPIResolution(t *testing.T) {
	ti, _ := LookupType(MakeTag("ic13"))
	assert.Equal(t, 128, ti.PointWidth)
	assert.Equal(t, 2, ti.Scale)
	assert.Equal(t, 256, ti.PixelWidth())
	assert.Equal(t, 256, ti.PixelHeight())
	assert.Equal(t, "PNG or JPEG 2000 icon, 256x256 (128x128@2x)", ti.Describe())
}

func TestIt32ZeroPrefix(t *testing.T) {
	ti, _ := LookupType(MakeTag("it32"))
	assert.True(t, ti.ZeroPrefix)

	ti, _ = LookupType(MakeTag("il32"))
	assert.False(t, ti.ZeroPrefix)
}

func TestDarkModeFamily(t *testing.T) {
	ti, ok := LookupType(DarkModeTag)
	assert.True(t, ok)
	assert.Equal(t, RoleFamily, ti.Role)
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "ICN#", MakeTag("ICN#").String())
	assert.Equal(t, `\xfd\xd9/\xa8`, DarkModeTag.String())
}

func TestMakeTagPanics(t *testing.T) {
	assert.Panics(t, func() { MakeTag("icn") })
	assert.Panics(t, func() { MakeTag("toolong") })
}
