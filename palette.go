package icns

import "image/color"

// Fixed historical palettes for the classic Mac OS indexed bitmap formats.
// These are constants of the platform, not derived from the file.

// palette1 maps the 1-bit monochrome format: 0 is white, 1 is black.
var palette1 = [2]color.NRGBA{
	{0xff, 0xff, 0xff, 0xff},
	{0x00, 0x00, 0x00, 0xff},
}

// palette4 is the Mac OS default 16-color palette.
var palette4 = [16]color.NRGBA{
	{0xff, 0xff, 0xff, 0xff}, // white
	{0xfc, 0xf3, 0x05, 0xff}, // yellow
	{0xff, 0x64, 0x02, 0xff}, // orange
	{0xdd, 0x08, 0x06, 0xff}, // red
	{0xf2, 0x08, 0x84, 0xff}, // magenta
	{0x46, 0x00, 0xa5, 0xff}, // purple
	{0x00, 0x00, 0xd4, 0xff}, // blue
	{0x02, 0xab, 0xea, 0xff}, // cyan
	{0x1f, 0xb7, 0x14, 0xff}, // green
	{0x00, 0x64, 0x11, 0xff}, // dark green
	{0x56, 0x2c, 0x05, 0xff}, // brown
	{0x90, 0x71, 0x3a, 0xff}, // tan
	{0xc0, 0xc0, 0xc0, 0xff}, // light gray
	{0x80, 0x80, 0x80, 0xff}, // medium gray
	{0x40, 0x40, 0x40, 0xff}, // dark gray
	{0x00, 0x00, 0x00, 0xff}, // black
}

// palette8 is the Mac OS default 256-color system palette: a 6x6x6 color
// cube starting at white, followed by red, green, blue and gray ramps, with
// black last.
var palette8 = [256]color.NRGBA{
	{0xff, 0xff, 0xff, 0xff}, {0xff, 0xff, 0xcc, 0xff}, {0xff, 0xff, 0x99, 0xff}, {0xff, 0xff, 0x66, 0xff},
	{0xff, 0xff, 0x33, 0xff}, {0xff, 0xff, 0x00, 0xff}, {0xff, 0xcc, 0xff, 0xff}, {0xff, 0xcc, 0xcc, 0xff},
	{0xff, 0xcc, 0x99, 0xff}, {0xff, 0xcc, 0x66, 0xff}, {0xff, 0xcc, 0x33, 0xff}, {0xff, 0xcc, 0x00, 0xff},
	{0xff, 0x99, 0xff, 0xff}, {0xff, 0x99, 0xcc, 0xff}, {0xff, 0x99, 0x99, 0xff}, {0xff, 0x99, 0x66, 0xff},
	{0xff, 0x99, 0x33, 0xff}, {0xff, 0x99, 0x00, 0xff}, {0xff, 0x66, 0xff, 0xff}, {0xff, 0x66, 0xcc, 0xff},
	{0xff, 0x66, 0x99, 0xff}, {0xff, 0x66, 0x66, 0xff}, {0xff, 0x66, 0x33, 0xff}, {0xff, 0x66, 0x00, 0xff},
	{0xff, 0x33, 0xff, 0xff}, {0xff, 0x33, 0xcc, 0xff}, {0xff, 0x33, 0x99, 0xff}, {0xff, 0x33, 0x66, 0xff},
	{0xff, 0x33, 0x33, 0xff}, {0xff, 0x33, 0x00, 0xff}, {0xff, 0x00, 0xff, 0xff}, {0xff, 0x00, 0xcc, 0xff},
	{0xff, 0x00, 0x99, 0xff}, {0xff, 0x00, 0x66, 0xff}, {0xff, 0x00, 0x33, 0xff}, {0xff, 0x00, 0x00, 0xff},
	{0xcc, 0xff, 0xff, 0xff}, {0xcc, 0xff, 0xcc, 0xff}, {0xcc, 0xff, 0x99, 0xff}, {0xcc, 0xff, 0x66, 0xff},
	{0xcc, 0xff, 0x33, 0xff}, {0xcc, 0xff, 0x00, 0xff}, {0xcc, 0xcc, 0xff, 0xff}, {0xcc, 0xcc, 0xcc, 0xff},
	{0xcc, 0xcc, 0x99, 0xff}, {0xcc, 0xcc, 0x66, 0xff}, {0xcc, 0xcc, 0x33, 0xff}, {0xcc, 0xcc, 0x00, 0xff},
	{0xcc, 0x99, 0xff, 0xff}, {0xcc, 0x99, 0xcc, 0xff}, {0xcc, 0x99, 0x99, 0xff}, {0xcc, 0x99, 0x66, 0xff},
	{0xcc, 0x99, 0x33, 0xff}, {0xcc, 0x99, 0x00, 0xff}, {0xcc, 0x66, 0xff, 0xff}, {0xcc, 0x66, 0xcc, 0xff},
	{0xcc, 0x66, 0x99, 0xff}, {0xcc, 0x66, 0x66, 0xff}, {0xcc, 0x66, 0x33, 0xff}, {0xcc, 0x66, 0x00, 0xff},
	{0xcc, 0x33, 0xff, 0xff}, {0xcc, 0x33, 0xcc, 0xff}, {0xcc, 0x33, 0x99, 0xff}, {0xcc, 0x33, 0x66, 0xff},
	{0xcc, 0x33, 0x33, 0xff}, {0xcc, 0x33, 0x00, 0xff}, {0xcc, 0x00, 0xff, 0xff}, {0xcc, 0x00, 0xcc, 0xff},
	{0xcc, 0x00, 0x99, 0xff}, {0xcc, 0x00, 0x66, 0xff}, {0xcc, 0x00, 0x33, 0xff}, {0xcc, 0x00, 0x00, 0xff},
	{0x99, 0xff, 0xff, 0xff}, {0x99, 0xff, 0xcc, 0xff}, {0x99, 0xff, 0x99, 0xff}, {0x99, 0xff, 0x66, 0xff},
	{0x99, 0xff, 0x33, 0xff}, {0x99, 0xff, 0x00, 0xff}, {0x99, 0xcc, 0xff, 0xff}, {0x99, 0xcc, 0xcc, 0xff},
	{0x99, 0xcc, 0x99, 0xff}, {0x99, 0xcc, 0x66, 0xff}, {0x99, 0xcc, 0x33, 0xff}, {0x99, 0xcc, 0x00, 0xff},
	{0x99, 0x99, 0xff, 0xff}, {0x99, 0x99, 0xcc, 0xff}, {0x99, 0x99, 0x99, 0xff}, {0x99, 0x99, 0x66, 0xff},
	{0x99, 0x99, 0x33, 0xff}, {0x99, 0x99, 0x00, 0xff}, {0x99, 0x66, 0xff, 0xff}, {0x99, 0x66, 0xcc, 0xff},
	{0x99, 0x66, 0x99, 0xff}, {0x99, 0x66, 0x66, 0xff}, {0x99, 0x66, 0x33, 0xff}, {0x99, 0x66, 0x00, 0xff},
	{0x99, 0x33, 0xff, 0xff}, {0x99, 0x33, 0xcc, 0xff}, {0x99, 0x33, 0x99, 0xff}, {0x99, 0x33, 0x66, 0xff},
	{0x99, 0x33, 0x33, 0xff}, {0x99, 0x33, 0x00, 0xff}, {0x99, 0x00, 0xff, 0xff}, {0x99, 0x00, 0xcc, 0xff},
	{0x99, 0x00, 0x99, 0xff}, {0x99, 0x00, 0x66, 0xff}, {0x99, 0x00, 0x33, 0xff}, {0x99, 0x00, 0x00, 0xff},
	{0x66, 0xff, 0xff, 0xff}, {0x66, 0xff, 0xcc, 0xff}, {0x66, 0xff, 0x99, 0xff}, {0x66, 0xff, 0x66, 0xff},
	{0x66, 0xff, 0x33, 0xff}, {0x66, 0xff, 0x00, 0xff}, {0x66, 0xcc, 0xff, 0xff}, {0x66, 0xcc, 0xcc, 0xff},
	{0x66, 0xcc, 0x99, 0xff}, {0x66, 0xcc, 0x66, 0xff}, {0x66, 0xcc, 0x33, 0xff}, {0x66, 0xcc, 0x00, 0xff},
	{0x66, 0x99, 0xff, 0xff}, {0x66, 0x99, 0xcc, 0xff}, {0x66, 0x99, 0x99, 0xff}, {0x66, 0x99, 0x66, 0xff},
	{0x66, 0x99, 0x33, 0xff}, {0x66, 0x99, 0x00, 0xff}, {0x66, 0x66, 0xff, 0xff}, {0x66, 0x66, 0xcc, 0xff},
	{0x66, 0x66, 0x99, 0xff}, {0x66, 0x66, 0x66, 0xff}, {0x66, 0x66, 0x33, 0xff}, {0x66, 0x66, 0x00, 0xff},
	{0x66, 0x33, 0xff, 0xff}, {0x66, 0x33, 0xcc, 0xff}, {0x66, 0x33, 0x99, 0xff}, {0x66, 0x33, 0x66, 0xff},
	{0x66, 0x33, 0x33, 0xff}, {0x66, 0x33, 0x00, 0xff}, {0x66, 0x00, 0xff, 0xff}, {0x66, 0x00, 0xcc, 0xff},
	{0x66, 0x00, 0x99, 0xff}, {0x66, 0x00, 0x66, 0xff}, {0x66, 0x00, 0x33, 0xff}, {0x66, 0x00, 0x00, 0xff},
	{0x33, 0xff, 0xff, 0xff}, {0x33, 0xff, 0xcc, 0xff}, {0x33, 0xff, 0x99, 0xff}, {0x33, 0xff, 0x66, 0xff},
	{0x33, 0xff, 0x33, 0xff}, {0x33, 0xff, 0x00, 0xff}, {0x33, 0xcc, 0xff, 0xff}, {0x33, 0xcc, 0xcc, 0xff},
	{0x33, 0xcc, 0x99, 0xff}, {0x33, 0xcc, 0x66, 0xff}, {0x33, 0xcc, 0x33, 0xff}, {0x33, 0xcc, 0x00, 0xff},
	{0x33, 0x99, 0xff, 0xff}, {0x33, 0x99, 0xcc, 0xff}, {0x33, 0x99, 0x99, 0xff}, {0x33, 0x99, 0x66, 0xff},
	{0x33, 0x99, 0x33, 0xff}, {0x33, 0x99, 0x00, 0xff}, {0x33, 0x66, 0xff, 0xff}, {0x33, 0x66, 0xcc, 0xff},
	{0x33, 0x66, 0x99, 0xff}, {0x33, 0x66, 0x66, 0xff}, {0x33, 0x66, 0x33, 0xff}, {0x33, 0x66, 0x00, 0xff},
	{0x33, 0x33, 0xff, 0xff}, {0x33, 0x33, 0xcc, 0xff}, {0x33, 0x33, 0x99, 0xff}, {0x33, 0x33, 0x66, 0xff},
	{0x33, 0x33, 0x33, 0xff}, {0x33, 0x33, 0x00, 0xff}, {0x33, 0x00, 0xff, 0xff}, {0x33, 0x00, 0xcc, 0xff},
	{0x33, 0x00, 0x99, 0xff}, {0x33, 0x00, 0x66, 0xff}, {0x33, 0x00, 0x33, 0xff}, {0x33, 0x00, 0x00, 0xff},
	{0x00, 0xff, 0xff, 0xff}, {0x00, 0xff, 0xcc, 0xff}, {0x00, 0xff, 0x99, 0xff}, {0x00, 0xff, 0x66, 0xff},
	{0x00, 0xff, 0x33, 0xff}, {0x00, 0xff, 0x00, 0xff}, {0x00, 0xcc, 0xff, 0xff}, {0x00, 0xcc, 0xcc, 0xff},
	{0x00, 0xcc, 0x99, 0xff}, {0x00, 0xcc, 0x66, 0xff}, {0x00, 0xcc, 0x33, 0xff}, {0x00, 0xcc, 0x00, 0xff},
	{0x00, 0x99, 0xff, 0xff}, {0x00, 0x99, 0xcc, 0xff}, {0x00, 0x99, 0x99, 0xff}, {0x00, 0x99, 0x66, 0xff},
	{0x00, 0x99, 0x33, 0xff}, {0x00, 0x99, 0x00, 0xff}, {0x00, 0x66, 0xff, 0xff}, {0x00, 0x66, 0xcc, 0xff},
	{0x00, 0x66, 0x99, 0xff}, {0x00, 0x66, 0x66, 0xff}, {0x00, 0x66, 0x33, 0xff}, {0x00, 0x66, 0x00, 0xff},
	{0x00, 0x33, 0xff, 0xff}, {0x00, 0x33, 0xcc, 0xff}, {0x00, 0x33, 0x99, 0xff}, {0x00, 0x33, 0x66, 0xff},
	{0x00, 0x33, 0x33, 0xff}, {0x00, 0x33, 0x00, 0xff}, {0x00, 0x00, 0xff, 0xff}, {0x00, 0x00, 0xcc, 0xff},
	{0x00, 0x00, 0x99, 0xff}, {0x00, 0x00, 0x66, 0xff}, {0x00, 0x00, 0x33, 0xff}, {0xee, 0x00, 0x00, 0xff},
	{0xdd, 0x00, 0x00, 0xff}, {0xbb, 0x00, 0x00, 0xff}, {0xaa, 0x00, 0x00, 0xff}, {0x88, 0x00, 0x00, 0xff},
	{0x77, 0x00, 0x00, 0xff}, {0x55, 0x00, 0x00, 0xff}, {0x44, 0x00, 0x00, 0xff}, {0x22, 0x00, 0x00, 0xff},
	{0x11, 0x00, 0x00, 0xff}, {0x00, 0xee, 0x00, 0xff}, {0x00, 0xdd, 0x00, 0xff}, {0x00, 0xbb, 0x00, 0xff},
	{0x00, 0xaa, 0x00, 0xff}, {0x00, 0x88, 0x00, 0xff}, {0x00, 0x77, 0x00, 0xff}, {0x00, 0x55, 0x00, 0xff},
	{0x00, 0x44, 0x00, 0xff}, {0x00, 0x22, 0x00, 0xff}, {0x00, 0x11, 0x00, 0xff}, {0x00, 0x00, 0xee, 0xff},
	{0x00, 0x00, 0xdd, 0xff}, {0x00, 0x00, 0xbb, 0xff}, {0x00, 0x00, 0xaa, 0xff}, {0x00, 0x00, 0x88, 0xff},
	{0x00, 0x00, 0x77, 0xff}, {0x00, 0x00, 0x55, 0xff}, {0x00, 0x00, 0x44, 0xff}, {0x00, 0x00, 0x22, 0xff},
	{0x00, 0x00, 0x11, 0xff}, {0xee, 0xee, 0xee, 0xff}, {0xdd, 0xdd, 0xdd, 0xff}, {0xbb, 0xbb, 0xbb, 0xff},
	{0xaa, 0xaa, 0xaa, 0xff}, {0x88, 0x88, 0x88, 0xff}, {0x77, 0x77, 0x77, 0xff}, {0x55, 0x55, 0x55, 0xff},
	{0x44, 0x44, 0x44, 0xff}, {0x22, 0x22, 0x22, 0xff}, {0x11, 0x11, 0x11, 0xff}, {0x00, 0x00, 0x00, 0xff},
}
