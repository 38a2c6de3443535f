package icns

import (
	"fmt"
	"image"
	"image/color"
)

// Materialize produces an RGBA8 pixel buffer for an image or mask element.
//
// For the maskless legacy formats (4-bit, 8-bit, 24-bit RGB) the optional
// mask element supplies the alpha channel; without one the result is fully
// opaque. Formats carrying their own transparency (1-bit icons, ARGB,
// PNG/JPEG 2000) use it unless an explicit mask overrides it. Compressed
// payloads are delegated to dec; passing a nil Decoder selects StdDecoder.
//
// Each call allocates a fresh buffer and reads only immutable parsed state,
// so independent elements may be materialized concurrently.
func (e *Element) Materialize(mask *Element, dec Decoder) (*image.NRGBA, error) {
	if e.Err != nil {
		return nil, e.Err
	}

	switch p := e.Payload.(type) {
	case *BitmapPayload:
		alpha, err := maskAlpha(mask, p.Width, p.Height)
		if err != nil {
			return nil, err
		}
		if alpha == nil {
			alpha = p.Alpha
		}
		return indexedToNRGBA(p, alpha), nil

	case *MaskPayload:
		// A mask on its own renders as a grayscale coverage image.
		dst := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
		for i, v := range p.Alpha {
			dst.Pix[4*i+0] = v
			dst.Pix[4*i+1] = v
			dst.Pix[4*i+2] = v
			dst.Pix[4*i+3] = 0xff
		}
		return dst, nil

	case *RGBPayload:
		alpha, err := maskAlpha(mask, p.Width, p.Height)
		if err != nil {
			return nil, err
		}
		dst := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
		for i := 0; i < p.Width*p.Height; i++ {
			dst.Pix[4*i+0] = p.RGB[0][i]
			dst.Pix[4*i+1] = p.RGB[1][i]
			dst.Pix[4*i+2] = p.RGB[2][i]
			dst.Pix[4*i+3] = alphaAt(alpha, i)
		}
		return dst, nil

	case *ARGBPayload:
		alpha, err := maskAlpha(mask, p.Width, p.Height)
		if err != nil {
			return nil, err
		}
		if alpha == nil {
			alpha = p.ARGB[0]
		}
		dst := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
		for i := 0; i < p.Width*p.Height; i++ {
			dst.Pix[4*i+0] = p.ARGB[1][i]
			dst.Pix[4*i+1] = p.ARGB[2][i]
			dst.Pix[4*i+2] = p.ARGB[3][i]
			dst.Pix[4*i+3] = alpha[i]
		}
		return dst, nil

	case *ImageDataPayload:
		if dec == nil {
			dec = StdDecoder{}
		}
		img, err := dec.Decode(p.Data, p.Kind())
		if err != nil {
			return nil, err
		}
		dst := imgToNRGBA(img)
		if mask != nil {
			b := dst.Bounds()
			alpha, err := maskAlpha(mask, b.Dx(), b.Dy())
			if err != nil {
				return nil, err
			}
			for i := 0; i < b.Dx()*b.Dy(); i++ {
				dst.Pix[4*i+3] = alpha[i]
			}
		}
		return dst, nil

	default:
		return nil, fmt.Errorf("%w: element %s is not an image", ErrUnsupportedFormat, e.Tag)
	}
}

// maskAlpha extracts the alpha plane from a separately supplied mask
// element and checks that its resolution matches the image being
// materialized. A nil mask yields a nil plane (fully opaque).
func maskAlpha(mask *Element, w, h int) ([]byte, error) {
	if mask == nil {
		return nil, nil
	}
	if mask.Err != nil {
		return nil, mask.Err
	}
	switch m := mask.Payload.(type) {
	case *MaskPayload:
		if m.Width != w || m.Height != h {
			return nil, fmt.Errorf("%w: %dx%d mask %s for %dx%d image", ErrSizeMismatch, m.Width, m.Height, mask.Tag, w, h)
		}
		return m.Alpha, nil
	case *BitmapPayload:
		if m.Alpha == nil {
			return nil, fmt.Errorf("%w: element %s carries no mask plane", ErrUnsupportedFormat, mask.Tag)
		}
		if m.Width != w || m.Height != h {
			return nil, fmt.Errorf("%w: %dx%d mask %s for %dx%d image", ErrSizeMismatch, m.Width, m.Height, mask.Tag, w, h)
		}
		return m.Alpha, nil
	default:
		return nil, fmt.Errorf("%w: element %s is not a mask", ErrUnsupportedFormat, mask.Tag)
	}
}

func alphaAt(alpha []byte, i int) byte {
	if alpha == nil {
		return 0xff
	}
	return alpha[i]
}

// indexedToNRGBA maps an indexed plane through its depth's built-in
// palette into a fresh NRGBA buffer.
func indexedToNRGBA(p *BitmapPayload, alpha []byte) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	for i, idx := range p.Index {
		var c color.NRGBA
		switch p.Depth {
		case 1:
			c = palette1[idx&1]
		case 4:
			c = palette4[idx&0x0f]
		default:
			c = palette8[idx]
		}
		dst.Pix[4*i+0] = c.R
		dst.Pix[4*i+1] = c.G
		dst.Pix[4*i+2] = c.B
		dst.Pix[4*i+3] = alphaAt(alpha, i)
	}
	return dst
}

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func imgToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok {
			return src0
		}
	}

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dst := image.NewNRGBA(dstBounds)
	for dstY := 0; dstY < dstBounds.Dy(); dstY++ {
		di := dst.PixOffset(0, dstY)
		for dstX := 0; dstX < dstBounds.Dx(); dstX++ {
			c := color.NRGBAModel.Convert(img.At(srcBounds.Min.X+dstX, srcBounds.Min.Y+dstY)).(color.NRGBA)
			dst.Pix[di+0] = c.R
			dst.Pix[di+1] = c.G
			dst.Pix[di+2] = c.B
			dst.Pix[di+3] = c.A
			di += 4
		}
	}

	return dst
}
