package icns

import (
	"bytes"
	"fmt"
	"image"

	// Register the PNG decoder for the default delegate.
	_ "image/png"
)

// Kind names the compressed sub-format of an ImageDataPayload.
type Kind string

const (
	KindPNG      Kind = "png"
	KindJPEG2000 Kind = "jp2"
	KindUnknown  Kind = ""
)

// Decoder decodes an embedded compressed image stream. The core never
// depends on a concrete codec implementation; any image library able to
// turn the raw bytes into an image.Image satisfies it. Implementations
// should return an error wrapping ErrUnsupportedFormat for sub-formats
// they cannot handle.
type Decoder interface {
	Decode(data []byte, kind Kind) (image.Image, error)
}

// StdDecoder is the default Decoder. It decodes PNG streams through the
// standard library's registered image formats and rejects JPEG 2000, which
// has no stdlib codec.
type StdDecoder struct{}

func (StdDecoder) Decode(data []byte, kind Kind) (image.Image, error) {
	switch kind {
	case KindPNG:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("could not decode the embedded png stream: %w", err)
		}
		return img, nil
	case KindJPEG2000:
		return nil, fmt.Errorf("%w: jpeg 2000", ErrUnsupportedFormat)
	default:
		return nil, fmt.Errorf("%w: unrecognized compressed stream signature", ErrUnsupportedFormat)
	}
}
