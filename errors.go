package icns

import "errors"

// Parse and decode errors. Structural errors (truncation, malformed headers)
// abort the whole parse; codec errors are recorded on the affected element
// and leave the rest of the tree intact. Callers match them with errors.Is.
var (
	// ErrTruncatedData is returned when a read would run past the end of
	// the buffer or of the enclosing element's body.
	ErrTruncatedData = errors.New("icns: truncated data")

	// ErrMalformedHeader is returned when an element header declares a
	// total length smaller than the 8-byte header itself, or when the
	// container's root element is not a valid icon family.
	ErrMalformedHeader = errors.New("icns: malformed element header")

	// ErrIncompleteContainer flags a family whose body was not exactly
	// exhausted by its child elements. The parsed children are kept.
	ErrIncompleteContainer = errors.New("icns: family body not fully consumed")

	// ErrSizeMismatch is recorded on a fixed-format element whose body
	// does not match the exact plane size the registry dictates.
	ErrSizeMismatch = errors.New("icns: bitmap size mismatch")

	// ErrRLEOverrun is recorded when a run-length run would write past the
	// end of a channel plane.
	ErrRLEOverrun = errors.New("icns: rle run exceeds channel size")

	// ErrRLEUnderrun is recorded when the run-length stream ends before a
	// channel plane is filled.
	ErrRLEUnderrun = errors.New("icns: rle stream ended before channel filled")

	// ErrUnsupportedFormat is returned by materialization when an element
	// is not an image, or when the compressed sub-format is not supported
	// by the configured Decoder.
	ErrUnsupportedFormat = errors.New("icns: unsupported image format")
)
