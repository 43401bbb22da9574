package plane

import "fmt"

const (
	// StrideAlignment is the unit, in samples, every row stride is rounded
	// up to.
	StrideAlignment = 16

	// OriginAlignment is the unit, in samples, the horizontal origin is
	// rounded up to.
	OriginAlignment = StrideAlignment / 2

	// DataAlignment is the byte alignment of the first sample of a plane.
	DataAlignment = 16

	// maxDecimation is the largest supported subsampling shift (4x).
	maxDecimation = 2
)

// Config describes the layout of a plane's sample buffer.
type Config struct {
	Stride      int // samples between the starts of consecutive rows
	AllocHeight int // rows in the buffer, borders included
	Width       int // visible samples per row
	Height      int // visible rows
	XDec        int // log2 horizontal subsampling relative to the reference plane
	YDec        int // log2 vertical subsampling relative to the reference plane
	XPad        int
	YPad        int
	XOrigin     int // buffer column of the first visible sample
	YOrigin     int // buffer row of the first visible sample
}

// Offset is a position relative to the visible origin of a plane.
// Negative coordinates address the border.
type Offset struct {
	X, Y int
}

// alignUp rounds n up to a multiple of align, which must be a power of two.
func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// NewConfig computes the geometry of a plane holding width x height visible
// samples with xpad/ypad samples of border on each side.
//
// xdec and ydec are recorded for consumers that relate this plane to the
// full-resolution reference plane; they do not affect the layout.
func NewConfig(width, height, xdec, ydec, xpad, ypad int) Config {
	if width < 0 || height < 0 || xpad < 0 || ypad < 0 {
		fail(ErrInvalidGeometry, "negative size %dx%d pad %d,%d", width, height, xpad, ypad)
	}
	if xdec < 0 || xdec > maxDecimation || ydec < 0 || ydec > maxDecimation {
		fail(ErrInvalidGeometry, "subsampling shift %d,%d out of range", xdec, ydec)
	}

	xorigin := alignUp(xpad, OriginAlignment)
	yorigin := ypad
	stride := alignUp(xorigin+width+xpad, StrideAlignment)
	allocHeight := yorigin + height + ypad

	return Config{
		Stride:      stride,
		AllocHeight: allocHeight,
		Width:       width,
		Height:      height,
		XDec:        xdec,
		YDec:        ydec,
		XPad:        xpad,
		YPad:        ypad,
		XOrigin:     xorigin,
		YOrigin:     yorigin,
	}
}

// Len returns the number of samples a buffer with this layout holds.
func (c Config) Len() int {
	return c.Stride * c.AllocHeight
}

// Index returns the buffer index of the sample at (x, y) relative to the
// visible origin. Negative coordinates are valid within the border.
func (c Config) Index(x, y int) int {
	return (y+c.YOrigin)*c.Stride + x + c.XOrigin
}

// Validate reports whether the layout invariants hold.
func (c Config) Validate() error {
	switch {
	case c.Stride%StrideAlignment != 0:
		return fmt.Errorf("%w: stride %d not a multiple of %d", ErrInvalidGeometry, c.Stride, StrideAlignment)
	case c.XOrigin%OriginAlignment != 0:
		return fmt.Errorf("%w: x origin %d not a multiple of %d", ErrInvalidGeometry, c.XOrigin, OriginAlignment)
	case c.XOrigin < c.XPad:
		return fmt.Errorf("%w: x origin %d below padding %d", ErrInvalidGeometry, c.XOrigin, c.XPad)
	case c.Stride < c.XOrigin+c.Width+c.XPad:
		return fmt.Errorf("%w: stride %d too small for %d+%d+%d", ErrInvalidGeometry, c.Stride, c.XOrigin, c.Width, c.XPad)
	case c.AllocHeight != c.YOrigin+c.Height+c.YPad:
		return fmt.Errorf("%w: alloc height %d != %d+%d+%d", ErrInvalidGeometry, c.AllocHeight, c.YOrigin, c.Height, c.YPad)
	}
	return nil
}
