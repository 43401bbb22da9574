package plane

import (
	"unsafe"

	"github.com/ajroetker/go-highway/hwy"
)

// Pixel is the constraint for plane sample types: 8-bit samples for
// standard content and 16-bit samples for high bit depth content.
//
// It narrows hwy.Lanes, so a Plane's buffer can be handed to go-highway
// routines directly.
type Pixel interface {
	hwy.Lanes
	~uint8 | ~uint16
}

// NeutralValue is the mid-gray every new plane is filled with.
const NeutralValue = 128

// SampleSize returns the size in bytes of one sample of type T.
func SampleSize[T Pixel]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// BitDepth returns the storage bit width of T.
func BitDepth[T Pixel]() int {
	return SampleSize[T]() * 8
}
