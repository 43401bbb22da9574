package plane

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGeometry   = errors.New("plane: invalid geometry")
	ErrMisaligned        = errors.New("plane: misaligned sample buffer")
	ErrDimensionMismatch = errors.New("plane: dimension mismatch")
	ErrSampleWidth       = errors.New("plane: sample width too small")
	ErrNegativeOffset    = errors.New("plane: negative offset")
	ErrBorrowConflict    = errors.New("plane: conflicting view borrow")
	ErrViewReleased      = errors.New("plane: view used after release")
)

// fail panics with err wrapped in a formatted message.
func fail(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{err}, args...)...))
}
