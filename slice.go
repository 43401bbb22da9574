package plane

import hwyimage "github.com/ajroetker/go-highway/hwy/contrib/image"

// Slice is a read-only view of a plane positioned at an offset from the
// visible origin. Views derived from a Slice (Subslice, Reslice, GoUp,
// GoLeft, Clamp) share its borrow and never copy samples.
//
// A Slice obtained from Plane.Slice must be released with Release. Releasing
// a derived view is a no-op; releasing the original ends the borrow for every
// view derived from it.
type Slice[T Pixel] struct {
	plane *Plane[T]
	x, y  int
	b     *borrow
	root  bool
}

// X returns the horizontal position relative to the visible origin.
func (s Slice[T]) X() int { return s.x }

// Y returns the vertical position relative to the visible origin.
func (s Slice[T]) Y() int { return s.y }

// Plane returns the plane the view reads from.
func (s Slice[T]) Plane() *Plane[T] { return s.plane }

// Release ends the borrow taken by Plane.Slice.
func (s Slice[T]) Release() {
	if s.root {
		s.b.release()
	}
}

func (s Slice[T]) base() int {
	s.b.check()
	return s.plane.cfg.Index(s.x, s.y)
}

// derive returns a view at (x, y) sharing s's borrow. It panics with
// ErrViewReleased if that borrow has ended.
func (s Slice[T]) derive(x, y int) Slice[T] {
	s.b.check()
	return Slice[T]{plane: s.plane, x: x, y: y, b: s.b}
}

// AsSlice returns the buffer from the view's position to its end. How much
// of it is meaningful is up to the caller.
func (s Slice[T]) AsSlice() []T {
	return s.plane.data[s.base():]
}

// AsSliceWithWidth returns width samples starting at the view's position.
func (s Slice[T]) AsSliceWithWidth(width int) []T {
	base := s.base()
	return s.plane.data[base : base+width : base+width]
}

// AsSliceClamped is AsSlice after clamping the position into the
// addressable range, see Clamp.
func (s Slice[T]) AsSliceClamped() []T {
	s.b.check()
	cfg := s.plane.cfg
	y := max(min(s.y, cfg.Height)+cfg.YOrigin, 0)
	x := max(min(s.x, cfg.Width)+cfg.XOrigin, 0)
	return s.plane.data[y*cfg.Stride+x:]
}

// Clamp returns a view whose position is clamped to x in [-XOrigin, Width]
// and y in [-YOrigin, Height].
func (s Slice[T]) Clamp() Slice[T] {
	s.b.check()
	x, y := clampOffset(s.plane.cfg, s.x, s.y)
	return s.derive(x, y)
}

func clampOffset(cfg Config, x, y int) (int, int) {
	x = hwyimage.Clamp(x+cfg.XOrigin, cfg.XOrigin+cfg.Width+1) - cfg.XOrigin
	y = hwyimage.Clamp(y+cfg.YOrigin, cfg.YOrigin+cfg.Height+1) - cfg.YOrigin
	return x, y
}

// Subslice returns a view moved xo samples right and yo rows down.
// Both offsets must be non-negative.
func (s Slice[T]) Subslice(xo, yo int) Slice[T] {
	if xo < 0 || yo < 0 {
		fail(ErrNegativeOffset, "subslice by (%d, %d)", xo, yo)
	}
	return s.derive(s.x+xo, s.y+yo)
}

// Reslice returns a view moved by (xo, yo), which may be negative.
func (s Slice[T]) Reslice(xo, yo int) Slice[T] {
	return s.derive(s.x+xo, s.y+yo)
}

// GoUp returns a view i rows above this one.
func (s Slice[T]) GoUp(i int) Slice[T] {
	return s.derive(s.x, s.y-i)
}

// GoLeft returns a view i samples left of this one.
func (s Slice[T]) GoLeft(i int) Slice[T] {
	return s.derive(s.x-i, s.y)
}

// At returns the sample dx right and dy below the view's position.
func (s Slice[T]) At(dx, dy int) T {
	s.b.check()
	return s.plane.data[s.plane.cfg.Index(s.x+dx, s.y+dy)]
}

// IterWidth returns an iterator over width-sample rows starting at the
// view's position and moving down one row per step.
func (s Slice[T]) IterWidth(width int) *RowIter[T] {
	return &RowIter[T]{s: s.derive(s.x, s.y), width: width}
}

// RowIter yields consecutive rows of a fixed width from a read view. It
// stops when its row reaches the visible height of the plane or when the next
// row would run past the end of the buffer. It cannot be restarted.
type RowIter[T Pixel] struct {
	s     Slice[T]
	width int
	done  bool
}

// Next returns the next row and true, or nil and false once the iterator is
// exhausted.
func (it *RowIter[T]) Next() ([]T, bool) {
	if it.done || it.s.y >= it.s.plane.cfg.Height {
		it.done = true
		return nil, false
	}
	base := it.s.base()
	if base+it.width > len(it.s.plane.data) {
		it.done = true
		return nil, false
	}
	it.s.y++
	return it.s.plane.data[base : base+it.width : base+it.width], true
}

// Len returns the number of rows Next will still yield.
func (it *RowIter[T]) Len() int {
	if it.done {
		return 0
	}
	it.s.b.check()
	rows := it.s.plane.cfg.Height - it.s.y
	if rows <= 0 {
		return 0
	}
	cfg := it.s.plane.cfg
	base := cfg.Index(it.s.x, it.s.y)
	room := len(it.s.plane.data) - base - it.width
	if room < 0 {
		return 0
	}
	if cfg.Stride > 0 {
		rows = min(rows, room/cfg.Stride+1)
	}
	return rows
}
