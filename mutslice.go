package plane

// MutSlice is a writable view of a plane positioned at an offset from the
// visible origin. While a MutSlice obtained from Plane.MutSlice is live, no
// other view of the plane can be acquired.
//
// Views derived from a MutSlice, writable or not, share its borrow; only the
// original's Release ends it.
type MutSlice[T Pixel] struct {
	plane *Plane[T]
	x, y  int
	b     *borrow
	root  bool
}

// X returns the horizontal position relative to the visible origin.
func (m MutSlice[T]) X() int { return m.x }

// Y returns the vertical position relative to the visible origin.
func (m MutSlice[T]) Y() int { return m.y }

// Release ends the borrow taken by Plane.MutSlice.
func (m MutSlice[T]) Release() {
	if m.root {
		m.b.release()
	}
}

func (m MutSlice[T]) index(dx, dy int) int {
	m.b.check()
	return m.plane.cfg.Index(m.x+dx, m.y+dy)
}

func (m MutSlice[T]) derive(x, y int) MutSlice[T] {
	m.b.check()
	return MutSlice[T]{plane: m.plane, x: x, y: y, b: m.b}
}

// AsMutSlice returns the writable buffer from the view's position to its end.
func (m MutSlice[T]) AsMutSlice() []T {
	return m.plane.data[m.index(0, 0):]
}

// AsMutSliceWithWidth returns width writable samples starting at the view's
// position. The position must not lie before the start of the buffer.
func (m MutSlice[T]) AsMutSliceWithWidth(width int) []T {
	m.b.check()
	cfg := m.plane.cfg
	x := m.x + cfg.XOrigin
	y := m.y + cfg.YOrigin
	if x < 0 || y < 0 {
		fail(ErrNegativeOffset, "position (%d, %d) before buffer start", m.x, m.y)
	}
	base := y*cfg.Stride + x
	return m.plane.data[base : base+width : base+width]
}

// Offset returns the buffer from dx samples right and dy rows below the
// view's position. The result must not be written to.
func (m MutSlice[T]) Offset(dx, dy int) []T {
	return m.plane.data[m.index(dx, dy):]
}

// OffsetAsMutable is Offset for writing.
func (m MutSlice[T]) OffsetAsMutable(dx, dy int) []T {
	return m.plane.data[m.index(dx, dy):]
}

// At returns the sample dx right and dy below the view's position.
func (m MutSlice[T]) At(dx, dy int) T {
	return m.plane.data[m.index(dx, dy)]
}

// Set stores v dx right and dy below the view's position.
func (m MutSlice[T]) Set(dx, dy int, v T) {
	m.plane.data[m.index(dx, dy)] = v
}

// Subslice returns a writable view moved xo samples right and yo rows down.
// Both offsets must be non-negative.
func (m MutSlice[T]) Subslice(xo, yo int) MutSlice[T] {
	if xo < 0 || yo < 0 {
		fail(ErrNegativeOffset, "subslice by (%d, %d)", xo, yo)
	}
	return m.derive(m.x+xo, m.y+yo)
}

// Reslice returns a writable view moved by (xo, yo), which may be negative.
func (m MutSlice[T]) Reslice(xo, yo int) MutSlice[T] {
	return m.derive(m.x+xo, m.y+yo)
}

// Clamp returns a writable view with its position clamped as in
// Slice.Clamp.
func (m MutSlice[T]) Clamp() MutSlice[T] {
	m.b.check()
	x, y := clampOffset(m.plane.cfg, m.x, m.y)
	return m.derive(x, y)
}

// GoUp returns a read view i rows above this one.
func (m MutSlice[T]) GoUp(i int) Slice[T] {
	m.b.check()
	return Slice[T]{plane: m.plane, x: m.x, y: m.y - i, b: m.b}
}

// GoLeft returns a read view i samples left of this one.
func (m MutSlice[T]) GoLeft(i int) Slice[T] {
	m.b.check()
	return Slice[T]{plane: m.plane, x: m.x - i, y: m.y, b: m.b}
}
