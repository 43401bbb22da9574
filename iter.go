package plane

// Iter walks the visible samples of a plane in row-major order, skipping the
// border. It cannot be restarted.
//
// An Iter does not hold a borrow, but stepping it after the plane has been
// written through a write view or a mutating Plane method panics with
// ErrBorrowConflict.
type Iter[T Pixel] struct {
	plane *Plane[T]
	gen   uint64
	x, y  int
}

// Next returns the next sample and true, or the zero value and false once
// all Width*Height samples have been returned. It panics with
// ErrBorrowConflict if a write view of the plane is live.
func (it *Iter[T]) Next() (T, bool) {
	cfg := it.plane.cfg
	if cfg.Width == 0 || it.y >= cfg.Height {
		var zero T
		return zero, false
	}
	it.plane.guard.checkRead()
	if it.plane.guard.gen != it.gen {
		fail(ErrBorrowConflict, "plane written since the iterator was created")
	}
	v := it.plane.data[cfg.Index(it.x, it.y)]
	if it.x == cfg.Width-1 {
		it.x = 0
		it.y++
	} else {
		it.x++
	}
	return v, true
}

// Len returns the number of samples Next will still return.
func (it *Iter[T]) Len() int {
	cfg := it.plane.cfg
	if cfg.Width == 0 || it.y >= cfg.Height {
		return 0
	}
	return (cfg.Height-it.y)*cfg.Width - it.x
}
