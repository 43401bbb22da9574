package plane

type borrowKind uint8

const (
	sharedBorrow borrowKind = iota + 1
	exclusiveBorrow
)

func (k borrowKind) String() string {
	if k == exclusiveBorrow {
		return "write"
	}
	return "read"
}

// guard tracks the live views of one plane. Any number of read borrows may
// be live, or exactly one write borrow. It never blocks: an acquisition that
// would overlap panics instead.
type guard struct {
	readers int
	writer  bool
	gen     uint64 // write borrows taken so far
}

// borrow is the token held by a view and every view derived from it.
type borrow struct {
	g        *guard
	kind     borrowKind
	released bool
}

func (g *guard) acquireShared() *borrow {
	if g.writer {
		fail(ErrBorrowConflict, "read view requested while a write view is live")
	}
	g.readers++
	return &borrow{g: g, kind: sharedBorrow}
}

func (g *guard) acquireExclusive() *borrow {
	if g.writer {
		fail(ErrBorrowConflict, "write view requested while another write view is live")
	}
	if g.readers > 0 {
		fail(ErrBorrowConflict, "write view requested while %d read view(s) are live", g.readers)
	}
	g.writer = true
	g.gen++
	return &borrow{g: g, kind: exclusiveBorrow}
}

// checkRead panics if a write view is live. Plane-level reads that do not
// hold a view of their own go through it.
func (g *guard) checkRead() {
	if g.writer {
		fail(ErrBorrowConflict, "plane read while a write view is live")
	}
}

func (b *borrow) release() {
	if b == nil || b.released {
		return
	}
	b.released = true
	switch b.kind {
	case sharedBorrow:
		b.g.readers--
	case exclusiveBorrow:
		b.g.writer = false
	}
}

func (b *borrow) check() {
	if b == nil {
		fail(ErrViewReleased, "zero view")
	}
	if b.released {
		fail(ErrViewReleased, "%s view", b.kind)
	}
}
