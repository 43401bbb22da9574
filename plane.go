package plane

import (
	"fmt"

	"github.com/ajroetker/go-highway/hwy/contrib/algo"
)

// Plane is the sample buffer of one frame component together with its
// layout. The visible samples are surrounded by a border that Pad fills by
// replicating the outermost visible samples.
//
// A Plane is not safe for concurrent use.
type Plane[T Pixel] struct {
	data  []T
	cfg   Config
	guard guard
}

// New allocates a plane of width x height visible samples with xpad and
// ypad samples of border, every sample set to NeutralValue.
//
// The horizontal origin is xpad rounded up to OriginAlignment and the stride
// is rounded up to StrideAlignment. xdec and ydec are the plane's
// subsampling shifts relative to the reference plane.
func New[T Pixel](width, height, xdec, ydec, xpad, ypad int) *Plane[T] {
	cfg := NewConfig(width, height, xdec, ydec, xpad, ypad)
	data := makeAligned(cfg.Len(), T(NeutralValue))
	if !isAligned(data) {
		fail(ErrMisaligned, "buffer of %d samples not %d-byte aligned", len(data), DataAlignment)
	}
	return &Plane[T]{data: data, cfg: cfg}
}

// Config returns the plane's layout.
func (p *Plane[T]) Config() Config {
	return p.cfg
}

// Width returns the number of visible samples per row.
func (p *Plane[T]) Width() int {
	return p.cfg.Width
}

// Height returns the number of visible rows.
func (p *Plane[T]) Height() int {
	return p.cfg.Height
}

// Stride returns the number of samples between the starts of two rows.
func (p *Plane[T]) Stride() int {
	return p.cfg.Stride
}

// Len returns the total number of samples in the buffer, borders included.
func (p *Plane[T]) Len() int {
	return len(p.data)
}

// At returns the sample at (x, y) relative to the visible origin.
func (p *Plane[T]) At(x, y int) T {
	p.guard.checkRead()
	return p.data[p.cfg.Index(x, y)]
}

// DataOrigin returns the buffer from the first visible sample to its end.
// The result must not be written to.
func (p *Plane[T]) DataOrigin() []T {
	p.guard.checkRead()
	return p.data[p.cfg.Index(0, 0):]
}

// UpdateDataOrigin calls fn with the writable buffer from the first visible
// sample to its end. The plane is exclusively borrowed while fn runs, and fn
// must not keep the slice after it returns.
func (p *Plane[T]) UpdateDataOrigin(fn func(data []T)) {
	b := p.guard.acquireExclusive()
	defer b.release()
	fn(p.data[p.cfg.Index(0, 0):])
}

// row returns the visible samples of row y.
func (p *Plane[T]) row(y int) []T {
	i := p.cfg.Index(0, y)
	return p.data[i : i+p.cfg.Width : i+p.cfg.Width]
}

// Slice returns a read view at po. The view holds a shared borrow of the
// plane until Release is called.
func (p *Plane[T]) Slice(po Offset) Slice[T] {
	return Slice[T]{plane: p, x: po.X, y: po.Y, b: p.guard.acquireShared(), root: true}
}

// MutSlice returns a write view at po. The view holds an exclusive borrow
// of the plane until Release is called.
func (p *Plane[T]) MutSlice(po Offset) MutSlice[T] {
	return MutSlice[T]{plane: p, x: po.X, y: po.Y, b: p.guard.acquireExclusive(), root: true}
}

// View calls fn with a read view at po and releases it when fn returns.
func (p *Plane[T]) View(po Offset, fn func(Slice[T])) {
	s := p.Slice(po)
	defer s.Release()
	fn(s)
}

// Update calls fn with a write view at po and releases it when fn returns.
func (p *Plane[T]) Update(po Offset, fn func(MutSlice[T])) {
	m := p.MutSlice(po)
	defer m.Release()
	fn(m)
}

// Iter returns an iterator over the visible samples in row-major order.
func (p *Plane[T]) Iter() *Iter[T] {
	return &Iter[T]{plane: p, gen: p.guard.gen}
}

// Clone returns a deep copy of the plane with the same layout. Views of p
// are not carried over.
func (p *Plane[T]) Clone() *Plane[T] {
	p.guard.checkRead()
	data := makeAligned(len(p.data), T(0))
	algo.Copy(p.data, data)
	return &Plane[T]{data: data, cfg: p.cfg}
}

func (p *Plane[T]) String() string {
	if len(p.data) == 0 {
		return fmt.Sprintf("Plane{data: [], cfg: %+v}", p.cfg)
	}
	return fmt.Sprintf("Plane{data: [%d, ...], cfg: %+v}", p.data[0], p.cfg)
}
