// Package plane implements the padded sample plane used to store one
// component (luma or chroma) of a video frame.
//
// A Plane owns a single contiguous buffer that holds the visible picture and
// a replicated border on every side. Rows are laid out with a stride that is
// a multiple of StrideAlignment samples, the first visible sample sits at an
// origin aligned to half of that, and the buffer itself starts on a
// DataAlignment byte boundary. Prediction, filtering and reconstruction code
// may therefore read a fixed number of samples past any visible edge without
// bounds handling.
//
// Construction and padding:
//
//	p := plane.New[uint8](1920, 1080, 0, 0, 64, 64)
//	p.CopyFromRawU8(raw, 1920, 1)
//	p.Pad(1920, 1080)
//
// Chroma planes record their subsampling shift and are padded with the
// luma (reference) dimensions:
//
//	u := plane.New[uint8](960, 540, 1, 1, 32, 32)
//	u.Pad(1920, 1080)
//
// Views:
//
//	s := p.Slice(plane.Offset{X: -4, Y: 16})
//	defer s.Release()
//	rows := s.IterWidth(8)
//	for row, ok := rows.Next(); ok; row, ok = rows.Next() {
//	    filterRow(row)
//	}
//
// Any number of read views (Slice) may be live at once, but a write view
// (MutSlice) requires that no other view of the plane is live. Go cannot
// express this in the type system, so the plane tracks its borrows at run
// time and panics with ErrBorrowConflict on an overlapping acquisition. The
// scoped forms View and Update release automatically:
//
//	p.Update(plane.Offset{X: 0, Y: 0}, func(m plane.MutSlice[uint8]) {
//	    row := m.AsMutSliceWithWidth(16)
//	    row[0] = 255
//	})
//
// Every failure in this package is a programmer error: misaligned
// allocation, mismatched dimensions, an incompatible sample width or a
// borrow conflict. They are reported by panicking with an error that wraps
// one of the package's sentinel errors.
package plane
