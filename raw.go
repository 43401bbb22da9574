package plane

import "github.com/ajroetker/go-highway/hwy/contrib/algo"

// CopyFromRawU8 copies row-major samples from source into the visible area.
// Rows of source start sourceStride bytes apart and each sample occupies
// sourceBytewidth bytes:
//
//   - 1: one byte per sample.
//   - 2: two bytes per sample, little-endian. T must be at least 16 bits
//     wide, otherwise CopyFromRawU8 panics with ErrSampleWidth.
//
// Any other byte width is ignored and leaves the plane unchanged.
//
// At most Width samples of each of at most Height rows are written; a source
// that is smaller fills only what it covers. The border is not touched, so
// call Pad afterwards.
func (p *Plane[T]) CopyFromRawU8(source []byte, sourceStride, sourceBytewidth int) {
	if sourceBytewidth == 2 && SampleSize[T]() < 2 {
		fail(ErrSampleWidth, "source bytewidth (%d) cannot fit in %d-bit samples", sourceBytewidth, BitDepth[T]())
	}
	if sourceBytewidth != 1 && sourceBytewidth != 2 {
		return
	}
	if sourceStride <= 0 {
		fail(ErrInvalidGeometry, "source stride %d", sourceStride)
	}

	b := p.guard.acquireExclusive()
	defer b.release()

	for y := 0; y < p.cfg.Height && y*sourceStride < len(source); y++ {
		src := source[y*sourceStride : min(len(source), (y+1)*sourceStride)]
		dst := p.row(y)

		switch sourceBytewidth {
		case 1:
			n := min(len(dst), len(src))
			if dst8, ok := any(dst).([]uint8); ok {
				algo.Copy(src[:n], dst8[:n])
				continue
			}
			for i := range n {
				dst[i] = T(src[i])
			}
		case 2:
			n := min(len(dst), len(src)/2)
			for i := range n {
				dst[i] = T(uint16(src[2*i]) | uint16(src[2*i+1])<<8)
			}
		}
	}
}

// DownsampleFrom fills the visible area with a 2x2 box-filtered copy of
// src. Each output sample is the rounded mean of the four source samples it
// covers.
//
// src must be exactly twice as wide and twice as tall as p, otherwise
// DownsampleFrom panics with ErrDimensionMismatch. The border of p is not
// touched.
func (p *Plane[T]) DownsampleFrom(src *Plane[T]) {
	width := p.cfg.Width
	height := p.cfg.Height

	if width*2 != src.cfg.Width || height*2 != src.cfg.Height {
		fail(ErrDimensionMismatch, "%dx%d is not half of %dx%d", width, height, src.cfg.Width, src.cfg.Height)
	}

	rb := src.guard.acquireShared()
	defer rb.release()
	wb := p.guard.acquireExclusive()
	defer wb.release()

	for row := range height {
		dst := p.row(row)
		top := src.row(2 * row)
		bottom := src.row(2*row + 1)

		for col := range width {
			sum := uint32(top[2*col]) + uint32(top[2*col+1]) +
				uint32(bottom[2*col]) + uint32(bottom[2*col+1])
			dst[col] = T((sum + 2) >> 2)
		}
	}
}
