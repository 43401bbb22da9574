package plane

import (
	"slices"
	"testing"
)

// newTestPlane returns the 4x2 plane with 2 samples of padding used by most
// view tests, with visible samples set to x + 10*y.
func newTestPlane() *Plane[uint8] {
	p := New[uint8](4, 2, 0, 0, 2, 2)
	fillVisible(p, func(x, y int) uint8 { return uint8(x + 10*y) })
	return p
}

func TestSlice_Access(t *testing.T) {
	p := newTestPlane()
	s := p.Slice(Offset{X: 1, Y: 1})
	defer s.Release()

	if got := s.AsSliceWithWidth(2); !slices.Equal(got, []uint8{11, 12}) {
		t.Errorf("AsSliceWithWidth(2): got %v, want [11 12]", got)
	}
	if got := s.AsSliceWithWidth(2); cap(got) != 2 {
		t.Errorf("AsSliceWithWidth(2): cap %d, want 2", cap(got))
	}

	all := s.AsSlice()
	if want := 96 - p.cfg.Index(1, 1); len(all) != want {
		t.Errorf("AsSlice: len %d, want %d", len(all), want)
	}
	if all[0] != 11 {
		t.Errorf("AsSlice()[0]: got %d, want 11", all[0])
	}

	if got := s.At(1, 0); got != 12 {
		t.Errorf("At(1, 0): got %d, want 12", got)
	}
	if got := s.At(-1, -1); got != 0 {
		t.Errorf("At(-1, -1): got %d, want 0", got)
	}
	if s.X() != 1 || s.Y() != 1 || s.Plane() != p {
		t.Errorf("accessors: got (%d, %d, %p)", s.X(), s.Y(), s.Plane())
	}
}

func TestSlice_AsSliceWithWidthOverrun(t *testing.T) {
	p := newTestPlane()
	s := p.Slice(Offset{})
	defer s.Release()

	mustPanic(t, nil, func() { s.AsSliceWithWidth(p.Len()) })
}

func TestSlice_SubViews(t *testing.T) {
	p := newTestPlane()
	s := p.Slice(Offset{X: 1, Y: 1})
	defer s.Release()

	tests := []struct {
		name string
		view Slice[uint8]
		x, y int
		want uint8
	}{
		{"GoLeft", s.GoLeft(1), 0, 1, 10},
		{"GoUp", s.GoUp(1), 1, 0, 1},
		{"Reslice", s.Reslice(-1, -1), 0, 0, 0},
		{"Reslice positive", s.Reslice(2, 0), 3, 1, 13},
		{"Subslice", s.Subslice(2, 0), 3, 1, 13},
		{"chained", s.GoUp(1).GoLeft(1).Subslice(3, 1), 3, 1, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.view.X() != tt.x || tt.view.Y() != tt.y {
				t.Errorf("position: got (%d, %d), want (%d, %d)", tt.view.X(), tt.view.Y(), tt.x, tt.y)
			}
			if got := tt.view.At(0, 0); got != tt.want {
				t.Errorf("At(0, 0): got %d, want %d", got, tt.want)
			}
		})
	}

	mustPanic(t, ErrNegativeOffset, func() { s.Subslice(-1, 0) })
	mustPanic(t, ErrNegativeOffset, func() { s.Subslice(0, -1) })
}

func TestSlice_Clamp(t *testing.T) {
	p := newTestPlane()
	cfg := p.cfg

	tests := []struct {
		name         string
		in           Offset
		wantX, wantY int
	}{
		{"inside", Offset{X: 2, Y: 1}, 2, 1},
		{"far right, far up", Offset{X: 100, Y: -100}, cfg.Width, -cfg.YOrigin},
		{"far left, far down", Offset{X: -100, Y: 100}, -cfg.XOrigin, cfg.Height},
		{"on the limits", Offset{X: -cfg.XOrigin, Y: cfg.Height}, -cfg.XOrigin, cfg.Height},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := p.Slice(tt.in)
			defer s.Release()

			c := s.Clamp()
			if c.X() != tt.wantX || c.Y() != tt.wantY {
				t.Errorf("Clamp: got (%d, %d), want (%d, %d)", c.X(), c.Y(), tt.wantX, tt.wantY)
			}

			clamped := s.AsSliceClamped()
			direct := c.AsSlice()
			if len(clamped) != len(direct) {
				t.Errorf("AsSliceClamped: len %d, want %d", len(clamped), len(direct))
			}
		})
	}
}

func TestRowIter(t *testing.T) {
	p := newTestPlane()
	s := p.Slice(Offset{})
	defer s.Release()

	it := s.IterWidth(4)
	if it.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", it.Len())
	}

	var rows [][]uint8
	for row, ok := it.Next(); ok; row, ok = it.Next() {
		rows = append(rows, row)
	}
	want := [][]uint8{{0, 1, 2, 3}, {10, 11, 12, 13}}
	if len(rows) != len(want) {
		t.Fatalf("rows: got %d, want %d", len(rows), len(want))
	}
	for i := range want {
		if !slices.Equal(rows[i], want[i]) {
			t.Errorf("row %d: got %v, want %v", i, rows[i], want[i])
		}
	}

	if it.Len() != 0 {
		t.Errorf("Len after exhaustion: got %d", it.Len())
	}
	if row, ok := it.Next(); ok || row != nil {
		t.Errorf("Next after exhaustion: got %v, %v", row, ok)
	}

	// The view the iterator came from does not move.
	if s.Y() != 0 {
		t.Errorf("source view moved to row %d", s.Y())
	}
}

func TestRowIter_FromBorder(t *testing.T) {
	p := newTestPlane()
	p.Pad(4, 2)

	p.View(Offset{X: -2, Y: -2}, func(s Slice[uint8]) {
		it := s.IterWidth(8)
		if it.Len() != 4 {
			t.Fatalf("Len: got %d, want 4", it.Len())
		}
		n := 0
		for row, ok := it.Next(); ok; row, ok = it.Next() {
			if len(row) != 8 {
				t.Fatalf("row %d: len %d", n, len(row))
			}
			n++
			if it.Len() != 4-n {
				t.Fatalf("Len after %d rows: got %d", n, it.Len())
			}
		}
		if n != 4 {
			t.Errorf("rows: got %d, want 4", n)
		}
	})
}

func TestRowIter_Overrun(t *testing.T) {
	p := newTestPlane()
	s := p.Slice(Offset{})
	defer s.Release()

	it := s.IterWidth(p.Len())
	if it.Len() != 0 {
		t.Errorf("Len: got %d, want 0", it.Len())
	}
	if _, ok := it.Next(); ok {
		t.Errorf("Next: got a row for a width past the buffer end")
	}
	if _, ok := it.Next(); ok {
		t.Errorf("Next after termination: got a row")
	}
}

func TestRowIter_StopsAtBufferEnd(t *testing.T) {
	// No bottom border: rows of 24 samples starting at column 0 fit twice
	// before the buffer ends.
	p := New[uint8](4, 3, 0, 0, 2, 0)
	s := p.Slice(Offset{})
	defer s.Release()

	it := s.IterWidth(24)
	if it.Len() != 2 {
		t.Errorf("Len: got %d, want 2", it.Len())
	}
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	if n != 2 {
		t.Errorf("rows: got %d, want 2", n)
	}
}
