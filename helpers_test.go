package plane

import (
	"errors"
	"testing"
)

// mustPanic runs fn and fails the test unless it panics. When want is
// non-nil the recovered value must be an error wrapping want.
func mustPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic (%v), got none", want)
		}
		if want == nil {
			return
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Fatalf("panic value %v, want error wrapping %v", r, want)
		}
	}()
	fn()
}

// fillVisible sets every visible sample of p to f(x, y).
func fillVisible[T Pixel](p *Plane[T], f func(x, y int) T) {
	for y := range p.cfg.Height {
		for x := range p.cfg.Width {
			p.data[p.cfg.Index(x, y)] = f(x, y)
		}
	}
}
