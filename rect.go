package kitdemo

import (
	"fmt"
	"image"
)

// Rect is an integer rectangle covering the pixels X0 <= x < X1 and
// Y0 <= y < Y1.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// R is shorthand for Rect{x0, y0, x1, y1}.
func R(x0, y0, x1, y1 int) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Sorted returns r with X0 <= X1 and Y0 <= Y1.
func (r Rect) Sorted() Rect {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// Dx returns the width of r.
func (r Rect) Dx() int { return r.X1 - r.X0 }

// Dy returns the height of r.
func (r Rect) Dy() int { return r.Y1 - r.Y0 }

// Clip intersects the sorted rectangle with [0,width) x [0,height).
// The result is the zero Rect when nothing remains.
func (r Rect) Clip(width, height int) Rect {
	r = r.Sorted()
	r.X0 = max(r.X0, 0)
	r.Y0 = max(r.Y0, 0)
	r.X1 = min(r.X1, width)
	r.Y1 = min(r.Y1, height)
	if r.Empty() {
		return Rect{}
	}
	return r
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X0, r.Y0, r.X1, r.Y1)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X0, r.Y0, r.X1, r.Y1)
}
