package line

import (
	"image"
)

// Axis returns all points on the axis-aligned line between a,b (inclusive).
// Points are ordered by ascending x (horizontal lines) or ascending y
// (vertical lines) regardless of which end was given first.
// If a,b share neither x nor y the line isn't axis-aligned and we return
// false.
func Axis(a, b image.Point) ([]image.Point, bool) {
	switch {
	case a.X == b.X:
		lo, hi := minmax(a.Y, b.Y)
		pts := make([]image.Point, 0, hi-lo+1)
		for y := lo; y <= hi; y++ {
			pts = append(pts, image.Pt(a.X, y))
		}
		return pts, true
	case a.Y == b.Y:
		lo, hi := minmax(a.X, b.X)
		pts := make([]image.Point, 0, hi-lo+1)
		for x := lo; x <= hi; x++ {
			pts = append(pts, image.Pt(x, a.Y))
		}
		return pts, true
	}
	return nil, false
}

// Reverse flips the order of the given points in place
func Reverse(pts []image.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

func minmax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
