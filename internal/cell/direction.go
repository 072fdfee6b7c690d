package cell

import (
	"image"
)

// Direction is one of the four axis directions of the grid.
// North is +Y, East is +X.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions in the order we walk them when linking neighbours
var Directions = [4]Direction{North, South, East, West}

var offsets = [4]image.Point{
	North: {0, 1},
	South: {0, -1},
	East:  {1, 0},
	West:  {-1, 0},
}

// Offset returns the unit step for d
func (d Direction) Offset() image.Point {
	return offsets[d&3]
}

// Opposite returns the direction facing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// String for logging
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// Step returns the cell next to p in direction d
func Step(p image.Point, d Direction) image.Point {
	return p.Add(d.Offset())
}

// Adjacent is true if a,b are 4-neighbours (Manhattan distance 1)
func Adjacent(a, b image.Point) bool {
	d := a.Sub(b)
	return abs(d.X)+abs(d.Y) == 1
}

// Between returns the start corner & size of the area spanned by two
// opposite corners. The start is the min on each axis & the size is the
// absolute difference, so the corners themselves are both *on* the area
// edge rather than one of them sitting outside it.
func Between(a, b image.Point) (image.Point, image.Point) {
	start := image.Pt(min(a.X, b.X), min(a.Y, b.Y))
	size := image.Pt(abs(a.X-b.X), abs(a.Y-b.Y))
	return start, size
}

// Inclusive returns the half-open rectangle covering both corners a,b
func Inclusive(a, b image.Point) image.Rectangle {
	start, size := Between(a, b)
	return image.Rectangle{Min: start, Max: start.Add(size).Add(image.Pt(1, 1))}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
