package electropolis

import (
	"image"

	"github.com/GerardoBelic/Electropolis/internal/line"
)

// Bias picks which of the two possible elbows an L shaped road uses.
type Bias int

const (
	// Left puts the corner at (begin.x, end.y); leave begin vertically first
	Left Bias = iota

	// Right puts the corner at (end.x, begin.y); leave begin horizontally first
	Right
)

// Toggle returns the other bias
func (b Bias) Toggle() Bias {
	if b == Left {
		return Right
	}
	return Left
}

// String for logging
func (b Bias) String() string {
	if b == Left {
		return "left"
	}
	return "right"
}

// ResolveRoad returns the cells of a road running from begin to end.
//
// Straight roads (begin & end share an x or a y) are returned in ascending
// order along their axis. Anything else becomes an L: two straight runs
// meeting at a corner chosen by bias, walked from begin, through the corner,
// to end. Either way each cell appears once and consecutive cells are
// 4-neighbours.
//
// If either end is NoCell there is no road.
func ResolveRoad(begin, end image.Point, bias Bias) []image.Point {
	if begin == NoCell || end == NoCell {
		return []image.Point{}
	}

	if pts, ok := line.Axis(begin, end); ok {
		return pts
	}

	corner := image.Pt(end.X, begin.Y)
	if bias == Left {
		corner = image.Pt(begin.X, end.Y)
	}

	first := ResolveRoad(begin, corner, bias)
	if first[0] != begin {
		line.Reverse(first)
	}
	second := ResolveRoad(corner, end, bias)
	if second[0] != corner {
		line.Reverse(second)
	}

	// second[0] is the corner, which first already ends with
	return append(first, second[1:]...)
}
