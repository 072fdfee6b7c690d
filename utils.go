package electropolis

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"sort"
)

// normalizeRotation converts a rotation into a quarter-turn count in [0,3].
// Large multiples of 90 are treated as degrees.
func normalizeRotation(r int) int {
	if r%90 == 0 && (r > 3 || r < -3) {
		r = r / 90
	}
	r %= 4
	if r < 0 {
		r += 4
	}
	return r
}

// rectCells returns every cell within r, row by row
func rectCells(r image.Rectangle) []image.Point {
	if r.Empty() {
		return []image.Point{}
	}
	out := make([]image.Point, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			out = append(out, image.Pt(x, y))
		}
	}
	return out
}

// sortCells orders cells by y then x, so output doesn't depend on map
// iteration order
func sortCells(in []image.Point) {
	sort.Slice(in, func(a, b int) bool {
		if in[a].Y != in[b].Y {
			return in[a].Y < in[b].Y
		}
		return in[a].X < in[b].X
	})
}

// sortVisuals orders road visuals the same way as sortCells
func sortVisuals(in []RoadVisual) {
	sort.Slice(in, func(a, b int) bool {
		if in[a].Cell.Y != in[b].Cell.Y {
			return in[a].Cell.Y < in[b].Cell.Y
		}
		return in[a].Cell.X < in[b].Cell.X
	})
}

// savePNG to disk
func savePNG(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, buff.Bytes(), 0644)
}
