package electropolis

import (
	"image"

	"github.com/golang/geo/r3"
)

// recorder is a Renderer that remembers what it was told
type recorder struct {
	shown     []Placement
	hidden    []Placement
	committed []bool
	selection []image.Rectangle
	cleared   int
	roads     [][]RoadVisual
	tiles     map[image.Point]Kind
}

func newRecorder() *recorder {
	return &recorder{tiles: map[image.Point]Kind{}}
}

func (r *recorder) ShowPlacement(p *Placement) { r.shown = append(r.shown, *p) }

func (r *recorder) HidePlacement(p *Placement, committed bool) {
	r.hidden = append(r.hidden, *p)
	r.committed = append(r.committed, committed)
}

func (r *recorder) DrawSelection(area image.Rectangle) { r.selection = append(r.selection, area) }

func (r *recorder) ClearSelection() { r.cleared++ }

func (r *recorder) RebuildRoads(roads []RoadVisual) { r.roads = append(r.roads, roads) }

func (r *recorder) MarkTiles(cells []image.Point, kind Kind) {
	for _, c := range cells {
		r.tiles[c] = kind
	}
}

// lastRoads returns the most recent road visuals
func (r *recorder) lastRoads() []RoadVisual {
	if len(r.roads) == 0 {
		return nil
	}
	return r.roads[len(r.roads)-1]
}

// fixedPointer points at the centre of a cell on a unit PlaneLayout
type fixedPointer struct {
	at  image.Point
	hit bool
}

func (p *fixedPointer) WorldPosition() (r3.Vector, bool) {
	if !p.hit {
		return r3.Vector{}, false
	}
	return r3.Vector{X: float64(p.at.X) + 0.5, Z: float64(p.at.Y) + 0.5}, true
}

func (p *fixedPointer) moveTo(c image.Point) {
	p.at = c
	p.hit = true
}

func pts(in ...int) []image.Point {
	out := make([]image.Point, 0, len(in)/2)
	for i := 0; i+1 < len(in); i += 2 {
		out = append(out, image.Pt(in[i], in[i+1]))
	}
	return out
}

func samePoints(a, b []image.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
