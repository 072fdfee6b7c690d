package electropolis

import (
	"image"
	"math"

	"github.com/google/uuid"
)

// NoCell is the "nothing selected" cell. It sits so far out that no sane
// grid will ever contain it.
var NoCell = image.Point{X: math.MinInt32, Y: math.MinInt32}

// Kind is what occupies a cell
type Kind string

const (
	KindBlock Kind = "block"
	KindZone  Kind = "zone"
	KindRoad  Kind = "road"
)

const (
	// bit numbers for our per-cell bitmap
	bitBlock = 0
	bitZone  = 1
	bitRoad  = 2
)

// bit returns the flag bit used to mark cells of this kind, -1 if unknown
func (k Kind) bit() int {
	switch k {
	case KindBlock:
		return bitBlock
	case KindZone:
		return bitZone
	case KindRoad:
		return bitRoad
	}
	return -1
}

// kindForBit is the inversion of Kind.bit()
func kindForBit(bit int) Kind {
	switch bit {
	case bitBlock:
		return KindBlock
	case bitZone:
		return KindZone
	case bitRoad:
		return KindRoad
	}
	return ""
}

// BuildStats holds generic stats about what has been built
type BuildStats struct {
	// Count of constructions of a given kind
	ByKind map[Kind]int

	// Count of constructions of a given classification (blocks & zones)
	ByClass map[Classification]int `json:",omitempty"`

	// Number of cells marked taken
	Cells int
}

// newBuildStats returns blank BuildStats
func newBuildStats() *BuildStats {
	return &BuildStats{ByKind: map[Kind]int{}, ByClass: map[Classification]int{}}
}

// record a new construction covering n cells
func (s *BuildStats) record(c *Construction, n int) {
	count, _ := s.ByKind[c.Kind]
	s.ByKind[c.Kind] = count + 1
	if c.Class != Unclassed {
		count, _ = s.ByClass[c.Class]
		s.ByClass[c.Class] = count + 1
	}
	s.Cells += n
}

// Count returns the number of constructions of kind k
func (s *BuildStats) Count(k Kind) int {
	count, _ := s.ByKind[k]
	return count
}

// Construction is a committed block, zone or road.
type Construction struct {
	// ID unique to this construction
	ID uuid.UUID

	Kind Kind

	// set for blocks
	Prefab   string `json:",omitempty"`
	Rotation int    `json:",omitempty"`

	// set for blocks & zones
	Class Classification `json:",omitempty"`

	// Area covered by blocks & zones
	Area image.Rectangle

	// Cells covered by a road, in path order
	Cells []image.Point `json:",omitempty"`
}

// Placement is a block that has been selected but not yet committed
// to the grid.
type Placement struct {
	Prefab *Prefab

	// Anchor is the min (x,y) corner of the footprint
	Anchor image.Point

	// Rotation in quarter turns [0,3]
	Rotation int
}

// newPlacement returns a placement of p at the given anchor
func newPlacement(p *Prefab, anchor image.Point) *Placement {
	return &Placement{Prefab: p, Anchor: anchor}
}

// Size returns the footprint width & depth taking rotation into account.
// A quarter turn swaps width & depth.
func (p *Placement) Size() image.Point {
	if p.Rotation%2 == 1 {
		return image.Pt(p.Prefab.Depth, p.Prefab.Width)
	}
	return image.Pt(p.Prefab.Width, p.Prefab.Depth)
}

// Footprint returns the exact area the placement will occupy
func (p *Placement) Footprint() image.Rectangle {
	return image.Rectangle{Min: p.Anchor, Max: p.Anchor.Add(p.Size())}
}

// clearance returns the area that must be free for the placement to be
// committed. It's the footprint grown by a cell along the max x & y edges
// so that blocks can't be placed flush against each other on those sides.
func (p *Placement) clearance() image.Rectangle {
	f := p.Footprint()
	f.Max = f.Max.Add(image.Pt(1, 1))
	return f
}

// rotate by one quarter turn
func (p *Placement) rotate() {
	p.Rotation = normalizeRotation(p.Rotation + 1)
}

// RoadVisual is everything a renderer needs to draw one road cell
type RoadVisual struct {
	Cell  image.Point
	Shape RoadShape

	// Asset configured for this shape (see BuilderConfig.RoadVisuals)
	Asset string

	// Temporary visuals are previews, expect them to be replaced shortly
	Temporary bool
}
