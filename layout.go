package electropolis

import (
	"image"
	"math"

	"github.com/golang/geo/r3"
)

// PlaneLayout lays the grid flat on the world's XZ plane (Y is up).
// Cell (0,0) has its min corner at Origin; cell x runs along world X &
// cell y along world Z.
type PlaneLayout struct {
	Origin   r3.Vector
	CellSize float64 // 1 if not set
}

// WorldToCell returns the cell p falls in. The height of p is ignored.
func (l *PlaneLayout) WorldToCell(p r3.Vector) image.Point {
	size := l.size()
	return image.Pt(
		int(math.Floor((p.X-l.Origin.X)/size)),
		int(math.Floor((p.Z-l.Origin.Z)/size)),
	)
}

// CellCenter returns the centre of cell c, on the plane
func (l *PlaneLayout) CellCenter(c image.Point) r3.Vector {
	size := l.size()
	return r3.Vector{
		X: l.Origin.X + (float64(c.X)+0.5)*size,
		Y: l.Origin.Y,
		Z: l.Origin.Z + (float64(c.Y)+0.5)*size,
	}
}

func (l *PlaneLayout) size() float64 {
	if l.CellSize <= 0 {
		return 1
	}
	return l.CellSize
}

// RayPointer is a Pointer that finds where a ray (say, from the camera
// through the mouse) hits a horizontal ground plane.
// Hosts call SetRay each frame before ticking the builder.
type RayPointer struct {
	// Height (world Y) of the ground plane
	Height float64

	origin r3.Vector
	dir    r3.Vector
	set    bool
}

// SetRay sets the ray to cast
func (p *RayPointer) SetRay(origin, dir r3.Vector) {
	p.origin = origin
	p.dir = dir
	p.set = true
}

// Clear removes the ray, so the pointer hits nothing
func (p *RayPointer) Clear() {
	p.set = false
}

// WorldPosition returns where the ray meets the ground plane. Rays parallel
// to, or pointing away from, the plane hit nothing.
func (p *RayPointer) WorldPosition() (r3.Vector, bool) {
	if !p.set || math.Abs(p.dir.Y) < 1e-9 {
		return r3.Vector{}, false
	}
	t := (p.Height - p.origin.Y) / p.dir.Y
	if t < 0 {
		return r3.Vector{}, false
	}
	return p.origin.Add(p.dir.Mul(t)), true
}
