package electropolis

import (
	"fmt"
	"image"

	"github.com/GerardoBelic/Electropolis/internal/encoding"

	"github.com/boljen/go-bitmap"
)

// Grid records which cells are taken & by what.
//
// A Grid only ever holds committed constructions; previews live with the
// renderer. Cells outside of the grid bounds are never free & can't be
// marked.
type Grid struct {
	// im is an RGBA64 image where each pixel is one cell, see
	// internal/encoding for how the 64 bits are split up.
	im *image.RGBA64

	// number of taken cells
	taken int
}

// NewGrid returns an empty grid covering bounds
func NewGrid(bounds image.Rectangle) *Grid {
	return &Grid{im: image.NewRGBA64(bounds)}
}

// Bounds returns the area the grid covers
func (g *Grid) Bounds() image.Rectangle {
	return g.im.Bounds()
}

// Taken returns the number of taken cells
func (g *Grid) Taken() int {
	return g.taken
}

// IsAreaFree returns true if every cell in area is inside the grid &
// unmarked. Area is half open, as with all image.Rectangles.
func (g *Grid) IsAreaFree(area image.Rectangle) bool {
	if !area.Empty() && !area.In(g.im.Bounds()) {
		return false
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if g.IsTaken(x, y) {
				return false
			}
		}
	}
	return true
}

// IsCellsFree returns true if none of the given cells are marked & all of
// them are inside the grid.
func (g *Grid) IsCellsFree(cells []image.Point) bool {
	for _, c := range cells {
		if g.isOutOfBounds(c.X, c.Y) || g.IsTaken(c.X, c.Y) {
			return false
		}
	}
	return true
}

// MarkArea marks every cell in area as taken by the given occupant.
// Marking a taken cell is allowed; it keeps its original occupant.
func (g *Grid) MarkArea(area image.Rectangle, kind Kind, class Classification, index int) []image.Point {
	return g.MarkCells(rectCells(area), kind, class, index)
}

// MarkCells marks each of the given cells as taken by the given occupant.
// Returns the cells that were inside the grid (and so actually marked).
func (g *Grid) MarkCells(cells []image.Point, kind Kind, class Classification, index int) []image.Point {
	marked := make([]image.Point, 0, len(cells))
	bit := kind.bit()
	if bit < 0 {
		return marked
	}

	for _, c := range cells {
		if g.isOutOfBounds(c.X, c.Y) {
			continue
		}
		px := g.get(c.X, c.Y)
		bm := bitmap.Bitmap(encoding.ToBytes8(px.Flags))
		if px.Flags == 0 {
			g.taken++
			px.Kind = uint8(bit + 1)
			px.Index = uint32(index + 1)
			px.Class = class.ID()
		}
		bm.Set(bit, true)
		px.Flags = encoding.FromBytes8(bm.Data(false))
		g.set(c.X, c.Y, px)
		marked = append(marked, c)
	}

	return marked
}

// IsTaken returns if anything occupies x,y
func (g *Grid) IsTaken(x, y int) bool {
	if g.isOutOfBounds(x, y) {
		return false
	}
	return g.get(x, y).Flags != 0
}

// IsBlock returns if there is a block at x,y
func (g *Grid) IsBlock(x, y int) bool {
	return g.hasBit(x, y, bitBlock)
}

// IsZone returns if there is a painted zone at x,y
func (g *Grid) IsZone(x, y int) bool {
	return g.hasBit(x, y, bitZone)
}

// IsRoad returns if there is a road at x,y
func (g *Grid) IsRoad(x, y int) bool {
	return g.hasBit(x, y, bitRoad)
}

// Occupant returns what first took x,y: its kind, classification & the index
// of the construction (see Builder.History). Later marks don't change the
// occupant, though they still set their own flag (see IsBlock etc).
// An index of -1 indicates that the cell is free.
func (g *Grid) Occupant(x, y int) (Kind, Classification, int, error) {
	if g.isOutOfBounds(x, y) {
		return "", Unclassed, -1, fmt.Errorf("(%d,%d) is out of bounds", x, y)
	}

	px := g.get(x, y)
	if px.Flags == 0 {
		return "", Unclassed, -1, nil
	}

	return kindForBit(int(px.Kind) - 1), classForID(px.Class), int(px.Index) - 1, nil
}

// Save the grid as is to disk (as a PNG)
func (g *Grid) Save(fpath string) error {
	return savePNG(fpath, g.im)
}

func (g *Grid) hasBit(x, y, bit int) bool {
	if g.isOutOfBounds(x, y) {
		return false
	}
	return bitmap.Bitmap(encoding.ToBytes8(g.get(x, y).Flags)).Get(bit)
}

func (g *Grid) get(x, y int) encoding.Pixel {
	return encoding.Decode(g.im.RGBA64At(x, y))
}

func (g *Grid) set(x, y int, px encoding.Pixel) {
	g.im.SetRGBA64(x, y, encoding.Encode(px))
}

// isOutOfBounds determines if x,y is outside of the grid
func (g *Grid) isOutOfBounds(x, y int) bool {
	return !image.Pt(x, y).In(g.im.Bounds())
}
