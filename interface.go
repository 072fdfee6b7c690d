package electropolis

import (
	"image"

	"github.com/golang/geo/r3"
)

// Layout maps between world space & grid cells.
// The builder never converts coordinates itself; whatever engine / window
// hosts the grid knows how its cells sit in the world.
type Layout interface {
	// WorldToCell returns the cell containing the given world point
	WorldToCell(p r3.Vector) image.Point

	// CellCenter returns the world position at the centre of a cell
	CellCenter(c image.Point) r3.Vector
}

// Pointer tells us where the user is currently pointing.
type Pointer interface {
	// WorldPosition returns where the pointer hits the world, false if it
	// hits nothing (off the map, over some UI, etc).
	WorldPosition() (r3.Vector, bool)
}

// Renderer draws whatever the builder wants shown.
// The builder only tells the renderer *what* changed; instancing, styling
// & destroying visuals is the renderer's business.
type Renderer interface {
	// ShowPlacement is called whenever a pending placement appears, moves or
	// rotates.
	ShowPlacement(p *Placement)

	// HidePlacement is called when a pending placement is done with, either
	// because it was committed or because it was thrown away.
	HidePlacement(p *Placement, committed bool)

	// DrawSelection asks for the zone preview rectangle to be (re)drawn
	DrawSelection(area image.Rectangle)

	// ClearSelection removes any zone preview rectangle
	ClearSelection()

	// RebuildRoads hands over every road visual that should now exist.
	// Anything drawn by a previous call should be replaced.
	RebuildRoads(roads []RoadVisual)

	// MarkTiles is called when cells become occupied
	MarkTiles(cells []image.Point, kind Kind)
}

// NopRenderer meets the Renderer interface & does nothing at all
type NopRenderer struct{}

func (NopRenderer) ShowPlacement(*Placement) {}
func (NopRenderer) HidePlacement(*Placement, bool) {}
func (NopRenderer) DrawSelection(image.Rectangle) {}
func (NopRenderer) ClearSelection() {}
func (NopRenderer) RebuildRoads([]RoadVisual) {}
func (NopRenderer) MarkTiles([]image.Point, Kind) {}
