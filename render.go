package electropolis

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// ColourScheme defines how the ImageRenderer colours things
type ColourScheme struct {
	Background color.Color
	Tiles      map[Kind]color.Color
	Roads      map[RoadShape]color.Color
	Preview    color.Color // temporary roads
	Selection  color.Color // zone preview outline
	Placement  color.Color // pending block outline
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Background: colornames.Darkolivegreen,
		Tiles: map[Kind]color.Color{
			KindBlock: colornames.Whitesmoke,
			KindZone:  colornames.Lightgreen,
			KindRoad:  colornames.Dimgray,
		},
		Roads: map[RoadShape]color.Color{
			Closed:             colornames.Darkgray,
			End:                colornames.Gray,
			Straight:           colornames.Dimgray,
			Turn:               colornames.Slategray,
			TripleIntersection: colornames.Darkslategray,
			QuadIntersection:   colornames.Black,
		},
		Preview:   colornames.Gold,
		Selection: colornames.Yellow,
		Placement: colornames.Crimson,
	}
}

// ImageRenderer is a Renderer that keeps track of what it's told to draw &
// can rasterise it all to an image (top-down, north up).
// Handy for debugging & for hosts without a real engine.
type ImageRenderer struct {
	bounds image.Rectangle
	scale  int
	scheme *ColourScheme

	tiles     map[image.Point]Kind
	roads     []RoadVisual
	selection image.Rectangle
	placement *Placement
}

// NewImageRenderer returns a renderer for a grid with the given bounds,
// drawing each cell as a scale x scale square. The scheme must have a
// colour for every RoadShape.
func NewImageRenderer(bounds image.Rectangle, scale int, scheme *ColourScheme) (*ImageRenderer, error) {
	if scheme == nil {
		scheme = DefaultScheme()
	}
	for _, s := range AllRoadShapes() {
		if _, ok := scheme.Roads[s]; !ok {
			return nil, errors.Wrapf(ErrMissingRoadVisual, "no colour for road shape %s", s)
		}
	}
	if scale < 1 {
		scale = 1
	}
	return &ImageRenderer{
		bounds: bounds,
		scale:  scale,
		scheme: scheme,
		tiles:  map[image.Point]Kind{},
		roads:  []RoadVisual{},
	}, nil
}

// ShowPlacement records the pending placement
func (r *ImageRenderer) ShowPlacement(p *Placement) {
	cp := *p
	r.placement = &cp
}

// HidePlacement forgets the pending placement
func (r *ImageRenderer) HidePlacement(p *Placement, committed bool) {
	r.placement = nil
}

// DrawSelection records the zone preview area
func (r *ImageRenderer) DrawSelection(area image.Rectangle) {
	r.selection = area
}

// ClearSelection forgets the zone preview area
func (r *ImageRenderer) ClearSelection() {
	r.selection = image.Rectangle{}
}

// RebuildRoads replaces all road visuals
func (r *ImageRenderer) RebuildRoads(roads []RoadVisual) {
	r.roads = make([]RoadVisual, len(roads))
	copy(r.roads, roads)
}

// MarkTiles records taken cells
func (r *ImageRenderer) MarkTiles(cells []image.Point, kind Kind) {
	for _, c := range cells {
		r.tiles[c] = kind
	}
}

// Image draws everything we've been told about
func (r *ImageRenderer) Image() image.Image {
	dc := gg.NewContext(r.bounds.Dx()*r.scale, r.bounds.Dy()*r.scale)
	dc.SetColor(r.scheme.Background)
	dc.Clear()

	for c, kind := range r.tiles {
		col, ok := r.scheme.Tiles[kind]
		if !ok {
			continue
		}
		r.fillCell(dc, c, col)
	}

	for _, road := range r.roads {
		col := r.scheme.Roads[road.Shape]
		if road.Temporary {
			col = r.scheme.Preview
		}
		r.fillCell(dc, road.Cell, col)
	}

	if !r.selection.Empty() {
		r.outline(dc, r.selection, r.scheme.Selection)
	}
	if r.placement != nil {
		r.outline(dc, r.placement.Footprint(), r.scheme.Placement)
	}

	return dc.Image()
}

// SavePNG draws & writes the image to disk
func (r *ImageRenderer) SavePNG(fpath string) error {
	return savePNG(fpath, r.Image())
}

// toPixel returns the top left pixel of cell c. Image y runs down, grid y
// runs north, so we flip.
func (r *ImageRenderer) toPixel(c image.Point) (float64, float64) {
	x := (c.X - r.bounds.Min.X) * r.scale
	y := (r.bounds.Max.Y - 1 - c.Y) * r.scale
	return float64(x), float64(y)
}

func (r *ImageRenderer) fillCell(dc *gg.Context, c image.Point, col color.Color) {
	x, y := r.toPixel(c)
	dc.SetColor(col)
	dc.DrawRectangle(x, y, float64(r.scale), float64(r.scale))
	dc.Fill()
}

func (r *ImageRenderer) outline(dc *gg.Context, area image.Rectangle, col color.Color) {
	// area.Max is exclusive; the top left pixel of the rect is the cell at
	// (Min.X, Max.Y-1) once flipped
	x, y := r.toPixel(image.Pt(area.Min.X, area.Max.Y-1))
	dc.SetColor(col)
	dc.SetLineWidth(2)
	dc.DrawRectangle(x, y, float64(area.Dx()*r.scale), float64(area.Dy()*r.scale))
	dc.Stroke()
}
