package electropolis

import (
	"image"

	"github.com/GerardoBelic/Electropolis/internal/cell"

	"github.com/pkg/errors"
	"github.com/zyedidia/generic/mapset"
)

// Permanence says whether roads handed to RoadNetwork.Add are a preview or
// the real thing.
type Permanence int

const (
	// Permanent roads are committed to the network
	Permanent Permanence = iota

	// Temporary roads are a preview. Each temporary Add replaces the last
	// and none of them change the permanent network.
	Temporary
)

// roadNode is a single road cell in the network.
// Neighbours aren't held as pointers; links[d] records that the cell one
// step in direction d is also in the network, & the node itself is found
// by looking that cell up.
type roadNode struct {
	cell  image.Point
	links [4]bool // indexed by cell.Direction
	shape RoadShape
}

// RoadNetwork holds every road cell & keeps track of how each connects to
// its neighbours.
//
// Any structural change (adding or removing cells) triggers a full pass
// over every node to refresh links & shapes, after which the renderer is
// handed the complete set of road visuals.
type RoadNetwork struct {
	nodes   map[image.Point]*roadNode
	preview mapset.Set[image.Point]

	visuals  map[RoadShape]string
	renderer Renderer

	// last set of visuals handed to the renderer
	last []RoadVisual
}

// NewRoadNetwork returns an empty network. Every RoadShape must be mapped to
// a visual asset.
func NewRoadNetwork(visuals map[RoadShape]string, r Renderer) (*RoadNetwork, error) {
	for _, s := range AllRoadShapes() {
		asset, ok := visuals[s]
		if !ok || asset == "" {
			return nil, errors.Wrapf(ErrMissingRoadVisual, "road shape %s", s)
		}
	}
	if r == nil {
		r = NopRenderer{}
	}

	mapped := make(map[RoadShape]string, len(visuals))
	for k, v := range visuals {
		mapped[k] = v
	}

	return &RoadNetwork{
		nodes:    map[image.Point]*roadNode{},
		preview:  mapset.New[image.Point](),
		visuals:  mapped,
		renderer: r,
		last:     []RoadVisual{},
	}, nil
}

// Add places road cells.
//
// Permanent cells not already present become new nodes (present cells are
// left as they are) & any preview is dropped. Temporary cells replace the
// current preview.
func (n *RoadNetwork) Add(cells []image.Point, p Permanence) {
	if p == Temporary {
		n.preview = mapset.New[image.Point]()
		for _, c := range cells {
			n.preview.Put(c)
		}
		n.notify()
		return
	}

	changed := n.preview.Size() > 0
	n.preview = mapset.New[image.Point]()

	for _, c := range cells {
		if _, ok := n.nodes[c]; ok {
			continue
		}
		n.nodes[c] = &roadNode{cell: c, shape: Closed}
		changed = true
	}
	if !changed {
		return
	}

	n.relink()
	n.notify()
}

// Remove deletes the road at c, if there is one
func (n *RoadNetwork) Remove(c image.Point) {
	if _, ok := n.nodes[c]; !ok {
		return
	}
	delete(n.nodes, c)
	n.relink()
	n.notify()
}

// ClearPreview drops any temporary roads
func (n *RoadNetwork) ClearPreview() {
	if n.preview.Size() == 0 {
		return
	}
	n.preview = mapset.New[image.Point]()
	n.notify()
}

// Has returns if there is a (permanent) road at c
func (n *RoadNetwork) Has(c image.Point) bool {
	_, ok := n.nodes[c]
	return ok
}

// Len returns the number of permanent road cells
func (n *RoadNetwork) Len() int {
	return len(n.nodes)
}

// PreviewLen returns the number of temporary road cells
func (n *RoadNetwork) PreviewLen() int {
	return n.preview.Size()
}

// Shape returns the shape of the road at c
func (n *RoadNetwork) Shape(c image.Point) (RoadShape, bool) {
	node, ok := n.nodes[c]
	if !ok {
		return Closed, false
	}
	return node.shape, true
}

// Neighbour returns the road cell linked to c in direction d
func (n *RoadNetwork) Neighbour(c image.Point, d cell.Direction) (image.Point, bool) {
	node, ok := n.nodes[c]
	if !ok || !node.links[d] {
		return NoCell, false
	}
	next := cell.Step(c, d)
	if _, ok := n.nodes[next]; !ok { // links are always refreshed, but .. just in case
		return NoCell, false
	}
	return next, true
}

// Neighbours returns every road cell linked to c (north, south, east, west order)
func (n *RoadNetwork) Neighbours(c image.Point) []image.Point {
	out := []image.Point{}
	for _, d := range cell.Directions {
		if next, ok := n.Neighbour(c, d); ok {
			out = append(out, next)
		}
	}
	return out
}

// Cells returns all permanent road cells ordered by y then x
func (n *RoadNetwork) Cells() []image.Point {
	out := make([]image.Point, 0, len(n.nodes))
	for c := range n.nodes {
		out = append(out, c)
	}
	sortCells(out)
	return out
}

// Visuals returns the visuals last handed to the renderer
func (n *RoadNetwork) Visuals() []RoadVisual {
	out := make([]RoadVisual, len(n.last))
	copy(out, n.last)
	return out
}

// relink refreshes links & shapes of every permanent node
func (n *RoadNetwork) relink() {
	for c, node := range n.nodes {
		for _, d := range cell.Directions {
			_, ok := n.nodes[cell.Step(c, d)]
			node.links[d] = ok
		}
		node.shape = classifyRoad(node.links)
	}
}

// notify hands the renderer every road visual.
// Previews are classified as if they were joined to the permanent network,
// but this never touches the permanent nodes themselves.
func (n *RoadNetwork) notify() {
	visuals := make([]RoadVisual, 0, len(n.nodes)+n.preview.Size())

	if n.preview.Size() == 0 {
		for c, node := range n.nodes {
			visuals = append(visuals, RoadVisual{Cell: c, Shape: node.shape, Asset: n.visuals[node.shape]})
		}
	} else {
		present := func(c image.Point) bool {
			_, ok := n.nodes[c]
			return ok || n.preview.Has(c)
		}
		add := func(c image.Point, temp bool) {
			var links [4]bool
			for _, d := range cell.Directions {
				links[d] = present(cell.Step(c, d))
			}
			shape := classifyRoad(links)
			visuals = append(visuals, RoadVisual{Cell: c, Shape: shape, Asset: n.visuals[shape], Temporary: temp})
		}

		for c := range n.nodes {
			add(c, false)
		}
		n.preview.Each(func(c image.Point) {
			if _, ok := n.nodes[c]; ok {
				return
			}
			add(c, true)
		})
	}

	sortVisuals(visuals)
	n.last = visuals
	n.renderer.RebuildRoads(visuals)
}
