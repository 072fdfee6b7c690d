package electropolis

import (
	"image"

	"github.com/GerardoBelic/Electropolis/internal/cell"

	"github.com/golang/geo/r3"
)

// ConstructionMode is the kind of construction the builder is doing.
type ConstructionMode string

const (
	Idle           ConstructionMode = "idle"            // nothing, commands are ignored
	BlockPlacement ConstructionMode = "block-placement" // select, rotate, drag & confirm blocks
	ZonePainting   ConstructionMode = "zone-painting"   // drag out rectangular zones
	RoadPlacement  ConstructionMode = "road-placement"  // draw straight or L shaped roads
)

// AllConstructionModes returns all known ConstructionMode enums
func AllConstructionModes() []ConstructionMode {
	return []ConstructionMode{Idle, BlockPlacement, ZonePainting, RoadPlacement}
}

// mode is one state of the builder's state machine.
// enter is called as the builder switches to the mode & must leave it with
// fresh transient state. exit is called as the builder switches away &
// must throw away (never commit) anything in flight.
type mode interface {
	kind() ConstructionMode
	enter()
	exit()
	cancel()
}

// dragMode is a mode driven by start / end cells (zones & roads)
type dragMode interface {
	mode
	start(c image.Point) bool
	end(c image.Point) bool
}

// idleMode does nothing at all
type idleMode struct{}

func (idleMode) kind() ConstructionMode { return Idle }
func (idleMode) enter() {}
func (idleMode) exit() {}
func (idleMode) cancel() {}

// blockMode places one prefab at a time.
type blockMode struct {
	b       *Builder
	pending *Placement
}

func (m *blockMode) kind() ConstructionMode { return BlockPlacement }

func (m *blockMode) enter() {
	m.pending = nil
}

func (m *blockMode) exit() {
	m.cancel()
}

// cancel throws away the pending placement, if any
func (m *blockMode) cancel() {
	if m.pending == nil {
		return
	}
	p := m.pending
	m.pending = nil
	m.b.renderer.HidePlacement(p, false)
	m.b.logger.Printf("block %s discarded", p.Prefab.ID)
}

// selectPrefab begins placing the given prefab at the cell under the world
// origin. Ignored if something is already pending.
func (m *blockMode) selectPrefab(id string) bool {
	if m.pending != nil {
		return false
	}
	p, ok := m.b.cfg.prefab(id)
	if !ok || p.Locked || p.Placement != Building {
		return false
	}
	m.pending = newPlacement(p, m.b.layout.WorldToCell(r3.Vector{}))
	m.b.renderer.ShowPlacement(m.pending)
	return true
}

func (m *blockMode) rotate() bool {
	if m.pending == nil {
		return false
	}
	m.pending.rotate()
	m.b.renderer.ShowPlacement(m.pending)
	return true
}

func (m *blockMode) dragTo(c image.Point) bool {
	if m.pending == nil || c == NoCell {
		return false
	}
	m.pending.Anchor = c
	m.b.renderer.ShowPlacement(m.pending)
	return true
}

// confirm commits the pending placement if there's room for it. If there
// isn't, the placement is thrown away rather than offered again.
// The footprint must be on the grid; the clearance margin past the grid
// edge counts as free.
func (m *blockMode) confirm() bool {
	if m.pending == nil {
		return false
	}
	p := m.pending

	bounds := m.b.grid.Bounds()
	ok := p.Footprint().In(bounds) && m.b.grid.IsAreaFree(p.clearance().Intersect(bounds))
	if ok {
		m.b.commitBlock(p)
	} else {
		m.b.logger.Printf("block %s at %v collides, discarded", p.Prefab.ID, p.Anchor)
	}

	m.pending = nil
	m.b.renderer.HidePlacement(p, ok)
	return ok
}

// zoneMode paints rectangles between an anchor & wherever the pointer is.
type zoneMode struct {
	b      *Builder
	anchor image.Point
}

func (m *zoneMode) kind() ConstructionMode { return ZonePainting }

func (m *zoneMode) enter() {
	m.anchor = NoCell
}

func (m *zoneMode) exit() {
	m.cancel()
}

func (m *zoneMode) cancel() {
	m.b.loop.Stop()
	if m.anchor == NoCell {
		return
	}
	m.anchor = NoCell
	m.b.renderer.ClearSelection()
}

func (m *zoneMode) start(c image.Point) bool {
	if c == NoCell {
		return false
	}
	m.cancel()
	m.anchor = c
	m.b.renderer.DrawSelection(cell.Inclusive(c, c))
	m.b.loop.Start(m.preview)
	return true
}

// preview redraws the selection out to the pointer
func (m *zoneMode) preview() {
	if m.anchor == NoCell {
		m.b.loop.Stop()
		return
	}
	c, ok := m.b.pointerCell()
	if !ok {
		return
	}
	m.b.renderer.DrawSelection(cell.Inclusive(m.anchor, c))
}

func (m *zoneMode) end(c image.Point) bool {
	if m.anchor == NoCell {
		m.cancel()
		return false
	}
	m.b.loop.Stop()

	ok := false
	if c != NoCell {
		area := cell.Inclusive(m.anchor, c)
		ok = m.b.grid.IsAreaFree(area)
		if ok {
			m.b.commitZone(area)
		} else {
			m.b.logger.Printf("zone %v collides, discarded", area)
		}
	}

	m.cancel()
	return ok
}

// roadMode draws roads from an anchor to wherever the pointer is.
type roadMode struct {
	b      *Builder
	anchor image.Point
	bias   Bias
}

func (m *roadMode) kind() ConstructionMode { return RoadPlacement }

func (m *roadMode) enter() {
	m.anchor = NoCell
	m.bias = Left
}

func (m *roadMode) exit() {
	m.cancel()
}

func (m *roadMode) cancel() {
	m.b.loop.Stop()
	m.anchor = NoCell
	m.b.roads.ClearPreview()
}

func (m *roadMode) start(c image.Point) bool {
	if !c.In(m.b.grid.Bounds()) {
		return false
	}
	m.cancel()
	m.anchor = c
	m.b.roads.Add([]image.Point{c}, Temporary)
	m.b.loop.Start(m.preview)
	return true
}

// preview re-resolves the road out to the pointer. Pointer cells off the
// grid are skipped; the last preview stays up.
func (m *roadMode) preview() {
	if m.anchor == NoCell {
		m.b.loop.Stop()
		return
	}
	c, ok := m.b.pointerCell()
	if !ok || !c.In(m.b.grid.Bounds()) {
		return
	}
	m.b.roads.Add(ResolveRoad(m.anchor, c, m.bias), Temporary)
}

func (m *roadMode) toggleBias() bool {
	if m.anchor == NoCell {
		return false
	}
	m.bias = m.bias.Toggle()
	return true
}

func (m *roadMode) end(c image.Point) bool {
	if m.anchor == NoCell {
		m.cancel()
		return false
	}
	m.b.loop.Stop()

	ok := false
	if c.In(m.b.grid.Bounds()) {
		path := ResolveRoad(m.anchor, c, m.bias)
		ok = len(path) > 0 && m.b.grid.IsCellsFree(path)
		if ok {
			m.b.commitRoad(path)
		} else {
			m.b.logger.Printf("road %v -> %v collides, discarded", m.anchor, c)
		}
	}

	m.cancel()
	return ok
}
