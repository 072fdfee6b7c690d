package electropolis

import (
	"encoding/json"
	"image"
	"io"
	"log"
	"os"
	"time"

	"github.com/GerardoBelic/Electropolis/internal/preview"

	"github.com/golang/geo/r3"
	"github.com/google/uuid"
)

// Builder is the construction mode state machine.
//
// Exactly one mode is active at a time. Commands that make no sense for the
// active mode (or its current state) are ignored. Switching modes always
// throws away whatever the previous mode had in flight before the new mode
// starts, so an unconfirmed operation is never half applied.
//
// A Builder is not safe for concurrent use; the host is expected to call
// commands & Tick from its one update loop.
type Builder struct {
	cfg      *BuilderConfig
	layout   Layout
	pointer  Pointer
	renderer Renderer
	logger   *log.Logger

	grid  *Grid
	roads *RoadNetwork
	loop  *preview.Loop

	active mode
	modes  map[ConstructionMode]mode

	zoneClass Classification

	// every committed construction, in order
	History []*Construction
	Stats   *BuildStats
}

// New creates a new Builder given configuration & collaborators.
// A nil layout lays the grid on the XZ plane, a nil pointer never points at
// anything & a nil renderer draws nothing.
func New(cfg *BuilderConfig, layout Layout, pointer Pointer, r Renderer) (*Builder, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	if layout == nil {
		layout = &PlaneLayout{CellSize: cfg.CellSize}
	}
	if pointer == nil {
		pointer = nowhere{}
	}
	if r == nil {
		r = NopRenderer{}
	}

	roads, err := NewRoadNetwork(cfg.RoadVisuals, r)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		cfg:       cfg,
		layout:    layout,
		pointer:   pointer,
		renderer:  r,
		logger:    log.New(io.Discard, "[electropolis] ", log.LstdFlags),
		grid:      NewGrid(cfg.Area),
		roads:     roads,
		loop:      preview.New(cfg.PreviewRateHz),
		zoneClass: cfg.ZoneClass,
		History:   []*Construction{},
		Stats:     newBuildStats(),
	}

	b.modes = map[ConstructionMode]mode{
		Idle:           idleMode{},
		BlockPlacement: &blockMode{b: b},
		ZonePainting:   &zoneMode{b: b},
		RoadPlacement:  &roadMode{b: b},
	}
	for _, m := range b.modes {
		m.enter()
	}
	b.active = b.modes[Idle]

	return b, nil
}

// SetLogger sets where the builder logs to. Logs are discarded by default.
func (b *Builder) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	b.logger = l
}

// Grid returns the occupancy grid
func (b *Builder) Grid() *Grid {
	return b.grid
}

// Roads returns the road network
func (b *Builder) Roads() *RoadNetwork {
	return b.roads
}

// Prefabs returns all configured prefabs ordered by classification
func (b *Builder) Prefabs() []*Prefab {
	out := make([]*Prefab, len(b.cfg.Prefabs))
	copy(out, b.cfg.Prefabs)
	sortPrefabs(out)
	return out
}

// Mode returns the active mode
func (b *Builder) Mode() ConstructionMode {
	return b.active.kind()
}

// SetMode switches to mode m. The active mode's operation (if any) is
// cancelled first, then m starts fresh. Returns false if m is unknown or
// already active.
func (b *Builder) SetMode(m ConstructionMode) bool {
	next, ok := b.modes[m]
	if !ok || next == b.active {
		return false
	}

	prev := b.active
	prev.exit()
	b.loop.Stop() // no mode's preview outlives the mode

	b.active = next
	next.enter()

	b.logger.Printf("mode %s -> %s", prev.kind(), next.kind())
	return true
}

// Cancel throws away whatever the active mode has in flight
func (b *Builder) Cancel() {
	b.active.cancel()
}

// Select begins placing the given prefab (block placement only).
// Ignored if a placement is already pending, or the prefab is unknown,
// locked or not a building.
func (b *Builder) Select(prefabID string) bool {
	m, ok := b.active.(*blockMode)
	if !ok {
		return false
	}
	return m.selectPrefab(prefabID)
}

// Rotate turns the pending placement a quarter turn (block placement only)
func (b *Builder) Rotate() bool {
	m, ok := b.active.(*blockMode)
	if !ok {
		return false
	}
	return m.rotate()
}

// DragTo moves the pending placement so its min corner sits at c (block
// placement only). c should already be snapped to the grid.
func (b *Builder) DragTo(c image.Point) bool {
	m, ok := b.active.(*blockMode)
	if !ok {
		return false
	}
	return m.dragTo(c)
}

// Confirm commits the pending placement if it fits (block placement only).
// If it doesn't fit the placement is discarded. Returns true if committed.
func (b *Builder) Confirm() bool {
	m, ok := b.active.(*blockMode)
	if !ok {
		return false
	}
	return m.confirm()
}

// Pending returns a copy of the pending placement, if any
func (b *Builder) Pending() (Placement, bool) {
	m, ok := b.active.(*blockMode)
	if !ok || m.pending == nil {
		return Placement{}, false
	}
	return *m.pending, true
}

// Start anchors a zone or road at c & begins previewing it each Tick.
func (b *Builder) Start(c image.Point) bool {
	m, ok := b.active.(dragMode)
	if !ok {
		return false
	}
	return m.start(c)
}

// End finishes the zone or road begun with Start, committing it at c if
// there's room. Returns true if committed.
func (b *Builder) End(c image.Point) bool {
	m, ok := b.active.(dragMode)
	if !ok {
		return false
	}
	return m.end(c)
}

// Anchor returns the cell given to Start, if a zone or road is in flight
func (b *Builder) Anchor() (image.Point, bool) {
	switch m := b.active.(type) {
	case *zoneMode:
		return m.anchor, m.anchor != NoCell
	case *roadMode:
		return m.anchor, m.anchor != NoCell
	}
	return NoCell, false
}

// ToggleBias flips which corner an L shaped road turns at (road placement
// only, while a road is in flight).
func (b *Builder) ToggleBias() bool {
	m, ok := b.active.(*roadMode)
	if !ok {
		return false
	}
	return m.toggleBias()
}

// Bias returns the current road bias
func (b *Builder) Bias() Bias {
	return b.modes[RoadPlacement].(*roadMode).bias
}

// SetZoneClass sets what zones are painted as from now on
func (b *Builder) SetZoneClass(c Classification) bool {
	if c == Unclassed || !c.Valid() {
		return false
	}
	b.zoneClass = c
	return true
}

// ZoneClass returns what zones are currently painted as
func (b *Builder) ZoneClass() Classification {
	return b.zoneClass
}

// Previewing returns if a zone or road preview is running
func (b *Builder) Previewing() bool {
	return b.loop.Running()
}

// Tick advances any running preview. Hosts call this once per frame.
func (b *Builder) Tick() {
	b.TickAt(time.Now())
}

// TickAt is Tick with an explicit time (used for preview rate limiting)
func (b *Builder) TickAt(now time.Time) {
	b.loop.Tick(now)
}

// JSON returns the construction history & stats as json.
func (b *Builder) JSON() ([]byte, error) {
	return json.Marshal(b)
}

// SaveJSON writes a json file to the given path.
func (b *Builder) SaveJSON(fpath string) error {
	data, err := b.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, data, 0644)
}

// pointerCell returns the cell under the pointer
func (b *Builder) pointerCell() (image.Point, bool) {
	p, ok := b.pointer.WorldPosition()
	if !ok {
		return NoCell, false
	}
	return b.layout.WorldToCell(p), true
}

// commitBlock marks the placement's exact footprint as taken
func (b *Builder) commitBlock(p *Placement) {
	c := &Construction{
		ID:       uuid.New(),
		Kind:     KindBlock,
		Prefab:   p.Prefab.ID,
		Rotation: p.Rotation,
		Class:    p.Prefab.Classification,
		Area:     p.Footprint(),
	}
	marked := b.grid.MarkArea(c.Area, KindBlock, c.Class, len(b.History))
	b.record(c, marked)
}

// commitZone marks area as a zone of the current zone class
func (b *Builder) commitZone(area image.Rectangle) {
	c := &Construction{
		ID:    uuid.New(),
		Kind:  KindZone,
		Class: b.zoneClass,
		Area:  area,
	}
	marked := b.grid.MarkArea(area, KindZone, c.Class, len(b.History))
	b.record(c, marked)
}

// commitRoad marks the path as taken & adds it to the road network
func (b *Builder) commitRoad(path []image.Point) {
	c := &Construction{
		ID:    uuid.New(),
		Kind:  KindRoad,
		Area:  boundsOf(path),
		Cells: path,
	}
	marked := b.grid.MarkCells(path, KindRoad, Unclassed, len(b.History))
	b.roads.Add(path, Permanent)
	b.record(c, marked)
}

// record adds c to our history & tells the renderer which tiles it took
func (b *Builder) record(c *Construction, marked []image.Point) {
	b.History = append(b.History, c)
	b.Stats.record(c, len(marked))
	b.renderer.MarkTiles(marked, c.Kind)
	b.logger.Printf("%s %s committed (%d cells)", c.Kind, c.ID, len(marked))
}

// boundsOf returns the smallest rectangle containing every point
func boundsOf(pts []image.Point) image.Rectangle {
	r := image.Rectangle{}
	for _, p := range pts {
		r = r.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	return r
}

// nowhere is a Pointer that never hits anything
type nowhere struct{}

func (nowhere) WorldPosition() (r3.Vector, bool) {
	return r3.Vector{}, false
}
