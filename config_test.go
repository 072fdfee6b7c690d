package electropolis

import (
	"image"
	"testing"

	"github.com/pkg/errors"
)

const testConfig = `
area:
  min: [-8, -8]
  max: [8, 8]
cell_size: 2.5
zone_class: commerce
preview_rate_hz: 30
prefabs:
  - id: hut
    name: Hut
    classification: residence
    width: 1
    depth: 2
  - id: flowers
    placement: brush
road_visuals:
  closed: a
  end: b
  straight: c
  turn: d
  triple-intersection: e
  quad-intersection: f
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(testConfig))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Area != image.Rect(-8, -8, 8, 8) {
		t.Fatalf("unexpected area %v", cfg.Area)
	}
	if cfg.CellSize != 2.5 || cfg.PreviewRateHz != 30 || cfg.ZoneClass != Commerce {
		t.Fatalf("unexpected config %v", cfg)
	}
	if len(cfg.Prefabs) != 2 {
		t.Fatalf("expected 2 prefabs, got %d", len(cfg.Prefabs))
	}

	hut, ok := cfg.prefab("hut")
	if !ok || hut.Placement != Building || hut.Width != 1 || hut.Depth != 2 {
		t.Fatalf("unexpected hut %v", hut)
	}
	flowers, _ := cfg.prefab("flowers")
	if flowers.Classification != Other || flowers.Placement != Brush {
		t.Fatalf("expected defaults filled in, got %v", flowers)
	}
	if cfg.RoadVisuals[QuadIntersection] != "f" {
		t.Fatalf("unexpected road visuals %v", cfg.RoadVisuals)
	}
}

func TestParseConfigErrors(t *testing.T) {
	cases := []struct {
		Name   string
		Raw    string
		Expect error
	}{
		{
			"missing road shape",
			"area: {min: [0, 0], max: [4, 4]}\nroad_visuals: {closed: a, end: b, straight: c, turn: d, triple-intersection: e}\n",
			ErrMissingRoadVisual,
		},
		{
			"unknown field",
			"area: {min: [0, 0], max: [4, 4]}\nroad_visuals: {}\ncolour: blue\n",
			ErrInvalidConfig,
		},
		{
			"bad zone class",
			"area: {min: [0, 0], max: [4, 4]}\nzone_class: farm\nroad_visuals: {}\n",
			ErrInvalidConfig,
		},
		{
			"empty area",
			"area: {min: [4, 4], max: [4, 4]}\nroad_visuals: {closed: a, end: b, straight: c, turn: d, triple-intersection: e, quad-intersection: f}\n",
			ErrInvalidConfig,
		},
		{
			"building without footprint",
			"area: {min: [0, 0], max: [4, 4]}\nprefabs: [{id: hut}]\nroad_visuals: {closed: a, end: b, straight: c, turn: d, triple-intersection: e, quad-intersection: f}\n",
			ErrInvalidConfig,
		},
	}

	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.Raw))
			if !errors.Is(err, tt.Expect) {
				t.Fatalf("expected %v got %v", tt.Expect, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	cfg.Prefabs = append(cfg.Prefabs, &Prefab{ID: "house", Width: 1, Depth: 1})
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected duplicate prefab to be refused, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.RoadVisuals[RoadShape("roundabout")] = "x"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected unknown road shape to be refused, got %v", err)
	}

	cfg = &BuilderConfig{Area: image.Rect(0, 0, 1, 1), RoadVisuals: DefaultConfig().RoadVisuals}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.CellSize != 1 || cfg.ZoneClass != Residence {
		t.Fatalf("expected defaults, got %v", cfg)
	}
}

func TestPrefabsSorted(t *testing.T) {
	b, err := New(nil, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	prefabs := b.Prefabs()
	for i := 1; i < len(prefabs); i++ {
		if prefabs[i-1].Classification.ID() > prefabs[i].Classification.ID() {
			t.Fatalf("expected prefabs ordered by classification, got %s before %s", prefabs[i-1].ID, prefabs[i].ID)
		}
	}
}
