package electropolis

import (
	"encoding/json"
	"image"
	"os"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig implies the BuilderConfig cannot be used as is
	ErrInvalidConfig = errors.New("invalid builder config")

	// ErrMissingRoadVisual implies a RoadShape has no visual asset mapped to it
	ErrMissingRoadVisual = errors.New("road shape has no visual")
)

// BuilderConfig outlines everything a Builder needs up front.
type BuilderConfig struct {
	// Area constrains the bounds of the grid (in cells), required
	Area image.Rectangle

	// CellSize is the width of a cell in world units, used by the
	// PlaneLayout the builder falls back to if none is given.
	// 1 if not set.
	CellSize float64

	// Prefabs that can be placed. Building prefabs can be selected in block
	// placement mode.
	Prefabs []*Prefab

	// RoadVisuals maps every RoadShape to the asset a renderer should use
	// to draw it. Every shape is required.
	RoadVisuals map[RoadShape]string

	// ZoneClass is what zones are painted as until Builder.SetZoneClass is
	// called. Residence if not set.
	ZoneClass Classification

	// PreviewRateHz caps how often (per second) zone & road previews are
	// redrawn. 0 or less redraws on every tick.
	PreviewRateHz float64
}

// Validate checks the config makes sense, filling in defaults as it goes.
func (c *BuilderConfig) Validate() error {
	if c.Area.Empty() {
		return errors.Wrap(ErrInvalidConfig, "area is empty")
	}
	if c.CellSize < 0 {
		return errors.Wrapf(ErrInvalidConfig, "cell size %f is negative", c.CellSize)
	} else if c.CellSize == 0 {
		c.CellSize = 1
	}
	if c.PreviewRateHz < 0 {
		c.PreviewRateHz = 0
	}

	if c.ZoneClass == Unclassed {
		c.ZoneClass = Residence
	} else if !c.ZoneClass.Valid() {
		return errors.Wrapf(ErrInvalidConfig, "unknown zone class %q", c.ZoneClass)
	}

	seen := map[string]bool{}
	for i, p := range c.Prefabs {
		if p == nil {
			return errors.Wrapf(ErrInvalidConfig, "prefab %d is nil", i)
		}
		if p.ID == "" {
			return errors.Wrapf(ErrInvalidConfig, "prefab %d has no id", i)
		}
		if seen[p.ID] {
			return errors.Wrapf(ErrInvalidConfig, "prefab %s given more than once", p.ID)
		}
		seen[p.ID] = true

		if p.Placement == "" {
			p.Placement = Building
		}
		switch p.Placement {
		case Building:
			if p.Width < 1 || p.Depth < 1 {
				return errors.Wrapf(ErrInvalidConfig, "prefab %s footprint %dx%d", p.ID, p.Width, p.Depth)
			}
		case Brush:
		default:
			return errors.Wrapf(ErrInvalidConfig, "prefab %s has unknown placement %q", p.ID, p.Placement)
		}

		if p.Classification == Unclassed {
			p.Classification = Other
		} else if !p.Classification.Valid() {
			return errors.Wrapf(ErrInvalidConfig, "prefab %s has unknown classification %q", p.ID, p.Classification)
		}
	}

	for _, s := range AllRoadShapes() {
		asset, ok := c.RoadVisuals[s]
		if !ok || asset == "" {
			return errors.Wrapf(ErrMissingRoadVisual, "road shape %s", s)
		}
	}
	for s := range c.RoadVisuals {
		if !s.Valid() {
			return errors.Wrapf(ErrInvalidConfig, "unknown road shape %q", s)
		}
	}

	return nil
}

// prefab returns the prefab with the given ID
func (c *BuilderConfig) prefab(id string) (*Prefab, bool) {
	for _, p := range c.Prefabs {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// DefaultConfig returns a reasonable config for a small map.
// Nothing here is particularly special.
func DefaultConfig() *BuilderConfig {
	return &BuilderConfig{
		Area:     image.Rect(0, 0, 64, 64),
		CellSize: 1,
		Prefabs: []*Prefab{
			{ID: "house", Name: "House", Tags: []string{"small"}, Classification: Residence, Placement: Building, Width: 2, Depth: 2},
			{ID: "apartments", Name: "Apartments", Classification: Residence, Placement: Building, Width: 3, Depth: 2},
			{ID: "shop", Name: "Corner shop", Tags: []string{"small"}, Classification: Commerce, Placement: Building, Width: 2, Depth: 3},
			{ID: "factory", Name: "Factory", Classification: Industry, Placement: Building, Width: 4, Depth: 3},
			{ID: "firehouse", Name: "Fire station", Classification: Service, Placement: Building, Width: 3, Depth: 3},
			{ID: "stadium", Name: "Stadium", Classification: Other, Placement: Building, Width: 6, Depth: 6, Locked: true},
			{ID: "grass", Name: "Grass", Classification: Other, Placement: Brush},
		},
		RoadVisuals: map[RoadShape]string{
			Closed:             "road-closed",
			End:                "road-end",
			Straight:           "road-straight",
			Turn:               "road-turn",
			TripleIntersection: "road-triple",
			QuadIntersection:   "road-quad",
		},
		ZoneClass: Residence,
	}
}

// configFile is the on-disk (yaml) form of a BuilderConfig
type configFile struct {
	Area struct {
		Min [2]int `yaml:"min"`
		Max [2]int `yaml:"max"`
	} `yaml:"area"`
	CellSize      float64              `yaml:"cell_size"`
	ZoneClass     Classification       `yaml:"zone_class"`
	PreviewRateHz float64              `yaml:"preview_rate_hz"`
	Prefabs       []*Prefab            `yaml:"prefabs"`
	RoadVisuals   map[RoadShape]string `yaml:"road_visuals"`
}

// LoadConfig reads a BuilderConfig from a yaml file
func LoadConfig(fpath string) (*BuilderConfig, error) {
	raw, err := os.ReadFile(fpath)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(raw)
	if err != nil {
		return nil, errors.Wrap(err, fpath)
	}
	return cfg, nil
}

// ParseConfig reads a BuilderConfig from yaml. The document is checked
// against configSchema before being decoded, then validated.
func ParseConfig(raw []byte) (*BuilderConfig, error) {
	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "config yaml")
	}

	// the validator wants plain json values (float64 numbers etc)
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "config yaml")
	}
	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, errors.Wrap(err, "config yaml")
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(generic); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "schema: %v", err)
	}

	var f configFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrap(err, "config yaml")
	}

	cfg := &BuilderConfig{
		Area:          image.Rect(f.Area.Min[0], f.Area.Min[1], f.Area.Max[0], f.Area.Max[1]),
		CellSize:      f.CellSize,
		Prefabs:       f.Prefabs,
		RoadVisuals:   f.RoadVisuals,
		ZoneClass:     f.ZoneClass,
		PreviewRateHz: f.PreviewRateHz,
	}
	return cfg, cfg.Validate()
}

// compiledSchema returns our config schema ready to validate with
func compiledSchema() (*jsonschema.Schema, error) {
	s, err := jsonschema.CompileString("config.schema.json", configSchema)
	if err != nil {
		return nil, errors.Wrap(err, "config schema")
	}
	return s, nil
}

const configSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["area", "road_visuals"],
  "additionalProperties": false,
  "properties": {
    "area": {
      "type": "object",
      "required": ["min", "max"],
      "additionalProperties": false,
      "properties": {
        "min": {"$ref": "#/$defs/cell"},
        "max": {"$ref": "#/$defs/cell"}
      }
    },
    "cell_size": {"type": "number", "exclusiveMinimum": 0},
    "zone_class": {"enum": ["residence", "commerce", "industry", "service", "other"]},
    "preview_rate_hz": {"type": "number", "minimum": 0},
    "prefabs": {"type": "array", "items": {"$ref": "#/$defs/prefab"}},
    "road_visuals": {
      "type": "object",
      "additionalProperties": {"type": "string", "minLength": 1}
    }
  },
  "$defs": {
    "cell": {
      "type": "array",
      "items": {"type": "integer"},
      "minItems": 2,
      "maxItems": 2
    },
    "prefab": {
      "type": "object",
      "required": ["id"],
      "additionalProperties": false,
      "properties": {
        "id": {"type": "string", "minLength": 1},
        "name": {"type": "string"},
        "tags": {"type": "array", "items": {"type": "string"}},
        "classification": {"enum": ["residence", "commerce", "industry", "service", "other"]},
        "placement": {"enum": ["building", "brush"]},
        "locked": {"type": "boolean"},
        "width": {"type": "integer", "minimum": 0},
        "depth": {"type": "integer", "minimum": 0}
      }
    }
  }
}`
