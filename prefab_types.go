package electropolis

import (
	"sort"
)

// Classification indicates roughly what a construction is for.
// Blocks carry the classification of their prefab, painted zones carry
// whatever zone class the builder was set to when painting started.
type Classification string

const (
	Residence Classification = "residence" // homes, apartments
	Commerce  Classification = "commerce"  // shops, offices
	Industry  Classification = "industry"  // factories, warehouses
	Service   Classification = "service"   // police, fire, schools, power
	Other     Classification = "other"     // parks, monuments .. everything else
	Unclassed Classification = ""          // roads
)

var (
	allClassifications = []Classification{
		Residence, Commerce, Industry, Service, Other,
	}

	classIndex = map[Classification]uint8{
		Unclassed: 0,
		Residence: 1,
		Commerce:  2,
		Industry:  3,
		Service:   4,
		Other:     5,
	}

	invClassIndex = map[uint8]Classification{}
)

func init() {
	for k, v := range classIndex {
		invClassIndex[v] = k
	}
}

// ID returns the index of a classification, 0 if unknown
func (c Classification) ID() uint8 {
	v, ok := classIndex[c]
	if !ok {
		return 0
	}
	return v
}

// Valid returns if c is one of the known classifications (or Unclassed)
func (c Classification) Valid() bool {
	_, ok := classIndex[c]
	return ok
}

// classForID is the inversion of Classification.ID()
func classForID(i uint8) Classification {
	c, ok := invClassIndex[i]
	if !ok {
		return Unclassed
	}
	return c
}

// AllClassifications returns all known Classification enums (sans Unclassed)
func AllClassifications() []Classification {
	return allClassifications
}

// PlacementType says how a prefab is put into the world.
type PlacementType string

const (
	// Building prefabs are placed one at a time with a footprint (BlockPlacement)
	Building PlacementType = "building"

	// Brush prefabs are painted over an area (ZonePainting)
	Brush PlacementType = "brush"
)

// Prefab is a catalog entry for something that can be constructed.
type Prefab struct {
	// ID is what Builder.Select() expects, must be unique & non empty
	ID string `yaml:"id" json:"id"`

	Name           string         `yaml:"name" json:"name"`
	Tags           []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	Classification Classification `yaml:"classification" json:"classification"`
	Placement      PlacementType  `yaml:"placement" json:"placement"`

	// Locked prefabs are listed but cannot be selected
	Locked bool `yaml:"locked,omitempty" json:"locked,omitempty"`

	// Width (x) & Depth (y) in cells of the unrotated footprint
	Width int `yaml:"width" json:"width"`
	Depth int `yaml:"depth" json:"depth"`
}

// HasTag returns if the prefab is tagged with t
func (p *Prefab) HasTag(t string) bool {
	for _, tag := range p.Tags {
		if tag == t {
			return true
		}
	}
	return false
}

// sortPrefabs orders prefabs by classification then ID
func sortPrefabs(in []*Prefab) {
	sort.Slice(in, func(a, b int) bool {
		ca := in[a].Classification.ID()
		cb := in[b].Classification.ID()
		if ca != cb {
			return ca < cb
		}
		return in[a].ID < in[b].ID
	})
}
