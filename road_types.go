package electropolis

// RoadShape classifies a road cell by how many of its four neighbours are
// also roads & how they're arranged.
type RoadShape string

const (
	Closed             RoadShape = "closed"              // no connections in any direction
	End                RoadShape = "end"                 // a single connection
	Straight           RoadShape = "straight"            // two opposite connections
	Turn               RoadShape = "turn"                // two adjacent connections
	TripleIntersection RoadShape = "triple-intersection" // three connections
	QuadIntersection   RoadShape = "quad-intersection"   // all four connections
)

var (
	allRoadShapes = []RoadShape{
		Closed, End, Straight, Turn, TripleIntersection, QuadIntersection,
	}

	// by number of connections, nb. 2 is ambiguous (straight or turn)
	shapeByLinks = [5]RoadShape{Closed, End, Straight, TripleIntersection, QuadIntersection}
)

// AllRoadShapes returns all known RoadShape enums
func AllRoadShapes() []RoadShape {
	return allRoadShapes
}

// Valid returns if s is a known RoadShape
func (s RoadShape) Valid() bool {
	for _, k := range allRoadShapes {
		if k == s {
			return true
		}
	}
	return false
}

// Links returns the number of connections a road of this shape has
func (s RoadShape) Links() int {
	switch s {
	case End:
		return 1
	case Straight, Turn:
		return 2
	case TripleIntersection:
		return 3
	case QuadIntersection:
		return 4
	}
	return 0
}

// classifyRoad works out the shape given which neighbours (in north, south,
// east, west order) are present.
func classifyRoad(links [4]bool) RoadShape {
	count := 0
	for _, ok := range links {
		if ok {
			count++
		}
	}
	if count != 2 {
		return shapeByLinks[count]
	}
	north, south, east, west := links[0], links[1], links[2], links[3]
	if (north && south) || (east && west) {
		return Straight
	}
	return Turn
}
