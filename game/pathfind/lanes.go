package pathfind

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/wricardo/isotactics/game/grid"
)

// LaneStep tells CastLanes what to do with one cell of a ray
type LaneStep uint8

const (
	// LaneBlock ends the ray before the cell; the cell is not marked
	LaneBlock LaneStep = iota
	// LaneSkip leaves the cell unmarked and continues past it
	LaneSkip
	// LaneMark marks the cell and continues
	LaneMark
	// LaneStop marks the cell and ends the ray
	LaneStop
)

// CastLanes walks the four cardinal rays out of origin, nearest cell first,
// and marks cells in overlay as classify directs. The origin cell is never
// visited. Rays end at the board edge.
func CastLanes(d grid.Dimensions, origin grid.Position, classify func(grid.Position) LaneStep, overlay *bitset.BitSet) {
	for _, dir := range grid.Cardinals {
		castLane(d, origin, dir, classify, overlay)
	}
}

func castLane(d grid.Dimensions, origin, dir grid.Position, classify func(grid.Position) LaneStep, overlay *bitset.BitSet) {
	for p := origin.Add(dir); d.ValidPos(p); p = p.Add(dir) {
		switch classify(p) {
		case LaneBlock:
			return
		case LaneSkip:
			continue
		case LaneMark:
			overlay.Set(uint(d.IndexOf(p)))
		case LaneStop:
			overlay.Set(uint(d.IndexOf(p)))
			return
		}
	}
}
