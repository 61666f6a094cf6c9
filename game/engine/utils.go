package engine

import (
	"github.com/wricardo/isotactics/game/grid"
	"github.com/wricardo/isotactics/game/pathfind"
	"github.com/wricardo/isotactics/game/units"
)

func slotInts(slots []units.Slot) []int {
	out := make([]int, len(slots))
	for i, s := range slots {
		out[i] = int(s)
	}
	return out
}

// ReachableCells lists the cells a unit with the given speed could reach
// from p when no other unit is on the board.
func ReachableCells(terrain []Terrain, d grid.Dimensions, p grid.Position, speed int) []grid.Position {
	traits := make([]pathfind.Trait, d.Area())
	for i, t := range terrain {
		if !t.BlocksMovement() {
			traits[i] = pathfind.Empty
		}
	}
	traits[d.IndexOf(p)] = pathfind.Blocked

	pf := pathfind.New(d)
	pf.SeedNeighbors(p, traits, speed)
	overlay := grid.NewOverlay(d)
	pf.CopyPathDataOut(overlay)
	return grid.OverlayPositions(d, overlay)
}
