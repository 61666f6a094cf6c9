package pathfind

import (
	"testing"

	"github.com/wricardo/isotactics/game/grid"
)

func openTraits(d grid.Dimensions) []Trait {
	traits := make([]Trait, d.Area())
	for i := range traits {
		traits[i] = Empty
	}
	return traits
}

func reachable(pf *PathFinder) map[grid.Position]bool {
	d := pf.Dimensions()
	overlay := grid.NewOverlay(d)
	pf.CopyPathDataOut(overlay)
	out := make(map[grid.Position]bool)
	for _, p := range grid.OverlayPositions(d, overlay) {
		out[p] = true
	}
	return out
}

func TestFindAllPaths_OpenBoardDiamond(t *testing.T) {
	d := grid.NewDimensions(9, 7)
	unit := grid.Position{X: 4, Y: 3}
	traits := openTraits(d)
	traits[d.IndexOf(unit)] = Blocked

	pf := New(d)
	pf.SeedNeighbors(unit, traits, 3)
	got := reachable(pf)

	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			p := grid.Position{X: x, Y: y}
			dist := grid.ManhattanDistance(unit, p)
			want := dist >= 1 && dist <= 3
			if got[p] != want {
				t.Errorf("cell %v (distance %d): reachable=%v, expected %v", p, dist, got[p], want)
			}
		}
	}

	if len(got) != 24 {
		t.Errorf("Expected 24 reachable cells, got %d", len(got))
	}
}

func TestFindAllPaths_DiamondClippedAtEdges(t *testing.T) {
	d := grid.NewDimensions(9, 7)
	unit := grid.Position{X: 0, Y: 0}
	traits := openTraits(d)
	traits[d.IndexOf(unit)] = Blocked

	pf := New(d)
	pf.SeedNeighbors(unit, traits, 2)
	got := reachable(pf)

	expected := []grid.Position{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 2}}
	if len(got) != len(expected) {
		t.Fatalf("Expected %d reachable cells, got %d: %v", len(expected), len(got), got)
	}
	for _, p := range expected {
		if !got[p] {
			t.Errorf("Expected %v to be reachable", p)
		}
	}
}

func TestFindAllPaths_RemainingBudget(t *testing.T) {
	d := grid.NewDimensions(9, 7)
	unit := grid.Position{X: 4, Y: 3}
	traits := openTraits(d)
	traits[d.IndexOf(unit)] = Blocked

	pf := New(d)
	pf.SeedNeighbors(unit, traits, 3)

	tests := []struct {
		p        grid.Position
		expected int
	}{
		{grid.Position{X: 5, Y: 3}, 3},
		{grid.Position{X: 6, Y: 3}, 2},
		{grid.Position{X: 6, Y: 4}, 1},
		{grid.Position{X: 7, Y: 4}, 0},
		{unit, 0},
		{grid.Position{X: -1, Y: 0}, 0},
	}
	for _, tt := range tests {
		if got := pf.Distance(tt.p); got != tt.expected {
			t.Errorf("Distance(%v) = %d, expected %d", tt.p, got, tt.expected)
		}
	}
}

func TestFindAllPaths_SolidNeverReachable(t *testing.T) {
	// Corridor: unit at 0, wall at 2
	d := grid.NewDimensions(5, 1)
	traits := openTraits(d)
	traits[0] = Blocked
	traits[2] = Blocked

	pf := New(d)
	pf.SeedNeighbors(grid.Position{X: 0, Y: 0}, traits, 4)
	got := reachable(pf)

	if !got[grid.Position{X: 1, Y: 0}] {
		t.Error("Expected cell in front of the wall to be reachable")
	}
	for x := 2; x < 5; x++ {
		if got[grid.Position{X: x, Y: 0}] {
			t.Errorf("Cell (%d,0) at or behind the wall must not be reachable", x)
		}
	}
}

func TestFindAllPaths_DetourAroundSolid(t *testing.T) {
	d := grid.NewDimensions(3, 3)
	unit := grid.Position{X: 0, Y: 0}
	behind := grid.Position{X: 2, Y: 0}

	traits := openTraits(d)
	traits[d.IndexOf(unit)] = Blocked
	traits[d.Index(1, 0)] = Blocked

	short := New(d)
	short.SeedNeighbors(unit, traits, 2)
	if reachable(short)[behind] {
		t.Error("Cell behind the wall needs 4 steps around it; budget 2 must not reach it")
	}

	long := New(d)
	long.SeedNeighbors(unit, traits, 4)
	if !reachable(long)[behind] {
		t.Error("Expected the detour to reach the cell with budget 4")
	}
	if reachable(long)[grid.Position{X: 1, Y: 0}] {
		t.Error("Blocked cell must never be reachable")
	}
}

func TestFindAllPaths_OntoStopsExpansion(t *testing.T) {
	// Corridor with an enemy at 2: it can be stepped onto but not crossed
	d := grid.NewDimensions(5, 1)
	traits := openTraits(d)
	traits[0] = Blocked
	traits[2] = Onto

	pf := New(d)
	pf.SeedNeighbors(grid.Position{X: 0, Y: 0}, traits, 4)
	got := reachable(pf)

	if !got[grid.Position{X: 2, Y: 0}] {
		t.Error("Expected Onto cell to be reachable")
	}
	if got[grid.Position{X: 3, Y: 0}] {
		t.Error("Expected expansion to stop at the Onto cell")
	}
}

func TestFindAllPaths_ThroughOnlyIsNeverAStop(t *testing.T) {
	d := grid.NewDimensions(3, 1)
	traits := []Trait{Empty, Through, Empty}

	pf := New(d)
	pf.FindAllPaths(grid.Position{X: 0, Y: 0}, traits, 3)

	if pf.Distance(grid.Position{X: 1, Y: 0}) != 0 {
		t.Error("A cell without the Onto bit is never recorded")
	}
	if pf.Distance(grid.Position{X: 2, Y: 0}) != 0 {
		t.Error("Fill halts at a cell it cannot occupy")
	}
}

func TestFindAllPaths_MemoOnlyOverwritesWithLargerBudget(t *testing.T) {
	d := grid.NewDimensions(5, 1)
	traits := openTraits(d)
	pf := New(d)

	pf.FindAllPaths(grid.Position{X: 0, Y: 0}, traits, 2)
	if got := pf.Distance(grid.Position{X: 1, Y: 0}); got != 1 {
		t.Fatalf("Expected budget 1 at (1,0), got %d", got)
	}

	// Equal budget at the seed: nothing changes
	pf.FindAllPaths(grid.Position{X: 0, Y: 0}, traits, 2)
	if got := pf.Distance(grid.Position{X: 2, Y: 0}); got != 0 {
		t.Errorf("Equal budget must not expand further, got %d at (2,0)", got)
	}

	// Larger budget overwrites and expands
	pf.FindAllPaths(grid.Position{X: 0, Y: 0}, traits, 3)
	if got := pf.Distance(grid.Position{X: 2, Y: 0}); got != 1 {
		t.Errorf("Expected larger budget to reach (2,0) with 1 left, got %d", got)
	}
}

func TestFindAllPaths_OffBoardSeedIsIgnored(t *testing.T) {
	d := grid.NewDimensions(3, 3)
	pf := New(d)
	pf.FindAllPaths(grid.Position{X: -1, Y: 1}, openTraits(d), 3)
	if len(reachable(pf)) != 0 {
		t.Error("Expected nothing reachable from an off-board seed")
	}
}

func TestFindAllPaths_NonPositiveBudgetPanics(t *testing.T) {
	d := grid.NewDimensions(3, 3)
	pf := New(d)

	for _, steps := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for budget %d", steps)
				}
			}()
			pf.FindAllPaths(grid.Position{X: 1, Y: 1}, openTraits(d), steps)
		}()
	}
}

func TestClear(t *testing.T) {
	d := grid.NewDimensions(3, 3)
	pf := New(d)
	pf.FindAllPaths(grid.Position{X: 1, Y: 1}, openTraits(d), 2)
	pf.Clear()
	if len(reachable(pf)) != 0 {
		t.Error("Expected Clear to reset every cell")
	}
}

func TestCopyPathDataOut_ClearsStaleBits(t *testing.T) {
	d := grid.NewDimensions(3, 1)
	overlay := grid.NewOverlay(d)
	overlay.Set(2)

	pf := New(d)
	pf.FindAllPaths(grid.Position{X: 0, Y: 0}, openTraits(d), 1)
	pf.CopyPathDataOut(overlay)

	if !overlay.Test(0) || overlay.Test(2) {
		t.Errorf("Expected only cell 0 marked, got %v", overlay.String())
	}
}
