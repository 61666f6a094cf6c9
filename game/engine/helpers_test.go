package engine

import (
	"strings"
	"testing"

	"github.com/wricardo/isotactics/game/grid"
	"github.com/wricardo/isotactics/game/units"
)

// scriptedRand replays fixed draws and returns zero once a script runs out
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func openRows(width, height int) []string {
	rows := make([]string, height)
	for i := range rows {
		rows[i] = strings.Repeat(string(EmptyChar), width)
	}
	return rows
}

// newTestGame builds a game on a fixed layout with units at the given
// cells. Unit names are drawn before rng is installed.
func newTestGame(t *testing.T, rows []string, a, b []grid.Position, rng Rand) *Game {
	t.Helper()
	config := GameConfig{Name: "test", Layout: rows}.WithDefaults()
	terrain, err := ParseLayout(rows, config.Dimensions())
	if err != nil {
		t.Fatalf("Failed to parse layout: %v", err)
	}
	g := newBoard(config, terrain, &scriptedRand{})
	for _, p := range a {
		g.spawn(PlayerSide, p)
	}
	for _, p := range b {
		g.spawn(AISide, p)
	}
	g.rng = rng
	return g
}

func slotAt(t *testing.T, g *Game, p grid.Position) units.Slot {
	t.Helper()
	slot, ok := g.store.IndexOfPosition(p, 0)
	if !ok {
		t.Fatalf("Expected a unit at %v", p)
	}
	return slot
}

// checkInvariants verifies store and roster bookkeeping
func checkInvariants(t *testing.T, g *Game) {
	t.Helper()
	seen := make(map[units.Slot]units.Side)
	for _, side := range []units.Side{units.SideA, units.SideB} {
		for _, slot := range g.Roster(side) {
			if !g.store.IsValid(slot) {
				t.Fatalf("Roster %s holds free slot %d", side, slot)
			}
			if g.store.Team(slot) != side {
				t.Fatalf("Roster %s holds slot %d owned by %s", side, slot, g.store.Team(slot))
			}
			if prev, dup := seen[slot]; dup {
				t.Fatalf("Slot %d appears in roster %s and %s", slot, prev, side)
			}
			seen[slot] = side
		}
	}

	occupied := make(map[grid.Position]units.Slot)
	valid := 0
	for i := 0; i < g.store.Len(); i++ {
		slot := units.Slot(i)
		if !g.store.IsValid(slot) {
			continue
		}
		valid++
		if _, ok := seen[slot]; !ok {
			t.Fatalf("Live slot %d is on no roster", slot)
		}
		p := g.store.Position(slot)
		if other, dup := occupied[p]; dup {
			t.Fatalf("Slots %d and %d share cell %v", other, slot, p)
		}
		occupied[p] = slot
		if g.TerrainAt(p).BlocksMovement() {
			t.Fatalf("Slot %d stands on %s terrain at %v", slot, g.TerrainAt(p), p)
		}
	}
	if valid+g.store.FreeCount() != g.store.Len() {
		t.Fatalf("Expected %d live + %d free = %d rows", valid, g.store.FreeCount(), g.store.Len())
	}
}
