package engine

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/wricardo/isotactics/game/grid"
	"github.com/wricardo/isotactics/game/pathfind"
	"github.com/wricardo/isotactics/game/units"
)

// moveTraits fills traits for a unit of side: own units block, enemies may
// be stepped onto but not crossed, solid and transparent terrain block.
func (g *Game) moveTraits(side units.Side, traits []pathfind.Trait) {
	for i, t := range g.terrain {
		if t.BlocksMovement() {
			traits[i] = pathfind.Blocked
		} else {
			traits[i] = pathfind.Empty
		}
	}
	for i := 0; i < g.store.Len(); i++ {
		slot := units.Slot(i)
		if !g.store.IsValid(slot) {
			continue
		}
		idx := g.dims.IndexOf(g.store.Position(slot))
		if g.store.Team(slot) == side {
			traits[idx] = pathfind.Blocked
		} else if traits[idx] != pathfind.Blocked {
			traits[idx] = pathfind.Onto
		}
	}
}

// pathfindMove writes the cells the unit can reach this turn into overlay
func (g *Game) pathfindMove(pf *pathfind.PathFinder, slot units.Slot, overlay *bitset.BitSet) {
	g.moveTraits(g.store.Team(slot), g.traits)
	pf.Clear()
	pf.SeedNeighbors(g.store.Position(slot), g.traits, g.store.MoveSpeed(slot))
	pf.CopyPathDataOut(overlay)
}

// pathfindShoot writes the cells the unit can fire at into overlay
func (g *Game) pathfindShoot(slot units.Slot, overlay *bitset.BitSet) {
	overlay.ClearAll()
	side := g.store.Team(slot)
	pathfind.CastLanes(g.dims, g.store.Position(slot), func(p grid.Position) pathfind.LaneStep {
		t := g.terrain[g.dims.IndexOf(p)]
		if t == Solid {
			return pathfind.LaneBlock
		}
		if other, ok := g.store.IndexOfPosition(p, 0); ok {
			if g.store.Team(other) == side {
				return pathfind.LaneSkip
			}
			return pathfind.LaneStop
		}
		if t == Soft {
			return pathfind.LaneStop
		}
		return pathfind.LaneMark
	}, overlay)
}

func (g *Game) playerTurn() bool {
	return g.activeTeam == PlayerSide
}

func (g *Game) inOverlay(p grid.Position) bool {
	return grid.OverlayContains(g.dims, g.overlay, p)
}

// SelectUnit selects the player's unit on p and shows where it can move.
// Any other cell clears the selection. Ignored outside the Move phase.
func (g *Game) SelectUnit(p grid.Position) bool {
	if !g.playerTurn() || g.phase != PhaseMove {
		return false
	}
	if g.dims.ValidPos(p) {
		if slot, ok := g.store.IndexOfPosition(p, 0); ok && g.store.Team(slot) == PlayerSide {
			g.selected = slot
			g.pathfindMove(g.pf, slot, g.overlay)
			g.revision++
			return true
		}
	}
	g.ClearSelection()
	return false
}

// ClearSelection drops the selection and overlay. The unit that moved
// stays selected through the Shoot phase.
func (g *Game) ClearSelection() {
	if g.phase != PhaseMove {
		return
	}
	g.selected = units.NoSlot
	g.overlay.ClearAll()
	g.revision++
}

// RequestMove moves the selected unit to p, killing an enemy standing
// there, and switches to the Shoot phase. Targets outside the overlay are
// ignored.
func (g *Game) RequestMove(p grid.Position) bool {
	if !g.playerTurn() || g.phase != PhaseMove || !g.store.IsValid(g.selected) {
		return false
	}
	if !g.inOverlay(p) {
		return false
	}

	if target, ok := g.store.IndexOfPosition(p, 0); ok && g.store.Team(target) != PlayerSide {
		g.kill(target)
	}
	g.store.SetPosition(g.selected, p)

	g.phase = PhaseShoot
	g.pathfindShoot(g.selected, g.overlay)
	g.revision++
	return true
}

// RequestShoot fires at p, damaging an enemy standing there, then ends the
// player's turn. Targets outside the overlay are ignored.
func (g *Game) RequestShoot(p grid.Position) bool {
	if !g.playerTurn() || g.phase != PhaseShoot {
		return false
	}
	if !g.inOverlay(p) {
		return false
	}

	if target, ok := g.store.IndexOfPosition(p, 0); ok && g.store.Team(target) != PlayerSide {
		if g.store.Damage(target, ShotDamage) == 0 {
			g.kill(target)
		}
	}
	g.endPlayerTurn()
	return true
}

// PassShot ends the Shoot phase without firing
func (g *Game) PassShot() bool {
	if !g.playerTurn() || g.phase != PhaseShoot {
		return false
	}
	g.endPlayerTurn()
	return true
}

func (g *Game) endPlayerTurn() {
	g.phase = PhaseMove
	g.selected = units.NoSlot
	g.overlay.ClearAll()

	g.activeTeam = AISide
	g.aiTurn()
	g.activeTeam = PlayerSide
	g.turn++
	g.revision++
}

// HoverPreview lists where the unit on p could move, whoever owns it.
// Selection and overlay are untouched.
func (g *Game) HoverPreview(p grid.Position) []grid.Position {
	if !g.dims.ValidPos(p) {
		return nil
	}
	slot, ok := g.store.IndexOfPosition(p, 0)
	if !ok {
		return nil
	}
	hover := grid.NewOverlay(g.dims)
	g.pathfindMove(g.pf, slot, hover)
	return grid.OverlayPositions(g.dims, hover)
}
