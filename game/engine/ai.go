package engine

import (
	"fmt"

	"github.com/wricardo/isotactics/game/grid"
	"github.com/wricardo/isotactics/game/pathfind"
)

// aiTurn moves one random AI unit. It kills the first player unit, in
// roster order, that it can reach; otherwise it walks to a random reachable
// cell. The AI never shoots.
func (g *Game) aiTurn() {
	if g.phase != PhaseMove || g.activeTeam != AISide {
		panic(fmt.Sprintf("engine: AI turn in phase %s with side %s active", g.phase, g.activeTeam))
	}

	roster := g.rosters[AISide]
	if roster.Len() == 0 {
		return
	}
	mover := roster.At(g.rng.Intn(roster.Len()))

	overlay := grid.NewOverlay(g.dims)
	g.pathfindMove(pathfind.New(g.dims), mover, overlay)

	for _, enemy := range g.rosters[PlayerSide].Slots() {
		pos := g.store.Position(enemy)
		if grid.OverlayContains(g.dims, overlay, pos) {
			g.kill(enemy)
			g.store.SetPosition(mover, pos)
			return
		}
	}

	cells := grid.OverlayPositions(g.dims, overlay)
	if len(cells) == 0 {
		return
	}
	g.store.SetPosition(mover, cells[g.rng.Intn(len(cells))])
}
