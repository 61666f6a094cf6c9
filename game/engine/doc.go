// Package engine implements the rules of the Iso Tactics skirmish.
//
// A Game owns the terrain, the unit store, one roster per side and the
// turn state machine. The player (side A) selects a unit, moves it inside
// its movement overlay, then fires along one of four straight lanes or
// passes. Each completed player turn is answered immediately by the AI
// (side B), which moves a single random unit and kills any player unit it
// can reach.
//
// Usage:
//
//	game, err := engine.New(engine.DefaultConfig(), rand.New(rand.NewSource(1)))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	game.SelectUnit(grid.Position{X: 2, Y: 3})
//	game.RequestMove(grid.Position{X: 4, Y: 3})
//	game.PassShot()
//	state := game.State()
//
// Commands never fail loudly: a target outside the current overlay leaves
// the game untouched and returns false. Broken contracts, such as an AI
// turn out of order, panic.
//
// A Game is single-threaded. Hosts that share one must serialize access.
package engine
