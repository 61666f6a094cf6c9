package engine

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/wricardo/isotactics/game/grid"
	"github.com/wricardo/isotactics/game/pathfind"
	"github.com/wricardo/isotactics/game/units"
)

const (
	// PlayerSide is driven by commands
	PlayerSide = units.SideA
	// AISide answers every completed player turn
	AISide = units.SideB
)

// ErrNoSpawnCell is returned when a generated board has too few empty cells
var ErrNoSpawnCell = errors.New("no free empty cell to spawn a unit")

// Rand is the random source a game draws terrain, spawns, names and AI
// choices from. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Engine provides the main interface for game operations
type Engine interface {
	// Queries
	Dimensions() grid.Dimensions
	TerrainAt(p grid.Position) Terrain
	Terrain() []Terrain
	Units() []UnitView
	Unit(slot units.Slot) (UnitView, bool)
	ActiveTeam() units.Side
	ActivePhase() Phase
	Selected() (units.Slot, bool)
	Overlay() *bitset.BitSet
	Roster(side units.Side) []units.Slot
	Winner() units.Side
	State() *GameState

	// Commands
	SelectUnit(p grid.Position) bool
	ClearSelection()
	RequestMove(p grid.Position) bool
	RequestShoot(p grid.Position) bool
	PassShot() bool
	HoverPreview(p grid.Position) []grid.Position
}

// Game implements Engine. It is not safe for concurrent use.
type Game struct {
	config  GameConfig
	dims    grid.Dimensions
	terrain []Terrain
	rng     Rand

	store   *units.Store
	rosters [3]*units.Roster

	activeTeam units.Side
	phase      Phase
	selected   units.Slot
	overlay    *bitset.BitSet
	turn       int
	revision   uint64

	pf     *pathfind.PathFinder
	traits []pathfind.Trait
}

var _ Engine = (*Game)(nil)

// New validates the config and sets up a fresh game
func New(config *GameConfig, rng Rand) (*Game, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("new game: random source is nil")
	}

	g := &Game{config: config.WithDefaults(), rng: rng}
	if err := g.setup(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewWithDefaults starts the built-in 9x7 skirmish
func NewWithDefaults(rng Rand) (*Game, error) {
	return New(DefaultConfig(), rng)
}

// newBoard builds a game on the given terrain with no units. Callers place
// units themselves.
func newBoard(config GameConfig, terrain []Terrain, rng Rand) *Game {
	g := &Game{config: config, rng: rng}
	g.dims = grid.NewDimensions(config.Width, config.Height)
	g.terrain = terrain
	g.resetTurnState()
	return g
}

func (g *Game) setup() error {
	c := g.config
	g.dims = grid.NewDimensions(c.Width, c.Height)

	if len(c.Layout) > 0 {
		terrain, err := ParseLayout(c.Layout, g.dims)
		if err != nil {
			return err
		}
		g.terrain = terrain
	} else {
		g.terrain = GenerateTerrain(g.dims, c.TerrainWeights, g.rng)
		if c.Spawns != nil {
			for _, p := range append(append([]grid.Position{}, c.Spawns.A...), c.Spawns.B...) {
				g.terrain[g.dims.IndexOf(p)] = Empty
			}
		}
	}

	g.resetTurnState()

	for _, side := range []units.Side{PlayerSide, AISide} {
		for i := 0; i < c.UnitsPerSide; i++ {
			var pos grid.Position
			if c.Spawns != nil {
				pos = g.spawnCells(side)[i]
			} else {
				p, err := g.randUnitSpawn()
				if err != nil {
					return err
				}
				pos = p
			}
			g.spawn(side, pos)
		}
	}
	return nil
}

func (g *Game) resetTurnState() {
	g.store = units.NewStore()
	g.rosters = [3]*units.Roster{nil, units.NewRoster(units.SideA), units.NewRoster(units.SideB)}
	g.activeTeam = PlayerSide
	g.phase = PhaseMove
	g.selected = units.NoSlot
	g.overlay = grid.NewOverlay(g.dims)
	g.turn = 0
	g.pf = pathfind.New(g.dims)
	g.traits = make([]pathfind.Trait, g.dims.Area())
}

func (g *Game) spawnCells(side units.Side) []grid.Position {
	if side == PlayerSide {
		return g.config.Spawns.A
	}
	return g.config.Spawns.B
}

// randUnitSpawn picks a uniformly random unoccupied empty cell
func (g *Game) randUnitSpawn() (grid.Position, error) {
	var free []grid.Position
	for i, t := range g.terrain {
		if t != Empty {
			continue
		}
		p := g.dims.XY(i)
		if _, taken := g.store.IndexOfPosition(p, 0); !taken {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return grid.Position{}, ErrNoSpawnCell
	}
	return free[g.rng.Intn(len(free))], nil
}

// spawn allocates a unit with the side's stats and enrolls it
func (g *Game) spawn(side units.Side, pos grid.Position) units.Slot {
	slot := g.store.Allocate(side)
	g.store.SetPosition(slot, pos)
	g.store.SetName(slot, units.RandomName(g.rng))
	speed := g.config.PlayerMoveSpeed
	if side == AISide {
		speed = g.config.AIMoveSpeed
	}
	g.store.SetMoveSpeed(slot, speed)
	g.store.SetHealth(slot, g.config.UnitHealth)
	g.store.SetMaxHealth(slot, g.config.UnitHealth)
	g.rosters[side].Add(slot)
	return slot
}

// kill removes a unit from its roster and frees its slot
func (g *Game) kill(slot units.Slot) {
	side := g.store.Team(slot)
	g.rosters[side].Remove(slot)
	g.store.Release(slot)
	if g.selected == slot {
		g.selected = units.NoSlot
	}
}

// Reset starts a new game from the same config. The revision keeps counting.
func (g *Game) Reset() error {
	if err := g.setup(); err != nil {
		return err
	}
	g.revision++
	return nil
}

// Config returns the effective config
func (g *Game) Config() GameConfig {
	return g.config
}

// Turn returns the number of completed player turns
func (g *Game) Turn() int {
	return g.turn
}

// Revision counts state changes since New
func (g *Game) Revision() uint64 {
	return g.revision
}

func (g *Game) Dimensions() grid.Dimensions {
	return g.dims
}

// TerrainAt panics for cells off the board
func (g *Game) TerrainAt(p grid.Position) Terrain {
	return g.terrain[g.dims.Index(p.X, p.Y)]
}

// Terrain returns a copy of the terrain column
func (g *Game) Terrain() []Terrain {
	out := make([]Terrain, len(g.terrain))
	copy(out, g.terrain)
	return out
}

func (g *Game) view(slot units.Slot) UnitView {
	return UnitView{
		Slot:      int(slot),
		Name:      g.store.Name(slot),
		Team:      g.store.Team(slot).String(),
		Position:  g.store.Position(slot),
		Health:    g.store.Health(slot),
		MaxHealth: g.store.MaxHealth(slot),
		MoveSpeed: g.store.MoveSpeed(slot),
	}
}

// Units lists live units in slot order
func (g *Game) Units() []UnitView {
	var out []UnitView
	for i := 0; i < g.store.Len(); i++ {
		if g.store.IsValid(units.Slot(i)) {
			out = append(out, g.view(units.Slot(i)))
		}
	}
	return out
}

func (g *Game) Unit(slot units.Slot) (UnitView, bool) {
	if !g.store.IsValid(slot) {
		return UnitView{}, false
	}
	return g.view(slot), true
}

// UnitAt returns the live unit standing on p
func (g *Game) UnitAt(p grid.Position) (UnitView, bool) {
	slot, ok := g.store.IndexOfPosition(p, 0)
	if !ok {
		return UnitView{}, false
	}
	return g.view(slot), true
}

func (g *Game) ActiveTeam() units.Side {
	return g.activeTeam
}

func (g *Game) ActivePhase() Phase {
	return g.phase
}

func (g *Game) Selected() (units.Slot, bool) {
	return g.selected, g.selected != units.NoSlot
}

// Overlay returns a copy of the legal-target set
func (g *Game) Overlay() *bitset.BitSet {
	return g.overlay.Clone()
}

// Roster returns a copy of a side's slots in roster order
func (g *Game) Roster(side units.Side) []units.Slot {
	if side != units.SideA && side != units.SideB {
		return nil
	}
	return g.rosters[side].Slots()
}

// Winner reports the side whose opponent has no units left, or NoSide.
// It never stops play.
func (g *Game) Winner() units.Side {
	a, b := g.rosters[units.SideA].Len(), g.rosters[units.SideB].Len()
	switch {
	case a > 0 && b == 0:
		return units.SideA
	case b > 0 && a == 0:
		return units.SideB
	default:
		return units.NoSide
	}
}

// State returns a snapshot of the whole game
func (g *Game) State() *GameState {
	state := &GameState{
		ConfigName: g.config.Name,
		Width:      g.dims.Width,
		Height:     g.dims.Height,
		Terrain:    LayoutRows(g.terrain, g.dims),
		Units:      g.Units(),
		RosterA:    slotInts(g.rosters[units.SideA].Slots()),
		RosterB:    slotInts(g.rosters[units.SideB].Slots()),
		ActiveTeam: g.activeTeam.String(),
		Phase:      g.phase.String(),
		Overlay:    grid.OverlayPositions(g.dims, g.overlay),
		Turn:       g.turn,
		Revision:   g.revision,
	}
	if state.Units == nil {
		state.Units = []UnitView{}
	}
	if g.selected != units.NoSlot {
		s := int(g.selected)
		state.Selected = &s
	}
	if w := g.Winner(); w != units.NoSide {
		state.Winner = w.String()
	}
	return state
}
