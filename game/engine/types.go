package engine

import (
	"fmt"

	"github.com/wricardo/isotactics/game/grid"
)

// Terrain is the static contents of a board cell
type Terrain uint8

const (
	Empty Terrain = iota
	Soft
	Solid
	Transparent
)

// Layout characters used by scenario files and state snapshots
const (
	EmptyChar       = '.'
	SoftChar        = '*'
	SolidChar       = '#'
	TransparentChar = '='
)

const (
	// Validation limits
	MinBoardSize    = 3
	MaxBoardSize    = 32
	MaxUnitsPerSide = 16
	MaxMoveSpeed    = 12
	MaxUnitHealth   = 20

	// Defaults of the classic skirmish
	DefaultWidth           = 9
	DefaultHeight          = 7
	DefaultUnitsPerSide    = 4
	DefaultPlayerMoveSpeed = 3
	DefaultAIMoveSpeed     = 4
	DefaultUnitHealth      = 3

	// ShotDamage is the health a hit removes
	ShotDamage = 1
)

// String returns the lower-case terrain name
func (t Terrain) String() string {
	switch t {
	case Empty:
		return "empty"
	case Soft:
		return "soft"
	case Solid:
		return "solid"
	case Transparent:
		return "transparent"
	default:
		return fmt.Sprintf("terrain(%d)", uint8(t))
	}
}

// Char returns the layout character for the terrain
func (t Terrain) Char() byte {
	switch t {
	case Soft:
		return SoftChar
	case Solid:
		return SolidChar
	case Transparent:
		return TransparentChar
	default:
		return EmptyChar
	}
}

// BlocksMovement reports whether units may never stand on the terrain
func (t Terrain) BlocksMovement() bool {
	return t == Solid || t == Transparent
}

// TerrainFromChar parses a layout character
func TerrainFromChar(c byte) (Terrain, bool) {
	switch c {
	case EmptyChar:
		return Empty, true
	case SoftChar:
		return Soft, true
	case SolidChar:
		return Solid, true
	case TransparentChar:
		return Transparent, true
	default:
		return Empty, false
	}
}

// Phase is the half of a player turn currently expected
type Phase uint8

const (
	PhaseMove Phase = iota
	PhaseShoot
)

func (p Phase) String() string {
	if p == PhaseShoot {
		return "shoot"
	}
	return "move"
}

// UnitView is a read-only copy of one live unit
type UnitView struct {
	Slot      int           `json:"slot"`
	Name      string        `json:"name"`
	Team      string        `json:"team"`
	Position  grid.Position `json:"position"`
	Health    int           `json:"health"`
	MaxHealth int           `json:"max_health"`
	MoveSpeed int           `json:"move_speed"`
}

// GameState is a JSON snapshot of a game for hosts and frontends
type GameState struct {
	ConfigName string          `json:"config_name"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	Terrain    []string        `json:"terrain"`
	Units      []UnitView      `json:"units"`
	RosterA    []int           `json:"roster_a"`
	RosterB    []int           `json:"roster_b"`
	ActiveTeam string          `json:"active_team"`
	Phase      string          `json:"phase"`
	Selected   *int            `json:"selected,omitempty"`
	Overlay    []grid.Position `json:"overlay"`
	Turn       int             `json:"turn"`
	Revision   uint64          `json:"revision"`
	Winner     string          `json:"winner,omitempty"`
}
