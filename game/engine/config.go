package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/wricardo/isotactics/game/grid"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid game config")

// TerrainWeights are the relative odds of each terrain kind when a board is
// generated. They need not sum to one.
type TerrainWeights struct {
	Empty       float64 `json:"empty" yaml:"empty"`
	Soft        float64 `json:"soft" yaml:"soft"`
	Solid       float64 `json:"solid" yaml:"solid"`
	Transparent float64 `json:"transparent" yaml:"transparent"`
}

// DefaultTerrainWeights reproduce the 0.85 / 0.90 / 0.95 / 1.0 thresholds
var DefaultTerrainWeights = TerrainWeights{Empty: 0.85, Soft: 0.05, Solid: 0.05, Transparent: 0.05}

func (w TerrainWeights) isZero() bool {
	return w == TerrainWeights{}
}

func (w TerrainWeights) total() float64 {
	return w.Empty + w.Soft + w.Solid + w.Transparent
}

// Thresholds returns the cumulative upper bounds for Empty, Soft and Solid.
// A draw at or above the last bound is Transparent.
func (w TerrainWeights) Thresholds() [3]float64 {
	t := w.total()
	return [3]float64{
		w.Empty / t,
		(w.Empty + w.Soft) / t,
		(w.Empty + w.Soft + w.Solid) / t,
	}
}

// Spawns fixes the starting cells of each side
type Spawns struct {
	A []grid.Position `json:"a" yaml:"a"`
	B []grid.Position `json:"b" yaml:"b"`
}

// GameConfig describes one scenario
type GameConfig struct {
	Name            string         `json:"name" yaml:"name"`
	Description     string         `json:"description" yaml:"description"`
	Width           int            `json:"width" yaml:"width"`
	Height          int            `json:"height" yaml:"height"`
	UnitsPerSide    int            `json:"units_per_side" yaml:"units_per_side"`
	PlayerMoveSpeed int            `json:"player_move_speed" yaml:"player_move_speed"`
	AIMoveSpeed     int            `json:"ai_move_speed" yaml:"ai_move_speed"`
	UnitHealth      int            `json:"unit_health" yaml:"unit_health"`
	TerrainWeights  TerrainWeights `json:"terrain_weights" yaml:"terrain_weights"`

	// Layout rows override terrain generation when present
	Layout []string `json:"layout,omitempty" yaml:"layout,omitempty"`
	// Spawns override random placement when present
	Spawns *Spawns `json:"spawns,omitempty" yaml:"spawns,omitempty"`
}

// DefaultConfig returns the built-in 9x7 skirmish
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:            "classic",
		Description:     "Four against four on a random 9x7 field",
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		UnitsPerSide:    DefaultUnitsPerSide,
		PlayerMoveSpeed: DefaultPlayerMoveSpeed,
		AIMoveSpeed:     DefaultAIMoveSpeed,
		UnitHealth:      DefaultUnitHealth,
		TerrainWeights:  DefaultTerrainWeights,
	}
}

// WithDefaults returns a copy with every unset numeric field filled in.
// The board size comes from the layout when one is given.
func (c GameConfig) WithDefaults() GameConfig {
	if len(c.Layout) > 0 {
		if c.Height == 0 {
			c.Height = len(c.Layout)
		}
		if c.Width == 0 {
			c.Width = len(c.Layout[0])
		}
	}
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.UnitsPerSide == 0 {
		c.UnitsPerSide = DefaultUnitsPerSide
	}
	if c.PlayerMoveSpeed == 0 {
		c.PlayerMoveSpeed = DefaultPlayerMoveSpeed
	}
	if c.AIMoveSpeed == 0 {
		c.AIMoveSpeed = DefaultAIMoveSpeed
	}
	if c.UnitHealth == 0 {
		c.UnitHealth = DefaultUnitHealth
	}
	if c.TerrainWeights.isZero() {
		c.TerrainWeights = DefaultTerrainWeights
	}
	return c
}

// Dimensions returns the board size after defaults
func (c GameConfig) Dimensions() grid.Dimensions {
	n := c.WithDefaults()
	return grid.Dimensions{Width: n.Width, Height: n.Height}
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// ValidateGameConfig checks a scenario for correctness and playability.
// Zero numeric fields are treated as their defaults.
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return invalid("config is nil")
	}
	if config.Name == "" {
		return invalid("name is required")
	}
	c := config.WithDefaults()

	if c.Width < MinBoardSize || c.Width > MaxBoardSize {
		return invalid("width must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, c.Width)
	}
	if c.Height < MinBoardSize || c.Height > MaxBoardSize {
		return invalid("height must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, c.Height)
	}
	if c.UnitsPerSide < 1 || c.UnitsPerSide > MaxUnitsPerSide {
		return invalid("units_per_side must be between 1 and %d, got %d", MaxUnitsPerSide, c.UnitsPerSide)
	}
	if c.PlayerMoveSpeed < 1 || c.PlayerMoveSpeed > MaxMoveSpeed {
		return invalid("player_move_speed must be between 1 and %d, got %d", MaxMoveSpeed, c.PlayerMoveSpeed)
	}
	if c.AIMoveSpeed < 1 || c.AIMoveSpeed > MaxMoveSpeed {
		return invalid("ai_move_speed must be between 1 and %d, got %d", MaxMoveSpeed, c.AIMoveSpeed)
	}
	if c.UnitHealth < 1 || c.UnitHealth > MaxUnitHealth {
		return invalid("unit_health must be between 1 and %d, got %d", MaxUnitHealth, c.UnitHealth)
	}

	w := c.TerrainWeights
	for name, v := range map[string]float64{"empty": w.Empty, "soft": w.Soft, "solid": w.Solid, "transparent": w.Transparent} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid("terrain_weights.%s must be a non-negative number, got %v", name, v)
		}
	}
	if len(c.Layout) == 0 && w.Empty <= 0 {
		return invalid("terrain_weights.empty must be positive when no layout is given")
	}

	d := grid.Dimensions{Width: c.Width, Height: c.Height}
	needed := 2 * c.UnitsPerSide
	if needed > d.Area() {
		return invalid("%d units do not fit on a %dx%d board", needed, c.Width, c.Height)
	}

	var terrain []Terrain
	if len(c.Layout) > 0 {
		var err error
		terrain, err = ParseLayout(c.Layout, d)
		if err != nil {
			return err
		}
		if n := CountTerrain(terrain, Empty); n < needed {
			return invalid("layout has %d empty cells, %d units need a spawn cell", n, needed)
		}
	}

	if c.Spawns != nil {
		occupied := make(map[grid.Position]bool)
		for _, side := range []struct {
			name  string
			cells []grid.Position
		}{{"a", c.Spawns.A}, {"b", c.Spawns.B}} {
			if len(side.cells) != c.UnitsPerSide {
				return invalid("spawns.%s must list %d cells, got %d", side.name, c.UnitsPerSide, len(side.cells))
			}
			for _, p := range side.cells {
				if !d.ValidPos(p) {
					return invalid("spawns.%s cell %v is off the board", side.name, p)
				}
				if occupied[p] {
					return invalid("spawns.%s cell %v is used twice", side.name, p)
				}
				if terrain != nil && terrain[d.IndexOf(p)] != Empty {
					return invalid("spawns.%s cell %v is %s, spawns need empty terrain", side.name, p, terrain[d.IndexOf(p)])
				}
				occupied[p] = true
			}
		}
	}

	return nil
}

// ParseLayout converts layout rows into a terrain column in index order
func ParseLayout(rows []string, d grid.Dimensions) ([]Terrain, error) {
	if len(rows) != d.Height {
		return nil, invalid("layout must have %d rows to match height, got %d", d.Height, len(rows))
	}
	terrain := make([]Terrain, 0, d.Area())
	for y, row := range rows {
		if len(row) != d.Width {
			return nil, invalid("row %d must have %d characters to match width, got %d", y+1, d.Width, len(row))
		}
		for x := 0; x < len(row); x++ {
			t, ok := TerrainFromChar(row[x])
			if !ok {
				return nil, invalid("invalid character '%c' at row %d, col %d", row[x], y+1, x+1)
			}
			terrain = append(terrain, t)
		}
	}
	return terrain, nil
}

// LayoutRows renders a terrain column back into layout rows
func LayoutRows(terrain []Terrain, d grid.Dimensions) []string {
	rows := make([]string, d.Height)
	buf := make([]byte, d.Width)
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			buf[x] = terrain[d.Index(x, y)].Char()
		}
		rows[y] = string(buf)
	}
	return rows
}
