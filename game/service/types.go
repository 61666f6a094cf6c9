package service

import (
	"time"

	"github.com/wricardo/isotactics/game/engine"
	"github.com/wricardo/isotactics/game/grid"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// Action names reported in results and events
const (
	ActionSelect         = "select"
	ActionClearSelection = "clear_selection"
	ActionMove           = "move"
	ActionShoot          = "shoot"
	ActionPass           = "pass"
)

// ActionResult is the outcome of one player command
type ActionResult struct {
	Action    string            `json:"action"`
	Applied   bool              `json:"applied"`
	Target    *grid.Position    `json:"target,omitempty"`
	Message   string            `json:"message"`
	GameState *engine.GameState `json:"game_state"`
	Events    []GameEvent       `json:"events"`
}

// HoverResult lists where the unit under a cell could move
type HoverResult struct {
	Position grid.Position    `json:"position"`
	Unit     *engine.UnitView `json:"unit,omitempty"`
	Cells    []grid.Position  `json:"cells"`
}

// Event types
const (
	EventMove    = "move"
	EventKill    = "kill"
	EventDamage  = "damage"
	EventMiss    = "miss"
	EventAIMove  = "ai_move"
	EventPhase   = "phase"
	EventAITurn  = "ai_turn"
	EventWinner  = "winner"
	EventReset   = "reset"
	EventSelect  = "select"
	EventCleared = "cleared"
)

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Team      string         `json:"team,omitempty"`
	Unit      string         `json:"unit,omitempty"`
	Position  *grid.Position `json:"position,omitempty"`
}

// ConfigInfo provides information about a scenario
type ConfigInfo struct {
	Filename     string `json:"filename"`
	ConfigID     string `json:"config_id"` // The identifier to use for session creation
	Name         string `json:"name"`      // Display name
	Description  string `json:"description"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	UnitsPerSide int    `json:"units_per_side"`
	FixedLayout  bool   `json:"fixed_layout"`
	FixedSpawns  bool   `json:"fixed_spawns"`
}
