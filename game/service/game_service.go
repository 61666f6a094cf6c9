package service

import (
	"context"
	"time"

	"github.com/wricardo/isotactics/game/engine"
	"github.com/wricardo/isotactics/game/grid"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	SelectUnit(ctx context.Context, sessionID string, pos grid.Position) (*ActionResult, error)
	ClearSelection(ctx context.Context, sessionID string) (*ActionResult, error)
	Move(ctx context.Context, sessionID string, pos grid.Position) (*ActionResult, error)
	Shoot(ctx context.Context, sessionID string, pos grid.Position) (*ActionResult, error)
	PassShot(ctx context.Context, sessionID string) (*ActionResult, error)
	Hover(ctx context.Context, sessionID string, pos grid.Position) (*HoverResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.GameConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.GameConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// ConfigManager handles scenario loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}

// Session represents an active game session
type Session struct {
	ID             string
	Engine         *engine.Game
	Config         *engine.GameConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
