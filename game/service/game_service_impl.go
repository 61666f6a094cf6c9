package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/wricardo/isotactics/game/engine"
	"github.com/wricardo/isotactics/game/grid"
)

// ErrUnknownConfig is returned when a session asks for a scenario that does not exist
var ErrUnknownConfig = errors.New("unknown config")

// gameServiceImpl implements the GameService interface. One mutex
// serializes every call so each engine sees a single actor.
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

func (s *gameServiceImpl) sessionInfo(sess *Session, configID string) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     configID,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.State(),
		GameConfig:     sess.Config,
	}
}

// CreateSession starts a game from the named scenario, or the default one
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("%w: '%s' not found. Available configs: %v", ErrUnknownConfig, configName, configIDs)
				}
				return nil, fmt.Errorf("%w: '%s' not found. Use /api/configs to list available configurations", ErrUnknownConfig, configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	sess, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return s.sessionInfo(sess, configID), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return s.sessionInfo(sess, s.getConfigID(sess.Config.Name)), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess, s.getConfigID(sess.Config.Name)))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// act runs one command against a session's engine and reports what changed
func (s *gameServiceImpl) act(sessionID, action string, target *grid.Position, apply func(g *engine.Game) bool) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	before := sess.Engine.State()
	applied := apply(sess.Engine)
	after := sess.Engine.State()

	result := &ActionResult{
		Action:    action,
		Applied:   applied,
		Target:    target,
		GameState: after,
		Events:    []GameEvent{},
	}
	if applied {
		result.Events = diffEvents(action, target, before, after)
	}
	result.Message = describe(action, applied, target, before, after)
	return result, nil
}

// SelectUnit selects the player's unit at pos
func (s *gameServiceImpl) SelectUnit(ctx context.Context, sessionID string, pos grid.Position) (*ActionResult, error) {
	return s.act(sessionID, ActionSelect, &pos, func(g *engine.Game) bool {
		return g.SelectUnit(pos)
	})
}

// ClearSelection drops the current selection during the Move phase
func (s *gameServiceImpl) ClearSelection(ctx context.Context, sessionID string) (*ActionResult, error) {
	return s.act(sessionID, ActionClearSelection, nil, func(g *engine.Game) bool {
		if g.ActivePhase() != engine.PhaseMove {
			return false
		}
		g.ClearSelection()
		return true
	})
}

// Move moves the selected unit to pos
func (s *gameServiceImpl) Move(ctx context.Context, sessionID string, pos grid.Position) (*ActionResult, error) {
	return s.act(sessionID, ActionMove, &pos, func(g *engine.Game) bool {
		return g.RequestMove(pos)
	})
}

// Shoot fires the moved unit at pos; the AI answers before this returns
func (s *gameServiceImpl) Shoot(ctx context.Context, sessionID string, pos grid.Position) (*ActionResult, error) {
	return s.act(sessionID, ActionShoot, &pos, func(g *engine.Game) bool {
		return g.RequestShoot(pos)
	})
}

// PassShot ends the Shoot phase without firing
func (s *gameServiceImpl) PassShot(ctx context.Context, sessionID string) (*ActionResult, error) {
	return s.act(sessionID, ActionPass, nil, func(g *engine.Game) bool {
		return g.PassShot()
	})
}

// Hover previews the movement range of whatever unit stands on pos
func (s *gameServiceImpl) Hover(ctx context.Context, sessionID string, pos grid.Position) (*HoverResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	result := &HoverResult{Position: pos, Cells: []grid.Position{}}
	if !sess.Engine.Dimensions().ValidPos(pos) {
		return result, nil
	}
	if u, ok := sess.Engine.UnitAt(pos); ok {
		result.Unit = &u
		if cells := sess.Engine.HoverPreview(pos); cells != nil {
			result.Cells = cells
		}
	}
	return result, nil
}

// Reset starts the session's scenario over
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	if err := sess.Engine.Reset(); err != nil {
		return nil, fmt.Errorf("failed to reset game: %w", err)
	}
	return sess.Engine.State(), nil
}

// GetGameState returns the current snapshot of a session
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.State(), nil
}

// ListConfigs returns all available scenarios
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific scenario
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a scenario to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// diffEvents derives events by comparing unit views before and after a command
func diffEvents(action string, target *grid.Position, before, after *engine.GameState) []GameEvent {
	now := time.Now()
	events := []GameEvent{}

	if action == ActionSelect && after.Selected != nil {
		for _, u := range after.Units {
			if u.Slot == *after.Selected {
				pos := u.Position
				events = append(events, GameEvent{
					Type:      EventSelect,
					Message:   fmt.Sprintf("%s selected, %d cells reachable", u.Name, len(after.Overlay)),
					Timestamp: now,
					Team:      u.Team,
					Unit:      u.Name,
					Position:  &pos,
				})
			}
		}
	}
	if action == ActionClearSelection && before.Selected != nil {
		events = append(events, GameEvent{Type: EventCleared, Message: "Selection cleared", Timestamp: now})
	}

	afterBySlot := make(map[int]engine.UnitView, len(after.Units))
	for _, u := range after.Units {
		afterBySlot[u.Slot] = u
	}

	hit := false
	for _, prev := range before.Units {
		cur, alive := afterBySlot[prev.Slot]
		if !alive {
			pos := prev.Position
			events = append(events, GameEvent{
				Type:      EventKill,
				Message:   fmt.Sprintf("%s (%s) was killed at %v", prev.Name, prev.Team, prev.Position),
				Timestamp: now,
				Team:      prev.Team,
				Unit:      prev.Name,
				Position:  &pos,
			})
			if target != nil && prev.Position == *target {
				hit = true
			}
			continue
		}
		if cur.Position != prev.Position {
			kind := EventMove
			if cur.Team == "B" {
				kind = EventAIMove
			}
			pos := cur.Position
			events = append(events, GameEvent{
				Type:      kind,
				Message:   fmt.Sprintf("%s moved from %v to %v", cur.Name, prev.Position, cur.Position),
				Timestamp: now,
				Team:      cur.Team,
				Unit:      cur.Name,
				Position:  &pos,
			})
		}
		if cur.Health < prev.Health {
			pos := cur.Position
			events = append(events, GameEvent{
				Type:      EventDamage,
				Message:   fmt.Sprintf("%s hit, health %d/%d", cur.Name, cur.Health, cur.MaxHealth),
				Timestamp: now,
				Team:      cur.Team,
				Unit:      cur.Name,
				Position:  &pos,
			})
			hit = true
		}
	}

	if action == ActionShoot && !hit {
		events = append(events, GameEvent{Type: EventMiss, Message: fmt.Sprintf("Shot at %v hit nothing", *target), Timestamp: now, Position: target})
	}
	if after.Phase != before.Phase {
		events = append(events, GameEvent{Type: EventPhase, Message: fmt.Sprintf("Phase is now %s", after.Phase), Timestamp: now})
	}
	if after.Turn > before.Turn {
		events = append(events, GameEvent{Type: EventAITurn, Message: fmt.Sprintf("AI answered, turn %d begins", after.Turn+1), Timestamp: now})
	}
	if after.Winner != "" && after.Winner != before.Winner {
		events = append(events, GameEvent{Type: EventWinner, Message: fmt.Sprintf("Side %s has no opponents left", after.Winner), Timestamp: now, Team: after.Winner})
	}
	return events
}

// describe builds the one-line message of an action result
func describe(action string, applied bool, target *grid.Position, before, after *engine.GameState) string {
	if applied {
		switch action {
		case ActionSelect:
			return fmt.Sprintf("Unit selected, %d cells reachable", len(after.Overlay))
		case ActionClearSelection:
			return "Selection cleared"
		case ActionMove:
			return fmt.Sprintf("Moved to %v, choose a target: %d cells in range", *target, len(after.Overlay))
		case ActionShoot:
			return fmt.Sprintf("Fired at %v, AI has moved", *target)
		case ActionPass:
			return "Shot passed, AI has moved"
		}
		return "ok"
	}

	if before.ActiveTeam != "A" {
		return "It is not the player's turn"
	}
	switch action {
	case ActionSelect:
		if before.Phase != engine.PhaseMove.String() {
			return "Cannot change selection in the shoot phase"
		}
		return fmt.Sprintf("No unit of yours at %v", *target)
	case ActionClearSelection:
		return "Cannot clear the selection in the shoot phase"
	case ActionMove:
		if before.Phase != engine.PhaseMove.String() {
			return "Already moved, shoot or pass"
		}
		if before.Selected == nil {
			return "Select a unit first"
		}
		return fmt.Sprintf("%v is not reachable", *target)
	case ActionShoot:
		if before.Phase != engine.PhaseShoot.String() {
			return "Move a unit before shooting"
		}
		return fmt.Sprintf("%v is not in a firing lane", *target)
	case ActionPass:
		return "Nothing to pass, move a unit first"
	}
	return "ignored"
}
