package service_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/wricardo/isotactics/game/engine"
	"github.com/wricardo/isotactics/game/grid"
	"github.com/wricardo/isotactics/game/service"
	"github.com/wricardo/isotactics/game/session"
)

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{
		sessions: make(map[string]*service.Session),
	}
}

func (m *MockSessionManager) Create(id string, config *engine.GameConfig) (*service.Session, error) {
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}

	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	game, err := engine.New(config, rand.New(rand.NewSource(1)))
	if err != nil {
		return nil, err
	}

	sess := &service.Session{
		ID:             id,
		Engine:         game,
		Config:         config,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	m.sessions[id] = sess
	return sess, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	sess, exists := m.sessions[id]
	if !exists {
		return nil, errors.New("session not found")
	}
	return sess, nil
}

func (m *MockSessionManager) GetOrCreate(id string, config *engine.GameConfig) (*service.Session, error) {
	if sess, exists := m.sessions[id]; exists {
		return sess, nil
	}
	return m.Create(id, config)
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		result = append(result, sess)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errors.New("session not found")
	}
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) UpdateLastAccessed(id string) error {
	if sess, exists := m.sessions[id]; exists {
		sess.LastAccessedAt = time.Now()
		return nil
	}
	return errors.New("session not found")
}

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	configs map[string]*engine.GameConfig
	saved   map[string]*engine.GameConfig
}

// testConfig is an open 7x5 field with both sides in fixed corners
func testConfig() *engine.GameConfig {
	return &engine.GameConfig{
		Name:         "test",
		Description:  "Test scenario",
		UnitsPerSide: 2,
		Layout: []string{
			".......",
			".......",
			".......",
			".......",
			".......",
		},
		Spawns: &engine.Spawns{
			A: []grid.Position{{X: 0, Y: 0}, {X: 0, Y: 4}},
			B: []grid.Position{{X: 6, Y: 0}, {X: 6, Y: 4}},
		},
	}
}

func NewMockConfigManager() *MockConfigManager {
	defaultConfig := testConfig()
	return &MockConfigManager{
		configs: map[string]*engine.GameConfig{
			"test":    defaultConfig,
			"default": defaultConfig,
		},
		saved: make(map[string]*engine.GameConfig),
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*engine.GameConfig, error) {
	config, exists := m.configs[name]
	if !exists {
		return nil, errors.New("configuration not found")
	}
	return config, nil
}

func (m *MockConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	result := make([]*service.ConfigInfo, 0, len(m.configs))
	for name, config := range m.configs {
		result = append(result, &service.ConfigInfo{
			Filename:    name + ".yaml",
			ConfigID:    name,
			Name:        config.Name,
			Description: config.Description,
		})
	}
	return result, nil
}

func (m *MockConfigManager) GetDefault() *engine.GameConfig {
	return m.configs["default"]
}

func (m *MockConfigManager) SaveConfig(name string, config *engine.GameConfig) error {
	if err := engine.ValidateGameConfig(config); err != nil {
		return err
	}
	m.saved[name] = config
	return nil
}

func newTestService(t *testing.T) (service.GameService, string) {
	t.Helper()
	svc := service.NewGameService(NewMockSessionManager(), NewMockConfigManager())
	info, err := svc.CreateSession(context.Background(), "test")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return svc, info.ID
}

func hasEvent(events []service.GameEvent, kind string) bool {
	for _, ev := range events {
		if ev.Type == kind {
			return true
		}
	}
	return false
}

func TestGameService_CreateSession(t *testing.T) {
	ctx := context.Background()
	svc := service.NewGameService(NewMockSessionManager(), NewMockConfigManager())

	tests := []struct {
		name       string
		configName string
		wantErr    bool
	}{
		{"create with default config", "", false},
		{"create with specific config", "test", false},
		{"create with unknown config", "nonexistent", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := svc.CreateSession(ctx, tt.configName)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateSession() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, service.ErrUnknownConfig) {
					t.Errorf("Expected ErrUnknownConfig, got %v", err)
				}
				return
			}
			if info.GameState == nil || len(info.GameState.Units) != 4 {
				t.Errorf("Expected a game with 4 units, got %+v", info.GameState)
			}
			if info.ConfigName == "" {
				t.Error("Expected a config identifier")
			}
		})
	}
}

func TestGameService_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, id := newTestService(t)

	info, err := svc.GetSession(ctx, id)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if info.ID != id || info.GameConfig.Name != "test" {
		t.Errorf("Unexpected session info: %+v", info)
	}

	list, err := svc.ListSessions(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("Expected 1 session, got %d (%v)", len(list), err)
	}

	if err := svc.DeleteSession(ctx, id); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if _, err := svc.GetSession(ctx, id); err == nil {
		t.Error("Expected error for deleted session")
	}
}

func TestGameService_UnknownSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	p := grid.Position{X: 0, Y: 0}

	calls := map[string]func() error{
		"select": func() error { _, err := svc.SelectUnit(ctx, "nope", p); return err },
		"clear":  func() error { _, err := svc.ClearSelection(ctx, "nope"); return err },
		"move":   func() error { _, err := svc.Move(ctx, "nope", p); return err },
		"shoot":  func() error { _, err := svc.Shoot(ctx, "nope", p); return err },
		"pass":   func() error { _, err := svc.PassShot(ctx, "nope"); return err },
		"hover":  func() error { _, err := svc.Hover(ctx, "nope", p); return err },
		"reset":  func() error { _, err := svc.Reset(ctx, "nope"); return err },
		"state":  func() error { _, err := svc.GetGameState(ctx, "nope"); return err },
	}
	for name, call := range calls {
		if err := call(); err == nil || !strings.Contains(err.Error(), "session not found") {
			t.Errorf("%s: expected session not found, got %v", name, err)
		}
	}
}

func TestGameService_TurnFlow(t *testing.T) {
	ctx := context.Background()
	svc, id := newTestService(t)

	sel, err := svc.SelectUnit(ctx, id, grid.Position{X: 0, Y: 0})
	if err != nil {
		t.Fatalf("SelectUnit failed: %v", err)
	}
	if !sel.Applied || !hasEvent(sel.Events, service.EventSelect) {
		t.Fatalf("Expected applied selection with a select event, got %+v", sel)
	}
	if sel.GameState.Selected == nil {
		t.Error("Expected a selected slot in the state")
	}

	mv, err := svc.Move(ctx, id, grid.Position{X: 2, Y: 0})
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !mv.Applied || mv.GameState.Phase != "shoot" {
		t.Fatalf("Expected move into the shoot phase, got %+v", mv)
	}
	if !hasEvent(mv.Events, service.EventMove) || !hasEvent(mv.Events, service.EventPhase) {
		t.Errorf("Expected move and phase events, got %+v", mv.Events)
	}

	shot, err := svc.Shoot(ctx, id, grid.Position{X: 6, Y: 0})
	if err != nil {
		t.Fatalf("Shoot failed: %v", err)
	}
	if !shot.Applied {
		t.Fatalf("Expected shot to apply: %s", shot.Message)
	}
	if !hasEvent(shot.Events, service.EventDamage) {
		t.Errorf("Expected a damage event, got %+v", shot.Events)
	}
	if !hasEvent(shot.Events, service.EventAITurn) {
		t.Errorf("Expected an ai_turn event, got %+v", shot.Events)
	}
	if shot.GameState.Phase != "move" || shot.GameState.ActiveTeam != "A" || shot.GameState.Turn != 1 {
		t.Errorf("Expected a new player turn, got phase=%s team=%s turn=%d",
			shot.GameState.Phase, shot.GameState.ActiveTeam, shot.GameState.Turn)
	}
}

func TestGameService_MissAndPass(t *testing.T) {
	ctx := context.Background()
	svc, id := newTestService(t)

	svc.SelectUnit(ctx, id, grid.Position{X: 0, Y: 0})
	svc.Move(ctx, id, grid.Position{X: 0, Y: 1})
	shot, err := svc.Shoot(ctx, id, grid.Position{X: 3, Y: 1})
	if err != nil {
		t.Fatalf("Shoot failed: %v", err)
	}
	if !shot.Applied || !hasEvent(shot.Events, service.EventMiss) {
		t.Errorf("Expected a miss event, got %+v", shot.Events)
	}

	if shot.GameState.Turn != 1 {
		t.Fatalf("Expected turn 1 after the miss, got %d", shot.GameState.Turn)
	}

	var mover *grid.Position
	for _, u := range shot.GameState.Units {
		if u.Team == "A" {
			pos := u.Position
			mover = &pos
			break
		}
	}
	if mover == nil {
		t.Skip("AI overran every player unit")
	}
	sel, _ := svc.SelectUnit(ctx, id, *mover)
	if !sel.Applied || len(sel.GameState.Overlay) == 0 {
		t.Fatalf("Expected a selectable unit with somewhere to go, got %+v", sel)
	}
	if mv, _ := svc.Move(ctx, id, sel.GameState.Overlay[0]); !mv.Applied {
		t.Fatalf("Expected move to overlay cell to apply: %s", mv.Message)
	}

	res, err := svc.PassShot(ctx, id)
	if err != nil {
		t.Fatalf("PassShot failed: %v", err)
	}
	if !res.Applied || !hasEvent(res.Events, service.EventAITurn) {
		t.Errorf("Expected pass to hand the turn to the AI, got %+v", res)
	}
	if res.GameState.Turn != 2 {
		t.Errorf("Expected turn 2, got %d", res.GameState.Turn)
	}
}

func TestGameService_RejectedActions(t *testing.T) {
	ctx := context.Background()
	svc, id := newTestService(t)
	before, _ := svc.GetGameState(ctx, id)

	tests := []struct {
		name    string
		run     func() (*service.ActionResult, error)
		message string
	}{
		{"move without selection", func() (*service.ActionResult, error) {
			return svc.Move(ctx, id, grid.Position{X: 1, Y: 0})
		}, "Select a unit first"},
		{"shoot in move phase", func() (*service.ActionResult, error) {
			return svc.Shoot(ctx, id, grid.Position{X: 1, Y: 0})
		}, "Move a unit before shooting"},
		{"select enemy", func() (*service.ActionResult, error) {
			return svc.SelectUnit(ctx, id, grid.Position{X: 6, Y: 0})
		}, "No unit of yours"},
		{"pass in move phase", func() (*service.ActionResult, error) {
			return svc.PassShot(ctx, id)
		}, "move a unit first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.run()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if res.Applied {
				t.Fatal("Expected the action to be rejected")
			}
			if !strings.Contains(res.Message, tt.message) {
				t.Errorf("Expected message containing %q, got %q", tt.message, res.Message)
			}
			if len(res.Events) != 0 {
				t.Errorf("Expected no events, got %+v", res.Events)
			}
		})
	}

	after, _ := svc.GetGameState(ctx, id)
	if fmt.Sprint(before.Units) != fmt.Sprint(after.Units) || after.Phase != before.Phase {
		t.Error("Expected rejected actions to leave the game untouched")
	}
}

func TestGameService_ClearSelection(t *testing.T) {
	ctx := context.Background()
	svc, id := newTestService(t)

	svc.SelectUnit(ctx, id, grid.Position{X: 0, Y: 0})
	res, err := svc.ClearSelection(ctx, id)
	if err != nil {
		t.Fatalf("ClearSelection failed: %v", err)
	}
	if !res.Applied || res.GameState.Selected != nil || len(res.GameState.Overlay) != 0 {
		t.Errorf("Expected selection and overlay cleared, got %+v", res.GameState)
	}
	if !hasEvent(res.Events, service.EventCleared) {
		t.Errorf("Expected a cleared event, got %+v", res.Events)
	}

	svc.SelectUnit(ctx, id, grid.Position{X: 0, Y: 0})
	svc.Move(ctx, id, grid.Position{X: 1, Y: 0})
	res, _ = svc.ClearSelection(ctx, id)
	if res.Applied {
		t.Error("Expected clear to be rejected in the shoot phase")
	}
}

func TestGameService_Hover(t *testing.T) {
	ctx := context.Background()
	svc, id := newTestService(t)

	tests := []struct {
		name      string
		pos       grid.Position
		wantUnit  bool
		wantCells int
	}{
		// Speed 4 from a corner of a 7x5 board, minus the other B unit's cell
		{"ai unit", grid.Position{X: 6, Y: 0}, true, 13},
		{"empty cell", grid.Position{X: 3, Y: 2}, false, 0},
		{"off board", grid.Position{X: 9, Y: 9}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Hover(ctx, id, tt.pos)
			if err != nil {
				t.Fatalf("Hover failed: %v", err)
			}
			if (res.Unit != nil) != tt.wantUnit {
				t.Errorf("Expected unit=%v, got %+v", tt.wantUnit, res.Unit)
			}
			if len(res.Cells) != tt.wantCells {
				t.Errorf("Expected %d cells, got %d", tt.wantCells, len(res.Cells))
			}
		})
	}
}

func TestGameService_Reset(t *testing.T) {
	ctx := context.Background()
	svc, id := newTestService(t)

	svc.SelectUnit(ctx, id, grid.Position{X: 0, Y: 0})
	svc.Move(ctx, id, grid.Position{X: 1, Y: 0})
	svc.PassShot(ctx, id)

	state, err := svc.Reset(ctx, id)
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if state.Turn != 0 || state.Phase != "move" || len(state.Units) != 4 {
		t.Errorf("Expected a fresh game, got turn=%d phase=%s units=%d", state.Turn, state.Phase, len(state.Units))
	}
	if state.Units[0].Position != (grid.Position{X: 0, Y: 0}) {
		t.Errorf("Expected fixed spawn at (0,0), got %v", state.Units[0].Position)
	}
}

func TestGameService_Configs(t *testing.T) {
	ctx := context.Background()
	configs := NewMockConfigManager()
	svc := service.NewGameService(NewMockSessionManager(), configs)

	list, err := svc.ListConfigs(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("Expected 2 configs, got %d (%v)", len(list), err)
	}

	cfg, err := svc.LoadConfig(ctx, "test")
	if err != nil || cfg.Name != "test" {
		t.Fatalf("Unexpected LoadConfig result: %+v, %v", cfg, err)
	}

	if err := svc.SaveConfig(ctx, "new", testConfig()); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	if configs.saved["new"] == nil {
		t.Error("Expected config to reach the manager")
	}
	if err := svc.SaveConfig(ctx, "bad", &engine.GameConfig{}); !errors.Is(err, engine.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestGameService_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	sessions := session.NewManagerWithRand(func() engine.Rand { return rand.New(rand.NewSource(5)) })
	svc := service.NewGameService(sessions, NewMockConfigManager())

	info, err := svc.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			switch i % 4 {
			case 0:
				svc.SelectUnit(ctx, info.ID, grid.Position{X: 0, Y: 4})
			case 1:
				svc.Move(ctx, info.ID, grid.Position{X: 1, Y: 4})
			case 2:
				svc.PassShot(ctx, info.ID)
			default:
				if _, err := svc.GetGameState(ctx, info.ID); err != nil {
					t.Errorf("GetGameState failed: %v", err)
				}
			}
		}(i)
	}
	wg.Wait()

	state, err := svc.GetGameState(ctx, info.ID)
	if err != nil {
		t.Fatalf("GetGameState failed: %v", err)
	}
	if state.ActiveTeam != "A" {
		t.Errorf("Expected side A active between calls, got %s", state.ActiveTeam)
	}
}
