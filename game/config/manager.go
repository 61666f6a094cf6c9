package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/wricardo/isotactics/game/engine"
	"github.com/wricardo/isotactics/game/service"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// Scenario file extensions in lookup order
var extensions = []string{".yaml", ".yml", ".json"}

// Manager handles scenario loading and caching
type Manager struct {
	configDir     string
	defaultConfig *engine.GameConfig
	configs       map[string]*engine.GameConfig
	mu            sync.RWMutex
}

// NewManager creates a new configuration manager
func NewManager(configDir string) (*Manager, error) {
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir: configDir,
		configs:   make(map[string]*engine.GameConfig),
	}

	if err := m.loadDefaultConfig(); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	return m, nil
}

// ConfigID strips a known scenario extension from a file name
func ConfigID(filename string) string {
	ext := filepath.Ext(filename)
	for _, known := range extensions {
		if ext == known {
			return strings.TrimSuffix(filename, ext)
		}
	}
	return filename
}

func isScenarioFile(name string) bool {
	return ConfigID(name) != name
}

// Decode parses scenario data, choosing the format from the file extension
func Decode(filename string, data []byte) (*engine.GameConfig, error) {
	var config engine.GameConfig
	if filepath.Ext(filename) == ".json" {
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		return &config, nil
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &config, nil
}

// Encode renders a scenario in the format the file extension calls for
func Encode(filename string, config *engine.GameConfig) ([]byte, error) {
	if filepath.Ext(filename) == ".json" {
		return json.MarshalIndent(config, "", "  ")
	}
	return yaml.Marshal(config)
}

// resolve finds the file backing a config name
func (m *Manager) resolve(name string) (string, error) {
	if isScenarioFile(name) {
		return filepath.Join(m.configDir, name), nil
	}
	for _, ext := range extensions {
		path := filepath.Join(m.configDir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrConfigNotFound
}

// LoadConfig loads a configuration by name. The extension is optional.
func (m *Manager) LoadConfig(name string) (*engine.GameConfig, error) {
	id := ConfigID(name)
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return nil, ErrConfigNotFound
	}

	m.mu.RLock()
	if config, exists := m.configs[id]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if config, exists := m.configs[id]; exists {
		return config, nil
	}

	path, err := m.resolve(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := Decode(path, data)
	if err != nil {
		return nil, err
	}

	if err := engine.ValidateGameConfig(config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	m.configs[id] = config
	return config, nil
}

// ListConfigs describes every valid scenario in the directory, sorted by id
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var configs []*service.ConfigInfo
	seen := make(map[string]bool)

	for _, entry := range entries {
		if entry.IsDir() || !isScenarioFile(entry.Name()) {
			continue
		}
		id := ConfigID(entry.Name())
		if seen[id] {
			continue
		}

		config, err := m.LoadConfig(entry.Name())
		if err != nil {
			// Skip invalid configs
			continue
		}
		seen[id] = true

		configs = append(configs, NewConfigInfo(entry.Name(), config))
	}

	sort.Slice(configs, func(i, j int) bool { return configs[i].ConfigID < configs[j].ConfigID })
	return configs, nil
}

// NewConfigInfo summarises a scenario for listings
func NewConfigInfo(filename string, config *engine.GameConfig) *service.ConfigInfo {
	c := config.WithDefaults()
	return &service.ConfigInfo{
		Filename:     filename,
		ConfigID:     ConfigID(filename),
		Name:         c.Name,
		Description:  c.Description,
		Width:        c.Width,
		Height:       c.Height,
		UnitsPerSide: c.UnitsPerSide,
		FixedLayout:  len(c.Layout) > 0,
		FixedSpawns:  c.Spawns != nil,
	}
}

// GetDefault returns the default configuration
func (m *Manager) GetDefault() *engine.GameConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultConfig
}

// SetDefault sets the default configuration by name
func (m *Manager) SetDefault(name string) error {
	config, err := m.LoadConfig(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultConfig = config
	return nil
}

// RefreshCache drops every cached scenario and reloads the default
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.configs = make(map[string]*engine.GameConfig)
	m.mu.Unlock()

	return m.loadDefaultConfig()
}

// loadDefaultConfig prefers classic, then the first valid scenario, then
// the built-in skirmish
func (m *Manager) loadDefaultConfig() error {
	config, err := m.LoadConfig("classic")
	if err != nil {
		configs, listErr := m.ListConfigs()
		if listErr != nil || len(configs) == 0 {
			m.setDefault(engine.DefaultConfig())
			return nil
		}

		config, err = m.LoadConfig(configs[0].Filename)
		if err != nil {
			m.setDefault(engine.DefaultConfig())
			return nil
		}
	}

	m.setDefault(config)
	return nil
}

func (m *Manager) setDefault(config *engine.GameConfig) {
	m.mu.Lock()
	m.defaultConfig = config
	m.mu.Unlock()
}

// SaveConfig writes a scenario to disk. Names without an extension are
// saved as YAML.
func (m *Manager) SaveConfig(name string, config *engine.GameConfig) error {
	if err := engine.ValidateGameConfig(config); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	id := ConfigID(name)
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return fmt.Errorf("%w: %w: bad config name %q", ErrInvalidConfig, engine.ErrInvalidConfig, name)
	}

	filename := name
	if !isScenarioFile(filename) {
		filename = name + ".yaml"
	}

	data, err := Encode(filename, config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(m.configDir, filename), data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	m.mu.Lock()
	m.configs[id] = config
	m.mu.Unlock()

	return nil
}
