// Package config loads and caches scenario files.
//
// Scenarios live in one directory as YAML (.yaml, .yml) or JSON (.json)
// files and are addressed by file name without the extension. Each one sets
// the board size, units per side, move speeds, unit health and either
// terrain weights for a random board or a fixed layout:
//
//	name: ambush
//	description: A wall splits the field
//	units_per_side: 3
//	layout:
//	  - "........."
//	  - "...#....."
//	  - "...#..*.."
//	spawns:
//	  a: [{x: 0, y: 0}, {x: 0, y: 1}, {x: 0, y: 2}]
//	  b: [{x: 8, y: 0}, {x: 8, y: 1}, {x: 8, y: 2}]
//
// Layout characters: '.' empty, '*' soft cover, '#' solid wall,
// '=' transparent obstacle.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	gameConfig, err := manager.LoadConfig("ambush")
//	defaultConfig := manager.GetDefault()
//	configs, err := manager.ListConfigs()
package config
