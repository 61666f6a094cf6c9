// Command validate checks the scenario files in a configs directory
// (../configs unless a directory is given). It checks:
//   - YAML or JSON structure
//   - Board limits, unit counts and terrain weights
//   - Layout rows and spawn cells of fixed scenarios
//   - That the scenario name matches its file name
//   - Connectivity: every walkable cell of a fixed layout joins up
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wricardo/isotactics/game/config"
	"github.com/wricardo/isotactics/game/engine"
	"github.com/wricardo/isotactics/game/grid"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) info(format string, args ...interface{}) {
	r.Errors = append(r.Errors, "✓ "+fmt.Sprintf(format, args...))
}

// validateConfig loads and validates a single scenario file
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	cfg, err := config.Decode(filePath, data)
	if err != nil {
		result.fail("Invalid scenario: %v", err)
		return result
	}

	if err := engine.ValidateGameConfig(cfg); err != nil {
		result.fail("%v", err)
		return result
	}

	if id := config.ConfigID(result.File); cfg.Name != id {
		result.fail("name %q does not match file name %q", cfg.Name, id)
	}

	c := cfg.WithDefaults()
	d := grid.Dimensions{Width: c.Width, Height: c.Height}

	if len(c.Layout) > 0 {
		// ValidateGameConfig already accepted the rows
		terrain, _ := engine.ParseLayout(c.Layout, d)
		connectivity := validateConnectivity(terrain, d)
		if !connectivity.Valid {
			result.Valid = false
		}
		result.Errors = append(result.Errors, connectivity.Errors...)
	}

	if result.Valid {
		result.info("Name: %s", c.Name)
		result.info("Board: %dx%d", c.Width, c.Height)
		result.info("Units per side: %d", c.UnitsPerSide)
		result.info("Move speed: player %d, computer %d", c.PlayerMoveSpeed, c.AIMoveSpeed)
		result.info("Health: %d", c.UnitHealth)
		if len(c.Layout) > 0 {
			result.info("Layout: fixed")
		} else {
			result.info("Layout: random")
		}
		if c.Spawns != nil {
			result.info("Spawns: fixed")
		} else {
			result.info("Spawns: random")
		}
	}

	return result
}

// validateConnectivity ensures every walkable cell can be reached from the
// first one, so no unit can be sealed away from the fight
func validateConnectivity(terrain []engine.Terrain, d grid.Dimensions) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	var walkable []grid.Position
	for i, t := range terrain {
		if !t.BlocksMovement() {
			walkable = append(walkable, d.XY(i))
		}
	}
	if len(walkable) == 0 {
		result.fail("Cannot validate connectivity: no walkable cells")
		return result
	}

	reached := map[grid.Position]bool{walkable[0]: true}
	for _, p := range engine.ReachableCells(terrain, d, walkable[0], d.Area()) {
		reached[p] = true
	}

	var cutOff []string
	for _, p := range walkable {
		if !reached[p] {
			cutOff = append(cutOff, p.String())
		}
	}

	if len(cutOff) > 0 {
		result.fail("Connectivity failure: %d/%d walkable cells cut off", len(cutOff), len(walkable))
		for _, p := range cutOff {
			result.Errors = append(result.Errors, fmt.Sprintf("Unreachable: %s", p))
		}
	} else {
		result.info("Connectivity: all %d walkable cells join up", len(walkable))
	}

	return result
}

// scenarioFiles lists the yaml, yml and json files of dir
func scenarioFiles(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml", "*.json"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// main validates every scenario in the directory, printing a concise report
// and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}
	files, err := scenarioFiles(configDir)
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No scenario files found in %s\n", configDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
