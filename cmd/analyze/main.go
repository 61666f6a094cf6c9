// Command analyze prints quick, human-readable heuristics about the scenario
// files in the project's configs directory. It summarizes board size, terrain
// mix, how far a player unit can get in one move, cells a unit could never
// leave and how many steps separate fixed spawns. Random boards are sampled
// with a fixed seed.
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"github.com/wricardo/isotactics/game/config"
	"github.com/wricardo/isotactics/game/engine"
	"github.com/wricardo/isotactics/game/grid"
	"github.com/wricardo/isotactics/game/pathfind"
)

// Boards drawn for a scenario without a fixed layout
const randomSamples = 50

// Analysis summarizes one scenario
type Analysis struct {
	Name         string
	Width        int
	Height       int
	UnitsPerSide int
	MoveSpeed    int
	FixedLayout  bool
	Samples      int
	// Terrain is the mean cell count per kind, indexed by engine.Terrain
	Terrain [4]float64
	// Mobility is the mean number of cells a player unit reaches from a
	// walkable cell in one move
	Mobility float64
	// Trapped is the mean number of walkable cells with no legal move out
	Trapped float64
	FixedSpawns bool
	// SpawnGap is the fewest moves from a side A spawn onto a side B spawn,
	// or -1 when no path exists or spawns are random
	SpawnGap int
}

func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml", "*.json"} {
		matches, _ := filepath.Glob(filepath.Join(configDir, pattern))
		files = append(files, matches...)
	}
	sort.Strings(files)

	rng := rand.New(rand.NewSource(1))
	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		a, err := analyzeConfig(file, rng)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		printAnalysis(os.Stdout, a)
	}
}

func analyzeConfig(path string, rng engine.Rand) (*Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	cfg, err := config.Decode(path, data)
	if err != nil {
		return nil, err
	}
	if err := engine.ValidateGameConfig(cfg); err != nil {
		return nil, err
	}

	c := cfg.WithDefaults()
	d := grid.Dimensions{Width: c.Width, Height: c.Height}
	a := &Analysis{
		Name:         c.Name,
		Width:        c.Width,
		Height:       c.Height,
		UnitsPerSide: c.UnitsPerSide,
		MoveSpeed:    c.PlayerMoveSpeed,
		FixedLayout:  len(c.Layout) > 0,
		Samples:      1,
		SpawnGap:     -1,
	}

	var boards [][]engine.Terrain
	if a.FixedLayout {
		terrain, err := engine.ParseLayout(c.Layout, d)
		if err != nil {
			return nil, err
		}
		boards = append(boards, terrain)
	} else {
		a.Samples = randomSamples
		for i := 0; i < randomSamples; i++ {
			boards = append(boards, engine.GenerateTerrain(d, c.TerrainWeights, rng))
		}
	}

	var walkable int
	var reached int
	for _, terrain := range boards {
		for i, t := range terrain {
			a.Terrain[t]++
			if t.BlocksMovement() {
				continue
			}
			n := len(engine.ReachableCells(terrain, d, d.XY(i), c.PlayerMoveSpeed))
			walkable++
			reached += n
			if n == 0 {
				a.Trapped++
			}
		}
	}
	for k := range a.Terrain {
		a.Terrain[k] /= float64(len(boards))
	}
	a.Trapped /= float64(len(boards))
	if walkable > 0 {
		a.Mobility = float64(reached) / float64(walkable)
	}

	if c.Spawns != nil {
		a.FixedSpawns = true
		a.SpawnGap = spawnGap(boards[0], d, c.Spawns)
	}

	return a, nil
}

// spawnGap walks from every side A spawn the way a player unit moves: other
// A units block, B units may be stepped onto but not crossed.
func spawnGap(terrain []engine.Terrain, d grid.Dimensions, spawns *engine.Spawns) int {
	traits := make([]pathfind.Trait, d.Area())
	for i, t := range terrain {
		if !t.BlocksMovement() {
			traits[i] = pathfind.Empty
		}
	}
	for _, p := range spawns.A {
		traits[d.IndexOf(p)] = pathfind.Blocked
	}
	for _, p := range spawns.B {
		if traits[d.IndexOf(p)] != pathfind.Blocked {
			traits[d.IndexOf(p)] = pathfind.Onto
		}
	}

	budget := d.Area()
	pf := pathfind.New(d)
	gap := -1
	for _, pa := range spawns.A {
		pf.Clear()
		pf.SeedNeighbors(pa, traits, budget)
		for _, pb := range spawns.B {
			left := pf.Distance(pb)
			if left == 0 {
				continue
			}
			if steps := budget - left + 1; gap < 0 || steps < gap {
				gap = steps
			}
		}
	}
	return gap
}

func printAnalysis(w io.Writer, a *Analysis) {
	fmt.Fprintf(w, "Name: %s\n", a.Name)
	fmt.Fprintf(w, "Board: %d x %d\n", a.Width, a.Height)
	fmt.Fprintf(w, "Units per side: %d\n", a.UnitsPerSide)
	if a.FixedLayout {
		fmt.Fprintf(w, "Layout: fixed\n")
	} else {
		fmt.Fprintf(w, "Layout: random (%d samples)\n", a.Samples)
	}

	for _, t := range []engine.Terrain{engine.Empty, engine.Soft, engine.Solid, engine.Transparent} {
		fmt.Fprintf(w, "  %-12s %6.1f\n", t.String()+":", a.Terrain[t])
	}
	fmt.Fprintf(w, "Mobility: %.1f cells per move at speed %d\n", a.Mobility, a.MoveSpeed)

	if a.SpawnGap >= 0 {
		fmt.Fprintf(w, "Closest enemy spawn: %d steps\n", a.SpawnGap)
		if a.SpawnGap <= a.MoveSpeed {
			fmt.Fprintf(w, "⚠️  WARNING: side A can reach side B on the first move\n")
		}
	} else if a.FixedSpawns {
		fmt.Fprintf(w, "⚠️  WARNING: side A has no path to side B\n")
	}

	if a.Trapped > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: %.1f walkable cells have no way out\n", a.Trapped)
	} else {
		fmt.Fprintf(w, "✅ Every walkable cell has a legal move\n")
	}
}
