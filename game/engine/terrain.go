package engine

import "github.com/wricardo/isotactics/game/grid"

// GenerateTerrain draws one terrain kind per cell, row by row
func GenerateTerrain(d grid.Dimensions, weights TerrainWeights, rng Rand) []Terrain {
	th := weights.Thresholds()
	terrain := make([]Terrain, d.Area())
	for i := range terrain {
		terrain[i] = pickTerrain(th, rng.Float64())
	}
	return terrain
}

func pickTerrain(th [3]float64, r float64) Terrain {
	switch {
	case r < th[0]:
		return Empty
	case r < th[1]:
		return Soft
	case r < th[2]:
		return Solid
	default:
		return Transparent
	}
}

// CountTerrain counts cells of one kind
func CountTerrain(terrain []Terrain, kind Terrain) int {
	n := 0
	for _, t := range terrain {
		if t == kind {
			n++
		}
	}
	return n
}
