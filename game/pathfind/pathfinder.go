// Package pathfind computes movement and shooting ranges on the board.
//
// PathFinder is a depth-limited flood fill over per-cell traversal traits.
// Each cell remembers the largest step budget that reached it; a later visit
// only proceeds when it arrives with a strictly larger budget. Several seeds
// share one buffer and rely on that rule, so it is kept as is rather than
// replaced by a breadth-first search.
package pathfind

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/wricardo/isotactics/game/grid"
)

// Trait classifies how the flood fill may use a cell
type Trait uint8

const (
	// Blocked cells can be neither entered nor crossed
	Blocked Trait = 0
	// Onto cells can be the final stopping cell
	Onto Trait = 1 << 0
	// Through cells can be crossed
	Through Trait = 1 << 1
	// Empty cells can be both entered and crossed
	Empty = Onto | Through
)

// PathFinder holds the per-cell remaining-distance buffer for one board
type PathFinder struct {
	dims grid.Dimensions
	dist []int
}

// New creates a pathfinder sized to the board
func New(d grid.Dimensions) *PathFinder {
	return &PathFinder{
		dims: d,
		dist: make([]int, d.Area()),
	}
}

// Clear zeroes the distance buffer
func (pf *PathFinder) Clear() {
	clear(pf.dist)
}

// Dimensions returns the board size the pathfinder was built for
func (pf *PathFinder) Dimensions() grid.Dimensions {
	return pf.dims
}

// Distance returns the remaining budget recorded for p, or 0 when p was
// never reached or lies off the board.
func (pf *PathFinder) Distance(p grid.Position) int {
	if !pf.dims.ValidPos(p) {
		return 0
	}
	return pf.dist[pf.dims.IndexOf(p)]
}

// FindAllPaths marks every cell reachable from seed with at most steps
// moves, seed included. traits must cover the whole board. steps must be
// positive.
func (pf *PathFinder) FindAllPaths(seed grid.Position, traits []Trait, steps int) {
	if steps <= 0 {
		panic(fmt.Sprintf("pathfind: step budget must be positive, got %d", steps))
	}
	if len(traits) != len(pf.dist) {
		panic(fmt.Sprintf("pathfind: %d traits for a board of %d cells", len(traits), len(pf.dist)))
	}
	pf.fill(seed, traits, steps)
}

func (pf *PathFinder) fill(p grid.Position, traits []Trait, steps int) {
	if !pf.dims.ValidPos(p) {
		return
	}

	idx := pf.dims.IndexOf(p)

	// Already reached with an equal or larger budget
	if pf.dist[idx] >= steps {
		return
	}

	if traits[idx]&Onto == 0 {
		return
	}

	pf.dist[idx] = steps

	if steps == 1 {
		return
	}

	if traits[idx]&Through == 0 {
		return
	}

	for _, d := range grid.Cardinals {
		pf.fill(p.Add(d), traits, steps-1)
	}
}

// SeedNeighbors runs FindAllPaths from each cardinal neighbour of origin
// with the full budget. The origin cell itself is never seeded.
func (pf *PathFinder) SeedNeighbors(origin grid.Position, traits []Trait, steps int) {
	for _, n := range origin.Neighbors() {
		pf.FindAllPaths(n, traits, steps)
	}
}

// CopyPathDataOut writes "reached at all" into overlay, one bit per cell
func (pf *PathFinder) CopyPathDataOut(overlay *bitset.BitSet) {
	for i, d := range pf.dist {
		overlay.SetTo(uint(i), d > 0)
	}
}
