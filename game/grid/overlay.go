package grid

import "github.com/bits-and-blooms/bitset"

// NewOverlay allocates a per-cell bitset covering the whole board.
func NewOverlay(d Dimensions) *bitset.BitSet {
	return bitset.New(uint(d.Area()))
}

// OverlayContains reports whether the overlay marks p. Off-board positions
// are never marked.
func OverlayContains(d Dimensions, overlay *bitset.BitSet, p Position) bool {
	if overlay == nil || !d.ValidPos(p) {
		return false
	}
	return overlay.Test(uint(d.IndexOf(p)))
}

// OverlayPositions lists every marked cell in index order
func OverlayPositions(d Dimensions, overlay *bitset.BitSet) []Position {
	if overlay == nil {
		return nil
	}
	positions := make([]Position, 0, overlay.Count())
	for i, ok := overlay.NextSet(0); ok; i, ok = overlay.NextSet(i + 1) {
		if int(i) >= d.Area() {
			break
		}
		positions = append(positions, d.XY(int(i)))
	}
	return positions
}
