package grid

import "fmt"

// Position represents x,y coordinates on the board
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the component-wise sum of two positions
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// String formats the position as "(x,y)"
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cardinal offsets in the order the flood fill and lane caster visit them:
// east, west, south, north.
var Cardinals = [4]Position{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// Neighbors returns the four cardinal neighbours of p. Results may lie
// outside any particular board.
func (p Position) Neighbors() [4]Position {
	var out [4]Position
	for i, d := range Cardinals {
		out[i] = p.Add(d)
	}
	return out
}

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	dx := from.X - to.X
	if dx < 0 {
		dx = -dx
	}
	dy := from.Y - to.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Dimensions is the immutable size of a rectangular board.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewDimensions returns board dimensions. Both sides must be positive.
func NewDimensions(width, height int) Dimensions {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", width, height))
	}
	return Dimensions{Width: width, Height: height}
}

// Area returns the number of cells on the board
func (d Dimensions) Area() int {
	return d.Width * d.Height
}

// Valid reports whether (x,y) lies on the board
func (d Dimensions) Valid(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// ValidPos reports whether p lies on the board
func (d Dimensions) ValidPos(p Position) bool {
	return d.Valid(p.X, p.Y)
}

// Index converts (x,y) to a linear cell index. Off-board coordinates are a
// programming error and panic instead of wrapping into a neighbouring row.
func (d Dimensions) Index(x, y int) int {
	if !d.Valid(x, y) {
		panic(fmt.Sprintf("grid: coordinate (%d,%d) out of bounds for %dx%d board", x, y, d.Width, d.Height))
	}
	return x + y*d.Width
}

// IndexOf converts a position to a linear cell index
func (d Dimensions) IndexOf(p Position) int {
	return d.Index(p.X, p.Y)
}

// XY converts a linear cell index back to a position
func (d Dimensions) XY(idx int) Position {
	if idx < 0 || idx >= d.Area() {
		panic(fmt.Sprintf("grid: index %d out of bounds for %dx%d board", idx, d.Width, d.Height))
	}
	return Position{X: idx % d.Width, Y: idx / d.Width}
}
