package core

import "fmt"

// Coord represents a 2D coordinate on the doubled board.
// X increases to the right, Y increases downward. Odd/odd coordinates are
// cell centers where blocks sit; even coordinates are corners and edges
// where lasers travel.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Center reports whether the coordinate is a cell center (odd, odd).
func (c Coord) Center() bool {
	return c.X%2 == 1 && c.Y%2 == 1
}
