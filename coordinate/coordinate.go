// Package coordinate provides positions on a two-dimensional grid whose origin
// is the top-left cell.
package coordinate

import "fmt"

type XY struct {
	X int
	Y int
}

func New(x, y int) XY {
	return XY{X: x, Y: y}
}

// North returns the cell above, or false on the top row.
func (xy XY) North() (XY, bool) {
	if xy.Y == 0 {
		return XY{}, false
	}
	return XY{X: xy.X, Y: xy.Y - 1}, true
}

func (xy XY) South() XY {
	return XY{X: xy.X, Y: xy.Y + 1}
}

// West returns the cell to the left, or false on the first column.
func (xy XY) West() (XY, bool) {
	if xy.X == 0 {
		return XY{}, false
	}
	return XY{X: xy.X - 1, Y: xy.Y}, true
}

func (xy XY) East() XY {
	return XY{X: xy.X + 1, Y: xy.Y}
}

// Index maps the cell onto a row-major dense index for a grid of the given width.
func (xy XY) Index(width int) int {
	return xy.Y*width + xy.X
}

// FromIndex is the inverse of Index.
func FromIndex(idx, width int) XY {
	return XY{X: idx % width, Y: idx / width}
}

func (xy XY) String() string {
	return fmt.Sprintf("%d,%d", xy.X, xy.Y)
}
