// Package gridmap provides ready-made map implementations for the fov and
// path capability interfaces, plus an ASCII snapshot renderer for debug
// output.
package gridmap

import (
	"fmt"

	"github.com/redwarp/ambergris/bresenham"
	"github.com/redwarp/ambergris/grid"
)

// DenseMap is a width×height grid backed by flat bool slices, one for
// sight and one for movement. Every cell starts transparent and walkable.
type DenseMap struct {
	width, height int
	transparent   []bool
	walkable      []bool
}

// NewDenseMap creates an all-open map. It panics unless both dimensions
// are > 0.
func NewDenseMap(width, height int) *DenseMap {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("width and height should be > 0, got (%d,%d)", width, height))
	}

	m := &DenseMap{
		width:       width,
		height:      height,
		transparent: make([]bool, width*height),
		walkable:    make([]bool, width*height),
	}
	for i := range m.transparent {
		m.transparent[i] = true
		m.walkable[i] = true
	}
	return m
}

// Dimensions returns (width, height).
func (m *DenseMap) Dimensions() (int, int) {
	return m.width, m.height
}

// IsOpaque reports whether the cell at (x, y) blocks line of sight.
func (m *DenseMap) IsOpaque(x, y int) bool {
	return !m.transparent[grid.Index(x, y, m.width)]
}

// IsWalkable reports whether the cell at (x, y) can be traversed.
func (m *DenseMap) IsWalkable(x, y int) bool {
	return m.walkable[grid.Index(x, y, m.width)]
}

// SetTransparent flags a single cell for line of sight.
func (m *DenseMap) SetTransparent(x, y int, transparent bool) {
	m.transparent[grid.Index(x, y, m.width)] = transparent
}

// SetWalkable flags a single cell for movement.
func (m *DenseMap) SetWalkable(x, y int, walkable bool) {
	m.walkable[grid.Index(x, y, m.width)] = walkable
}

// Block makes a cell opaque and unwalkable at once.
func (m *DenseMap) Block(x, y int) {
	m.SetTransparent(x, y, false)
	m.SetWalkable(x, y, false)
}

// Clear makes a cell transparent and walkable again.
func (m *DenseMap) Clear(x, y int) {
	m.SetTransparent(x, y, true)
	m.SetWalkable(x, y, true)
}

// Blocked reports whether the cell is fully blocked (opaque and
// unwalkable).
func (m *DenseMap) Blocked(x, y int) bool {
	return m.IsOpaque(x, y) && !m.IsWalkable(x, y)
}

// BuildWall blocks every cell on the rasterized line between two points,
// endpoints included.
func (m *DenseMap) BuildWall(from, to grid.Point) {
	line := bresenham.NewLine(from, to)
	for p, ok := line.Next(); ok; p, ok = line.Next() {
		m.Block(p.X, p.Y)
	}
}
