// Package path finds shortest routes between cells of a 2D grid map using
// A* over a pluggable graph.
package path

import "github.com/redwarp/ambergris/grid"

// Graph is the read-only capability AstarPath searches over. It is
// specialized for axis-aligned grids, not a general graph abstraction: cells
// are addressed by coordinate and bookkeeping assumes a width×height
// address space.
type Graph interface {
	// Dimensions returns the grid size as (width, height).
	Dimensions() (int, int)
	// IsWalkable reports whether the cell at (x, y) may be traversed.
	IsWalkable(x, y int) bool
	// CostBetween returns the cost of stepping from a to an adjacent b.
	CostBetween(a, b grid.Point) float32
	// Heuristic estimates the remaining cost from a to b. It must never
	// overestimate the true cost or the returned path may be suboptimal.
	Heuristic(a, b grid.Point) float32
	// Neighbors appends the walkable neighbors of p to buf and returns the
	// extended slice. The buffer keeps allocation out of the expansion loop.
	Neighbors(p grid.Point, buf []grid.Point) []grid.Point
}

// WalkabilityMap is the minimal map surface FourWayGrid adapts into a
// Graph. DenseMap and friends in the gridmap package satisfy it.
type WalkabilityMap interface {
	Dimensions() (int, int)
	IsWalkable(x, y int) bool
}

// FourWayGrid turns a walkability map into a Graph with 4-directional
// movement, unit step costs and a Manhattan heuristic.
//
// A 0.001 nudge alternating with the parity of x+y is added to the step
// cost, and the neighbor probe order flips with the same parity, so that
// equal-cost paths come out straight instead of staircased
// (https://www.redblobgames.com/pathfinding/a-star/implementation.html#troubleshooting-ugly-path).
// The nudge is tuned for uniform unit costs; combined with non-uniform
// per-edge costs it remains a small deliberate bias.
type FourWayGrid struct {
	WalkabilityMap
}

// NewFourWayGrid wraps m into a 4-directional Graph.
func NewFourWayGrid(m WalkabilityMap) *FourWayGrid {
	return &FourWayGrid{WalkabilityMap: m}
}

// CostBetween returns 1 per step, plus the parity nudge.
func (g *FourWayGrid) CostBetween(a, b grid.Point) float32 {
	parity := (a.X + a.Y) % 2
	if (parity == 0 && b.X != a.X) || (parity == 1 && b.Y != a.Y) {
		return 1.001
	}
	return 1
}

// Heuristic returns the Manhattan distance, admissible for unit-cost
// 4-directional movement.
func (g *FourWayGrid) Heuristic(a, b grid.Point) float32 {
	return float32(a.Manhattan(b))
}

// Neighbors appends the in-bounds, walkable orthogonal neighbors of p.
func (g *FourWayGrid) Neighbors(p grid.Point, buf []grid.Point) []grid.Point {
	width, height := g.Dimensions()

	var candidates [4]grid.Point
	if (p.X+p.Y)%2 == 0 {
		candidates = [4]grid.Point{
			{X: p.X, Y: p.Y + 1}, {X: p.X, Y: p.Y - 1},
			{X: p.X - 1, Y: p.Y}, {X: p.X + 1, Y: p.Y},
		}
	} else {
		candidates = [4]grid.Point{
			{X: p.X + 1, Y: p.Y}, {X: p.X - 1, Y: p.Y},
			{X: p.X, Y: p.Y - 1}, {X: p.X, Y: p.Y + 1},
		}
	}

	for _, c := range candidates {
		if c.X >= 0 && c.Y >= 0 && c.X < width && c.Y < height && g.IsWalkable(c.X, c.Y) {
			buf = append(buf, c)
		}
	}
	return buf
}
