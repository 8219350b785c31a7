// Package grid holds the small integer-geometry primitives shared by the
// field-of-view and pathfinding packages.
package grid

// Point is a cell coordinate on a 2D grid. Points compare by value and
// carry no identity of their own.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// DistanceSquared returns the squared Euclidean distance between p and q.
// Radius checks compare against a squared radius so nothing here ever
// touches floating point.
func (p Point) DistanceSquared(q Point) int {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Index flattens (x, y) into a row-major slice index for a grid of the
// given width.
func Index(x, y, width int) int {
	return x + y*width
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
