// Package bresenham rasterizes straight lines onto an integer grid using
// Bresenham's algorithm, endpoints included.
package bresenham

import "github.com/redwarp/ambergris/grid"

// Line yields, in order, every grid cell approximating the segment between
// two points, start first and end last. It is a one-shot iterator: once
// exhausted it stays exhausted. Coordinates may be negative; bounds are the
// caller's responsibility.
type Line struct {
	x, y   int
	dx, dy int
	x1, y1 int
	diff   int
	oct    octant
}

// octant identifies one of the 8 symmetric angular sectors around the
// start point. Directions are canonicalized into octant 0 (dx >= dy >= 0)
// so a single stepping loop serves all of them.
type octant uint8

func octantFor(start, end grid.Point) octant {
	dx := end.X - start.X
	dy := end.Y - start.Y

	var o octant
	if dy < 0 {
		dx, dy = -dx, -dy
		o += 4
	}
	if dx < 0 {
		dx, dy = dy, -dx
		o += 2
	}
	if dx < dy {
		o++
	}
	return o
}

func (o octant) toOctant0(p grid.Point) grid.Point {
	switch o {
	case 0:
		return grid.Point{X: p.X, Y: p.Y}
	case 1:
		return grid.Point{X: p.Y, Y: p.X}
	case 2:
		return grid.Point{X: p.Y, Y: -p.X}
	case 3:
		return grid.Point{X: -p.X, Y: p.Y}
	case 4:
		return grid.Point{X: -p.X, Y: -p.Y}
	case 5:
		return grid.Point{X: -p.Y, Y: -p.X}
	case 6:
		return grid.Point{X: -p.Y, Y: p.X}
	default:
		return grid.Point{X: p.X, Y: -p.Y}
	}
}

func (o octant) fromOctant0(p grid.Point) grid.Point {
	switch o {
	case 0:
		return grid.Point{X: p.X, Y: p.Y}
	case 1:
		return grid.Point{X: p.Y, Y: p.X}
	case 2:
		return grid.Point{X: -p.Y, Y: p.X}
	case 3:
		return grid.Point{X: -p.X, Y: p.Y}
	case 4:
		return grid.Point{X: -p.X, Y: -p.Y}
	case 5:
		return grid.Point{X: -p.Y, Y: -p.X}
	case 6:
		return grid.Point{X: p.Y, Y: -p.X}
	default:
		return grid.Point{X: p.X, Y: -p.Y}
	}
}

// NewLine creates an iterator over the cells between start and end,
// inclusive. When start equals end the line is the single cell.
func NewLine(start, end grid.Point) *Line {
	oct := octantFor(start, end)
	s := oct.toOctant0(start)
	e := oct.toOctant0(end)

	dx := e.X - s.X
	dy := e.Y - s.Y

	return &Line{
		x:    s.X,
		y:    s.Y,
		dx:   dx,
		dy:   dy,
		x1:   e.X,
		y1:   e.Y,
		diff: dy - dx,
		oct:  oct,
	}
}

// Len returns the total number of cells the line covers,
// max(|dx|, |dy|) + 1. It does not change as the iterator advances.
func (l *Line) Len() int {
	return l.dx + 1
}

// Next returns the next cell of the line. The second value is false once
// the line is exhausted.
func (l *Line) Next() (grid.Point, bool) {
	if l.x == l.x1 {
		l.x++
		return l.oct.fromOctant0(grid.Point{X: l.x1, Y: l.y1}), true
	}
	if l.x > l.x1 {
		return grid.Point{}, false
	}

	p := grid.Point{X: l.x, Y: l.y}
	if l.diff >= 0 {
		l.y++
		l.diff -= l.dx
	}
	l.diff += l.dy
	l.x++

	return l.oct.fromOctant0(p), true
}

// Collect drains the iterator into a slice.
func (l *Line) Collect() []grid.Point {
	points := make([]grid.Point, 0, l.Len())
	for p, ok := l.Next(); ok; p, ok = l.Next() {
		points = append(points, p)
	}
	return points
}
