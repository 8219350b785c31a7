// Package fov computes radius-limited fields of view on 2D grid maps.
//
// The algorithm casts rasterized rays from the origin to the perimeter of
// the radius window, then runs a per-quadrant pass that reveals the
// origin-facing faces of walls the discrete ray set missed. See
// https://sites.google.com/site/jicenospam/visibilitydetermination and
// http://www.roguebasin.com/index.php?title=Comparative_study_of_field_of_view_algorithms_for_2D_grid_based_worlds
package fov

import (
	"fmt"

	"github.com/redwarp/ambergris/bresenham"
	"github.com/redwarp/ambergris/grid"
)

// Map is the read-only capability the field-of-view computation consumes.
// Any grid representation works: a dense cell array, a sparse obstacle set,
// or something procedurally generated.
type Map interface {
	// Dimensions returns the map size as (width, height), both > 0.
	Dimensions() (int, int)
	// IsOpaque reports whether the cell at (x, y) blocks line of sight.
	// It is only queried with in-bounds coordinates.
	IsOpaque(x, y int) bool
}

func assertInBounds(m Map, x, y int) {
	width, height := m.Dimensions()
	if x < 0 || y < 0 || x >= width || y >= height {
		panic(fmt.Sprintf("(x, y) should be between (0,0) and (%d, %d), got (%d, %d)",
			width, height, x, y))
	}
}

// FieldOfView returns the set of cells visible from (x, y) within radius,
// unordered and without duplicates.
//
// The scan is clipped to the square window [x-radius, x+radius] ×
// [y-radius, y+radius] intersected with the map bounds, and rays are cast
// to every cell on the window perimeter. The rectangular perimeter is a
// deliberate approximation of a circular sweep; it trades minor,
// reproducible asymmetries near the window corners for simplicity and
// speed. Cells further than radius² in squared distance are never marked.
//
// Opaque cells stop rays but are themselves marked visible first. When
// includeWalls is false they are filtered from the result; they still
// participate internally. A radius < 1 returns just the origin.
//
// FieldOfView panics when the origin is out of bounds: that is a
// programming error, not a recoverable condition.
func FieldOfView(m Map, x, y, radius int, includeWalls bool) []grid.Point {
	assertInBounds(m, x, y)

	if radius < 1 {
		return []grid.Point{{X: x, Y: y}}
	}

	width, height := m.Dimensions()
	win := grid.Around(x, y, radius, width, height)

	if win.MaxX-win.MinX == 0 || win.MaxY-win.MinY == 0 {
		// No area to check.
		return nil
	}

	sc := &scan{
		m:            m,
		w:            win.Width(),
		h:            win.Height(),
		offsetX:      win.MinX,
		offsetY:      win.MinY,
		originX:      x - win.MinX,
		originY:      y - win.MinY,
		radiusSquare: radius * radius,
	}
	// One buffer sized to the clipped window, not the whole map.
	sc.visible = make([]bool, sc.w*sc.h)
	sc.visible[grid.Index(sc.originX, sc.originY, sc.w)] = true

	for rx := 0; rx < sc.w; rx++ {
		sc.castRay(rx, 0)
		sc.castRay(rx, sc.h-1)
	}
	for ry := 1; ry < sc.h-1; ry++ {
		sc.castRay(0, ry)
		sc.castRay(sc.w-1, ry)
	}

	// Wall-face reveal, one quadrant at a time: SE, SW, NW, NE.
	sc.revealWalls(sc.originX+1, sc.originY+1, sc.w-1, sc.h-1, -1, -1)
	sc.revealWalls(0, sc.originY+1, sc.originX-1, sc.h-1, 1, -1)
	sc.revealWalls(0, 0, sc.originX-1, sc.originY-1, 1, 1)
	sc.revealWalls(sc.originX+1, 0, sc.w-1, sc.originY-1, -1, 1)

	points := make([]grid.Point, 0, len(sc.visible))
	for i, seen := range sc.visible {
		if !seen {
			continue
		}
		px := i%sc.w + sc.offsetX
		py := i/sc.w + sc.offsetY
		if !includeWalls && m.IsOpaque(px, py) {
			continue
		}
		points = append(points, grid.Point{X: px, Y: py})
	}
	return points
}

// scan is the working state of a single FieldOfView call. All coordinates
// are window-local; offsetX/offsetY translate back to map space.
type scan struct {
	m            Map
	visible      []bool
	w, h         int
	offsetX      int
	offsetY      int
	originX      int
	originY      int
	radiusSquare int
}

// castRay marks cells along the rasterized line from the origin to
// (tx, ty), stopping at the first opaque cell. The opaque cell itself is
// marked before the ray dies.
func (sc *scan) castRay(tx, ty int) {
	line := bresenham.NewLine(
		grid.Point{X: sc.originX, Y: sc.originY},
		grid.Point{X: tx, Y: ty},
	)
	line.Next() // skip the origin

	for p, ok := line.Next(); ok; p, ok = line.Next() {
		dx := p.X - sc.originX
		dy := p.Y - sc.originY
		// Within radius, or radius ignored altogether.
		if dx*dx+dy*dy <= sc.radiusSquare || sc.radiusSquare == 0 {
			sc.visible[grid.Index(p.X, p.Y, sc.w)] = true
		}

		if sc.m.IsOpaque(p.X+sc.offsetX, p.Y+sc.offsetY) {
			return
		}
	}
}

// revealWalls scans one quadrant of the window. (dx, dy) point back toward
// the origin; a wall that no ray reached becomes visible when the
// orthogonal neighbor one step toward the origin, on either axis, is
// transparent and already visible. This exposes the origin-facing face of
// walls missed by the discrete ray set (the diagonal corner-peek case).
func (sc *scan) revealWalls(minX, minY, maxX, maxY, dx, dy int) {
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			index := grid.Index(x, y, sc.w)
			if sc.visible[index] || !sc.m.IsOpaque(x+sc.offsetX, y+sc.offsetY) {
				continue
			}

			nx := x + dx
			ny := y + dy
			if (!sc.m.IsOpaque(nx+sc.offsetX, y+sc.offsetY) && sc.visible[grid.Index(nx, y, sc.w)]) ||
				(!sc.m.IsOpaque(x+sc.offsetX, ny+sc.offsetY) && sc.visible[grid.Index(x, ny, sc.w)]) {
				sc.visible[index] = true
			}
		}
	}
}
