package gridmap

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// RasterizePolygons burns polygon obstacles into a fresh DenseMap of the
// given size: every cell whose center lies inside one of the polygons is
// blocked. Polygon coordinates are in cell units, so the ring
// (0,0) (3,0) (3,3) (0,3) blocks the 3×3 block of cells it encloses.
//
// This is the bridge from vector obstacle data (GeoJSON zones, building
// footprints) to the grid the fov and path packages operate on.
func RasterizePolygons(width, height int, polygons []orb.Polygon) *DenseMap {
	m := NewDenseMap(width, height)

	for _, polygon := range polygons {
		bound := polygon.Bound()
		minX := max(int(math.Floor(bound.Min.X())), 0)
		minY := max(int(math.Floor(bound.Min.Y())), 0)
		maxX := min(int(math.Ceil(bound.Max.X())), width-1)
		maxY := min(int(math.Ceil(bound.Max.Y())), height-1)

		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				center := orb.Point{float64(x) + 0.5, float64(y) + 0.5}
				if planar.PolygonContains(polygon, center) {
					m.Block(x, y)
				}
			}
		}
	}
	return m
}
