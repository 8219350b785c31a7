package gridmap

import (
	"testing"

	"github.com/paulmach/orb"
)

func square(minX, minY, maxX, maxY float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}, {minX, minY},
	}}
}

func TestRasterizePolygons_BlocksInteriorCells(t *testing.T) {
	m := RasterizePolygons(8, 6, []orb.Polygon{square(2, 1, 5, 4)})

	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 2 && x < 5 && y >= 1 && y < 4
			if m.Blocked(x, y) != inside {
				t.Errorf("cell (%d, %d): blocked = %v, want %v", x, y, m.Blocked(x, y), inside)
			}
		}
	}
}

func TestRasterizePolygons_ClipsToMap(t *testing.T) {
	// Polygon hangs off every edge of the map; only the overlap is blocked.
	m := RasterizePolygons(4, 4, []orb.Polygon{square(-10, -10, 2, 20)})

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inside := x < 2
			if m.Blocked(x, y) != inside {
				t.Errorf("cell (%d, %d): blocked = %v, want %v", x, y, m.Blocked(x, y), inside)
			}
		}
	}
}

func TestRasterizePolygons_EmptyInput(t *testing.T) {
	m := RasterizePolygons(3, 3, nil)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if m.Blocked(x, y) {
				t.Fatalf("cell (%d, %d) should be open on an empty rasterization", x, y)
			}
		}
	}
}
