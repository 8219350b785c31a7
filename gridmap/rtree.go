package gridmap

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
)

// Obstacle is an axis-aligned rectangle of blocked cells: the top-left
// cell plus a size in cells. Obstacles block both sight and movement.
type Obstacle struct {
	X, Y int
	W, H int
}

type obstacleEntry struct {
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (o *obstacleEntry) Bounds() rtreego.Rect {
	return o.bbox
}

// ObstacleMap answers sight and movement queries for a large, mostly open
// grid from a set of rectangular obstacles indexed in an R-tree, instead of
// materializing width×height cell slices. Useful when the map is huge and
// the walls are few.
type ObstacleMap struct {
	width, height int
	tree          *rtreego.Rtree
}

// NewObstacleMap builds the index. It panics unless both dimensions are
// > 0 and every obstacle has a positive size.
func NewObstacleMap(width, height int, obstacles []Obstacle) *ObstacleMap {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("width and height should be > 0, got (%d,%d)", width, height))
	}

	tree := rtreego.NewTree(2, 2, 16)
	for _, o := range obstacles {
		bbox, err := rtreego.NewRect(
			rtreego.Point{float64(o.X), float64(o.Y)},
			[]float64{float64(o.W), float64(o.H)},
		)
		if err != nil {
			panic(fmt.Sprintf("invalid obstacle %+v: %v", o, err))
		}
		tree.Insert(&obstacleEntry{bbox: bbox})
	}

	return &ObstacleMap{width: width, height: height, tree: tree}
}

// Dimensions returns (width, height).
func (m *ObstacleMap) Dimensions() (int, int) {
	return m.width, m.height
}

// IsOpaque reports whether the cell at (x, y) falls inside an obstacle.
func (m *ObstacleMap) IsOpaque(x, y int) bool {
	return m.blocked(x, y)
}

// IsWalkable reports whether the cell at (x, y) is free of obstacles.
func (m *ObstacleMap) IsWalkable(x, y int) bool {
	return !m.blocked(x, y)
}

// blocked probes the R-tree with a sliver of the cell's center, so cells
// that merely touch an obstacle edge stay open.
func (m *ObstacleMap) blocked(x, y int) bool {
	probe, err := rtreego.NewRect(
		rtreego.Point{float64(x) + 0.5, float64(y) + 0.5},
		[]float64{0.001, 0.001},
	)
	if err != nil {
		return false
	}
	return len(m.tree.SearchIntersect(probe)) > 0
}
