package path

import (
	"container/heap"

	"github.com/redwarp/ambergris/grid"
)

// AstarPath returns the cheapest route from one cell to another over g,
// ordered from origin to destination with both included, or nil when the
// destination is unreachable. Absence of a route is a normal outcome, not
// an error. When from equals to, the path is that single cell.
//
// Endpoints are assumed in bounds; guarding them is the caller's contract
// (FourWayGrid never offers an out-of-bounds neighbor, so a bad destination
// simply comes back unreachable).
//
// Implements the algorithm and fixes described on
// https://www.redblobgames.com/pathfinding/a-star/implementation.html.
// Cost and predecessor bookkeeping live in flat slices indexed x + y*width
// rather than maps, trading memory proportional to the grid for hash-free,
// cache-friendly lookups.
func AstarPath(g Graph, from, to grid.Point) []grid.Point {
	width, height := g.Dimensions()

	// -1 marks an unvisited cell; real costs are never negative.
	costSoFar := make([]float32, width*height)
	cameFrom := make([]int32, width*height)
	for i := range costSoFar {
		costSoFar[i] = -1
		cameFrom[i] = -1
	}

	fromIndex := grid.Index(from.X, from.Y, width)
	toIndex := grid.Index(to.X, to.Y, width)
	costSoFar[fromIndex] = 0

	open := make(frontier, 0, roughCapacity(from, to))
	heap.Push(&open, frontierNode{point: from, f: g.Heuristic(from, to)})

	neighbors := make([]grid.Point, 0, 4)
	found := false

	for open.Len() > 0 {
		current := heap.Pop(&open).(frontierNode).point
		if current == to {
			found = true
			break
		}

		currentIndex := grid.Index(current.X, current.Y, width)
		currentCost := costSoFar[currentIndex]

		neighbors = g.Neighbors(current, neighbors[:0])
		for _, next := range neighbors {
			nextIndex := grid.Index(next.X, next.Y, width)
			newCost := currentCost + g.CostBetween(current, next)

			if costSoFar[nextIndex] < 0 || newCost < costSoFar[nextIndex] {
				costSoFar[nextIndex] = newCost
				cameFrom[nextIndex] = int32(currentIndex)
				heap.Push(&open, frontierNode{point: next, f: newCost + g.Heuristic(next, to)})
			}
		}
	}

	if !found {
		return nil
	}
	return reconstruct(cameFrom, width, fromIndex, toIndex, costSoFar[toIndex])
}

// reconstruct walks the predecessor links backward from the destination,
// then reverses the result in place.
func reconstruct(cameFrom []int32, width, fromIndex, toIndex int, totalCost float32) []grid.Point {
	path := make([]grid.Point, 0, int(totalCost)+2)

	index := toIndex
	for {
		path = append(path, grid.Point{X: index % width, Y: index / width})
		if index == fromIndex {
			break
		}
		index = int(cameFrom[index])
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// roughCapacity estimates the open-set size from the Chebyshev distance
// between the endpoints. Reallocation may still happen; this just spares
// the first few heap growths.
func roughCapacity(a, b grid.Point) int {
	d := max(abs(a.X-b.X), abs(a.Y-b.Y))
	return d * d
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// frontierNode is one open-set entry, ordered by its f = g + h score. The
// same cell may appear several times with decreasing scores; stale entries
// pop later and expand to nothing.
type frontierNode struct {
	point grid.Point
	f     float32
}

// frontier is a min-heap of frontierNodes on top of container/heap.
type frontier []frontierNode

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].f < f[j].f }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierNode))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	node := old[n-1]
	*f = old[:n-1]
	return node
}
