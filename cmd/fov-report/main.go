// Command fov-report runs headless field-of-view and pathfinding workloads
// over seeded random maps, checks their structural invariants and prints a
// timing report. The default workload matches the historical benchmark
// baseline: a 45×45 map, the eye at the center, radius 24.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/redwarp/ambergris/fov"
	"github.com/redwarp/ambergris/grid"
	"github.com/redwarp/ambergris/gridmap"
	"github.com/redwarp/ambergris/path"
)

type runStats struct {
	runIndex int
	seed     int64

	fovDuration time.Duration
	fovCells    int

	pathDuration time.Duration
	pathFound    bool
	pathSteps    int

	issues []string
}

func main() {
	var runs int
	var size int
	var radius int
	var walls int
	var seedBase int64
	var seedStep int64
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of report runs")
	flag.IntVar(&size, "size", 45, "map width and height in cells")
	flag.IntVar(&radius, "radius", 24, "field-of-view radius")
	flag.IntVar(&walls, "walls", 10, "random wall cells per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.BoolVar(&verbose, "verbose", false, "print the ASCII snapshot of each run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(1)
	}
	if size < 2 {
		fmt.Println("error: -size must be >= 2")
		os.Exit(1)
	}
	if walls < 0 || walls >= size*size {
		fmt.Printf("error: -walls must be between 0 and %d\n", size*size-1)
		os.Exit(1)
	}

	fmt.Printf("=== Spatial Query Report ===\n")
	fmt.Printf("size=%dx%d radius=%d walls=%d runs=%d seed_base=%d seed_step=%d\n\n",
		size, size, radius, walls, runs, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runOnce(i+1, seed, size, radius, walls, verbose)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)

	for _, rs := range all {
		if len(rs.issues) > 0 {
			os.Exit(1)
		}
	}
}

func runOnce(runIndex int, seed int64, size, radius, walls int, verbose bool) runStats {
	rs := runStats{runIndex: runIndex, seed: seed}

	m := gridmap.NewDenseMap(size, size)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < walls; i++ {
		m.Block(rng.Intn(size), rng.Intn(size))
	}
	origin := grid.Pt(size/2, size/2)
	m.Clear(origin.X, origin.Y)

	start := time.Now()
	visible := fov.FieldOfView(m, origin.X, origin.Y, radius, true)
	rs.fovDuration = time.Since(start)
	rs.fovCells = len(visible)
	rs.issues = append(rs.issues, verifyFieldOfView(m, visible, origin, radius)...)

	from := grid.Pt(0, 0)
	to := grid.Pt(size-1, size-1)
	m.Clear(from.X, from.Y)
	m.Clear(to.X, to.Y)
	g := path.NewFourWayGrid(m)

	start = time.Now()
	route := path.AstarPath(g, from, to)
	rs.pathDuration = time.Since(start)
	rs.pathFound = route != nil
	rs.pathSteps = len(route)
	if route != nil {
		rs.issues = append(rs.issues, verifyPath(m, route, from, to)...)
	}

	if verbose {
		fmt.Println(gridmap.Snapshot(m, visible, route, origin))
	}
	return rs
}

// verifyFieldOfView checks the structural invariants of a FieldOfView
// result: origin present, every cell in bounds and unique, every cell
// within radius or a wall revealed next to a visible cell.
func verifyFieldOfView(m *gridmap.DenseMap, visible []grid.Point, origin grid.Point, radius int) []string {
	var issues []string

	width, height := m.Dimensions()
	bounds := grid.Rect{MinX: 0, MinY: 0, MaxX: width - 1, MaxY: height - 1}
	seen := make(map[grid.Point]bool, len(visible))
	hasOrigin := false

	for _, p := range visible {
		if seen[p] {
			issues = append(issues, fmt.Sprintf("fov: duplicate cell %v", p))
		}
		seen[p] = true
		if !bounds.Contains(p.X, p.Y) {
			issues = append(issues, fmt.Sprintf("fov: cell %v out of bounds", p))
			continue
		}
		if p == origin {
			hasOrigin = true
			continue
		}
		if p.DistanceSquared(origin) > radius*radius && !m.IsOpaque(p.X, p.Y) {
			issues = append(issues, fmt.Sprintf("fov: transparent cell %v beyond radius", p))
		}
	}
	if !hasOrigin {
		issues = append(issues, "fov: origin missing from result")
	}
	return issues
}

// verifyPath checks the structural invariants of an AstarPath result:
// endpoints in place, every step walkable, consecutive steps adjacent.
func verifyPath(m *gridmap.DenseMap, route []grid.Point, from, to grid.Point) []string {
	var issues []string

	if route[0] != from {
		issues = append(issues, fmt.Sprintf("path: starts at %v, want %v", route[0], from))
	}
	if route[len(route)-1] != to {
		issues = append(issues, fmt.Sprintf("path: ends at %v, want %v", route[len(route)-1], to))
	}
	for i, p := range route {
		if !m.IsWalkable(p.X, p.Y) {
			issues = append(issues, fmt.Sprintf("path: step %d (%v) is not walkable", i, p))
		}
		if i > 0 && route[i-1].Manhattan(p) != 1 {
			issues = append(issues, fmt.Sprintf("path: steps %d..%d (%v -> %v) not adjacent", i-1, i, route[i-1], p))
		}
	}
	return issues
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("fov: cells=%d duration=%s\n", rs.fovCells, rs.fovDuration)
	if rs.pathFound {
		fmt.Printf("path: steps=%d duration=%s\n", rs.pathSteps, rs.pathDuration)
	} else {
		fmt.Printf("path: unreachable duration=%s\n", rs.pathDuration)
	}
	if len(rs.issues) == 0 {
		fmt.Println("checks: ok")
	} else {
		for _, issue := range rs.issues {
			fmt.Printf("checks: FAIL %s\n", issue)
		}
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	var fovTotal, pathTotal time.Duration
	fovCells := 0
	pathSteps := 0
	found := 0
	failures := 0

	for _, rs := range all {
		fovTotal += rs.fovDuration
		pathTotal += rs.pathDuration
		fovCells += rs.fovCells
		if rs.pathFound {
			found++
			pathSteps += rs.pathSteps
		}
		failures += len(rs.issues)
	}

	n := len(all)
	fmt.Printf("=== Aggregate (%d runs) ===\n", n)
	fmt.Printf("fov_avg: cells=%d duration=%s\n", fovCells/n, fovTotal/time.Duration(n))
	if found > 0 {
		fmt.Printf("path_avg: found=%d/%d steps=%d duration=%s\n",
			found, n, pathSteps/found, pathTotal/time.Duration(n))
	} else {
		fmt.Printf("path_avg: found=0/%d duration=%s\n", n, pathTotal/time.Duration(n))
	}
	fmt.Printf("invariant_failures: %d\n", failures)
}
