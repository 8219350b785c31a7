package fov

import (
	"math/rand"
	"testing"

	"github.com/redwarp/ambergris/grid"
)

// sampleMap is a minimal dense Map implementation for tests.
type sampleMap struct {
	width, height int
	transparent   []bool
}

func newSampleMap(width, height int) *sampleMap {
	m := &sampleMap{
		width:       width,
		height:      height,
		transparent: make([]bool, width*height),
	}
	for i := range m.transparent {
		m.transparent[i] = true
	}
	return m
}

func (m *sampleMap) setTransparent(x, y int, transparent bool) {
	m.transparent[grid.Index(x, y, m.width)] = transparent
}

func (m *sampleMap) Dimensions() (int, int) {
	return m.width, m.height
}

func (m *sampleMap) IsOpaque(x, y int) bool {
	return !m.transparent[grid.Index(x, y, m.width)]
}

func asSet(points []grid.Point) map[grid.Point]bool {
	set := make(map[grid.Point]bool, len(points))
	for _, p := range points {
		set[p] = true
	}
	return set
}

func TestFieldOfView_RadiusBelowOne(t *testing.T) {
	m := newSampleMap(10, 10)
	for _, radius := range []int{0, -1, -100} {
		got := FieldOfView(m, 4, 6, radius, true)
		if len(got) != 1 || got[0] != grid.Pt(4, 6) {
			t.Fatalf("radius %d: got %v, want just the origin", radius, got)
		}
	}
}

func TestFieldOfView_ContainsOrigin(t *testing.T) {
	m := newSampleMap(20, 20)
	m.setTransparent(10, 10, false)
	m.setTransparent(9, 9, false)

	for _, radius := range []int{1, 3, 8, 50} {
		visible := asSet(FieldOfView(m, 9, 10, radius, true))
		if !visible[grid.Pt(9, 10)] {
			t.Fatalf("radius %d: origin missing from result", radius)
		}
	}
}

func TestFieldOfView_OutOfBoundsOriginPanics(t *testing.T) {
	m := newSampleMap(10, 10)
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an out-of-bounds origin")
		}
	}()
	FieldOfView(m, -10, 15, 5, true)
}

func TestFieldOfView_DegenerateWindow(t *testing.T) {
	// A one-row map collapses the scan window to zero height.
	m := newSampleMap(10, 1)
	if got := FieldOfView(m, 5, 0, 3, true); len(got) != 0 {
		t.Fatalf("degenerate window should yield no cells, got %v", got)
	}
}

func TestFieldOfView_RadiusClipping(t *testing.T) {
	m := newSampleMap(45, 45)
	origin := grid.Pt(22, 22)
	const radius = 5

	for _, p := range FieldOfView(m, origin.X, origin.Y, radius, true) {
		if d := p.DistanceSquared(origin); d > radius*radius {
			t.Errorf("cell %v at squared distance %d exceeds radius² = %d", p, d, radius*radius)
		}
	}
}

func TestFieldOfView_ExcludeWalls(t *testing.T) {
	m := newSampleMap(10, 10)
	for x := 1; x < 10; x++ {
		m.setTransparent(x, 3, false)
	}

	withWalls := asSet(FieldOfView(m, 3, 2, 10, true))
	withoutWalls := FieldOfView(m, 3, 2, 10, false)

	for _, p := range withoutWalls {
		if m.IsOpaque(p.X, p.Y) {
			t.Errorf("opaque cell %v returned despite includeWalls=false", p)
		}
		if !withWalls[p] {
			t.Errorf("cell %v missing from the includeWalls=true result", p)
		}
	}
	// The two results must differ only by opaque cells.
	withoutSet := asSet(withoutWalls)
	for p := range withWalls {
		if !withoutSet[p] && !m.IsOpaque(p.X, p.Y) {
			t.Errorf("transparent cell %v dropped by includeWalls=false", p)
		}
	}
}

func TestFieldOfView_WallFacesRevealed(t *testing.T) {
	m := newSampleMap(10, 10)
	for x := 1; x < 10; x++ {
		m.setTransparent(x, 3, false)
	}

	visible := asSet(FieldOfView(m, 3, 2, 10, true))

	// The whole origin-facing face of the wall is revealed, including the
	// cells no discrete ray reaches directly.
	for x := 1; x < 10; x++ {
		if !visible[grid.Pt(x, 3)] {
			t.Errorf("wall cell (%d, 3) should be visible", x)
		}
	}
	// The gap at x=0 stays see-through.
	if !visible[grid.Pt(0, 3)] {
		t.Error("transparent gap (0, 3) should be visible")
	}
	// Nothing behind the wall is visible.
	for y := 4; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if visible[grid.Pt(x, y)] {
				t.Errorf("cell (%d, %d) behind the wall should be hidden", x, y)
			}
		}
	}
}

func TestFieldOfView_UniquePoints(t *testing.T) {
	m := newSampleMap(30, 30)
	m.setTransparent(14, 14, false)
	m.setTransparent(16, 15, false)

	points := FieldOfView(m, 15, 15, 8, true)
	if len(points) != len(asSet(points)) {
		t.Fatalf("result contains duplicates: %d points, %d unique", len(points), len(asSet(points)))
	}
}

// The 45×45 open-map scan is the baseline workload the implementation is
// benchmarked on; the result must be one contiguous region.
func TestFieldOfView_OpenMapBaseline(t *testing.T) {
	const (
		width, height = 45, 45
		radius        = 24
	)
	m := newSampleMap(width, height)
	origin := grid.Pt(22, 22)

	points := FieldOfView(m, origin.X, origin.Y, radius, true)
	visible := asSet(points)
	if !visible[origin] {
		t.Fatal("origin missing from the baseline scan")
	}

	// Flood-fill from the origin with 4-connectivity.
	reached := map[grid.Point]bool{origin: true}
	queue := []grid.Point{origin}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range []grid.Point{
			{X: p.X + 1, Y: p.Y}, {X: p.X - 1, Y: p.Y},
			{X: p.X, Y: p.Y + 1}, {X: p.X, Y: p.Y - 1},
		} {
			if visible[n] && !reached[n] {
				reached[n] = true
				queue = append(queue, n)
			}
		}
	}
	if len(reached) != len(visible) {
		t.Fatalf("field of view is fragmented: %d of %d cells reachable from the origin",
			len(reached), len(visible))
	}
}

func TestFieldOfView_RandomWallsStayInBounds(t *testing.T) {
	const (
		width, height = 45, 45
		radius        = 24
		randomWalls   = 10
	)
	m := newSampleMap(width, height)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < randomWalls; i++ {
		m.setTransparent(rng.Intn(width), rng.Intn(height), false)
	}
	m.setTransparent(22, 22, true)

	points := FieldOfView(m, 22, 22, radius, true)
	bounds := grid.Rect{MinX: 0, MinY: 0, MaxX: width - 1, MaxY: height - 1}
	for _, p := range points {
		if !bounds.Contains(p.X, p.Y) {
			t.Errorf("cell %v is out of bounds", p)
		}
	}
	if len(points) != len(asSet(points)) {
		t.Error("result contains duplicates")
	}
}
