package gridmap

import (
	"strings"
	"testing"

	"github.com/redwarp/ambergris/fov"
	"github.com/redwarp/ambergris/grid"
)

func TestSnapshot_Overlays(t *testing.T) {
	m := NewDenseMap(5, 4)
	m.Block(2, 1)

	visible := []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}}
	route := []grid.Point{{X: 3, Y: 2}, {X: 4, Y: 2}}

	got := Snapshot(m, visible, route, grid.Pt(1, 1))
	want := strings.Join([]string{
		"+-----+",
		"|  ???|",
		"|?@#??|",
		"|???oo|",
		"|?????|",
		"+-----+",
	}, "\n")

	if got != want {
		t.Fatalf("snapshot mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestSnapshot_OriginOutsideMapIsIgnored(t *testing.T) {
	m := NewDenseMap(3, 2)
	got := Snapshot(m, nil, nil, grid.Pt(-1, -1))
	want := strings.Join([]string{
		"+---+",
		"|???|",
		"|???|",
		"+---+",
	}, "\n")
	if got != want {
		t.Fatalf("snapshot mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestSnapshot_RendersFieldOfView(t *testing.T) {
	m := NewDenseMap(10, 10)
	m.BuildWall(grid.Pt(1, 3), grid.Pt(9, 3))

	visible := fov.FieldOfView(m, 3, 2, 10, true)
	shot := Snapshot(m, visible, nil, grid.Pt(3, 2))

	lines := strings.Split(shot, "\n")
	if len(lines) != 12 {
		t.Fatalf("snapshot has %d lines, want 12", len(lines))
	}
	if !strings.Contains(shot, "@") {
		t.Error("snapshot should mark the origin")
	}
	if !strings.Contains(shot, "#") {
		t.Error("snapshot should mark visible walls")
	}
}
