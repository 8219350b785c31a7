package gridmap

import (
	"strings"

	"github.com/redwarp/ambergris/fov"
	"github.com/redwarp/ambergris/grid"
)

// Snapshot renders a map as a bordered fixed-width ASCII block with vision
// and path overlays. Cells draw as:
//
//	'?'  never seen
//	' '  visible floor
//	'#'  visible wall
//	'o'  path step
//	'@'  origin
//
// Either overlay slice may be nil. The result suits debug logs, test
// failure output and clipboard export.
func Snapshot(m fov.Map, visible, path []grid.Point, origin grid.Point) string {
	width, height := m.Dimensions()

	cells := make([]byte, width*height)
	for i := range cells {
		cells[i] = '?'
	}
	for _, p := range visible {
		if m.IsOpaque(p.X, p.Y) {
			cells[grid.Index(p.X, p.Y, width)] = '#'
		} else {
			cells[grid.Index(p.X, p.Y, width)] = ' '
		}
	}
	for _, p := range path {
		cells[grid.Index(p.X, p.Y, width)] = 'o'
	}

	bounds := grid.Rect{MinX: 0, MinY: 0, MaxX: width - 1, MaxY: height - 1}
	if bounds.Contains(origin.X, origin.Y) {
		cells[grid.Index(origin.X, origin.Y, width)] = '@'
	}

	var b strings.Builder
	b.Grow((width + 3) * (height + 2))
	border := "+" + strings.Repeat("-", width) + "+"

	b.WriteString(border)
	b.WriteByte('\n')
	for y := 0; y < height; y++ {
		b.WriteByte('|')
		b.Write(cells[y*width : (y+1)*width])
		b.WriteString("|\n")
	}
	b.WriteString(border)

	return b.String()
}
