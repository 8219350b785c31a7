package grid

// Rect is an inclusive cell rectangle spanning [MinX, MaxX] × [MinY, MaxY].
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// Around returns the square window of the given radius centered on (x, y),
// clipped to [0, width) × [0, height).
func Around(x, y, radius, width, height int) Rect {
	return Rect{
		MinX: max(x-radius, 0),
		MinY: max(y-radius, 0),
		MaxX: min(x+radius, width-1),
		MaxY: min(y+radius, height-1),
	}
}

// Width returns the number of cell columns covered by r.
func (r Rect) Width() int {
	return r.MaxX - r.MinX + 1
}

// Height returns the number of cell rows covered by r.
func (r Rect) Height() int {
	return r.MaxY - r.MinY + 1
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}
