package main

import (
	"fmt"
	"image/color"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/redwarp/ambergris/fov"
	"github.com/redwarp/ambergris/grid"
	"github.com/redwarp/ambergris/gridmap"
	"github.com/redwarp/ambergris/path"
)

const (
	mapWidth  = 20
	mapHeight = 20
	cellScale = 24
	hudHeight = 40

	defaultRadius = 8
)

var (
	floorColor     = color.RGBA{R: 230, G: 205, B: 230, A: 255}
	wallColor      = color.RGBA{R: 77, G: 0, B: 0, A: 255}
	seenFloorColor = color.RGBA{R: 255, G: 240, B: 200, A: 255}
	seenWallColor  = color.RGBA{R: 140, G: 60, B: 40, A: 255}
	routeColor     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	originColor    = color.RGBA{R: 30, G: 140, B: 30, A: 255}
	targetColor    = color.RGBA{R: 30, G: 60, B: 200, A: 255}
	gridLineColor  = color.RGBA{R: 200, G: 180, B: 200, A: 255}
	hudColor       = color.RGBA{R: 25, G: 25, B: 30, A: 255}
)

type demo struct {
	m      *gridmap.DenseMap
	origin grid.Point
	target grid.Point
	radius int

	showFOV      bool
	includeWalls bool
	dirty        bool

	visible    []grid.Point
	visibleSet map[grid.Point]bool
	route      []grid.Point

	status string
}

func newDemo() *demo {
	d := &demo{
		m:            gridmap.NewDenseMap(mapWidth, mapHeight),
		origin:       grid.Pt(2, 2),
		target:       grid.Pt(12, 8),
		radius:       defaultRadius,
		showFOV:      true,
		includeWalls: true,
		dirty:        true,
	}
	// A starter wall so there is something to route around.
	d.m.BuildWall(grid.Pt(8, 3), grid.Pt(8, 14))
	return d
}

func (d *demo) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if cell, ok := d.cursorCell(); ok && cell != d.origin && cell != d.target {
			if d.m.Blocked(cell.X, cell.Y) {
				d.m.Clear(cell.X, cell.Y)
			} else {
				d.m.Block(cell.X, cell.Y)
			}
			d.dirty = true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if cell, ok := d.cursorCell(); ok && !d.m.Blocked(cell.X, cell.Y) {
			d.target = cell
			d.dirty = true
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		d.showFOV = !d.showFOV
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		d.includeWalls = !d.includeWalls
		d.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		d.radius++
		d.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && d.radius > 1 {
		d.radius--
		d.dirty = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		d.moveOrigin(-1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		d.moveOrigin(1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		d.moveOrigin(0, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		d.moveOrigin(0, 1)
	}

	if d.dirty {
		d.recompute()
		d.dirty = false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		d.copySnapshot()
	}
	return nil
}

func (d *demo) cursorCell() (grid.Point, bool) {
	mx, my := ebiten.CursorPosition()
	x, y := mx/cellScale, my/cellScale
	if mx < 0 || my < 0 || x >= mapWidth || y >= mapHeight {
		return grid.Point{}, false
	}
	return grid.Pt(x, y), true
}

func (d *demo) moveOrigin(dx, dy int) {
	x, y := d.origin.X+dx, d.origin.Y+dy
	if x < 0 || y < 0 || x >= mapWidth || y >= mapHeight || d.m.Blocked(x, y) {
		return
	}
	d.origin = grid.Pt(x, y)
	d.dirty = true
}

func (d *demo) recompute() {
	d.visible = fov.FieldOfView(d.m, d.origin.X, d.origin.Y, d.radius, d.includeWalls)
	d.visibleSet = make(map[grid.Point]bool, len(d.visible))
	for _, p := range d.visible {
		d.visibleSet[p] = true
	}

	d.route = path.AstarPath(path.NewFourWayGrid(d.m), d.origin, d.target)
	if d.route == nil {
		d.status = "no route to target"
	} else {
		d.status = fmt.Sprintf("route: %d steps", len(d.route)-1)
	}
}

func (d *demo) copySnapshot() {
	shot := gridmap.Snapshot(d.m, d.visible, d.route, d.origin)
	if err := clipboard.WriteAll(shot); err != nil {
		d.status = fmt.Sprintf("clipboard: %v", err)
		return
	}
	d.status = "snapshot copied to clipboard"
}

func (d *demo) Draw(screen *ebiten.Image) {
	screen.Fill(hudColor)

	for y := 0; y < mapHeight; y++ {
		for x := 0; x < mapWidth; x++ {
			cell := grid.Pt(x, y)
			fill := floorColor
			switch {
			case d.m.Blocked(x, y) && d.showFOV && d.visibleSet[cell]:
				fill = seenWallColor
			case d.m.Blocked(x, y):
				fill = wallColor
			case d.showFOV && d.visibleSet[cell]:
				fill = seenFloorColor
			}
			vector.FillRect(screen,
				float32(x*cellScale), float32(y*cellScale),
				cellScale, cellScale, fill, false)
			vector.StrokeRect(screen,
				float32(x*cellScale), float32(y*cellScale),
				cellScale, cellScale, 1, gridLineColor, false)
		}
	}

	for i := 1; i < len(d.route); i++ {
		a, b := d.route[i-1], d.route[i]
		vector.StrokeLine(screen,
			float32(a.X*cellScale+cellScale/2), float32(a.Y*cellScale+cellScale/2),
			float32(b.X*cellScale+cellScale/2), float32(b.Y*cellScale+cellScale/2),
			cellScale/10, routeColor, false)
	}

	vector.FillRect(screen,
		float32(d.origin.X*cellScale)+3, float32(d.origin.Y*cellScale)+3,
		cellScale-6, cellScale-6, originColor, false)
	vector.FillRect(screen,
		float32(d.target.X*cellScale)+3, float32(d.target.Y*cellScale)+3,
		cellScale-6, cellScale-6, targetColor, false)

	hudTop := mapHeight * cellScale
	text.Draw(screen,
		fmt.Sprintf("radius=%d fov=%v walls_in_fov=%v  %s", d.radius, d.showFOV, d.includeWalls, d.status),
		basicfont.Face7x13, 6, hudTop+16, color.White)
	ebitenutil.DebugPrintAt(screen,
		"LMB wall  RMB target  arrows move  V fov  W walls  +/- radius  C copy",
		6, hudTop+20)
}

func (d *demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	return mapWidth * cellScale, mapHeight*cellScale + hudHeight
}
