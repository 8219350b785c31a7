// Command ambergris-demo is an interactive playground for the field-of-view
// and pathfinding engines. Left-click toggles walls, right-click moves the
// target, the arrow keys move the origin. The A* route and the origin's
// field of view update live.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ebiten.SetWindowTitle("ambergris demo")
	ebiten.SetWindowSize(mapWidth*cellScale, mapHeight*cellScale+hudHeight)
	if err := ebiten.RunGame(newDemo()); err != nil {
		log.Fatal(err)
	}
}
