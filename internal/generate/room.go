package generate

import (
	"math/rand"

	"textrogue/internal/gamemap"
)

// Prefab is a hand-authored room template. Rows use the map-dump
// characters; 'T' cells keep corridors off the template and 'd' cells are
// door stubs that only become doors when a corridor passes through them.
type Prefab struct {
	Rows         []string
	ConnX, ConnY int // connector, relative to the top-left corner
}

// Width returns the template width in cells.
func (p Prefab) Width() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return len(p.Rows[0])
}

// Height returns the template height in cells.
func (p Prefab) Height() int { return len(p.Rows) }

// Stamp writes the template centred on (cx, cy) and returns its connector
// in map coordinates.
func (p Prefab) Stamp(gmap *gamemap.GameMap, cx, cy int) gamemap.Point {
	ox := cx - p.Width()/2
	oy := cy - p.Height()/2
	for y, row := range p.Rows {
		for x := 0; x < len(row); x++ {
			gmap.Set(ox+x, oy+y, gamemap.KindForChar(row[x]))
		}
	}
	return gamemap.Point{X: ox + p.ConnX, Y: oy + p.ConnY}
}

// CarveRoom walls the rectangle r, floors its interior and places one
// door stub on each side at a random position away from the corners.
func CarveRoom(gmap *gamemap.GameMap, rng *rand.Rand, r gamemap.Rect) {
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			gmap.Set(x, y, gamemap.TileWall)
		}
	}
	for y := r.Y1 + 1; y < r.Y2; y++ {
		for x := r.X1 + 1; x < r.X2; x++ {
			gmap.Set(x, y, gamemap.TileRoom)
		}
	}
	if r.Width() < 3 || r.Height() < 3 {
		return
	}
	innerW := r.Width() - 2
	innerH := r.Height() - 2
	gmap.Set(r.X1+1+rng.Intn(innerW), r.Y1, gamemap.TileTempDoor)
	gmap.Set(r.X1+1+rng.Intn(innerW), r.Y2, gamemap.TileTempDoor)
	gmap.Set(r.X1, r.Y1+1+rng.Intn(innerH), gamemap.TileTempDoor)
	gmap.Set(r.X2, r.Y1+1+rng.Intn(innerH), gamemap.TileTempDoor)
}
