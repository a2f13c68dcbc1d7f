package gamemap

// TileKind identifies the terrain of one map cell.
type TileKind uint8

const (
	TileRock       TileKind = iota // unexcavated; impassable and opaque
	TileWall                       // room perimeter during generation
	TileRoom                       // room floor
	TileDoor                       // passable, but blocks sight
	TileCorridor                   // carved path between rooms
	TileTemp                       // generation marker: do not carve
	TileStairsUp                   // level entrance
	TileStairsDown                 // level exit
	TileTempDoor                   // door stub awaiting a corridor
	TileOutOfBounds                // returned by Get outside the grid
)

// tileChars is the one-character rendering of each kind, used for map dumps.
var tileChars = [...]byte{
	TileRock:        ' ',
	TileWall:        '#',
	TileRoom:        '.',
	TileDoor:        '+',
	TileCorridor:    '-',
	TileTemp:        'T',
	TileStairsUp:    '<',
	TileStairsDown:  '>',
	TileTempDoor:    'd',
	TileOutOfBounds: '?',
}

// Char returns the map-dump character for k.
func (k TileKind) Char() byte {
	if int(k) < len(tileChars) {
		return tileChars[k]
	}
	return '?'
}

// Landmark reports whether the kind is worth pointing out in a description.
func (k TileKind) Landmark() bool {
	return k == TileDoor || k == TileStairsUp || k == TileStairsDown
}

// Opaque reports whether the kind blocks line of sight.
// Doors are passable but opaque.
func (k TileKind) Opaque() bool {
	return k == TileDoor || k == TileWall || k == TileRock
}

// LandmarkName returns the phrase used when narrating a landmark tile.
func (k TileKind) LandmarkName() string {
	switch k {
	case TileDoor:
		return "a door"
	case TileStairsUp:
		return "the entrance"
	case TileStairsDown:
		return "the exit"
	}
	return ""
}
