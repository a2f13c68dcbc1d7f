package gamemap

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// NoPoint is returned by lookups that found nothing. It is never in bounds.
var NoPoint = Point{X: -1, Y: -1}

// Add returns p offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction indexes Dirs. The order North, East, South, West is also the
// tie-break order used by path extraction.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Dirs holds the 4-connected unit offsets in Direction order.
var Dirs = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

var (
	dirLetters = [4]string{"N", "E", "S", "W"}
	dirNames   = [4]string{"north", "east", "south", "west"}
)

// Letter returns the one-letter compass code ("N").
func (d Direction) Letter() string { return dirLetters[d] }

// String returns the compass name ("north").
func (d Direction) String() string { return dirNames[d] }

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Offset returns the unit step for d.
func (d Direction) Offset() Point { return Dirs[d] }

// DirectionOf returns the direction matching a unit step, or false for any
// other offset (including the zero offset).
func DirectionOf(delta Point) (Direction, bool) {
	for i, d := range Dirs {
		if d == delta {
			return Direction(i), true
		}
	}
	return 0, false
}
