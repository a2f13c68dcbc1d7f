package gamemap

import "strings"

// Rect is an axis-aligned rectangle; X2/Y2 are inclusive.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Width returns the number of columns covered by r.
func (r Rect) Width() int { return r.X2 - r.X1 + 1 }

// Height returns the number of rows covered by r.
func (r Rect) Height() int { return r.Y2 - r.Y1 + 1 }

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// GameMap holds the tile grid for one dungeon level. It is replaced
// wholesale on every level transition, taking the explored set with it.
type GameMap struct {
	Width, Height int
	tiles         []TileKind

	// Rooms lists each room's connector point in generation order.
	Rooms []Point
	// Up and Down locate the stairs; NoPoint until placed.
	Up, Down Point

	Explored *Mask
}

// New creates a GameMap filled with rock.
func New(width, height int) *GameMap {
	return &GameMap{
		Width:    width,
		Height:   height,
		tiles:    make([]TileKind, width*height),
		Up:       NoPoint,
		Down:     NoPoint,
		Explored: NewMask(width, height),
	}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Get returns the tile at (x, y), or TileOutOfBounds outside the map.
func (m *GameMap) Get(x, y int) TileKind {
	if !m.InBounds(x, y) {
		return TileOutOfBounds
	}
	return m.tiles[y*m.Width+x]
}

// Set replaces the tile at (x, y). No-op outside the map.
func (m *GameMap) Set(x, y int, t TileKind) {
	if !m.InBounds(x, y) {
		return
	}
	m.tiles[y*m.Width+x] = t
}

// At is Get for a Point.
func (m *GameMap) At(p Point) TileKind { return m.Get(p.X, p.Y) }

// Count returns how many cells hold kind k.
func (m *GameMap) Count(k TileKind) int {
	n := 0
	for _, t := range m.tiles {
		if t == k {
			n++
		}
	}
	return n
}

// Replace rewrites every cell of kind from to kind to.
func (m *GameMap) Replace(from, to TileKind) {
	for i, t := range m.tiles {
		if t == from {
			m.tiles[i] = to
		}
	}
}

// String dumps the map one row per line using each kind's Char.
func (m *GameMap) String() string {
	var b strings.Builder
	b.Grow((m.Width + 1) * m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			b.WriteByte(m.Get(x, y).Char())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse builds a map from rows of tile characters as produced by String.
// Unknown characters become rock. Intended for fixtures and tests.
func Parse(rows ...string) *GameMap {
	h := len(rows)
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	m := New(w, h)
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			m.Set(x, y, KindForChar(r[x]))
		}
	}
	return m
}

// KindForChar is the inverse of Char. Unknown characters map to rock.
func KindForChar(c byte) TileKind {
	for k, ch := range tileChars {
		if ch == c && TileKind(k) != TileOutOfBounds {
			return TileKind(k)
		}
	}
	return TileRock
}
