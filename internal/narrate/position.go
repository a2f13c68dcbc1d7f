package narrate

import (
	"fmt"
	"slices"
	"strings"

	"textrogue/internal/gamemap"
	"textrogue/internal/system"
)

// RoomSize measures the open rectangle around p by scanning each axis
// until a door, rock, corridor or the map edge.
func RoomSize(gmap *gamemap.GameMap, p gamemap.Point) gamemap.Rect {
	edge := func(x, y int) bool {
		switch gmap.Get(x, y) {
		case gamemap.TileDoor, gamemap.TileRock, gamemap.TileCorridor, gamemap.TileOutOfBounds:
			return true
		}
		return false
	}
	r := gamemap.Rect{X1: p.X, Y1: p.Y, X2: p.X, Y2: p.Y}
	for !edge(r.X1-1, p.Y) {
		r.X1--
	}
	for !edge(p.X, r.Y1-1) {
		r.Y1--
	}
	for !edge(r.X2+1, p.Y) {
		r.X2++
	}
	for !edge(p.X, r.Y2+1) {
		r.Y2++
	}
	return r
}

// Position classifies the observer's cell: a doorway with what adjoins
// it, a corridor with its shape up to the sight limit, or a room with its
// size and the observer's offset from the top-left corner.
func Position(gmap *gamemap.GameMap, radius int, at gamemap.Point) []string {
	switch gmap.At(at) {
	case gamemap.TileDoor:
		return doorway(gmap, at)
	case gamemap.TileCorridor:
		return corridor(gmap, radius, at)
	}
	r := RoomSize(gmap, at)
	return []string{fmt.Sprintf("You are in a %dx%d room at %d %d",
		r.Width(), r.Height(), at.X-r.X1, at.Y-r.Y1)}
}

func doorway(gmap *gamemap.GameMap, at gamemap.Point) []string {
	lines := []string{"You are in a doorway"}
	list := NewList("There is", "And")
	for i, d := range gamemap.Dirs {
		dir := gamemap.Direction(i)
		n := at.Add(d)
		switch gmap.At(n) {
		case gamemap.TileRock, gamemap.TileOutOfBounds, gamemap.TileDoor:
		case gamemap.TileCorridor:
			list.Addf("a corridor %s", dir)
		default:
			r := RoomSize(gmap, n)
			list.Addf("a %dx%d room %s", r.Width(), r.Height(), dir)
		}
	}
	return append(lines, list.Lines()...)
}

// corridorDirs returns the directions from p that continue as corridor.
func corridorDirs(gmap *gamemap.GameMap, p gamemap.Point) []gamemap.Direction {
	var out []gamemap.Direction
	for i, d := range gamemap.Dirs {
		if gmap.At(p.Add(d)) == gamemap.TileCorridor {
			out = append(out, gamemap.Direction(i))
		}
	}
	return out
}

// closed reports whether every neighbour of p other than back is rock or
// off the map.
func closed(gmap *gamemap.GameMap, p gamemap.Point, back gamemap.Direction) bool {
	for i, d := range gamemap.Dirs {
		if gamemap.Direction(i) == back {
			continue
		}
		switch gmap.At(p.Add(d)) {
		case gamemap.TileRock, gamemap.TileOutOfBounds:
		default:
			return false
		}
	}
	return true
}

func corridor(gmap *gamemap.GameMap, radius int, at gamemap.Point) []string {
	open := corridorDirs(gmap, at)
	var shape strings.Builder
	for _, d := range open {
		shape.WriteString(" " + d.Letter())
	}
	lines := []string{fmt.Sprintf("You are in a%s corridor", shape.String())}

	list := NewList("With", "And")
	for _, dir := range open {
		back := dir.Opposite()
		cur := at
		for gmap.At(cur.Add(dir.Offset())) == gamemap.TileCorridor {
			cur = cur.Add(dir.Offset())
			if !system.Sees(gmap, radius, at.X, at.Y, cur.X, cur.Y) {
				break
			}
			fork := corridorDirs(gmap, cur)
			ahead := slices.Contains(fork, dir)
			switch {
			case len(fork) == 1:
				if closed(gmap, cur, back) {
					list.Addf("a dead end %s", Where(at, cur))
				}
			case len(fork) == 2 && !ahead:
				for _, f := range fork {
					if f != back {
						list.Addf("a %s turn %s", f.Letter(), Where(at, cur))
					}
				}
			case len(fork) > 2:
				var b strings.Builder
				for _, f := range fork {
					if f != back {
						b.WriteString(" " + f.Letter())
					}
				}
				list.Addf("a%s fork %s", b.String(), Where(at, cur))
			}
		}
	}
	return append(lines, list.Lines()...)
}
