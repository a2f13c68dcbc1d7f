package generate

import (
	"textrogue/internal/gamemap"
	"textrogue/internal/system"
)

// carvable is what corridors may be routed through while wiring rooms.
var carvable = system.Kinds(
	gamemap.TileDoor,
	gamemap.TileTempDoor,
	gamemap.TileRoom,
	gamemap.TileCorridor,
	gamemap.TileRock,
)

// carvableLoose additionally crosses "do not carve" markers. It is only
// used when the strict route does not exist, so that every room stays
// reachable.
var carvableLoose = system.Kinds(
	gamemap.TileDoor,
	gamemap.TileTempDoor,
	gamemap.TileRoom,
	gamemap.TileCorridor,
	gamemap.TileRock,
	gamemap.TileTemp,
)

// connectRooms joins each consecutive pair of connectors with a corridor.
func connectRooms(gmap *gamemap.GameMap, rooms []gamemap.Point) {
	for i := 0; i+1 < len(rooms); i++ {
		path := system.FindPath(gmap, carvable, rooms[i], rooms[i+1], system.NoExclusions)
		if len(path) == 0 {
			path = system.FindPath(gmap, carvableLoose, rooms[i], rooms[i+1], system.NoExclusions)
		}
		carvePath(gmap, path)
	}
}

// carvePath turns the rock along path into corridor and stubs into doors.
// Rock beside every step not divisible by three is marked so later passes
// route around it instead of widening the corridor.
func carvePath(gmap *gamemap.GameMap, path []gamemap.Point) {
	for _, p := range path {
		switch gmap.At(p) {
		case gamemap.TileRock, gamemap.TileTemp:
			gmap.Set(p.X, p.Y, gamemap.TileCorridor)
		case gamemap.TileTempDoor:
			gmap.Set(p.X, p.Y, gamemap.TileDoor)
		}
	}
	for i, p := range path {
		if i%3 == 0 {
			continue
		}
		for _, d := range gamemap.Dirs {
			n := p.Add(d)
			if gmap.At(n) == gamemap.TileRock {
				gmap.Set(n.X, n.Y, gamemap.TileTemp)
			}
		}
	}
}
