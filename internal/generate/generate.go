package generate

import (
	"math/rand"

	"textrogue/internal/gamemap"
)

// Config drives procedural generation for one level.
type Config struct {
	MapWidth, MapHeight int

	// GridCols x GridRows coarse cells partition the map; each cell hosts
	// at most one room.
	GridCols, GridRows int
	// Room count is drawn from [MinRooms, MaxRooms].
	MinRooms, MaxRooms int
	// Carved room size bounds. MaxRoomW and MaxRoomH are exclusive and also
	// bound the centre jitter.
	MinRoomW, MaxRoomW int
	MinRoomH, MaxRoomH int

	// PrefabOdds is the 1-in-N chance that a room after the first is stamped
	// from Prefabs instead of carved. Zero disables prefabs.
	PrefabOdds int
	Prefabs    []Prefab

	// Enemy is spawned at a room's connector with EnemyOdds-1 in EnemyOdds
	// chance. A nil Enemy or zero odds places none.
	Enemy     *EnemySpawnEntry
	EnemyOdds int

	Rand *rand.Rand
}

// DefaultConfig returns the standard 50x30 layout on a 4x4 coarse grid.
func DefaultConfig(rng *rand.Rand) *Config {
	return ConfigFor(50, 30, rng)
}

// ConfigFor scales the coarse grid to a map of the given size.
func ConfigFor(width, height int, rng *rand.Rand) *Config {
	const cols, rows = 4, 4
	maxW := width / cols
	maxH := height / rows
	return &Config{
		MapWidth:  width,
		MapHeight: height,
		GridCols:  cols,
		GridRows:  rows,
		MinRooms:  7,
		MaxRooms:  9,
		MinRoomW:  maxW - 5,
		MaxRoomW:  maxW,
		MinRoomH:  4,
		MaxRoomH:  maxH,
		Rand:      rng,
	}
}

// Generate builds one level: rooms and prefabs on the coarse grid, two
// connection passes, cleanup of construction markers, then stairs. Up is
// placed at the first room and Down at the last carved room, or at the
// last prefab when no other room was carved. gmap.Rooms receives every
// connector point in generation order.
func Generate(cfg *Config) *gamemap.GameMap {
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	rng := cfg.Rand

	cells := cfg.GridCols * cfg.GridRows
	used := make([]bool, cells)
	cellW := cfg.MapWidth / cfg.GridCols
	cellH := cfg.MapHeight / cfg.GridRows

	n := cfg.MinRooms + rng.Intn(cfg.MaxRooms-cfg.MinRooms+1)
	if n > cells {
		n = cells
	}

	var last gamemap.Point
	for ri := 0; ri < n; ri++ {
		i := rng.Intn(cells)
		for used[i] {
			i = (i + 1) % cells
		}
		used[i] = true
		cx := (i%cfg.GridCols)*cellW + cellW/2
		cy := (i/cfg.GridCols)*cellH + cellH/2

		if ri != 0 && cfg.PrefabOdds > 0 && len(cfg.Prefabs) > 0 && rng.Intn(cfg.PrefabOdds) == 0 {
			pf := cfg.Prefabs[rng.Intn(len(cfg.Prefabs))]
			gmap.Rooms = append(gmap.Rooms, pf.Stamp(gmap, cx, cy))
			continue
		}

		w := cfg.MinRoomW + rng.Intn(cfg.MaxRoomW-cfg.MinRoomW)
		h := cfg.MinRoomH + rng.Intn(cfg.MaxRoomH-cfg.MinRoomH)
		cx += jitter(rng, cfg.MaxRoomW-w)
		cy += jitter(rng, cfg.MaxRoomH-h)

		x1, y1 := cx-w/2, cy-h/2
		CarveRoom(gmap, rng, gamemap.Rect{X1: x1, Y1: y1, X2: x1 + w - 1, Y2: y1 + h - 1})
		last = gamemap.Point{X: cx, Y: cy}
		gmap.Rooms = append(gmap.Rooms, last)
	}

	first := gmap.Rooms[0]
	if last == first && len(gmap.Rooms) > 1 {
		// every later room was a prefab
		last = gmap.Rooms[len(gmap.Rooms)-1]
	}
	connectRooms(gmap, gmap.Rooms)
	shuffled := make([]gamemap.Point, len(gmap.Rooms))
	copy(shuffled, gmap.Rooms)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	connectRooms(gmap, shuffled)

	cleanup(gmap)

	gmap.Set(first.X, first.Y, gamemap.TileStairsUp)
	gmap.Set(last.X, last.Y, gamemap.TileStairsDown)
	gmap.Up = first
	gmap.Down = last
	return gmap
}

// jitter returns a centre offset for a room that leaves slack cells of its
// coarse cell unused. The range is [-slack/2 rounded down + 1, slack/2).
func jitter(rng *rand.Rand, slack int) int {
	if slack <= 1 {
		return 0
	}
	lo := floorDiv(slack, -2) + 1
	hi := slack / 2
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}

// cleanup resets construction markers, unused door stubs and leftover room
// walls to rock.
func cleanup(gmap *gamemap.GameMap) {
	gmap.Replace(gamemap.TileTemp, gamemap.TileRock)
	gmap.Replace(gamemap.TileTempDoor, gamemap.TileRock)
	gmap.Replace(gamemap.TileWall, gamemap.TileRock)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
