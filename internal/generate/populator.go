package generate

import (
	"textrogue/internal/gamemap"
)

// EnemySpawnEntry describes one kind of enemy.
type EnemySpawnEntry struct {
	Name     string
	MaxHP    int
	Strength int
	Level    int
}

// EnemySpawn describes one enemy to create.
type EnemySpawn struct {
	Entry EnemySpawnEntry
	X, Y  int
}

// Populate decides where enemies appear on a freshly generated level. Each
// room connector except the player's arrival room rolls once: the first
// room on a descent, the down-stairs room after an ascent.
func Populate(gmap *gamemap.GameMap, cfg *Config, ascending bool) []EnemySpawn {
	if cfg.Enemy == nil || cfg.EnemyOdds <= 0 || len(gmap.Rooms) == 0 {
		return nil
	}
	arrival := gmap.Rooms[0]
	if ascending {
		arrival = gmap.Down
	}

	var spawns []EnemySpawn
	for _, r := range gmap.Rooms {
		if r == arrival {
			continue
		}
		if cfg.Rand.Intn(cfg.EnemyOdds) == 0 {
			continue
		}
		spawns = append(spawns, EnemySpawn{Entry: *cfg.Enemy, X: r.X, Y: r.Y})
	}
	return spawns
}

// Arrival returns where the player enters a generated level.
func Arrival(gmap *gamemap.GameMap, ascending bool) gamemap.Point {
	if ascending {
		return gmap.Down
	}
	return gmap.Up
}
