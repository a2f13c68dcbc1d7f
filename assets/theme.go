package assets

import "textrogue/internal/generate"

// PlayerDef defines the starting attributes of the adventurer.
type PlayerDef struct {
	Name     string
	MaxHP    int
	MaxMP    int
	Strength int
	Level    int
	NextXP   int // experience needed for level 2
}

// Player is the adventurer every session starts with.
var Player = PlayerDef{
	Name:     "Player",
	MaxHP:    10,
	MaxMP:    0,
	Strength: 3,
	Level:    1,
	NextXP:   10,
}

// Goblin is the basic enemy placed in rooms.
var Goblin = generate.EnemySpawnEntry{
	Name:     "Goblin",
	MaxHP:    5,
	Strength: 2,
	Level:    1,
}

// EnemyOdds is the N in the (N-1)-in-N chance of an enemy per room.
const EnemyOdds = 4

// PrefabOdds is the 1-in-N chance that a room is stamped from Prefabs.
const PrefabOdds = 3
