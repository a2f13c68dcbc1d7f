package game

import (
	"math/rand"

	"textrogue/assets"
	"textrogue/internal/generate"
)

// levelConfig builds the generator configuration for a level. Every level
// shares the same layout parameters; only the random stream advances.
func levelConfig(opts Options, rng *rand.Rand) *generate.Config {
	cfg := generate.ConfigFor(opts.Width, opts.Height, rng)
	cfg.Prefabs = assets.Prefabs
	cfg.PrefabOdds = assets.PrefabOdds
	goblin := assets.Goblin
	cfg.Enemy = &goblin
	cfg.EnemyOdds = assets.EnemyOdds
	return cfg
}
