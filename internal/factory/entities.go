package factory

import (
	"textrogue/assets"
	"textrogue/internal/component"
	"textrogue/internal/ecs"
	"textrogue/internal/generate"
)

// NewPlayer creates the player entity at (x, y) from def.
func NewPlayer(w *ecs.World, x, y int, def assets.PlayerDef) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Identity{Name: def.Name})
	w.Add(id, component.Health{Current: def.MaxHP, Max: def.MaxHP})
	w.Add(id, component.Mana{Current: def.MaxMP, Max: def.MaxMP})
	w.Add(id, component.Stats{Level: def.Level, NextXP: def.NextXP, Strength: def.Strength})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})
	return id
}

// NewEnemy creates an enemy entity from a spawn entry.
func NewEnemy(w *ecs.World, entry generate.EnemySpawnEntry, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Identity{Name: entry.Name})
	w.Add(id, component.Health{Current: entry.MaxHP, Max: entry.MaxHP})
	w.Add(id, component.Stats{Level: entry.Level, Strength: entry.Strength})
	w.Add(id, component.AI{Behavior: component.BehaviorChase})
	w.Add(id, component.TagBlocking{})
	return id
}

// Spawn creates every enemy in spawns and returns their IDs in order.
func Spawn(w *ecs.World, spawns []generate.EnemySpawn) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(spawns))
	for _, s := range spawns {
		ids = append(ids, NewEnemy(w, s.Entry, s.X, s.Y))
	}
	return ids
}
