package system

import (
	"math/rand"

	"textrogue/internal/component"
	"textrogue/internal/ecs"
	"textrogue/internal/gamemap"
)

// EnemyTurn runs one turn of AI for id against target. An enemy that sees
// the target steps along the shortest path toward it, which becomes an
// attack once adjacent; otherwise it wanders. The bool result is true
// when an attack was made.
func EnemyTurn(w *ecs.World, gmap *gamemap.GameMap, id, target ecs.EntityID, radius int, rng *rand.Rand) (AttackResult, bool) {
	if !Alive(w, id) || !w.Has(id, component.CAI) {
		return AttackResult{}, false
	}
	if w.Get(id, component.CAI).(component.AI).Behavior == component.BehaviorStationary {
		return AttackResult{}, false
	}

	pos := w.Get(id, component.CPosition).(component.Position)
	if Alive(w, target) {
		tpos := w.Get(target, component.CPosition).(component.Position)
		if Sees(gmap, radius, pos.X, pos.Y, tpos.X, tpos.Y) {
			res, atk := Approach(w, gmap, id, tpos.Point())
			return atk, res == MoveAttack
		}
	}
	Wander(w, gmap, id, rng)
	return AttackResult{}, false
}

// Approach takes one step along the shortest passable path from id to dst.
// Cells held by other live actors are routed around, except dst itself so
// that the final step lands as an attack.
func Approach(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, dst gamemap.Point) (MoveResult, AttackResult) {
	pos := w.Get(id, component.CPosition).(component.Position)
	src := pos.Point()

	path := FindPath(gmap, Passable, src, dst, occupiedExcept(w, id, dst))
	if len(path) == 0 {
		return MoveBlocked, AttackResult{}
	}
	step := path[0]
	return MoveOrAttack(w, gmap, id, step.X-src.X, step.Y-src.Y)
}

// Wander moves id one cell in a random direction onto a free passable
// tile. It stays put when every neighbour is taken.
func Wander(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, rng *rand.Rand) bool {
	pos := w.Get(id, component.CPosition).(component.Position)
	order := rng.Perm(len(gamemap.Dirs))
	for _, i := range order {
		d := gamemap.Dirs[i]
		nx, ny := pos.X+d.X, pos.Y+d.Y
		if ActorAt(w, nx, ny) != ecs.NilEntity {
			continue
		}
		if !Passable.Has(gmap.Get(nx, ny)) {
			continue
		}
		w.Add(id, component.Position{X: nx, Y: ny})
		return true
	}
	return false
}

// occupiedExcept snapshots the cells of every live actor other than self
// and whoever stands on keep.
func occupiedExcept(w *ecs.World, self ecs.EntityID, keep gamemap.Point) Exclusions {
	cells := Cells()
	for _, other := range w.Query(component.CTagBlocking, component.CPosition) {
		if other == self {
			continue
		}
		p := w.Get(other, component.CPosition).(component.Position).Point()
		if p != keep {
			cells.Put(p)
		}
	}
	return cells
}
