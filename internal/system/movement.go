package system

import (
	"textrogue/internal/component"
	"textrogue/internal/ecs"
	"textrogue/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveBlocked MoveResult = iota // impassable tile, or the mover is dead
	MoveOK                        // position updated, or a zero step
	MoveAttack                    // bumped a live actor
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveAttack:
		return "attack"
	}
	return "blocked"
}

// ActorAt returns the live actor standing on (x, y), or NilEntity.
// Corpses are ignored.
func ActorAt(w *ecs.World, x, y int) ecs.EntityID {
	for _, id := range w.Query(component.CTagBlocking, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if pos.X == x && pos.Y == y {
			return id
		}
	}
	return ecs.NilEntity
}

// Alive reports whether id is an actor that can still act.
func Alive(w *ecs.World, id ecs.EntityID) bool {
	return w.Alive(id) && w.Has(id, component.CPosition) && !w.Has(id, component.CTagDead)
}

// TryMove attempts to move entity id by (dx, dy) on gmap.
// Returns the outcome and, for MoveAttack, the actor in the way. The
// attack itself is left to the caller.
func TryMove(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	if !Alive(w, id) {
		return MoveBlocked, ecs.NilEntity
	}
	if dx == 0 && dy == 0 {
		return MoveOK, ecs.NilEntity
	}
	pos := w.Get(id, component.CPosition).(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy

	if !Passable.Has(gmap.Get(nx, ny)) {
		return MoveBlocked, ecs.NilEntity
	}
	if other := ActorAt(w, nx, ny); other != ecs.NilEntity && other != id {
		return MoveAttack, other
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	return MoveOK, ecs.NilEntity
}

// MoveOrAttack is TryMove followed by melee when the way is occupied.
func MoveOrAttack(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, dx, dy int) (MoveResult, AttackResult) {
	res, target := TryMove(w, gmap, id, dx, dy)
	if res != MoveAttack {
		return res, AttackResult{}
	}
	return res, Attack(w, id, target)
}
