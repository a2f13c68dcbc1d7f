package component

import "textrogue/internal/ecs"

const (
	CTagPlayer   ecs.ComponentType = 8
	CTagBlocking ecs.ComponentType = 9
	CTagDead     ecs.ComponentType = 10
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagBlocking marks an entity that occupies its tile (blocks movement).
type TagBlocking struct{}

func (TagBlocking) Type() ecs.ComponentType { return CTagBlocking }

// TagDead marks a corpse. Corpses stay in the world for narration but take
// no turns and block nothing.
type TagDead struct{}

func (TagDead) Type() ecs.ComponentType { return CTagDead }
