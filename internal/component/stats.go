package component

import "textrogue/internal/ecs"

const (
	CStats    ecs.ComponentType = 4
	CIdentity ecs.ComponentType = 6
)

// Stats holds the progression and melee attributes of an actor.
// NextXP is the experience needed for the next level; zero disables
// levelling for the actor.
type Stats struct {
	Level    int
	XP       int
	NextXP   int
	Strength int
}

func (Stats) Type() ecs.ComponentType { return CStats }

// Identity is the display name used in narration.
type Identity struct {
	Name string
}

func (Identity) Type() ecs.ComponentType { return CIdentity }
