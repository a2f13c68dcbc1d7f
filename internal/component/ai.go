package component

import "textrogue/internal/ecs"

const CAI ecs.ComponentType = 5

// AIBehavior describes how an enemy acts each turn.
type AIBehavior uint8

const (
	BehaviorChase      AIBehavior = iota // path toward the player when seen, wander otherwise
	BehaviorStationary                   // never moves
)

type AI struct {
	Behavior AIBehavior
}

func (AI) Type() ecs.ComponentType { return CAI }
