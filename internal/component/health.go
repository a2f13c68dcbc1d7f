package component

import "textrogue/internal/ecs"

const (
	CHealth ecs.ComponentType = 2
	CMana   ecs.ComponentType = 3
)

type Health struct {
	Current, Max int
}

func (Health) Type() ecs.ComponentType { return CHealth }

// Mana is optional; enemies carry none.
type Mana struct {
	Current, Max int
}

func (Mana) Type() ecs.ComponentType { return CMana }
