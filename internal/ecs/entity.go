package ecs

// EntityID uniquely identifies an entity in the world. IDs grow
// monotonically, so ID order is creation order.
type EntityID uint64

// NilEntity is the zero value. No live entity ever has this ID.
const NilEntity EntityID = 0

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}
