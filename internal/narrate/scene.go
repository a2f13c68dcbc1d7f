package narrate

import (
	"fmt"

	"textrogue/internal/gamemap"
	"textrogue/internal/system"
)

// Sighting is an actor other than the observer.
type Sighting struct {
	Name string
	At   gamemap.Point
	Dead bool
}

// Status is the observer's vital line.
type Status struct {
	HP, MaxHP int
	MP, MaxMP int
}

func (s Status) String() string {
	return fmt.Sprintf("HP %d/%d MP %d/%d", s.HP, s.MaxHP, s.MP, s.MaxMP)
}

// Scene is everything a description is built from.
type Scene struct {
	Map    *gamemap.GameMap
	Radius int
	At     gamemap.Point
	// Status is printed first when non-nil.
	Status *Status
	Actors []Sighting
}

// Describe renders a full description: a blank separator, the optional
// status line, the position, visible landmarks, then visible actors.
func Describe(s Scene) []string {
	lines := []string{""}
	if s.Status != nil {
		lines = append(lines, s.Status.String())
	}
	lines = append(lines, Position(s.Map, s.Radius, s.At)...)

	fov := system.ComputeFOV(s.Map, s.Radius, s.At.X, s.At.Y)
	lines = append(lines, Landmarks(s.Map, fov, s.At)...)
	lines = append(lines, Actors(s.Map, s.Radius, s.At, s.Actors)...)
	return lines
}

// Landmarks lists doors and stairs inside fov in row-major order.
func Landmarks(gmap *gamemap.GameMap, fov *gamemap.Mask, at gamemap.Point) []string {
	list := NewList("There is", "And")
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			k := gmap.Get(x, y)
			if !fov.Get(x, y) || !k.Landmark() {
				continue
			}
			list.Addf("%s %s", k.LandmarkName(), Where(at, gamemap.Point{X: x, Y: y}))
		}
	}
	return list.Lines()
}

// Actors lists the sightings visible from at, in the order given.
func Actors(gmap *gamemap.GameMap, radius int, at gamemap.Point, actors []Sighting) []string {
	list := NewList("There is", "And")
	for _, a := range actors {
		if !system.Sees(gmap, radius, at.X, at.Y, a.At.X, a.At.Y) {
			continue
		}
		if a.Dead {
			list.Addf("a dead %s %s", a.Name, Where(at, a.At))
		} else {
			list.Addf("a %s %s", a.Name, Where(at, a.At))
		}
	}
	return list.Lines()
}
