package game

import (
	"textrogue/internal/component"
	"textrogue/internal/gamemap"
	"textrogue/internal/narrate"
	"textrogue/internal/system"

	"github.com/sirupsen/logrus"
)

// maxRestTurns bounds a single rest.
const maxRestTurns = 10000

// Location is a named destination for GoTo.
type Location struct {
	Name string
	Kind gamemap.TileKind
}

// Locations lists the destinations GoTo understands, in matching order.
var Locations = []Location{
	{"entrance", gamemap.TileStairsUp},
	{"exit", gamemap.TileStairsDown},
	{"door", gamemap.TileDoor},
}

// MoveAlert moves or attacks one step and narrates the outcome. It reports
// whether a turn was consumed.
func (s *Session) MoveAlert(dir gamemap.Direction) bool {
	d := dir.Offset()
	res, atk := system.MoveOrAttack(s.world, s.gmap, s.player, d.X, d.Y)
	switch res {
	case system.MoveOK:
		s.say("You move %s.", dir)
	case system.MoveAttack:
		s.reportAttack(atk)
	default:
		s.say("You can't go that way.")
		return false
	}
	return true
}

// Move is the command form of MoveAlert: a successful step ends the turn.
func (s *Session) Move(dir gamemap.Direction) {
	if s.MoveAlert(dir) {
		s.EndTurn()
	}
}

// Wait passes one turn.
func (s *Session) Wait() {
	s.say("You wait.")
	s.EndTurn()
}

// Look repeats the description of the surroundings.
func (s *Session) Look() { s.Describe(true) }

// autoMove takes one step of an automatic walk as a full turn. Stepping
// from a door onto room floor narrates the room. It reports false when the
// walk has to stop.
func (s *Session) autoMove(to gamemap.Point) bool {
	from := s.PlayerPos()
	dir, ok := gamemap.DirectionOf(gamemap.Point{X: to.X - from.X, Y: to.Y - from.Y})
	if !ok {
		return false
	}
	old := s.gmap.At(from)
	moved := s.MoveAlert(dir)
	s.Update()
	if s.checkDeath() {
		return false
	}
	s.MergeFOV()
	if old == gamemap.TileDoor && s.gmap.At(s.PlayerPos()) == gamemap.TileRoom {
		s.Describe(false)
	}
	return moved
}

// ExploreStep walks one step toward the nearest reachable unexplored cell.
// It reports whether exploring should continue.
func (s *Session) ExploreStep() bool {
	if s.gmap.Explored.All() {
		s.say("Map explored.")
		return false
	}
	if !s.Safe() {
		s.say("Monsters nearby.")
		s.Describe(true)
		return false
	}

	p := s.PlayerPos()
	field := system.BuildDistanceField(s.gmap, system.Passable, p, system.NoExclusions)
	closest := gamemap.NoPoint
	best := 0
	for y := 0; y < s.gmap.Height; y++ {
		for x := 0; x < s.gmap.Width; x++ {
			if s.gmap.Explored.Get(x, y) || !field.Reached(x, y) {
				continue
			}
			if g := field.At(x, y); closest == gamemap.NoPoint || g < best {
				closest, best = gamemap.Point{X: x, Y: y}, g
			}
		}
	}
	if closest == gamemap.NoPoint {
		s.say("Explored all accessible areas.")
		return false
	}
	path := system.FindPath(s.gmap, system.Passable, p, closest, system.NoExclusions)
	if len(path) == 0 {
		s.say("Explored all accessible areas.")
		return false
	}
	return s.autoMove(path[0])
}

// Explore keeps stepping until something stops it.
func (s *Session) Explore() {
	for s.ExploreStep() {
	}
}

// Rest passes turns until hit points and mana are full, or an enemy shows up.
func (s *Session) Rest() {
	hp := s.world.Get(s.player, component.CHealth).(component.Health)
	needHP := hp.Current < hp.Max
	needMP := false
	if c := s.world.Get(s.player, component.CMana); c != nil {
		mp := c.(component.Mana)
		needMP = mp.Current < mp.Max
	}
	if !needHP && !needMP {
		s.say("No need.")
		return
	}

	for i := 0; i < maxRestTurns && (needHP || needMP); i++ {
		if !s.Safe() {
			s.say("Monsters nearby.")
			break
		}
		s.Update()
		if s.checkDeath() {
			return
		}
		hp := s.world.Get(s.player, component.CHealth).(component.Health)
		if needHP && hp.Current >= hp.Max {
			s.say("HP restored")
			needHP = false
		}
		if c := s.world.Get(s.player, component.CMana); needMP && c != nil {
			if mp := c.(component.Mana); mp.Current >= mp.Max {
				s.say("MP restored")
				needMP = false
			}
		}
	}
	s.Describe(true)
}

// FindTile returns the nearest explored tile of the given kind that the
// player can walk to, excluding the player's own cell. Ties go to the first
// in row-major order. NoPoint when none is known.
func (s *Session) FindTile(kind gamemap.TileKind) gamemap.Point {
	field := system.BuildDistanceField(s.gmap, system.Passable, s.PlayerPos(), system.NoExclusions)
	closest := gamemap.NoPoint
	best := 0
	for y := 0; y < s.gmap.Height; y++ {
		for x := 0; x < s.gmap.Width; x++ {
			if s.gmap.Get(x, y) != kind || !s.gmap.Explored.Get(x, y) {
				continue
			}
			g := field.At(x, y)
			if g <= system.TargetGen {
				continue
			}
			if closest == gamemap.NoPoint || g < best {
				closest, best = gamemap.Point{X: x, Y: y}, g
			}
		}
	}
	return closest
}

// GoTo walks to the nearest known location of the given kind, one turn per
// step, stopping early if an enemy comes into view.
func (s *Session) GoTo(loc Location) {
	if !s.Safe() {
		s.say("Monsters nearby.")
		return
	}
	dst := s.FindTile(loc.Kind)
	if dst == gamemap.NoPoint {
		s.say("Couldn't find location - try exploring first.")
		return
	}
	p := s.PlayerPos()
	s.say("Targeting %s %s", loc.Name, narrate.Where(p, dst))

	path := system.FindPath(s.gmap, system.Passable, p, dst, system.NoExclusions)
	if len(path) == 0 {
		s.say("No path.")
		return
	}
	for _, step := range path {
		if !s.Safe() {
			s.say("Monsters nearby.")
			s.Describe(true)
			return
		}
		if !s.autoMove(step) {
			if !s.over {
				s.Describe(true)
			}
			return
		}
	}
	s.say("Arrived at %s.", loc.Name)
	s.Describe(true)
}

// OnStairs reports whether the player stands on a tile of the given kind.
func (s *Session) OnStairs(kind gamemap.TileKind) bool {
	return s.gmap.At(s.PlayerPos()) == kind
}

// Ascend climbs the up stairs. On level 1 the stairs lead out of the
// dungeon; callers confirm that with the player first.
func (s *Session) Ascend() {
	if !s.OnStairs(gamemap.TileStairsUp) {
		s.say("There is no way up here.")
		return
	}
	if s.level == 1 {
		s.Leave()
		return
	}
	s.say("You ascend up a maze of stairs...")
	s.changeLevel(s.level-1, true)
}

// Descend takes the down stairs to a fresh level.
func (s *Session) Descend() {
	if !s.OnStairs(gamemap.TileStairsDown) {
		s.say("There is no way down here.")
		return
	}
	s.say("You descend down a maze of stairs...")
	s.changeLevel(s.level+1, false)
}

// Leave exits the dungeon and ends the session.
func (s *Session) Leave() {
	s.say("You leave the dungeon.")
	s.finish(OutcomeLeft)
}

func (s *Session) changeLevel(level int, ascending bool) {
	s.log.WithFields(logrus.Fields{"from": s.level, "to": level}).Info("level transition")
	s.level = level
	s.generate(ascending)
	s.Describe(true)
}
