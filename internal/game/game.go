package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"textrogue/assets"
	"textrogue/internal/component"
	"textrogue/internal/ecs"
	"textrogue/internal/factory"
	"textrogue/internal/gamemap"
	"textrogue/internal/generate"
	"textrogue/internal/narrate"
	"textrogue/internal/system"

	"github.com/sirupsen/logrus"
)

// Options configures a session.
type Options struct {
	Width, Height int
	SightRadius   int
	RegenInterval int
	// Seed drives every random choice; 0 picks one from the clock.
	Seed int64
}

// DefaultOptions returns the standard 50x30 game.
func DefaultOptions() Options {
	return Options{
		Width:         50,
		Height:        30,
		SightRadius:   system.DefaultSightRadius,
		RegenInterval: system.DefaultRegenInterval,
	}
}

// Session owns the whole state of one game: the current level, the actor
// registry and the turn counter. All narration goes to out.
type Session struct {
	out  io.Writer
	log  logrus.FieldLogger
	rng  *rand.Rand
	opts Options

	world  *ecs.World
	gmap   *gamemap.GameMap
	player ecs.EntityID
	level  int
	turn   int
	over   bool
	runLog RunLog
}

// New starts a session on level 1 with the player on the entrance.
func New(opts Options, out io.Writer, log logrus.FieldLogger) *Session {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	s := &Session{
		out:    out,
		log:    log.WithField("seed", opts.Seed),
		rng:    rand.New(rand.NewSource(opts.Seed)),
		opts:   opts,
		world:  ecs.NewWorld(),
		level:  1,
		runLog: newRunLog(),
	}
	s.player = factory.NewPlayer(s.world, 0, 0, assets.Player)
	s.generate(false)
	return s
}

// generate replaces the level. Every actor but the player is dropped and
// fresh enemies are spawned; the player arrives on the up stairs when
// descending and on the down stairs when ascending.
func (s *Session) generate(ascending bool) {
	for _, id := range s.world.Entities() {
		if id != s.player {
			s.world.DestroyEntity(id)
		}
	}

	cfg := levelConfig(s.opts, s.rng)
	s.gmap = generate.Generate(cfg)
	arrival := generate.Arrival(s.gmap, ascending)
	s.world.Add(s.player, component.Position{X: arrival.X, Y: arrival.Y})
	spawned := factory.Spawn(s.world, generate.Populate(s.gmap, cfg, ascending))

	for y := 0; y < s.gmap.Height; y++ {
		for x := 0; x < s.gmap.Width; x++ {
			if !system.Passable.Has(s.gmap.Get(x, y)) {
				s.gmap.Explored.Set(x, y, true)
			}
		}
	}
	s.MergeFOV()
	s.turn = 0
	s.runLog.reachedLevel(s.level)

	s.log.WithFields(logrus.Fields{
		"level":   s.level,
		"rooms":   len(s.gmap.Rooms),
		"enemies": len(spawned),
	}).Debug("level generated")
	s.log.Debugf("level %d map:\n%s", s.level, s.gmap)
}

// Map returns the current level.
func (s *Session) Map() *gamemap.GameMap { return s.gmap }

// World returns the actor registry.
func (s *Session) World() *ecs.World { return s.world }

// Player returns the player entity.
func (s *Session) Player() ecs.EntityID { return s.player }

// Level returns the dungeon depth, starting at 1.
func (s *Session) Level() int { return s.level }

// Turn returns the number of world updates on the current level.
func (s *Session) Turn() int { return s.turn }

// Over reports whether the session has ended.
func (s *Session) Over() bool { return s.over }

// PlayerPos returns the player's cell.
func (s *Session) PlayerPos() gamemap.Point {
	return s.world.Get(s.player, component.CPosition).(component.Position).Point()
}

// PlayerDead reports whether the player has no hit points left.
func (s *Session) PlayerDead() bool {
	return s.world.Get(s.player, component.CHealth).(component.Health).Current <= 0
}

func (s *Session) say(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

func (s *Session) name(id ecs.EntityID) string {
	if c := s.world.Get(id, component.CIdentity); c != nil {
		return c.(component.Identity).Name
	}
	return "something"
}

// Update advances the world one turn: every actor in registry order
// regenerates and, unless it is the player, takes its AI turn.
func (s *Session) Update() {
	for _, id := range s.world.Query(component.CPosition) {
		system.Regenerate(s.world, id, s.turn, s.opts.RegenInterval)
		if id == s.player {
			continue
		}
		if atk, ok := system.EnemyTurn(s.world, s.gmap, id, s.player, s.opts.SightRadius, s.rng); ok {
			s.reportAttack(atk)
		}
	}
	s.turn++
	s.runLog.Turns++
}

// reportAttack narrates an attack the player can see and keeps score.
func (s *Session) reportAttack(atk system.AttackResult) {
	attacker, defender := s.name(atk.Attacker), s.name(atk.Defender)
	pp := s.PlayerPos()
	apos := s.world.Get(atk.Attacker, component.CPosition).(component.Position)
	visible := system.Sees(s.gmap, s.opts.SightRadius, pp.X, pp.Y, apos.X, apos.Y)

	if visible {
		s.say("%s attacks %s for %d damage.", attacker, defender, atk.Damage)
	}
	if !atk.Killed {
		return
	}
	if visible {
		s.say("%s dies!", defender)
	}
	switch {
	case atk.Attacker == s.player:
		s.runLog.Kills[defender]++
	case atk.Defender == s.player:
		s.runLog.CauseOfDeath = attacker
	}
	if atk.Attacker == s.player && atk.LevelsGained > 0 {
		st := s.world.Get(s.player, component.CStats).(component.Stats)
		s.say("You reach level %d!", st.Level)
		s.log.WithField("player_level", st.Level).Info("player levelled up")
	}
}

// MergeFOV marks everything the player can see as explored.
func (s *Session) MergeFOV() {
	p := s.PlayerPos()
	s.gmap.Explored.Merge(system.ComputeFOV(s.gmap, s.opts.SightRadius, p.X, p.Y))
}

// Scene snapshots what the player observes.
func (s *Session) Scene(status bool) narrate.Scene {
	scene := narrate.Scene{
		Map:    s.gmap,
		Radius: s.opts.SightRadius,
		At:     s.PlayerPos(),
	}
	if status {
		hp := s.world.Get(s.player, component.CHealth).(component.Health)
		st := narrate.Status{HP: hp.Current, MaxHP: hp.Max}
		if c := s.world.Get(s.player, component.CMana); c != nil {
			mp := c.(component.Mana)
			st.MP, st.MaxMP = mp.Current, mp.Max
		}
		scene.Status = &st
	}
	for _, id := range s.world.Query(component.CPosition, component.CIdentity) {
		if id == s.player {
			continue
		}
		scene.Actors = append(scene.Actors, narrate.Sighting{
			Name: s.name(id),
			At:   s.world.Get(id, component.CPosition).(component.Position).Point(),
			Dead: s.world.Has(id, component.CTagDead),
		})
	}
	return scene
}

// Describe narrates the player's surroundings.
func (s *Session) Describe(status bool) {
	for _, line := range narrate.Describe(s.Scene(status)) {
		s.say("%s", line)
	}
}

// Safe reports whether no living enemy is in the player's view.
func (s *Session) Safe() bool {
	p := s.PlayerPos()
	for _, id := range s.world.Query(component.CPosition) {
		if id == s.player || !system.Alive(s.world, id) {
			continue
		}
		pos := s.world.Get(id, component.CPosition).(component.Position)
		if system.Sees(s.gmap, s.opts.SightRadius, p.X, p.Y, pos.X, pos.Y) {
			return false
		}
	}
	return true
}

// EndTurn runs the world update after a command that consumed a turn.
// It ends the session when the player dies.
func (s *Session) EndTurn() {
	s.Update()
	if s.checkDeath() {
		return
	}
	s.Describe(true)
	s.MergeFOV()
}

// checkDeath prints GAME OVER and ends the session once the player is dead.
func (s *Session) checkDeath() bool {
	if s.over || !s.PlayerDead() {
		return s.over
	}
	s.say("GAME OVER")
	s.log.WithFields(logrus.Fields{"level": s.level, "killed_by": s.runLog.CauseOfDeath}).Info("player died")
	s.finish(OutcomeDied)
	return true
}

// Quit ends the session at the player's request.
func (s *Session) Quit() { s.finish(OutcomeQuit) }

func (s *Session) finish(outcome Outcome) {
	if s.over {
		return
	}
	s.over = true
	s.runLog.Outcome = outcome
	s.log.WithFields(s.runLog.Fields()).Info("session ended")
}
