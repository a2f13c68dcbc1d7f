package system

import (
	"textrogue/internal/component"
	"textrogue/internal/ecs"
)

// AttackResult holds the outcome of one melee attack.
type AttackResult struct {
	Attacker, Defender ecs.EntityID
	Damage             int
	Killed             bool
	XPGained           int
	LevelsGained       int
}

// MeleeDamage is the attacker's strength less a quarter of the defender's.
func MeleeDamage(attackerStr, defenderStr int) int {
	return attackerStr - defenderStr/4
}

// Attack resolves one melee attack from attacker against defender.
// A non-positive damage value leaves the defender untouched. If the
// defender's HP drops to 0 or below it is marked dead, stops blocking,
// and the attacker earns the defender's level in experience.
func Attack(w *ecs.World, attacker, defender ecs.EntityID) AttackResult {
	result := AttackResult{Attacker: attacker, Defender: defender}

	atkComp := w.Get(attacker, component.CStats)
	defComp := w.Get(defender, component.CStats)
	hpComp := w.Get(defender, component.CHealth)
	if atkComp == nil || defComp == nil || hpComp == nil {
		return result
	}
	atk := atkComp.(component.Stats)
	def := defComp.(component.Stats)
	hp := hpComp.(component.Health)

	result.Damage = MeleeDamage(atk.Strength, def.Strength)
	if result.Damage > 0 {
		hp.Current -= result.Damage
		w.Add(defender, hp)
	}

	if hp.Current <= 0 {
		result.Killed = true
		w.Remove(defender, component.CTagBlocking)
		w.Add(defender, component.TagDead{})
		result.XPGained = def.Level
		result.LevelsGained = GainXP(w, attacker, def.Level)
	}
	return result
}

// GainXP adds experience to id and applies any level-ups it earns.
// Each level doubles the threshold, raises max HP by 2 with a full heal,
// and adds 1 strength. Returns the number of levels gained.
func GainXP(w *ecs.World, id ecs.EntityID, amount int) int {
	c := w.Get(id, component.CStats)
	if c == nil {
		return 0
	}
	st := c.(component.Stats)
	st.XP += amount

	levels := 0
	for st.NextXP > 0 && st.XP >= st.NextXP {
		st.Level++
		st.NextXP *= 2
		st.Strength++
		levels++
		if hc := w.Get(id, component.CHealth); hc != nil {
			hp := hc.(component.Health)
			hp.Max += 2
			hp.Current = hp.Max
			w.Add(id, hp)
		}
	}
	w.Add(id, st)
	return levels
}
