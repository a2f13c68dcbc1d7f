package system

import (
	"textrogue/internal/component"
	"textrogue/internal/ecs"
)

// DefaultRegenInterval is how many turns pass between regeneration ticks.
const DefaultRegenInterval = 8

// Regenerate gives a living actor 1 HP and 1 MP on turns divisible by
// interval, never above their maximums. It reports what was restored.
func Regenerate(w *ecs.World, id ecs.EntityID, turn, interval int) (hpGained, mpGained bool) {
	if interval <= 0 || turn%interval != 0 || !Alive(w, id) {
		return false, false
	}
	if c := w.Get(id, component.CHealth); c != nil {
		hp := c.(component.Health)
		if hp.Current < hp.Max {
			hp.Current++
			w.Add(id, hp)
			hpGained = true
		}
	}
	if c := w.Get(id, component.CMana); c != nil {
		mp := c.(component.Mana)
		if mp.Current < mp.Max {
			mp.Current++
			w.Add(id, mp)
			mpGained = true
		}
	}
	return hpGained, mpGained
}
