package system

import (
	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/ecs/component"
)

// TimerSystem ticks every timer bank and expires timed invulnerability.
// It runs before the state machines so a timer set this tick is not
// consumed until the next one.
type TimerSystem struct{}

func NewTimerSystem() *TimerSystem {
	return &TimerSystem{}
}

func (s *TimerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DT()

	ecs.ForEach(w, component.TimersKind, func(_ ecs.Entity, t *component.Timers) {
		t.Tick(dt)
	})

	ecs.ForEach(w, component.InvulnerableKind, func(e ecs.Entity, inv *component.Invulnerable) {
		if inv.Indefinite() {
			return
		}
		inv.Duration -= dt
		if inv.Duration <= 0 {
			ecs.Remove(w, e, component.InvulnerableKind)
		}
	})
}
