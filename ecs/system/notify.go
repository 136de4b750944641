package system

import (
	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/notify"
)

// NotifySystem drains the world event queue at the end of each tick and fans
// events out to the external collaborators. Runs last so collaborators see a
// consistent post-tick world.
type NotifySystem struct {
	ports notify.Ports
}

func NewNotifySystem(ports notify.Ports) *NotifySystem {
	return &NotifySystem{ports: ports}
}

func (s *NotifySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		switch evt.Type {
		case ecs.EventStateChanged:
			if d, ok := evt.Data.(ecs.StateChangedEvent); ok {
				s.ports.StateChanged(uint64(d.Actor), d.Kind, d.State)
			}
		case ecs.EventAudioCue:
			if d, ok := evt.Data.(ecs.AudioCueEvent); ok {
				s.ports.Play(d.Name)
			}
		case ecs.EventDeath:
			if d, ok := evt.Data.(ecs.DeathEvent); ok {
				switch d.Kind {
				case "player":
					s.ports.PlayerDied()
				case "boss":
					s.ports.BossDied()
				}
			}
		}
	}
}
