package system

import (
	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/ecs/component"
)

// TTLSystem destroys entities whose remaining lifetime has elapsed.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DT()
	ecs.ForEach(w, component.TTLKind, func(e ecs.Entity, ttl *component.TTL) {
		ttl.Remaining -= dt
		if ttl.Remaining <= 0 {
			ecs.DestroyEntity(w, e)
		}
	})
}
