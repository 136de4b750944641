package system

import (
	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/ecs/component"
)

// InputSource provides the control state latched since the last fixed tick.
// The shell samples at the display rate and latches edges so a press shorter
// than one fixed step is still seen exactly once.
type InputSource interface {
	Sample() component.Input
}

// InputSystem copies the latched control state onto input-driven entities.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (s *InputSystem) Update(w *ecs.World) {
	if s == nil || s.source == nil || w == nil {
		return
	}
	sampled := s.source.Sample()
	ecs.ForEach(w, component.InputKind, func(_ ecs.Entity, in *component.Input) {
		*in = sampled
	})
}
