package system

import (
	"github.com/milk9111/riptide/common"
	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/ecs/component"
)

// PhysicsSystem steps the Chipmunk space and mirrors body positions back
// into transforms. State machines write velocities before this runs.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil || w.Physics() == nil {
		return
	}
	w.Physics().Step(w.DT())

	ecs.ForEach2(w, component.PhysicsBodyKind, component.TransformKind, func(_ ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil {
			return
		}
		pos := pb.Body.Position()
		t.Position = common.Vec2{X: pos.X, Y: pos.Y}
	})
}
