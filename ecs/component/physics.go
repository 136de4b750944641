package component

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/riptide/ecs"
)

// PhysicsBody links an entity to its Chipmunk body and shape.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	Width  float64
	Height float64
}

var PhysicsBodyKind = ecs.NewComponentKind[PhysicsBody]()

// Velocity returns the body's velocity, zero if the body is missing.
func (pb *PhysicsBody) Velocity() (float64, float64) {
	if pb == nil || pb.Body == nil {
		return 0, 0
	}
	v := pb.Body.Velocity()
	return v.X, v.Y
}

// SetVelocity writes the body's velocity.
func (pb *PhysicsBody) SetVelocity(vx, vy float64) {
	if pb == nil || pb.Body == nil {
		return
	}
	pb.Body.SetVelocity(vx, vy)
}
