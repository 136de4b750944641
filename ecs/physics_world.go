package ecs

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/riptide/common"
)

const (
	CategoryGround uint = 1 << iota
	CategoryActor
	CategoryHazard
)

const (
	groundQueryPad  = 2.0
	groundQueryDist = 3.0
)

// ActorFilter collides with everything.
var ActorFilter = cp.NewShapeFilter(cp.NO_GROUP, CategoryActor, cp.ALL_CATEGORIES)

// PhantomFilter collides with terrain only. Applied to a dashing actor so it
// passes through other actors and hazards but still rides the ground.
var PhantomFilter = cp.NewShapeFilter(cp.NO_GROUP, CategoryActor, CategoryGround)

// PhysicsWorld owns the Chipmunk space. Gravity is zero; the actor state
// machines integrate gravity themselves and write velocities directly, the
// space only resolves contact with terrain.
type PhysicsWorld struct {
	space *cp.Space
}

func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	return &PhysicsWorld{space: space}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// AddStaticSegment adds a terrain segment.
func (pw *PhysicsWorld) AddStaticSegment(a, b common.Vec2, radius float64) *cp.Shape {
	if pw == nil || pw.space == nil {
		return nil
	}
	shape := cp.NewSegment(pw.space.StaticBody, cp.Vector{X: a.X, Y: a.Y}, cp.Vector{X: b.X, Y: b.Y}, radius)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, CategoryGround, cp.ALL_CATEGORIES))
	pw.space.AddShape(shape)
	return shape
}

// AddStaticBox adds a solid terrain rectangle. x,y is the top-left corner.
func (pw *PhysicsWorld) AddStaticBox(rect common.Rect) *cp.Shape {
	if pw == nil || pw.space == nil {
		return nil
	}
	bb := cp.BB{L: rect.X, B: rect.Y, R: rect.X + rect.Width, T: rect.Y + rect.Height}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, CategoryGround, cp.ALL_CATEGORIES))
	pw.space.AddShape(shape)
	return shape
}

// AddActorBody creates a dynamic body with a box shape centered at pos.
// Rotation is locked.
func (pw *PhysicsWorld) AddActorBody(pos common.Vec2, width, height float64) (*cp.Body, *cp.Shape) {
	if pw == nil || pw.space == nil {
		return nil, nil
	}
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetFilter(ActorFilter)
	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	return body, shape
}

// RemoveBody detaches a body and its shape from the space.
func (pw *PhysicsWorld) RemoveBody(body *cp.Body, shape *cp.Shape) {
	if pw == nil || pw.space == nil {
		return
	}
	if shape != nil && pw.space.ContainsShape(shape) {
		pw.space.RemoveShape(shape)
	}
	if body != nil && pw.space.ContainsBody(body) {
		pw.space.RemoveBody(body)
	}
}

// Step advances the simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

// Grounded reports whether a body of the given half height is resting on
// terrain, via a short downward segment query from its feet.
func (pw *PhysicsWorld) Grounded(body *cp.Body, halfHeight float64) bool {
	if pw == nil || pw.space == nil || body == nil {
		return false
	}
	pos := body.Position()
	start := cp.Vector{X: pos.X, Y: pos.Y + halfHeight - groundQueryPad}
	end := cp.Vector{X: pos.X, Y: pos.Y + halfHeight + groundQueryDist}
	filter := cp.NewShapeFilter(cp.NO_GROUP, CategoryActor, CategoryGround)
	info := pw.space.SegmentQueryFirst(start, end, 0, filter)
	return info.Shape != nil
}

// ProbeGround casts straight down from (x, yTop) and returns the y of the
// first terrain surface within maxDist.
func (pw *PhysicsWorld) ProbeGround(x, yTop, maxDist float64) (float64, bool) {
	if pw == nil || pw.space == nil {
		return 0, false
	}
	start := cp.Vector{X: x, Y: yTop}
	end := cp.Vector{X: x, Y: yTop + maxDist}
	filter := cp.NewShapeFilter(cp.NO_GROUP, CategoryActor, CategoryGround)
	info := pw.space.SegmentQueryFirst(start, end, 0, filter)
	if info.Shape == nil {
		return 0, false
	}
	return info.Point.Y, true
}
