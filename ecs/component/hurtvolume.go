package component

import (
	"github.com/milk9111/riptide/common"
	"github.com/milk9111/riptide/ecs"
)

// HurtVolume is a transient attack region attributed to an owner. Bounds is
// an offset rectangle relative to the owner's position. Visited guarantees
// at most one confirmed hit per target per activation.
type HurtVolume struct {
	Owner     ecs.Entity
	Damage    float64
	Direction common.Vec2
	Bounds    common.Rect

	Age            float64
	ActiveDuration float64
	Linger         float64
	Active         bool

	Visited   map[ecs.Entity]struct{}
	Confirmed bool
}

var HurtVolumeKind = ecs.NewComponentKind[HurtVolume]()

// WorldBounds resolves the offset rectangle against an owner position.
func (hv *HurtVolume) WorldBounds(owner common.Vec2) common.Rect {
	if hv == nil {
		return common.Rect{}
	}
	return common.Rect{
		X:      owner.X + hv.Bounds.X,
		Y:      owner.Y + hv.Bounds.Y,
		Width:  hv.Bounds.Width,
		Height: hv.Bounds.Height,
	}
}

// Visit records a confirmed hit against a target. Returns false if the
// target was already hit during this activation.
func (hv *HurtVolume) Visit(target ecs.Entity) bool {
	if hv == nil {
		return false
	}
	if hv.Visited == nil {
		hv.Visited = make(map[ecs.Entity]struct{})
	}
	if _, seen := hv.Visited[target]; seen {
		return false
	}
	hv.Visited[target] = struct{}{}
	hv.Confirmed = true
	return true
}

// PogoRequest queues an upward velocity override for the next tick. Set by
// the hit resolver when the owner's downward attack connects.
type PogoRequest struct {
	Strength float64
}

var PogoRequestKind = ecs.NewComponentKind[PogoRequest]()

// TTL destroys the entity once its remaining lifetime elapses.
type TTL struct {
	Remaining float64
}

var TTLKind = ecs.NewComponentKind[TTL]()
