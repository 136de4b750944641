package entity

import (
	"errors"

	"github.com/milk9111/riptide/common"
	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/ecs/component"
	"github.com/milk9111/riptide/prefabs"
)

// NewTentacle builds a telegraphed hazard with its base anchored at groundY.
func NewTentacle(w *ecs.World, spec *prefabs.TentacleSpec, x, groundY float64) (ecs.Entity, error) {
	if w == nil || spec == nil {
		return 0, errors.New("entity: nil world or tentacle spec")
	}

	e := ecs.CreateEntity(w)
	pos := common.Vec2{X: x, Y: groundY - spec.Tuning.Height/2}
	ecs.Add(w, e, component.TransformKind, &component.Transform{Position: pos})
	ecs.Add(w, e, component.TentacleKind, &component.Tentacle{
		Tuning:     spec.Tuning,
		State:      component.TentacleWarmingUp,
		FrameTimer: 1 / spec.Tuning.FrameRate,
		Scale:      spec.Tuning.ScaleFrom,
	})
	ecs.Add(w, e, component.SpriteKind, &component.Sprite{
		Width:  spec.Sprite.Width,
		Height: spec.Sprite.Height,
		Color:  prefabs.ParseColor(spec.Sprite.Color),
		ScaleY: spec.Tuning.ScaleFrom,
	})
	return e, nil
}
