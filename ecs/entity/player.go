package entity

import (
	"errors"

	"github.com/milk9111/riptide/common"
	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/ecs/component"
	"github.com/milk9111/riptide/prefabs"
)

// NewPlayer builds the player actor at pos from its prefab.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, pos common.Vec2) (ecs.Entity, error) {
	if w == nil || spec == nil {
		return 0, errors.New("entity: nil world or player spec")
	}
	pw := w.Physics()
	if pw == nil {
		return 0, errors.New("entity: player requires a physics world")
	}

	e := ecs.CreateEntity(w)
	body, shape := pw.AddActorBody(pos, spec.Sprite.Width, spec.Sprite.Height)
	if body == nil {
		ecs.DestroyEntity(w, e)
		return 0, errors.New("entity: player body creation failed")
	}

	ecs.Add(w, e, component.TransformKind, &component.Transform{Position: pos, Facing: 1})
	ecs.Add(w, e, component.PhysicsBodyKind, &component.PhysicsBody{
		Body:   body,
		Shape:  shape,
		Width:  spec.Sprite.Width,
		Height: spec.Sprite.Height,
	})
	ecs.Add(w, e, component.InputKind, &component.Input{})
	ecs.Add(w, e, component.TimersKind, &component.Timers{})
	ecs.Add(w, e, component.PlayerTagKind, &component.PlayerTag{})
	ecs.Add(w, e, component.PlayerKind, &component.Player{
		Tuning:      spec.Tuning,
		State:       component.PlayerIdle,
		DashCharges: spec.Tuning.MaxDashCharges,
	})
	ecs.Add(w, e, component.HittableKind, &component.Hittable{
		MaxHealth:     spec.Tuning.MaxHealth,
		Health:        spec.Tuning.MaxHealth,
		HitInvulnTime: spec.Tuning.HitInvulnTime,
	})
	ecs.Add(w, e, component.SpriteKind, &component.Sprite{
		Width:  spec.Sprite.Width,
		Height: spec.Sprite.Height,
		Color:  prefabs.ParseColor(spec.Sprite.Color),
	})
	return e, nil
}
