package entity

import (
	"errors"
	"image/color"

	"github.com/milk9111/riptide/common"
	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/ecs/component"
	"github.com/milk9111/riptide/prefabs"
)

// NewBoss builds the boss actor at pos from its prefab. The boss hovers
// kinematically and carries no physics body.
func NewBoss(w *ecs.World, spec *prefabs.BossSpec, pos common.Vec2) (ecs.Entity, error) {
	if w == nil || spec == nil {
		return 0, errors.New("entity: nil world or boss spec")
	}

	e := ecs.CreateEntity(w)
	ecs.Add(w, e, component.TransformKind, &component.Transform{Position: pos, Facing: -1})
	ecs.Add(w, e, component.TimersKind, &component.Timers{})
	ecs.Add(w, e, component.BossTagKind, &component.BossTag{})
	ecs.Add(w, e, component.BossKind, &component.Boss{
		Tuning: spec.Tuning,
		State:  component.BossIdle,
		HomeY:  pos.Y,
	})
	ecs.Add(w, e, component.HittableKind, &component.Hittable{
		MaxHealth:     spec.Tuning.MaxHealth,
		Health:        spec.Tuning.MaxHealth,
		PogoStrength:  spec.Tuning.PogoStrength,
		HitInvulnTime: spec.Tuning.HitInvulnTime,
	})
	ecs.Add(w, e, component.SpriteKind, &component.Sprite{
		Width:  spec.Sprite.Width,
		Height: spec.Sprite.Height,
		Color:  prefabs.ParseColor(spec.Sprite.Color),
	})
	return e, nil
}

// NewShield builds the translucent shield placeholder that tracks the boss.
func NewShield(w *ecs.World, pos common.Vec2) (ecs.Entity, error) {
	if w == nil {
		return 0, errors.New("entity: nil world")
	}
	e := ecs.CreateEntity(w)
	ecs.Add(w, e, component.TransformKind, &component.Transform{Position: pos})
	ecs.Add(w, e, component.SpriteKind, &component.Sprite{
		Width:  72,
		Height: 72,
		Color:  color.NRGBA{R: 0x40, G: 0xc4, B: 0xff, A: 0x50},
	})
	return e, nil
}

// NewExplosion builds a short-lived explosion placeholder.
func NewExplosion(w *ecs.World, pos common.Vec2) (ecs.Entity, error) {
	if w == nil {
		return 0, errors.New("entity: nil world")
	}
	e := ecs.CreateEntity(w)
	ecs.Add(w, e, component.TransformKind, &component.Transform{Position: pos})
	ecs.Add(w, e, component.SpriteKind, &component.Sprite{
		Width:  32,
		Height: 32,
		Color:  color.NRGBA{R: 0xff, G: 0xab, B: 0x40, A: 0xd0},
	})
	ecs.Add(w, e, component.TTLKind, &component.TTL{Remaining: 0.3})
	return e, nil
}
