package system

import (
	"github.com/milk9111/riptide/common"
	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/ecs/component"
	"github.com/milk9111/riptide/notify"
)

// Downward is the canonical attack direction that grants a pogo on hit.
// Classification is exact equality, matching the aim snapping in the player
// controller.
var Downward = common.Vec2{X: 0, Y: 1}

const volumeKnockback = 120

// SpawnHitVolume creates an owner-attributed attack region, immediately
// active with an empty visited set. Non-positive durations are rejected.
func SpawnHitVolume(w *ecs.World, owner ecs.Entity, damage float64, direction common.Vec2, bounds common.Rect, activeDuration, linger float64) (ecs.Entity, bool) {
	if w == nil || activeDuration <= 0 {
		return 0, false
	}
	e := ecs.CreateEntity(w)
	hv := &component.HurtVolume{
		Owner:          owner,
		Damage:         damage,
		Direction:      direction,
		Bounds:         bounds,
		ActiveDuration: activeDuration,
		Linger:         linger,
		Active:         true,
	}
	if err := ecs.Add(w, e, component.HurtVolumeKind, hv); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, false
	}
	return e, true
}

// CombatSystem ages hit volumes, resolves overlaps against hittable targets,
// and reports hits, misses, and pogo grants.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DT()
	ecs.ForEach(w, component.HurtVolumeKind, func(e ecs.Entity, hv *component.HurtVolume) {
		if !hv.Active {
			return
		}
		hv.Age += dt
		if hv.Age >= hv.ActiveDuration {
			s.expire(w, e, hv)
			return
		}
		s.resolveOverlaps(w, e, hv)
	})
}

func (s *CombatSystem) expire(w *ecs.World, e ecs.Entity, hv *component.HurtVolume) {
	hv.Active = false
	if !hv.Confirmed {
		w.Events().Push(ecs.Event{Type: ecs.EventAudioCue, Data: ecs.AudioCueEvent{Actor: hv.Owner, Name: notify.CueAttackMiss}})
	}
	// keep the spent volume around briefly for external rendering
	ecs.Add(w, e, component.TTLKind, &component.TTL{Remaining: hv.Linger})
}

func (s *CombatSystem) resolveOverlaps(w *ecs.World, volume ecs.Entity, hv *component.HurtVolume) {
	ownerTransform, ok := ecs.Get(w, hv.Owner, component.TransformKind)
	if !ok {
		return
	}
	area := hv.WorldBounds(ownerTransform.Position)

	ecs.ForEach2(w, component.HittableKind, component.TransformKind, func(target ecs.Entity, hit *component.Hittable, t *component.Transform) {
		if target == hv.Owner || target == volume {
			return
		}
		if _, seen := hv.Visited[target]; seen {
			return
		}
		bounds, ok := actorBounds(w, target, t.Position)
		if !ok || !area.Intersects(bounds) {
			return
		}
		if ecs.Has(w, target, component.InvulnerableKind) {
			return
		}

		knockback := common.Vec2{X: hv.Direction.X * volumeKnockback, Y: hv.Direction.Y * volumeKnockback}
		dispatchDamage(w, target, hit, hv.Damage, knockback)

		hv.Visit(target)
		w.Events().Push(ecs.Event{Type: ecs.EventHit, Data: ecs.HitEvent{Attacker: hv.Owner, Target: target, Damage: hv.Damage}})
		w.Events().Push(ecs.Event{Type: ecs.EventAudioCue, Data: ecs.AudioCueEvent{Actor: hv.Owner, Name: notify.CueAttackHit}})

		if hv.Direction == Downward && ecs.Has(w, hv.Owner, component.PlayerKind) {
			ReportDownwardHit(w, hv.Owner, hit.PogoStrength)
		}
	})
}

// dispatchDamage routes a confirmed hit through the target's own damage
// intake so state-machine side effects (dash cancel, shield counting) happen
// in the same tick.
func dispatchDamage(w *ecs.World, target ecs.Entity, hit *component.Hittable, damage float64, knockback common.Vec2) {
	switch {
	case ecs.Has(w, target, component.PlayerKind):
		ApplyPlayerDamage(w, target, damage, &knockback)
	case ecs.Has(w, target, component.BossKind):
		ApplyBossDamage(w, target, damage)
	default:
		hit.TakeHit(damage, knockback)
	}
}

// actorBounds resolves a target's world-space rectangle from its physics
// body, falling back to its sprite.
func actorBounds(w *ecs.World, e ecs.Entity, center common.Vec2) (common.Rect, bool) {
	var width, height float64
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyKind); ok {
		width, height = pb.Width, pb.Height
	} else if sp, ok := ecs.Get(w, e, component.SpriteKind); ok {
		width, height = sp.Width, sp.Height
	}
	if width <= 0 || height <= 0 {
		return common.Rect{}, false
	}
	return common.Rect{
		X:      center.X - width/2,
		Y:      center.Y - height/2,
		Width:  width,
		Height: height,
	}, true
}
