package system

import (
	"log"
	"math"

	"github.com/milk9111/riptide/common"
	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/ecs/component"
)

// TentacleSystem advances telegraphed hazards through their warm-up, active,
// and retract phases. Frames are driven by an accumulator that adds back one
// interval per step, so activation windows stay frame-exact over long runs.
type TentacleSystem struct{}

func NewTentacleSystem() *TentacleSystem {
	return &TentacleSystem{}
}

func (s *TentacleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.TentacleKind, component.TransformKind, func(e ecs.Entity, tn *component.Tentacle, t *component.Transform) {
		s.tick(w, e, tn, t)
	})
}

func (s *TentacleSystem) tick(w *ecs.World, e ecs.Entity, tn *component.Tentacle, t *component.Transform) {
	tun := tn.Tuning
	if tun.ActivationFrame >= tun.FrameCount || tun.DeactivationFrame >= tun.FrameCount {
		log.Printf("tentacle %s: frame window [%d,%d] out of range for %d frames", e, tun.ActivationFrame, tun.DeactivationFrame, tun.FrameCount)
		ecs.DestroyEntity(w, e)
		return
	}
	dt := w.DT()

	if tn.State == component.TentacleActive {
		tn.TickScaleTween(dt)
		if sp, ok := ecs.Get(w, e, component.SpriteKind); ok {
			sp.ScaleY = tn.Scale
		}
		s.touchPlayer(w, e, tn, t)
	}

	// hold on the last active frame for the linger duration
	if tn.State == component.TentacleRetracting && tn.Linger > 0 {
		tn.Linger -= dt
		if tn.Linger > 0 {
			return
		}
	}

	interval := 1 / tun.FrameRate
	tn.FrameTimer -= dt
	for tn.FrameTimer <= 0 {
		tn.FrameTimer += interval
		if s.step(w, e, tn) {
			return
		}
	}
}

// step advances one frame. Returns true when the instance destroyed itself.
func (s *TentacleSystem) step(w *ecs.World, e ecs.Entity, tn *component.Tentacle) bool {
	tun := tn.Tuning
	tn.Frame++

	switch tn.State {
	case component.TentacleWarmingUp:
		if tn.Frame >= tun.ActivationFrame {
			tn.HitDone = false
			activeFrames := tun.DeactivationFrame - tun.ActivationFrame + 1
			tn.StartScaleTween(float64(activeFrames) / tun.FrameRate)
			setTentacleState(w, e, tn, component.TentacleActive)
		}
	case component.TentacleActive:
		if tn.Frame > tun.DeactivationFrame {
			tn.Linger = tun.LingerTime
			setTentacleState(w, e, tn, component.TentacleRetracting)
		}
	case component.TentacleRetracting:
		if tn.Frame >= tun.FrameCount {
			setTentacleState(w, e, tn, component.TentacleDone)
			ecs.DestroyEntity(w, e)
			return true
		}
	}
	return false
}

// touchPlayer applies at most one damage-and-knockback per activation.
func (s *TentacleSystem) touchPlayer(w *ecs.World, e ecs.Entity, tn *component.Tentacle, t *component.Transform) {
	if tn.HitDone {
		return
	}
	player, ok := ecs.First(w, component.PlayerKind)
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformKind)
	if !ok {
		return
	}
	playerBounds, ok := actorBounds(w, player, pt.Position)
	if !ok {
		return
	}

	tun := tn.Tuning
	height := tun.Height * math.Max(tn.Scale, 0)
	hazard := common.Rect{
		X:      t.Position.X - tun.Width/2,
		Y:      t.Position.Y + tun.Height/2 - height,
		Width:  tun.Width,
		Height: height,
	}
	if !hazard.Intersects(playerBounds) {
		return
	}
	if ecs.Has(w, player, component.InvulnerableKind) {
		return
	}

	side := 1.0
	if pt.Position.X < t.Position.X {
		side = -1
	}
	kb := common.Vec2{X: side * tun.KnockbackX, Y: tun.KnockbackY}
	ApplyPlayerDamage(w, player, tun.Damage, &kb)
	tn.HitDone = true
	w.Events().Push(ecs.Event{Type: ecs.EventHit, Data: ecs.HitEvent{Attacker: e, Target: player, Damage: tun.Damage}})
}

func setTentacleState(w *ecs.World, e ecs.Entity, tn *component.Tentacle, next component.TentacleState) {
	if tn.State == next {
		return
	}
	tn.State = next
	w.Events().Push(ecs.Event{Type: ecs.EventStateChanged, Data: ecs.StateChangedEvent{
		Actor: e, Kind: "tentacle", State: next.String(),
	}})
}
