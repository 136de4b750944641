package component

import (
	"github.com/milk9111/riptide/common"
	"github.com/milk9111/riptide/ecs"
)

// Hittable is a damageable target. Health tracking is disabled when
// MaxHealth <= 0: the target still reacts to every hit but cannot die.
type Hittable struct {
	MaxHealth float64
	Health    float64

	// PogoStrength is granted to an attacker whose downward attack connects.
	PogoStrength float64
	// HitInvulnTime is the invulnerability window started after each hit.
	HitInvulnTime float64

	OnHit   func(damage float64, knockback common.Vec2)
	OnDeath func()

	died bool
}

var HittableKind = ecs.NewComponentKind[Hittable]()

// TakeHit applies damage and fires OnHit. Returns true when this hit killed
// the target; OnDeath fires at most once until ResetHealth.
func (h *Hittable) TakeHit(damage float64, knockback common.Vec2) bool {
	if h == nil || h.died {
		return false
	}
	if h.OnHit != nil {
		h.OnHit(damage, knockback)
	}
	if h.MaxHealth <= 0 {
		return false
	}
	h.Health -= damage
	if h.Health > 0 {
		return false
	}
	h.Health = 0
	h.died = true
	if h.OnDeath != nil {
		h.OnDeath()
	}
	return true
}

// Heal restores health up to MaxHealth. No-op for dead or untracked targets.
func (h *Hittable) Heal(amount float64) {
	if h == nil || h.MaxHealth <= 0 || h.died || amount <= 0 {
		return
	}
	h.Health += amount
	if h.Health > h.MaxHealth {
		h.Health = h.MaxHealth
	}
}

// Kill forces death regardless of remaining health. Used by the fall
// boundary check.
func (h *Hittable) Kill() {
	if h == nil || h.MaxHealth <= 0 || h.died {
		return
	}
	h.Health = 0
	h.died = true
	if h.OnDeath != nil {
		h.OnDeath()
	}
}

// Dead reports whether health has crossed zero.
func (h *Hittable) Dead() bool {
	return h != nil && h.died
}

// ResetHealth restores full health and re-arms OnDeath.
func (h *Hittable) ResetHealth() {
	if h == nil {
		return
	}
	h.Health = h.MaxHealth
	h.died = false
}
