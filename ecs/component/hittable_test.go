package component

import (
	"testing"

	"github.com/milk9111/riptide/common"
)

func TestHittableHealthFloorsAtZero(t *testing.T) {
	h := &Hittable{MaxHealth: 10, Health: 10}
	h.TakeHit(15, common.Vec2{})
	if h.Health != 0 {
		t.Fatalf("expected health clamped to 0, got %f", h.Health)
	}
	if !h.Dead() {
		t.Fatalf("expected dead after lethal hit")
	}
}

func TestHittableDeathFiresOnce(t *testing.T) {
	deaths := 0
	h := &Hittable{MaxHealth: 5, Health: 5, OnDeath: func() { deaths++ }}

	h.TakeHit(5, common.Vec2{})
	h.TakeHit(5, common.Vec2{})
	h.TakeHit(100, common.Vec2{})
	if deaths != 1 {
		t.Fatalf("expected OnDeath exactly once, got %d", deaths)
	}
}

func TestHittableResetRearmsDeath(t *testing.T) {
	deaths := 0
	h := &Hittable{MaxHealth: 5, Health: 5, OnDeath: func() { deaths++ }}

	h.TakeHit(5, common.Vec2{})
	h.ResetHealth()
	if h.Health != 5 || h.Dead() {
		t.Fatalf("expected full health after reset, got %f dead=%v", h.Health, h.Dead())
	}
	h.TakeHit(5, common.Vec2{})
	if deaths != 2 {
		t.Fatalf("expected OnDeath to fire again after reset, got %d", deaths)
	}
}

func TestHittableHealClampsAtMax(t *testing.T) {
	h := &Hittable{MaxHealth: 10, Health: 10}
	h.TakeHit(4, common.Vec2{})
	h.Heal(100)
	if h.Health != 10 {
		t.Fatalf("expected heal clamped at max, got %f", h.Health)
	}
}

func TestHittableUntrackedHealthNeverDies(t *testing.T) {
	hits := 0
	h := &Hittable{OnHit: func(float64, common.Vec2) { hits++ }, OnDeath: func() { t.Fatal("untracked target must not die") }}

	for i := 0; i < 10; i++ {
		h.TakeHit(100, common.Vec2{})
	}
	if hits != 10 {
		t.Fatalf("expected OnHit every hit, got %d", hits)
	}
	if h.Dead() {
		t.Fatalf("untracked target reported dead")
	}
}

func TestHittableKillForcesDeath(t *testing.T) {
	deaths := 0
	h := &Hittable{MaxHealth: 10, Health: 10, OnDeath: func() { deaths++ }}
	h.Kill()
	if !h.Dead() || h.Health != 0 || deaths != 1 {
		t.Fatalf("expected forced death, health=%f deaths=%d", h.Health, deaths)
	}
}
