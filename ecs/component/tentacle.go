package component

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/milk9111/riptide/ecs"
)

type TentacleState int

const (
	TentacleWarmingUp TentacleState = iota
	TentacleActive
	TentacleRetracting
	TentacleDone
)

func (s TentacleState) String() string {
	switch s {
	case TentacleWarmingUp:
		return "warming_up"
	case TentacleActive:
		return "active"
	case TentacleRetracting:
		return "retracting"
	case TentacleDone:
		return "done"
	}
	return "unknown"
}

// TentacleTuning is loaded from the tentacle prefab.
type TentacleTuning struct {
	FrameCount        int     `yaml:"frame_count"`
	FrameRate         float64 `yaml:"frame_rate"`
	ActivationFrame   int     `yaml:"activation_frame"`
	DeactivationFrame int     `yaml:"deactivation_frame"`

	ScaleFrom float64 `yaml:"scale_from"`
	ScaleTo   float64 `yaml:"scale_to"`

	Damage     float64 `yaml:"damage"`
	KnockbackX float64 `yaml:"knockback_x"`
	KnockbackY float64 `yaml:"knockback_y"`
	LingerTime float64 `yaml:"linger_time"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Tentacle is a telegraphed hazard's frame-driven lifecycle state. Frames
// advance on an accumulator that adds back one interval per step instead of
// resetting, so long activations do not drift.
type Tentacle struct {
	Tuning TentacleTuning

	State      TentacleState
	Frame      int
	FrameTimer float64
	HitDone    bool
	Linger     float64
	Scale      float64

	scaleTween *gween.Tween
}

var TentacleKind = ecs.NewComponentKind[Tentacle]()

// StartScaleTween begins interpolating Scale across the active window.
func (t *Tentacle) StartScaleTween(duration float64) {
	if t == nil || duration <= 0 {
		return
	}
	t.scaleTween = gween.New(float32(t.Tuning.ScaleFrom), float32(t.Tuning.ScaleTo), float32(duration), ease.Linear)
	t.Scale = t.Tuning.ScaleFrom
}

// TickScaleTween advances the active-window scale interpolation.
func (t *Tentacle) TickScaleTween(dt float64) {
	if t == nil || t.scaleTween == nil {
		return
	}
	v, done := t.scaleTween.Update(float32(dt))
	t.Scale = float64(v)
	if done {
		t.scaleTween = nil
	}
}
