package system

import (
	"testing"

	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/ecs/component"
	"github.com/milk9111/riptide/ecs/entity"
	"github.com/milk9111/riptide/prefabs"
)

func testTentacleSpec() *prefabs.TentacleSpec {
	return &prefabs.TentacleSpec{
		Name:   "tentacle",
		Sprite: prefabs.SpriteSpec{Width: 24, Height: 64, Color: "#ffffff"},
		Tuning: component.TentacleTuning{
			FrameCount:        18,
			FrameRate:         12,
			ActivationFrame:   10,
			DeactivationFrame: 11,
			ScaleFrom:         0.4,
			ScaleTo:           1,
			Damage:            2,
			KnockbackX:        160,
			KnockbackY:        220,
			LingerTime:        0,
			Width:             24,
			Height:            64,
		},
	}
}

// At 12 frames per second and a 60Hz tick, a frame lands every 5 ticks.
// Activation frame 10 and deactivation frame 11 make the hazard dangerous
// during ticks 50 through 59, retract at tick 60, and finish at frame 18.
func TestTentacleActivationWindow(t *testing.T) {
	w := ecs.NewWorld(testDT)
	tentacles := NewTentacleSystem()

	e, err := entity.NewTentacle(w, testTentacleSpec(), 100, 300)
	if err != nil {
		t.Fatalf("new tentacle: %v", err)
	}

	stateAt := func(tick int) component.TentacleState {
		tn, ok := ecs.Get(w, e, component.TentacleKind)
		if !ok {
			t.Fatalf("tentacle missing at tick %d", tick)
		}
		return tn.State
	}

	tick := 0
	run := func(until int) {
		for ; tick < until; tick++ {
			tentacles.Update(w)
		}
	}

	run(49)
	if got := stateAt(tick); got != component.TentacleWarmingUp {
		t.Fatalf("tick 49: expected warming up, got %s", got)
	}
	run(50)
	if got := stateAt(tick); got != component.TentacleActive {
		t.Fatalf("tick 50: expected active, got %s", got)
	}
	run(59)
	if got := stateAt(tick); got != component.TentacleActive {
		t.Fatalf("tick 59: expected still active, got %s", got)
	}
	run(60)
	if got := stateAt(tick); got != component.TentacleRetracting {
		t.Fatalf("tick 60: expected retracting, got %s", got)
	}

	run(120)
	if ecs.IsAlive(w, e) {
		t.Fatalf("expected tentacle destroyed after its last frame")
	}
}

func TestTentacleScaleGrowsWhileActive(t *testing.T) {
	w := ecs.NewWorld(testDT)
	tentacles := NewTentacleSystem()

	e, err := entity.NewTentacle(w, testTentacleSpec(), 100, 300)
	if err != nil {
		t.Fatalf("new tentacle: %v", err)
	}

	for i := 0; i < 52; i++ {
		tentacles.Update(w)
	}
	tn, _ := ecs.Get(w, e, component.TentacleKind)
	early := tn.Scale
	for i := 0; i < 7; i++ {
		tentacles.Update(w)
	}
	if tn.Scale <= early {
		t.Fatalf("expected scale to grow across the active window, %f -> %f", early, tn.Scale)
	}
	sp, _ := ecs.Get(w, e, component.SpriteKind)
	if sp.ScaleY != tn.Scale {
		t.Fatalf("expected sprite scale to follow, got %f want %f", sp.ScaleY, tn.Scale)
	}
}

func TestTentacleBadFrameWindowSelfDestructs(t *testing.T) {
	w := ecs.NewWorld(testDT)
	tentacles := NewTentacleSystem()

	spec := testTentacleSpec()
	spec.Tuning.DeactivationFrame = spec.Tuning.FrameCount

	e, err := entity.NewTentacle(w, spec, 100, 300)
	if err != nil {
		t.Fatalf("new tentacle: %v", err)
	}

	tentacles.Update(w)
	if ecs.IsAlive(w, e) {
		t.Fatalf("expected out-of-range frame window to destroy the instance")
	}
}

func TestTentacleHitsPlayerOnce(t *testing.T) {
	h := newPlayerHarness(t)
	tentacles := NewTentacleSystem()
	h.steps(5, component.Input{})

	e, err := entity.NewTentacle(h.w, testTentacleSpec(), 100, groundTop)
	if err != nil {
		t.Fatalf("new tentacle: %v", err)
	}

	for i := 0; i < 70; i++ {
		h.step(component.Input{})
		tentacles.Update(h.w)
	}

	if got := h.health(t); got != 8 {
		t.Fatalf("expected exactly one hit for 2 damage, health %f", got)
	}
	if tn, ok := ecs.Get(h.w, e, component.TentacleKind); ok && !tn.HitDone {
		t.Fatalf("expected the hit latch to be set")
	}
}
