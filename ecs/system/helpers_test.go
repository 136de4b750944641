package system

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/riptide/common"
	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/ecs/component"
	"github.com/milk9111/riptide/ecs/entity"
	"github.com/milk9111/riptide/prefabs"
)

const (
	testDT    = 1.0 / 60.0
	groundTop = 300.0
	standingY = groundTop - 12
	airborneY = 100.0
)

func toCP(v common.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func testPlayerSpec() *prefabs.PlayerSpec {
	return &prefabs.PlayerSpec{
		Name:   "player",
		Sprite: prefabs.SpriteSpec{Width: 16, Height: 24, Color: "#ffffff"},
		Tuning: component.PlayerTuning{
			MaxSpeed:       180,
			Accel:          1400,
			JumpSpeed:      330,
			Gravity:        980,
			MaxFallSpeed:   420,
			CoyoteTime:     0.12,
			JumpBufferTime: 0.1,
			VarJumpTime:    0.2,
			DashSpeed:      420,
			DashTime:       0.18,
			MaxDashCharges: 1,
			AttackDamage:   1,
			AttackCooldown: 0.3,
			AttackDuration: 0.12,
			AttackLinger:   0.05,
			AttackReach:    20,
			AttackWidth:    28,
			AttackHeight:   20,
			AimDeadzone:    0.5,
			MaxHealth:      10,
			HitInvulnTime:  0.5,
			KnockbackX:     160,
			KnockbackY:     220,
			FallDeathY:     10000,
			ReloadDelay:    1,
		},
	}
}

type playerHarness struct {
	w      *ecs.World
	player ecs.Entity

	timers  *TimerSystem
	players *PlayerSystem
	combat  *CombatSystem
	physics *PhysicsSystem
	ttl     *TTLSystem
}

func newPlayerHarness(t *testing.T) *playerHarness {
	t.Helper()
	w := ecs.NewWorld(testDT)
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	w.Physics().AddStaticBox(common.Rect{X: 0, Y: groundTop, Width: 600, Height: 40})

	player, err := entity.NewPlayer(w, testPlayerSpec(), common.Vec2{X: 100, Y: standingY})
	if err != nil {
		t.Fatalf("new player: %v", err)
	}

	return &playerHarness{
		w:       w,
		player:  player,
		timers:  NewTimerSystem(),
		players: NewPlayerSystem(),
		combat:  NewCombatSystem(),
		physics: NewPhysicsSystem(),
		ttl:     NewTTLSystem(),
	}
}

// step runs one fixed tick with the given latched input.
func (h *playerHarness) step(in component.Input) {
	if inp, ok := ecs.Get(h.w, h.player, component.InputKind); ok {
		*inp = in
	}
	h.timers.Update(h.w)
	h.players.Update(h.w)
	h.combat.Update(h.w)
	h.physics.Update(h.w)
	h.ttl.Update(h.w)
}

func (h *playerHarness) steps(n int, in component.Input) {
	for i := 0; i < n; i++ {
		h.step(in)
	}
}

func (h *playerHarness) state(t *testing.T) component.PlayerState {
	t.Helper()
	p, ok := ecs.Get(h.w, h.player, component.PlayerKind)
	if !ok {
		t.Fatalf("player component missing")
	}
	return p.State
}

func (h *playerHarness) velocity(t *testing.T) (float64, float64) {
	t.Helper()
	pb, ok := ecs.Get(h.w, h.player, component.PhysicsBodyKind)
	if !ok {
		t.Fatalf("physics body missing")
	}
	return pb.Velocity()
}

// teleport moves the player and zeroes its velocity.
func (h *playerHarness) teleport(t *testing.T, pos common.Vec2) {
	t.Helper()
	pb, ok := ecs.Get(h.w, h.player, component.PhysicsBodyKind)
	if !ok || pb.Body == nil {
		t.Fatalf("physics body missing")
	}
	pb.Body.SetPosition(toCP(pos))
	pb.SetVelocity(0, 0)
	if tr, ok := ecs.Get(h.w, h.player, component.TransformKind); ok {
		tr.Position = pos
	}
}

func (h *playerHarness) health(t *testing.T) float64 {
	t.Helper()
	hit, ok := ecs.Get(h.w, h.player, component.HittableKind)
	if !ok {
		t.Fatalf("hittable missing")
	}
	return hit.Health
}
