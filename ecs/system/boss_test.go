package system

import (
	"testing"

	"github.com/milk9111/riptide/common"
	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/ecs/component"
	"github.com/milk9111/riptide/ecs/entity"
	"github.com/milk9111/riptide/prefabs"
)

func testBossSpec() *prefabs.BossSpec {
	return &prefabs.BossSpec{
		Name:   "boss",
		Sprite: prefabs.SpriteSpec{Width: 48, Height: 48, Color: "#ffffff"},
		Tuning: component.BossTuning{
			MaxHealth:          12,
			PogoStrength:       300,
			HitInvulnTime:      0,
			DetectRadius:       200,
			HoverAmplitude:     0,
			HoverFrequency:     0,
			HitsPerCycle:       3,
			ShieldDuration:     4 * testDT,
			SpawnInterval:      1,
			ProbeOffsetY:       50,
			ProbeMaxDist:       400,
			ExplosionCount:     2,
			ExplosionInterval:  2 * testDT,
			IntroSequence:      "intro",
			PostShieldSequence: "taunt",
		},
	}
}

type bossHarness struct {
	w      *ecs.World
	boss   ecs.Entity
	player ecs.Entity

	timers *TimerSystem
	bosses *BossSystem
	ttl    *TTLSystem
}

// newBossHarness runs the orchestrator without a dialogue source, so every
// dialogue gate expires immediately.
func newBossHarness(t *testing.T, tentacle *prefabs.TentacleSpec) *bossHarness {
	t.Helper()
	w := ecs.NewWorld(testDT)

	boss, err := entity.NewBoss(w, testBossSpec(), common.Vec2{X: 120, Y: 150})
	if err != nil {
		t.Fatalf("new boss: %v", err)
	}

	player := ecs.CreateEntity(w)
	ecs.Add(w, player, component.PlayerKind, &component.Player{})
	ecs.Add(w, player, component.TransformKind, &component.Transform{Position: common.Vec2{X: 1000, Y: 150}})

	return &bossHarness{
		w:      w,
		boss:   boss,
		player: player,
		timers: NewTimerSystem(),
		bosses: NewBossSystem(nil, tentacle),
		ttl:    NewTTLSystem(),
	}
}

func (h *bossHarness) step() {
	h.timers.Update(h.w)
	h.bosses.Update(h.w)
	h.ttl.Update(h.w)
}

func (h *bossHarness) steps(n int) {
	for i := 0; i < n; i++ {
		h.step()
	}
}

func (h *bossHarness) state(t *testing.T) component.BossState {
	t.Helper()
	b, ok := ecs.Get(h.w, h.boss, component.BossKind)
	if !ok {
		t.Fatalf("boss component missing")
	}
	return b.State
}

func (h *bossHarness) movePlayer(t *testing.T, pos common.Vec2) {
	t.Helper()
	pt, ok := ecs.Get(h.w, h.player, component.TransformKind)
	if !ok {
		t.Fatalf("player transform missing")
	}
	pt.Position = pos
}

// stepToVulnerable walks the harness through detection and the intro gate.
func (h *bossHarness) stepToVulnerable(t *testing.T) {
	t.Helper()
	h.movePlayer(t, common.Vec2{X: 160, Y: 150})
	for i := 0; i < 10 && h.state(t) != component.BossVulnerable; i++ {
		h.step()
	}
	if h.state(t) != component.BossVulnerable {
		t.Fatalf("expected vulnerable, state %s", h.state(t))
	}
}

func TestBossDetectionGatesOnDialogue(t *testing.T) {
	h := newBossHarness(t, nil)

	h.steps(5)
	if h.state(t) != component.BossHovering {
		t.Fatalf("expected hovering while player is far, state %s", h.state(t))
	}

	h.movePlayer(t, common.Vec2{X: 160, Y: 150})
	h.step()
	if h.state(t) != component.BossDialogue {
		t.Fatalf("expected dialogue gate on detection, state %s", h.state(t))
	}
	h.step()
	if h.state(t) != component.BossVulnerable {
		t.Fatalf("expected vulnerable after gate, state %s", h.state(t))
	}
}

func TestBossShieldCycle(t *testing.T) {
	h := newBossHarness(t, nil)
	h.stepToVulnerable(t)

	b, _ := ecs.Get(h.w, h.boss, component.BossKind)
	hit, _ := ecs.Get(h.w, h.boss, component.HittableKind)

	for i := 0; i < b.Tuning.HitsPerCycle; i++ {
		ApplyBossDamage(h.w, h.boss, 1)
	}

	if b.State != component.BossAttacking {
		t.Fatalf("expected attacking after %d hits, state %s", b.Tuning.HitsPerCycle, b.State)
	}
	if b.HitCount != 0 {
		t.Fatalf("expected hit count reset, got %d", b.HitCount)
	}
	if !ecs.Has(h.w, h.boss, component.InvulnerableKind) {
		t.Fatalf("expected shield invulnerability")
	}
	if !ecs.IsAlive(h.w, b.ShieldEntity) {
		t.Fatalf("expected a live shield entity")
	}

	// hits bounce off the shield
	before := hit.Health
	ApplyBossDamage(h.w, h.boss, 1)
	if hit.Health != before {
		t.Fatalf("shielded hit must not land, health %f -> %f", before, hit.Health)
	}

	// shield expiry drops the invulnerability and gates back to vulnerable
	shield := b.ShieldEntity
	for i := 0; i < 10 && h.state(t) != component.BossVulnerable; i++ {
		h.step()
	}
	if h.state(t) != component.BossVulnerable {
		t.Fatalf("expected vulnerable after shield expiry, state %s", h.state(t))
	}
	if ecs.Has(h.w, h.boss, component.InvulnerableKind) {
		t.Fatalf("expected invulnerability removed with the shield")
	}
	if ecs.IsAlive(h.w, shield) {
		t.Fatalf("expected shield entity destroyed")
	}
}

func TestBossHitsOutsideVulnerableDoNotCount(t *testing.T) {
	h := newBossHarness(t, nil)
	h.steps(2)

	b, _ := ecs.Get(h.w, h.boss, component.BossKind)
	hit, _ := ecs.Get(h.w, h.boss, component.HittableKind)

	before := hit.Health
	ApplyBossDamage(h.w, h.boss, 1)
	if hit.Health != before-1 {
		t.Fatalf("expected damage to land, health %f", hit.Health)
	}
	if b.HitCount != 0 {
		t.Fatalf("hits outside the vulnerable window must not count, got %d", b.HitCount)
	}
	if b.State == component.BossShielding || b.State == component.BossAttacking {
		t.Fatalf("hit outside the vulnerable window must not start a cycle, state %s", b.State)
	}
}

func TestBossDeathSequence(t *testing.T) {
	h := newBossHarness(t, nil)
	h.stepToVulnerable(t)

	ApplyBossDamage(h.w, h.boss, 100)
	if h.state(t) != component.BossDeath {
		t.Fatalf("expected death state, got %s", h.state(t))
	}

	h.w.Events().Drain()
	h.steps(7)

	if ecs.IsAlive(h.w, h.boss) {
		t.Fatalf("expected boss destroyed after the explosion run")
	}
	explosions := 0
	ecs.ForEach(h.w, component.TTLKind, func(_ ecs.Entity, _ *component.TTL) {
		explosions++
	})
	if explosions != 2 {
		t.Fatalf("expected 2 explosions, got %d", explosions)
	}
	died := false
	for _, evt := range h.w.Events().Drain() {
		if evt.Type == ecs.EventDeath {
			if d, ok := evt.Data.(ecs.DeathEvent); ok && d.Kind == "boss" {
				died = true
			}
		}
	}
	if !died {
		t.Fatalf("expected boss death event after final explosion")
	}
}

func TestBossSpawnsTentacleUnderPlayer(t *testing.T) {
	h := newBossHarness(t, testTentacleSpec())
	h.w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	h.w.Physics().AddStaticBox(common.Rect{X: 0, Y: 300, Width: 600, Height: 40})
	h.movePlayer(t, common.Vec2{X: 100, Y: 288})

	b, _ := ecs.Get(h.w, h.boss, component.BossKind)
	timers, _ := ecs.Get(h.w, h.boss, component.TimersKind)
	b.State = component.BossAttacking
	timers.Set(component.TimerBossShield, 1)

	h.step()

	found := false
	ecs.ForEach2(h.w, component.TentacleKind, component.TransformKind, func(_ ecs.Entity, tn *component.Tentacle, tt *component.Transform) {
		found = true
		if tt.Position.X != 100 {
			t.Fatalf("expected tentacle at player x, got %f", tt.Position.X)
		}
		if want := 300 - tn.Tuning.Height/2; tt.Position.Y != want {
			t.Fatalf("expected tentacle anchored on the ground at %f, got %f", want, tt.Position.Y)
		}
	})
	if !found {
		t.Fatalf("expected a tentacle spawn")
	}
}

func TestBossProbeMissSkipsSpawn(t *testing.T) {
	h := newBossHarness(t, testTentacleSpec())
	h.w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	// no ground anywhere under the player
	h.movePlayer(t, common.Vec2{X: 100, Y: 288})

	b, _ := ecs.Get(h.w, h.boss, component.BossKind)
	timers, _ := ecs.Get(h.w, h.boss, component.TimersKind)
	b.State = component.BossAttacking
	timers.Set(component.TimerBossShield, 1)

	h.step()

	if _, ok := ecs.First(h.w, component.TentacleKind); ok {
		t.Fatalf("failed probe must skip the spawn")
	}
}
