package system

import (
	"math"

	"github.com/milk9111/riptide/common"
	"github.com/milk9111/riptide/dialogue"
	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/ecs/component"
	"github.com/milk9111/riptide/ecs/entity"
	"github.com/milk9111/riptide/notify"
	"github.com/milk9111/riptide/prefabs"
)

type bossContext struct {
	w      *ecs.World
	e      ecs.Entity
	boss   *component.Boss
	t      *component.Transform
	timers *component.Timers
	hit    *component.Hittable
	dt     float64
}

// BossSystem runs the encounter orchestrator: detection, dialogue gating,
// shield/vulnerable cycling, attack spawning, and the death sequence.
type BossSystem struct {
	dialogue *dialogue.Source
	tentacle *prefabs.TentacleSpec
}

func NewBossSystem(source *dialogue.Source, tentacle *prefabs.TentacleSpec) *BossSystem {
	return &BossSystem{dialogue: source, tentacle: tentacle}
}

func (s *BossSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.BossKind, component.TransformKind, func(e ecs.Entity, b *component.Boss, t *component.Transform) {
		if b.Disabled {
			return
		}
		timers, ok := ecs.Get(w, e, component.TimersKind)
		if !ok {
			return
		}
		hit, ok := ecs.Get(w, e, component.HittableKind)
		if !ok {
			return
		}
		ctx := &bossContext{w: w, e: e, boss: b, t: t, timers: timers, hit: hit, dt: w.DT()}
		s.tick(ctx)
	})
}

func (s *BossSystem) tick(ctx *bossContext) {
	b := ctx.boss
	switch b.State {
	case component.BossIdle:
		b.HomeY = ctx.t.Position.Y
		setBossState(ctx, component.BossHovering)
	case component.BossHovering:
		hover(ctx)
		if playerInRange(ctx) {
			s.startDialogue(ctx, b.Tuning.IntroSequence, component.BossVulnerable)
		}
	case component.BossDialogue:
		hover(ctx)
		if !ctx.timers.Active(component.TimerBossDialogue) {
			if s.dialogue != nil {
				s.dialogue.Finish()
			}
			setBossState(ctx, b.NextState)
		}
	case component.BossVulnerable:
		hover(ctx)
	case component.BossShielding, component.BossAttacking:
		hover(ctx)
		s.tickAttacking(ctx)
	case component.BossDeath:
		s.tickDeath(ctx)
	}
}

func hover(ctx *bossContext) {
	b := ctx.boss
	b.HoverPhase += 2 * math.Pi * b.Tuning.HoverFrequency * ctx.dt
	ctx.t.Position.Y = b.HomeY + b.Tuning.HoverAmplitude*math.Sin(b.HoverPhase)
}

func playerInRange(ctx *bossContext) bool {
	player, ok := ecs.First(ctx.w, component.PlayerKind)
	if !ok {
		return false
	}
	pt, ok := ecs.Get(ctx.w, player, component.TransformKind)
	if !ok {
		return false
	}
	dx := pt.Position.X - ctx.t.Position.X
	dy := pt.Position.Y - ctx.t.Position.Y
	return math.Hypot(dx, dy) <= ctx.boss.Tuning.DetectRadius
}

// startDialogue schedules the gate timer from the estimated playout duration
// rather than polling the dialogue subsystem for completion.
func (s *BossSystem) startDialogue(ctx *bossContext, sequence string, next component.BossState) {
	duration := 0.0
	if s.dialogue != nil {
		d, ok := s.dialogue.Start(sequence)
		if !ok {
			// another sequence is still playing; try again next tick
			return
		}
		duration = d
	}
	ctx.timers.Set(component.TimerBossDialogue, duration)
	ctx.boss.NextState = next
	setBossState(ctx, component.BossDialogue)
}

// enterShielding is a one-tick setup: shield up, timers armed, then straight
// into Attacking.
func enterShielding(ctx *bossContext) {
	b := ctx.boss
	setBossState(ctx, component.BossShielding)
	ecs.Add(ctx.w, ctx.e, component.InvulnerableKind, &component.Invulnerable{})
	ctx.timers.Set(component.TimerBossShield, b.Tuning.ShieldDuration)
	ctx.timers.Set(component.TimerBossSpawn, b.Tuning.SpawnInterval)
	if shield, err := entity.NewShield(ctx.w, ctx.t.Position); err == nil {
		b.ShieldEntity = shield
	}
	setBossState(ctx, component.BossAttacking)
}

func (s *BossSystem) tickAttacking(ctx *bossContext) {
	b := ctx.boss

	if shieldT, ok := ecs.Get(ctx.w, b.ShieldEntity, component.TransformKind); ok {
		shieldT.Position = ctx.t.Position
	}

	if !ctx.timers.Active(component.TimerBossSpawn) {
		ctx.timers.Set(component.TimerBossSpawn, b.Tuning.SpawnInterval)
		s.spawnTentacle(ctx)
	}

	if !ctx.timers.Active(component.TimerBossShield) {
		ecs.Remove(ctx.w, ctx.e, component.InvulnerableKind)
		destroyShield(ctx)
		s.startDialogue(ctx, b.Tuning.PostShieldSequence, component.BossVulnerable)
	}
}

// spawnTentacle probes straight down near the player's horizontal position.
// A failed probe skips the spawn silently.
func (s *BossSystem) spawnTentacle(ctx *bossContext) {
	if s.tentacle == nil {
		return
	}
	pw := ctx.w.Physics()
	if pw == nil {
		return
	}
	player, ok := ecs.First(ctx.w, component.PlayerKind)
	if !ok {
		return
	}
	pt, ok := ecs.Get(ctx.w, player, component.TransformKind)
	if !ok {
		return
	}
	b := ctx.boss
	originY := ctx.t.Position.Y - b.Tuning.ProbeOffsetY
	groundY, found := pw.ProbeGround(pt.Position.X, originY, b.Tuning.ProbeMaxDist)
	if !found {
		return
	}
	entity.NewTentacle(ctx.w, s.tentacle, pt.Position.X, groundY)
}

func destroyShield(ctx *bossContext) {
	b := ctx.boss
	if b.ShieldEntity.Valid() {
		ecs.DestroyEntity(ctx.w, b.ShieldEntity)
		b.ShieldEntity = 0
	}
}

func enterBossDeath(ctx *bossContext) {
	b := ctx.boss
	ecs.Remove(ctx.w, ctx.e, component.InvulnerableKind)
	destroyShield(ctx)
	b.ExplosionsLeft = b.Tuning.ExplosionCount
	ctx.timers.Set(component.TimerBossExplosion, b.Tuning.ExplosionInterval)
	setBossState(ctx, component.BossDeath)
}

func (s *BossSystem) tickDeath(ctx *bossContext) {
	b := ctx.boss
	if ctx.timers.Active(component.TimerBossExplosion) {
		return
	}
	if b.ExplosionsLeft > 0 {
		b.ExplosionsLeft--
		ctx.timers.Set(component.TimerBossExplosion, b.Tuning.ExplosionInterval)
		entity.NewExplosion(ctx.w, ctx.t.Position)
		ctx.w.Events().Push(ecs.Event{Type: ecs.EventAudioCue, Data: ecs.AudioCueEvent{Actor: ctx.e, Name: notify.CueExplosion}})
		return
	}
	ctx.w.Events().Push(ecs.Event{Type: ecs.EventDeath, Data: ecs.DeathEvent{Actor: ctx.e, Kind: "boss"}})
	ecs.DestroyEntity(ctx.w, ctx.e)
}

// ApplyBossDamage is the boss's damage intake. Hit counting for the shield
// cycle only applies while Vulnerable.
func ApplyBossDamage(w *ecs.World, e ecs.Entity, amount float64) {
	if w == nil || amount <= 0 {
		return
	}
	b, ok := ecs.Get(w, e, component.BossKind)
	if !ok || b.Disabled || b.State == component.BossDeath {
		return
	}
	if ecs.Has(w, e, component.InvulnerableKind) {
		return
	}
	hit, ok := ecs.Get(w, e, component.HittableKind)
	if !ok || hit.Dead() {
		return
	}
	t, _ := ecs.Get(w, e, component.TransformKind)
	timers, _ := ecs.Get(w, e, component.TimersKind)
	if t == nil || timers == nil {
		return
	}

	hit.TakeHit(amount, common.Vec2{})

	ctx := &bossContext{w: w, e: e, boss: b, t: t, timers: timers, hit: hit, dt: w.DT()}
	if hit.Dead() {
		enterBossDeath(ctx)
		return
	}
	if b.Tuning.HitInvulnTime > 0 {
		ecs.Add(w, e, component.InvulnerableKind, &component.Invulnerable{Duration: b.Tuning.HitInvulnTime})
	}
	if b.State == component.BossVulnerable {
		b.HitCount++
		if b.HitCount >= b.Tuning.HitsPerCycle {
			b.HitCount = 0
			enterShielding(ctx)
		}
	}
}

func setBossState(ctx *bossContext, next component.BossState) {
	if ctx.boss.State == next {
		return
	}
	ctx.boss.State = next
	ctx.w.Events().Push(ecs.Event{Type: ecs.EventStateChanged, Data: ecs.StateChangedEvent{
		Actor: ctx.e, Kind: "boss", State: next.String(),
	}})
}
