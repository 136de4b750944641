package system

import (
	"math"

	"github.com/milk9111/riptide/common"
	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/ecs/component"
	"github.com/milk9111/riptide/notify"
)

const runningSpeedEps = 1.0

// playerContext bundles the player's components for one fixed tick.
type playerContext struct {
	w      *ecs.World
	e      ecs.Entity
	player *component.Player
	t      *component.Transform
	body   *component.PhysicsBody
	in     *component.Input
	timers *component.Timers
	hit    *component.Hittable
	dt     float64
}

// PlayerSystem drives the locomotion and combat state machine. Tick order is
// strict: queued pogo, death, fall boundary, attack, dash, then movement.
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

func (s *PlayerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach4(w, component.PlayerKind, component.TransformKind, component.PhysicsBodyKind, component.InputKind,
		func(e ecs.Entity, p *component.Player, t *component.Transform, body *component.PhysicsBody, in *component.Input) {
			timers, ok := ecs.Get(w, e, component.TimersKind)
			if !ok {
				return
			}
			hit, ok := ecs.Get(w, e, component.HittableKind)
			if !ok {
				return
			}
			ctx := &playerContext{
				w: w, e: e, player: p, t: t, body: body, in: in,
				timers: timers, hit: hit, dt: w.DT(),
			}
			s.tick(ctx)
		})
}

func (s *PlayerSystem) tick(ctx *playerContext) {
	p := ctx.player

	if pw := ctx.w.Physics(); pw != nil {
		p.Grounded = pw.Grounded(ctx.body.Body, ctx.body.Height/2)
	}

	// a pogo reported during the previous tick's hit resolution is applied
	// before anything else so it never interleaves with that tick's logic;
	// it takes the whole tick, ordinary movement resumes next tick
	if req, ok := ecs.Get(ctx.w, ctx.e, component.PogoRequestKind); ok {
		alive := p.State != component.PlayerDeath
		ecs.Remove(ctx.w, ctx.e, component.PogoRequestKind)
		if alive {
			applyPogo(ctx, req.Strength)
			return
		}
	}

	if p.State == component.PlayerDeath {
		tickPlayerDeath(ctx)
		return
	}
	if ctx.hit.Dead() {
		enterPlayerDeath(ctx)
		return
	}
	if ctx.t.Position.Y > p.Tuning.FallDeathY {
		ctx.hit.Kill()
		enterPlayerDeath(ctx)
		return
	}

	if ctx.in.JumpPressed {
		ctx.timers.Set(component.TimerJumpBuffer, p.Tuning.JumpBufferTime)
	}
	if p.Grounded {
		ctx.timers.Set(component.TimerCoyote, p.Tuning.CoyoteTime)
	}

	tryAttack(ctx)

	if ctx.in.DashPressed && p.DashCharges > 0 && p.State != component.PlayerDashing {
		startDash(ctx)
		return
	}

	if p.State == component.PlayerDashing {
		if ctx.timers.Active(component.TimerDash) {
			ctx.body.SetVelocity(p.DashDir*p.Tuning.DashSpeed, 0)
			return
		}
		endDash(ctx, false)
		return
	}

	playerHandlerFor(p.State).update(ctx)
}

// ApplyPlayerDamage is the player's damage intake. Ignored while dead or
// invulnerable. A nil knockback uses the default pop away from facing. If a
// dash is active it is cancelled and the collision mask restored before this
// returns.
func ApplyPlayerDamage(w *ecs.World, e ecs.Entity, amount float64, knockback *common.Vec2) {
	if w == nil || amount <= 0 {
		return
	}
	p, ok := ecs.Get(w, e, component.PlayerKind)
	if !ok || p.State == component.PlayerDeath {
		return
	}
	// dash invulnerability shields against overlaps, not direct damage; a
	// direct hit cancels the dash instead
	if ecs.Has(w, e, component.InvulnerableKind) && p.State != component.PlayerDashing {
		return
	}
	hit, ok := ecs.Get(w, e, component.HittableKind)
	if !ok || hit.Dead() {
		return
	}
	t, _ := ecs.Get(w, e, component.TransformKind)
	body, _ := ecs.Get(w, e, component.PhysicsBodyKind)
	timers, _ := ecs.Get(w, e, component.TimersKind)
	if t == nil || body == nil || timers == nil {
		return
	}

	wasDashing := p.State == component.PlayerDashing
	hit.TakeHit(amount, common.Vec2{})

	kb := common.Vec2{X: -t.Facing * p.Tuning.KnockbackX, Y: p.Tuning.KnockbackY}
	if knockback != nil && (knockback.X != 0 || knockback.Y != 0) {
		kb = *knockback
	}
	body.SetVelocity(kb.X, -math.Abs(kb.Y))

	ctx := &playerContext{
		w: w, e: e, player: p, t: t, body: body,
		timers: timers, hit: hit, dt: w.DT(),
	}
	if wasDashing {
		endDash(ctx, true)
	}
	ecs.Add(w, e, component.InvulnerableKind, &component.Invulnerable{Duration: p.Tuning.HitInvulnTime})
	if hit.Dead() {
		enterPlayerDeath(ctx)
	}
}

// ReportDownwardHit queues a pogo for the attacker, applied at the start of
// its next tick.
func ReportDownwardHit(w *ecs.World, attacker ecs.Entity, strength float64) {
	if w == nil || strength <= 0 {
		return
	}
	ecs.Add(w, attacker, component.PogoRequestKind, &component.PogoRequest{Strength: strength})
}

func setPlayerState(ctx *playerContext, next component.PlayerState) {
	if ctx.player.State == next {
		return
	}
	ctx.player.State = next
	ctx.w.Events().Push(ecs.Event{Type: ecs.EventStateChanged, Data: ecs.StateChangedEvent{
		Actor: ctx.e, Kind: "player", State: next.String(),
	}})
}

func applyPogo(ctx *playerContext, strength float64) {
	p := ctx.player
	vx, _ := ctx.body.Velocity()
	ctx.body.SetVelocity(vx, -strength)
	setPlayerState(ctx, component.PlayerJumping)
	ctx.timers.Set(component.TimerVarJump, p.Tuning.VarJumpTime)
	ctx.timers.Consume(component.TimerCoyote)
	ctx.timers.Consume(component.TimerJumpBuffer)
	p.JumpCut = false
	p.DashCharges = p.Tuning.MaxDashCharges
	ctx.w.Events().Push(ecs.Event{Type: ecs.EventAudioCue, Data: ecs.AudioCueEvent{Actor: ctx.e, Name: notify.CuePogo}})
}

func enterPlayerDeath(ctx *playerContext) {
	p := ctx.player
	ctx.body.SetVelocity(0, 0)
	if p.Phantom {
		restoreCollisionMask(ctx)
	}
	ecs.Remove(ctx.w, ctx.e, component.InvulnerableKind)
	ctx.timers.Set(component.TimerReload, p.Tuning.ReloadDelay)
	setPlayerState(ctx, component.PlayerDeath)
}

func tickPlayerDeath(ctx *playerContext) {
	p := ctx.player
	ctx.body.SetVelocity(0, 0)
	if p.ReloadRequested || ctx.timers.Active(component.TimerReload) {
		return
	}
	p.ReloadRequested = true
	ctx.w.Events().Push(ecs.Event{Type: ecs.EventDeath, Data: ecs.DeathEvent{Actor: ctx.e, Kind: "player"}})
}

func tryAttack(ctx *playerContext) {
	p := ctx.player
	if !ctx.in.AttackPressed || ctx.timers.Active(component.TimerAttackCooldown) {
		return
	}
	aim := aimDirection(ctx.in, ctx.t.Facing, p.Tuning.AimDeadzone)
	bounds := attackBounds(aim, p.Tuning)
	if _, ok := SpawnHitVolume(ctx.w, ctx.e, p.Tuning.AttackDamage, aim, bounds, p.Tuning.AttackDuration, p.Tuning.AttackLinger); !ok {
		return
	}
	ctx.timers.Set(component.TimerAttackCooldown, p.Tuning.AttackCooldown)
	ctx.w.Events().Push(ecs.Event{Type: ecs.EventAudioCue, Data: ecs.AudioCueEvent{Actor: ctx.e, Name: notify.CueAttack}})
}

// aimDirection snaps to up or down when the vertical axis clears the
// deadzone, otherwise forward per facing.
func aimDirection(in *component.Input, facing, deadzone float64) common.Vec2 {
	if in.MoveY < -deadzone {
		return common.Vec2{X: 0, Y: -1}
	}
	if in.MoveY > deadzone {
		return Downward
	}
	if facing == 0 {
		facing = 1
	}
	return common.Vec2{X: facing, Y: 0}
}

// attackBounds is the hit volume rectangle relative to the player center.
// Vertical aims swap the rectangle's axes.
func attackBounds(aim common.Vec2, tuning component.PlayerTuning) common.Rect {
	width, height := tuning.AttackWidth, tuning.AttackHeight
	if aim.X == 0 {
		width, height = height, width
	}
	return common.Rect{
		X:      aim.X*tuning.AttackReach - width/2,
		Y:      aim.Y*tuning.AttackReach - height/2,
		Width:  width,
		Height: height,
	}
}

func startDash(ctx *playerContext) {
	p := ctx.player
	dir := ctx.t.Facing
	if ctx.in.MoveX > 0 {
		dir = 1
	} else if ctx.in.MoveX < 0 {
		dir = -1
	}
	if dir == 0 {
		dir = 1
	}

	p.DashCharges--
	p.DashDir = dir
	p.JumpCut = true
	ctx.timers.Set(component.TimerDash, p.Tuning.DashTime)
	ecs.Add(ctx.w, ctx.e, component.InvulnerableKind, &component.Invulnerable{Duration: p.Tuning.DashTime})
	ctx.body.SetVelocity(dir*p.Tuning.DashSpeed, 0)
	if ctx.body.Shape != nil {
		ctx.body.Shape.SetFilter(ecs.PhantomFilter)
		p.Phantom = true
	}
	setPlayerState(ctx, component.PlayerDashing)
}

// endDash restores the collision mask and resolves the follow-up state.
// Damage cancellation keeps the knockback velocity already applied.
func endDash(ctx *playerContext, damaged bool) {
	p := ctx.player
	restoreCollisionMask(ctx)
	ctx.timers.Consume(component.TimerDash)
	ecs.Remove(ctx.w, ctx.e, component.InvulnerableKind)

	if damaged {
		setPlayerState(ctx, component.PlayerFalling)
		return
	}

	vx, _ := ctx.body.Velocity()
	if p.Grounded {
		ctx.body.SetVelocity(vx/2, 0)
		setPlayerState(ctx, component.PlayerIdle)
		return
	}
	ctx.body.SetVelocity(vx/2, 0)
	setPlayerState(ctx, component.PlayerFalling)
}

func restoreCollisionMask(ctx *playerContext) {
	if ctx.body.Shape != nil {
		ctx.body.Shape.SetFilter(ecs.ActorFilter)
	}
	ctx.player.Phantom = false
}
