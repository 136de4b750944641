package system

import (
	"math"

	"github.com/milk9111/riptide/common"
	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/ecs/component"
	"github.com/milk9111/riptide/notify"
)

type playerStateHandler interface {
	update(ctx *playerContext)
}

// State singletons (avoid allocations on transitions).
var (
	playerStateIdle playerStateHandler = &playerIdleState{}
	playerStateRun  playerStateHandler = &playerRunState{}
	playerStateJump playerStateHandler = &playerJumpState{}
	playerStateFall playerStateHandler = &playerFallState{}
)

func playerHandlerFor(state component.PlayerState) playerStateHandler {
	switch state {
	case component.PlayerRunning:
		return playerStateRun
	case component.PlayerJumping:
		return playerStateJump
	case component.PlayerFalling:
		return playerStateFall
	}
	return playerStateIdle
}

type playerIdleState struct{}

type playerRunState struct{}

type playerJumpState struct{}

type playerFallState struct{}

func (playerIdleState) update(ctx *playerContext) {
	if tryJump(ctx) {
		return
	}
	moveHorizontal(ctx)
	applyGravity(ctx)
	if !ctx.player.Grounded {
		setPlayerState(ctx, component.PlayerFalling)
		return
	}
	if vx, _ := ctx.body.Velocity(); math.Abs(vx) > runningSpeedEps {
		setPlayerState(ctx, component.PlayerRunning)
	}
}

func (playerRunState) update(ctx *playerContext) {
	if tryJump(ctx) {
		return
	}
	moveHorizontal(ctx)
	applyGravity(ctx)
	if !ctx.player.Grounded {
		setPlayerState(ctx, component.PlayerFalling)
		return
	}
	if vx, _ := ctx.body.Velocity(); math.Abs(vx) <= runningSpeedEps && ctx.in.MoveX == 0 {
		setPlayerState(ctx, component.PlayerIdle)
	}
}

func (playerJumpState) update(ctx *playerContext) {
	moveHorizontal(ctx)
	cutJump(ctx)
	applyGravity(ctx)
	if _, vy := ctx.body.Velocity(); vy >= 0 {
		setPlayerState(ctx, component.PlayerFalling)
	}
}

func (playerFallState) update(ctx *playerContext) {
	if tryJump(ctx) {
		return
	}
	moveHorizontal(ctx)
	applyGravity(ctx)
	if ctx.player.Grounded {
		land(ctx)
	}
}

// moveHorizontal approaches the input-driven target speed, doubling the
// acceleration when reversing direction mid-motion.
func moveHorizontal(ctx *playerContext) {
	p := ctx.player
	vx, vy := ctx.body.Velocity()
	target := ctx.in.MoveX * p.Tuning.MaxSpeed
	accel := p.Tuning.Accel
	if target != 0 && vx != 0 && math.Signbit(target) != math.Signbit(vx) {
		accel *= 2
	}
	vx = common.Approach(vx, target, accel*ctx.dt)
	ctx.body.SetVelocity(vx, vy)

	if ctx.in.MoveX > 0 {
		ctx.t.Facing = 1
	} else if ctx.in.MoveX < 0 {
		ctx.t.Facing = -1
	}
}

func applyGravity(ctx *playerContext) {
	p := ctx.player
	vx, vy := ctx.body.Velocity()
	vy += p.Tuning.Gravity * ctx.dt
	if vy > p.Tuning.MaxFallSpeed {
		vy = p.Tuning.MaxFallSpeed
	}
	ctx.body.SetVelocity(vx, vy)
}

// tryJump fires when a buffered jump press coincides with ground contact or
// a live coyote window. Both timers are consumed on success.
func tryJump(ctx *playerContext) bool {
	p := ctx.player
	if !ctx.timers.Active(component.TimerJumpBuffer) {
		return false
	}
	if !p.Grounded && !ctx.timers.Active(component.TimerCoyote) {
		return false
	}
	ctx.timers.Consume(component.TimerJumpBuffer)
	ctx.timers.Consume(component.TimerCoyote)

	vx, _ := ctx.body.Velocity()
	ctx.body.SetVelocity(vx, -p.Tuning.JumpSpeed)
	ctx.timers.Set(component.TimerVarJump, p.Tuning.VarJumpTime)
	p.JumpCut = false
	setPlayerState(ctx, component.PlayerJumping)
	ctx.w.Events().Push(ecs.Event{Type: ecs.EventAudioCue, Data: ecs.AudioCueEvent{Actor: ctx.e, Name: notify.CueJump}})
	return true
}

// cutJump halves remaining upward velocity exactly once per jump when the
// button is released or the variable-jump window expires.
func cutJump(ctx *playerContext) {
	p := ctx.player
	if p.JumpCut {
		return
	}
	_, vy := ctx.body.Velocity()
	if vy >= 0 {
		return
	}
	if ctx.in.JumpHeld && ctx.timers.Active(component.TimerVarJump) {
		return
	}
	vx, _ := ctx.body.Velocity()
	ctx.body.SetVelocity(vx, vy/2)
	p.JumpCut = true
}

func land(ctx *playerContext) {
	p := ctx.player
	p.DashCharges = p.Tuning.MaxDashCharges
	if vx, _ := ctx.body.Velocity(); math.Abs(vx) > runningSpeedEps {
		setPlayerState(ctx, component.PlayerRunning)
		return
	}
	setPlayerState(ctx, component.PlayerIdle)
}
