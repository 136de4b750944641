package component

import "github.com/milk9111/riptide/ecs"

type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerRunning
	PlayerJumping
	PlayerFalling
	PlayerDashing
	PlayerDeath
)

func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "idle"
	case PlayerRunning:
		return "running"
	case PlayerJumping:
		return "jumping"
	case PlayerFalling:
		return "falling"
	case PlayerDashing:
		return "dashing"
	case PlayerDeath:
		return "death"
	}
	return "unknown"
}

// Player timer names.
const (
	TimerCoyote         = "coyote"
	TimerJumpBuffer     = "jump_buffer"
	TimerVarJump        = "var_jump"
	TimerDash           = "dash"
	TimerAttackCooldown = "attack_cooldown"
	TimerReload         = "reload"
)

// PlayerTuning is loaded from the player prefab.
type PlayerTuning struct {
	MaxSpeed     float64 `yaml:"max_speed"`
	Accel        float64 `yaml:"accel"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`

	CoyoteTime     float64 `yaml:"coyote_time"`
	JumpBufferTime float64 `yaml:"jump_buffer_time"`
	VarJumpTime    float64 `yaml:"var_jump_time"`

	DashSpeed      float64 `yaml:"dash_speed"`
	DashTime       float64 `yaml:"dash_time"`
	MaxDashCharges int     `yaml:"max_dash_charges"`

	AttackDamage   float64 `yaml:"attack_damage"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	AttackDuration float64 `yaml:"attack_duration"`
	AttackLinger   float64 `yaml:"attack_linger"`
	AttackReach    float64 `yaml:"attack_reach"`
	AttackWidth    float64 `yaml:"attack_width"`
	AttackHeight   float64 `yaml:"attack_height"`
	AimDeadzone    float64 `yaml:"aim_deadzone"`

	MaxHealth     float64 `yaml:"max_health"`
	HitInvulnTime float64 `yaml:"hit_invuln_time"`
	KnockbackX    float64 `yaml:"knockback_x"`
	KnockbackY    float64 `yaml:"knockback_y"`

	FallDeathY  float64 `yaml:"fall_death_y"`
	ReloadDelay float64 `yaml:"reload_delay"`
}

// Player is the locomotion and combat state machine's mutable state.
type Player struct {
	Tuning PlayerTuning

	State       PlayerState
	Grounded    bool
	DashCharges int
	// DashDir is the locked horizontal direction of the current dash.
	DashDir float64
	// JumpCut marks that the variable-jump truncation already ran for the
	// current jump.
	JumpCut bool
	// Phantom marks that the dash collision mask is applied and must be
	// restored when the dash ends for any reason.
	Phantom bool

	ReloadRequested bool
}

var PlayerKind = ecs.NewComponentKind[Player]()
