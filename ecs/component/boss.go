package component

import "github.com/milk9111/riptide/ecs"

type BossState int

const (
	BossIdle BossState = iota
	BossHovering
	BossDialogue
	BossVulnerable
	BossShielding
	BossAttacking
	BossDeath
)

func (s BossState) String() string {
	switch s {
	case BossIdle:
		return "idle"
	case BossHovering:
		return "hovering"
	case BossDialogue:
		return "dialogue"
	case BossVulnerable:
		return "vulnerable"
	case BossShielding:
		return "shielding"
	case BossAttacking:
		return "attacking"
	case BossDeath:
		return "death"
	}
	return "unknown"
}

// Boss timer names.
const (
	TimerBossDialogue  = "boss_dialogue"
	TimerBossShield    = "boss_shield"
	TimerBossSpawn     = "boss_spawn"
	TimerBossExplosion = "boss_explosion"
)

// BossTuning is loaded from the boss prefab.
type BossTuning struct {
	MaxHealth     float64 `yaml:"max_health"`
	PogoStrength  float64 `yaml:"pogo_strength"`
	HitInvulnTime float64 `yaml:"hit_invuln_time"`

	DetectRadius   float64 `yaml:"detect_radius"`
	HoverAmplitude float64 `yaml:"hover_amplitude"`
	HoverFrequency float64 `yaml:"hover_frequency"`

	HitsPerCycle   int     `yaml:"hits_per_cycle"`
	ShieldDuration float64 `yaml:"shield_duration"`
	SpawnInterval  float64 `yaml:"spawn_interval"`

	ProbeOffsetY float64 `yaml:"probe_offset_y"`
	ProbeMaxDist float64 `yaml:"probe_max_dist"`

	ExplosionCount    int     `yaml:"explosion_count"`
	ExplosionInterval float64 `yaml:"explosion_interval"`

	IntroSequence      string `yaml:"intro_sequence"`
	PostShieldSequence string `yaml:"post_shield_sequence"`
}

// Boss is the encounter orchestrator's mutable state.
type Boss struct {
	Tuning BossTuning

	State BossState
	// NextState is entered when the dialogue gate timer expires.
	NextState BossState

	HitCount       int
	ShieldEntity   ecs.Entity
	HomeY          float64
	HoverPhase     float64
	ExplosionsLeft int

	// Disabled is set on a configuration error; the orchestrator idles.
	Disabled bool
}

var BossKind = ecs.NewComponentKind[Boss]()
