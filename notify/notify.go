// Package notify declares the outbound ports the simulation core talks to.
// Implementations live with the shell; every port may be nil.
package notify

// Animation receives a state name on every actor state machine transition.
type Animation interface {
	StateChanged(actor uint64, kind string, state string)
}

// Audio receives fire-and-forget cue names.
type Audio interface {
	Play(cue string)
}

// Host is the level/scene owner.
type Host interface {
	PlayerDied()
	BossDied()
}

// Cue names emitted by the core.
const (
	CueJump       = "jump"
	CueAttack     = "attack"
	CueAttackHit  = "attack_hit"
	CueAttackMiss = "attack_miss"
	CuePogo       = "pogo"
	CueExplosion  = "explosion"
)

// Ports bundles the outbound collaborators. Zero value is safe to use.
type Ports struct {
	Animation Animation
	Audio     Audio
	Host      Host
}

func (p Ports) StateChanged(actor uint64, kind, state string) {
	if p.Animation != nil {
		p.Animation.StateChanged(actor, kind, state)
	}
}

func (p Ports) Play(cue string) {
	if p.Audio != nil {
		p.Audio.Play(cue)
	}
}

func (p Ports) PlayerDied() {
	if p.Host != nil {
		p.Host.PlayerDied()
	}
}

func (p Ports) BossDied() {
	if p.Host != nil {
		p.Host.BossDied()
	}
}
