package component

import "github.com/milk9111/riptide/ecs"

// Invulnerable suppresses all incoming damage while present. Duration <= 0
// means indefinite; the owner removes the component itself (boss shield).
// Positive durations count down and the component is removed on expiry.
type Invulnerable struct {
	Duration float64
}

var InvulnerableKind = ecs.NewComponentKind[Invulnerable]()

// Indefinite reports whether the invulnerability never expires on its own.
func (i *Invulnerable) Indefinite() bool {
	return i != nil && i.Duration <= 0
}
