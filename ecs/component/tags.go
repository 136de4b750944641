package component

import "github.com/milk9111/riptide/ecs"

// PlayerTag marks the player entity.
type PlayerTag struct{}

// BossTag marks a boss entity.
type BossTag struct{}

var (
	PlayerTagKind = ecs.NewComponentKind[PlayerTag]()
	BossTagKind   = ecs.NewComponentKind[BossTag]()
)
