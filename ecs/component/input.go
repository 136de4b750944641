package component

import "github.com/milk9111/riptide/ecs"

// Input is the sampled control state for one fixed tick. Pressed flags are
// edges latched between fixed steps; held flags are level-triggered.
type Input struct {
	MoveX float64
	MoveY float64

	JumpHeld      bool
	JumpPressed   bool
	DashPressed   bool
	AttackPressed bool
}

var InputKind = ecs.NewComponentKind[Input]()
