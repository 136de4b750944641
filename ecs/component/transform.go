package component

import (
	"github.com/milk9111/riptide/common"
	"github.com/milk9111/riptide/ecs"
)

// Transform is an entity's world-space position (center) and facing.
type Transform struct {
	Position common.Vec2
	// Facing is -1 (left) or 1 (right).
	Facing float64
}

var TransformKind = ecs.NewComponentKind[Transform]()
