package entity

import (
	"errors"

	"github.com/milk9111/riptide/common"
	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/prefabs"
)

// BuildLevel installs the level's terrain into the physics world.
func BuildLevel(w *ecs.World, spec *prefabs.LevelSpec) error {
	if w == nil || spec == nil {
		return errors.New("entity: nil world or level spec")
	}
	pw := w.Physics()
	if pw == nil {
		return errors.New("entity: level requires a physics world")
	}

	for _, wall := range spec.Walls {
		pw.AddStaticBox(common.Rect{X: wall.X, Y: wall.Y, Width: wall.Width, Height: wall.Height})
	}
	for _, seg := range spec.Segments {
		pw.AddStaticSegment(common.Vec2{X: seg.AX, Y: seg.AY}, common.Vec2{X: seg.BX, Y: seg.BY}, 1)
	}
	return nil
}
