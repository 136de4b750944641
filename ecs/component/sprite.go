package component

import (
	"image/color"

	"github.com/milk9111/riptide/ecs"
)

// Sprite is a placeholder colored rectangle centered on the transform.
type Sprite struct {
	Width  float64
	Height float64
	Color  color.Color

	// ScaleY stretches the rectangle vertically, anchored at its bottom.
	ScaleY float64
}

var SpriteKind = ecs.NewComponentKind[Sprite]()
