package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/riptide/ecs"
	"github.com/milk9111/riptide/ecs/component"
)

// RenderSystem draws placeholder rectangles for every sprite-bearing entity
// plus active hit volumes. Called from the shell's draw pass, not the fixed
// scheduler.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (s *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Midnightblue)

	ecs.ForEach2(w, component.SpriteKind, component.TransformKind, func(_ ecs.Entity, sp *component.Sprite, t *component.Transform) {
		scale := sp.ScaleY
		if scale <= 0 {
			scale = 1
		}
		height := sp.Height * scale
		x := t.Position.X - sp.Width/2
		y := t.Position.Y + sp.Height/2 - height
		c := sp.Color
		if c == nil {
			c = color.White
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(sp.Width), float32(height), c, false)
	})

	ecs.ForEach(w, component.HurtVolumeKind, func(_ ecs.Entity, hv *component.HurtVolume) {
		if !hv.Active {
			return
		}
		ownerT, ok := ecs.Get(w, hv.Owner, component.TransformKind)
		if !ok {
			return
		}
		area := hv.WorldBounds(ownerT.Position)
		vector.DrawFilledRect(screen, float32(area.X), float32(area.Y), float32(area.Width), float32(area.Height), color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x40}, false)
	})
}
