package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/riptide/ecs/component"
)

// Input samples the keyboard at the display rate and latches press edges so
// the fixed-rate simulation sees each press exactly once, even when a press
// falls between fixed steps.
type Input struct {
	latched component.Input
}

func NewInput() *Input {
	return &Input{}
}

// Poll captures the current control state, accumulating edges.
func (i *Input) Poll() {
	moveX := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}
	moveY := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		moveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		moveY += 1
	}

	i.latched.MoveX = moveX
	i.latched.MoveY = moveY
	i.latched.JumpHeld = ebiten.IsKeyPressed(ebiten.KeySpace)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		i.latched.JumpPressed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyK) {
		i.latched.DashPressed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		i.latched.AttackPressed = true
	}
}

// Sample returns the latched control state for one fixed tick.
func (i *Input) Sample() component.Input {
	return i.latched
}

// ClearEdges drops press edges after a fixed tick consumed them.
func (i *Input) ClearEdges() {
	i.latched.JumpPressed = false
	i.latched.DashPressed = false
	i.latched.AttackPressed = false
}

func pausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
