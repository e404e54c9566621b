package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"nescore/internal/console"
	"nescore/internal/input"
)

// keyBinding maps one host key to a controller button, polled once per
// Update per SPEC_FULL.md's host-side keyboard-polling responsibility.
type keyBinding struct {
	key ebiten.Key
	btn input.Button
}

var portOneBindings = []keyBinding{
	{ebiten.KeyZ, input.A},
	{ebiten.KeyX, input.B},
	{ebiten.KeyShift, input.Select},
	{ebiten.KeyEnter, input.Start},
	{ebiten.KeyUp, input.Up},
	{ebiten.KeyDown, input.Down},
	{ebiten.KeyLeft, input.Left},
	{ebiten.KeyRight, input.Right},
}

// pollInput reads the current keyboard state and applies it to the
// console's port 1 controller. Port 2 is left unbound; a second player's
// key bindings are host-shell configuration, not a core concern.
func pollInput(c *console.Console) {
	for _, b := range portOneBindings {
		c.SetPortOne(b.btn, ebiten.IsKeyPressed(b.key))
	}
}
