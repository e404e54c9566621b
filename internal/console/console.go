// Package console wires the shared bus, cartridge, controllers, PPU, APU
// and CPU into the single object the host drives one instruction at a
// time.
package console

import (
	"nescore/internal/apu"
	"nescore/internal/bus"
	"nescore/internal/cartridge"
	"nescore/internal/cpu"
	"nescore/internal/input"
	"nescore/internal/ppu"
)

// Console-wide clock constants, matching the real NTSC NES master clock
// derivation: the master clock runs at clock_speed_hz, the CPU at a twelfth
// of it, and the PPU (three dots per CPU cycle) at a quarter of it.
const (
	ClockSpeedHz    = 1000000.0 * (236.25 / 11.0)
	CPUClockSpeedHz = ClockSpeedHz / 12.0
)

// Console owns every hardware component and is the host's sole entry point
// into the emulated machine.
type Console struct {
	bus  *bus.Bus
	cart cartridge.Cartridge

	portOne *input.Controller
	portTwo *input.Controller

	ppu *ppu.PPU
	apu *apu.APU
	cpu *cpu.CPU
}

// New constructs a Console around an already-loaded cartridge and powers it
// on.
func New(cart cartridge.Cartridge) *Console {
	b := bus.New()
	p := ppu.New(b, cart)
	a := apu.New(b)
	portOne := input.New()
	portTwo := input.New()
	c := cpu.New(b, cart, p, a, portOne, portTwo)

	return &Console{
		bus:     b,
		cart:    cart,
		portOne: portOne,
		portTwo: portTwo,
		ppu:     p,
		apu:     a,
		cpu:     c,
	}
}

// FrameBuffer returns the front (host-visible) framebuffer of 6-bit palette
// indices, always exactly 256*240 entries long.
func (c *Console) FrameBuffer() []uint8 {
	return c.bus.FrameBuffer()
}

// AudioBuffer returns the front audio buffer of mixed mono samples
// accumulated over the most recently completed frame.
func (c *Console) AudioBuffer() []float32 {
	return c.bus.AudioBuffer()
}

// FrameCount returns the number of frames completed so far.
func (c *Console) FrameCount() uint64 {
	return c.bus.FrameCount()
}

// SetPortOne updates a button's live state on controller port 1.
func (c *Console) SetPortOne(btn input.Button, pressed bool) {
	c.portOne.SetButton(btn, pressed)
}

// SetPortTwo updates a button's live state on controller port 2.
func (c *Console) SetPortTwo(btn input.Button, pressed bool) {
	c.portTwo.SetButton(btn, pressed)
}

// Exec runs exactly one CPU instruction, along with however many PPU dots
// and APU ticks its bus accesses drive.
func (c *Console) Exec() {
	c.cpu.ExecuteInstruction()
}

// RunFrame executes CPU instructions until the frame counter advances,
// i.e. until the PPU has pushed a complete frame to the front buffer.
func (c *Console) RunFrame() {
	target := c.FrameCount() + 1
	for c.FrameCount() < target {
		c.cpu.ExecuteInstruction()
	}
}
