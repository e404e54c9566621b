package console

import (
	"testing"

	"nescore/internal/bus"
	"nescore/internal/input"
)

// nopCart is a flat-memory cartridge stub that answers every CPU read with
// a NOP opcode, just enough to drive a Console through full frames without
// needing a real PRG image.
type nopCart struct {
	mem [0x10000]uint8
}

func newNOPCart() *nopCart {
	c := &nopCart{}
	for i := range c.mem {
		c.mem[i] = 0xEA // NOP
	}
	c.mem[0xFFFC] = 0x00
	c.mem[0xFFFD] = 0x80 // reset vector -> $8000
	return c
}

func (c *nopCart) CPURead(b *bus.Bus, addr uint16) uint8        { return c.mem[addr] }
func (c *nopCart) CPUWrite(b *bus.Bus, addr uint16, data uint8) { c.mem[addr] = data }
func (c *nopCart) PPURead(b *bus.Bus, addr uint16) uint8        { return 0 }
func (c *nopCart) PPUWrite(b *bus.Bus, addr uint16, data uint8) {}

func TestNewConsoleStartsAtFrameZero(t *testing.T) {
	c := New(newNOPCart())
	if c.FrameCount() != 0 {
		t.Fatalf("FrameCount() = %d, want 0", c.FrameCount())
	}
}

func TestRunFrameAdvancesFrameCount(t *testing.T) {
	c := New(newNOPCart())
	c.RunFrame()

	if c.FrameCount() != 1 {
		t.Fatalf("FrameCount() after RunFrame = %d, want 1", c.FrameCount())
	}
	if len(c.FrameBuffer()) != bus.PixelQuantity {
		t.Fatalf("FrameBuffer() length = %d, want %d", len(c.FrameBuffer()), bus.PixelQuantity)
	}
}

func TestSetPortOneDoesNotPanicWithoutPolling(t *testing.T) {
	c := New(newNOPCart())
	c.SetPortOne(input.A, true)
	c.SetPortTwo(input.Start, true)
	c.Exec()
}
