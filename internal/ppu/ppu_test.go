package ppu

import (
	"testing"

	"nescore/internal/bus"
)

// mockCartridge backs pattern tables and nametables with flat arrays and
// routes nametable addresses through CIRAM like a horizontally-mirrored
// cartridge would, just enough to exercise the PPU in isolation.
type mockCartridge struct {
	chr [0x2000]uint8
}

func (m *mockCartridge) CPURead(b *bus.Bus, addr uint16) uint8     { return 0 }
func (m *mockCartridge) CPUWrite(b *bus.Bus, addr uint16, data uint8) {}

func (m *mockCartridge) PPURead(b *bus.Bus, addr uint16) uint8 {
	addr &= 0x3FFF
	if addr < 0x2000 {
		return m.chr[addr]
	}
	return b.CIRAM[m.nametableOffset(addr)]
}

func (m *mockCartridge) PPUWrite(b *bus.Bus, addr uint16, data uint8) {
	addr &= 0x3FFF
	if addr < 0x2000 {
		m.chr[addr] = data
		return
	}
	b.CIRAM[m.nametableOffset(addr)] = data
}

// nametableOffset maps a $2000-$2FFF address onto 2KB of CIRAM using
// horizontal mirroring (nametables 0/1 share one physical table, 2/3 the
// other).
func (m *mockCartridge) nametableOffset(addr uint16) uint16 {
	table := (addr - 0x2000) / 0x400
	offset := (addr - 0x2000) % 0x400
	physical := table / 2
	return physical*0x400 + offset
}

func newTestPPU() (*PPU, *bus.Bus, *mockCartridge) {
	b := bus.New()
	cart := &mockCartridge{}
	p := New(b, cart)
	p.totalDots = cpuWarmupCycles * 3 // skip the warm-up window for register tests
	return p, b, cart
}

func TestPPUSTATUSReadClearsWriteToggleAndNMIOccurred(t *testing.T) {
	p, _, _ := newTestPPU()
	p.newNMIOccurred = true
	p.w = true

	status := p.ReadReg(2)
	if status&0x80 == 0 {
		t.Fatalf("PPUSTATUS should report vblank bit set, got %#02x", status)
	}
	if p.newNMIOccurred {
		t.Fatalf("reading PPUSTATUS should clear NMI-occurred")
	}
	if p.w {
		t.Fatalf("reading PPUSTATUS should clear the write-toggle latch")
	}
}

func TestPPUADDRPPUDATARoundTrip(t *testing.T) {
	p, _, cart := newTestPPU()
	cart.chr[0x0010] = 0x42

	p.WriteReg(6, 0x00) // PPUADDR high
	p.WriteReg(6, 0x10) // PPUADDR low -> v = 0x0010

	p.ReadReg(7)        // primes the read buffer, returns stale value
	got := p.ReadReg(7) // now returns the buffered value for $0010

	if got != 0x42 {
		t.Fatalf("buffered PPUDATA read = %#02x, want 0x42", got)
	}
}

func TestPaletteRAMMirroring(t *testing.T) {
	p, _, _ := newTestPPU()
	p.writePalette(0x00, 0x20)
	if got := p.readPalette(0x10); got != 0x20 {
		t.Fatalf("palette mirror $10 should alias $00, got %#02x", got)
	}
	p.writePalette(0x04, 0x15)
	if got := p.readPalette(0x04); got != 0x15 {
		t.Fatalf("palette[$04] = %#02x, want 0x15", got)
	}
}

func TestSpriteZeroHitNeverSetsAtDot256(t *testing.T) {
	p, _, _ := newTestPPU()
	p.maskShowBg = true
	p.maskShowSp = true
	p.maskShowBgLeft = true
	p.maskShowSpLeft = true
	p.spriteCount = 1
	p.spriteZeroInRange = true
	p.spXPos[0] = 0
	p.spShiftLo[0] = 0x80
	p.spAttr[0] = 0x00
	p.bgShiftLo = 0x8000
	p.bgShiftHi = 0x0000
	p.cycleCount = uint64(0)*scanlineWidth + 256

	p.getPixelColor()

	if p.statSpZeroHit {
		t.Fatalf("sprite-zero hit must never latch at dot 256")
	}
}

func TestOAMCorruptionArtifactCopiesEightBytes(t *testing.T) {
	p, _, _ := newTestPPU()
	p.maskShowBg = true
	p.oamAddr = 0x20
	for i := range p.oam {
		p.oam[i] = uint8(i)
	}

	p.applyOAMCorruption()

	for i := 0; i < 8; i++ {
		if p.oam[i] != uint8(0x20+i) {
			t.Fatalf("oam[%d] = %#02x, want %#02x", i, p.oam[i], uint8(0x20+i))
		}
	}
}

func TestOAMCorruptionSkippedWhenAddrLow(t *testing.T) {
	p, _, _ := newTestPPU()
	p.maskShowBg = true
	p.oamAddr = 0x04
	for i := range p.oam {
		p.oam[i] = 0xAB
	}
	p.oam[0] = 0x11

	p.applyOAMCorruption()

	if p.oam[0] != 0x11 {
		t.Fatalf("oam[0] should be untouched when oamAddr <= 8")
	}
}
