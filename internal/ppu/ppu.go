// Package ppu implements the dot-exact picture processing unit: VRAM
// addressing, background and sprite shift registers, sprite evaluation,
// per-pixel composition and NMI generation.
package ppu

import (
	"nescore/internal/bus"
	"nescore/internal/cartridge"
)

const (
	widthPx        = bus.WidthPx
	heightPx       = bus.HeightPx
	scanlineWidth  = bus.ScanlineWidth
	scanlineHeight = bus.ScanlineHeight
	hblankEnd      = bus.HBlankEnd
	cpuWarmupCycles = 29658
)

// PPU is the 2C02-derived picture processing unit.
type PPU struct {
	b    *bus.Bus
	cart cartridge.Cartridge

	// Scroll/address registers.
	v, t        uint16
	fineX       uint8
	w           bool
	vramAddrBus uint16

	// Background rendering latches.
	tileSliverAddr uint16
	bgShiftLo      uint16
	bgShiftHi      uint16
	palShiftLo     uint16
	palShiftHi     uint16
	nextBgPalette  uint8
	nextBgTileLo   uint8
	nextBgTileHi   uint8
	nextNTByte     uint8

	// Sprite rendering latches.
	spShiftLo [8]uint8
	spShiftHi [8]uint8
	spAttr    [8]uint8
	spXPos    [8]uint8

	spriteCount       uint8
	spriteZeroInRange bool

	// $2000 PPUCTRL.
	ctrlIncBy32        bool
	ctrlSpPatternTable bool
	ctrlBgPatternTable bool
	ctrlSpritesLarge   bool
	ctrlMasterSlave    bool
	ctrlNMIOutput      bool

	// $2001 PPUMASK.
	maskGrayscale  bool
	maskShowBgLeft bool
	maskShowSpLeft bool
	maskShowBg     bool
	maskShowSp     bool
	maskEmphR      bool
	maskEmphG      bool
	maskEmphB      bool

	statSpOverflow bool
	statSpZeroHit  bool
	newNMIOccurred bool

	oamAddr     uint8
	vramReadBuf uint8

	cycleCount   uint64
	totalDots    uint64
	regLatch     uint8
	evenOddFrame bool

	paletteRAM [32]uint8
	oam        [256]uint8
	oamAux     [32]uint8
}

// New constructs a PPU wired to the shared bus and cartridge it reads
// pattern/nametable data through.
func New(b *bus.Bus, cart cartridge.Cartridge) *PPU {
	p := &PPU{b: b, cart: cart}
	p.resetState(true)
	return p
}

func (p *PPU) dot() uint16    { return uint16(p.cycleCount % scanlineWidth) }
func (p *PPU) scanln() uint16 { return uint16(p.cycleCount / scanlineWidth) }

func (p *PPU) spriteHeight() uint8 {
	if p.ctrlSpritesLarge {
		return 16
	}
	return 8
}

func (p *PPU) isRenderingEnabled() bool {
	return p.maskShowBg || p.maskShowSp
}

func (p *PPU) isRenderScanln() bool {
	return p.scanln() < heightPx || p.scanln() == scanlineHeight-1
}

func (p *PPU) isRendering() bool {
	return p.isRenderScanln() && p.isRenderingEnabled()
}

// isWarmingUp reports whether the PPU is still within its roughly one-frame
// power-on window during which PPUCTRL/PPUMASK/PPUSCROLL/PPUADDR writes are
// ignored.
func (p *PPU) isWarmingUp() bool {
	return p.totalDots < cpuWarmupCycles*3
}

func (p *PPU) setVRAMAddrBus(addr uint16) {
	p.vramAddrBus = addr % 0x4000
}

// spliceBits copies num bits from src starting at srcStart into dst starting
// at dstStart, leaving the rest of dst untouched. Used to apply the
// bit-packed partial writes PPUCTRL/PPUSCROLL/PPUADDR perform into t.
func spliceBits(src uint16, srcStart uint8, dst uint16, dstStart uint8, num uint8) uint16 {
	mask := uint16(1)<<num - 1
	bits := (src >> srcStart) & mask
	dst &^= mask << dstStart
	dst |= bits << dstStart
	return dst
}

// cartRead/cartWrite route pattern-table and nametable accesses through the
// cartridge's PPU-side interface.
func (p *PPU) cartRead(addr uint16) uint8 {
	return p.cart.PPURead(p.b, addr)
}

func (p *PPU) cartWrite(addr uint16, data uint8) {
	p.cart.PPUWrite(p.b, addr, data)
}

// readVRAM/writeVRAM dispatch a full 14-bit PPU address to either the
// cartridge (pattern table + nametables, addr < 0x3F00) or palette RAM.
func (p *PPU) readVRAM(addr uint16) uint8 {
	addr %= 0x4000
	p.setVRAMAddrBus(addr)
	if addr < 0x3F00 {
		return p.cartRead(addr)
	}
	return p.readPalette(uint8(addr))
}

func (p *PPU) writeVRAM(addr uint16, data uint8) {
	addr %= 0x4000
	p.setVRAMAddrBus(addr)
	if addr < 0x3F00 {
		p.cartWrite(addr, data)
	} else {
		p.writePalette(uint8(addr), data)
	}
}

func (p *PPU) ntAddr() uint16 {
	return 0x2000 | (p.v & 0x0FFF)
}

func (p *PPU) attrAddr() uint16 {
	return 0x23C0 | (p.v & 0x0C00) | ((p.v >> 4) & 0x38) | ((p.v >> 2) & 0x07)
}

// FrameBuffer returns the console's front (host-visible) framebuffer of
// palette indices.
func (p *PPU) FrameBuffer() []uint8 {
	return p.b.FrameBuffer()
}

// resetState applies the PPU's power-up (or soft-reset) initial state. On a
// power cycle, OAM/palette/CHR contents are left as whatever they already
// are (hardware leaves them unspecified); only the documented registers
// reset.
func (p *PPU) resetState(isPowerCycle bool) {
	p.ctrlIncBy32 = false
	p.ctrlSpPatternTable = false
	p.ctrlBgPatternTable = false
	p.ctrlSpritesLarge = false
	p.ctrlMasterSlave = false
	p.ctrlNMIOutput = false

	p.maskGrayscale = false
	p.maskShowBgLeft = false
	p.maskShowSpLeft = false
	p.maskShowBg = false
	p.maskShowSp = false
	p.maskEmphR = false
	p.maskEmphG = false
	p.maskEmphB = false

	p.w = false
	p.t = 0
	p.fineX = 0
	p.vramReadBuf = 0
	p.evenOddFrame = true
	p.cycleCount = 0

	if isPowerCycle {
		p.statSpOverflow = true
		p.statSpZeroHit = false
		p.newNMIOccurred = true
		p.oamAddr = 0
		p.setVRAMAddrBus(0)
	}
}

// Reset performs a soft reset.
func (p *PPU) Reset() {
	p.resetState(false)
}
