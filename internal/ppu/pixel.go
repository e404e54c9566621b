package ppu

// getPixelColor composes the background and sprite pixels for the current
// dot per NES priority rules, detects a sprite-zero hit, and returns the
// final palette index to push to the framebuffer.
func (p *PPU) getPixelColor() uint8 {
	bg := p.bgPixel()
	sp, behind, isZero := p.spPixel()

	if p.isRenderingEnabled() && isZero && bg&0x03 != 0 && sp&0x03 != 0 && p.dot() != 256 {
		p.statSpZeroHit = true
	}

	switch {
	case bg&0x03 == 0 && sp&0x03 == 0:
		return p.readPalette(0)
	case bg&0x03 == 0:
		return p.readPalette(0x10 + sp)
	case sp&0x03 == 0:
		return p.readPalette(bg)
	case behind:
		return p.readPalette(bg)
	default:
		return p.readPalette(0x10 + sp)
	}
}

// ExecuteCycle advances the PPU by exactly one dot. The CPU's bus calls this
// three times per CPU cycle (matching the 3:1 PPU:CPU clock ratio), twice
// from phase_one and once from phase_two.
func (p *PPU) ExecuteCycle() {
	scanline := p.scanln()
	dot := p.dot()
	oddFrameSkip := false

	switch {
	case scanline < heightPx: // visible scanlines 0-239
		p.renderScanlineDot(dot)
	case scanline == heightPx: // 240: post-render, PPU idle
	case scanline == heightPx+1: // 241
		if dot == 0 {
			p.newNMIOccurred = true
			p.b.PushFrame()
		}
	case scanline > heightPx+1 && scanline < scanlineHeight-1: // 242-260: vblank idle
	case scanline == scanlineHeight-1: // 261: pre-render
		if dot == 0 {
			p.newNMIOccurred = false
			p.statSpZeroHit = false
			p.statSpOverflow = false
			p.evenOddFrame = !p.evenOddFrame
			p.applyOAMCorruption()
		}
		oddFrameSkip = dot == 339 && !p.evenOddFrame && p.isRenderingEnabled()
		if !oddFrameSkip {
			p.renderScanlineDot(dot)
		}
		if dot >= 280 && dot <= 304 && p.isRenderingEnabled() {
			p.reloadScrollY()
		}
	}

	if p.ctrlNMIOutput && p.newNMIOccurred {
		p.b.LineNMILow = true
	} else {
		p.b.LineNMILow = false
	}

	p.cycleCount++
	p.totalDots++
	if oddFrameSkip {
		p.cycleCount++
	}
	if p.scanln() >= scanlineHeight {
		p.cycleCount = 0
	}
}

// applyOAMCorruption reproduces the well-known hardware artifact where
// leaving OAMADDR above 8 at the start of a frame corrupts the first 8 bytes
// of OAM from whatever 8-aligned block it was left pointing into.
func (p *PPU) applyOAMCorruption() {
	if !p.isRenderingEnabled() || p.oamAddr <= 8 {
		return
	}
	base := int(p.oamAddr &^ 0x07)
	copy(p.oam[0:8], p.oam[base:base+8])
}

// renderScanlineDot performs the background/sprite fetch pipeline and pixel
// output shared by visible and pre-render scanlines.
func (p *PPU) renderScanlineDot(dot uint16) {
	if !p.isRenderingEnabled() {
		if dot >= 1 && dot <= widthPx && p.scanln() < heightPx {
			p.b.PushPixel(p.readPalette(0))
		}
		return
	}

	switch {
	case dot == 0:
		// idle dot
	case dot >= 1 && dot <= widthPx:
		p.shiftBgRegisters()
		p.shiftSpRegisters()
		if p.scanln() < heightPx {
			p.b.PushPixel(p.getPixelColor())
		}
		p.fetchBgTileData()
		if dot == widthPx {
			p.incrementScrollY()
			p.performSpriteEvaluation()
		}
	case dot == widthPx+1:
		p.shiftBgRegisters()
		p.reloadScrollXCoarse()
		p.fetchSpTileData()
	case dot >= 258 && dot <= hblankEnd:
		// sprite pattern fetches already performed in one shot at dot 257
	case dot >= hblankEnd+1 && dot <= 336:
		p.fetchBgTileData()
		p.shiftBgRegisters()
	case dot == 337:
		p.readVRAM(p.ntAddr())
	case dot == 339:
		p.readVRAM(p.ntAddr())
	}
}
