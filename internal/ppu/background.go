package ppu

// shiftBgRegisters advances the background pattern and attribute shift
// registers by one pixel; called on every visible dot of a rendered
// scanline.
func (p *PPU) shiftBgRegisters() {
	if !p.maskShowBg {
		return
	}
	p.bgShiftLo <<= 1
	p.bgShiftHi <<= 1
	p.palShiftLo <<= 1
	p.palShiftHi <<= 1
}

// reloadBgShiftRegisters loads the low byte of each 16-bit pattern shift
// register with the freshly fetched tile sliver, and feeds the freshly
// fetched attribute bits into the attribute shift registers. Called at the
// start of each 8-dot tile fetch cycle (dot%8==1).
func (p *PPU) reloadBgShiftRegisters() {
	p.bgShiftLo = (p.bgShiftLo & 0xFF00) | uint16(p.nextBgTileLo)
	p.bgShiftHi = (p.bgShiftHi & 0xFF00) | uint16(p.nextBgTileHi)

	p.palShiftLo &= 0xFF00
	p.palShiftHi &= 0xFF00
	if p.nextBgPalette&0x01 != 0 {
		p.palShiftLo |= 0xFF
	}
	if p.nextBgPalette&0x02 != 0 {
		p.palShiftHi |= 0xFF
	}
}

// fetchBgTileData performs the four two-dot-apart memory accesses that make
// up one background tile fetch (nametable byte, attribute byte, pattern low
// plane, pattern high plane), dispatched by the low 3 bits of the current
// dot.
func (p *PPU) fetchBgTileData() {
	switch p.dot() % 8 {
	case 1:
		p.reloadBgShiftRegisters()
		p.nextNTByte = p.readVRAM(p.ntAddr())
	case 3:
		attrByte := p.readVRAM(p.attrAddr())
		shift := uint8(0)
		if p.v&0x02 != 0 {
			shift += 2
		}
		if p.v&0x40 != 0 {
			shift += 4
		}
		p.nextBgPalette = (attrByte >> shift) & 0x03
	case 5:
		base := uint16(0)
		if p.ctrlBgPatternTable {
			base = 0x1000
		}
		fineY := (p.v >> 12) & 0x07
		p.tileSliverAddr = base + uint16(p.nextNTByte)*16 + fineY
		p.nextBgTileLo = p.readVRAM(p.tileSliverAddr)
	case 7:
		p.nextBgTileHi = p.readVRAM(p.tileSliverAddr + 8)
		p.incrementScrollXCoarse()
	}
}

// bgPixel returns the palette index (0-15, including the universal
// background entry at multiples of 4) selected by the current fine-X
// position, or 0 if background rendering is disabled or suppressed in the
// leftmost 8 pixels.
func (p *PPU) bgPixel() uint8 {
	if !p.maskShowBg {
		return 0
	}
	if p.dot() < 9 && !p.maskShowBgLeft {
		return 0
	}
	shift := 15 - p.fineX
	lo := uint8(p.bgShiftLo>>shift) & 1
	hi := uint8(p.bgShiftHi>>shift) & 1
	pixel := lo | hi<<1
	if pixel == 0 {
		return 0
	}
	palLo := uint8(p.palShiftLo>>shift) & 1
	palHi := uint8(p.palShiftHi>>shift) & 1
	palette := palLo | palHi<<1
	return palette<<2 | pixel
}
