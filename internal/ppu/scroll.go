package ppu

// incrementScrollXCoarse advances v's coarse-X field, wrapping into the
// horizontal nametable-select bit when coarse-X passes 31.
func (p *PPU) incrementScrollXCoarse() {
	const coarseMask = 0x1F
	if p.v&coarseMask != coarseMask {
		p.v++
	} else {
		p.v &^= coarseMask
		p.v ^= 1 << 10
	}
}

// incrementScrollY advances v's fine-Y field, carrying into coarse-Y and
// then into the vertical nametable-select bit, with the well-known
// out-of-range coarse-Y=30..31 wraparound quirk.
func (p *PPU) incrementScrollY() {
	const fineMask = 0x7000
	if p.v&fineMask != fineMask {
		p.v += 0x1000
		return
	}
	p.v &^= fineMask

	const coarseMask = 0x03E0
	const coarseMax = 29
	coarse := (p.v & coarseMask) >> 5
	if coarse == coarseMax {
		coarse = 0
		p.v ^= 1 << 11
	} else {
		coarse++
	}
	p.v = (p.v &^ coarseMask) | ((coarse << 5) & coarseMask)
}

// reloadScrollXCoarse copies t's horizontal nametable-select bit and
// coarse-X field into v, performed at dot 257 of every rendered scanline.
func (p *PPU) reloadScrollXCoarse() {
	const mask = (1 << 10) | 0x1F
	p.v = (p.v &^ mask) | (p.t & mask)
}

// reloadScrollY copies t's fine-Y, vertical nametable-select, and coarse-Y
// fields into v, performed each dot of the pre-render scanline's 280-304
// window.
func (p *PPU) reloadScrollY() {
	const mask = 0x7000 | (1 << 11) | 0x03E0
	p.v = (p.v &^ mask) | (p.t & mask)
}

// incrementVRAMAddr advances v per a PPUDATA access. While rendering is
// enabled on a rendered scanline, a v increment instead performs the
// ordinary per-dot coarse-X/Y scroll advance (the well-known "$2007 during
// rendering" behavior); otherwise it increments by 1 or 32 per PPUCTRL.
func (p *PPU) incrementVRAMAddr() {
	if p.isRendering() {
		p.incrementScrollXCoarse()
		p.incrementScrollY()
		return
	}
	step := uint16(1)
	if p.ctrlIncBy32 {
		step = 32
	}
	p.v = (p.v + step) &^ (1 << 15)
	p.setVRAMAddrBus(p.v)
}
