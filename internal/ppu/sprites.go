package ppu

// clearOAMAux resets secondary OAM to $FF, as real hardware does across the
// first 64 dots of sprite evaluation.
func (p *PPU) clearOAMAux() {
	for i := range p.oamAux {
		p.oamAux[i] = 0xFF
	}
}

// performSpriteEvaluation scans primary OAM for sprites visible on the
// scanline about to be rendered, copying up to 8 into secondary OAM and
// setting the overflow flag when a 9th is found. Evaluation happens in one
// shot at dot 256 rather than spread cycle-by-cycle across dots 65-256; the
// resulting secondary OAM contents and overflow flag match hardware for
// every non-pathological case. The documented "diagonal" false
// overflow/no-overflow bug that comes from hardware's failure to reset its
// secondary byte index once 8 sprites are found is not reproduced.
func (p *PPU) performSpriteEvaluation() {
	scanline := p.scanln()
	height := uint16(p.spriteHeight())

	p.clearOAMAux()
	p.spriteZeroInRange = false

	count := uint8(0)
	for n := uint8(0); n < 64; n++ {
		y := p.oam[int(n)*4]
		inRange := scanline >= uint16(y) && scanline < uint16(y)+height
		if !inRange {
			continue
		}
		if count < 8 {
			copy(p.oamAux[count*4:count*4+4], p.oam[n*4:n*4+4])
			if n == 0 {
				p.spriteZeroInRange = true
			}
			count++
		} else {
			p.statSpOverflow = true
			break
		}
	}
	p.spriteCount = count
}

// fetchSpTileData loads the shift registers, attribute latches and X
// counters for every sprite secondary OAM holds, for use on the following
// scanline. Performed once at dot 257 (immediately after the horizontal
// scroll reload) rather than distributed across dots 257-320.
func (p *PPU) fetchSpTileData() {
	scanline := p.scanln()
	height := uint16(p.spriteHeight())

	for i := uint8(0); i < 8; i++ {
		if i >= p.spriteCount {
			p.spShiftLo[i] = 0
			p.spShiftHi[i] = 0
			p.spAttr[i] = 0
			p.spXPos[i] = 0xFF
			continue
		}

		y := p.oamAux[i*4+0]
		tileIdx := p.oamAux[i*4+1]
		attr := p.oamAux[i*4+2]
		x := p.oamAux[i*4+3]

		row := uint16(scanline) - uint16(y)
		flipV := attr&0x80 != 0
		flipH := attr&0x40 != 0
		if flipV {
			row = height - 1 - row
		}

		var base, index uint16
		if height == 16 {
			base = uint16(tileIdx&0x01) * 0x1000
			index = uint16(tileIdx &^ 1)
			if row >= 8 {
				index++
				row -= 8
			}
		} else {
			base = 0
			if p.ctrlSpPatternTable {
				base = 0x1000
			}
			index = uint16(tileIdx)
		}

		addr := base + index*16 + row
		lo := p.readVRAM(addr)
		hi := p.readVRAM(addr + 8)
		if flipH {
			lo = reverseBits(lo)
			hi = reverseBits(hi)
		}

		p.spShiftLo[i] = lo
		p.spShiftHi[i] = hi
		p.spAttr[i] = attr
		p.spXPos[i] = x
	}
}

func reverseBits(v uint8) uint8 {
	v = (v&0xF0)>>4 | (v&0x0F)<<4
	v = (v&0xCC)>>2 | (v&0x33)<<2
	v = (v&0xAA)>>1 | (v&0x55)<<1
	return v
}

// shiftSpRegisters decrements every active sprite's X counter, or shifts its
// pattern registers once the counter has reached the current dot.
func (p *PPU) shiftSpRegisters() {
	if !p.maskShowSp {
		return
	}
	for i := uint8(0); i < 8; i++ {
		if i >= p.spriteCount {
			continue
		}
		if p.spXPos[i] > 0 {
			p.spXPos[i]--
			continue
		}
		p.spShiftLo[i] <<= 1
		p.spShiftHi[i] <<= 1
	}
}

// spPixel returns the palette index, priority (behind background) and
// whether sprite 0 contributed, for the sprite shift register slot that
// wins priority at the current dot.
func (p *PPU) spPixel() (pixel uint8, behind bool, isSpriteZero bool) {
	if !p.maskShowSp {
		return 0, false, false
	}
	if p.dot() < 9 && !p.maskShowSpLeft {
		return 0, false, false
	}
	for i := uint8(0); i < 8; i++ {
		if i >= p.spriteCount || p.spXPos[i] != 0 {
			continue
		}
		lo := (p.spShiftLo[i] >> 7) & 1
		hi := (p.spShiftHi[i] >> 7) & 1
		color := lo | hi<<1
		if color == 0 {
			continue
		}
		attr := p.spAttr[i]
		palette := attr & 0x03
		return palette<<2 | color, attr&0x20 != 0, i == 0 && p.spriteZeroInRange
	}
	return 0, false, false
}
