package cartridge

import "nescore/internal/bus"

// nrom implements mapper 0: 16 or 32 KiB of fixed PRG ROM (a 16 KiB image is
// mirrored across both $8000 and $C000), 8 KiB of CHR ROM or RAM, and 8 KiB
// of PRG RAM at $6000-$7FFF. No bank switching of any kind.
type nrom struct {
	prg      []uint8
	chr      []uint8
	chrIsRAM bool
	prgRAM   [0x2000]uint8
	mirror   Mirror
	// extraNT backs four-screen mirroring carts, which need a second 2KB
	// of nametable RAM beyond the console's own CIRAM.
	extraNT [0x800]uint8
}

func newNROM(prg, chr []uint8, chrIsRAM bool, mirror Mirror) *nrom {
	return &nrom{prg: prg, chr: chr, chrIsRAM: chrIsRAM, mirror: mirror}
}

func (m *nrom) CPURead(b *bus.Bus, addr uint16) uint8 {
	switch {
	case addr >= 0x8000:
		off := addr - 0x8000
		if len(m.prg) == 0x4000 {
			off &= 0x3FFF
		} else {
			off &= 0x7FFF
		}
		if int(off) < len(m.prg) {
			return m.prg[off]
		}
		return 0
	case addr >= 0x6000:
		return m.prgRAM[addr-0x6000]
	default:
		return 0
	}
}

func (m *nrom) CPUWrite(b *bus.Bus, addr uint16, data uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		m.prgRAM[addr-0x6000] = data
	}
	// Writes into the ROM range have no effect on a fixed-banking cart.
}

// nametableAddr resolves a PPU address in the $2000-$3EFF range to a byte
// index into either the console's CIRAM or, for four-screen carts, a
// combination of CIRAM and cartridge-local extra RAM.
func (m *nrom) nametableAddr(addr uint16) (extra bool, index uint16) {
	rel := addr & 0x0FFF
	quadrant := rel >> 10
	offset := rel & 0x3FF

	switch m.mirror {
	case MirrorVertical:
		return false, (quadrant&1)*0x400 + offset
	case MirrorFourScreen:
		// Quadrants 0,1 live in CIRAM; 2,3 live in the cart's extra RAM.
		if quadrant < 2 {
			return false, quadrant*0x400 + offset
		}
		return true, (quadrant-2)*0x400 + offset
	default: // MirrorHorizontal
		return false, (quadrant>>1)*0x400 + offset
	}
}

func (m *nrom) PPURead(b *bus.Bus, addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		if int(addr) < len(m.chr) {
			return m.chr[addr]
		}
		return 0
	case addr < 0x3F00:
		extra, idx := m.nametableAddr(addr)
		if extra {
			return m.extraNT[idx]
		}
		return b.CIRAM[idx]
	default:
		return 0
	}
}

func (m *nrom) PPUWrite(b *bus.Bus, addr uint16, data uint8) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		if m.chrIsRAM && int(addr) < len(m.chr) {
			m.chr[addr] = data
		}
	case addr < 0x3F00:
		extra, idx := m.nametableAddr(addr)
		if extra {
			m.extraNT[idx] = data
		} else {
			b.CIRAM[idx] = data
		}
	}
}
