package cpu

// addrMode identifies a 6502 addressing mode. Each mode's fetch method
// leaves the effective address (or, for Relative, the branch displacement)
// in effectiveOperand and
// performs every dummy read real hardware performs along the way.
type addrMode int

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeRelative
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeIndirectX
	modeIndirectY
	modeIndirectYStore
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteXStore
	modeAbsoluteY
	modeAbsoluteYStore
	modeIndirect
)

// fetchOperand resolves the addressing mode for the instruction whose
// opcode byte was just consumed, leaving the address in effectiveOperand
// (for Immediate, the address of the operand byte; for Relative, the
// displacement value itself).
func (c *CPU) fetchOperand(mode addrMode) {
	switch mode {
	case modeImplied, modeAccumulator:
		c.memRead(c.PC)
	case modeImmediate:
		c.effectiveOperand = c.PC
		c.PC++
	case modeRelative:
		c.effectiveOperand = uint16(c.memRead(c.PC))
		c.PC++
	case modeZeroPage:
		c.effectiveOperand = uint16(c.memRead(c.PC))
		c.PC++
	case modeZeroPageX:
		zp := c.memRead(c.PC)
		c.PC++
		c.memRead(uint16(zp))
		c.effectiveOperand = uint16(zp + c.X)
	case modeZeroPageY:
		zp := c.memRead(c.PC)
		c.PC++
		c.memRead(uint16(zp))
		c.effectiveOperand = uint16(zp + c.Y)
	case modeAbsolute:
		lsb := c.memRead(c.PC)
		c.PC++
		msb := c.memRead(c.PC)
		c.PC++
		c.effectiveOperand = uint16(msb)<<8 | uint16(lsb)
	case modeAbsoluteX:
		c.fetchAbsoluteIndexed(c.X, false)
	case modeAbsoluteXStore:
		c.fetchAbsoluteIndexed(c.X, true)
	case modeAbsoluteY:
		c.fetchAbsoluteIndexed(c.Y, false)
	case modeAbsoluteYStore:
		c.fetchAbsoluteIndexed(c.Y, true)
	case modeIndirect:
		ptrLo := c.memRead(c.PC)
		c.PC++
		ptrHi := c.memRead(c.PC)
		c.PC++
		ptr := uint16(ptrHi)<<8 | uint16(ptrLo)
		lsb := c.memRead(ptr)
		msb := c.memRead(uint16(ptrHi)<<8 | uint16(ptrLo+1))
		c.effectiveOperand = uint16(msb)<<8 | uint16(lsb)
	case modeIndirectX:
		zp := c.memRead(c.PC)
		c.PC++
		c.memRead(uint16(zp))
		zp += c.X
		lsb := c.memRead(uint16(zp))
		msb := c.memRead(uint16(zp + 1))
		c.effectiveOperand = uint16(msb)<<8 | uint16(lsb)
	case modeIndirectY:
		c.fetchIndirectY(false)
	case modeIndirectYStore:
		c.fetchIndirectY(true)
	}
}

// fetchAbsoluteIndexed resolves Absolute,X / Absolute,Y. The "safe" variant
// (always true for stores and read-modify-writes) always performs the extra
// cycle at the wrong-page address; the plain read variant only performs it
// when the index crosses a page and performs no extra read otherwise.
func (c *CPU) fetchAbsoluteIndexed(index uint8, safe bool) {
	lsb := c.memRead(c.PC)
	c.PC++
	msb := c.memRead(c.PC)
	c.PC++

	base := uint16(msb)<<8 | uint16(lsb)
	summedLsb := lsb + index
	effective := base + uint16(index)
	crossed := msb != uint8(effective>>8)

	if crossed || safe {
		wrongPage := uint16(msb)<<8 | uint16(summedLsb)
		c.memRead(wrongPage)
	}

	c.effectiveOperand = effective
}

// fetchIndirectY resolves (Indirect),Y analogously to fetchAbsoluteIndexed,
// applied to the zero-page-indirect base address.
func (c *CPU) fetchIndirectY(safe bool) {
	zp := c.memRead(c.PC)
	c.PC++

	lsb := c.memRead(uint16(zp))
	msb := c.memRead(uint16(zp + 1))

	base := uint16(msb)<<8 | uint16(lsb)
	summedLsb := lsb + c.Y
	effective := base + uint16(c.Y)
	crossed := msb != uint8(effective>>8)

	if crossed || safe {
		wrongPage := uint16(msb)<<8 | uint16(summedLsb)
		c.memRead(wrongPage)
	}

	c.effectiveOperand = effective
}

// readOperand reads the value an addressing mode resolved to: the
// accumulator for Accumulator mode, the immediate byte for Immediate, or a
// memory read for everything else.
func (c *CPU) readOperand(mode addrMode) uint8 {
	if mode == modeAccumulator {
		return c.A
	}
	return c.memRead(c.effectiveOperand)
}

// writeOperand writes a value back to the location an addressing mode
// resolved to.
func (c *CPU) writeOperand(mode addrMode, data uint8) {
	if mode == modeAccumulator {
		c.A = data
		return
	}
	c.memWrite(c.effectiveOperand, data)
}
