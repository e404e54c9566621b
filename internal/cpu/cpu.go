// Package cpu implements the Ricoh 2A03-derived CPU: the 6502 core's
// registers, addressing modes and opcode dispatch, wrapped in the
// cycle-exact phase_one/phase_two contract that drives the PPU and APU in
// lockstep with every bus access.
package cpu

import (
	"nescore/internal/apu"
	"nescore/internal/bus"
	"nescore/internal/cartridge"
	"nescore/internal/input"
	"nescore/internal/ppu"
)

// Processor status flag bits.
const (
	flagCarry    uint8 = 1 << 0
	flagZero     uint8 = 1 << 1
	flagIRQDis   uint8 = 1 << 2
	flagDecimal  uint8 = 1 << 3
	flagBreak    uint8 = 1 << 4
	flagUnused   uint8 = 1 << 5
	flagOverflow uint8 = 1 << 6
	flagNegative uint8 = 1 << 7
)

// Interrupt vector addresses.
const (
	vectorNMI   uint16 = 0xFFFA
	vectorReset uint16 = 0xFFFC
	vectorIRQ   uint16 = 0xFFFE
)

// CPU is the console's 6502-derived processor: registers, 2 KiB of
// console-internal RAM, and the PPU/APU/cartridge/controller wiring every
// memory access drives.
type CPU struct {
	b     *bus.Bus
	cart  cartridge.Cartridge
	ppu   *ppu.PPU
	apu   *apu.APU
	port1 *input.Controller
	port2 *input.Controller

	ram [0x800]uint8

	A, X, Y uint8
	PS      uint8
	SP      uint8
	PC      uint16

	effectiveOperand uint16
	shouldBranch     bool

	ignoreIRQChange bool
	ignoreNMIChange bool
	prevLineNMILow  bool
	signalIRQ       bool
	signalNMI       bool
	shouldInterrupt bool
	isInterrupt     bool

	cycleCount uint64
}

// New constructs a CPU wired to the shared bus, cartridge, PPU, APU and the
// two controller ports, then runs the power-on reset sequence.
func New(b *bus.Bus, cart cartridge.Cartridge, p *ppu.PPU, a *apu.APU, port1, port2 *input.Controller) *CPU {
	c := &CPU{b: b, cart: cart, ppu: p, apu: a, port1: port1, port2: port2}
	c.resetState(true)
	return c
}

// CycleCount returns the number of CPU cycles executed so far.
func (c *CPU) CycleCount() uint64 { return c.cycleCount }

func (c *CPU) lineIRQLow() bool { return c.b.LineIRQLow != 0 }
func (c *CPU) lineNMILow() bool { return c.b.LineNMILow }

// phase_one runs before the data-bus transaction of every mem_read/mem_write:
// it advances the cycle counter, runs the PPU two dots, and advances the
// APU's frame-sequencer divider.
func (c *CPU) phaseOne() {
	c.cycleCount++

	c.ppu.ExecuteCycle()
	c.ppu.ExecuteCycle()

	c.apu.ProcessFramePhase()

	c.shouldInterrupt = c.signalIRQ || c.signalNMI
}

// phase_two runs after the data-bus transaction: one more PPU dot, one more
// APU frame-divider tick, one APU audio tick, and IRQ/NMI re-polling.
func (c *CPU) phaseTwo() {
	c.ppu.ExecuteCycle()

	c.apu.ProcessFramePhase()
	c.apu.Tick(c.cycleCount%2 != 0)

	if !c.ignoreIRQChange {
		c.signalIRQ = c.lineIRQLow() && c.PS&flagIRQDis == 0
	}
	if !c.ignoreNMIChange {
		c.signalNMI = c.signalNMI || (c.lineNMILow() && !c.prevLineNMILow)
		c.prevLineNMILow = c.lineNMILow()
	}
}

func (c *CPU) strobeControllers(data uint8) {
	strobe := data&0x01 != 0
	c.port1.SetStrobe(strobe)
	c.port2.SetStrobe(strobe)
}

// readIOReg services a CPU read of the $4000-$401F IO register block
// (already demapped to 0-0x1F).
func (c *CPU) readIOReg(addr uint8) uint8 {
	switch addr {
	case 0x15:
		return c.apu.ReadRegStatus()
	case 0x16:
		return c.port1.ReadBit()
	case 0x17:
		return c.port2.ReadBit()
	default:
		return 0
	}
}

// writeIOReg services a CPU write to the $4000-$401F IO register block.
func (c *CPU) writeIOReg(addr uint8, data uint8) {
	sub := addr % 4
	switch addr / 4 {
	case 0:
		c.apu.WriteRegPulse(sub, data, true)
	case 1:
		c.apu.WriteRegPulse(sub, data, false)
	case 2:
		c.apu.WriteRegTriangle(sub, data)
	case 3:
		c.apu.WriteRegNoise(sub, data)
	case 5:
		switch addr % 4 {
		case 0:
			c.execOAMDMA(data)
		case 1:
			c.apu.WriteRegStatus(data)
		case 2:
			c.strobeControllers(data)
		case 3:
			c.apu.WriteRegFrame(data)
		}
	}
}

// memHW identifies which piece of hardware a CPU address decodes to.
type memHW int

const (
	memRAM memHW = iota
	memPPUReg
	memIOReg
	memCart
)

// parseAddr splits a 16-bit CPU address into a hardware region and its
// address within that region, per the console's fixed bus layout.
func parseAddr(addr uint16) (memHW, uint16) {
	switch addr / 0x1000 {
	case 0x0, 0x1:
		return memRAM, addr % 0x800
	case 0x2, 0x3:
		return memPPUReg, addr % 8
	default:
		if addr < 0x4020 {
			return memIOReg, (addr - 0x4000) % 0x20
		}
		return memCart, addr
	}
}

// memRead performs a CPU memory read, wrapped in the phase_one/phase_two
// cycle-tick contract.
func (c *CPU) memRead(addr uint16) uint8 {
	c.phaseOne()

	var data uint8
	hw, hwAddr := parseAddr(addr)
	switch hw {
	case memRAM:
		data = c.ram[hwAddr]
	case memPPUReg:
		data = c.ppu.ReadReg(uint8(hwAddr))
	case memIOReg:
		data = c.readIOReg(uint8(hwAddr))
	case memCart:
		data = c.cart.CPURead(c.b, hwAddr)
	}

	c.phaseTwo()
	return data
}

// memWrite performs a CPU memory write, wrapped in the same contract.
func (c *CPU) memWrite(addr uint16, data uint8) {
	c.phaseOne()

	hw, hwAddr := parseAddr(addr)
	switch hw {
	case memRAM:
		c.ram[hwAddr] = data
	case memPPUReg:
		c.ppu.WriteReg(uint8(hwAddr), data)
	case memIOReg:
		c.writeIOReg(uint8(hwAddr), data)
	case memCart:
		c.cart.CPUWrite(c.b, hwAddr, data)
	}

	c.phaseTwo()
}

// execOAMDMA performs the $4014 OAM DMA transfer: a dummy PC read, an extra
// dummy read on an odd cycle, then 256 read/write pairs copying one page of
// CPU memory into OAMDATA.
func (c *CPU) execOAMDMA(data uint8) {
	c.memRead(c.PC)
	if c.cycleCount%2 != 0 {
		c.memRead(c.PC)
	}

	for i := uint16(0); i < 0x100; i++ {
		value := c.memRead(uint16(data)<<8 | i)
		c.memWrite(0x2004, value)
	}
}

func (c *CPU) effectiveSP() uint16 {
	return 0x100 | uint16(c.SP)
}

func (c *CPU) assignZNFlags(data uint8) {
	c.PS &^= flagZero | flagNegative
	if data == 0 {
		c.PS |= flagZero
	}
	if data&0x80 != 0 {
		c.PS |= flagNegative
	}
}

// resetState applies the CPU's power-up (or reset-button) initial state,
// running the reset sequence's three dummy stack reads before loading PC
// from the reset vector.
func (c *CPU) resetState(powerCycled bool) {
	if powerCycled {
		c.A = 0
		c.X = 0
		c.Y = 0
		c.PS = flagBreak | flagUnused
		c.SP = 0
		c.PC = 0
	}

	c.memRead(c.effectiveSP())
	c.SP--

	c.memRead(c.effectiveSP())
	c.SP--

	c.memRead(c.effectiveSP())
	c.SP--

	c.PS |= flagIRQDis
	lsb := c.memRead(vectorReset)
	msb := c.memRead(vectorReset + 1)
	c.PC = uint16(msb)<<8 | uint16(lsb)
}

// Reset performs a soft (reset-button) reset.
func (c *CPU) Reset() {
	c.resetState(false)
}

// performBranch executes the extra cycles of a taken branch: an
// interrupt-poll-suppressed dummy read at PC, the signed displacement, and
// an extra dummy read at the wrong-page address on a page crossing.
func (c *CPU) performBranch() {
	displacement := int(int8(uint8(c.effectiveOperand)))

	lsb := uint8(c.PC)
	msb := uint8(c.PC >> 8)

	c.ignoreIRQChange = true
	c.ignoreNMIChange = true
	c.memRead(c.PC)
	c.ignoreIRQChange = false
	c.ignoreNMIChange = false

	newPC := uint16(int(c.PC) + displacement)

	if c.PC/0x100 != newPC/0x100 {
		wrongLsb := lsb + uint8(displacement)
		c.memRead(uint16(msb)<<8 | uint16(wrongLsb))
	}

	c.PC = newPC
}

// ExecuteInstruction runs exactly one machine instruction: fetch, addressing,
// execute, optional branch, then an optional hardware-entry BRK if an
// interrupt was polled pending at the instruction's last cycle.
func (c *CPU) ExecuteInstruction() {
	opcode := c.memRead(c.PC)
	c.PC++
	dispatchTable[opcode](c)

	if c.shouldInterrupt {
		c.isInterrupt = true
		c.fetchOperand(modeImplied)
		c.opBRK(modeImplied)
		c.isInterrupt = false
	}
}
