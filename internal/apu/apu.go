// Package apu implements the four-channel audio processing unit: its frame
// sequencer, register interface, and sample mixer. DMC is explicitly out of
// scope and is stubbed at a constant zero contribution to the mix.
package apu

import "nescore/internal/bus"

const (
	frameDivPeriod          = 89490
	masterCyclesPerCPUPhase = 6
)

// APU hosts the four channels, the frame sequencer that drives their
// quarter/half-frame clocks, and the mixer that composes their outputs into
// one sample pushed to the shared bus per CPU cycle.
type APU struct {
	b *bus.Bus

	pulse1   *Pulse
	pulse2   *Pulse
	triangle Triangle
	noise    *Noise

	frameSuppressIRQ bool
	frameAltMode     bool
	frameDivCtr      uint32
	frameSeq         uint8

	lookupPulse [31]float32
	lookupTND   [16][16][128]float32
}

// New constructs an APU wired to the shared bus it pushes samples and
// raises frame-IRQs on.
func New(b *bus.Bus) *APU {
	a := &APU{
		b:      b,
		pulse1: NewPulse(true),
		pulse2: NewPulse(false),
		noise:  NewNoise(),
	}
	for sum := 1; sum < 31; sum++ {
		a.lookupPulse[sum] = float32(95.88 / (100.0 + 8128.0/float64(sum)))
	}
	for t := 0; t < 16; t++ {
		for n := 0; n < 16; n++ {
			for d := 0; d < 128; d++ {
				if t == 0 && n == 0 && d == 0 {
					continue
				}
				a.lookupTND[t][n][d] = float32(159.79 / (100.0 + 1.0/(float64(t)/8227.0+float64(n)/12241.0+float64(d)/22638.0)))
			}
		}
	}
	return a
}

func (a *APU) tickFrameQuarter() {
	a.pulse1.TickFrameQuarter()
	a.pulse2.TickFrameQuarter()
	a.triangle.TickFrameQuarter()
	a.noise.TickFrameQuarter()
}

func (a *APU) tickFrameHalf() {
	a.pulse1.TickFrameHalf()
	a.pulse2.TickFrameHalf()
	a.triangle.TickFrameHalf()
	a.noise.TickFrameHalf()
}

// ProcessFramePhase advances the frame-sequencer divider by one CPU phase's
// worth of master cycles (6). Called twice per CPU cycle, once from
// phase_one and once from phase_two, matching the bus's per-phase ticking
// contract.
func (a *APU) ProcessFramePhase() {
	a.frameDivCtr += masterCyclesPerCPUPhase
	if a.frameDivCtr < frameDivPeriod {
		return
	}
	a.frameDivCtr -= frameDivPeriod

	if a.frameSeq < 4 {
		a.tickFrameQuarter()

		wantHalf := uint8(1)
		if a.frameAltMode {
			wantHalf = 0
		}
		if a.frameSeq%2 == wantHalf {
			a.tickFrameHalf()
		}

		if a.frameSeq == 3 && !a.frameAltMode && !a.frameSuppressIRQ {
			a.b.LineIRQLow |= bus.IRQSrcFrame
		}
	}

	steps := uint8(4)
	if a.frameAltMode {
		steps = 5
	}
	a.frameSeq = (a.frameSeq + 1) % steps
}

// Tick advances channel timers and pushes one mixed sample to the shared
// bus's back audio buffer. oddCycle gates the pulse/noise channels, which
// only tick on odd CPU cycles; the triangle ticks every cycle.
func (a *APU) Tick(oddCycle bool) {
	if oddCycle {
		a.pulse1.Tick()
		a.pulse2.Tick()
		a.noise.Tick()
	}
	a.triangle.Tick()

	pulseSum := a.pulse1.Vol() + a.pulse2.Vol()
	pulseOut := a.lookupPulse[pulseSum]
	tndOut := a.lookupTND[a.triangle.Vol()][a.noise.Vol()][0] // DMC stubbed at 0

	a.b.PushSample(pulseOut + tndOut)
}

// WriteRegPulse dispatches a write to one of the two pulse channels'
// four-register block ($4000-$4003 / $4004-$4007). sub must be < 4.
func (a *APU) WriteRegPulse(sub uint8, data uint8, first bool) {
	p := a.pulse2
	if first {
		p = a.pulse1
	}
	switch sub {
	case 0:
		p.WriteA(data)
	case 1:
		p.WriteB(data)
	case 2:
		p.WriteC(data)
	case 3:
		p.WriteD(data)
	}
}

// WriteRegTriangle dispatches a write to the triangle's register block
// ($4008-$400B). sub must be < 4.
func (a *APU) WriteRegTriangle(sub uint8, data uint8) {
	switch sub {
	case 0:
		a.triangle.WriteA(data)
	case 1:
		a.triangle.WriteB(data)
	case 2:
		a.triangle.WriteC(data)
	case 3:
		a.triangle.WriteD(data)
	}
}

// WriteRegNoise dispatches a write to the noise channel's register block
// ($400C-$400F).
func (a *APU) WriteRegNoise(sub uint8, data uint8) {
	switch sub {
	case 0:
		a.noise.WriteA(data)
	case 1:
		a.noise.WriteB(data)
	case 2:
		a.noise.WriteC(data)
	case 3:
		a.noise.WriteD(data)
	}
}

// ReadRegStatus services a $4015 read: channel-active bits plus the two
// IRQ flags, clearing the frame-IRQ flag as a read side effect.
func (a *APU) ReadRegStatus() uint8 {
	irqFrame := a.b.LineIRQLow&bus.IRQSrcFrame != 0
	irqDMC := a.b.LineIRQLow&bus.IRQSrcDMC != 0

	value := boolBit(a.pulse1.IsActive(), 0) |
		boolBit(a.pulse2.IsActive(), 1) |
		boolBit(a.triangle.IsActive(), 2) |
		boolBit(a.noise.IsActive(), 3) |
		boolBit(irqFrame, 6) |
		boolBit(irqDMC, 7)

	a.b.LineIRQLow &^= bus.IRQSrcFrame
	return value
}

// WriteRegStatus services a $4015 write: per-channel enable bits, clearing
// the DMC-IRQ flag as a write side effect.
func (a *APU) WriteRegStatus(data uint8) {
	a.pulse1.SetEnabled(data&0x01 != 0)
	a.pulse2.SetEnabled(data&0x02 != 0)
	a.triangle.SetEnabled(data&0x04 != 0)
	a.noise.SetEnabled(data&0x08 != 0)
	a.b.LineIRQLow &^= bus.IRQSrcDMC
}

// WriteRegFrame services a $4017 write: sequencer mode and IRQ-inhibit,
// resetting the sequencer immediately and, in 5-step mode, immediately
// clocking one quarter- and one half-frame step.
func (a *APU) WriteRegFrame(data uint8) {
	a.frameSuppressIRQ = data&0x40 != 0
	a.frameAltMode = data&0x80 != 0
	if a.frameSuppressIRQ {
		a.b.LineIRQLow &^= bus.IRQSrcFrame
	}
	a.frameDivCtr = 0
	a.frameSeq = 0
	if a.frameAltMode {
		a.tickFrameQuarter()
		a.tickFrameHalf()
	}
}

func boolBit(v bool, shift uint) uint8 {
	if v {
		return 1 << shift
	}
	return 0
}
