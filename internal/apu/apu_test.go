package apu

import (
	"nescore/internal/bus"
	"testing"
)

func TestStatusReflectsChannelEnable(t *testing.T) {
	b := bus.New()
	a := New(b)

	a.WriteRegStatus(0x01) // enable pulse 1 only
	a.WriteRegPulse(3, 0x08, true) // load pulse1's length counter, non-zero

	if status := a.ReadRegStatus(); status&0x01 == 0 {
		t.Fatalf("status bit 0 (pulse1 active) should be set, got %#02x", status)
	}
}

func TestWriteStatusDisablingChannelSilencesLengthCounter(t *testing.T) {
	b := bus.New()
	a := New(b)

	a.WriteRegStatus(0x01)
	a.WriteRegPulse(3, 0x08, true)
	a.WriteRegStatus(0x00)

	if status := a.ReadRegStatus(); status&0x01 != 0 {
		t.Fatalf("disabling pulse1 should clear its active bit, status=%#02x", status)
	}
}

func TestFrameSequencerRaisesIRQInFourStepMode(t *testing.T) {
	b := bus.New()
	a := New(b)
	a.WriteRegFrame(0x00) // 4-step mode, IRQ enabled

	for i := 0; i < frameDivPeriod*4/masterCyclesPerCPUPhase+10; i++ {
		a.ProcessFramePhase()
	}

	if b.LineIRQLow&bus.IRQSrcFrame == 0 {
		t.Fatalf("frame IRQ line should be asserted after a full 4-step sequence")
	}
}

func TestFrameSequencerSuppressedIRQNeverAsserts(t *testing.T) {
	b := bus.New()
	a := New(b)
	a.WriteRegFrame(0x40) // 4-step mode, IRQ inhibited

	for i := 0; i < frameDivPeriod*4/masterCyclesPerCPUPhase+10; i++ {
		a.ProcessFramePhase()
	}

	if b.LineIRQLow&bus.IRQSrcFrame != 0 {
		t.Fatalf("frame IRQ should not assert while inhibited")
	}
}

func TestWriteRegStatusClearsDMCIRQ(t *testing.T) {
	b := bus.New()
	a := New(b)
	b.LineIRQLow |= bus.IRQSrcDMC

	a.WriteRegStatus(0x00)

	if b.LineIRQLow&bus.IRQSrcDMC != 0 {
		t.Fatalf("writing $4015 should clear the DMC IRQ flag")
	}
}

func TestReadRegStatusClearsFrameIRQ(t *testing.T) {
	b := bus.New()
	a := New(b)
	b.LineIRQLow |= bus.IRQSrcFrame

	a.ReadRegStatus()

	if b.LineIRQLow&bus.IRQSrcFrame != 0 {
		t.Fatalf("reading $4015 should clear the frame IRQ flag")
	}
}
