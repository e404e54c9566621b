package input

import "testing"

func TestNewControllerHasNoButtonsHeld(t *testing.T) {
	c := New()
	c.SetStrobe(true)
	if bit := c.ReadBit(); bit != 0 {
		t.Fatalf("ReadBit with no buttons held = %d, want 0", bit)
	}
}

func TestSetButtonIsReflectedWhileStrobeHigh(t *testing.T) {
	c := New()
	c.SetStrobe(true)
	c.SetButton(A, true)

	if bit := c.ReadBit(); bit != 1 {
		t.Fatalf("ReadBit for A pressed = %d, want 1", bit)
	}
	c.SetButton(A, false)
	if bit := c.ReadBit(); bit != 0 {
		t.Fatalf("ReadBit after releasing A = %d, want 0", bit)
	}
}

func TestStrobeLowShiftsOutAllEightButtons(t *testing.T) {
	c := New()
	c.SetButton(A, true)
	c.SetButton(Select, true)
	c.SetButton(Right, true)

	c.SetStrobe(true)
	c.SetStrobe(false)

	want := []uint8{1, 0, 1, 0, 0, 0, 0, 1} // A, B, Select, Start, Up, Down, Left, Right
	for i, w := range want {
		if got := c.ReadBit(); got != w {
			t.Fatalf("bit %d = %d, want %d", i, got, w)
		}
	}
}

func TestReadPastEighthBitReturnsOne(t *testing.T) {
	c := New()
	c.SetStrobe(true)
	c.SetStrobe(false)

	for i := 0; i < 8; i++ {
		c.ReadBit()
	}
	for i := 0; i < 3; i++ {
		if got := c.ReadBit(); got != 1 {
			t.Fatalf("read %d past exhaustion = %d, want 1", i, got)
		}
	}
}

func TestStrobeHighContinuouslyReloadsButtonA(t *testing.T) {
	c := New()
	c.SetStrobe(true)

	c.SetButton(A, true)
	if got := c.ReadBit(); got != 1 {
		t.Fatalf("ReadBit while strobe high after pressing A = %d, want 1", got)
	}
	c.SetButton(A, false)
	if got := c.ReadBit(); got != 0 {
		t.Fatalf("ReadBit while strobe high after releasing A = %d, want 0", got)
	}
}
