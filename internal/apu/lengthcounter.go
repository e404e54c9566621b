package apu

// lengthTable maps the top 5 bits of a channel's register-D write to the
// length counter's reload value.
var lengthTable = [0x20]uint8{
	0x0A, 0xFE, 0x14, 0x02, 0x28, 0x04, 0x50, 0x06,
	0xA0, 0x08, 0x3C, 0x0A, 0x0E, 0x0C, 0x1A, 0x0E,
	0x0C, 0x10, 0x18, 0x12, 0x30, 0x14, 0x60, 0x16,
	0xC0, 0x18, 0x48, 0x1A, 0x10, 0x1C, 0x20, 0x1E,
}

// LengthCounter gates a channel's audibility by duration. halt is owned by
// the channel and passed into TickHalf explicitly (see Envelope).
type LengthCounter struct {
	enabled bool
	clock   uint8
}

// SetEnabled sets the channel-enable bit from $4015. Disabling a channel
// immediately silences its length counter.
func (l *LengthCounter) SetEnabled(v bool) {
	l.enabled = v
	if !l.enabled {
		l.clock = 0
	}
}

// WriteD loads the counter from the table, indexed by the top 5 bits of the
// written byte, but only while the channel is enabled.
func (l *LengthCounter) WriteD(data uint8) {
	if l.enabled {
		l.clock = lengthTable[data>>3]
	}
}

// IsActive reports whether the counter still permits sound output.
func (l *LengthCounter) IsActive() bool {
	return l.clock > 0
}

// TickHalf decrements the counter once per half-frame unless halted.
func (l *LengthCounter) TickHalf(halt bool) {
	if l.clock > 0 && !halt {
		l.clock--
	}
}
