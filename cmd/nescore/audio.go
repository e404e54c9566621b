package main

import (
	"encoding/binary"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"nescore/internal/console"
)

const sampleRateHz = 48000

// audioStream is an io.Reader adapter around the core's per-frame mono
// sample buffer, resampling it from the core's variable CPU-clock rate to
// the audio context's fixed output rate and duplicating it to stereo
// 16-bit little-endian PCM, the format ebiten's audio.Player expects.
//
// The core explicitly leaves resampling and PCM framing to the host (see
// SPEC_FULL.md DOMAIN STACK); this is that host-side responsibility.
type audioStream struct {
	mu      sync.Mutex
	pending []byte
}

func newAudioStream() *audioStream {
	return &audioStream{}
}

// PushFrame resamples one frame's worth of core samples to the output rate
// and appends the resulting PCM bytes to the pending buffer for Read to
// drain.
func (s *audioStream) PushFrame(samples []float32) {
	if len(samples) == 0 {
		return
	}

	outLen := int(float64(len(samples)) * sampleRateHz / console.CPUClockSpeedHz)
	if outLen < 1 {
		outLen = 1
	}

	buf := make([]byte, outLen*4)
	for i := 0; i < outLen; i++ {
		srcPos := float64(i) * float64(len(samples)-1) / float64(max(outLen-1, 1))
		lo := int(srcPos)
		hi := min(lo+1, len(samples)-1)
		frac := srcPos - float64(lo)
		sample := samples[lo]*float32(1-frac) + samples[hi]*float32(frac)

		v := int16(sample * 32767)
		binary.LittleEndian.PutUint16(buf[i*4+0:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}

	s.mu.Lock()
	s.pending = append(s.pending, buf...)
	s.mu.Unlock()
}

// Read implements io.Reader, draining whatever resampled PCM is pending and
// padding with silence when the core has fallen behind the audio
// callback's demand.
func (s *audioStream) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	if n < len(p) {
		for i := n; i < len(p); i++ {
			p[i] = 0
		}
		n = len(p)
	}
	return n, nil
}

type audioOutput struct {
	stream *audioStream
	player *audio.Player
}

func newAudioOutput() *audioOutput {
	ctx := audio.NewContext(sampleRateHz)
	stream := newAudioStream()
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		log.Fatalf("nescore: failed to create audio player: %v", err)
	}
	player.SetBufferSize(0)
	player.Play()
	return &audioOutput{stream: stream, player: player}
}

func (a *audioOutput) PushFrame(samples []float32) {
	a.stream.PushFrame(samples)
}
