package window

import (
	"math"
	"time"
)

// SampleRate is the audio context rate every cue is synthesized at.
const SampleRate = 48000

// tone describes a short square-ish beep with a linear pitch sweep.
type tone struct {
	from, to float64 // Hz
	length   time.Duration
	volume   float64 // 0..1
}

var (
	jumpTone     = tone{from: 520, to: 880, length: 90 * time.Millisecond, volume: 0.25}
	gameOverTone = tone{from: 330, to: 110, length: 420 * time.Millisecond, volume: 0.35}
	startTone    = tone{from: 660, to: 660, length: 60 * time.Millisecond, volume: 0.2}
)

// pcm renders the tone as 16-bit little-endian stereo samples.
func (t tone) pcm(rate int) []byte {
	n := int(float64(rate) * t.length.Seconds())
	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := t.from + (t.to-t.from)*p
		phase += 2 * math.Pi * freq / float64(rate)

		// Soft square: a clipped sine, faded out over the last fifth.
		v := math.Max(-1, math.Min(1, 3*math.Sin(phase)))
		if p > 0.8 {
			v *= (1 - p) / 0.2
		}
		s := int16(v * t.volume * math.MaxInt16)

		out[4*i] = byte(s)
		out[4*i+1] = byte(s >> 8)
		out[4*i+2] = byte(s)
		out[4*i+3] = byte(s >> 8)
	}
	return out
}
