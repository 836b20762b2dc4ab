package player

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep/v2"
)

var _ beep.Streamer = (*powerTap)(nil)

// powerTap passes samples through and records the power of the last block
// pulled by the speaker.
type powerTap struct {
	s     beep.Streamer
	level atomic.Uint64 // math.Float64bits of dBFS
}

func newPowerTap(s beep.Streamer) *powerTap {
	t := &powerTap{s: s}
	t.level.Store(math.Float64bits(math.Inf(-1)))
	return t
}

// Stream implements beep.Streamer.
func (t *powerTap) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = t.s.Stream(samples)
	if n > 0 {
		t.level.Store(math.Float64bits(Decibels(samples[:n])))
	}
	return n, ok
}

// Err implements beep.Streamer.
func (t *powerTap) Err() error {
	return t.s.Err()
}

// Level returns the last measured power in dBFS.
func (t *powerTap) Level() float64 {
	return math.Float64frombits(t.level.Load())
}

// Decibels returns the mean-square power of stereo samples in dBFS.
// A full-scale square wave is 0 dB; silence is negative infinity.
func Decibels(samples [][2]float64) float64 {
	if len(samples) == 0 {
		return math.Inf(-1)
	}
	var sum float64
	for _, s := range samples {
		sum += (s[0]*s[0] + s[1]*s[1]) / 2
	}
	return 10 * math.Log10(sum/float64(len(samples)))
}
