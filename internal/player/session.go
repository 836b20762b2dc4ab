package player

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is used when no sample rate is configured.
const DefaultSampleRate = 44100

// Session owns the process-wide audio device. It is opened once at startup
// and closed at teardown; every Output plays through it.
type Session struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	closed     bool
}

// OpenSession initializes the speaker with the given sample rate and buffer length.
func OpenSession(sampleRate int, buffer time.Duration) (*Session, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if buffer <= 0 {
		buffer = time.Second / 10
	}

	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(buffer)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Session{sampleRate: sr}, nil
}

// SampleRate returns the device sample rate. Tracks are resampled to it.
func (s *Session) SampleRate() beep.SampleRate {
	return s.sampleRate
}

// Close clears any playing stream and releases the audio device.
// Safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}
