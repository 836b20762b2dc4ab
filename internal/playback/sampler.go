package playback

import "time"

// DefaultMeterInterval is the sampling period of the metering ticker (10 Hz).
const DefaultMeterInterval = 100 * time.Millisecond

// sampler is a cancellable repeating ticker bound to the Playing state.
// It is owned by the engine goroutine; its channel is nil while stopped so
// the engine never observes a tick outside Playing.
type sampler struct {
	interval time.Duration
	ticker   *time.Ticker
}

func newSampler(interval time.Duration) *sampler {
	if interval <= 0 {
		interval = DefaultMeterInterval
	}
	return &sampler{interval: interval}
}

func (s *sampler) start() {
	if s.ticker != nil {
		s.ticker.Reset(s.interval)
		return
	}
	s.ticker = time.NewTicker(s.interval)
}

func (s *sampler) stop() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
}

func (s *sampler) running() bool {
	return s.ticker != nil
}

// C returns the tick channel, or nil when stopped.
func (s *sampler) C() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}
