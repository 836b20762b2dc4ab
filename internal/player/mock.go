// internal/player/mock.go
package player

import (
	"math"
	"sync"
	"time"
)

// Mock is a test double for Output.
type Mock struct {
	mu         sync.Mutex
	source     string
	playing    bool
	stopped    bool
	position   time.Duration
	duration   time.Duration
	power      float64
	playCalls  int
	pauseCalls int
	seekCalls  []time.Duration
	onFinished func(success bool)
}

// NewMock creates a mock output with the given duration and silent power.
func NewMock(source string, duration time.Duration) *Mock {
	return &Mock{
		source:   source,
		duration: duration,
		power:    math.Inf(-1),
	}
}

func (m *Mock) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return
	}
	m.playing = true
	m.playCalls++
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing = false
	m.pauseCalls++
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing = false
	m.stopped = true
}

func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, d)
	m.position = d
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) Power() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.power
}

func (m *Mock) OnFinished(fn func(success bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onFinished = fn
}

// Test helpers

func (m *Mock) Source() string { return m.source }

func (m *Mock) IsPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

func (m *Mock) IsStopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekCalls...)
}

// Advance simulates natural playback progress.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = min(m.position+d, m.duration)
}

func (m *Mock) SetPower(db float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.power = db
}

// Finish simulates the end of the stream, as the speaker callback would.
// Stopped outputs never report completion.
func (m *Mock) Finish(success bool) {
	m.mu.Lock()
	fn := m.onFinished
	stopped := m.stopped
	if success {
		m.playing = false
	}
	m.mu.Unlock()

	if stopped || fn == nil {
		return
	}
	fn(success)
}

// FinishAfterStop fires the completion callback even if the output was
// stopped, simulating a late signal from a replaced handle.
func (m *Mock) FinishAfterStop(success bool) {
	m.mu.Lock()
	fn := m.onFinished
	m.mu.Unlock()
	if fn != nil {
		fn(success)
	}
}

// MockOpener is a test double for Opener. Sources without a registered
// error open as a Mock with the default duration.
type MockOpener struct {
	mu       sync.Mutex
	duration time.Duration
	errs     map[string]error
	opened   []*Mock
}

// NewMockOpener creates an opener whose outputs last duration.
func NewMockOpener(duration time.Duration) *MockOpener {
	return &MockOpener{
		duration: duration,
		errs:     make(map[string]error),
	}
}

func (o *MockOpener) Open(source string) (Output, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.errs[source]; err != nil {
		return nil, err
	}
	m := NewMock(source, o.duration)
	o.opened = append(o.opened, m)
	return m, nil
}

// SetError makes Open fail for source. A nil err clears it.
func (o *MockOpener) SetError(source string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err == nil {
		delete(o.errs, source)
		return
	}
	o.errs[source] = err
}

// Opened returns every output created so far, oldest first.
func (o *MockOpener) Opened() []*Mock {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]*Mock(nil), o.opened...)
}

// Last returns the most recently opened output, or nil.
func (o *MockOpener) Last() *Mock {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.opened) == 0 {
		return nil
	}
	return o.opened[len(o.opened)-1]
}
