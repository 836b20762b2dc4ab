package player

import (
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// beepOutput plays one decoded stream through the shared speaker.
//
// Pipeline: decoder -> resampler (if needed) -> powerTap -> Ctrl -> speaker.
type beepOutput struct {
	mu         sync.Mutex
	streamer   beep.StreamSeekCloser
	file       io.Closer
	format     beep.Format
	ctrl       *beep.Ctrl
	tap        *powerTap
	duration   time.Duration
	started    bool
	stopped    bool
	onFinished func(success bool)
}

func newBeepOutput(streamer beep.StreamSeekCloser, format beep.Format, file io.Closer, deviceRate beep.SampleRate) *beepOutput {
	var s beep.Streamer = streamer
	if deviceRate != 0 && format.SampleRate != deviceRate {
		s = beep.Resample(4, format.SampleRate, deviceRate, streamer)
	}
	tap := newPowerTap(s)

	return &beepOutput{
		streamer: streamer,
		file:     file,
		format:   format,
		tap:      tap,
		ctrl:     &beep.Ctrl{Streamer: tap, Paused: false},
		duration: format.SampleRate.D(streamer.Len()),
	}
}

// Play starts the stream on first call and resumes it afterwards.
func (o *beepOutput) Play() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stopped {
		return
	}

	if !o.started {
		o.started = true
		speaker.Play(beep.Seq(o.ctrl, beep.Callback(o.ended)))
		return
	}

	speaker.Lock()
	o.ctrl.Paused = false
	speaker.Unlock()
}

// Pause pauses the stream, keeping its position.
func (o *beepOutput) Pause() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stopped || !o.started {
		return
	}
	speaker.Lock()
	o.ctrl.Paused = true
	speaker.Unlock()
}

// Stop removes the stream from the speaker and releases it.
func (o *beepOutput) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stopped {
		return
	}
	o.stopped = true

	if o.started {
		speaker.Clear()
	}
	_ = o.streamer.Close()
	if o.file != nil {
		_ = o.file.Close()
	}
}

// SetPosition seeks, clamping to the stream bounds.
func (o *beepOutput) SetPosition(d time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stopped {
		return
	}

	n := min(max(o.format.SampleRate.N(d), 0), o.streamer.Len())
	speaker.Lock()
	_ = o.streamer.Seek(n)
	speaker.Unlock()
}

// Position returns the current stream position.
func (o *beepOutput) Position() time.Duration {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stopped {
		return 0
	}
	speaker.Lock()
	pos := o.streamer.Position()
	speaker.Unlock()
	return o.format.SampleRate.D(pos)
}

// Duration returns the length of the decoded stream.
func (o *beepOutput) Duration() time.Duration {
	return o.duration
}

// Power returns the dBFS level of the last block sent to the speaker.
func (o *beepOutput) Power() float64 {
	return o.tap.Level()
}

// OnFinished registers the completion callback.
func (o *beepOutput) OnFinished(fn func(success bool)) {
	o.mu.Lock()
	o.onFinished = fn
	o.mu.Unlock()
}

// ended runs on the speaker goroutine with the speaker lock held, so the
// callback is dispatched from a new goroutine.
func (o *beepOutput) ended() {
	success := o.streamer.Err() == nil
	go o.finish(success)
}

func (o *beepOutput) finish(success bool) {
	o.mu.Lock()
	fn := o.onFinished
	stopped := o.stopped
	o.mu.Unlock()

	if stopped || fn == nil {
		return
	}
	fn(success)
}
