// internal/playback/engine.go
package playback

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/pulse/internal/meter"
	"github.com/llehouerou/pulse/internal/player"
	"github.com/llehouerou/pulse/internal/playlist"
)

// ErrIndexOutOfRange is recorded when a load targets an index outside the playlist.
var ErrIndexOutOfRange = errors.New("track index out of range")

// Engine owns the playlist, the transport state and the audio output.
//
// All operations, completion signals and meter ticks run on a single
// goroutine. Public methods post work to it and wait for completion;
// Snapshot reads a copy committed after each step.
type Engine struct {
	logger     *zap.Logger
	opener     player.Opener
	playlist   *playlist.Playlist
	rng        *rand.Rand
	normalizer meter.Normalizer
	sampler    *sampler
	publishers []Publisher
	artwork    string

	// Owned by the engine goroutine.
	output   player.Output
	gen      uint64
	index    int
	status   State
	shuffle  bool
	repeat   RepeatMode
	position time.Duration
	duration time.Duration
	power    float64
	err      error
	tracks   []playlist.Track
	pending  []any

	cmds      chan func()
	finished  chan finishSignal
	done      chan struct{}
	exited    chan struct{}
	closeOnce sync.Once

	snapMu sync.RWMutex
	snap   Snapshot

	subsMu sync.RWMutex
	subs   []*Subscription
}

// finishSignal carries a completion callback tagged with the generation of
// the output it was bound to.
type finishSignal struct {
	gen     uint64
	success bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRand sets the random source used by shuffle.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithMeterInterval sets the sampling period of the meter.
func WithMeterInterval(d time.Duration) Option {
	return func(e *Engine) { e.sampler = newSampler(d) }
}

// WithNormalizer sets the decibel normalizer used by the meter.
func WithNormalizer(n meter.Normalizer) Option {
	return func(e *Engine) { e.normalizer = n }
}

// WithPublisher registers a now-playing publisher.
func WithPublisher(p Publisher) Option {
	return func(e *Engine) { e.publishers = append(e.publishers, p) }
}

// WithArtwork sets the static artwork reference reported in NowPlaying.
func WithArtwork(ref string) Option {
	return func(e *Engine) { e.artwork = ref }
}

// New creates an engine for the playlist, stopped at index 0, and starts
// its goroutine. Call Close to stop it.
func New(opener player.Opener, pl *playlist.Playlist, opts ...Option) *Engine {
	e := &Engine{
		logger:     zap.NewNop(),
		opener:     opener,
		playlist:   pl,
		normalizer: meter.NewNormalizer(meter.DefaultGamma),
		sampler:    newSampler(DefaultMeterInterval),
		status:     StateStopped,
		cmds:       make(chan func()),
		finished:   make(chan finishSignal),
		done:       make(chan struct{}),
		exited:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // shuffle order
	}
	e.tracks = pl.Tracks()
	e.commit(false)

	go e.run()
	return e
}

func (e *Engine) run() {
	defer close(e.exited)
	for {
		select {
		case <-e.done:
			e.shutdown()
			return
		case fn := <-e.cmds:
			fn()
		case sig := <-e.finished:
			e.trackFinished(sig)
		case <-e.sampler.C():
			e.sample()
		}
	}
}

// do runs fn on the engine goroutine and waits for it.
// It returns immediately once the engine is closed.
func (e *Engine) do(fn func()) {
	ran := make(chan struct{})
	select {
	case e.cmds <- func() {
		defer close(ran)
		fn()
	}:
	case <-e.done:
		return
	}
	<-ran
}

// Snapshot returns the last committed state.
func (e *Engine) Snapshot() Snapshot {
	e.snapMu.RLock()
	defer e.snapMu.RUnlock()
	return e.snap
}

// NowPlaying returns now-playing metadata for the last committed state.
func (e *Engine) NowPlaying() NowPlaying {
	return nowPlayingFrom(e.Snapshot(), e.artwork)
}

// Subscribe creates a new event subscription.
func (e *Engine) Subscribe() *Subscription {
	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	sub := newSubscription()
	select {
	case <-e.done:
		sub.close()
	default:
		e.subs = append(e.subs, sub)
	}
	return sub
}

// Close stops playback and the engine goroutine and signals subscribers.
// Safe to call more than once.
func (e *Engine) Close() error {
	e.closeOnce.Do(func() {
		e.subsMu.Lock()
		close(e.done)
		e.subsMu.Unlock()
		<-e.exited

		e.subsMu.Lock()
		for _, sub := range e.subs {
			sub.close()
		}
		e.subs = nil
		e.subsMu.Unlock()
	})
	return nil
}

func (e *Engine) shutdown() {
	e.discardOutput()
	e.sampler.stop()
	e.setStatus(StateStopped)
	e.position = 0
	e.power = 0
	e.commit(false)
}

// emit queues an event until the next commit.
func (e *Engine) emit(ev any) {
	e.pending = append(e.pending, ev)
}

// commit publishes the current state: snapshot first, then queued events,
// then now-playing publishers when publish is set.
func (e *Engine) commit(publish bool) {
	snap := Snapshot{
		Tracks:   e.tracks,
		Index:    e.index,
		Status:   e.status,
		Shuffle:  e.shuffle,
		Repeat:   e.repeat,
		Position: e.position,
		Duration: e.duration,
		Power:    e.power,
		Err:      e.err,
	}
	e.snapMu.Lock()
	e.snap = snap
	e.snapMu.Unlock()

	if len(e.pending) > 0 {
		e.subsMu.RLock()
		for _, ev := range e.pending {
			for _, sub := range e.subs {
				sub.send(ev)
			}
		}
		e.subsMu.RUnlock()
		e.pending = e.pending[:0]
	}

	if publish {
		np := nowPlayingFrom(snap, e.artwork)
		for _, p := range e.publishers {
			p.Publish(np)
		}
	}
}

func (e *Engine) setStatus(s State) {
	if s == e.status {
		return
	}
	e.emit(StateChange{Previous: e.status, Current: s})
	e.status = s
}

func (e *Engine) fail(op, source string, err error) {
	e.err = err
	e.emit(ErrorEvent{Operation: op, Source: source, Err: err})
}

// discardOutput stops the current output. Its generation is left behind,
// so any late completion signal from it is ignored.
func (e *Engine) discardOutput() {
	if e.output == nil {
		return
	}
	e.output.Stop()
	e.output = nil
}

// bind registers the completion callback of out under a new generation.
func (e *Engine) bind(out player.Output) {
	e.gen++
	gen := e.gen
	out.OnFinished(func(success bool) {
		select {
		case e.finished <- finishSignal{gen: gen, success: success}:
		case <-e.done:
		}
	})
	e.output = out
}
