package playback

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/pulse/internal/meter"
	"github.com/llehouerou/pulse/internal/player"
	"github.com/llehouerou/pulse/internal/playlist"
)

// LoadAndPlay stops the current output and starts the track at index.
// Failures leave an error in the snapshot instead of being returned.
func (e *Engine) LoadAndPlay(index int) {
	e.do(func() {
		e.loadAndPlay(index)
		e.commit(true)
	})
}

// TogglePlayPause pauses when playing and resumes when paused.
// Without an output it loads the current index.
func (e *Engine) TogglePlayPause() {
	e.do(func() {
		e.togglePlayPause()
		e.commit(true)
	})
}

// Play resumes or starts playback. No-op while playing.
func (e *Engine) Play() {
	e.do(func() {
		if e.status == StatePlaying {
			return
		}
		e.togglePlayPause()
		e.commit(true)
	})
}

// Pause pauses playback. No-op unless playing.
func (e *Engine) Pause() {
	e.do(func() {
		if e.status != StatePlaying {
			return
		}
		e.togglePlayPause()
		e.commit(true)
	})
}

// Seek moves to position, clamped to [0, duration].
func (e *Engine) Seek(position time.Duration) {
	e.do(func() {
		e.seek(position)
		e.commit(true)
	})
}

// SeekBy moves the playback position by delta from where the output is now.
func (e *Engine) SeekBy(delta time.Duration) {
	e.do(func() {
		if e.output == nil {
			return
		}
		e.seek(e.output.Position() + delta)
		e.commit(true)
	})
}

// Next plays the next track, or a random one when shuffling.
func (e *Engine) Next() {
	e.do(func() {
		e.next()
		e.commit(true)
	})
}

// Previous plays the previous track, or a random one when shuffling.
func (e *Engine) Previous() {
	e.do(func() {
		e.previous()
		e.commit(true)
	})
}

// ToggleShuffle flips shuffle mode without reloading the current track.
func (e *Engine) ToggleShuffle() {
	e.do(func() {
		e.setShuffle(!e.shuffle)
		e.commit(true)
	})
}

// SetShuffle enables or disables shuffle. No-op when already in that mode.
func (e *Engine) SetShuffle(enabled bool) {
	e.do(func() {
		if e.shuffle == enabled {
			return
		}
		e.setShuffle(enabled)
		e.commit(true)
	})
}

// CycleRepeatMode advances Off → All → One → Off.
func (e *Engine) CycleRepeatMode() {
	e.do(func() {
		e.setRepeatMode(e.repeat.Next())
		e.commit(true)
	})
}

// SetRepeatMode sets the repeat mode.
func (e *Engine) SetRepeatMode(mode RepeatMode) {
	e.do(func() {
		if e.repeat == mode {
			return
		}
		e.setRepeatMode(mode)
		e.commit(true)
	})
}

// Stop halts playback and discards the output.
func (e *Engine) Stop() {
	e.do(func() {
		e.stop()
		e.commit(true)
	})
}

func (e *Engine) loadAndPlay(index int) {
	if e.playlist.IsEmpty() {
		return
	}
	track := e.playlist.Track(index)
	if track == nil {
		err := fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
		e.logger.Warn("load rejected", zap.Int("index", index), zap.Error(err))
		e.fail("load", "", err)
		return
	}

	out, err := e.opener.Open(track.Source)
	if err != nil {
		if errors.Is(err, player.ErrSourceNotFound) {
			// Nothing was created: keep the current output and status.
			e.logger.Warn("source not found",
				zap.Int("index", index),
				zap.String("source", track.Source),
				zap.Error(err))
			e.fail("load", track.Source, err)
			return
		}

		e.logger.Error("decode failed",
			zap.Int("index", index),
			zap.String("source", track.Source),
			zap.Error(err))
		e.discardOutput()
		e.sampler.stop()
		e.index = index
		e.setStatus(StateStopped)
		e.position = 0
		e.duration = 0
		e.power = 0
		e.fail("load", track.Source, err)
		return
	}

	prev, prevIndex := e.current(), e.index
	e.discardOutput()
	e.bind(out)
	out.Play()

	e.index = index
	e.setStatus(StatePlaying)
	e.position = 0
	e.duration = out.Duration()
	e.power = 0
	e.err = nil
	e.sampler.start()

	e.logger.Debug("track loaded",
		zap.Int("index", index),
		zap.String("source", track.Source),
		zap.Duration("duration", e.duration))
	e.emit(TrackChange{
		Previous:      prev,
		Current:       track,
		PreviousIndex: prevIndex,
		Index:         index,
	})
}

func (e *Engine) togglePlayPause() {
	if e.output == nil {
		e.loadAndPlay(e.index)
		return
	}

	switch e.status {
	case StatePlaying:
		e.output.Pause()
		e.sampler.stop()
		e.position = min(e.output.Position(), e.duration)
		e.setStatus(StatePaused)
	case StatePaused:
		e.output.Play()
		e.setStatus(StatePlaying)
		e.sampler.start()
	default:
		e.loadAndPlay(e.index)
	}
}

func (e *Engine) seek(position time.Duration) {
	if e.output == nil {
		return
	}
	position = min(max(position, 0), e.duration)
	e.output.SetPosition(position)
	e.position = position
	e.emit(PositionChange{Position: position})
}

func (e *Engine) next() {
	n := e.playlist.Len()
	if n == 0 {
		return
	}
	if e.shuffle {
		e.loadAndPlay(playlist.RandomIndex(e.rng, n))
		return
	}
	e.loadAndPlay(playlist.NextIndex(e.index, n))
}

func (e *Engine) previous() {
	n := e.playlist.Len()
	if n == 0 {
		return
	}
	if e.shuffle {
		e.loadAndPlay(playlist.RandomIndex(e.rng, n))
		return
	}
	e.loadAndPlay(playlist.PreviousIndex(e.index, n))
}

func (e *Engine) setShuffle(enabled bool) {
	var pinned playlist.Track
	if t := e.current(); t != nil {
		pinned = *t
	}

	if enabled {
		e.index = e.playlist.Shuffle(e.rng, pinned.ID)
	} else {
		e.index = e.playlist.Restore(pinned.ID)
	}
	e.shuffle = enabled
	e.tracks = e.playlist.Tracks()

	e.emit(QueueChange{Tracks: e.tracks, Index: e.index})
	e.emit(ModeChange{RepeatMode: e.repeat, Shuffle: e.shuffle})
}

func (e *Engine) setRepeatMode(mode RepeatMode) {
	e.repeat = mode
	e.emit(ModeChange{RepeatMode: e.repeat, Shuffle: e.shuffle})
}

// trackFinished applies the repeat policy after the output bound to
// sig.gen reached its end.
func (e *Engine) trackFinished(sig finishSignal) {
	if sig.gen != e.gen || e.output == nil {
		e.logger.Debug("stale completion ignored", zap.Uint64("gen", sig.gen))
		return
	}
	if !sig.success {
		e.logger.Debug("playback interrupted", zap.Int("index", e.index))
		return
	}

	switch e.repeat {
	case RepeatOne:
		e.loadAndPlay(e.index)
	case RepeatAll:
		e.next()
	default:
		if e.shuffle || playlist.HasNext(e.index, e.playlist.Len()) {
			e.next()
		} else {
			e.stop()
		}
	}
	e.commit(true)
}

func (e *Engine) stop() {
	e.discardOutput()
	e.sampler.stop()
	e.setStatus(StateStopped)
	e.position = 0
	e.power = 0
}

// sample reads position and power from the output on a meter tick.
func (e *Engine) sample() {
	if e.output == nil || e.status != StatePlaying {
		e.sampler.stop()
		return
	}

	db := e.output.Power()
	if !meter.Valid(db) && !isSilence(db) {
		e.logger.Debug("invalid power reading", zap.Float64("db", db))
	}
	e.power = e.normalizer.Normalize(db)
	e.position = min(max(e.output.Position(), 0), e.duration)

	e.emit(MeterChange{Position: e.position, Power: e.power})
	e.commit(false)
}

func (e *Engine) current() *playlist.Track {
	return e.playlist.Track(e.index)
}

// isSilence reports the reading of a tap that has only seen zero samples.
func isSilence(db float64) bool {
	return math.IsInf(db, -1)
}
