//go:build linux

package mpris

import (
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"go.uber.org/zap"

	"github.com/llehouerou/pulse/internal/playback"
)

const busName = "pulse"

// Adapter connects the playback engine to MPRIS over D-Bus.
type Adapter struct {
	server  *server.Server
	events  *events.EventHandler
	sub     *playback.Subscription
	logger  *zap.Logger
	done    chan struct{}
	stopped sync.WaitGroup
	once    sync.Once
}

// New creates and starts a new MPRIS adapter.
func New(ctrl Controller, logger *zap.Logger) (*Adapter, error) {
	a := &Adapter{
		logger: logger.Named("mpris"),
		done:   make(chan struct{}),
	}

	a.server = server.NewServer(busName, &rootAdapter{}, &playerAdapter{ctrl: ctrl})
	a.events = events.NewEventHandler(a.server)
	a.sub = ctrl.Subscribe()

	go func() {
		if err := a.server.Listen(); err != nil {
			a.logger.Warn("mpris server stopped", zap.Error(err))
		}
	}()

	a.stopped.Add(1)
	go a.forward()

	return a, nil
}

// forward turns engine events into D-Bus property change signals.
func (a *Adapter) forward() {
	defer a.stopped.Done()
	for {
		var err error
		select {
		case <-a.done:
			return
		case <-a.sub.Done:
			return
		case <-a.sub.StateChanged:
			err = a.events.Player.OnPlayPause()
		case <-a.sub.TrackChanged:
			err = a.events.Player.OnTitle()
		case ev := <-a.sub.PositionChanged:
			err = a.events.Player.OnSeek(types.Microseconds(ev.Position.Microseconds()))
		case <-a.sub.ModeChanged:
			err = a.events.Player.OnOptions()
		case <-a.sub.QueueChanged:
		case <-a.sub.MeterChanged:
		case <-a.sub.Error:
		}
		if err != nil {
			a.logger.Debug("emit property change", zap.Error(err))
		}
	}
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	var err error
	a.once.Do(func() {
		close(a.done)
		a.stopped.Wait()
		err = a.server.Stop()
	})
	return err
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error { return nil }

// Quit is not supported; the terminal UI owns the process lifetime.
func (r *rootAdapter) Quit() error { return nil }

func (r *rootAdapter) CanQuit() (bool, error) { return false, nil }

func (r *rootAdapter) CanRaise() (bool, error) { return false, nil }

func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }

func (r *rootAdapter) Identity() (string, error) { return "Pulse", nil }

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/ogg", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and the
// optional loop status and shuffle interfaces.
type playerAdapter struct {
	ctrl Controller
}

func (p *playerAdapter) Next() error {
	p.ctrl.Next()
	return nil
}

func (p *playerAdapter) Previous() error {
	p.ctrl.Previous()
	return nil
}

func (p *playerAdapter) Pause() error {
	p.ctrl.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.ctrl.TogglePlayPause()
	return nil
}

func (p *playerAdapter) Stop() error {
	p.ctrl.Stop()
	return nil
}

func (p *playerAdapter) Play() error {
	p.ctrl.Play()
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.ctrl.SeekBy(time.Duration(offset) * time.Microsecond)
	return nil
}

// SetPosition ignores requests for a track other than the current one.
func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	np := p.ctrl.NowPlaying()
	if trackID != string(trackObjectPath(np)) {
		return nil
	}
	p.ctrl.Seek(time.Duration(position) * time.Microsecond)
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.ctrl.Snapshot().Status), nil
}

func (p *playerAdapter) Rate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	return metadata(p.ctrl.NowPlaying()), nil
}

// Volume is left to the desktop's own mixer.
func (p *playerAdapter) Volume() (float64, error) { return 1.0, nil }

func (p *playerAdapter) SetVolume(_ float64) error { return nil }

func (p *playerAdapter) Position() (int64, error) {
	return p.ctrl.Snapshot().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

// Next and previous wrap around, so both are available whenever the
// playlist has tracks.
func (p *playerAdapter) CanGoNext() (bool, error) {
	return len(p.ctrl.Snapshot().Tracks) > 0, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return len(p.ctrl.Snapshot().Tracks) > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return len(p.ctrl.Snapshot().Tracks) > 0, nil
}

func (p *playerAdapter) CanPause() (bool, error) { return true, nil }

func (p *playerAdapter) CanSeek() (bool, error) { return true, nil }

func (p *playerAdapter) CanControl() (bool, error) { return true, nil }

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	return loopStatus(p.ctrl.Snapshot().Repeat), nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	p.ctrl.SetRepeatMode(repeatMode(status))
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.ctrl.Snapshot().Shuffle, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	p.ctrl.SetShuffle(shuffle)
	return nil
}

func playbackStatus(s playback.State) types.PlaybackStatus {
	switch s {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying
	case playback.StatePaused:
		return types.PlaybackStatusPaused
	case playback.StateStopped:
		return types.PlaybackStatusStopped
	}
	return types.PlaybackStatusStopped
}

func loopStatus(m playback.RepeatMode) types.LoopStatus {
	switch m {
	case playback.RepeatOne:
		return types.LoopStatusTrack
	case playback.RepeatAll:
		return types.LoopStatusPlaylist
	case playback.RepeatOff:
		return types.LoopStatusNone
	}
	return types.LoopStatusNone
}

func repeatMode(s types.LoopStatus) playback.RepeatMode {
	switch s {
	case types.LoopStatusTrack:
		return playback.RepeatOne
	case types.LoopStatusPlaylist:
		return playback.RepeatAll
	case types.LoopStatusNone:
		return playback.RepeatOff
	}
	return playback.RepeatOff
}

func metadata(np playback.NowPlaying) types.Metadata {
	if np.Title == "" && np.Duration == 0 {
		return types.Metadata{TrackId: noTrack}
	}

	meta := types.Metadata{
		TrackId: trackObjectPath(np),
		Length:  types.Microseconds(np.Duration.Microseconds()),
		Title:   np.Title,
	}
	if np.Artist != "" {
		meta.Artist = []string{np.Artist}
	}
	if np.Artwork != "" {
		meta.ArtUrl = artURL(np.Artwork)
	}
	return meta
}

// noTrack is the MPRIS object path meaning "no current track".
const noTrack = dbus.ObjectPath("/org/mpris/MediaPlayer2/TrackList/NoTrack")

func trackObjectPath(np playback.NowPlaying) dbus.ObjectPath {
	return dbus.ObjectPath("/org/mpris/MediaPlayer2/Track/" + hex.EncodeToString(np.TrackID[:]))
}

func artURL(ref string) string {
	if strings.Contains(ref, "://") {
		return ref
	}
	return "file://" + ref
}
