package mpris

import (
	"time"

	"github.com/llehouerou/pulse/internal/playback"
)

// Controller is the part of the playback engine driven by remote commands.
type Controller interface {
	Play()
	Pause()
	TogglePlayPause()
	Stop()
	Next()
	Previous()
	Seek(position time.Duration)
	SeekBy(delta time.Duration)
	SetShuffle(enabled bool)
	SetRepeatMode(mode playback.RepeatMode)
	Snapshot() playback.Snapshot
	NowPlaying() playback.NowPlaying
	Subscribe() *playback.Subscription
}

var _ Controller = (*playback.Engine)(nil)
