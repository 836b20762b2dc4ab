package playback

import (
	"time"

	"github.com/llehouerou/pulse/internal/playlist"
)

// StateChange is emitted when the transport status changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when a track is loaded and starts playing,
// including a reload of the same index under repeat-one.
type TrackChange struct {
	Previous      *playlist.Track
	Current       *playlist.Track
	PreviousIndex int
	Index         int
}

// QueueChange is emitted when the active track order changes.
type QueueChange struct {
	Tracks []playlist.Track
	Index  int
}

// ModeChange is emitted when repeat or shuffle mode changes.
type ModeChange struct {
	RepeatMode RepeatMode
	Shuffle    bool
}

// PositionChange is emitted when a seek occurs.
type PositionChange struct {
	Position time.Duration
}

// MeterChange is emitted on every sampler tick while playing.
type MeterChange struct {
	Position time.Duration
	Power    float64 // normalized, 0.0-1.0
}

// ErrorEvent is emitted when a transport operation fails.
type ErrorEvent struct {
	Operation string // e.g., "load"
	Source    string // track source if applicable
	Err       error
}
