package playback

import (
	"time"

	"github.com/llehouerou/pulse/internal/playlist"
)

// Snapshot is a consistent copy of the playback state.
// Tracks is shared between snapshots and must not be modified.
type Snapshot struct {
	Tracks   []playlist.Track
	Index    int
	Status   State
	Shuffle  bool
	Repeat   RepeatMode
	Position time.Duration
	Duration time.Duration
	Power    float64
	// Err holds the last load failure and is cleared by a successful load.
	Err error
}

// Current returns the current track, or nil when the playlist is empty.
func (s Snapshot) Current() *playlist.Track {
	if s.Index < 0 || s.Index >= len(s.Tracks) {
		return nil
	}
	t := s.Tracks[s.Index]
	return &t
}

// Unavailable reports whether the last load attempt failed.
func (s Snapshot) Unavailable() bool {
	return s.Err != nil
}

// Progress returns the elapsed fraction of the track in [0, 1].
func (s Snapshot) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return min(max(float64(s.Position)/float64(s.Duration), 0), 1)
}
