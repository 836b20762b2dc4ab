package playback

import (
	"time"

	"github.com/google/uuid"
)

// NowPlaying describes the current track for system media surfaces.
type NowPlaying struct {
	TrackID  uuid.UUID
	Title    string
	Artist   string
	Duration time.Duration
	Elapsed  time.Duration
	Artwork  string // static artwork reference, may be empty
	Status   State
}

// Publisher receives now-playing metadata after every state-changing
// operation. Publish runs on the engine goroutine: implementations must
// return quickly and must not call back into the engine's transport methods.
type Publisher interface {
	Publish(np NowPlaying)
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(NowPlaying)

// Publish calls f(np).
func (f PublisherFunc) Publish(np NowPlaying) { f(np) }

func nowPlayingFrom(s Snapshot, artwork string) NowPlaying {
	np := NowPlaying{
		Duration: s.Duration,
		Elapsed:  s.Position,
		Artwork:  artwork,
		Status:   s.Status,
	}
	if t := s.Current(); t != nil {
		np.TrackID = t.ID
		np.Title = t.Title
		np.Artist = t.Artist
	}
	return np
}
