// Package nowplaying publishes the current track to logs and desktop
// notifications.
package nowplaying

import (
	"github.com/google/uuid"

	"github.com/llehouerou/pulse/internal/playback"
)

// Multi fans a now-playing update out to several publishers in order.
type Multi []playback.Publisher

// Publish implements playback.Publisher.
func (m Multi) Publish(np playback.NowPlaying) {
	for _, p := range m {
		p.Publish(np)
	}
}

// changeFilter remembers the last track and status seen so publishers can
// ignore updates that only moved the position.
type changeFilter struct {
	track  uuid.UUID
	status playback.State
	seen   bool
}

// trackChanged records np and reports whether it starts a different track.
func (f *changeFilter) trackChanged(np playback.NowPlaying) bool {
	changed := !f.seen || np.TrackID != f.track
	f.track = np.TrackID
	f.seen = true
	return changed
}

// statusChanged records np and reports whether its status differs.
func (f *changeFilter) statusChanged(np playback.NowPlaying) bool {
	changed := !f.seen || np.Status != f.status
	f.status = np.Status
	return changed
}
