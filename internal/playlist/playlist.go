package playlist

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Track represents a single track in a playlist.
// Tracks are values and are never mutated after creation.
type Track struct {
	ID     uuid.UUID
	Title  string
	Artist string
	Source string // audio source reference, resolved by the player
}

// NewTrack creates a track with a fresh unique ID.
func NewTrack(title, artist, source string) Track {
	return Track{
		ID:     uuid.New(),
		Title:  title,
		Artist: artist,
		Source: source,
	}
}

// Playlist holds the active track order and the canonical order it was
// created with. The canonical slice is never reordered.
type Playlist struct {
	canonical []Track
	active    []Track
}

// New creates a playlist whose canonical and active orders are the given tracks.
func New(tracks ...Track) *Playlist {
	canonical := make([]Track, len(tracks))
	copy(canonical, tracks)
	active := make([]Track, len(tracks))
	copy(active, tracks)
	return &Playlist{
		canonical: canonical,
		active:    active,
	}
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.active)
}

// IsEmpty returns true if the playlist has no tracks.
func (p *Playlist) IsEmpty() bool {
	return len(p.active) == 0
}

// Track returns the track at the given active index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.active) {
		return nil
	}
	t := p.active[index]
	return &t
}

// Tracks returns a copy of the tracks in active order.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.active))
	copy(result, p.active)
	return result
}

// Canonical returns a copy of the tracks in their original order.
func (p *Playlist) Canonical() []Track {
	result := make([]Track, len(p.canonical))
	copy(result, p.canonical)
	return result
}

// Shuffle replaces the active order with a random permutation of the
// canonical order, swapping the track with the given ID to position 0.
// Returns the new index of that track (0, or 0 when it is not present).
func (p *Playlist) Shuffle(rng *rand.Rand, pinned uuid.UUID) int {
	shuffled := make([]Track, len(p.canonical))
	copy(shuffled, p.canonical)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if _, i, ok := lo.FindIndexOf(shuffled, func(t Track) bool { return t.ID == pinned }); ok {
		shuffled[0], shuffled[i] = shuffled[i], shuffled[0]
	}
	p.active = shuffled
	return 0
}

// Restore resets the active order to the canonical order.
// Returns the canonical index of the track with the given ID, or 0 if absent.
func (p *Playlist) Restore(current uuid.UUID) int {
	p.active = make([]Track, len(p.canonical))
	copy(p.active, p.canonical)
	return max(p.IndexOf(current), 0)
}

// IndexOf returns the active index of the track with the given ID, or -1.
func (p *Playlist) IndexOf(id uuid.UUID) int {
	_, i, ok := lo.FindIndexOf(p.active, func(t Track) bool { return t.ID == id })
	if !ok {
		return -1
	}
	return i
}
