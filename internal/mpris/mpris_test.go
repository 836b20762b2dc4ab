//go:build linux

package mpris

import (
	"testing"
	"time"

	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/pulse/internal/playback"
	"github.com/llehouerou/pulse/internal/player"
	"github.com/llehouerou/pulse/internal/playlist"
)

func newTestAdapter(t *testing.T) (*playerAdapter, *playback.Engine) {
	t.Helper()
	pl := playlist.New(
		playlist.NewTrack("One", "Band", "one"),
		playlist.NewTrack("Two", "Band", "two"),
	)
	e := playback.New(player.NewMockOpener(3*time.Minute), pl, playback.WithArtwork("/music/cover.jpg"))
	t.Cleanup(func() { _ = e.Close() })
	return &playerAdapter{ctrl: e}, e
}

func TestPlayerAdapter_PlayIsGuarded(t *testing.T) {
	p, e := newTestAdapter(t)

	_ = p.Play()
	_ = p.Play()
	if got := e.Snapshot().Status; got != playback.StatePlaying {
		t.Errorf("Status = %v, want Playing", got)
	}

	_ = p.Pause()
	_ = p.Pause()
	if got := e.Snapshot().Status; got != playback.StatePaused {
		t.Errorf("Status = %v, want Paused", got)
	}

	_ = p.PlayPause()
	status, _ := p.PlaybackStatus()
	if status != types.PlaybackStatusPlaying {
		t.Errorf("PlaybackStatus() = %v, want Playing", status)
	}
}

func TestPlayerAdapter_NextPrevious(t *testing.T) {
	p, e := newTestAdapter(t)

	_ = p.Next()
	if got := e.Snapshot().Index; got != 1 {
		t.Errorf("Index = %d, want 1", got)
	}
	_ = p.Previous()
	if got := e.Snapshot().Index; got != 0 {
		t.Errorf("Index = %d, want 0", got)
	}
	_ = p.Stop()
	if got := e.Snapshot().Status; got != playback.StateStopped {
		t.Errorf("Status = %v, want Stopped", got)
	}
}

func TestPlayerAdapter_Seek(t *testing.T) {
	p, e := newTestAdapter(t)
	_ = p.Play()

	_ = p.Seek(types.Microseconds(10 * time.Second / time.Microsecond))
	if got := e.Snapshot().Position; got != 10*time.Second {
		t.Errorf("Position = %v, want 10s", got)
	}

	meta, _ := p.Metadata()
	_ = p.SetPosition(string(meta.TrackId), types.Microseconds(time.Minute/time.Microsecond))
	if got := e.Snapshot().Position; got != time.Minute {
		t.Errorf("Position = %v, want 1m", got)
	}

	_ = p.SetPosition("/org/mpris/MediaPlayer2/Track/other", 0)
	if got := e.Snapshot().Position; got != time.Minute {
		t.Errorf("Position = %v, want unchanged 1m", got)
	}

	pos, _ := p.Position()
	if pos != time.Minute.Microseconds() {
		t.Errorf("Position() = %d, want %d", pos, time.Minute.Microseconds())
	}
}

func TestPlayerAdapter_Metadata(t *testing.T) {
	p, _ := newTestAdapter(t)
	_ = p.Play()

	meta, err := p.Metadata()
	if err != nil {
		t.Fatal(err)
	}
	if meta.Title != "One" {
		t.Errorf("Title = %q, want One", meta.Title)
	}
	if len(meta.Artist) != 1 || meta.Artist[0] != "Band" {
		t.Errorf("Artist = %v, want [Band]", meta.Artist)
	}
	if meta.Length != types.Microseconds((3 * time.Minute).Microseconds()) {
		t.Errorf("Length = %d", meta.Length)
	}
	if meta.ArtUrl != "file:///music/cover.jpg" {
		t.Errorf("ArtUrl = %q", meta.ArtUrl)
	}
}

func TestPlayerAdapter_LoopStatusAndShuffle(t *testing.T) {
	p, e := newTestAdapter(t)

	for _, status := range []types.LoopStatus{types.LoopStatusPlaylist, types.LoopStatusTrack, types.LoopStatusNone} {
		_ = p.SetLoopStatus(status)
		got, _ := p.LoopStatus()
		if got != status {
			t.Errorf("LoopStatus() = %v, want %v", got, status)
		}
	}

	_ = p.SetShuffle(true)
	if shuffle, _ := p.Shuffle(); !shuffle || !e.Snapshot().Shuffle {
		t.Error("shuffle should be enabled")
	}
}

func TestArtURL(t *testing.T) {
	tests := []struct{ in, want string }{
		{"/a/cover.png", "file:///a/cover.png"},
		{"https://example.com/a.png", "https://example.com/a.png"},
	}
	for _, tt := range tests {
		if got := artURL(tt.in); got != tt.want {
			t.Errorf("artURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
