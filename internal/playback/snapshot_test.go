package playback

import (
	"errors"
	"testing"
	"time"

	"github.com/llehouerou/pulse/internal/playlist"
)

func TestSnapshot_Current(t *testing.T) {
	tracks := []playlist.Track{
		playlist.NewTrack("A", "X", "a"),
		playlist.NewTrack("B", "Y", "b"),
	}

	if (Snapshot{}).Current() != nil {
		t.Error("empty snapshot should have no current track")
	}
	if (Snapshot{Tracks: tracks, Index: 2}).Current() != nil {
		t.Error("out-of-range index should have no current track")
	}
	if got := (Snapshot{Tracks: tracks, Index: 1}).Current(); got == nil || got.Title != "B" {
		t.Errorf("Current() = %+v, want B", got)
	}
}

func TestSnapshot_Progress(t *testing.T) {
	tests := []struct {
		pos, dur time.Duration
		want     float64
	}{
		{0, 0, 0},
		{time.Minute, 0, 0},
		{30 * time.Second, time.Minute, 0.5},
		{2 * time.Minute, time.Minute, 1},
	}
	for _, tt := range tests {
		s := Snapshot{Position: tt.pos, Duration: tt.dur}
		if got := s.Progress(); got != tt.want {
			t.Errorf("Progress(%v/%v) = %v, want %v", tt.pos, tt.dur, got, tt.want)
		}
	}
}

func TestSnapshot_Unavailable(t *testing.T) {
	if (Snapshot{}).Unavailable() {
		t.Error("snapshot without error should be available")
	}
	if !(Snapshot{Err: errors.New("x")}).Unavailable() {
		t.Error("snapshot with error should be unavailable")
	}
}
