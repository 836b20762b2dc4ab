package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/llehouerou/pulse/internal/config"
	"github.com/llehouerou/pulse/internal/player"
	"github.com/llehouerou/pulse/internal/playlist"
)

// BuildPlaylist creates the initial playlist from the configured tracks, or
// from the audio files at the top of the music directory in name order.
func BuildPlaylist(cfg *config.Config) (*playlist.Playlist, error) {
	if cfg.HasTracks() {
		tracks := lo.Map(cfg.Tracks, func(t config.TrackConfig, _ int) playlist.Track {
			title := t.Title
			if title == "" {
				title = strings.TrimSuffix(filepath.Base(t.Source), filepath.Ext(t.Source))
			}
			return playlist.NewTrack(title, t.Artist, t.Source)
		})
		return playlist.New(tracks...), nil
	}

	dir := cfg.GetMusicDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan music dir: %w", err)
	}

	tracks := lo.FilterMap(entries, func(e os.DirEntry, _ int) (playlist.Track, bool) {
		if e.IsDir() || !player.IsMusicFile(e.Name()) {
			return playlist.Track{}, false
		}
		info := player.ReadTrackInfo(filepath.Join(dir, e.Name()))
		return playlist.NewTrack(info.Title, info.Artist, e.Name()), true
	})
	return playlist.New(tracks...), nil
}
