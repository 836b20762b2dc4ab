package player

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// TrackInfo holds the display tags of an audio file.
type TrackInfo struct {
	Path   string
	Title  string
	Artist string
}

// ReadTrackInfo reads title and artist tags from path. The file name without
// extension is used when the file has no title tag or no readable tags.
func ReadTrackInfo(path string) TrackInfo {
	info := TrackInfo{
		Path:  path,
		Title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}

	f, err := os.Open(path)
	if err != nil {
		return info
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return info
	}
	if title := m.Title(); title != "" {
		info.Title = title
	}
	info.Artist = m.Artist()
	if info.Artist == "" {
		info.Artist = m.AlbumArtist()
	}
	return info
}
