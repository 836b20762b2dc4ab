package nowplaying

import (
	"os"
	"path/filepath"
)

// coverNames lists common album art filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"album.jpg", "album.png", "album.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// FindArtwork looks for album art in dir.
// Returns the path to the art file, or empty string if not found.
func FindArtwork(dir string) string {
	if dir == "" {
		return ""
	}
	for _, name := range coverNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// ResolveArtwork returns the configured artwork when it exists,
// otherwise a cover file found in musicDir.
func ResolveArtwork(configured, musicDir string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}
	return FindArtwork(musicDir)
}
