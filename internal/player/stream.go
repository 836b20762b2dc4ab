package player

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extOGG  = ".ogg"
	extWAV  = ".wav"
)

// Extensions lists the supported audio file extensions, in lookup order.
var Extensions = []string{extMP3, extFLAC, extOGG, extWAV}

// IsMusicFile reports whether path has a supported extension.
func IsMusicFile(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}

// Resolver maps source references to files inside a music directory.
type Resolver struct {
	Dir string
}

// Resolve returns the path of the file for source. The reference is tried
// as given, then with each supported extension appended.
func (r Resolver) Resolve(source string) (string, error) {
	if source == "" {
		return "", fmt.Errorf("%w: empty reference", ErrSourceNotFound)
	}

	base := source
	if !filepath.IsAbs(base) && r.Dir != "" {
		base = filepath.Join(r.Dir, source)
	}

	candidates := []string{base}
	for _, ext := range Extensions {
		candidates = append(candidates, base+ext)
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.Mode().IsRegular() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrSourceNotFound, source)
}

// BeepOpener opens outputs backed by the shared speaker.
type BeepOpener struct {
	resolver   Resolver
	sampleRate beep.SampleRate
}

// NewBeepOpener creates an opener resolving sources in dir and resampling
// every track to sampleRate.
func NewBeepOpener(dir string, sampleRate beep.SampleRate) *BeepOpener {
	return &BeepOpener{
		resolver:   Resolver{Dir: dir},
		sampleRate: sampleRate,
	}
}

// Open resolves and decodes source. The returned output is not playing yet.
func (o *BeepOpener) Open(source string) (Output, error) {
	path, err := o.resolver.Resolve(source)
	if err != nil {
		return nil, err
	}

	streamer, format, file, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	return newBeepOutput(streamer, format, file, o.sampleRate), nil
}

// decodeFile opens path and decodes its header. On success the caller owns
// both the streamer and the file.
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, io.Closer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(Extensions, ext) {
		return nil, beep.Format{}, nil, fmt.Errorf("%w: %w: %s", ErrDecode, ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, nil, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case extMP3:
		streamer, format, err = decodeGoMP3(f)
	case extFLAC:
		// Some taggers prepend ID3v2 to FLAC files
		if err = skipID3v2(f); err == nil {
			streamer, format, err = flac.Decode(f)
		}
	case extOGG:
		streamer, format, err = vorbis.Decode(f)
	case extWAV:
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, nil, fmt.Errorf("%w: %s: %w", ErrDecode, filepath.Base(path), err)
	}
	return streamer, format, f, nil
}

// skipID3v2 positions r after a leading ID3v2 tag, or at the start if none.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && n < len(header) {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}
	if string(header[:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// Syncsafe size: 7 bits per byte
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
