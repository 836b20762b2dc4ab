// internal/player/interface.go
package player

import (
	"errors"
	"time"
)

var (
	// ErrSourceNotFound is returned when an audio source cannot be resolved or read.
	ErrSourceNotFound = errors.New("audio source not found")
	// ErrDecode is returned when a source exists but its stream cannot be opened.
	ErrDecode = errors.New("audio decode failed")
	// ErrUnsupportedFormat is wrapped in ErrDecode for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Output is a single decoded track bound to the audio device.
// An Output is used for exactly one track and discarded afterwards.
type Output interface {
	// Play starts playback, or resumes it after Pause.
	Play()
	Pause()
	// Stop halts playback and releases the underlying stream. A stopped
	// output never reports completion.
	Stop()
	SetPosition(d time.Duration)
	Position() time.Duration
	Duration() time.Duration
	// Power returns the instantaneous output power in dBFS.
	// Silence is reported as negative infinity.
	Power() float64
	// OnFinished registers the completion callback. success is false when
	// the stream ended because of a decoding error.
	OnFinished(fn func(success bool))
}

// Opener resolves audio source references and opens outputs for them.
type Opener interface {
	Open(source string) (Output, error)
}

// Verify implementations at compile time.
var (
	_ Output = (*beepOutput)(nil)
	_ Output = (*Mock)(nil)
	_ Opener = (*BeepOpener)(nil)
	_ Opener = (*MockOpener)(nil)
)
