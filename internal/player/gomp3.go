package player

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/go-mp3"
)

// go-mp3 always produces interleaved 16-bit stereo.
const mp3FrameBytes = 4

// mp3Stream adapts llehouerou/go-mp3 to beep.StreamSeekCloser.
type mp3Stream struct {
	dec    *mp3.Decoder
	closer io.Closer
	buf    []byte
	err    error
}

func decodeGoMP3(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	dec, err := mp3.NewDecoder(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	if dec.SampleRate() == 0 {
		return nil, beep.Format{}, errors.New("mp3: invalid sample rate")
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(dec.SampleRate()),
		NumChannels: 2,
		Precision:   2,
	}
	return &mp3Stream{dec: dec, closer: rc}, format, nil
}

// Stream implements beep.Streamer.
func (m *mp3Stream) Stream(samples [][2]float64) (n int, ok bool) {
	if m.err != nil {
		return 0, false
	}

	need := len(samples) * mp3FrameBytes
	if cap(m.buf) < need {
		m.buf = make([]byte, need)
	}
	buf := m.buf[:need]

	read, err := io.ReadFull(m.dec, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		m.err = err
		return 0, false
	}

	frames := read / mp3FrameBytes
	for i := range frames {
		off := i * mp3FrameBytes
		l := int16(binary.LittleEndian.Uint16(buf[off:]))   //nolint:gosec // PCM sample
		r := int16(binary.LittleEndian.Uint16(buf[off+2:])) //nolint:gosec // PCM sample
		samples[i][0] = float64(l) / 32768
		samples[i][1] = float64(r) / 32768
	}
	return frames, frames > 0
}

// Err implements beep.Streamer.
func (m *mp3Stream) Err() error { return m.err }

// Len returns the total number of frames, or 0 if unknown.
func (m *mp3Stream) Len() int {
	return int(max(m.dec.SampleCount(), 0))
}

// Position returns the current frame.
func (m *mp3Stream) Position() int {
	return int(m.dec.SamplePosition())
}

// Seek moves to frame p, clamped to the stream.
func (m *mp3Stream) Seek(p int) error {
	p = min(max(p, 0), m.Len())
	if err := m.dec.SeekToSample(int64(p)); err != nil {
		return err
	}
	m.err = nil
	return nil
}

// Close closes the underlying reader.
func (m *mp3Stream) Close() error {
	return m.closer.Close()
}
