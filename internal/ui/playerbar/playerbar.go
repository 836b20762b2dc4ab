package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/llehouerou/pulse/internal/playback"
	"github.com/llehouerou/pulse/internal/ui/render"
	"github.com/llehouerou/pulse/internal/ui/styles"
)

// Height is the number of lines Render produces, borders included.
const Height = 7

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	stopSymbol  = "■"
)

// State holds everything needed to render the player bar.
type State struct {
	Title    string
	Artist   string
	Status   playback.State
	Position time.Duration
	Duration time.Duration
	Index    int // 1-based, 0 when the playlist is empty
	Total    int
	Shuffle  bool
	Repeat   playback.RepeatMode
	Err      error
}

// NewState builds a State from a playback snapshot.
func NewState(s playback.Snapshot) State {
	st := State{
		Status:   s.Status,
		Position: s.Position,
		Duration: s.Duration,
		Total:    len(s.Tracks),
		Shuffle:  s.Shuffle,
		Repeat:   s.Repeat,
		Err:      s.Err,
	}
	if t := s.Current(); t != nil {
		st.Title = t.Title
		st.Artist = t.Artist
		st.Index = s.Index + 1
	}
	return st
}

// Render returns the player panel for the given width.
func Render(s State, width int) string {
	innerWidth := max(width-6, 0) // border and padding

	title := s.Title
	if title == "" {
		title = "No track"
	}
	artist := s.Artist
	if artist == "" {
		artist = "Unknown Artist"
	}

	counter := ""
	if s.Total > 0 {
		counter = fmt.Sprintf("%d/%d", s.Index, s.Total)
	}
	th := styles.T()
	titleText := render.Truncate(title, max(innerWidth-len(counter)-1, 1))
	titleLine := render.Row(
		styles.ApplyGradient(titleText, th.Primary, th.Secondary),
		th.S().Muted.Render(counter),
		innerWidth,
	)

	lines := []string{
		titleLine,
		th.S().Muted.Render(render.Truncate(artist, innerWidth)),
		"",
		RenderProgressBar(s.Position, s.Duration, innerWidth, statusSymbol(s.Status)),
		modeLine(s, innerWidth),
	}
	return th.S().Panel.Width(max(width-2, 0)).Render(strings.Join(lines, "\n"))
}

func statusSymbol(st playback.State) string {
	switch st {
	case playback.StatePlaying:
		return playSymbol
	case playback.StatePaused:
		return pauseSymbol
	default:
		return stopSymbol
	}
}

// modeLine shows the shuffle and repeat indicators, or the load error.
func modeLine(s State, width int) string {
	st := styles.T().S()
	if s.Err != nil {
		return st.Error.Render(render.Truncate("unavailable: "+s.Err.Error(), width))
	}

	shuffle := st.Subtle.Render("shuffle")
	if s.Shuffle {
		shuffle = st.Active.Render("shuffle")
	}
	repeat := st.Subtle.Render("repeat off")
	switch s.Repeat {
	case playback.RepeatAll:
		repeat = st.Active.Render("repeat all")
	case playback.RepeatOne:
		repeat = st.Active.Render("repeat one")
	case playback.RepeatOff:
	}
	return shuffle + st.Subtle.Render(" · ") + repeat
}
