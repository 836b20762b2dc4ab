package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pulse/internal/playback"
)

// Engine events converted to tea messages.
type (
	StateChangedMsg    playback.StateChange
	TrackChangedMsg    playback.TrackChange
	QueueChangedMsg    playback.QueueChange
	ModeChangedMsg     playback.ModeChange
	PositionChangedMsg playback.PositionChange
	MeterChangedMsg    playback.MeterChange
	ErrorMsg           playback.ErrorEvent
	// ServiceClosedMsg is sent once the engine has shut down.
	ServiceClosedMsg struct{}
)

// WatchEvents returns a command that waits for the next engine event.
// It listens on all subscription channels and converts events to tea.Msg.
func (m Model) WatchEvents() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	sub := m.sub
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return StateChangedMsg(e)
		case e := <-sub.TrackChanged:
			return TrackChangedMsg(e)
		case e := <-sub.QueueChanged:
			return QueueChangedMsg(e)
		case e := <-sub.ModeChanged:
			return ModeChangedMsg(e)
		case e := <-sub.PositionChanged:
			return PositionChangedMsg(e)
		case e := <-sub.MeterChanged:
			return MeterChangedMsg(e)
		case e := <-sub.Error:
			return ErrorMsg(e)
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}
