package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/pulse/internal/keymap"
	"github.com/llehouerou/pulse/internal/playback"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MeterChangedMsg:
		m.snapshot = m.engine.Snapshot()
		m.visualizer.Update(msg.Power, m.snapshot.Status == playback.StatePlaying)
		return m, m.WatchEvents()

	case StateChangedMsg:
		m.snapshot = m.engine.Snapshot()
		if msg.Current != playback.StatePlaying {
			m.visualizer.Update(0, false)
		}
		return m, m.WatchEvents()

	case ErrorMsg:
		m.logger.Debug("playback error",
			zap.String("operation", msg.Operation),
			zap.String("source", msg.Source),
			zap.Error(msg.Err))
		m.snapshot = m.engine.Snapshot()
		return m, m.WatchEvents()

	case TrackChangedMsg, QueueChangedMsg, ModeChangedMsg, PositionChangedMsg:
		m.snapshot = m.engine.Snapshot()
		return m, m.WatchEvents()

	case ServiceClosedMsg:
		m.sub = nil
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionPlayPause:
		m.engine.TogglePlayPause()
	case keymap.ActionStop:
		m.engine.Stop()
	case keymap.ActionNextTrack:
		m.engine.Next()
	case keymap.ActionPrevTrack:
		m.engine.Previous()
	case keymap.ActionSeekForward:
		m.engine.SeekBy(SeekStep)
	case keymap.ActionSeekBack:
		m.engine.SeekBy(-SeekStep)
	case keymap.ActionToggleShuffle:
		m.engine.ToggleShuffle()
	case keymap.ActionCycleRepeat:
		m.engine.CycleRepeatMode()
	default:
		return m, nil
	}
	m.snapshot = m.engine.Snapshot()
	return m, nil
}
