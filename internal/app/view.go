package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/pulse/internal/keymap"
	"github.com/llehouerou/pulse/internal/ui/playerbar"
	"github.com/llehouerou/pulse/internal/ui/render"
	"github.com/llehouerou/pulse/internal/ui/styles"
)

const helpSeparator = " · "

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	meter := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.visualizer.View())
	bar := playerbar.Render(playerbar.NewState(m.snapshot), m.width)
	help := styles.T().S().Subtle.Render(
		render.Center(keymap.Help(keymap.Default, helpSeparator), m.width),
	)

	return lipgloss.JoinVertical(lipgloss.Left, meter, bar, help)
}
