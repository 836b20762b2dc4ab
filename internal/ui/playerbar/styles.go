package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/pulse/internal/ui/styles"
)

func progressFilledStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary)
}

func progressEmptyStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func timeStyle() lipgloss.Style {
	return styles.T().S().Muted
}
