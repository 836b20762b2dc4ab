package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// FormatTime formats d as m:ss, truncating fractions of a second.
// Negative durations format as 0:00.
func FormatTime(d time.Duration) string {
	total := max(int(d/time.Second), 0)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// RenderProgressBar renders a block-style progress bar.
// Format: ▶  1:23  ▓▓▓▓▓░░░░░  4:56
func RenderProgressBar(position, duration time.Duration, width int, status string) string {
	posStr := FormatTime(position)
	durStr := FormatTime(duration)

	fixedWidth := lipgloss.Width(status) + 2 + lipgloss.Width(posStr) + 2 + 2 + lipgloss.Width(durStr)
	barWidth := width - fixedWidth
	if barWidth < 3 {
		// Too narrow for bar, just show times
		return status + "  " + posStr + " / " + durStr
	}

	filled := filledCells(position, duration, barWidth)
	bar := progressFilledStyle().Render(strings.Repeat(filledBlock, filled)) +
		progressEmptyStyle().Render(strings.Repeat(emptyBlock, barWidth-filled))

	return status + "  " + timeStyle().Render(posStr) + "  " + bar + "  " + timeStyle().Render(durStr)
}

func filledCells(position, duration time.Duration, width int) int {
	if duration <= 0 || position <= 0 {
		return 0
	}
	ratio := float64(position) / float64(duration)
	return min(int(float64(width)*ratio), width)
}
