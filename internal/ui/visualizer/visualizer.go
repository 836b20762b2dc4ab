// Package visualizer renders the normalized output power as a row of bars.
package visualizer

import (
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/pulse/internal/ui/styles"
)

const (
	// NumBars is the number of bars drawn.
	NumBars = 15

	minJitter = 0.6
	maxJitter = 1.0

	// Heights are measured in eighths of a cell.
	eighths   = 8
	minHeight = 1
)

var levels = []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// Model holds the bar heights of the last frame.
type Model struct {
	rows    int
	rng     *rand.Rand
	heights [NumBars]int
}

// New creates a visualizer rows cells tall. A nil rng uses a random seed.
func New(rows int, rng *rand.Rand) Model {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // visual jitter
	}
	m := Model{rows: max(rows, 1), rng: rng}
	m.flatten()
	return m
}

// Update computes a new frame. While playing each bar is
// max(min, power * maxHeight * jitter) with jitter drawn from [0.6, 1.0];
// otherwise all bars are flat.
func (m *Model) Update(power float64, playing bool) {
	if !playing {
		m.flatten()
		return
	}
	power = min(max(power, 0), 1)
	maxHeight := float64(m.rows * eighths)
	for i := range m.heights {
		jitter := minJitter + m.rng.Float64()*(maxJitter-minJitter)
		m.heights[i] = max(minHeight, int(power*maxHeight*jitter))
	}
}

func (m *Model) flatten() {
	for i := range m.heights {
		m.heights[i] = minHeight
	}
}

// Heights returns the bar heights in eighths of a cell.
func (m Model) Heights() []int {
	return append([]int(nil), m.heights[:]...)
}

// Rows returns the height of the visualizer in cells.
func (m Model) Rows() int {
	return m.rows
}

// View renders the bars, top row first, colored from MeterLow at the
// bottom to MeterHigh at the top.
func (m Model) View() string {
	th := styles.T()
	colors := styles.Ramp(m.rows, th.MeterLow, th.MeterHigh)

	lines := make([]string, m.rows)
	for row := range m.rows {
		level := m.rows - 1 - row // 0 is the bottom row
		cells := make([]string, NumBars)
		for i, h := range m.heights {
			cells[i] = levels[min(max(h-level*eighths, 0), eighths)]
		}
		style := lipgloss.NewStyle().Foreground(colors[level])
		lines[row] = style.Render(strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

// Width returns the rendered width in cells.
func Width() int {
	return NumBars*2 - 1
}
