package visualizer

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func newTestModel(rows int) Model {
	return New(rows, rand.New(rand.NewPCG(7, 11)))
}

func TestUpdate_NotPlayingIsFlat(t *testing.T) {
	m := newTestModel(4)
	m.Update(1, true)
	m.Update(1, false)

	for i, h := range m.Heights() {
		if h != minHeight {
			t.Errorf("bar %d = %d, want %d", i, h, minHeight)
		}
	}
}

func TestUpdate_HeightWithinJitterRange(t *testing.T) {
	m := newTestModel(4)
	maxHeight := 4 * eighths

	for range 20 {
		m.Update(1, true)
		for i, h := range m.Heights() {
			if h < int(float64(maxHeight)*minJitter) || h > maxHeight {
				t.Fatalf("bar %d = %d, want within [%d, %d]", i, h, int(float64(maxHeight)*minJitter), maxHeight)
			}
		}
	}
}

func TestUpdate_SilenceKeepsMinimum(t *testing.T) {
	m := newTestModel(3)
	m.Update(0, true)
	for i, h := range m.Heights() {
		if h != minHeight {
			t.Errorf("bar %d = %d, want %d", i, h, minHeight)
		}
	}
}

func TestUpdate_ClampsPower(t *testing.T) {
	m := newTestModel(2)
	m.Update(5, true)
	for i, h := range m.Heights() {
		if h > 2*eighths {
			t.Errorf("bar %d = %d exceeds max", i, h)
		}
	}
}

func TestView_Dimensions(t *testing.T) {
	m := newTestModel(3)
	m.Update(0.5, true)

	out := m.View()
	if h := lipgloss.Height(out); h != 3 {
		t.Errorf("height = %d, want 3", h)
	}
	for _, line := range strings.Split(ansi.Strip(out), "\n") {
		if w := lipgloss.Width(line); w != Width() {
			t.Errorf("line width = %d, want %d", w, Width())
		}
	}
}

func TestView_FlatBarsOnBottomRow(t *testing.T) {
	m := newTestModel(2)
	lines := strings.Split(ansi.Strip(m.View()), "\n")

	if strings.TrimSpace(lines[0]) != "" {
		t.Errorf("top row = %q, want blank", lines[0])
	}
	if got := strings.Count(lines[1], "▁"); got != NumBars {
		t.Errorf("bottom row has %d bars, want %d", got, NumBars)
	}
}
