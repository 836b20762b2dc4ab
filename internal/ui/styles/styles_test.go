package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRamp_Endpoints(t *testing.T) {
	from, to := lipgloss.Color("#000000"), lipgloss.Color("#ffffff")

	colors := Ramp(5, from, to)
	if len(colors) != 5 {
		t.Fatalf("len = %d, want 5", len(colors))
	}
	if colors[0] != "#000000" {
		t.Errorf("first = %q, want #000000", colors[0])
	}
	if colors[4] != "#ffffff" {
		t.Errorf("last = %q, want #ffffff", colors[4])
	}
}

func TestRamp_Sizes(t *testing.T) {
	if got := Ramp(0, "#000000", "#ffffff"); got != nil {
		t.Errorf("Ramp(0) = %v, want nil", got)
	}
	if got := Ramp(1, "#123456", "#ffffff"); len(got) != 1 || got[0] != "#123456" {
		t.Errorf("Ramp(1) = %v", got)
	}
}

func TestRamp_ANSIBlendsFromGray(t *testing.T) {
	colors := Ramp(3, lipgloss.Color("240"), lipgloss.Color("#ffffff"))
	if colors[0] != "240" {
		t.Errorf("first = %q, want 240", colors[0])
	}
	if mid := string(colors[1]); len(mid) != 7 || mid[0] != '#' {
		t.Errorf("middle = %q, want a hex color", mid)
	}
}

func TestApplyGradient(t *testing.T) {
	if ApplyGradient("", "#000000", "#ffffff") != "" {
		t.Error("empty text should render empty")
	}
	out := ApplyGradient("héllo", "#000000", "#ffffff")
	if lipgloss.Width(out) != 5 {
		t.Errorf("width = %d, want 5", lipgloss.Width(out))
	}
}

func TestTheme_StylesCached(t *testing.T) {
	th := T()
	if th.S() != th.S() {
		t.Error("S() should return the same styles")
	}
}
