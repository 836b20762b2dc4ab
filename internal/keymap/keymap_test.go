//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "quit"},
		{ActionPlayPause, []string{" "}, "Play/pause", "play"},
		{ActionSeekBack, []string{"left", "h"}, "Seek back", "-5s"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"h", ActionSeekBack},
		{"z", ""},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.key); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver(Default)

	if got := r.KeysFor(ActionQuit); !slices.Equal(got, []string{"q", "ctrl+c"}) {
		t.Errorf("KeysFor(quit) = %v", got)
	}
	if got := r.KeysFor(Action("missing")); got != nil {
		t.Errorf("KeysFor(missing) = %v, want nil", got)
	}
}

func TestDefault_PlayerKeys(t *testing.T) {
	r := NewResolver(Default)

	want := map[string]Action{
		" ":     ActionPlayPause,
		"n":     ActionNextTrack,
		"p":     ActionPrevTrack,
		"left":  ActionSeekBack,
		"right": ActionSeekForward,
		"s":     ActionToggleShuffle,
		"r":     ActionCycleRepeat,
		"x":     ActionStop,
		"q":     ActionQuit,
	}
	for key, action := range want {
		if got := r.Resolve(key); got != action {
			t.Errorf("Resolve(%q) = %q, want %q", key, got, action)
		}
	}
}

func TestDefault_NoDuplicateKeys(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range Default {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestHelp(t *testing.T) {
	got := Help([]Binding{
		{ActionPlayPause, []string{" "}, "Play/pause", "play"},
		{ActionSeekForward, []string{"right"}, "Seek", "+5s"},
		{ActionQuit, nil, "Quit", "quit"},
	}, " · ")
	if got != "space play · → +5s" {
		t.Errorf("Help() = %q", got)
	}
}
