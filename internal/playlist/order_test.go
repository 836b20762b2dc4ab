package playlist

import (
	"math/rand/v2"
	"testing"
)

func TestNextIndex(t *testing.T) {
	tests := []struct {
		name    string
		current int
		length  int
		want    int
	}{
		{"middle", 1, 3, 2},
		{"last wraps", 2, 3, 0},
		{"single track", 0, 1, 0},
		{"empty", 0, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextIndex(tt.current, tt.length); got != tt.want {
				t.Errorf("NextIndex(%d, %d) = %d, want %d", tt.current, tt.length, got, tt.want)
			}
		})
	}
}

func TestPreviousIndex(t *testing.T) {
	tests := []struct {
		name    string
		current int
		length  int
		want    int
	}{
		{"middle", 1, 3, 0},
		{"first wraps", 0, 3, 2},
		{"single track", 0, 1, 0},
		{"empty", 0, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PreviousIndex(tt.current, tt.length); got != tt.want {
				t.Errorf("PreviousIndex(%d, %d) = %d, want %d", tt.current, tt.length, got, tt.want)
			}
		})
	}
}

func TestNextThenPrevious_ReturnsToStart(t *testing.T) {
	const length = 4
	for i := range length {
		if got := PreviousIndex(NextIndex(i, length), length); got != i {
			t.Errorf("PreviousIndex(NextIndex(%d)) = %d", i, got)
		}
	}
}

func TestRandomIndex_InRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	for range 200 {
		idx := RandomIndex(rng, 7)
		if idx < 0 || idx >= 7 {
			t.Fatalf("RandomIndex() = %d, out of [0, 7)", idx)
		}
	}
	if got := RandomIndex(rng, 0); got != -1 {
		t.Errorf("RandomIndex(empty) = %d, want -1", got)
	}
}

func TestHasNext(t *testing.T) {
	if !HasNext(0, 3) {
		t.Error("HasNext(0, 3) = false, want true")
	}
	if HasNext(2, 3) {
		t.Error("HasNext(2, 3) = true, want false")
	}
	if HasNext(-1, 0) {
		t.Error("HasNext(-1, 0) = true, want false")
	}
}
