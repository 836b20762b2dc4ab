package playlist

import "math/rand/v2"

// NextIndex returns the index after current, wrapping to 0 after the last track.
// Returns -1 for an empty playlist.
func NextIndex(current, length int) int {
	if length <= 0 {
		return -1
	}
	return (current + 1) % length
}

// PreviousIndex returns the index before current, wrapping to the last track.
// Returns -1 for an empty playlist.
func PreviousIndex(current, length int) int {
	if length <= 0 {
		return -1
	}
	return (current - 1 + length) % length
}

// RandomIndex picks a uniformly random index in [0, length).
// The current index may be picked again. Returns -1 for an empty playlist.
func RandomIndex(rng *rand.Rand, length int) int {
	if length <= 0 {
		return -1
	}
	return rng.IntN(length)
}

// HasNext reports whether a track follows current in sequence order.
func HasNext(current, length int) bool {
	return current >= 0 && current < length-1
}
