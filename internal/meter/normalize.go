// Package meter converts decibel power readings into visual intensities.
package meter

import "math"

const (
	// Floor is the decibel level mapped to zero intensity.
	Floor = -80.0

	// DefaultGamma shapes the curve between Floor and 0 dB.
	DefaultGamma = 2.0

	minGamma = 1.5
	maxGamma = 2.0
)

// Normalizer maps decibel power to a 0.0-1.0 intensity.
type Normalizer struct {
	gamma float64
}

// NewNormalizer returns a normalizer using the given gamma.
// Gamma is clamped to [1.5, 2.0]; zero or negative values use DefaultGamma.
func NewNormalizer(gamma float64) Normalizer {
	if gamma <= 0 {
		gamma = DefaultGamma
	}
	return Normalizer{gamma: min(max(gamma, minGamma), maxGamma)}
}

// Gamma returns the exponent in use.
func (n Normalizer) Gamma() float64 {
	if n.gamma == 0 {
		return DefaultGamma
	}
	return n.gamma
}

// Normalize converts db to [0, 1]. Readings at or above 0 dB give 1,
// readings at or below Floor give 0, and non-finite readings give 0.
func (n Normalizer) Normalize(db float64) float64 {
	if math.IsNaN(db) || math.IsInf(db, 0) {
		return 0
	}
	if db >= 0 {
		return 1
	}
	if db <= Floor {
		return 0
	}
	return math.Pow((db-Floor)/-Floor, n.Gamma())
}

// Valid reports whether db is a usable reading.
func Valid(db float64) bool {
	return !math.IsNaN(db) && !math.IsInf(db, 0)
}
