package calc

import (
	"math"
	"math/rand/v2"
)

// Rand is the uniform source used by generator widgets.
type Rand interface {
	// IntN returns a uniform int in [0, n).
	IntN(n int) int
}

type defaultRand struct{}

func (defaultRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand draws from the math/rand/v2 global source.
func DefaultRand() Rand { return defaultRand{} }

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
