package experiments

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// MakeAveraged returns a function that calls fn numSamples times and
// returns the mean of its results. The first error stops the sampling.
// It panics if numSamples is less than one.
func MakeAveraged[N Number](fn func() (N, error), numSamples int) func() (float64, error) {
	if numSamples < 1 {
		panic("Must average over at least one sample")
	}
	return func() (float64, error) {
		total := 0.0
		for i := 0; i < numSamples; i++ {
			result, err := fn()
			if err != nil {
				return 0, fmt.Errorf("sample %d of %d: %w", i+1, numSamples, err)
			}
			total += float64(result)
		}
		return total / float64(numSamples), nil
	}
}

// Infallible adapts a function that cannot fail for MakeAveraged.
func Infallible[N Number](fn func() N) func() (N, error) {
	return func() (N, error) {
		return fn(), nil
	}
}
