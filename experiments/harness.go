package experiments

import (
	"errors"
	"fmt"

	"hog/dice"
	"hog/engine"
	"hog/game"
	"hog/meta"
)

var ErrInvalidSamples = errors.New("invalid number of samples")

func validateSamples(numSamples int) error {
	if numSamples < 1 {
		return fmt.Errorf("%w: must average at least one sample, got %d", ErrInvalidSamples, numSamples)
	}
	return nil
}

// MaxScoringNumRolls returns the number of dice (1 to 10) with the highest
// average rolled total over numSamples turns. Ties go to fewer dice.
func MaxScoringNumRolls(d dice.Dice, numSamples int) (int, error) {
	if err := validateSamples(numSamples); err != nil {
		return 0, err
	}
	best, bestAverage := 1, 0.0
	for numRolls := 1; numRolls <= meta.MaxRolls; numRolls++ {
		average, err := MakeAveraged(func() (int, error) {
			return game.RollDice(numRolls, d)
		}, numSamples)()
		if err != nil {
			return 0, err
		}
		if average > bestAverage {
			best, bestAverage = numRolls, average
		}
	}
	return best, nil
}

// Winner returns 0 if strategy0 beats strategy1 in one game, 1 otherwise.
func Winner(strategy0, strategy1 game.Strategy, options ...engine.Option) (int, error) {
	result, err := engine.New(strategy0, strategy1, options...).Run()
	if err != nil {
		return 0, err
	}
	return result.Winner(), nil
}

// AverageWinRate returns the win rate of strategy against baseline,
// averaged over playing first and playing second.
func AverageWinRate(strategy, baseline game.Strategy, numSamples int, options ...engine.Option) (float64, error) {
	if err := validateSamples(numSamples); err != nil {
		return 0, err
	}
	asPlayer0, err := MakeAveraged(func() (int, error) {
		return Winner(strategy, baseline, options...)
	}, numSamples)()
	if err != nil {
		return 0, err
	}
	asPlayer1, err := MakeAveraged(func() (int, error) {
		return Winner(baseline, strategy, options...)
	}, numSamples)()
	if err != nil {
		return 0, err
	}
	return ((1 - asPlayer0) + asPlayer1) / 2, nil
}
