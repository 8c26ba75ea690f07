package game

import (
	"errors"
	"fmt"

	"hog/dice"
	"hog/meta"
)

var (
	ErrInvalidRolls = errors.New("invalid number of rolls")
	ErrGameOver     = errors.New("the game should be over")
)

// Strategy returns how many dice to roll given the current player's score
// and the opponent's score. Zero rolls takes Free Bacon.
type Strategy func(score, opponentScore int) (numRolls int)

// Rules holds the tunable parameters of a game of Hog.
type Rules struct {
	Goal      int
	MaxRolls  int
	SixSided  dice.Dice
	FourSided dice.Dice
	// PiggyBack gives the opponent numRolls points whenever a rolling turn scores 0.
	PiggyBack bool
}

func NewStandardRules() *Rules {
	return &Rules{
		Goal:      meta.GoalScore,
		MaxRolls:  meta.MaxRolls,
		SixSided:  dice.SixSided,
		FourSided: dice.FourSided,
	}
}

// WithDice returns a copy of the rules using the given dice.
func (r *Rules) WithDice(six, four dice.Dice) *Rules {
	cp := *r
	cp.SixSided = six
	cp.FourSided = four
	return &cp
}

func (r *Rules) validate(numRolls, opponentScore int) error {
	if numRolls < 0 || numRolls > r.MaxRolls {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidRolls, numRolls, r.MaxRolls)
	}
	if opponentScore >= r.Goal {
		return fmt.Errorf("%w: opponent has %d of %d", ErrGameOver, opponentScore, r.Goal)
	}
	return nil
}

// Other returns the other player, for a player numbered 0 or 1.
func Other(player int) int {
	return 1 - player
}
