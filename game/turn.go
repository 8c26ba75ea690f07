package game

import (
	"fmt"

	"hog/dice"
)

var standard = NewStandardRules()

// RollDice rolls d exactly numRolls times and returns the sum of the
// outcomes, or 0 if any outcome is 1 (Pig Out).
func RollDice(numRolls int, d dice.Dice) (int, error) {
	if numRolls < 1 {
		return 0, fmt.Errorf("%w: must roll at least once, got %d", ErrInvalidRolls, numRolls)
	}
	total := 0
	pigOut := false
	for i := 0; i < numRolls; i++ {
		outcome := d.Roll()
		if outcome == 1 {
			pigOut = true
		}
		total += outcome
	}
	if pigOut {
		return 0, nil
	}
	return total, nil
}

// FreeBacon is one more than the larger digit of a two-digit opponent score.
func FreeBacon(opponentScore int) int {
	return max(opponentScore/10, opponentScore%10) + 1
}

// BaconGain is what a zero-roll turn yields after the Hogtimus Prime rule.
func BaconGain(opponentScore int) int {
	return Hogtimus(FreeBacon(opponentScore))
}

// TakeTurn simulates a turn of numRolls dice, where zero rolls takes Free
// Bacon, and applies the Hogtimus Prime rule to the outcome. Arguments are
// validated before any dice are rolled.
func (r *Rules) TakeTurn(numRolls, opponentScore int, d dice.Dice) (int, error) {
	if err := r.validate(numRolls, opponentScore); err != nil {
		return 0, err
	}

	var outcome int
	if numRolls == 0 {
		outcome = FreeBacon(opponentScore)
	} else {
		total, err := RollDice(numRolls, d)
		if err != nil {
			return 0, err
		}
		outcome = total
	}
	return Hogtimus(outcome), nil
}

// TakeTurn plays a turn under the standard rules.
func TakeTurn(numRolls, opponentScore int, d dice.Dice) (int, error) {
	return standard.TakeTurn(numRolls, opponentScore, d)
}
