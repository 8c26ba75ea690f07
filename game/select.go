package game

import "hog/dice"

// SelectDice picks four-sided dice when the sum of both scores is a
// multiple of 7 (Hog Wild), six-sided dice otherwise.
func (r *Rules) SelectDice(score, opponentScore int) dice.Dice {
	if (score+opponentScore)%7 == 0 {
		return r.FourSided
	}
	return r.SixSided
}

func SelectDice(score, opponentScore int) dice.Dice {
	return standard.SelectDice(score, opponentScore)
}

// IsSwap reports whether the last two digits of score0 and score1 are
// reversals of each other, such as 19 and 91.
func IsSwap(score0, score1 int) bool {
	s0, s1 := lastTwoDigits(score0), lastTwoDigits(score1)
	return s0%10 == s1/10 && s0/10 == s1%10
}

// Scores stay below 200 during play, so one subtraction is enough.
func lastTwoDigits(score int) int {
	if score >= 100 {
		return score - 100
	}
	return score
}
