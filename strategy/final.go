package strategy

import (
	"hog/game"
	"hog/meta"
)

// FinalParams tunes the final strategy.
type FinalParams struct {
	Goal           int
	AvoidSwapRolls int // Rolled when Free Bacon would swap in the opponent's favor
	NearGoalLow    int // Scores in [NearGoalLow, NearGoalHigh] roll NearGoalRolls
	NearGoalHigh   int
	NearGoalRolls  int
	FinishRolls    int // Rolled above NearGoalHigh
	Margin         int
	DefaultRolls   int
}

func DefaultFinalParams() FinalParams {
	return FinalParams{
		Goal:           meta.GoalScore,
		AvoidSwapRolls: 4,
		NearGoalLow:    88,
		NearGoalHigh:   97,
		NearGoalRolls:  3,
		FinishRolls:    2,
		Margin:         6,
		DefaultRolls:   4,
	}
}

// Final returns a strategy that in order:
// takes a favorable swap, avoids an unfavorable one, takes Free Bacon when
// it wins outright, rolls fewer dice close to the goal, and takes Free Bacon
// whenever it is worth at least the margin.
func Final(p FinalParams) game.Strategy {
	return func(score, opponentScore int) int {
		gain := game.BaconGain(opponentScore)
		after := score + gain
		swap := game.IsSwap(after, opponentScore)

		switch {
		case swap && after < opponentScore:
			return 0
		case swap && after > opponentScore:
			return p.AvoidSwapRolls
		case after >= p.Goal:
			return 0
		case score >= p.NearGoalLow && score <= p.NearGoalHigh:
			return p.NearGoalRolls
		case score > p.NearGoalHigh:
			return p.FinishRolls
		case gain >= p.Margin:
			return 0
		}
		return p.DefaultRolls
	}
}

// FinalStrategy is Final with the default parameters.
func FinalStrategy(score, opponentScore int) int {
	return defaultFinal(score, opponentScore)
}

var defaultFinal = Final(DefaultFinalParams())
