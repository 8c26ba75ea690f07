package strategy

import (
	"hog/game"
	"hog/meta"
)

// AlwaysRoll returns a strategy that always rolls n dice.
func AlwaysRoll(n int) game.Strategy {
	return func(score, opponentScore int) int {
		return n
	}
}

// BaconStrategy rolls 0 dice if that gives at least margin points, and
// numRolls otherwise.
func BaconStrategy(score, opponentScore, margin, numRolls int) int {
	if game.BaconGain(opponentScore) >= margin {
		return 0
	}
	return numRolls
}

func Bacon(margin, numRolls int) game.Strategy {
	return func(score, opponentScore int) int {
		return BaconStrategy(score, opponentScore, margin, numRolls)
	}
}

// SwapStrategy rolls 0 dice when the Free Bacon points would trigger a
// swap that leaves the player ahead, and numRolls otherwise.
func SwapStrategy(score, opponentScore, numRolls int) int {
	if favorableSwap(score, opponentScore) {
		return 0
	}
	return numRolls
}

func Swap(numRolls int) game.Strategy {
	return func(score, opponentScore int) int {
		return SwapStrategy(score, opponentScore, numRolls)
	}
}

func favorableSwap(score, opponentScore int) bool {
	after := score + game.BaconGain(opponentScore)
	return game.IsSwap(after, opponentScore) && after < opponentScore
}

// Defaults used by the experiment suite.
var (
	DefaultBacon = Bacon(8, meta.BaselineRolls)
	DefaultSwap  = Swap(meta.BaselineRolls)
)
