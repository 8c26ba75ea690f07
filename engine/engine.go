package engine

import "hog/game"

// Turn records what happened during one turn of a game.
type Turn struct {
	Step     int
	Player   int
	NumRolls int
	Outcome  int
	Swapped  bool
	Scores   [2]int // After the turn
}

// Result is the outcome of a finished game.
type Result struct {
	Score0    int
	Score1    int
	TurnCount int
	Swaps     int
	Turns     []Turn // Only recorded WithHistory
}

// Winner returns 0 if player 0 finished strictly ahead, 1 otherwise.
func (r Result) Winner() int {
	return game.NewState(r.Score0, r.Score1).Winner()
}
