package game

// State is the dynamic state of a game between two players.
type State struct {
	Scores [2]int // Indexed by player
	Player int    // Player about to take a turn
}

func NewState(score0, score1 int) State {
	return State{Scores: [2]int{score0, score1}}
}

// Active returns the current player's score and the opponent's score.
func (s State) Active() (score, opponentScore int) {
	return s.Scores[s.Player], s.Scores[Other(s.Player)]
}

// Award adds points to a player's score.
func (s *State) Award(player, points int) {
	s.Scores[player] += points
}

// Swap exchanges the scores when their last two digits mirror each other.
func (s *State) Swap() bool {
	if !IsSwap(s.Scores[0], s.Scores[1]) {
		return false
	}
	s.Scores[0], s.Scores[1] = s.Scores[1], s.Scores[0]
	return true
}

// EndTurn passes play to the other player.
func (s *State) EndTurn() {
	s.Player = Other(s.Player)
}

// IsOver reports whether either score has reached goal.
func (s State) IsOver(goal int) bool {
	return s.Scores[0] >= goal || s.Scores[1] >= goal
}

// Winner returns 0 if player 0 has the strictly higher score, 1 otherwise.
func (s State) Winner() int {
	if s.Scores[0] > s.Scores[1] {
		return 0
	}
	return 1
}
