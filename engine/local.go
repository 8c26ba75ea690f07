package engine

import (
	"errors"
	"fmt"
	"time"

	"hog/experiments/metrics"
	"hog/game"

	"github.com/rs/zerolog/log"
)

var ErrTurnLimit = errors.New("turn limit reached before a winner")

type Option func(e *Engine)

// WithScores sets the starting scores of both players.
func WithScores(score0, score1 int) Option {
	return func(e *Engine) {
		e.state.Scores = [2]int{score0, score1}
	}
}

func WithGoal(goal int) Option {
	return func(e *Engine) {
		if goal > 0 {
			e.goal = goal
		}
	}
}

func WithRules(rules *game.Rules) Option {
	return func(e *Engine) {
		if rules != nil {
			e.rules = rules
		}
	}
}

// WithMaxTurns stops a game that has not ended after n turns. Run then
// returns the scores reached so far along with ErrTurnLimit.
func WithMaxTurns(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxTurns = n
		}
	}
}

// WithHistory records every turn in the result.
func WithHistory() Option {
	return func(e *Engine) {
		e.history = true
	}
}

// WithMetrics reports every finished game to collector.
func WithMetrics(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

// Engine plays a single game; create a new one per game.
type Engine struct {
	strategies [2]game.Strategy
	rules      *game.Rules
	goal       int
	maxTurns   int
	history    bool
	metrics    metrics.Collector
	state      game.State
}

// New returns a game in which strategy0 plays first.
func New(strategy0, strategy1 game.Strategy, options ...Option) *Engine {
	e := &Engine{ // Default values
		strategies: [2]game.Strategy{strategy0, strategy1},
		rules:      game.NewStandardRules(),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	if e.goal == 0 {
		e.goal = e.rules.Goal
	}
	if e.goal != e.rules.Goal {
		rules := *e.rules
		rules.Goal = e.goal
		e.rules = &rules
	}
	return e
}

// Run plays turns until either score reaches the goal.
func (e *Engine) Run() (Result, error) {
	start := time.Now()
	var turns []Turn
	step, swaps := 0, 0
	for !e.state.IsOver(e.goal) {
		if e.maxTurns > 0 && step >= e.maxTurns {
			return e.result(step, swaps, turns), fmt.Errorf("%w: %d turns at scores %v", ErrTurnLimit, step, e.state.Scores)
		}
		step++

		turn, err := e.play()
		if err != nil {
			return Result{}, fmt.Errorf("turn %d of player %d: %w", step, e.state.Player, err)
		}
		turn.Step = step
		if turn.Swapped {
			swaps++
		}
		if e.history {
			turns = append(turns, turn)
		}
		e.state.EndTurn()
	}

	log.Debug().Msgf("game over after %d turns with scores %v", step, e.state.Scores)

	e.metrics.AddGame(metrics.GameMetric{
		Winner:   e.state.Winner(),
		Turns:    step,
		Swaps:    swaps,
		Duration: time.Since(start),
	})

	return e.result(step, swaps, turns), nil
}

func (e *Engine) result(step, swaps int, turns []Turn) Result {
	return Result{
		Score0:    e.state.Scores[0],
		Score1:    e.state.Scores[1],
		TurnCount: step,
		Swaps:     swaps,
		Turns:     turns,
	}
}

func (e *Engine) play() (Turn, error) {
	player := e.state.Player
	opponent := game.Other(player)
	score, opponentScore := e.state.Active()

	numRolls := e.strategies[player](score, opponentScore)
	dice := e.rules.SelectDice(score, opponentScore)
	outcome, err := e.rules.TakeTurn(numRolls, opponentScore, dice)
	if err != nil {
		return Turn{}, err
	}

	switch {
	case numRolls == 0 && outcome != 0:
		// Free Bacon feeds the opponent
		e.state.Award(opponent, outcome)
	case numRolls > 0 && outcome == 0 && e.rules.PiggyBack:
		e.state.Award(opponent, numRolls)
	default:
		e.state.Award(player, outcome)
	}
	swapped := e.state.Swap()

	return Turn{
		Player:   player,
		NumRolls: numRolls,
		Outcome:  outcome,
		Swapped:  swapped,
		Scores:   e.state.Scores,
	}, nil
}

// Play simulates a game and returns the final scores of both players,
// player 0's score first.
func Play(strategy0, strategy1 game.Strategy, options ...Option) (score0, score1 int, err error) {
	result, err := New(strategy0, strategy1, options...).Run()
	if err != nil {
		return 0, 0, err
	}
	return result.Score0, result.Score1, nil
}
