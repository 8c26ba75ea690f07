package metrics

import (
	"sync/atomic"
	"time"
)

type GameMetric struct {
	Winner   int // Player 0 or 1
	Turns    int
	Swaps    int
	Duration time.Duration
}

// MatchupMetric aggregates the games played between one pair of strategies.
type MatchupMetric struct {
	Games     int
	Wins0     int // Games won by player 0
	Turns     int
	Swaps     int
	Duration  time.Duration
	MeanTurns float64
}

type Collector interface {
	AddGame(metric GameMetric)
	Complete() MatchupMetric
}

type collector struct {
	games    atomic.Int64
	wins0    atomic.Int64
	turns    atomic.Int64
	swaps    atomic.Int64
	duration atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) AddGame(metric GameMetric) {
	m.games.Add(1)
	if metric.Winner == 0 {
		m.wins0.Add(1)
	}
	m.turns.Add(int64(metric.Turns))
	m.swaps.Add(int64(metric.Swaps))
	m.duration.Add(int64(metric.Duration))
}

func (m *collector) Complete() MatchupMetric {
	result := MatchupMetric{
		Games:    int(m.games.Load()),
		Wins0:    int(m.wins0.Load()),
		Turns:    int(m.turns.Load()),
		Swaps:    int(m.swaps.Load()),
		Duration: time.Duration(m.duration.Load()),
	}
	if result.Games > 0 {
		result.MeanTurns = float64(result.Turns) / float64(result.Games)
	}
	return result
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) AddGame(metric GameMetric) {}
func (m *dummyCollector) Complete() MatchupMetric   { return MatchupMetric{} }
