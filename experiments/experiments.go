package experiments

import (
	"fmt"
	"time"

	"hog/dice"
	"hog/engine"
	"hog/experiments/metrics"
	"hog/game"
	"hog/meta"
	"hog/strategy"

	"github.com/rs/zerolog/log"
)

type Matchup struct {
	Name     string
	Strategy game.Strategy
}

type Report struct {
	MaxRolls []metrics.MaxRollsRecord
	WinRates []metrics.WinRateRecord
}

// Lines formats the report one statistic per line.
func (r Report) Lines() []string {
	var lines []string
	for _, record := range r.MaxRolls {
		lines = append(lines, fmt.Sprintf("Max scoring num rolls for %s dice: %d", record.Dice, record.NumRolls))
	}
	for _, record := range r.WinRates {
		lines = append(lines, fmt.Sprintf("%s win rate: %.4f", record.Strategy, record.WinRate))
	}
	return lines
}

type SuiteOption func(s *Suite)

func WithSamples(numSamples int) SuiteOption {
	return func(s *Suite) {
		if numSamples > 0 {
			s.samples = numSamples
		}
	}
}

// WithSeed makes every die rolled by the suite reproducible.
func WithSeed(seed uint64) SuiteOption {
	return func(s *Suite) {
		s.seed = seed
	}
}

func WithGoal(goal int) SuiteOption {
	return func(s *Suite) {
		if goal > 0 {
			s.goal = goal
		}
	}
}

// WithWriter stores the setup and results of the suite.
func WithWriter(writer *metrics.Writer) SuiteOption {
	return func(s *Suite) {
		s.writer = writer
	}
}

// Suite runs the standard set of Hog experiments.
type Suite struct {
	samples int
	seed    uint64
	goal    int
	writer  *metrics.Writer
}

func NewSuite(options ...SuiteOption) *Suite {
	s := &Suite{ // Default values
		samples: meta.NumSamples,
		seed:    uint64(time.Now().UnixNano()),
		goal:    meta.GoalScore,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Matchups lists the strategies evaluated against the baseline.
func (s *Suite) Matchups() []Matchup {
	final := strategy.DefaultFinalParams()
	final.Goal = s.goal
	return []Matchup{
		{Name: "always_roll(8)", Strategy: strategy.AlwaysRoll(8)},
		{Name: "bacon_strategy", Strategy: strategy.DefaultBacon},
		{Name: "swap_strategy", Strategy: strategy.DefaultSwap},
		{Name: "final_strategy", Strategy: strategy.Final(final)},
	}
}

func (s *Suite) Run() (Report, error) {
	start := time.Now()
	six, four := dice.Seeded(s.seed)
	rules := game.NewStandardRules().WithDice(six, four)
	rules.Goal = s.goal

	log.Info().Msgf("starting hog experiments with %d samples and seed %d...", s.samples, s.seed)

	var report Report
	for _, d := range []struct {
		name string
		dice dice.Dice
	}{{"six-sided", six}, {"four-sided", four}} {
		numRolls, err := MaxScoringNumRolls(d.dice, s.samples)
		if err != nil {
			return Report{}, fmt.Errorf("max scoring num rolls for %s dice: %w", d.name, err)
		}
		log.Info().Msgf("max scoring num rolls for %s dice: %d", d.name, numRolls)
		report.MaxRolls = append(report.MaxRolls, metrics.MaxRollsRecord{Dice: d.name, Samples: s.samples, NumRolls: numRolls})
	}

	baselineName := fmt.Sprintf("always_roll(%d)", meta.BaselineRolls)
	baseline := strategy.AlwaysRoll(meta.BaselineRolls)
	matchups := s.Matchups()
	for mi, matchup := range matchups {
		log.Info().Msgf("starting matchup %d of %d between %s and %s...", mi+1, len(matchups), matchup.Name, baselineName)

		collector := metrics.NewCollector()
		rate, err := AverageWinRate(matchup.Strategy, baseline, s.samples,
			engine.WithRules(rules), engine.WithMetrics(collector))
		if err != nil {
			return Report{}, fmt.Errorf("win rate of %s: %w", matchup.Name, err)
		}
		report.WinRates = append(report.WinRates, metrics.WinRateRecord{
			Strategy:      matchup.Name,
			Baseline:      baselineName,
			WinRate:       rate,
			MatchupMetric: collector.Complete(),
		})

		log.Info().Msgf("completed matchup %d of %d with win rate %.4f", mi+1, len(matchups), rate)
	}

	log.Info().Msg("completed hog experiments")

	if s.writer != nil {
		err := s.store(report, start)
		if err != nil {
			return report, err
		}
	}
	return report, nil
}

func (s *Suite) store(report Report, start time.Time) error {
	end := time.Now()
	err := s.writer.WriteSetup(metrics.Setup{
		Seed:       s.seed,
		Goal:       s.goal,
		NumSamples: s.samples,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
	})
	if err != nil {
		return fmt.Errorf("failed to store setup: %w", err)
	}
	log.Info().Msg("stored setup")

	err = s.writer.WriteMaxRolls(report.MaxRolls)
	if err != nil {
		return fmt.Errorf("failed to store max rolls: %w", err)
	}
	err = s.writer.WriteWinRates(report.WinRates)
	if err != nil {
		return fmt.Errorf("failed to store win rates: %w", err)
	}
	log.Info().Msgf("stored results in %s", s.writer.Dir())
	return nil
}
