package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type MaxRollsRecord struct {
	Dice     string
	Samples  int
	NumRolls int
}

type WinRateRecord struct {
	Strategy string
	Baseline string
	WinRate  float64
	MatchupMetric
}

type Setup struct {
	Seed       uint64        `json:"seed"`
	Goal       int           `json:"goal"`
	NumSamples int           `json:"numSamples"`
	StartTime  time.Time     `json:"startTime"`
	EndTime    time.Time     `json:"endTime"`
	Duration   time.Duration `json:"duration"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped results folder under dir.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, "hog", timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	path := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

func (w *Writer) WriteMaxRolls(records []MaxRollsRecord) error {
	header := []string{"dice", "samples", "num_rolls"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Dice,
			strconv.Itoa(record.Samples),
			strconv.Itoa(record.NumRolls),
		})
	}
	return w.writeCSV("max_rolls.csv", header, rows)
}

func (w *Writer) WriteWinRates(records []WinRateRecord) error {
	header := []string{"strategy", "baseline", "win_rate", "games", "player0_wins", "mean_turns", "swaps", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Strategy,
			record.Baseline,
			strconv.FormatFloat(record.WinRate, 'f', 4, 64),
			strconv.Itoa(record.Games),
			strconv.Itoa(record.Wins0),
			strconv.FormatFloat(record.MeanTurns, 'f', 2, 64),
			strconv.Itoa(record.Swaps),
			record.Duration.String(),
		})
	}
	return w.writeCSV("win_rates.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
