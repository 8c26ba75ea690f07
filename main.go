package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"hog/config"
	"hog/experiments"
	"hog/experiments/metrics"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var runExperiments bool
	flag.BoolVar(&runExperiments, "run_experiments", false, "Runs strategy experiments")
	flag.BoolVar(&runExperiments, "r", false, "Runs strategy experiments (shorthand)")
	configPath := flag.String("config", "", "Path to a YAML config file")
	flag.Parse()

	_ = godotenv.Load()
	conf := config.MustLoad(*configPath)
	initLogger(conf.LogLevel)

	if runExperiments {
		runSuite(conf)
	}
}

func initLogger(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", level)
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func runSuite(conf *config.Config) {
	options := []experiments.SuiteOption{
		experiments.WithSamples(conf.NumSamples),
		experiments.WithGoal(conf.Goal),
	}
	if conf.Seed != 0 {
		options = append(options, experiments.WithSeed(conf.Seed))
	}
	if conf.OutputDir != "" {
		writer, err := metrics.NewWriter(conf.OutputDir)
		if err != nil {
			panic(fmt.Sprintf("failed to create experiment writer: %v", err))
		}
		options = append(options, experiments.WithWriter(writer))
	}

	report, err := experiments.NewSuite(options...).Run()
	if err != nil {
		log.Fatal().Err(err).Msg("experiments failed")
	}
	for _, line := range report.Lines() {
		fmt.Println(line)
	}
}
