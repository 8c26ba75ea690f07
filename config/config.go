package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"HOG_LOG_LEVEL" env-default:"info"`
	Goal       int    `yaml:"goal" env:"HOG_GOAL" env-default:"100"`
	NumSamples int    `yaml:"samples" env:"HOG_SAMPLES" env-default:"1000"`
	Seed       uint64 `yaml:"seed" env:"HOG_SEED"`
	OutputDir  string `yaml:"output-dir" env:"HOG_OUTPUT_DIR"`
}

// Load reads the config file at path, or only the environment when path is
// empty. Environment variables override the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) validate() error {
	if c.Goal <= 0 {
		return fmt.Errorf("goal must be positive, got %d", c.Goal)
	}
	if c.NumSamples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", c.NumSamples)
	}
	return nil
}
