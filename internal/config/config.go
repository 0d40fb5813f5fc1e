// Package config loads the run configuration of the curriculum simulation. Every field has a default; an optional
// config.json or config.yaml in the working directory overrides any subset of them.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/limaJavier/curriculum/internal/logging"
	"github.com/limaJavier/curriculum/pkg/model"
)

// Files are looked up in this order; the first one found wins
var FileNames = []string{"config.json", "config.yaml", "config.yml"}

type Config struct {
	Students   int                        `mapstructure:"students"`
	SampleSize int                        `mapstructure:"sampleSize"`
	OutputDir  string                     `mapstructure:"outputDir"`
	Seed       uint64                     `mapstructure:"seed"`
	Catalog    string                     `mapstructure:"catalog"` // Optional course table file; the built-in catalog is used when empty
	Workers    int                        `mapstructure:"workers"`
	LogLevel   string                     `mapstructure:"logLevel"`
	LogFormat  string                     `mapstructure:"logFormat"`
	Simulation model.SimulationParameters `mapstructure:"simulation"`
}

func Default() Config {
	return Config{
		Students:   100,
		SampleSize: 10,
		OutputDir:  ".",
		Seed:       1,
		Workers:    runtime.GOMAXPROCS(0),
		LogLevel:   "info",
		LogFormat:  "text",
		Simulation: model.DefaultSimulationParameters(),
	}
}

// Load returns the default configuration overridden by the first config file found in directory.
// The second value is the file that was applied, empty when none exists
func Load(directory string) (Config, string, error) {
	file, found := lo.Find(FileNames, func(name string) bool {
		_, err := os.Stat(filepath.Join(directory, name))
		return err == nil
	})
	if !found {
		cfg := Default()
		return cfg, "", cfg.Validate()
	}

	path := filepath.Join(directory, file)
	cfg, err := LoadFile(path)
	return cfg, path, err
}

func LoadFile(file string) (Config, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		err = json.Unmarshal(bytes, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &raw)
	default:
		err = fmt.Errorf("unsupported config format \"%v\"", filepath.Ext(file))
	}
	if err != nil {
		return Config{}, fmt.Errorf("cannot parse config file %v: %w", file, err)
	}

	return Decode(raw)
}

// Decode applies raw over the defaults. Unknown keys are rejected
func Decode(raw map[string]any) (Config, error) {
	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, cfg.Validate()
}

func (cfg Config) Validate() error {
	var errs []error
	if cfg.Students <= 0 {
		errs = append(errs, fmt.Errorf("students must be positive: %v", cfg.Students))
	}
	if cfg.SampleSize < 0 {
		errs = append(errs, fmt.Errorf("sampleSize must be non-negative: %v", cfg.SampleSize))
	}
	if cfg.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive: %v", cfg.Workers))
	}
	if cfg.OutputDir == "" {
		errs = append(errs, errors.New("outputDir cannot be empty"))
	}
	if _, ok := logging.Levels[cfg.LogLevel]; !ok {
		errs = append(errs, fmt.Errorf("%v is not a valid log level", cfg.LogLevel))
	}
	if !slices.Contains(logging.Formats, cfg.LogFormat) {
		errs = append(errs, fmt.Errorf("%v is not a valid log format", cfg.LogFormat))
	}
	if err := cfg.Simulation.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
