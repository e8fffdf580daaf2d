// Package config loads game settings from the environment, an optional .env
// file and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/minesweep/internal/gamedata"
	"github.com/samdwyer/minesweep/internal/generator"
)

// Config holds game configuration options.
type Config struct {
	// Preset names a board size from presets.json.
	Preset string `env:"MINESWEEP_PRESET" envDefault:"beginner"`
	// Width, Height and Mines override the preset's values when set. Unset
	// is -1, so an explicit 0 still overrides.
	Width  int `env:"MINESWEEP_WIDTH" envDefault:"-1"`
	Height int `env:"MINESWEEP_HEIGHT" envDefault:"-1"`
	Mines  int `env:"MINESWEEP_MINES" envDefault:"-1"`

	// Seed for random number generation. Used for reproducible mine layouts.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"MINESWEEP_SEED"`
	// SafeZone is "neighborhood" or "cell".
	SafeZone string `env:"MINESWEEP_SAFE_ZONE" envDefault:"neighborhood"`

	LogFile   string `env:"MINESWEEP_LOG_FILE"`
	LogLevel  string `env:"MINESWEEP_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"MINESWEEP_LOG_FORMAT" envDefault:"text"`

	Telemetry        bool   `env:"MINESWEEP_TELEMETRY"`
	HoneycombAPIKey  string `env:"HONEYCOMB_MINESWEEP_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_MINESWEEP_DATASET" envDefault:"minesweep"`
}

// Load reads the given .env files (default ".env"), then the process
// environment. Missing .env files are not an error.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Parse builds a Config from an explicit environment map instead of the
// process environment.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// RegisterFlags binds command-line flags that override the loaded values.
func (c *Config) RegisterFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.Preset, "preset", c.Preset, "Board preset: beginner, intermediate or expert.")
	flags.IntVar(&c.Width, "width", c.Width, "Board width; overrides the preset unless -1.")
	flags.IntVar(&c.Height, "height", c.Height, "Board height; overrides the preset unless -1.")
	flags.IntVar(&c.Mines, "mines", c.Mines, "Mine count; overrides the preset unless -1.")
	flags.Int64Var(&c.Seed, "seed", c.Seed, "Random seed for mine placement; 0 is random.")
	flags.StringVar(&c.SafeZone, "safe-zone", c.SafeZone, "First-click safe zone: 'neighborhood' or 'cell'.")
	flags.StringVar(&c.LogFile, "log-file", c.LogFile, "Write logs to this file; empty disables logging.")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn or error.")
}

// Board resolves the board dimensions and mine count from the preset and any
// overrides.
func (c Config) Board(presets *gamedata.PresetRegistry) (width, height, mines int, err error) {
	p := presets.GetByID(c.Preset)
	if p == nil {
		return 0, 0, 0, fmt.Errorf("unknown preset %q (have %s)", c.Preset, strings.Join(presets.IDs(), ", "))
	}

	width, height, mines = p.Width, p.Height, p.Mines
	if c.Width >= 0 {
		width = c.Width
	}
	if c.Height >= 0 {
		height = c.Height
	}
	if c.Mines >= 0 {
		mines = c.Mines
	}
	return width, height, mines, nil
}

// Custom reports whether any preset value is overridden.
func (c Config) Custom() bool {
	return c.Width >= 0 || c.Height >= 0 || c.Mines >= 0
}

// Policy returns the configured safe-zone policy.
func (c Config) Policy() (generator.Policy, error) {
	return generator.ParsePolicy(c.SafeZone)
}

// Level returns the configured log level.
func (c Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}

// Validate checks the values that can be checked without building a game.
func (c Config) Validate(presets *gamedata.PresetRegistry) error {
	var errs []error
	if _, _, _, err := c.Board(presets); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Policy(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.LogFormat))
	}
	return errors.Join(errs...)
}
