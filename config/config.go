package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/warehouse/grid"
	"github.com/katalvlaran/warehouse/search"
	"github.com/katalvlaran/warehouse/validate"
)

// ErrInvalidConfig is returned when a configuration value is out of range
// or cannot be parsed.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables read by ApplyEnv.
const (
	EnvStrategy       = "WAREHOUSE_STRATEGY"
	EnvRecursive      = "WAREHOUSE_RECURSIVE"
	EnvRecursionLimit = "WAREHOUSE_RECURSION_LIMIT"
	EnvTurnBudget     = "WAREHOUSE_TURN_BUDGET"
	EnvLogLevel       = "WAREHOUSE_LOG_LEVEL"
	EnvHeuristicP     = "WAREHOUSE_HEURISTIC_P"
)

// Config is the full run configuration.
type Config struct {
	Strategy   string          `yaml:"strategy"`
	Moves      [][2]int        `yaml:"moves"`
	Heuristic  HeuristicConfig `yaml:"heuristic"`
	DFS        DFSConfig       `yaml:"dfs"`
	TurnBudget int             `yaml:"turn_budget"` // 0 means width*height
	LogLevel   string          `yaml:"log_level"`
}

// HeuristicConfig selects the Minkowski order of the A* estimate.
type HeuristicConfig struct {
	P float64 `yaml:"p"`
}

// DFSConfig tunes the depth-first strategy.
type DFSConfig struct {
	Recursive      bool  `yaml:"recursive"`
	Shuffle        bool  `yaml:"shuffle"`
	Seed           int64 `yaml:"seed"`
	RecursionLimit int   `yaml:"recursion_limit"`
}

// Default returns A* with the Manhattan estimate over the four orthogonal moves.
func Default() Config {
	moves := grid.Moves4()
	pairs := make([][2]int, len(moves))
	for i, m := range moves {
		pairs[i] = [2]int{m.DRow, m.DCol}
	}

	return Config{
		Strategy:  search.AStar.String(),
		Moves:     pairs,
		Heuristic: HeuristicConfig{P: 1},
		DFS:       DFSConfig{RecursionLimit: search.DefaultRecursionLimit},
		LogLevel:  logrus.InfoLevel.String(),
	}
}

// Load reads the YAML file at path over Default and validates the result.
// Keys missing from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}

	return cfg, cfg.Validate()
}

// ApplyEnv loads the given .env files (".env" when none are named) into the
// process environment, then overrides cfg from the WAREHOUSE_* variables.
// Missing .env files are not an error; variables already set in the
// environment win over .env entries.
func (c *Config) ApplyEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load env file: %w", err)
	}

	if v, ok := os.LookupEnv(EnvStrategy); ok {
		c.Strategy = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvRecursive); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvRecursive, v, err)
		}
		c.DFS.Recursive = b
	}
	if err := envInt(EnvRecursionLimit, &c.DFS.RecursionLimit); err != nil {
		return err
	}
	if err := envInt(EnvTurnBudget, &c.TurnBudget); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvHeuristicP); ok {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvHeuristicP, v, err)
		}
		c.Heuristic.P = p
	}

	return nil
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q must be an integer", ErrInvalidConfig, key, v)
	}
	*dst = n

	return nil
}

// Validate checks every field and reports the first problem found.
func (c Config) Validate() error {
	if _, err := c.Kind(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if len(c.Moves) == 0 {
		return fmt.Errorf("%w: moves must not be empty", ErrInvalidConfig)
	}
	for i, m := range c.Moves {
		if m == [2]int{} {
			return fmt.Errorf("%w: move %d is the zero move", ErrInvalidConfig, i)
		}
	}
	if p := c.Heuristic.P; math.IsNaN(p) || p < 1 {
		return fmt.Errorf("%w: heuristic.p=%v must be >= 1", ErrInvalidConfig, p)
	}
	if c.DFS.RecursionLimit <= 0 {
		return fmt.Errorf("%w: dfs.recursion_limit=%d must be positive", ErrInvalidConfig, c.DFS.RecursionLimit)
	}
	if c.TurnBudget < 0 {
		return fmt.Errorf("%w: turn_budget=%d must not be negative", ErrInvalidConfig, c.TurnBudget)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Kind parses the configured strategy name.
func (c Config) Kind() (search.Kind, error) {
	return search.ParseKind(c.Strategy)
}

// Level parses the configured log level.
func (c Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return lvl, nil
}

// MoveSet converts the configured pairs to grid moves, in order.
func (c Config) MoveSet() []grid.Move {
	out := make([]grid.Move, len(c.Moves))
	for i, m := range c.Moves {
		out[i] = grid.Move{DRow: m[0], DCol: m[1]}
	}

	return out
}

// EngineOptions translates the heuristic and DFS settings to search options.
func (c Config) EngineOptions() []search.Option {
	opts := []search.Option{
		search.WithMinkowski(c.Heuristic.P),
		search.WithRecursive(c.DFS.Recursive),
		search.WithRecursionLimit(c.DFS.RecursionLimit),
	}
	if c.DFS.Shuffle {
		opts = append(opts, search.WithSeed(c.DFS.Seed))
	}

	return opts
}

// NewEngine builds the configured engine. kind overrides the configured
// strategy when given.
func (c Config) NewEngine(kind ...search.Kind) (*search.Engine, error) {
	k, err := c.Kind()
	if len(kind) > 0 {
		k, err = kind[0], nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return search.New(k, c.MoveSet(), c.EngineOptions()...)
}

// ValidatorOptions translates the turn budget and attaches logger.
func (c Config) ValidatorOptions(logger logrus.FieldLogger) []validate.Option {
	return []validate.Option{
		validate.WithTurnBudget(c.TurnBudget),
		validate.WithLogger(logger),
	}
}
