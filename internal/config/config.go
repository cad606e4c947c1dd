// Package config loads the wordgraph command-line configuration from an
// optional .env file and WORDGRAPH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/wordgraph/internal/logging"
	"github.com/katalvlaran/wordgraph/pagerank"
	"github.com/katalvlaran/wordgraph/walk"
)

// Prefix is prepended to every recognized variable name.
const Prefix = "WORDGRAPH_"

// DefaultEnvFile is read by Load when present.
const DefaultEnvFile = ".env"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds every tunable of one CLI run.
type Config struct {
	Corpus string

	// Seed drives every random choice. Zero means "derive from the clock".
	Seed int64

	Damping    float64
	Iterations int

	WalkOutput string
	DOTOutput  string
	PNGOutput  string
	Render     bool

	LogLevel logging.Level
	LogJSON  bool
	Trace    bool
}

// NewConfig returns a config with default parameters.
func NewConfig() *Config {
	return &Config{
		Damping:    pagerank.DefaultDamping,
		Iterations: pagerank.DefaultIterations,
		WalkOutput: walk.DefaultOutput,
		DOTOutput:  "graph.dot",
		PNGOutput:  "graph.png",
		LogLevel:   logging.LevelInfo,
	}
}

// Load reads DefaultEnvFile (if it exists) into the process environment
// without overriding variables that are already set, then parses the
// environment into a Config.
func Load() (*Config, error) {
	return LoadFiles(DefaultEnvFile)
}

// LoadFiles is Load with explicit .env paths. Missing files are skipped.
func LoadFiles(files ...string) (*Config, error) {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("config: load %q: %w", f, err)
		}
	}

	return FromEnviron(os.Environ())
}

// FromEnviron parses KEY=VALUE pairs. Unknown keys are ignored.
func FromEnviron(environ []string) (*Config, error) {
	config := NewConfig()
	var err error

	for _, item := range environ {
		key, val, ok := strings.Cut(item, "=")
		if !ok || !strings.HasPrefix(key, Prefix) {
			continue
		}

		switch strings.TrimPrefix(key, Prefix) {
		case "CORPUS":
			config.Corpus = val

		case "SEED":
			config.Seed, err = strconv.ParseInt(val, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("config: parsing %s: %w", key, err)
			}

		case "DAMPING":
			config.Damping, err = strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("config: parsing %s: %w", key, err)
			}

		case "ITERATIONS":
			config.Iterations, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("config: parsing %s: %w", key, err)
			}

		case "WALK_OUTPUT":
			config.WalkOutput = val

		case "DOT_OUTPUT":
			config.DOTOutput = val

		case "PNG_OUTPUT":
			config.PNGOutput = val

		case "RENDER":
			config.Render, err = strconv.ParseBool(val)
			if err != nil {
				return nil, fmt.Errorf("config: parsing %s: %w", key, err)
			}

		case "LOG_LEVEL":
			config.LogLevel, err = logging.ParseLevel(val)
			if err != nil {
				return nil, fmt.Errorf("config: parsing %s: %w", key, err)
			}

		case "LOG_JSON":
			config.LogJSON, err = strconv.ParseBool(val)
			if err != nil {
				return nil, fmt.Errorf("config: parsing %s: %w", key, err)
			}

		case "TRACE":
			config.Trace, err = strconv.ParseBool(val)
			if err != nil {
				return nil, fmt.Errorf("config: parsing %s: %w", key, err)
			}
		}
	}

	return config, nil
}

// Validate checks ranges. It does not check that Corpus exists.
func (c *Config) Validate() error {
	opts := pagerank.Options{Damping: c.Damping, Iterations: c.Iterations}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.WalkOutput == "" {
		return fmt.Errorf("%w: walk output path is empty", ErrInvalid)
	}
	if c.Render && (c.DOTOutput == "" || c.PNGOutput == "") {
		return fmt.Errorf("%w: render needs both DOT and PNG output paths", ErrInvalid)
	}

	return nil
}

// EffectiveSeed returns Seed, or a clock-derived seed when Seed is zero.
func (c *Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}

	return time.Now().UnixNano()
}

// Print writes the effective configuration, one field per line.
func (c *Config) Print(w io.Writer) {
	fmt.Fprintln(w, "Config:")
	fmt.Fprintf(w, "  Corpus: %q\n", c.Corpus)
	fmt.Fprintf(w, "  Seed: %d\n", c.Seed)
	fmt.Fprintf(w, "  Damping: %g\n", c.Damping)
	fmt.Fprintf(w, "  Iterations: %d\n", c.Iterations)
	fmt.Fprintf(w, "  WalkOutput: %q\n", c.WalkOutput)
	fmt.Fprintf(w, "  DOTOutput: %q\n", c.DOTOutput)
	fmt.Fprintf(w, "  PNGOutput: %q\n", c.PNGOutput)
	fmt.Fprintf(w, "  Render: %t\n", c.Render)
	fmt.Fprintf(w, "  LogLevel: %s\n", c.LogLevel)
	fmt.Fprintf(w, "  LogJSON: %t\n", c.LogJSON)
	fmt.Fprintf(w, "  Trace: %t\n", c.Trace)
}
