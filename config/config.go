// Package config loads the polar3 command configuration from YAML.
//
// Every field has a default (see Default); a file only needs to name the
// values it overrides. Unknown keys are rejected so typos surface early.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polar3/batch"
	"github.com/katalvlaran/polar3/batchfile"
	"github.com/katalvlaran/polar3/pcg"
)

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Log formats.
const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the full command configuration.
type Config struct {
	Log   LogConfig   `yaml:"log"`
	Solve SolveConfig `yaml:"solve"`
	Files FilesConfig `yaml:"files"`
	Gen   GenConfig   `yaml:"gen"`
	Check CheckConfig `yaml:"check"`
}

// LogConfig controls zerolog output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // auto, console or json
}

// SolveConfig maps onto batch options.
type SolveConfig struct {
	Workers            int `yaml:"workers"`
	MinBlocksPerWorker int `yaml:"min_blocks_per_worker"`
}

// FilesConfig controls written batch files.
type FilesConfig struct {
	Compression string `yaml:"compression"`
}

// GenConfig controls synthetic batch generation.
type GenConfig struct {
	Blocks int    `yaml:"blocks"`
	Seed   uint64 `yaml:"seed"`
	Stream uint64 `yaml:"stream"`
}

// CheckConfig controls result verification.
type CheckConfig struct {
	Tolerance float64 `yaml:"tolerance"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:   LogConfig{Level: "info", Format: FormatAuto},
		Solve: SolveConfig{Workers: batch.DefaultWorkers, MinBlocksPerWorker: batch.DefaultMinBlocksPerWorker},
		Files: FilesConfig{Compression: batchfile.Zstd.String()},
		Gen:   GenConfig{Blocks: 1024, Seed: pcg.DefaultState, Stream: pcg.DefaultSeq},
		Check: CheckConfig{Tolerance: 1e-3},
	}
}

// Load reads and validates the YAML file at path over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over the defaults and validates the result.
// An empty document yields Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field, reporting the first invalid one.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level)
	}
	switch c.Log.Format {
	case FormatAuto, FormatConsole, FormatJSON:
	default:
		return invalid("log.format", c.Log.Format)
	}
	if c.Solve.Workers < 0 {
		return invalid("solve.workers", c.Solve.Workers)
	}
	if c.Solve.MinBlocksPerWorker < 1 {
		return invalid("solve.min_blocks_per_worker", c.Solve.MinBlocksPerWorker)
	}
	if _, err := batchfile.ParseCompression(c.Files.Compression); err != nil {
		return invalid("files.compression", c.Files.Compression)
	}
	if c.Gen.Blocks < 0 {
		return invalid("gen.blocks", c.Gen.Blocks)
	}
	if !(c.Check.Tolerance > 0) {
		return invalid("check.tolerance", c.Check.Tolerance)
	}
	return nil
}

// BatchOptions returns the batch options selected by c.Solve.
func (c Config) BatchOptions() []batch.Option {
	return []batch.Option{
		batch.WithWorkers(c.Solve.Workers),
		batch.WithMinBlocksPerWorker(c.Solve.MinBlocksPerWorker),
	}
}

func invalid(field string, v any) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalidConfig, field, v)
}
