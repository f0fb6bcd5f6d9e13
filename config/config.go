// Package config loads and validates the mazepath YAML configuration.
//
// A configuration lists the batch runs (input file, output file,
// connectivity), the strategies applied to every maze, and the ambient
// settings for workers, logging and metrics. Default reproduces the classic
// two-file batch: path_finding_a.txt under 4-connectivity and
// path_finding_b.txt under 8-connectivity, each solved greedy then A*.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// MaxFileSize bounds the configuration file read by Load.
const MaxFileSize = 1 << 20

var (
	// ErrTooLarge indicates a configuration file above MaxFileSize.
	ErrTooLarge = errors.New("config: file too large")
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("strategy", func(fl validator.FieldLevel) bool {
		_, err := search.ParseStrategy(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("connectivity", func(fl validator.FieldLevel) bool {
		_, err := grid.ParseConnectivity(fl.Field().String())
		return err == nil
	})
}

// Config is the root document.
type Config struct {
	Runs          []Run    `yaml:"runs" validate:"required,min=1,dive"`
	Strategies    []string `yaml:"strategies" validate:"required,min=1,dive,strategy"`
	Workers       int      `yaml:"workers" validate:"gte=0,lte=256"`
	MaxExpansions int      `yaml:"max_expansions" validate:"gte=0"`
	Verify        bool     `yaml:"verify"`
	Log           Log      `yaml:"log"`
	MetricsFile   string   `yaml:"metrics_file,omitempty"`
}

// Run is one input file solved under one connectivity. Append adds results
// to Output instead of replacing it.
type Run struct {
	Input        string `yaml:"input" validate:"required"`
	Output       string `yaml:"output" validate:"required,nefield=Input"`
	Connectivity string `yaml:"connectivity" validate:"required,connectivity"`
	Append       bool   `yaml:"append,omitempty"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Runs: []Run{
			{Input: "path_finding_a.txt", Output: "path_finding_a_out.txt", Connectivity: grid.Conn4.String()},
			{Input: "path_finding_b.txt", Output: "path_finding_b_out.txt", Connectivity: grid.Conn8.String()},
		},
		Strategies: []string{search.Greedy.Key(), search.AStar.Key()},
		Log:        Log{Level: "info", Format: "text"},
	}
}

// Validate checks c against its struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// SearchStrategies converts Strategies in order, dropping repeats.
func (c Config) SearchStrategies() ([]search.Strategy, error) {
	out := make([]search.Strategy, 0, len(c.Strategies))
	seen := make(map[search.Strategy]bool, len(c.Strategies))
	for _, s := range c.Strategies {
		st, err := search.ParseStrategy(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		if seen[st] {
			continue
		}
		seen[st] = true
		out = append(out, st)
	}
	return out, nil
}

// Conn returns the parsed connectivity of r.
func (r Run) Conn() (grid.Connectivity, error) {
	return grid.ParseConnectivity(r.Connectivity)
}

// SlogLevel maps Level to a slog.Level; unknown values yield Info.
func (l Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// NewLogger builds a text or JSON slog.Logger writing to w.
func (l Log) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Load reads path over Default, rejecting unknown keys, and validates the
// result. Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if len(raw) > MaxFileSize {
		return Config{}, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, path, MaxFileSize)
	}
	return Parse(raw)
}

// Parse decodes YAML bytes over Default and validates the result.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write validates cfg and stores it as YAML at path.
func Write(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
