// Package config holds the gridrect CLI configuration: defaults, YAML loading,
// validation and the mapping onto gridrect options.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridkit/gridrect"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// Output formats accepted by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the on-disk shape of a gridrect configuration file.
type Config struct {
	Connectivity int    `yaml:"connectivity"`
	Visit        string `yaml:"visit"`
	MinCells     int    `yaml:"min_cells"`
	Format       string `yaml:"format"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Connectivity: 4,
		Visit:        "auto",
		MinCells:     1,
		Format:       FormatText,
		LogLevel:     "info",
	}
}

// Load reads a YAML file over the defaults and validates the result.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every field and reports the first invalid one.
func (c Config) Validate() error {
	if c.Connectivity != 4 && c.Connectivity != 8 {
		return fmt.Errorf("%w: connectivity must be 4 or 8, got %d", ErrInvalid, c.Connectivity)
	}
	if _, err := gridrect.ParseVisitStrategy(c.Visit); err != nil {
		return fmt.Errorf("%w: visit: %v", ErrInvalid, err)
	}
	if c.MinCells < 0 {
		return fmt.Errorf("%w: min_cells cannot be negative, got %d", ErrInvalid, c.MinCells)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: format must be text, json or yaml, got %q", ErrInvalid, c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel into a slog.Level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return lvl, nil
}

// GridOptions maps c onto gridrect options. c must be valid.
func (c Config) GridOptions(logger *slog.Logger) []gridrect.Option {
	conn := gridrect.Conn4
	if c.Connectivity == 8 {
		conn = gridrect.Conn8
	}
	visit, _ := gridrect.ParseVisitStrategy(c.Visit)
	return []gridrect.Option{
		gridrect.WithConnectivity(conn),
		gridrect.WithVisitStrategy(visit),
		gridrect.WithMinCells(c.MinCells),
		gridrect.WithLogger(logger),
	}
}
