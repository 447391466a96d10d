package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexshd/mathapp"
)

// Config controls how the CLI orders and prints shapes.
type Config struct {
	Format    string `yaml:"format"`    // json | yaml
	OrderBy   string `yaml:"order_by"`  // area | perimeter
	Direction string `yaml:"direction"` // asc | desc
	LogLevel  string `yaml:"log_level"` // debug | info | warn | error
}

// DefaultConfig reproduces the reference scenario: JSON output, ordered by
// perimeter, largest first.
func DefaultConfig() Config {
	return Config{
		Format:    "json",
		OrderBy:   "perimeter",
		Direction: "desc",
		LogLevel:  "info",
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// settings is a validated Config.
type settings struct {
	format    mathapp.Format
	metric    mathapp.Metric
	direction mathapp.Direction
}

func (c Config) resolve() (settings, error) {
	var (
		s   settings
		err error
	)
	if s.format, err = mathapp.ParseFormat(c.Format); err != nil {
		return s, err
	}
	if s.metric, err = mathapp.ParseMetric(c.OrderBy); err != nil {
		return s, err
	}
	if s.direction, err = mathapp.ParseDirection(c.Direction); err != nil {
		return s, err
	}
	return s, nil
}
