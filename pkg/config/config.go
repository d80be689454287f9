// Package config reads the settings of the population report commands.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/anrid/world-population/pkg/stats"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

const DefaultDatabase = "/tmp/world-population.json"

type Config struct {
	// Input is the local population estimates file.
	Input string `yaml:"input"`
	// URL, when set, is downloaded to Input before loading.
	URL        string `yaml:"url"`
	Database   string `yaml:"database"`
	Workbook   string `yaml:"workbook"`
	Charts     string `yaml:"charts"`
	WorldLabel string `yaml:"world_label"`
	TopPeak    int    `yaml:"top_peak"`
	TopAverage int    `yaml:"top_average"`
}

func Default() *Config {
	opts := stats.DefaultOptions()
	return &Config{
		Database:   DefaultDatabase,
		WorldLabel: opts.WorldLabel,
		TopPeak:    opts.TopPeak,
		TopAverage: opts.TopAverage,
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.New("input is required")
	}
	if c.WorldLabel == "" {
		return errors.New("world_label must not be empty")
	}
	if c.TopPeak < 1 {
		return errors.Errorf("top_peak must be at least 1, got %d", c.TopPeak)
	}
	if c.TopAverage < 1 {
		return errors.Errorf("top_average must be at least 1, got %d", c.TopAverage)
	}
	return nil
}

func (c *Config) Options() stats.Options {
	return stats.Options{
		WorldLabel: c.WorldLabel,
		TopPeak:    c.TopPeak,
		TopAverage: c.TopAverage,
	}
}
