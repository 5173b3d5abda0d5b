// Package batch walks an input folder and runs every supported document
// through the processing pipeline with bounded concurrency, writing the
// aggregate outputs and (optionally) the catalog as it goes.
package batch

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the full batch run configuration.
type Config struct {
	InputDir       string `yaml:"input_dir"`
	OutputDir      string `yaml:"output_dir"`
	MaxSentences   int    `yaml:"max_sentences"`
	MaxActionItems int    `yaml:"max_action_items"`
	PerFileJSON    bool   `yaml:"per_file_json"`
	Workers        int    `yaml:"workers"`

	// CatalogDB, when set, additionally upserts every record into a SQLite
	// catalog at this path.
	CatalogDB string `yaml:"catalog_db"`

	// Listen is the web UI bind address (serve mode only).
	Listen string `yaml:"listen"`
}

// DefaultConfig returns sane defaults.
func DefaultConfig() *Config {
	return &Config{
		InputDir:       "docs",
		OutputDir:      "out",
		MaxSentences:   5,
		MaxActionItems: 10,
		Workers:        runtime.NumCPU(),
		Listen:         ":8090",
	}
}

// LoadConfig reads and parses a YAML config file. Returns DefaultConfig merged with the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.MaxSentences <= 0 {
		return fmt.Errorf("max_sentences must be > 0")
	}
	if c.MaxActionItems <= 0 {
		return fmt.Errorf("max_action_items must be > 0")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be > 0")
	}
	return nil
}
