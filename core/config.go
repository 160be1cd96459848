package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds file-loadable pool settings.
type Config struct {
	// Name labels the pool in logs and metrics.
	Name string `yaml:"name" json:"name"`

	// Workers is the number of worker goroutines. Zero means one per CPU.
	Workers int `yaml:"workers" json:"workers"`
}

// DefaultConfig returns a config with one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Name:    "pool",
		Workers: 0,
	}
}

// LoadConfig reads a pool configuration from a YAML or JSON file, chosen
// by file extension.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the configuration for values NewPool would reject.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count %d: %w", c.Workers, ErrInvalidWorkerCount)
	}
	return nil
}

// WorkerCount resolves the configured worker count, substituting the CPU
// count for zero.
func (c *Config) WorkerCount() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// NewPool builds a pool from the configuration with default hooks.
func (c *Config) NewPool() (*Pool, error) {
	return c.NewPoolWithOptions(nil)
}

// NewPoolWithOptions builds a pool from the configuration. The config's
// name wins over an empty options name.
func (c *Config) NewPoolWithOptions(opts *PoolOptions) (*Pool, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = DefaultPoolOptions()
	}
	if c.Name != "" {
		opts.Name = c.Name
	}
	return NewPoolWithOptions(c.WorkerCount(), opts)
}
