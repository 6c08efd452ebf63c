package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Traversal orders accepted in Config.Order.
const (
	OrderPre  = "pre"
	OrderIn   = "in"
	OrderPost = "post"
	OrderBFS  = "bfs"
	OrderAll  = "all"
)

var AllOrders = []string{OrderPre, OrderIn, OrderPost, OrderBFS}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type BenchConfig struct {
	Ops            int     `yaml:"ops"`
	Seed           uint64  `yaml:"seed"`
	DeleteFraction float64 `yaml:"delete_fraction"`
	KeyRange       int     `yaml:"key_range"`
}

type Config struct {
	Values []int       `yaml:"values"`
	Order  string      `yaml:"order"`
	Delete []int       `yaml:"delete,omitempty"`
	Log    LogConfig   `yaml:"log"`
	Bench  BenchConfig `yaml:"bench"`
}

// Default returns a fresh copy of the default configuration.
func Default() *Config {
	return &Config{
		Values: []int{11, 8, 16, 5, 10, 18},
		Order:  OrderAll,
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
		Bench: BenchConfig{
			Ops:            1_000_000,
			DeleteFraction: 0.3,
			KeyRange:       1 << 20,
		},
	}
}

// Load reads the YAML file at path over the defaults, so fields missing from
// the file keep their default values. An empty path gives the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Order != OrderAll && !slices.Contains(AllOrders, c.Order) {
		return fmt.Errorf("unknown traversal order %q (pre|in|post|bfs|all)", c.Order)
	}
	if c.Bench.Ops < 0 {
		return fmt.Errorf("bench.ops must not be negative, got %d", c.Bench.Ops)
	}
	if c.Bench.DeleteFraction < 0 || c.Bench.DeleteFraction > 1 {
		return fmt.Errorf("bench.delete_fraction must be in [0, 1], got %v", c.Bench.DeleteFraction)
	}
	if c.Bench.KeyRange <= 0 {
		return fmt.Errorf("bench.key_range must be positive, got %d", c.Bench.KeyRange)
	}
	return nil
}

// Orders expands Order into the traversal orders to run.
func (c *Config) Orders() []string {
	if c.Order == OrderAll {
		return AllOrders
	}
	return []string{c.Order}
}

func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
