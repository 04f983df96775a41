// Package config handles configuration for ecomgen. Values come from an
// optional YAML config file and CLI flags; flags take precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/joshika202/ecom-cursor-project/internal/dataset"
	"github.com/joshika202/ecom-cursor-project/internal/datagen"
)

// Config holds all configuration for ecomgen.
type Config struct {
	// Connection is the PostgreSQL connection string (the store location).
	Connection string `mapstructure:"connection"`

	// DataDir is where the five CSV files are written and read.
	DataDir string `mapstructure:"data_dir"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Generate holds configuration for the generate subcommand.
	Generate GenerateConfig `mapstructure:"generate"`

	// Query holds configuration for the query subcommand.
	Query QueryConfig `mapstructure:"query"`

	// Visualize holds configuration for the visualize subcommand.
	Visualize VisualizeConfig `mapstructure:"visualize"`
}

// GenerateConfig holds dataset-size configuration.
type GenerateConfig struct {
	// Seed makes generation reproducible: equal seed and counts give
	// byte-identical CSV files.
	Seed uint64 `mapstructure:"seed"`

	Products  int `mapstructure:"products"`
	Customers int `mapstructure:"customers"`
	Orders    int `mapstructure:"orders"`

	// MaxItemsPerOrder bounds the line items generated per order.
	MaxItemsPerOrder int `mapstructure:"max_items_per_order"`

	// ReviewProbability is the chance a review-eligible order is reviewed.
	ReviewProbability float64 `mapstructure:"review_probability"`

	// OrderWindowStart and OrderWindowEnd bound order dates (YYYY-MM-DD).
	// Fixed dates, not "now", so reruns with one seed stay identical.
	OrderWindowStart string `mapstructure:"order_window_start"`
	OrderWindowEnd   string `mapstructure:"order_window_end"`
}

// QueryConfig holds configuration for the query subcommand.
type QueryConfig struct {
	// Limit is the maximum rows per query result.
	Limit int `mapstructure:"limit"`
}

// VisualizeConfig holds configuration for the visualize subcommand.
type VisualizeConfig struct {
	// Output is the directory chart PNGs are written to.
	Output string `mapstructure:"output"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataDir:  "data",
		LogLevel: "info",
		Generate: GenerateConfig{
			Seed:              42,
			Products:          50,
			Customers:         100,
			Orders:            500,
			MaxItemsPerOrder:  5,
			ReviewProbability: 0.6,
			OrderWindowStart:  "2025-01-01",
			OrderWindowEnd:    "2025-06-30",
		},
		Query:     QueryConfig{Limit: 10},
		Visualize: VisualizeConfig{Output: "charts"},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./ecomgen.yaml
// 3. ~/.config/ecomgen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("ecomgen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "ecomgen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Missing config file is fine; defaults apply.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// ValidateStore checks configuration required by commands that touch the
// database.
func (c *Config) ValidateStore() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	return nil
}

// GeneratorConfig converts the generate section into a datagen config,
// parsing the order window. Count and probability bounds are enforced by the
// generator itself.
func (c *Config) GeneratorConfig() (datagen.Config, error) {
	start, err := time.Parse(dataset.DateFormat, c.Generate.OrderWindowStart)
	if err != nil {
		return datagen.Config{}, fmt.Errorf("invalid order_window_start: %w", err)
	}
	end, err := time.Parse(dataset.DateFormat, c.Generate.OrderWindowEnd)
	if err != nil {
		return datagen.Config{}, fmt.Errorf("invalid order_window_end: %w", err)
	}
	return datagen.Config{
		Seed:              c.Generate.Seed,
		Products:          c.Generate.Products,
		Customers:         c.Generate.Customers,
		Orders:            c.Generate.Orders,
		MaxItemsPerOrder:  c.Generate.MaxItemsPerOrder,
		ReviewProbability: c.Generate.ReviewProbability,
		OrderWindowStart:  start,
		OrderWindowEnd:    end,
	}, nil
}
