package config

import (
	"github.com/tinyid-go/tinyid/internal/logger"
)

// Generate holds the defaults of the generate command.
type Generate struct {
	Count  int    `mapstructure:"count" validate:"gte=1,lte=1000000"`
	Seed   uint64 `mapstructure:"seed"`   // 0 uses the process-wide source
	Unique bool   `mapstructure:"unique"` // draw through a pool that skips repeats and null
	// MaxAttempts bounds the draws per identifier in unique mode, 0 keeps the pool default.
	MaxAttempts int `mapstructure:"maxAttempts" validate:"gte=0"`
	// Reserved lists encoded IDs that unique generation must never return.
	Reserved []string `mapstructure:"reserved" validate:"dive,tinyid"`
}

// Collision holds the defaults of the collision command.
type Collision struct {
	Runs          int    `mapstructure:"runs" validate:"gte=1"`
	Workers       int    `mapstructure:"workers" validate:"gte=0"`
	Bits          int    `mapstructure:"bits" validate:"gte=1,lte=64"`
	MaxIterations int    `mapstructure:"maxIterations" validate:"gte=0"`
	Seed          uint64 `mapstructure:"seed"`
	// MetricsFile receives the collision counters in Prometheus text format when set.
	MetricsFile string `mapstructure:"metricsFile"`
}

// Config overall data structure.
type Config struct {
	Log       logger.Log `mapstructure:"log"`
	Generate  Generate   `mapstructure:"generate"`
	Collision Collision  `mapstructure:"collision"`
}
