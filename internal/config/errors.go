package config

import (
	"errors"
)

var (
	// ErrInvalidConfig wraps every validation failure reported by ReadConfig.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrConfigFileNotFound is returned when an explicitly named config file is missing.
	ErrConfigFileNotFound = errors.New("config file not found")
)
