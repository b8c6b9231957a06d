// Package config loads the tinyid command configuration from an optional
// TOML file, TINYID_* environment variables and a JSON overlay.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/tinyid-go/tinyid/tinyid/validate"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. TINYID_GENERATE_COUNT.
	EnvPrefix = "TINYID"

	// JSONEnv names the variable holding a JSON document merged over the file.
	JSONEnv = "TINYID_CONFIG_JSON"

	// DefaultFile is read when no path is given; it may be absent.
	DefaultFile = "./etc/tinyid.toml"
)

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.logLevel", "warn")
	v.SetDefault("log.appName", "tinyid")
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.console.useConsoleWriter", true)
	v.SetDefault("log.console.stdout", false)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.path", "./log")
	v.SetDefault("log.file.error", "error.log")
	v.SetDefault("log.file.info", "info.log")
	v.SetDefault("log.file.warn", "warn.log")
	v.SetDefault("log.file.errorMaxSize", 10)
	v.SetDefault("log.file.infoMaxSize", 10)
	v.SetDefault("log.file.warnMaxSize", 10)

	v.SetDefault("generate.count", 1)
	v.SetDefault("generate.seed", 0)
	v.SetDefault("generate.unique", false)
	v.SetDefault("generate.maxAttempts", 0)
	v.SetDefault("generate.reserved", []string{})

	v.SetDefault("collision.runs", 1)
	v.SetDefault("collision.workers", 0)
	v.SetDefault("collision.bits", 32)
	v.SetDefault("collision.maxIterations", 0)
	v.SetDefault("collision.seed", 0)
	v.SetDefault("collision.metricsFile", "")
}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()

	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// ReadConfig loads configuration into v and decodes it.
// An empty path falls back to DefaultFile, which may be missing; an explicit
// path must exist.
func ReadConfig(v *viper.Viper, path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	v.SetConfigFile(path)
	v.SetConfigType(strings.TrimPrefix(filepath.Ext(path), "."))

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError

		switch {
		case errors.As(err, &pathErr) && explicit:
			return Config{}, errors.Wrap(ErrConfigFileNotFound, path)
		case errors.As(err, &pathErr):
		default:
			return Config{}, errors.Wrap(err, "failed to read config file")
		}
	}

	if overlay := os.Getenv(JSONEnv); overlay != "" {
		v.SetConfigType("json")

		if err := v.MergeConfig(strings.NewReader(overlay)); err != nil {
			return Config{}, errors.Wrap(err, "failed to merge "+JSONEnv)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	return c, Validate(&c)
}

// Validate checks c against its struct tags.
func Validate(c *Config) error {
	if err := newValidator().Struct(c); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	return nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	out, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	return string(out), nil
}

func newValidator() *validator.Validate {
	return validate.New()
}
