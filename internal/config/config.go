// Package config loads the dimflow configuration from viper.
package config

import (
	"fmt"
	"slices"

	"github.com/spf13/viper"

	"github.com/Veraticus/dimflow/internal/common"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// DefaultCatalogPath is where the unit catalog lives unless configured.
const DefaultCatalogPath = "$HOME/.local/share/dimflow/units.db"

// Viper keys.
const (
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
	KeyPrecision      = "format.precision"
	KeySimplify       = "evaluator.simplify"
	KeyCatalogPath    = "catalog.path"
	KeyCatalogEnabled = "catalog.enabled"
	KeyOutput         = "output.format"
	KeyDerived        = "engine.derived"
	KeyMaxOptions     = "engine.max_options"
)

// Config is the resolved application configuration.
type Config struct {
	LogLevel       string
	LogFormat      string
	CatalogPath    string
	Output         string
	Precision      int
	MaxOptions     int
	Simplify       bool
	CatalogEnabled bool
	Derived        bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyPrecision, 14)
	v.SetDefault(KeySimplify, true)
	v.SetDefault(KeyCatalogPath, DefaultCatalogPath)
	v.SetDefault(KeyCatalogEnabled, true)
	v.SetDefault(KeyOutput, OutputTable)
	v.SetDefault(KeyDerived, true)
	v.SetDefault(KeyMaxOptions, 0)
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		LogLevel:       v.GetString(KeyLogLevel),
		LogFormat:      v.GetString(KeyLogFormat),
		CatalogPath:    ExpandPath(v.GetString(KeyCatalogPath)),
		Output:         v.GetString(KeyOutput),
		Precision:      v.GetInt(KeyPrecision),
		MaxOptions:     v.GetInt(KeyMaxOptions),
		Simplify:       v.GetBool(KeySimplify),
		CatalogEnabled: v.GetBool(KeyCatalogEnabled),
		Derived:        v.GetBool(KeyDerived),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := common.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("%w: invalid log format: %s", common.ErrInvalidConfig, c.LogFormat)
	}
	if c.Precision < 1 || c.Precision > 17 {
		return fmt.Errorf("%w: %s must be between 1 and 17, got %d", common.ErrInvalidConfig, KeyPrecision, c.Precision)
	}
	if c.MaxOptions < 0 {
		return fmt.Errorf("%w: %s cannot be negative", common.ErrInvalidConfig, KeyMaxOptions)
	}
	if !slices.Contains([]string{OutputTable, OutputJSON, OutputYAML}, c.Output) {
		return fmt.Errorf("%w: unknown output format %q", common.ErrInvalidConfig, c.Output)
	}
	if c.CatalogEnabled && c.CatalogPath == "" {
		return fmt.Errorf("%w: %s is required when the catalog is enabled", common.ErrMissingConfig, KeyCatalogPath)
	}
	return nil
}
