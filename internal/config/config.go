// Package config holds the runtime settings of labelwiz.
//
// A Config value is built once at startup (defaults, then the optional YAML
// file, then command-line overrides) and passed explicitly to the wizard,
// the annotation session and the runner.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/aretw0/labelwiz/internal/locale"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config contains every tunable of a labeling run.
type Config struct {
	// Language preselects the string table; empty means ask in the wizard.
	Language string `mapstructure:"language" yaml:"language"`
	// ReminderInterval is the period of the unsaved-changes reminder.
	ReminderInterval time.Duration `mapstructure:"reminder_interval" yaml:"reminder_interval"`
	// MaxColumnsWarning is the column count above which loading warns.
	MaxColumnsWarning int `mapstructure:"max_columns_warning" yaml:"max_columns_warning"`
	// MaxOptionsWarning is the option count above which the wizard warns.
	MaxOptionsWarning int `mapstructure:"max_options_warning" yaml:"max_options_warning"`
	// Debug enables structured debug logs on stderr.
	Debug bool `mapstructure:"debug" yaml:"debug"`
	// MetricsAddr exposes Prometheus metrics when non-empty (e.g. ":2112").
	MetricsAddr string `mapstructure:"metrics_addr" yaml:"metrics_addr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ReminderInterval:  5 * time.Minute,
		MaxColumnsWarning: 10,
		MaxOptionsWarning: 10,
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg, err = Decode(raw, cfg)
	if err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays raw onto base. Durations accept strings such as "90s".
func Decode(raw map[string]any, base Config) (Config, error) {
	out := base
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &out,
	})
	if err != nil {
		return base, err
	}
	if err := decoder.Decode(raw); err != nil {
		return base, err
	}
	if err := out.Validate(); err != nil {
		return base, err
	}
	return out, nil
}

// Validate rejects settings the wizard cannot honour.
func (c Config) Validate() error {
	if c.Language != "" && !locale.Supported(c.Language) {
		return fmt.Errorf("unsupported language %q (available: %v)", c.Language, locale.Languages())
	}
	if c.ReminderInterval <= 0 {
		return fmt.Errorf("reminder_interval must be positive, got %s", c.ReminderInterval)
	}
	if c.MaxColumnsWarning < 1 {
		return fmt.Errorf("max_columns_warning must be at least 1")
	}
	if c.MaxOptionsWarning < 1 {
		return fmt.Errorf("max_options_warning must be at least 1")
	}
	return nil
}
