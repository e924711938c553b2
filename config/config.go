// Package config loads simulator settings from an optional config.yaml
// found in one of the search paths. A missing file falls back to the
// defaults; a malformed one is an error.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrInvalidQuantum signals a configured time quantum no round-robin
// run can use.
var ErrInvalidQuantum = errors.New("invalid time quantum")

// Defaults applied when config.yaml is absent or partial.
const (
	DefaultQuantum      = 2
	DefaultDecimalComma = false
)

// Config carries the simulator settings.
type Config struct {
	Quantum      int64
	DecimalComma bool
}

// Load reads config.yaml from the search paths, first hit winning. With
// no paths it looks in the working directory.
func Load(paths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetDefault("scheduler.round_robin.time_quantum", DefaultQuantum)
	v.SetDefault("report.decimal_comma", DefaultDecimalComma)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("%w: reading config", err)
		}
	}

	cfg := Config{
		Quantum:      v.GetInt64("scheduler.round_robin.time_quantum"),
		DecimalComma: v.GetBool("report.decimal_comma"),
	}
	if cfg.Quantum <= 0 {
		return Config{}, fmt.Errorf("%w: %d", ErrInvalidQuantum, cfg.Quantum)
	}
	return cfg, nil
}
