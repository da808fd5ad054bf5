package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Color mode constants
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings holds the ambient CLI options. The search request itself is a Config.
type Settings struct {
	Color       string `mapstructure:"color"`
	LogLevel    string `mapstructure:"log_level"`
	IgnoreCase  bool   `mapstructure:"ignore_case"`
	MaxFileSize int64  `mapstructure:"max_file_size"`
}

// LoadSettings returns the default settings
func LoadSettings() (*Settings, error) {
	return LoadSettingsWithFlags(nil)
}

// LoadSettingsWithFlags loads settings with optional CLI flag overrides.
// Priority: CLI flags > defaults. Environment variables are not consulted here;
// IGNORE_CASE is resolved by Build.
func LoadSettingsWithFlags(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	v.SetDefault("color", ColorAlways)
	v.SetDefault("log_level", "warn")
	v.SetDefault("ignore_case", false)
	v.SetDefault("max_file_size", int64(0)) // unlimited

	if flags != nil {
		bindFlag(v, "color", flags.Lookup("color"))
		bindFlag(v, "log_level", flags.Lookup("log-level"))
		bindFlag(v, "ignore_case", flags.Lookup("ignore-case"))
		bindFlag(v, "max_file_size", flags.Lookup("max-file-size"))
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// bindFlag skips flags the caller did not register
func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	_ = v.BindPFlag(key, flag)
}

// ValidateSettings rejects unknown color modes, unknown log levels and
// negative size limits.
func ValidateSettings(s *Settings) error {
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("color must be 'auto', 'always' or 'never', got: " + s.Color)
	}

	if _, err := ParseLogLevel(s.LogLevel); err != nil {
		return err
	}

	if s.MaxFileSize < 0 {
		return errors.New("max-file-size cannot be negative")
	}

	return nil
}

// ParseLogLevel maps a level name to a slog.Level
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown log-level: %s", name)
	}
	return level, nil
}
