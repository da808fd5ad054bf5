package config

import (
	"context"
	"log/slog"
)

// Log logs the resolved settings and search config
func Log(s *Settings, cfg Config) {
	LogWithLogger(s, cfg, slog.Default())
}

// LogWithLogger logs the resolved settings and search config using the provided logger.
// The size limit is only logged when one is set.
func LogWithLogger(s *Settings, cfg Config, logger *slog.Logger) {
	ctx := context.Background()
	logger.InfoContext(ctx, "Config: query", "value", cfg.Query)
	logger.InfoContext(ctx, "Config: file_path", "value", cfg.FilePath)
	logger.InfoContext(ctx, "Config: ignore_case", "value", cfg.IgnoreCase)
	logger.InfoContext(ctx, "Config: color", "value", s.Color)
	if s.MaxFileSize > 0 {
		logger.InfoContext(ctx, "Config: max_file_size", "value", s.MaxFileSize)
	}
}

// SettingsLogValue returns a slog.Value for Settings
func SettingsLogValue(s Settings) slog.Value {
	return slog.GroupValue(
		slog.String("color", s.Color),
		slog.String("log_level", s.LogLevel),
		slog.Bool("ignore_case", s.IgnoreCase),
		slog.Int64("max_file_size", s.MaxFileSize),
	)
}

// ConfigLogValue returns a slog.Value for Config
func ConfigLogValue(cfg Config) slog.Value {
	return slog.GroupValue(
		slog.String("query", cfg.Query),
		slog.String("file_path", cfg.FilePath),
		slog.Bool("ignore_case", cfg.IgnoreCase),
	)
}
