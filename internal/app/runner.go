package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sha1n/minigrep/internal/config"
	"github.com/sha1n/minigrep/internal/highlight"
	"github.com/sha1n/minigrep/internal/render"
	"github.com/sha1n/minigrep/internal/search"
	"github.com/sha1n/minigrep/internal/source"
	"github.com/spf13/pflag"
)

// RunParams contains dependencies for the run function
type RunParams struct {
	LoadSettings  func(*pflag.FlagSet) (*config.Settings, error)
	ValidSettings func(*config.Settings) error
	LookupEnv     config.EnvLookup
	ReadContent   func(path string, maxSize int64) (string, error)
	Stdout        io.Writer
	Stderr        io.Writer
}

// DefaultRunParams returns production dependencies
func DefaultRunParams() RunParams {
	return RunParams{
		LoadSettings:  config.LoadSettingsWithFlags,
		ValidSettings: config.ValidateSettings,
		LookupEnv:     os.LookupEnv,
		ReadContent:   source.ReadContent,
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
	}
}

// RunWithDeps resolves the search request from args (positional arguments,
// without the program name) and prints every highlighted matching line.
// Nothing is printed unless the whole file was read and scanned.
func RunWithDeps(ctx context.Context, params RunParams, flags *pflag.FlagSet, args []string, programName, version string) error {
	settings, err := params.LoadSettings(flags)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := params.ValidSettings(settings); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := config.ParseLogLevel(settings.LogLevel)
	handler := slog.NewTextHandler(params.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	slog.DebugContext(ctx, "Starting search", "program", programName, "version", version)

	cfg, err := config.Build(append([]string{programName}, args...), params.LookupEnv)
	if err != nil {
		return fmt.Errorf("problem parsing arguments: %w", err)
	}
	if settings.IgnoreCase {
		cfg.IgnoreCase = true
	}
	config.Log(settings, cfg)

	content, err := params.ReadContent(cfg.FilePath, settings.MaxFileSize)
	if err != nil {
		return fmt.Errorf("application error: %w", err)
	}

	mode, err := render.ParseColorMode(settings.Color)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	painter := render.NewPainter(params.Stdout, mode)

	count, err := Run(cfg, content, painter, params.Stdout)
	if err != nil {
		return fmt.Errorf("application error: %w", err)
	}

	slog.InfoContext(ctx, "Search complete", "matches", count, "file", cfg.FilePath)
	return nil
}

// Run searches content according to cfg and writes each matching line, with
// its matches emphasized, to w. It returns the number of lines written.
func Run(cfg config.Config, content string, em highlight.Emphasizer, w io.Writer) (int, error) {
	var results []string
	if cfg.IgnoreCase {
		results = search.SearchCaseInsensitive(cfg.Query, content)
	} else {
		results = search.Search(cfg.Query, content)
	}

	out := bufio.NewWriter(w)
	for _, line := range results {
		if _, err := fmt.Fprintln(out, highlight.Matches(line, cfg.Query, cfg.IgnoreCase, em)); err != nil {
			return 0, err
		}
	}
	if err := out.Flush(); err != nil {
		return 0, err
	}

	return len(results), nil
}
