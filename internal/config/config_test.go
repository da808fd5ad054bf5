package config

import (
	"errors"
	"testing"
)

func envOf(vars map[string]string) EnvLookup {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestBuild_MissingArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "no arguments at all",
			args:    nil,
			wantErr: ErrMissingQuery,
			wantMsg: "Didn't get a query string",
		},
		{
			name:    "program name only",
			args:    []string{"minigrep"},
			wantErr: ErrMissingQuery,
			wantMsg: "Didn't get a query string",
		},
		{
			name:    "query without file path",
			args:    []string{"minigrep", "needle"},
			wantErr: ErrMissingFilePath,
			wantMsg: "Didn't get a file path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.args, envOf(nil))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Expected message %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestBuild_Success(t *testing.T) {
	cfg, err := Build([]string{"minigrep", "to", "poem.txt"}, envOf(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Query != "to" {
		t.Errorf("Expected query 'to', got '%s'", cfg.Query)
	}
	if cfg.FilePath != "poem.txt" {
		t.Errorf("Expected file path 'poem.txt', got '%s'", cfg.FilePath)
	}
	if cfg.IgnoreCase {
		t.Error("Expected IgnoreCase to be false without IGNORE_CASE")
	}
}

func TestBuild_ExtraArgumentsIgnored(t *testing.T) {
	cfg, err := Build([]string{"minigrep", "to", "poem.txt", "extra", "more"}, envOf(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Query != "to" || cfg.FilePath != "poem.txt" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestBuild_IgnoreCasePresence(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"absent", map[string]string{}, false},
		{"set to 1", map[string]string{IgnoreCaseEnvVar: "1"}, true},
		{"set to 0", map[string]string{IgnoreCaseEnvVar: "0"}, true},
		{"set to false", map[string]string{IgnoreCaseEnvVar: "false"}, true},
		{"set but empty", map[string]string{IgnoreCaseEnvVar: ""}, true},
		{"unrelated variable", map[string]string{"IGNORECASE": "1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Build([]string{"minigrep", "q", "f"}, envOf(tt.env))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if cfg.IgnoreCase != tt.want {
				t.Errorf("Expected IgnoreCase %v, got %v", tt.want, cfg.IgnoreCase)
			}
		})
	}
}

func TestBuild_NilLookup(t *testing.T) {
	cfg, err := Build([]string{"minigrep", "q", "f"}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.IgnoreCase {
		t.Error("Expected IgnoreCase to be false with nil lookup")
	}
}

func TestBuild_LookupNotCalledOnMissingArgs(t *testing.T) {
	called := false
	lookup := func(string) (string, bool) {
		called = true
		return "", true
	}

	_, _ = Build([]string{"minigrep"}, lookup)
	_, _ = Build([]string{"minigrep", "q"}, lookup)

	if called {
		t.Error("Expected environment not to be consulted when arguments are missing")
	}
}

func TestBuild_EmptyQueryIsPresent(t *testing.T) {
	cfg, err := Build([]string{"minigrep", "", "f"}, nil)
	if err != nil {
		t.Fatalf("Expected empty query to be accepted, got: %v", err)
	}
	if cfg.Query != "" {
		t.Errorf("Expected empty query, got %q", cfg.Query)
	}
}
