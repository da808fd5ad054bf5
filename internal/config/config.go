package config

import "errors"

// IgnoreCaseEnvVar selects case-insensitive search when present, whatever its value.
const IgnoreCaseEnvVar = "IGNORE_CASE"

// Argument errors. The messages are kept verbatim for compatibility with
// existing scripts that match on them.
var (
	ErrMissingQuery    = errors.New("Didn't get a query string")
	ErrMissingFilePath = errors.New("Didn't get a file path")
)

// EnvLookup reports the value of an environment variable and whether it is set.
// os.LookupEnv satisfies it.
type EnvLookup func(key string) (string, bool)

// Config is the resolved search request
type Config struct {
	Query      string
	FilePath   string
	IgnoreCase bool
}

// Build resolves a Config from process arguments. args[0] is the program
// name and is discarded; anything after the file path is ignored.
// lookupEnv is consulted once for IgnoreCaseEnvVar; a nil lookup means an
// empty environment.
func Build(args []string, lookupEnv EnvLookup) (Config, error) {
	if len(args) > 0 {
		args = args[1:]
	}

	if len(args) < 1 {
		return Config{}, ErrMissingQuery
	}
	query := args[0]

	if len(args) < 2 {
		return Config{}, ErrMissingFilePath
	}
	filePath := args[1]

	ignoreCase := false
	if lookupEnv != nil {
		_, ignoreCase = lookupEnv(IgnoreCaseEnvVar)
	}

	return Config{
		Query:      query,
		FilePath:   filePath,
		IgnoreCase: ignoreCase,
	}, nil
}
