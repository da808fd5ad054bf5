package app

import "github.com/spf13/pflag"

// RegisterFlags registers all CLI flags on the given FlagSet
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("color", "c", "", "Highlight matches: auto, always or never (default always)")
	flags.StringP("log-level", "l", "", "Log level on stderr: debug, info, warn or error (default warn)")
	flags.BoolP("ignore-case", "i", false, "Search case-insensitively (same as setting IGNORE_CASE)")
	flags.Int64P("max-file-size", "m", 0, "Refuse files larger than this many bytes (0 means no limit)")
}
