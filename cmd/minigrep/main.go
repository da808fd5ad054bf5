package main

import (
	"context"
	"os"

	"github.com/sha1n/minigrep/internal/app"
	"github.com/spf13/cobra"
)

var (
	// Version is injected at build time
	Version = "dev"
	// Build is injected at build time
	Build = "unknown"
	// ProgramName is injected at build time
	ProgramName = "minigrep"
)

func main() {
	runMain(os.Args, os.Exit)
}

func runMain(args []string, exit func(int)) {
	if err := Execute(Version, Build, ProgramName, args[1:]); err != nil {
		exit(1)
	}
}

// Execute is the entry point for the CLI, extracted for testing
func Execute(version, build, programName string, args []string) error {
	return execute(app.DefaultRunParams(), version, build, programName, args)
}

func execute(params app.RunParams, version, build, programName string, args []string) error {
	rootCmd := &cobra.Command{
		Use:   programName + " [flags] <query> <file_path>",
		Short: "Print the lines of a file that contain a query",
		Long: "Print the lines of a file that contain a literal query, with every match highlighted.\n" +
			"Set IGNORE_CASE (to any value) or pass --ignore-case to match case-insensitively.",
		Version:      version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunWithDeps(context.Background(), params, cmd.Flags(), args, programName, version)
		},
	}

	rootCmd.SetVersionTemplate(`{{.Version}}
`)

	app.RegisterFlags(rootCmd.Flags())
	// flags go before the query so that "--" can introduce a query starting with "-"
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.SetOut(params.Stdout)
	rootCmd.SetErr(params.Stderr)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}
