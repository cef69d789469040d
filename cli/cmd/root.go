// Package cmd implements the sputter CLI.
package cmd

import (
	"github.com/FollowTheProcess/sputter/cli/app"
	"github.com/FollowTheProcess/sputter/iostream"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	version     = "dev" // sputter version, set at compile time by ldflags
	commit      = ""    // sputter version's commit hash, set at compile time by ldflags
	buildDate   = ""    // build timestamp, set at compile time by ldflags
	builtBy     = ""    // release tool that produced the binary, set at compile time by ldflags
	headerStyle = color.New(color.FgWhite, color.Bold)
)

// BuildRootCmd builds and returns the root sputter CLI command.
func BuildRootCmd() *cobra.Command {
	// Note: options must be a pointer so flags propagate to the App struct.
	options := &app.Options{}
	sputter := &app.App{
		Stream:  iostream.OS(),
		Options: options,
	}

	rootCmd := &cobra.Command{
		Use:           "sputter [FILE]",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Short:         "A small, parenthesised, tree-walking language",
		Long: heredoc.Doc(`

		A small, parenthesised, tree-walking language.

		Given a FILE, sputter parses and evaluates it top to bottom. Given
		no FILE, it starts an interactive read-eval-print loop instead.

		Functions are first class, scoping is lexical, and a function
		value carries nothing but a byte offset back into the source it
		was defined in.
		`),
		Example: heredoc.Doc(`

		# Run a program
		$ sputter program.sptr

		# Start a REPL
		$ sputter

		# Run with verbose debug tracing
		$ sputter -v program.sptr

		# List the builtin functions
		$ sputter --builtins
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				options.File = args[0]
			}
			return sputter.Run()
		},
	}

	// Attach the flags
	flags := rootCmd.Flags()
	flags.IntVarP(&options.StackSize, "stack-size", "s", 0, "Max goroutine stack size in MiB (default 32).")
	flags.BoolVarP(&options.ColorOff, "color-off", "o", false, "Disable colored output.")
	flags.BoolVarP(&options.Verbose, "verbose", "v", false, "Enable verbose debug logging.")
	flags.BoolVar(&options.ShowBuiltins, "builtins", false, "List the builtin functions and exit.")
	flags.BoolVar(&options.ShowEnv, "env", false, "Print the bound globals after running FILE.")

	// Set our custom version and usage templates
	rootCmd.SetUsageTemplate(usageTemplate)
	rootCmd.SetVersionTemplate(versionTemplate)

	return rootCmd
}
