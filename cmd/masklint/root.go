// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"masklint/internal/config"
	"masklint/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// maskfilePathFlag is the --maskfile override.
	maskfilePathFlag string
	// noWarnings suppresses warning-kind lint output.
	noWarnings bool
	// verbose enables diagnostic logging.
	verbose bool
	// cfgFile allows specifying a custom config file.
	cfgFile string

	// cfg is the loaded configuration; nil when loading failed.
	cfg *config.Config

	// rootCmd represents the base command when called without subcommands.
	rootCmd = &cobra.Command{
		Use:   "masklint",
		Short: "A linter for scripts embedded in maskfiles",
		Long: TitleStyle.Render("masklint") + SubtitleStyle.Render(" - A linter for scripts embedded in maskfiles") + `

masklint walks the command tree of a maskfile (a markdown document of
named commands carrying per-language scripts), extracts every script as
a standalone file, and routes each one to the static analyzer for its
language: shellcheck, ruff, rubocop, or nu-check.

` + SubtitleStyle.Render("Examples:") + `
  masklint run                       Lint every script in ./maskfile.md
  masklint run --maskfile tasks.md   Lint a different maskfile
  masklint dump --output ./scripts   Extract scripts without linting
  masklint list                      Show the parsed command tree`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&maskfilePathFlag, "maskfile", "maskfile.md",
		"path to a different maskfile you want to use")
	rootCmd.PersistentFlags().BoolVar(&noWarnings, "no-warnings", false,
		"suppress warning messages")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.config/masklint/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(listCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It is called by main.main() and only needs to happen once.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads the config file, if any, before command execution.
func initRootConfig() {
	opts := config.LoadOptions{ConfigFilePath: cfgFile}

	loaded, err := config.NewProvider().Load(context.Background(), opts)
	if err != nil {
		// Config errors are surfaced but never block execution: the tool
		// still works on defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}
	cfg = loaded

	// Apply config-backed defaults for flags the user did not set.
	if !rootCmd.PersistentFlags().Changed("maskfile") && cfg.Maskfile != "" {
		maskfilePathFlag = cfg.Maskfile
	}
	if !rootCmd.PersistentFlags().Changed("no-warnings") {
		noWarnings = cfg.NoWarnings
	}
	if !rootCmd.PersistentFlags().Changed("verbose") {
		verbose = cfg.UI.Verbose
	}
}

// formatErrorForDisplay formats an error for user display. ActionableError
// values use their Format method; verbose mode shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// colorScheme returns the configured glamour style for issue cards.
func colorScheme() string {
	if cfg != nil {
		return string(cfg.UI.ColorScheme)
	}
	return string(config.ColorSchemeAuto)
}

// printIssue renders the help card for a failure class to stderr. Rendering
// problems degrade to the raw markdown rather than masking the original
// failure.
func printIssue(id issue.Id) {
	card := issue.Get(id)
	if card == nil {
		return
	}
	rendered, err := card.Render(colorScheme())
	if err != nil {
		rendered = string(card.MarkdownMsg())
	}
	fmt.Fprintln(os.Stderr, rendered)
}
