// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"masklint/internal/issue"
	"masklint/internal/lint"
	"masklint/internal/linter"
	"masklint/pkg/maskfile"
)

// runCmd lints every script embedded in the maskfile.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Lint all scripts in the maskfile",
	Long: `Walk the maskfile's command tree, extract each embedded script to a
temporary file, and run the static analyzer matching its language.

Exits non-zero when any script has findings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true

		mf, err := loadTargetMaskfile()
		if err != nil {
			return err
		}

		outDir, err := os.MkdirTemp("", "masklint-*")
		if err != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
			printIssue(issue.OutputDirFailedId)
			return &ExitError{Code: 1, Err: err}
		}
		defer os.RemoveAll(outDir)

		total, err := lint.WalkAll(newLintContext(cmd.Context(), outDir, false), mf)
		if err != nil {
			return lintFailure(err)
		}

		if total > 0 {
			plural := ""
			if total != 1 {
				plural = "s"
			}
			fmt.Fprintln(os.Stderr, ErrorStyle.Render(
				fmt.Sprintf("%d file%s with lint failures.", total, plural)))
			return &ExitError{Code: 1}
		}
		return nil
	},
}

// loadTargetMaskfile loads and parses the document selected by the
// --maskfile flag (or config), rendering the matching help card on failure.
func loadTargetMaskfile() (*maskfile.Maskfile, error) {
	mf, err := maskfile.Load(maskfilePathFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		var nfErr *maskfile.NotFoundError
		if errors.As(err, &nfErr) {
			printIssue(issue.MaskfileNotFoundId)
		} else {
			printIssue(issue.MaskfileParseErrorId)
		}
		return nil, &ExitError{Code: 1, Err: err}
	}
	return mf, nil
}

// newLintContext assembles the traversal inputs from flags and config.
func newLintContext(ctx context.Context, outDir string, dumpMode bool) *lint.Context {
	lctx := &lint.Context{
		Context:          ctx,
		OutDir:           outDir,
		DumpMode:         dumpMode,
		SuppressWarnings: noWarnings,
	}
	if verbose {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
			Level:           log.DebugLevel,
		})
		lctx.Logger = logger
	}
	if cfg != nil {
		lctx.Registry = linter.NewRegistry(linter.Options{
			ShellCheckPath: string(cfg.Linters.ShellCheck.Path),
			RuffPath:       string(cfg.Linters.Ruff.Path),
			RuboCopPath:    string(cfg.Linters.RuboCop.Path),
			NuPath:         string(cfg.Linters.Nu.Path),
		})
		lctx.Timeout = time.Duration(cfg.Linters.TimeoutSeconds) * time.Second
	}
	return lctx
}

// lintFailure maps a walk error to its help card and a non-zero exit.
func lintFailure(err error) error {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))

	var execNotFound *linter.ExecutableNotFoundError
	var collision *lint.ScriptCollisionError
	switch {
	case errors.As(err, &execNotFound):
		printIssue(issue.LinterNotFoundId)
	case errors.As(err, &collision):
		printIssue(issue.ScriptCollisionId)
	}
	return &ExitError{Code: 1, Err: err}
}
