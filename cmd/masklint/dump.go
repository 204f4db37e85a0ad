// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"masklint/internal/issue"
	"masklint/internal/lint"
)

// dumpOutputDir is the --output flag for the dump command.
var dumpOutputDir string

// dumpCmd materializes the maskfile's scripts without linting them.
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Extract all scripts from the maskfile into a directory",
	Long: `Walk the maskfile's command tree and write each embedded script to a
file in the output directory, named after the full command name with the
language's conventional extension. No analyzers are run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true

		mf, err := loadTargetMaskfile()
		if err != nil {
			return err
		}

		if err := os.MkdirAll(dumpOutputDir, 0o755); err != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
			printIssue(issue.OutputDirFailedId)
			return &ExitError{Code: 1, Err: err}
		}

		if _, err := lint.WalkAll(newLintContext(cmd.Context(), dumpOutputDir, true), mf); err != nil {
			return lintFailure(err)
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpOutputDir, "output", "o", "",
		"directory the extracted scripts are written to")
	_ = dumpCmd.MarkFlagRequired("output")
}
