// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"masklint/pkg/maskfile"
)

// listCmd prints the parsed command tree of the maskfile.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the commands defined in the maskfile",
	Long: `Parse the maskfile and print its command tree, one command per line,
with the script language and description when present. Useful for checking
what masklint sees before running the analyzers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true

		mf, err := loadTargetMaskfile()
		if err != nil {
			return err
		}

		if mf.Title != "" {
			fmt.Fprintln(cmd.OutOrStdout(), TitleStyle.Render(mf.Title))
		}
		for _, c := range mf.Commands {
			printCommandTree(cmd, c, 0)
		}
		return nil
	},
}

func printCommandTree(cmd *cobra.Command, c *maskfile.Command, depth int) {
	indent := strings.Repeat("  ", depth)
	line := indent + CmdStyle.Render(c.Name)
	if c.Script != nil {
		line += SubtitleStyle.Render(" (" + c.Script.Executor + ")")
	}
	if c.Description != "" {
		line += " " + c.Description
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)

	for _, sub := range c.Subcommands {
		printCommandTree(cmd, sub, depth+1)
	}
}
