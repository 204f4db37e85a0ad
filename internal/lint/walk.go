// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"masklint/internal/linter"
	"masklint/pkg/maskfile"
)

// commandHeaderStyle renders the full command name above its findings.
var commandHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Underline(true).
	Foreground(lipgloss.Color("#06B6D4"))

// WalkAll walks every root command of the maskfile and returns the total
// number of files with findings.
func WalkAll(ctx *Context, mf *maskfile.Maskfile) (int, error) {
	total := 0
	for _, cmd := range mf.Commands {
		n, err := Walk(ctx, cmd, "")
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// Walk visits cmd and its subcommands in document order, materializing each
// embedded script and, outside dump mode, running its analyzer. It returns
// the number of visited nodes whose analyzer produced a non-empty findings
// result. Any materialization or execution error aborts the walk.
func Walk(ctx *Context, cmd *maskfile.Command, parentName string) (int, error) {
	fullName := cmd.Name
	if parentName != "" {
		fullName = parentName + " " + cmd.Name
	}

	count := 0
	if cmd.Script != nil {
		l := ctx.linterFor(cmd.Script.Executor)

		path, err := Materialize(ctx, l, fullName, cmd.Script)
		if err != nil {
			return 0, err
		}
		ctx.logger().Debug("materialized script", "command", fullName, "path", path)

		if !ctx.DumpMode {
			result, err := ctx.execute(l, path)
			if err != nil {
				return 0, err
			}
			if !result.Empty() {
				switch result.Kind {
				case linter.KindFindings:
					count++
					ctx.printResult(fullName, result)
				case linter.KindWarning:
					if !ctx.SuppressWarnings {
						ctx.printResult(fullName, result)
					}
				}
			}
		}
	}

	for _, sub := range cmd.Subcommands {
		n, err := Walk(ctx, sub, fullName)
		if err != nil {
			return count, err
		}
		count += n
	}

	return count, nil
}

// execute runs the handler's analyzer, applying the configured per-invocation
// timeout when one is set.
func (c *Context) execute(l linter.Linter, path string) (linter.Result, error) {
	runCtx := c.goContext()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, c.Timeout)
		defer cancel()
	}

	c.logger().Debug("running analyzer", "linter", l.Name(), "file", path)
	return l.Execute(runCtx, path)
}

func (c *Context) printResult(fullName string, result linter.Result) {
	fmt.Fprintln(c.stdout(), commandHeaderStyle.Render(fullName))
	fmt.Fprintln(c.stdout(), result.Message)
}
