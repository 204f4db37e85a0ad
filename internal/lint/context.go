// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"masklint/internal/linter"
)

// Context carries the per-run traversal inputs. It is created once per run
// and read-only during the walk.
type Context struct {
	// Context is the Go context for cancellation.
	Context context.Context
	// Registry selects language handlers; nil means the default registry.
	Registry *linter.Registry
	// OutDir is the directory materialized script files are written to.
	OutDir string
	// DumpMode skips analyzer execution and only materializes files.
	DumpMode bool
	// SuppressWarnings drops warning-kind results from the output.
	SuppressWarnings bool
	// Timeout bounds each analyzer invocation; zero disables the bound.
	Timeout time.Duration
	// Stdout receives findings output; nil means os.Stdout.
	Stdout io.Writer
	// Logger receives verbose diagnostics; nil discards them.
	Logger *log.Logger
}

func (c *Context) linterFor(executor string) linter.Linter {
	if c.Registry != nil {
		return c.Registry.For(executor)
	}
	return linter.ForExecutor(executor)
}

func (c *Context) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}

func (c *Context) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return discardLogger
}

func (c *Context) goContext() context.Context {
	if c.Context != nil {
		return c.Context
	}
	return context.Background()
}

var discardLogger = log.New(io.Discard)
