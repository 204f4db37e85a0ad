// SPDX-License-Identifier: MPL-2.0

package linter

import (
	"context"

	"masklint/pkg/maskfile"
)

type (
	// Linter is the per-language handler interface. Implementations are
	// stateless values, safe for concurrent use.
	Linter interface {
		// Name returns the handler identifier used in messages (matches the
		// conventional binary name for handlers that shell out).
		Name() string
		// FileExtension returns the suffix for materialized script files,
		// including the leading dot. Empty for handlers without a language.
		FileExtension() string
		// Content transforms raw script source into the standalone file body.
		Content(script *maskfile.Script) string
		// Execute runs the external analyzer against the file at path and
		// normalizes its output. The context bounds the subprocess lifetime.
		Execute(ctx context.Context, path string) (Result, error)
	}

	// Options configures tool binary overrides for registry construction.
	// Zero-value fields mean "use the conventional binary name".
	Options struct {
		ShellCheckPath string
		RuffPath       string
		RuboCopPath    string
		NuPath         string
	}

	// Registry selects a Linter for an executor tag, carrying any configured
	// binary overrides into the handlers it returns.
	Registry struct {
		opts Options
	}
)

// NewRegistry creates a registry with the given tool overrides.
func NewRegistry(opts Options) *Registry {
	return &Registry{opts: opts}
}

// For maps an executor tag to its handler. The mapping is total: anything
// outside the recognized, case-sensitive tag set selects Catchall.
func (r *Registry) For(executor string) Linter {
	switch executor {
	case "sh", "bash":
		return &ShellCheck{Path: r.opts.ShellCheckPath}
	case "py", "python":
		return &Ruff{Path: r.opts.RuffPath}
	case "rb", "ruby":
		return &RuboCop{Path: r.opts.RuboCopPath}
	case "nu", "nushell":
		return &NuCheck{Path: r.opts.NuPath}
	default:
		return &Catchall{}
	}
}

// ForExecutor selects a handler using the conventional binary names.
func ForExecutor(executor string) Linter {
	return defaultRegistry.For(executor)
}

var defaultRegistry = NewRegistry(Options{})
