// SPDX-License-Identifier: MPL-2.0

package linter

import (
	"context"
	"strings"

	"masklint/pkg/maskfile"
)

// Ruff analyzes Python scripts with the ruff binary.
type Ruff struct {
	// Path overrides the ruff binary location.
	Path string
}

// Name returns the handler identifier.
func (r *Ruff) Name() string { return "ruff" }

// FileExtension returns the materialized file suffix.
func (r *Ruff) FileExtension() string { return ".py" }

// Content returns the script source unchanged.
func (r *Ruff) Content(script *maskfile.Script) string { return script.Source }

// Execute runs ruff in full-output, no-cache, quiet mode against the file
// at path.
func (r *Ruff) Execute(ctx context.Context, path string) (Result, error) {
	out, err := runTool(ctx, r.Name(), r.binary(),
		"check", "--output-format=full", "--no-cache", "--quiet", path)
	if err != nil {
		return Result{}, err
	}
	return NewFindings(normalizeRuff(out, path)), nil
}

func (r *Ruff) binary() string {
	if r.Path != "" {
		return r.Path
	}
	return "ruff"
}

// normalizeRuff rewrites "<path>:" location prefixes to "line " and drops
// everything from the trailing "Found N errors." summary onward, which is
// bookkeeping rather than a finding.
func normalizeRuff(out, path string) string {
	var kept []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.HasPrefix(line, "Found ") {
			break
		}
		kept = append(kept, strings.ReplaceAll(line, path+":", "line "))
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
