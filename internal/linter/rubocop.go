// SPDX-License-Identifier: MPL-2.0

package linter

import (
	"context"
	"strings"

	"masklint/pkg/maskfile"
)

// RuboCop analyzes Ruby scripts with the rubocop binary.
type RuboCop struct {
	// Path overrides the rubocop binary location.
	Path string
}

// Name returns the handler identifier.
func (r *RuboCop) Name() string { return "rubocop" }

// FileExtension returns the materialized file suffix.
func (r *RuboCop) FileExtension() string { return ".rb" }

// Content returns the script source unchanged.
func (r *RuboCop) Content(script *maskfile.Script) string { return script.Source }

// Execute runs rubocop in clang output format with style-guide links
// against the file at path.
func (r *RuboCop) Execute(ctx context.Context, path string) (Result, error) {
	out, err := runTool(ctx, r.Name(), r.binary(),
		"--format=clang", "--display-style-guide", path)
	if err != nil {
		return Result{}, err
	}
	return NewFindings(normalizeRuboCop(out, path)), nil
}

func (r *RuboCop) binary() string {
	if r.Path != "" {
		return r.Path
	}
	return "rubocop"
}

// normalizeRuboCop drops rubocop's "1 file inspected, ..." summary line and
// rewrites "<path>:" location prefixes to "line ".
func normalizeRuboCop(out, path string) string {
	var kept []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "1 file inspected") {
			continue
		}
		kept = append(kept, line)
	}
	joined := strings.TrimSpace(strings.Join(kept, "\n"))
	return strings.ReplaceAll(joined, path+":", "line ")
}
