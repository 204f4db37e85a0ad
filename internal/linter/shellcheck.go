// SPDX-License-Identifier: MPL-2.0

package linter

import (
	"context"
	"fmt"
	"strings"

	"masklint/pkg/maskfile"
)

// ShellCheck analyzes sh/bash scripts with the shellcheck binary.
type ShellCheck struct {
	// Path overrides the shellcheck binary location.
	Path string
}

// Name returns the handler identifier.
func (s *ShellCheck) Name() string { return "shellcheck" }

// FileExtension returns the materialized file suffix.
func (s *ShellCheck) FileExtension() string { return ".sh" }

// Content prepends a shebang naming the script's executor, so the analyzer
// can be invoked uniformly on the file without being told the dialect.
func (s *ShellCheck) Content(script *maskfile.Script) string {
	return fmt.Sprintf("#!/bin/usr/env %s\n%s", script.Executor, script.Source)
}

// Execute runs shellcheck against the file at path.
func (s *ShellCheck) Execute(ctx context.Context, path string) (Result, error) {
	out, err := runTool(ctx, s.Name(), s.binary(), path)
	if err != nil {
		return Result{}, err
	}
	return NewFindings(normalizeShellCheck(out, path)), nil
}

func (s *ShellCheck) binary() string {
	if s.Path != "" {
		return s.Path
	}
	return "shellcheck"
}

// normalizeShellCheck strips the materialized file path from shellcheck's
// "In <path> line N:" location lines, leaving a path-free report.
func normalizeShellCheck(out, path string) string {
	return strings.ReplaceAll(strings.TrimSpace(out), path+" ", "")
}
