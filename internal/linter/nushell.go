// SPDX-License-Identifier: MPL-2.0

package linter

import (
	"context"
	"fmt"
	"strings"

	"masklint/pkg/maskfile"
)

// NuCheck analyzes Nushell scripts with nu's own nu-check subcommand.
type NuCheck struct {
	// Path overrides the nu binary location.
	Path string
}

// Name returns the handler identifier.
func (n *NuCheck) Name() string { return "nushell" }

// FileExtension returns the materialized file suffix.
func (n *NuCheck) FileExtension() string { return ".nu" }

// Content returns the script source unchanged.
func (n *NuCheck) Content(script *maskfile.Script) string { return script.Source }

// Execute asks nu to syntax-check the file at path. nu-check itself prints
// nothing on success; the wrapping expression emits a fixed diagnostic when
// the file does not parse, and the trimmed stdout is the result verbatim.
func (n *NuCheck) Execute(ctx context.Context, path string) (Result, error) {
	expr := fmt.Sprintf(
		"if not (nu-check %s) { print 'file could not be parsed by nu-check' }", path)
	out, err := runTool(ctx, n.Name(), n.binary(), "-c", expr)
	if err != nil {
		return Result{}, err
	}
	return NewFindings(strings.TrimSpace(out)), nil
}

func (n *NuCheck) binary() string {
	if n.Path != "" {
		return n.Path
	}
	return "nu"
}
