// SPDX-License-Identifier: MPL-2.0

package linter

import (
	"context"

	"masklint/pkg/maskfile"
)

// Catchall handles every executor tag without a dedicated analyzer. It
// materializes the script untouched and never launches a process.
type Catchall struct{}

// Name returns the handler identifier.
func (c *Catchall) Name() string { return "catchall" }

// FileExtension returns the empty string: the target language is unknown.
func (c *Catchall) FileExtension() string { return "" }

// Content returns the script source unchanged.
func (c *Catchall) Content(script *maskfile.Script) string { return script.Source }

// Execute reports a fixed warning instead of invoking anything.
func (c *Catchall) Execute(_ context.Context, _ string) (Result, error) {
	return NewWarning("no linter found for target"), nil
}
