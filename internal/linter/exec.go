// SPDX-License-Identifier: MPL-2.0

package linter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// runTool launches an analyzer binary and captures its standard output.
//
// Analyzers conventionally exit non-zero when they report findings, so a
// plain exit error is not a failure here: stdout still carries the report.
// A binary that cannot be located maps to ExecutableNotFoundError; every
// other launch failure propagates as a generic error.
func runTool(ctx context.Context, linterName, bin string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("run %s: %w", linterName, ctxErr)
	}
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			// Non-zero exit: the tool ran and found something.
		case errors.Is(err, exec.ErrNotFound):
			return "", &ExecutableNotFoundError{Linter: linterName}
		default:
			return "", fmt.Errorf("run %s: %w", linterName, err)
		}
	}

	return stdout.String(), nil
}
