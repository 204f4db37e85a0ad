// SPDX-License-Identifier: MPL-2.0

package linter

import (
	"errors"
	"fmt"
)

// ErrExecutableNotFound is the sentinel error wrapped by ExecutableNotFoundError.
var ErrExecutableNotFound = errors.New("executable not found")

// ExecutableNotFoundError is returned when a linter's external binary is
// absent from the search path. It is distinguishable from generic process
// failures because a missing analyzer is a missing optional dependency, not
// a bug, and callers render it accordingly.
type ExecutableNotFoundError struct {
	// Linter is the handler whose binary is missing (e.g. "shellcheck").
	Linter string
}

// Error implements the error interface.
func (e *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf("executable for %s not found in $PATH", e.Linter)
}

// Unwrap returns ErrExecutableNotFound so callers can use errors.Is for
// programmatic detection.
func (e *ExecutableNotFoundError) Unwrap() error { return ErrExecutableNotFound }
