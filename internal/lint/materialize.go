// SPDX-License-Identifier: MPL-2.0

package lint

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"masklint/internal/linter"
	"masklint/pkg/maskfile"
)

// ErrScriptCollision is the sentinel error wrapped by ScriptCollisionError.
var ErrScriptCollision = errors.New("script file collision")

// ScriptCollisionError is returned when two command nodes resolve to the same
// materialized file name. Creation is exclusive, so the collision surfaces as
// a hard error instead of silently overwriting the earlier script.
type ScriptCollisionError struct {
	// Path is the materialized file path both commands resolved to.
	Path string
}

// Error implements the error interface.
func (e *ScriptCollisionError) Error() string {
	return fmt.Sprintf("script file %q already exists (duplicate command name)", e.Path)
}

// Unwrap returns ErrScriptCollision so callers can use errors.Is for
// programmatic detection.
func (e *ScriptCollisionError) Unwrap() error { return ErrScriptCollision }

// Materialize writes the command's script as a standalone file in the run's
// output directory and returns its path.
//
// The file name is the full command name with spaces replaced by underscores
// plus the handler's extension. The file is created exclusively: an existing
// file at the same path means two commands share a full name, which fails
// the run.
func Materialize(ctx *Context, l linter.Linter, fullName string, script *maskfile.Script) (string, error) {
	fileName := strings.ReplaceAll(fullName, " ", "_") + l.FileExtension()
	path := filepath.Join(ctx.OutDir, fileName)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", &ScriptCollisionError{Path: path}
		}
		return "", fmt.Errorf("create script file %s: %w", path, err)
	}

	if _, err := f.WriteString(l.Content(script)); err != nil {
		f.Close()
		return "", fmt.Errorf("write script file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close script file %s: %w", path, err)
	}

	return path, nil
}
