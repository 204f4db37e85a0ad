// SPDX-License-Identifier: MPL-2.0

package maskfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ErrMaskfileNotFound is the sentinel error wrapped by NotFoundError.
var ErrMaskfileNotFound = errors.New("maskfile not found")

type (
	// Maskfile represents a parsed command-definition document.
	Maskfile struct {
		// Title is the text of the document's level-1 heading, if any.
		Title string
		// Commands are the root commands in document order.
		Commands []*Command

		// FilePath stores the path this maskfile was loaded from (empty for
		// in-memory parses).
		FilePath string
	}

	// Command is a node of the command tree. The tree is rooted, ordered and
	// acyclic; traversal order is document order.
	Command struct {
		// Name is the command name as written in the heading, with argument
		// annotations (e.g. "(port)") stripped.
		Name string
		// Description is the first paragraph following the heading, if any.
		Description string
		// Script is the command's embedded script, nil for commands that only
		// group subcommands.
		Script *Script
		// Subcommands are the nested commands in document order.
		Subcommands []*Command
	}

	// Script is an embedded script tagged with its executor language.
	Script struct {
		// Executor is the short language tag from the code fence (e.g. "sh",
		// "py"). Empty when the fence has no info string.
		Executor string
		// Source is the raw script body exactly as authored.
		Source string
	}

	// NotFoundError is returned when the maskfile path does not exist.
	// It wraps ErrMaskfileNotFound for errors.Is() compatibility.
	NotFoundError struct {
		Path string
	}
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("maskfile %q not found", e.Path)
}

// Unwrap returns ErrMaskfileNotFound so callers can use errors.Is for
// programmatic detection.
func (e *NotFoundError) Unwrap() error { return ErrMaskfileNotFound }

// Load reads and parses the maskfile at path.
func Load(path string) (*Maskfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("read maskfile: %w", err)
	}

	mf, err := Parse(data)
	if err != nil {
		return nil, err
	}
	mf.FilePath = path
	return mf, nil
}

// GetCommand finds a command by its full space-joined name
// (e.g. "test unit"). Returns nil when no such command exists.
func (mf *Maskfile) GetCommand(name string) *Command {
	if name == "" {
		return nil
	}
	return findCommand(mf.Commands, strings.Fields(name))
}

func findCommand(cmds []*Command, parts []string) *Command {
	if len(parts) == 0 {
		return nil
	}
	for _, c := range cmds {
		if c.Name != parts[0] {
			continue
		}
		if len(parts) == 1 {
			return c
		}
		return findCommand(c.Subcommands, parts[1:])
	}
	return nil
}

// HasScript reports whether the command carries an embedded script.
func (c *Command) HasScript() bool {
	return c.Script != nil
}
