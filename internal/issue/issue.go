// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a known failure class with a rendered help card.
type Id int

const (
	MaskfileNotFoundId Id = iota + 1
	MaskfileParseErrorId
	LinterNotFoundId
	ScriptCollisionId
	OutputDirFailedId
	ConfigLoadFailedId
)

// MarkdownMsg is markdown text rendered to the terminal via glamour.
type MarkdownMsg string

// Issue pairs a failure class with the help card shown for it.
type Issue struct {
	id    Id
	mdMsg MarkdownMsg
}

// Id returns the issue identifier.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw markdown help text.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render produces the terminal-ready help card using the given glamour
// style (e.g. "auto", "dark", "light").
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	maskfileNotFoundIssue = &Issue{
		id: MaskfileNotFoundId,
		mdMsg: `
# No maskfile found!

We looked for the maskfile but the path does not exist.

## Things you can try:
- Run masklint from the directory containing your maskfile.md
- Point at a different document:
~~~
$ masklint run --maskfile path/to/maskfile.md
~~~
- Set a default path in your config:
~~~cue
maskfile: "docs/maskfile.md"
~~~`,
	}

	maskfileParseErrorIssue = &Issue{
		id: MaskfileParseErrorId,
		mdMsg: `
# Failed to parse maskfile!

The document could not be read as a maskfile.

## Things you can try:
- Check that command headings start at level 2 (` + "`## name`" + `)
- Check that each script is a fenced code block with a language tag
- Inspect what masklint sees:
~~~
$ masklint list
~~~`,
	}

	linterNotFoundIssue = &Issue{
		id: LinterNotFoundId,
		mdMsg: `
# Linter executable not found!

A script in the maskfile selects a linter whose binary is not on your PATH.

## Binaries we invoke:
- shellcheck (sh/bash scripts)
- ruff (py/python scripts)
- rubocop (rb/ruby scripts)
- nu (nu/nushell scripts)

## Things you can try:
- Install the missing tool, or
- Point masklint at a custom binary location:
~~~cue
linters: shellcheck: path: "/opt/shellcheck/bin/shellcheck"
~~~`,
	}

	scriptCollisionIssue = &Issue{
		id: ScriptCollisionId,
		mdMsg: `
# Duplicate command name!

Two commands in the maskfile resolve to the same full name, so their scripts
would overwrite each other on disk.

## Things you can try:
- Rename one of the commands
- Check for identically named subcommands under identically named parents`,
	}

	outputDirFailedIssue = &Issue{
		id: OutputDirFailedId,
		mdMsg: `
# Could not prepare the output directory!

The directory for materialized scripts could not be created or written.

## Things you can try:
- Check permissions on the --output path
- Pick a writable destination:
~~~
$ masklint dump --output ./scripts
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your config.cue contains syntax errors or values outside the schema.

## Things you can try:
- Check the error message above for the offending field
- Validate the file with the cue command-line tool
- Remove the file to fall back to defaults`,
	}

	issues = map[Id]*Issue{
		maskfileNotFoundIssue.Id():   maskfileNotFoundIssue,
		maskfileParseErrorIssue.Id(): maskfileParseErrorIssue,
		linterNotFoundIssue.Id():     linterNotFoundIssue,
		scriptCollisionIssue.Id():    scriptCollisionIssue,
		outputDirFailedIssue.Id():    outputDirFailedIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
	}
)

// Values returns all registered issues in id order.
func Values() []*Issue {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	out := make([]*Issue, 0, len(ids))
	for _, id := range ids {
		out = append(out, issues[id])
	}
	return out
}

// Get returns the issue registered for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
