// SPDX-License-Identifier: MPL-2.0

package maskfile_test

import (
	"testing"

	"masklint/pkg/maskfile"
)

func TestParse_TitleAndTopLevelCommands(t *testing.T) {
	t.Parallel()

	src := `# my tasks

## build

> Compile the project

` + "```sh\necho building\n```" + `

## test

` + "```sh\necho testing\n```" + `
`
	mf, err := maskfile.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if mf.Title != "my tasks" {
		t.Errorf("Title = %q, want %q", mf.Title, "my tasks")
	}
	if len(mf.Commands) != 2 {
		t.Fatalf("len(Commands) = %d, want 2", len(mf.Commands))
	}
	if mf.Commands[0].Name != "build" {
		t.Errorf("Commands[0].Name = %q, want %q", mf.Commands[0].Name, "build")
	}
	if mf.Commands[0].Description != "Compile the project" {
		t.Errorf("Commands[0].Description = %q, want %q",
			mf.Commands[0].Description, "Compile the project")
	}
	if mf.Commands[1].Name != "test" {
		t.Errorf("Commands[1].Name = %q, want %q", mf.Commands[1].Name, "test")
	}
}

func TestParse_ScriptExecutorAndSource(t *testing.T) {
	t.Parallel()

	src := "## deploy\n\n```py\nprint(\"hi\")\nprint(\"bye\")\n```\n"

	mf, err := maskfile.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(mf.Commands) != 1 {
		t.Fatalf("len(Commands) = %d, want 1", len(mf.Commands))
	}

	script := mf.Commands[0].Script
	if script == nil {
		t.Fatal("Commands[0].Script = nil, want script")
	}
	if script.Executor != "py" {
		t.Errorf("Executor = %q, want %q", script.Executor, "py")
	}
	want := "print(\"hi\")\nprint(\"bye\")\n"
	if script.Source != want {
		t.Errorf("Source = %q, want %q", script.Source, want)
	}
}

func TestParse_NestedSubcommands(t *testing.T) {
	t.Parallel()

	src := `## release

### notes

` + "```sh\ngit log\n```" + `

### tag

` + "```sh\ngit tag\n```" + `

## other

` + "```sh\ntrue\n```" + `
`
	mf, err := maskfile.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(mf.Commands) != 2 {
		t.Fatalf("len(Commands) = %d, want 2", len(mf.Commands))
	}

	release := mf.Commands[0]
	if release.Name != "release" {
		t.Errorf("Commands[0].Name = %q, want %q", release.Name, "release")
	}
	if len(release.Subcommands) != 2 {
		t.Fatalf("len(Subcommands) = %d, want 2", len(release.Subcommands))
	}
	if release.Subcommands[0].Name != "notes" {
		t.Errorf("Subcommands[0].Name = %q, want %q",
			release.Subcommands[0].Name, "notes")
	}
	if release.Subcommands[1].Name != "tag" {
		t.Errorf("Subcommands[1].Name = %q, want %q",
			release.Subcommands[1].Name, "tag")
	}

	// The level-2 heading after the subtree closes the whole chain.
	if mf.Commands[1].Name != "other" {
		t.Errorf("Commands[1].Name = %q, want %q", mf.Commands[1].Name, "other")
	}
	if len(mf.Commands[1].Subcommands) != 0 {
		t.Errorf("len(Commands[1].Subcommands) = %d, want 0",
			len(mf.Commands[1].Subcommands))
	}
}

func TestParse_HeadingArgumentAnnotationsStripped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		heading string
		want    string
	}{
		{"serve (port)", "serve"},
		{"rm <path>", "rm"},
		{"fetch [branch]", "fetch"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			t.Parallel()

			src := "## " + tt.heading + "\n\n```sh\ntrue\n```\n"
			mf, err := maskfile.Parse([]byte(src))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(mf.Commands) != 1 {
				t.Fatalf("len(Commands) = %d, want 1", len(mf.Commands))
			}
			if got := mf.Commands[0].Name; got != tt.want {
				t.Errorf("Name = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_CommandWithoutScript(t *testing.T) {
	t.Parallel()

	src := "## docs\n\nJust a grouping heading.\n"

	mf, err := maskfile.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(mf.Commands) != 1 {
		t.Fatalf("len(Commands) = %d, want 1", len(mf.Commands))
	}
	if mf.Commands[0].Script != nil {
		t.Errorf("Script = %+v, want nil", mf.Commands[0].Script)
	}
	if mf.Commands[0].HasScript() {
		t.Error("HasScript() = true, want false")
	}
}

func TestParse_FenceWithoutLanguageTag(t *testing.T) {
	t.Parallel()

	src := "## raw\n\n```\nwhatever\n```\n"

	mf, err := maskfile.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	script := mf.Commands[0].Script
	if script == nil {
		t.Fatal("Script = nil, want script")
	}
	if script.Executor != "" {
		t.Errorf("Executor = %q, want empty", script.Executor)
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	t.Parallel()

	mf, err := maskfile.Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if mf.Title != "" {
		t.Errorf("Title = %q, want empty", mf.Title)
	}
	if len(mf.Commands) != 0 {
		t.Errorf("len(Commands) = %d, want 0", len(mf.Commands))
	}
}

func TestParse_ContentBeforeFirstHeadingIgnored(t *testing.T) {
	t.Parallel()

	src := "Some intro prose.\n\n```sh\nignored\n```\n\n## real\n\n```sh\ntrue\n```\n"

	mf, err := maskfile.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(mf.Commands) != 1 {
		t.Fatalf("len(Commands) = %d, want 1", len(mf.Commands))
	}
	if mf.Commands[0].Name != "real" {
		t.Errorf("Commands[0].Name = %q, want %q", mf.Commands[0].Name, "real")
	}
}

func TestParse_OnlyFirstCodeBlockPerCommand(t *testing.T) {
	t.Parallel()

	src := "## twice\n\n```sh\nfirst\n```\n\n```py\nsecond\n```\n"

	mf, err := maskfile.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	script := mf.Commands[0].Script
	if script == nil {
		t.Fatal("Script = nil, want script")
	}
	if script.Executor != "sh" {
		t.Errorf("Executor = %q, want %q", script.Executor, "sh")
	}
}
