// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	// Verify all IDs are unique and sequential
	ids := []Id{
		MaskfileNotFoundId,
		MaskfileParseErrorId,
		LinterNotFoundId,
		ScriptCollisionId,
		OutputDirFailedId,
		ConfigLoadFailedId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	// Verify IDs start at 1 (iota + 1)
	if MaskfileNotFoundId != 1 {
		t.Errorf("MaskfileNotFoundId = %d, want 1", MaskfileNotFoundId)
	}
}

func TestIssue_Id(t *testing.T) {
	issue := Get(MaskfileNotFoundId)
	if issue == nil {
		t.Fatal("Get(MaskfileNotFoundId) returned nil")
	}

	if issue.Id() != MaskfileNotFoundId {
		t.Errorf("issue.Id() = %d, want %d", issue.Id(), MaskfileNotFoundId)
	}
}

func TestIssue_MarkdownMsg(t *testing.T) {
	issue := Get(MaskfileNotFoundId)
	if issue == nil {
		t.Fatal("Get(MaskfileNotFoundId) returned nil")
	}

	msg := issue.MarkdownMsg()
	if msg == "" {
		t.Error("MarkdownMsg() returned empty string")
	}

	if !strings.Contains(string(msg), "No maskfile found") {
		t.Error("MarkdownMsg() should contain 'No maskfile found'")
	}
}

func TestValues_CoversEveryId(t *testing.T) {
	all := Values()
	if len(all) != len(issues) {
		t.Fatalf("Values() returned %d issues, want %d", len(all), len(issues))
	}

	// Values() is sorted by id.
	for i := 1; i < len(all); i++ {
		if all[i-1].Id() >= all[i].Id() {
			t.Errorf("Values() not sorted at index %d: %d >= %d",
				i, all[i-1].Id(), all[i].Id())
		}
	}
}

func TestGet_UnknownId(t *testing.T) {
	if got := Get(Id(9999)); got != nil {
		t.Errorf("Get(9999) = %+v, want nil", got)
	}
}

func TestIssue_Render(t *testing.T) {
	orig := render
	defer func() { render = orig }()

	var gotMsg, gotStyle string
	render = func(in string, stylePath string) (string, error) {
		gotMsg = in
		gotStyle = stylePath
		return "rendered", nil
	}

	issue := Get(LinterNotFoundId)
	out, err := issue.Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "rendered" {
		t.Errorf("Render() = %q, want %q", out, "rendered")
	}
	if gotStyle != "dark" {
		t.Errorf("style = %q, want %q", gotStyle, "dark")
	}
	if gotMsg != string(issue.MarkdownMsg()) {
		t.Error("Render() did not pass the issue's markdown to the renderer")
	}
}
