// SPDX-License-Identifier: MPL-2.0

package maskfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"masklint/pkg/maskfile"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "maskfile.md")
	src := "# tasks\n\n## build\n\n```sh\necho hi\n```\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	mf, err := maskfile.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if mf.FilePath != path {
		t.Errorf("FilePath = %q, want %q", mf.FilePath, path)
	}
	if len(mf.Commands) != 1 {
		t.Fatalf("len(Commands) = %d, want 1", len(mf.Commands))
	}
}

func TestLoad_NotFound(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.md")

	_, err := maskfile.Load(path)
	if err == nil {
		t.Fatal("Load() error = nil, want not-found error")
	}
	if !errors.Is(err, maskfile.ErrMaskfileNotFound) {
		t.Errorf("errors.Is(err, ErrMaskfileNotFound) = false, err = %v", err)
	}

	var nfErr *maskfile.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("errors.As(err, *NotFoundError) = false, err = %v", err)
	}
	if nfErr.Path != path {
		t.Errorf("NotFoundError.Path = %q, want %q", nfErr.Path, path)
	}
}

func TestGetCommand(t *testing.T) {
	t.Parallel()

	src := `## build

` + "```sh\ntrue\n```" + `

## test

### unit

` + "```sh\ntrue\n```" + `
`
	mf, err := maskfile.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tests := []struct {
		name string
		want string
	}{
		{"build", "build"},
		{"test", "test"},
		{"test unit", "unit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := mf.GetCommand(tt.name)
			if got == nil {
				t.Fatalf("GetCommand(%q) = nil, want command", tt.name)
			}
			if got.Name != tt.want {
				t.Errorf("GetCommand(%q).Name = %q, want %q", tt.name, got.Name, tt.want)
			}
		})
	}

	if got := mf.GetCommand("nope"); got != nil {
		t.Errorf("GetCommand(%q) = %+v, want nil", "nope", got)
	}
	if got := mf.GetCommand(""); got != nil {
		t.Errorf("GetCommand(%q) = %+v, want nil", "", got)
	}
	if got := mf.GetCommand("build unit"); got != nil {
		t.Errorf("GetCommand(%q) = %+v, want nil", "build unit", got)
	}
}
