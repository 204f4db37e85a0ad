// SPDX-License-Identifier: MPL-2.0

package lint_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"masklint/internal/lint"
	"masklint/internal/linter"
	"masklint/pkg/maskfile"
)

func TestMaterialize(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	ctx := &lint.Context{OutDir: outDir}
	script := &maskfile.Script{Executor: "sh", Source: "echo hi\n"}

	path, err := lint.Materialize(ctx, &linter.ShellCheck{}, "release notes", script)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}

	want := filepath.Join(outDir, "release_notes.sh")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	wantContent := "#!/bin/usr/env sh\necho hi\n"
	if string(data) != wantContent {
		t.Errorf("content = %q, want %q", string(data), wantContent)
	}
}

func TestMaterialize_NoExtensionForCatchall(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	ctx := &lint.Context{OutDir: outDir}
	script := &maskfile.Script{Executor: "zsh", Source: "true\n"}

	path, err := lint.Materialize(ctx, &linter.Catchall{}, "mystery", script)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if want := filepath.Join(outDir, "mystery"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestMaterialize_Collision(t *testing.T) {
	t.Parallel()

	ctx := &lint.Context{OutDir: t.TempDir()}
	script := &maskfile.Script{Executor: "sh", Source: "true\n"}

	if _, err := lint.Materialize(ctx, &linter.ShellCheck{}, "build", script); err != nil {
		t.Fatalf("first Materialize() error = %v", err)
	}

	_, err := lint.Materialize(ctx, &linter.ShellCheck{}, "build", script)
	if err == nil {
		t.Fatal("second Materialize() error = nil, want collision error")
	}
	if !errors.Is(err, lint.ErrScriptCollision) {
		t.Errorf("errors.Is(err, ErrScriptCollision) = false, err = %v", err)
	}

	var collision *lint.ScriptCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("errors.As(err, *ScriptCollisionError) = false, err = %v", err)
	}
	if filepath.Base(collision.Path) != "build.sh" {
		t.Errorf("collision.Path = %q, want base %q", collision.Path, "build.sh")
	}
}

func TestMaterialize_MissingOutputDir(t *testing.T) {
	t.Parallel()

	ctx := &lint.Context{OutDir: filepath.Join(t.TempDir(), "does", "not", "exist")}
	script := &maskfile.Script{Executor: "sh", Source: "true\n"}

	if _, err := lint.Materialize(ctx, &linter.ShellCheck{}, "build", script); err == nil {
		t.Fatal("Materialize() error = nil, want create failure")
	}
}
