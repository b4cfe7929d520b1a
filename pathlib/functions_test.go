package pathlib_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/disc0nn3ct/SAST-RPA/pathlib"
)

func TestEnsureDirectoryCreatesMissingParents(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "deep", "nested", "out")

	fullpath, err := pathlib.EnsureDirectory(target)
	if err != nil {
		t.Fatalf("EnsureDirectory failed: %v", err)
	}
	if !pathlib.IsDir(fullpath) {
		t.Errorf("expected directory at %q", fullpath)
	}

	// second call on an existing directory is a no-op
	again, err := pathlib.EnsureDirectory(target)
	if err != nil {
		t.Fatalf("EnsureDirectory on existing directory failed: %v", err)
	}
	if again != fullpath {
		t.Errorf("got %q, want %q", again, fullpath)
	}
}

func TestExistsAndIsFile(t *testing.T) {
	base := t.TempDir()
	filename := filepath.Join(base, "probe.txt")

	if pathlib.Exists(filename) {
		t.Error("file should not exist yet")
	}
	if err := pathlib.WriteFile(filename, []byte("content"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if !pathlib.Exists(filename) || !pathlib.IsFile(filename) {
		t.Error("written file should exist as a regular file")
	}
	if pathlib.IsDir(filename) {
		t.Error("regular file should not be a directory")
	}

	blob, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if string(blob) != "content" {
		t.Errorf("content = %q", string(blob))
	}
}
