package unit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCanonicalWorkingDir_Relative(t *testing.T) {
	dir := t.TempDir()

	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })

	got, err := CanonicalWorkingDir(".")
	if err != nil {
		t.Fatalf("CanonicalWorkingDir: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}

	// t.TempDir may itself sit behind a symlink (e.g. /tmp on darwin), so
	// compare against the resolved form.
	want, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCanonicalWorkingDir_ResolvesSymlinks(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "real")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	link := filepath.Join(base, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	got, err := CanonicalWorkingDir(link)
	if err != nil {
		t.Fatalf("CanonicalWorkingDir: %v", err)
	}

	want, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCanonicalWorkingDir_NonexistentKeepsAbsolute(t *testing.T) {
	// Existence is not validated: a missing path is accepted in cleaned
	// absolute form.
	missing := filepath.Join(t.TempDir(), "does", "not", "exist")

	got, err := CanonicalWorkingDir(missing)
	if err != nil {
		t.Fatalf("CanonicalWorkingDir: %v", err)
	}
	if got != missing {
		t.Errorf("got %q, want %q", got, missing)
	}
}

func TestCurrentUser_NonEmpty(t *testing.T) {
	if CurrentUser() == "" && os.Getenv("USER") != "" {
		t.Error("CurrentUser returned empty with $USER set")
	}
}
