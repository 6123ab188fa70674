// Package fs provides the filesystem seam for unitgen.
// Commands take an FS so tests can inject failure behavior.
package fs

import (
	"io/fs"
	"os"
)

// FS is the subset of filesystem operations unitgen performs.
type FS interface {
	// MkdirAll creates the directory chain for path. Idempotent if the
	// chain already exists.
	MkdirAll(path string, perm os.FileMode) error

	// WriteFile writes data to path, replacing any existing file in full
	// (truncate-then-write, not append).
	WriteFile(path string, data []byte, perm os.FileMode) error

	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

type realFS struct{}

// NewRealFS returns an FS backed by the os package.
func NewRealFS() FS {
	return realFS{}
}

func (realFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (realFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (realFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}
