// Package unit models a unit-generation request and renders systemd unit
// file bodies from it.
package unit

import (
	"os"
	"os/user"
	"path/filepath"
)

// DefaultDescription is the Description= value used when none is supplied.
const DefaultDescription = "A custom systemd service"

// Request holds the resolved inputs for one generation run. Built once per
// invocation, immutable afterwards.
type Request struct {
	// Name is the base filename for both unit files, without extension.
	Name string

	// WorkingDir is the canonicalized working directory written into the
	// service unit. See CanonicalWorkingDir.
	WorkingDir string

	// Command is the ExecStart line, stored verbatim. No shell escaping is
	// performed; the caller is responsible for quoting.
	Command string

	// Description is the Description= line of the service unit.
	Description string

	// User is the User= line of the service unit. Populated once at startup
	// from the flag default; never read ambiently after construction.
	User string

	// Timer is the OnCalendar expression. Only meaningful when TimerSet.
	Timer string

	// TimerSet records whether --timer was given at all. An absent timer
	// flag is distinct from an explicitly empty one.
	TimerSet bool
}

// CanonicalWorkingDir resolves dir to an absolute path with symlinks
// resolved, so the generated unit is stable regardless of the caller's
// current directory. A path that does not exist is kept in cleaned absolute
// form; existence is not validated here.
func CanonicalWorkingDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return abs, nil
		}
		return "", err
	}
	return resolved, nil
}

// CurrentUser returns the invoking user's name, for the --user flag default.
// Falls back to $USER when the account lookup fails.
func CurrentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
