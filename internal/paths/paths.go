// Package paths computes the locations of systemd user-unit files.
package paths

import "path/filepath"

// UnitDir returns the per-user systemd unit directory under home.
func UnitDir(home string) string {
	return filepath.Join(home, ".config", "systemd", "user")
}

// ServicePath returns the path of the service unit file for name.
func ServicePath(home, name string) string {
	return filepath.Join(UnitDir(home), name+".service")
}

// TimerPath returns the path of the timer unit file for name.
func TimerPath(home, name string) string {
	return filepath.Join(UnitDir(home), name+".timer")
}
