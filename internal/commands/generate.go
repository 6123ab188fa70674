// Package commands implements unitgen CLI commands.
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/NielsdaWheelz/unitgen/internal/errors"
	"github.com/NielsdaWheelz/unitgen/internal/fs"
	"github.com/NielsdaWheelz/unitgen/internal/paths"
	"github.com/NielsdaWheelz/unitgen/internal/unit"
)

// GenerateOpts holds options for the generate command.
type GenerateOpts struct {
	Name        string
	WorkingDir  string
	Command     string
	Description string
	User        string
	Timer       string
	TimerSet    bool
}

// Generate implements the unitgen root command: renders and writes the
// service unit under ~/.config/systemd/user, and a timer unit when a
// calendar expression was given.
func Generate(fsys fs.FS, opts GenerateOpts, stdout io.Writer) error {
	// Cobra enforces required flags already; this guard keeps the contract
	// for direct callers and fails before any file I/O.
	var missing []string
	if opts.Name == "" {
		missing = append(missing, "--name")
	}
	if opts.WorkingDir == "" {
		missing = append(missing, "--working-dir")
	}
	if opts.Command == "" {
		missing = append(missing, "--command")
	}
	if len(missing) > 0 {
		return errors.New(errors.EUsage, "missing required flag(s): "+strings.Join(missing, ", "))
	}

	workingDir, err := unit.CanonicalWorkingDir(opts.WorkingDir)
	if err != nil {
		return errors.Wrap(errors.EInternal, fmt.Sprintf("failed to resolve working directory %s", opts.WorkingDir), err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return errors.Wrap(errors.EHomeDir, "failed to resolve home directory", err)
	}

	req := unit.Request{
		Name:        opts.Name,
		WorkingDir:  workingDir,
		Command:     opts.Command,
		Description: opts.Description,
		User:        opts.User,
		Timer:       opts.Timer,
		TimerSet:    opts.TimerSet,
	}

	unitDir := paths.UnitDir(home)
	if err := fsys.MkdirAll(unitDir, 0o755); err != nil {
		return errors.Wrap(errors.EDirCreateFailed, fmt.Sprintf("failed to create unit directory %s", unitDir), err)
	}

	serviceBody, err := unit.RenderService(req)
	if err != nil {
		return errors.Wrap(errors.EInternal, "failed to render service unit", err)
	}
	servicePath := paths.ServicePath(home, req.Name)
	if err := fsys.WriteFile(servicePath, []byte(serviceBody), 0o644); err != nil {
		return errors.Wrap(errors.EWriteFailed, fmt.Sprintf("failed to write %s", servicePath), err)
	}
	_, _ = fmt.Fprintf(stdout, "Service file saved to %s\n", servicePath)

	if !req.TimerSet {
		return nil
	}

	// The write above is fatal on failure, so the service file is expected
	// to exist here. Check anyway before pairing a timer with it.
	if _, err := fsys.Stat(servicePath); err != nil {
		_, _ = fmt.Fprintf(stdout, "Error: service file %s.service does not exist. Please create the service first.\n", req.Name)
		return nil
	}

	timerBody, err := unit.RenderTimer(req)
	if err != nil {
		return errors.Wrap(errors.EInternal, "failed to render timer unit", err)
	}
	timerPath := paths.TimerPath(home, req.Name)
	if err := fsys.WriteFile(timerPath, []byte(timerBody), 0o644); err != nil {
		return errors.Wrap(errors.EWriteFailed, fmt.Sprintf("failed to write %s", timerPath), err)
	}
	_, _ = fmt.Fprintf(stdout, "Timer file saved to %s\n", timerPath)

	return nil
}
