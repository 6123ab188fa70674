// Command unitgen generates systemd user service and timer unit files.
package main

import (
	"os"

	"github.com/NielsdaWheelz/unitgen/internal/cli/cobra"
	"github.com/NielsdaWheelz/unitgen/internal/errors"
)

func main() {
	err := cobra.Execute(os.Stdout, os.Stderr)
	if err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
