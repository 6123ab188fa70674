// Package cobra provides the Cobra-based CLI command tree for unitgen.
package cobra

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/unitgen/internal/commands"
	"github.com/NielsdaWheelz/unitgen/internal/errors"
	"github.com/NielsdaWheelz/unitgen/internal/fs"
	"github.com/NielsdaWheelz/unitgen/internal/unit"
	"github.com/NielsdaWheelz/unitgen/internal/version"
)

// NewRootCmd creates the root cobra command for unitgen.
func NewRootCmd() *cobra.Command {
	var (
		name        string
		workingDir  string
		command     string
		timer       string
		description string
		userName    string
	)

	rootCmd := &cobra.Command{
		Use:   "unitgen",
		Short: "Generate systemd user service and timer unit files",
		Long: `unitgen - generate systemd user unit files

Writes <name>.service (and optionally <name>.timer) under
~/.config/systemd/user. Existing files with the same name are overwritten.

Example timer formats: daily at 2 PM is "*-*-* 14:00:00", every Monday at
1 AM is "Mon *-*-* 01:00:00". See systemd.time(7) for the full calendar
syntax.`,
		Version:       version.FullVersion(),
		Args:          cobra.NoArgs,
		SilenceErrors: true, // We handle error printing in main.go
		SilenceUsage:  true, // We handle usage printing manually
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := commands.GenerateOpts{
				Name:        name,
				WorkingDir:  workingDir,
				Command:     command,
				Description: description,
				User:        userName,
				Timer:       timer,
				TimerSet:    cmd.Flags().Changed("timer"),
			}

			return commands.Generate(fs.NewRealFS(), opts, cmd.OutOrStdout())
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&name, "name", "n", "", "service name (without the .service extension)")
	flags.StringVarP(&workingDir, "working-dir", "w", "", "working directory for the service")
	flags.StringVarP(&command, "command", "c", "", "command to execute (ensure it is correctly quoted)")
	flags.StringVarP(&timer, "timer", "t", "", `timer specification in systemd calendar format, e.g. "*-*-* 14:00:00"`)
	flags.StringVarP(&description, "description", "d", unit.DefaultDescription, "description of the service")
	flags.StringVarP(&userName, "user", "u", unit.CurrentUser(), "user to run the service as (defaults to the current user)")

	_ = rootCmd.MarkFlagRequired("name")
	_ = rootCmd.MarkFlagRequired("working-dir")
	_ = rootCmd.MarkFlagRequired("command")

	// Disable Cobra's default completion command (we register our own)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newVersionCmd(),
		newCompletionCmd(),
	)

	return rootCmd
}

// Execute runs the root command with the given output writers.
// This is the main entry point from main.go.
func Execute(stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return wrapUsage(rootCmd.Execute())
}

// wrapUsage maps plain cobra flag-parsing errors to the usage code so main
// exits with the right status.
func wrapUsage(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := errors.AsUnitgenError(err); !ok {
		return errors.New(errors.EUsage, err.Error())
	}
	return err
}
