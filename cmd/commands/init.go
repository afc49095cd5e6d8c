package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/datepick/internal/cli"
	"github.com/pluqqy/datepick/pkg/files"
	"github.com/pluqqy/datepick/pkg/models"
)

var initForce bool

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a datepick project",
		Long: `Create the .datepick folder structure in the current directory and write
the default settings file.

An existing settings file is kept unless you confirm the reset or pass
--force.

Examples:
  datepick init
  datepick init --force`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "Reset an existing settings file to the defaults")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine current directory: %w", err)
	}

	cli.PrintInfo("Initializing datepick project in %s...", cwd)

	_, statErr := os.Stat(files.SettingsPath())
	exists := statErr == nil

	if err := files.InitProjectStructure(); err != nil {
		return fmt.Errorf("failed to initialize project structure: %w", err)
	}

	if !exists {
		cli.PrintSuccess("Created %s folder structure", files.DatepickDir)
		cli.PrintSuccess("Wrote default settings to %s", files.SettingsPath())
		return nil
	}

	reset := initForce
	if !reset {
		reset, err = cli.Confirm(fmt.Sprintf("%s already exists. Reset it to the defaults?", files.SettingsPath()), false)
		if err != nil {
			return err
		}
	}
	if !reset {
		cli.PrintInfo("Kept existing settings")
		return nil
	}

	if err := files.WriteSettings(models.DefaultSettings()); err != nil {
		return err
	}
	cli.PrintSuccess("Reset %s to the defaults", files.SettingsPath())
	return nil
}
