package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/datepick/internal/cli"
	"github.com/pluqqy/datepick/pkg/calendar"
	"github.com/pluqqy/datepick/pkg/models"
	"github.com/pluqqy/datepick/pkg/picker"
)

// commandClock supplies "today" to every command. Tests pin it.
var commandClock calendar.Clock = calendar.SystemClock{}

// projectContext loads settings and fails unless the project is initialized
func projectContext() (*cli.CommandContext, error) {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return nil, err
	}
	ctx.Clock = commandClock
	if err := ctx.ValidateProject(); err != nil {
		return nil, err
	}
	return ctx, nil
}

// policyFlags are the disabled-date flags shared by pick, grid and check
type policyFlags struct {
	disableFuture bool
	disabled      string
}

func (f *policyFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.disableFuture, "disable-future", false, "Disable every day after today")
	cmd.Flags().StringVar(&f.disabled, "disabled", "", "Comma-separated dates to disable (YYYY-MM-DD)")
}

// policy merges the flags into the configured policy
func (f *policyFlags) policy(settings models.PickerSettings) (calendar.DisabledPolicy, error) {
	policy, err := settings.Policy()
	if err != nil {
		return calendar.DisabledPolicy{}, err
	}
	if f.disableFuture {
		policy.DisableFuture = true
	}
	dates, err := cli.ParseDateList(f.disabled)
	if err != nil {
		return calendar.DisabledPolicy{}, err
	}
	return policy.WithDates(dates...), nil
}

func (f *policyFlags) option(settings models.PickerSettings) (picker.Option, error) {
	policy, err := f.policy(settings)
	if err != nil {
		return nil, err
	}
	return picker.WithPolicy(policy), nil
}

func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		return string(cli.FormatText)
	}
	return format
}
