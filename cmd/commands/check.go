package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/pluqqy/datepick/internal/cli"
	"github.com/pluqqy/datepick/pkg/calendar"
	"github.com/pluqqy/datepick/pkg/picker"
)

// CheckResult reports whether a date can be picked
type CheckResult struct {
	Date       calendar.Date `json:"date" yaml:"date"`
	Selectable bool          `json:"selectable" yaml:"selectable"`
	Reason     string        `json:"reason,omitempty" yaml:"reason,omitempty"`
}

const (
	reasonDisabledDate = "disabled date"
	reasonFuture       = "after today"
)

var checkPolicy policyFlags

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <date>",
		Short: "Check whether a date can be picked",
		Long: `Report whether a date is selectable under the configured disabled-date
policy, optionally tightened with flags.

Examples:
  # Check against the settings file
  datepick check 2024-12-25

  # Disallow future days
  datepick check 2030-01-01 --disable-future

  # Extra disabled dates, JSON output
  datepick check 2024-12-25 --disabled 2024-12-25,2024-12-26 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}

	checkPolicy.register(cmd)

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, err := projectContext()
	if err != nil {
		return err
	}

	d, err := cli.ParseDateArg(args[0], ctx.Clock)
	if err != nil {
		return err
	}

	policy, err := checkPolicy.policy(ctx.Settings.Picker)
	if err != nil {
		return err
	}
	opts, err := ctx.PickerOptions(
		picker.WithPolicy(policy),
		picker.WithVisibleMonth(calendar.MonthOf(d)),
	)
	if err != nil {
		return err
	}
	p := picker.New(picker.Single, opts...)

	result := CheckResult{
		Date:       d,
		Selectable: p.IsSelectable(d),
	}
	if !result.Selectable {
		result.Reason = reasonDisabledDate
		if !slices.Contains(policy.Dates(), d) {
			result.Reason = reasonFuture
		}
	}

	switch format := outputFormat(cmd); format {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	if result.Selectable {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is selectable\n", d)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is not selectable (%s)\n", d, result.Reason)
	}
	return nil
}
