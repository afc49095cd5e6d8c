package commands

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/datepick/internal/cli"
	"github.com/pluqqy/datepick/pkg/picker"
	"github.com/pluqqy/datepick/pkg/tui"
)

// PickResult is the structured output of a committed pick
type PickResult struct {
	Mode    picker.Mode `json:"mode" yaml:"mode"`
	Start   string      `json:"start" yaml:"start"`
	End     string      `json:"end,omitempty" yaml:"end,omitempty"`
	Display string      `json:"display" yaml:"display"`
}

var (
	pickRange  bool
	pickValue  string
	pickFormat string
	pickCopy   bool
	pickPolicy policyFlags
)

// runProgram runs the interactive picker. The TUI draws on stderr so the
// committed value can be piped from stdout.
var runProgram = func(app *tui.App, mouse bool) error {
	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
		tea.WithReportFocus(),
	}
	if mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	_, err := tea.NewProgram(app, opts...).Run()
	return err
}

var copyToClipboard = clipboard.WriteAll

// NewPickCommand creates the pick command
func NewPickCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a date or a date range interactively",
		Long: `Open the calendar popup and print the committed value.

Keys:
  arrows/hjkl  move the cursor        space  pick the day under the cursor
  pgup/pgdown  previous/next month    y      toggle the year list
  enter        commit                 esc    cancel

In range mode the first pick sets the start and the second the end. A
second pick before the start swaps the two; a third pick starts over.

Examples:
  # Pick a single date
  datepick pick

  # Pick a range, starting from an existing value
  datepick pick --range --value 2024-03-10..2024-03-15

  # Disallow future days and a holiday, print JSON
  datepick pick --disable-future --disabled 2024-12-25 -o json

  # Copy the formatted value to the clipboard
  datepick pick --format "dd/MM/yyyy" --copy`,
		Args: cobra.NoArgs,
		RunE: runPick,
	}

	registerPickFlags(cmd)

	return cmd
}

func registerPickFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&pickRange, "range", "r", false, "Pick a date range instead of a single date")
	cmd.Flags().StringVar(&pickValue, "value", "", "Initial value (YYYY-MM-DD, or start..end with --range)")
	cmd.Flags().StringVarP(&pickFormat, "format", "f", "", "Display pattern (default from settings)")
	cmd.Flags().BoolVarP(&pickCopy, "copy", "c", false, "Copy the formatted value to the clipboard")
	pickPolicy.register(cmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	ctx, err := projectContext()
	if err != nil {
		return err
	}

	mode, err := ctx.Mode(pickRange)
	if err != nil {
		return err
	}

	policyOpt, err := pickPolicy.option(ctx.Settings.Picker)
	if err != nil {
		return err
	}
	extra := []picker.Option{policyOpt}

	if pickValue != "" {
		v, err := cli.ParseValueArg(pickValue, mode)
		if err != nil {
			return err
		}
		extra = append(extra, picker.WithValue(v))
	}

	pattern := ctx.Settings.Picker.DateFormat
	if pickFormat != "" {
		pattern = pickFormat
		extra = append(extra, picker.WithPattern(pickFormat))
	}

	opts, err := ctx.PickerOptions(extra...)
	if err != nil {
		return err
	}

	p := picker.New(mode, opts...)
	app := tui.NewApp(tui.NewDatePicker(p, ctx.Settings.UI), true)

	if err := runProgram(app, ctx.Settings.UI.Mouse); err != nil {
		return fmt.Errorf("failed to run the picker: %w", err)
	}

	value, ok := app.Result()
	if !ok || value.IsEmpty() {
		cli.PrintInfo("No date selected")
		return nil
	}

	result := PickResult{
		Mode:    value.Mode,
		Start:   value.Start.String(),
		End:     value.End.String(),
		Display: picker.FormatCommitted(value, nil, pattern),
	}

	switch format := outputFormat(cmd); format {
	case "json", "yaml":
		if err := cli.OutputResults(cmd.OutOrStdout(), format, result); err != nil {
			return err
		}
	default:
		fmt.Fprintln(cmd.OutOrStdout(), result.Display)
	}

	if pickCopy {
		if err := copyToClipboard(result.Display); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.PrintSuccess("Copied %q to clipboard", result.Display)
	}

	return nil
}
