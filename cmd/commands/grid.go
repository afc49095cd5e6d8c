package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/datepick/internal/cli"
	"github.com/pluqqy/datepick/pkg/calendar"
	"github.com/pluqqy/datepick/pkg/picker"
)

// GridDay is one cell of the printed grid
type GridDay struct {
	Date       calendar.Date `json:"date" yaml:"date"`
	InMonth    bool          `json:"in_month" yaml:"in_month"`
	Selectable bool          `json:"selectable" yaml:"selectable"`
	Disabled   bool          `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Today      bool          `json:"today,omitempty" yaml:"today,omitempty"`
}

// GridResult is the structured output of the grid command
type GridResult struct {
	Title string      `json:"title" yaml:"title"`
	Year  int         `json:"year" yaml:"year"`
	Month int         `json:"month" yaml:"month"`
	Weeks [][]GridDay `json:"weeks" yaml:"weeks"`
}

var (
	gridDays   bool
	gridPolicy policyFlags
)

// NewGridCommand creates the grid command
func NewGridCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid [month] [year]",
		Short: "Print the six-week grid of a month",
		Long: `Print the 42-day grid the picker shows for a month, weeks starting on
Sunday. Days of adjacent months are shown as dots; disabled days are marked
with an asterisk.

The month may be a number or a name and defaults to the current month. The
year defaults to the current year.

Examples:
  # Current month
  datepick grid

  # March 2024
  datepick grid march 2024
  datepick grid 3 2024

  # List every day with its selectability
  datepick grid 12 2024 --disabled 2024-12-25 --days`,
		Args: cobra.MaximumNArgs(2),
		RunE: runGrid,
	}

	cmd.Flags().BoolVar(&gridDays, "days", false, "List the days of the month as a table")
	gridPolicy.register(cmd)

	return cmd
}

func runGrid(cmd *cobra.Command, args []string) error {
	ctx, err := projectContext()
	if err != nil {
		return err
	}

	policyOpt, err := gridPolicy.option(ctx.Settings.Picker)
	if err != nil {
		return err
	}
	opts, err := ctx.PickerOptions(policyOpt)
	if err != nil {
		return err
	}

	month := calendar.MonthOf(ctx.Clock.Today())
	if len(args) > 0 {
		if month.Month, err = cli.ParseMonthArg(args[0]); err != nil {
			return err
		}
	}
	if len(args) > 1 {
		minYear, maxYear := picker.New(picker.Single, opts...).Navigator().Bounds()
		if month.Year, err = cli.ParseYearArg(args[1], minYear, maxYear); err != nil {
			return err
		}
	}

	p := picker.New(picker.Single, append(opts, picker.WithVisibleMonth(month))...)
	result := buildGridResult(p.Snapshot())

	switch format := outputFormat(cmd); format {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	if gridDays {
		printGridDays(cmd.OutOrStdout(), result)
		return nil
	}
	printGrid(cmd.OutOrStdout(), result)
	return nil
}

func buildGridResult(snap picker.Snapshot) GridResult {
	result := GridResult{
		Title: snap.Title,
		Year:  snap.Visible.Year,
		Month: int(snap.Visible.Month),
	}
	for w := 0; w < calendar.GridWeeks; w++ {
		week := make([]GridDay, 0, 7)
		for _, c := range snap.Cells[w*7 : w*7+7] {
			week = append(week, GridDay{
				Date:       c.Date,
				InMonth:    c.InCurrentMonth,
				Selectable: c.Selectable,
				Disabled:   c.Disabled,
				Today:      c.Today,
			})
		}
		result.Weeks = append(result.Weeks, week)
	}
	return result
}

func printGrid(w io.Writer, result GridResult) {
	fmt.Fprintln(w, result.Title)

	var header strings.Builder
	for _, wd := range calendar.Weekdays {
		fmt.Fprintf(&header, " %2s ", wd)
	}
	fmt.Fprintln(w, strings.TrimRight(header.String(), " "))

	hasDisabled := false
	for _, week := range result.Weeks {
		var row strings.Builder
		for _, day := range week {
			switch {
			case !day.InMonth:
				row.WriteString("  · ")
			case day.Disabled:
				hasDisabled = true
				fmt.Fprintf(&row, " %2d*", day.Date.Day)
			default:
				fmt.Fprintf(&row, " %2d ", day.Date.Day)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(row.String(), " "))
	}

	if hasDisabled {
		fmt.Fprintln(w, "\n* disabled")
	}
}

func printGridDays(w io.Writer, result GridResult) {
	table := cli.NewTableFormatter(w)
	table.Header("DATE", "WEEKDAY", "SELECTABLE")
	for _, week := range result.Weeks {
		for _, day := range week {
			if !day.InMonth {
				continue
			}
			selectable := "yes"
			if !day.Selectable {
				selectable = "no"
			}
			table.Row(day.Date.String(), day.Date.Weekday().String()[:3], selectable)
		}
	}
	table.Flush()
}
