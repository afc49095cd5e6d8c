package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/datepick/internal/cli"
	"github.com/pluqqy/datepick/pkg/calendar"
	"github.com/pluqqy/datepick/pkg/files"
	"github.com/pluqqy/datepick/pkg/picker"
)

// FormatResult is the structured output of the format command
type FormatResult struct {
	Input     string `json:"input" yaml:"input"`
	Pattern   string `json:"pattern" yaml:"pattern"`
	Formatted string `json:"formatted" yaml:"formatted"`
}

var formatPattern string

// NewFormatCommand creates the format command
func NewFormatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <date|start..end>",
		Short: "Format a date or a range with a display pattern",
		Long: `Render a date, or a start..end range, the way the picker's input field
shows it.

Pattern tokens:
  yyyy yy y     year            MMMM MMM MM M  month
  dd d          day of month    EEEE EEE       weekday
  'text'        literal text    ''             single quote

A standalone "mm" is read as the month. Without --pattern the date_format
from the settings file is used, or "MMM d, yyyy" outside a project.

Examples:
  datepick format 2024-03-05
  datepick format 2024-03-05 --pattern "EEEE, d MMMM yyyy"
  datepick format 2024-03-05..2024-03-09 --pattern dd/mm/yyyy`,
		Args: cobra.ExactArgs(1),
		RunE: runFormat,
	}

	cmd.Flags().StringVarP(&formatPattern, "pattern", "p", "", "Display pattern")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string) error {
	pattern := formatPattern
	if pattern == "" {
		settings, err := files.LoadSettings()
		if err != nil {
			return err
		}
		pattern = settings.Picker.DateFormat
	}

	mode := picker.Single
	if strings.Contains(args[0], "..") {
		mode = picker.Range
	}
	value, err := cli.ParseValueArg(args[0], mode)
	if err != nil {
		return err
	}
	if value.IsEmpty() {
		return fmt.Errorf("nothing to format")
	}

	result := FormatResult{
		Input:     args[0],
		Pattern:   calendar.NormalizePattern(pattern),
		Formatted: picker.FormatValue(value, calendar.PatternFormatter{}, pattern),
	}

	switch format := outputFormat(cmd); format {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Formatted)
	return nil
}
