package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/datepick/internal/cli"
)

// NewRootCommand builds the datepick command tree. Running it without a
// subcommand behaves like `datepick pick`.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "datepick",
		Short: "Terminal date and date-range picker",
		Long: `Datepick is a terminal date picker. It opens a calendar popup, lets you
pick a single day or a range of days and prints the committed value.

Settings live in .datepick/settings.yaml; run 'datepick init' to create it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			noColor, _ := cmd.Flags().GetBool("no-color")
			yes, _ := cmd.Flags().GetBool("yes")
			cli.SetGlobalFlags(quiet, noColor, yes)
			return cli.ValidateOutputFormat(outputFormat(cmd))
		},
		Args: cobra.NoArgs,
		RunE: runPick,
	}

	root.PersistentFlags().StringP("output", "o", "text", "Output format (text, json, yaml)")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress informational messages")
	root.PersistentFlags().Bool("no-color", false, "Disable colored output")
	root.PersistentFlags().BoolP("yes", "y", false, "Answer yes to every prompt")
	registerPickFlags(root)

	root.AddCommand(NewPickCommand())
	root.AddCommand(NewGridCommand())
	root.AddCommand(NewCheckCommand())
	root.AddCommand(NewFormatCommand())
	root.AddCommand(NewInitCommand())
	root.AddCommand(NewVersionCommand(version))

	return root
}
