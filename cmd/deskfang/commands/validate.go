package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/deskfang/pkg/analysis"
)

// NewValidateCommand creates the validate subcommand.
func NewValidateCommand() *cobra.Command {
	var nocolor bool

	cmd := &cobra.Command{
		Use:   "validate <analysis_results.json>",
		Short: "Validate an analysis result against the report schema",
		Long: `Validate checks a previously written analysis result file against the
embedded report schema.

Examples:
  deskfang validate mapping/analysis_results.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], nocolor)
		},
	}

	cmd.Flags().BoolVar(&nocolor, flagNoColor, false, "disable colored output")

	return cmd
}

func runValidate(cmd *cobra.Command, path string, nocolor bool) error {
	if nocolor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	validateErr := analysis.ValidateReport(data)
	if validateErr != nil {
		color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "Report is invalid (%s)\n", path)

		return validateErr
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Report is valid (%s)\n", path)

	return nil
}
