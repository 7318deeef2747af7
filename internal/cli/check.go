package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorcue/internal/database"
	"github.com/jmylchreest/colorcue/internal/errs"
)

// ErrNotCovered is returned by check when some score has no word.
var ErrNotCovered = fmt.Errorf("%w: database does not cover every score", errs.ErrLookup)

type checkOptions struct {
	output string
}

func newCheckCmd(a *app) *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check [database]",
		Short: "Check that a word database can encode every colour",
		Long: `Check that a word database has a word for every score, so every colour can
be encoded exactly. The command fails when a score is missing.

Examples:
  colorcue check
  colorcue check --output json words.data`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runCheck(cmd, a, opts, path)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", database.FormatText,
		fmt.Sprintf("report format (%s)", strings.Join(database.ReportFormats(), ", ")))
	return cmd
}

func runCheck(cmd *cobra.Command, a *app, opts *checkOptions, path string) error {
	if !slices.Contains(database.ReportFormats(), opts.output) {
		return fmt.Errorf("%w: unsupported report format %q (supported: %s)",
			errs.ErrInvalidInput, opts.output, strings.Join(database.ReportFormats(), ", "))
	}

	path, err := a.databasePath(path)
	if err != nil {
		return err
	}

	report, err := database.NewDataChecker(path, a.databaseOptions()...).Check(cmd.Context())
	if err != nil {
		return err
	}

	p := a.printer
	if opts.output == database.FormatText {
		p.Print("Database: %s", report.Database)
		table := NewTable([]string{"Metric", "Value"})
		for _, row := range report.Rows() {
			table.AddRow(row)
		}
		p.Return(strings.TrimRight(table.Render(), "\n"))
	} else if err := report.Write(p.Out(), opts.output); err != nil {
		return err
	}

	if !report.Covered {
		return fmt.Errorf("%w: %d of %d scores have no word", ErrNotCovered, report.MissingScores, report.RequiredScores)
	}
	if opts.output == database.FormatText {
		p.Success("The database covers all %d scores", report.RequiredScores)
	}
	return nil
}
