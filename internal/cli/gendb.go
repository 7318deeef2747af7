package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorcue/internal/database"
	"github.com/jmylchreest/colorcue/internal/security"
)

type gendbOptions struct {
	output       string
	force        bool
	disableRules []string
}

func newGendbCmd(a *app) *cobra.Command {
	opts := &gendbOptions{}
	cmd := &cobra.Command{
		Use:   "gendb <word-list>",
		Short: "Build the word database from a word list",
		Long: fmt.Sprintf(`Build the word database from a word list with one word per line.

The list is cleaned first: blank lines, single letters, abbreviations, words
with characters other than Latin letters, and descriptor words are dropped.
Every cleaning rule except %q can be disabled. The word list may be
compressed (gzip, bzip2, xz) or archived (tar, zip).

Rules: %s

Examples:
  # Build the default database
  colorcue gendb /usr/share/dict/words

  # Keep abbreviations and write somewhere else
  colorcue gendb -d abbreviation -o words.data wordlist.txt.gz

  # Replace an existing database
  colorcue gendb --force wordlist.txt`, database.RuleReserved, strings.Join(database.RuleNames(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGendb(cmd, a, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output-file", "o", "", "database file (default: the configured database)")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite an existing database")
	cmd.Flags().StringSliceVarP(&opts.disableRules, "disable-rules", "d", nil,
		fmt.Sprintf("cleaning rules to disable (%s, %s)", strings.Join(database.RuleNames(), ", "), database.RuleAll))
	return cmd
}

func runGendb(cmd *cobra.Command, a *app, opts *gendbOptions, input string) error {
	ctx := cmd.Context()
	p := a.printer

	output := opts.output
	if output == "" {
		output = a.cfg.Database
	}

	if _, err := security.CheckReadableFile(input); err != nil {
		return err
	}
	exists, err := security.CheckWritableTarget(output, opts.force)
	if err != nil {
		if exists {
			return fmt.Errorf("%w (use --force to replace it)", err)
		}
		return err
	}

	repo, err := a.repository()
	if err != nil {
		return err
	}

	cleaner, err := database.NewCleaner(repo, opts.disableRules,
		database.WithCleanerLogger(a.logger),
		database.WithMaxBytes(a.cfg.MaxWordListBytes),
	)
	if err != nil {
		return err
	}

	p.Info("Cleaning %s (rules: %s)", input, strings.Join(cleaner.ActiveRules(), ", "))
	list, err := cleaner.CleanFile(ctx, input)
	if err != nil {
		return err
	}
	p.Info("Kept %d words", len(list))

	in := database.NewInitializer(output, repo, a.databaseOptions()...)
	if err := in.SetUp(); err != nil {
		return err
	}
	if err := in.Populate(ctx, list); err != nil {
		return err
	}
	p.Success("Database written to %s", output)

	report, err := database.NewDataChecker(output, a.databaseOptions()...).Check(ctx)
	if err != nil {
		return err
	}
	if !report.Covered {
		p.Warn("The database misses %d of %d scores; some colours will need --force to encode",
			report.MissingScores, report.RequiredScores)
	}
	return nil
}
