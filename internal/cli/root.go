// Package cli provides the command-line interface for colorcue.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorcue/internal/colour"
	"github.com/jmylchreest/colorcue/internal/config"
	"github.com/jmylchreest/colorcue/internal/database"
	"github.com/jmylchreest/colorcue/internal/errs"
	"github.com/jmylchreest/colorcue/internal/security"
	"github.com/jmylchreest/colorcue/internal/version"
	"github.com/jmylchreest/colorcue/internal/words"
)

// app holds the state shared by every command of one invocation.
type app struct {
	envFile  string
	verbose  bool
	quiet    bool
	noColors bool

	cfg     config.Config
	logger  hclog.Logger
	printer *Printer
	cache   *database.Cache
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	a := &app{}
	if err := newRootCmd(a).Execute(); err != nil {
		p := a.printer
		if p == nil {
			p = NewPrinter(os.Stdout, os.Stderr, false, true)
		}
		p.Error("%s", describe(err))
		os.Exit(1)
	}
}

// NewRootCmd returns a fresh command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colorcue",
		Short: "Name colours with two memorable words",
		Long: `colorcue encodes a colour as a pair of words and decodes word pairs back
to colours.

One word is a descriptor naming the hue, the other is drawn from a word
database and carries the saturation and luminosity. Build the database once
from any word list with "colorcue gendb", then encode and decode freely.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	cmd.PersistentFlags().BoolVarP(&a.noColors, "no-colors", "c", false, "disable coloured output")
	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load COLORCUE_ settings from this file")

	cmd.SetVersionTemplate(version.String() + "\n")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newGendbCmd(a))
	cmd.AddCommand(newEncodeCmd(a))
	cmd.AddCommand(newDecodeCmd(a))
	cmd.AddCommand(newReplaceCmd(a))
	cmd.AddCommand(newCheckCmd(a))
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := hclog.Warn
	var output io.Writer = cmd.ErrOrStderr()
	switch {
	case a.verbose:
		level = hclog.Debug
	case a.quiet:
		level = hclog.Off
		output = io.Discard
	}
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "colorcue",
		Output: output,
		Level:  level,
	})

	colourEnabled := !a.noColors && !cfg.NoColor && os.Getenv("NO_COLOR") == ""
	a.printer = NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), a.quiet, colourEnabled)
	colour.DisableColourOutput = !a.printer.Colour()

	a.cache = database.NewCache()
	return nil
}

// repository returns the configured descriptor list.
func (a *app) repository() (*words.Repository, error) {
	if a.cfg.Descriptors != "" {
		a.logger.Debug("loading descriptors", "path", a.cfg.Descriptors)
		return words.LoadRepositoryFile(a.cfg.Descriptors)
	}
	return words.Default()
}

// databaseOptions returns the options every database component shares.
func (a *app) databaseOptions() []database.Option {
	opts := []database.Option{
		database.WithSeparator(a.cfg.Separator),
		database.WithCache(a.cache),
		database.WithLogger(a.logger),
	}
	if !a.cfg.AcceleratedSearch {
		opts = append(opts, database.WithSearcher(nil))
	}
	return opts
}

// databasePath returns path, or the configured database when path is
// empty, after checking that the database can be read.
func (a *app) databasePath(path string) (string, error) {
	if path == "" {
		path = a.cfg.Database
	}
	if _, err := security.CheckReadableFile(path); err != nil {
		return "", fmt.Errorf("%w (run \"colorcue gendb\" to create the database)", err)
	}
	return path, nil
}

// describe adds a hint for the failures a user can act on.
func describe(err error) string {
	if errors.Is(err, database.ErrNoWords) {
		return fmt.Sprintf("%v (use --force to accept the closest word)", err)
	}
	switch errs.Category(err) {
	case errs.ErrStructure:
		return fmt.Sprintf("%v (a tuple is one descriptor word and one other word)", err)
	case errs.ErrSetup:
		return fmt.Sprintf("%v (check the descriptor list)", err)
	}
	return err.Error()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
