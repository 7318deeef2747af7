package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorcue/internal/codec"
	"github.com/jmylchreest/colorcue/internal/colour"
	"github.com/jmylchreest/colorcue/internal/database"
	"github.com/jmylchreest/colorcue/internal/words"
)

// swatchWidth is the width of colour previews in cells.
const swatchWidth = 4

type encodeOptions struct {
	format   *modeValue
	database string
	all      bool
	force    bool
	preview  bool
}

func newEncodeCmd(a *app) *cobra.Command {
	opts := &encodeOptions{format: newModeValue("")}
	cmd := &cobra.Command{
		Use:   "encode <colour>",
		Short: "Encode a colour as word tuples",
		Long: fmt.Sprintf(`Encode a colour as a two-word tuple.

Keywords, hex colours and functional notation such as "rgb(12, 34, 56)" are
recognised automatically. Other input needs --format.

Formats: %s

Examples:
  # Encode a hex colour
  colorcue encode '#3a7bd5'

  # Encode HSL channels, listing every tuple
  colorcue encode --format hsl --all-tuples 120,40,60

  # Accept the closest word when no word matches exactly
  colorcue encode --force 'hsl(17, 93, 41)'`, colour.ModeNames()),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, a, opts, args[0])
		},
	}

	cmd.Flags().Var(opts.format, "format", "input colour format (default: recognised from the input)")
	cmd.Flags().StringVarP(&opts.database, "database", "d", "", "word database (default: the configured database)")
	cmd.Flags().BoolVarP(&opts.all, "all-tuples", "a", false, "print every tuple instead of one")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "use the closest word when no word matches")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show a colour preview")
	return cmd
}

func runEncode(cmd *cobra.Command, a *app, opts *encodeOptions, input string) error {
	ctx := cmd.Context()
	p := a.printer

	v, err := readColour(p, input, opts.format.mode)
	if err != nil {
		return err
	}
	c := colour.FromValue(v)
	if !c.Valid() {
		return fmt.Errorf("%w: %q", colour.ErrInvalidColor, input)
	}

	path, err := a.databasePath(opts.database)
	if err != nil {
		return err
	}
	repo, err := a.repository()
	if err != nil {
		return err
	}

	finder := database.NewFinder(path, a.databaseOptions()...)
	enc := codec.NewEncoder(repo, finder, codec.WithLogger(a.logger))

	tuples, err := enc.Encode(ctx, c, codec.EncodeOptions{AllResults: opts.all})
	if errors.Is(err, database.ErrNoWords) && opts.force {
		p.Warn("No word matches %s exactly, using the closest word", c)
		tuples, err = enc.Encode(ctx, c, codec.EncodeOptions{AllResults: opts.all, FindClosest: true})
	}
	if err != nil {
		return err
	}

	reportLoss(p, repo, v, tuples[0])

	if opts.preview {
		p.Print("%s %s", colour.Preview(c, swatchWidth), c)
	}
	for _, t := range tuples {
		p.Return(t)
	}
	return nil
}

// readColour parses input in mode, or recognises its mode when none is given.
func readColour(p *Printer, input string, mode colour.Mode) (colour.Value, error) {
	detected, recognised := colour.Recognise(input)
	if mode == "" {
		if !recognised {
			return colour.Value{}, fmt.Errorf("%w: cannot recognise %q, pass --format", colour.ErrInvalidColor, input)
		}
		p.Info("Recognised %s colour", detected.Mode)
		return detected, nil
	}

	if recognised && detected.Mode != mode {
		p.Warn("%q looks like a %s colour, reading it as %s", input, detected.Mode, mode)
	}
	return colour.ParseValue(input, mode)
}

// reportLoss tells the user when the tuple does not decode to the input,
// which happens when channels are rounded, for grays, or with --force.
func reportLoss(p *Printer, repo *words.Repository, v colour.Value, tuple string) {
	original, err := colour.FormatValue(v)
	if err != nil {
		return
	}
	decoded, err := codec.NewDecoder(repo).Decode(tuple)
	if err != nil {
		return
	}
	got, err := decoded.Format(v.Mode)
	if err != nil || got == original {
		return
	}
	p.Info("%s decodes as %s (%s)", original, got, decoded)
}
