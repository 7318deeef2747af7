package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorcue/internal/codec"
	"github.com/jmylchreest/colorcue/internal/colour"
)

type decodeOptions struct {
	format  *modeValue
	preview bool
}

func newDecodeCmd(a *app) *cobra.Command {
	opts := &decodeOptions{format: newModeValue(colour.ModeHex)}
	cmd := &cobra.Command{
		Use:   "decode <word> <word>",
		Short: "Decode a word tuple to a colour",
		Long: fmt.Sprintf(`Decode a word tuple to a colour.

The two words may be given as separate arguments or as one argument joined
by a space, dot, comma or underscore. Decoding needs no database.

Formats: %s

Examples:
  colorcue decode wolf azure
  colorcue decode --format rgb wolf.azure`, colour.ModeNames()),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(a, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().Var(opts.format, "format", "output colour format")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show a colour preview")
	return cmd
}

func runDecode(a *app, opts *decodeOptions, input string) error {
	repo, err := a.repository()
	if err != nil {
		return err
	}

	c, err := codec.NewDecoder(repo).Decode(input)
	if err != nil {
		return err
	}
	s, err := c.Format(opts.format.mode)
	if err != nil {
		return err
	}

	if opts.preview && a.printer.Colour() {
		s = colour.Preview(c, swatchWidth) + " " + s
	}
	a.printer.Return(s)
	return nil
}
