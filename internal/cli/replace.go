package cli

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorcue/internal/codec"
	"github.com/jmylchreest/colorcue/internal/colour"
	"github.com/jmylchreest/colorcue/internal/errs"
	"github.com/jmylchreest/colorcue/internal/security"
)

// referencePattern matches "cc:word.word", with '.', ',' or '_' between
// the words.
var referencePattern = regexp.MustCompile(`cc:(\p{L}+)[.,_](\p{L}+)`)

type replaceOptions struct {
	output        string
	format        *modeValue
	ignoreInvalid bool
}

func newReplaceCmd(a *app) *cobra.Command {
	opts := &replaceOptions{format: newModeValue(colour.ModeHex)}
	cmd := &cobra.Command{
		Use:   "replace <file>",
		Short: "Replace word tuple references in a file with colours",
		Long: `Replace every "cc:word.word" reference in a file with the colour the tuple
decodes to. The words may also be joined by ',' or '_'.

Examples:
  # Print a stylesheet with references replaced by hex colours
  colorcue replace theme.css.in

  # Write rgb() colours to a file, leaving unknown tuples untouched
  colorcue replace --format rgb -i -o theme.css theme.css.in`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplace(a, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().Var(opts.format, "format", "colour format to write")
	cmd.Flags().BoolVarP(&opts.ignoreInvalid, "ignore-invalid", "i", false, "leave references that do not decode untouched")
	return cmd
}

func runReplace(a *app, opts *replaceOptions, input string) error {
	if _, err := security.CheckReadableFile(input); err != nil {
		return err
	}
	content, err := os.ReadFile(input)
	if err != nil {
		return errs.IO("read "+input, err)
	}

	repo, err := a.repository()
	if err != nil {
		return err
	}

	result, n, err := replaceReferences(string(content), codec.NewDecoder(repo), opts.format.mode, opts.ignoreInvalid)
	if err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Fprint(a.printer.Out(), result)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(result), 0o644); err != nil {
		return errs.IO("write "+opts.output, err)
	}
	a.printer.Success("Replaced %d references in %s", n, opts.output)
	return nil
}

// replaceReferences substitutes every tuple reference in content with its
// colour in mode and returns the number replaced. A reference that does not
// decode is an error unless ignoreInvalid is set.
func replaceReferences(content string, dec *codec.Decoder, mode colour.Mode, ignoreInvalid bool) (string, int, error) {
	var b strings.Builder
	replaced := 0
	last := 0
	for _, m := range referencePattern.FindAllStringSubmatchIndex(content, -1) {
		ref := content[m[0]:m[1]]
		tuple := content[m[2]:m[3]] + " " + content[m[4]:m[5]]

		s, err := decodeAs(dec, tuple, mode)
		if err != nil {
			if ignoreInvalid {
				continue
			}
			line := strings.Count(content[:m[0]], "\n") + 1
			return "", 0, fmt.Errorf("line %d: %s: %w", line, ref, err)
		}

		b.WriteString(content[last:m[0]])
		b.WriteString(s)
		last = m[1]
		replaced++
	}
	b.WriteString(content[last:])
	return b.String(), replaced, nil
}

func decodeAs(dec *codec.Decoder, tuple string, mode colour.Mode) (string, error) {
	c, err := dec.Decode(tuple)
	if err != nil {
		return "", err
	}
	return c.Format(mode)
}
