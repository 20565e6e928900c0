package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/cryptex/cipher"
)

// schemeFlags mirrors cipher.Scheme on the command line.
type schemeFlags struct {
	kind    string
	shift   int
	keyword string
	key     []int
	rails   int
	rows    []int
	cols    []int
	square  string
	pad     string
}

func (f *schemeFlags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.kind, "scheme", "s", "", "Cipher kind (see 'cryptex schemes')")
	fs.IntVar(&f.shift, "shift", 0, "Caesar shift")
	fs.StringVarP(&f.keyword, "keyword", "k", "", "Keyword (vigenere, columnar, adfgvx, binary_columnar)")
	fs.IntSliceVar(&f.key, "key", nil, "Gronsfeld shifts, e.g. 3,1,4")
	fs.IntSliceVar(&f.rows, "rows", nil, "Permuted matrix row permutation, 1-based, e.g. 2,1")
	fs.IntSliceVar(&f.cols, "cols", nil, "Permuted matrix column permutation, 1-based, e.g. 3,1,5,2,6,4")
	fs.IntVar(&f.rails, "rails", 0, "Rail Fence rail count")
	fs.StringVar(&f.square, "square", "", "ADFGVX key square (36 distinct A-Z/0-9)")
	fs.StringVar(&f.pad, "pad", "", "Pad character (permuted_matrix; full-grid columnar)")
}

func (f *schemeFlags) scheme() (cipher.Scheme, error) {
	kind, err := cipher.ParseKind(f.kind)
	if err != nil {
		return cipher.Scheme{}, err
	}

	return cipher.Scheme{
		Kind:              kind,
		Shift:             f.shift,
		Keyword:           f.keyword,
		Key:               f.key,
		Rails:             f.rails,
		RowPermutation:    f.rows,
		ColumnPermutation: f.cols,
		KeySquare:         f.square,
		Pad:               f.pad,
	}, nil
}

// newTransformCmd builds "encipher" or "decipher".
func newTransformCmd(a *app, decipher bool) *cobra.Command {
	var flags schemeFlags

	verb := "encipher"
	if decipher {
		verb = "decipher"
	}
	cmd := &cobra.Command{
		Use:   verb + " [text...]",
		Short: strings.ToUpper(verb[:1]) + verb[1:] + " text with a classical cipher",
		Long: fmt.Sprintf(`%s the arguments (joined by spaces) or, without arguments, standard input.

Examples:
  cryptex %[2]s --scheme caesar --shift 13 France
  cryptex %[2]s --scheme permuted_matrix --rows 2,1 --cols 3,1,5,2,6,4 "HELLO WORLD"
  cryptex %[2]s --scheme adfgvx --square PHQGIUMEAYLNOFDXJKRCVSTZWB0123456789 --keyword FINAL DHHEFFXBCEBBX`,
			strings.ToUpper(verb[:1])+verb[1:], verb),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.scheme()
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var out string
			if decipher {
				out, err = cipher.Decipher(s, text)
			} else {
				out, err = cipher.Encipher(s, text)
			}
			if err != nil {
				return err
			}
			a.logger.Debug(verb,
				zap.Stringer("kind", s.Kind),
				zap.Int("input_len", len([]rune(text))),
				zap.Int("output_len", len([]rune(out))),
			)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	flags.bind(cmd.Flags())
	_ = cmd.MarkFlagRequired("scheme")

	return cmd
}

func newSchemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List the available cipher kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTITLE")
			for _, k := range cipher.Kinds() {
				fmt.Fprintf(w, "%s\t%s\n", k, k.Title())
			}
			return w.Flush()
		},
	}
}

// readInput joins args, or reads stdin when there are none. One trailing
// newline is dropped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")

	return strings.TrimSuffix(text, "\r"), nil
}
