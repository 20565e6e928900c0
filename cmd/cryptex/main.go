// Command cryptex enciphers and deciphers text with classical ciphers and
// builds geography-hunt challenge sets.
//
//	cryptex encipher --scheme vigenere --keyword RAT Paris
//	cryptex decipher --scheme railfence --rails 3 HOELL
//	cryptex schemes
//	cryptex generate --format toml --output hunt.toml
//	cryptex check --config hunt.toml --stage city paris
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by every subcommand.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "cryptex",
		Short: "Classical ciphers and geography-hunt puzzles",
		Long: `cryptex applies classical ciphers (Caesar, Atbash, ROT13, Vigenère,
Gronsfeld, Rail Fence, Columnar, Permuted Matrix, ADFGVX, Morse and the ASCII
encodings) and generates treasure-hunt challenge sets from them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newTransformCmd(a, false),
		newTransformCmd(a, true),
		newSchemesCmd(),
		newGenerateCmd(a),
		newCheckCmd(a),
		newVerifyCmd(a),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
