package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cryptex/challenge"
)

// errWrongGuess makes "check" exit non-zero on a wrong answer.
var errWrongGuess = errors.New("wrong guess")

// loadSet reads path, or returns the built-in hunt when path is empty.
func loadSet(path string) (*challenge.Set, error) {
	if path == "" {
		return challenge.DefaultSet(), nil
	}

	return challenge.Load(path)
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		config  string
		format  string
		output  string
		id      string
		title   string
		answers map[string]string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Encipher every answer of a challenge set",
		Long: `Generate fills the encrypted message of every stage.

Without --config the built-in Paris hunt is used. With --answer the set is
treated as a template: every stage needs a new answer and --id is required.

Examples:
  cryptex generate --format toml
  cryptex generate --config hunt.yaml --output out/hunt.json
  cryptex generate --id 2 --title Rome --answer continent=Europe --answer country=Italy ...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadSet(config)
			if err != nil {
				return err
			}
			g := challenge.NewGenerator(challenge.WithLogger(a.logger))

			if len(answers) > 0 {
				byStage := make(map[challenge.Stage]string, len(answers))
				for st, ans := range answers {
					byStage[challenge.Stage(strings.ToLower(st))] = ans
				}
				set, err = g.FromTemplate(set, id, title, byStage)
			} else {
				set, err = g.Generate(set)
			}
			if err != nil {
				return err
			}

			if output != "" {
				if err = challenge.Save(output, set); err != nil {
					return err
				}
				a.logger.Info("challenge set written", zap.String("path", output))
				return nil
			}
			f, err := challenge.ParseFormat(format)
			if err != nil {
				return err
			}
			return challenge.Encode(cmd.OutOrStdout(), f, set)
		},
	}
	cmd.Flags().StringVarP(&config, "config", "c", "", "Challenge set file (.yaml, .yml, .toml, .json)")
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format for stdout (yaml, toml, json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout; extension picks the format")
	cmd.Flags().StringVar(&id, "id", "", "Id of the derived set (with --answer)")
	cmd.Flags().StringVar(&title, "title", "", "Title of the derived set (with --answer)")
	cmd.Flags().StringToStringVar(&answers, "answer", nil, "Replacement answer, stage=value (repeatable)")

	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	var (
		config string
		stage  string
	)

	cmd := &cobra.Command{
		Use:   "check guess...",
		Short: "Check a guess against the answer of one stage",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadSet(config)
			if err != nil {
				return err
			}
			st := challenge.Stage(strings.ToLower(stage))
			c, ok := set.Lookup(st)
			if !ok {
				return fmt.Errorf("set %q has no stage %q: %w", set.ID, stage, challenge.ErrUnknownStage)
			}

			guess := strings.Join(args, " ")
			correct := challenge.CheckGuess(c, guess)
			a.logger.Debug("guess checked",
				zap.String("set", set.ID),
				zap.String("stage", string(st)),
				zap.Bool("correct", correct),
			)
			out := cmd.OutOrStdout()
			if !correct {
				fmt.Fprintf(out, "✗ %s is not the %s\n", guess, st)
				return errWrongGuess
			}
			if next, more := st.Next(); more {
				fmt.Fprintf(out, "✓ correct, next stage: %s\n", next)
			} else {
				fmt.Fprintln(out, "✓ correct, hunt complete")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&config, "config", "c", "", "Challenge set file (default: built-in hunt)")
	cmd.Flags().StringVar(&stage, "stage", "", "Stage to check (continent, country, ..., coordinates)")
	_ = cmd.MarkFlagRequired("stage")

	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	var config string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every stored encrypted message matches its answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := challenge.Load(config)
			if err != nil {
				return err
			}
			g := challenge.NewGenerator(challenge.WithLogger(a.logger))
			if err = g.Verify(set); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d stages verified\n", len(set.Challenges))
			return nil
		},
	}
	cmd.Flags().StringVarP(&config, "config", "c", "", "Challenge set file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
