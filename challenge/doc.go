// Package challenge models a geography treasure hunt: an ordered list of
// stages (continent down to coordinates), each with an answer hidden behind
// one cipher.Scheme.
//
// 🚀 Lifecycle:
//
//  1. Describe a Set by hand, load it (Load: .yaml/.yml, .toml, .json), or
//     start from DefaultSet.
//  2. Generator.Generate validates the set and fills every EncryptedMessage
//     by enciphering the answer.
//  3. Generator.FromTemplate derives a new hunt from an existing one by
//     swapping the answers and regenerating.
//  4. CheckGuess compares a player's guess with the stored answer;
//     Generator.Verify checks that stored messages still match their answers.
//
// ✨ Validation:
//   - stage must be one of Stages(), at most once per set (ErrUnknownStage,
//     ErrDuplicateStage);
//   - difficulty in 1..5 (ErrBadDifficulty);
//   - non-empty answer and set id (ErrMissingAnswer, ErrMissingID);
//   - scheme must build (cipher errors, matched with errors.Is).
//
// Problems are collected, not short-circuited: one Validate call reports
// them all.
//
// ⚙️ Usage:
//
//	g := challenge.NewGenerator(challenge.WithLogger(logger))
//	set, err := g.Generate(challenge.DefaultSet())
//	if err != nil {
//	  return err
//	}
//	_ = challenge.Save("hunt.toml", set)
package challenge
