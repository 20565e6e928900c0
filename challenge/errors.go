package challenge

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStage indicates a stage name outside Stages().
	ErrUnknownStage = errors.New("challenge: unknown stage")

	// ErrDuplicateStage indicates two challenges of one set share a stage.
	ErrDuplicateStage = errors.New("challenge: duplicate stage")

	// ErrBadDifficulty indicates a difficulty outside 1..5.
	ErrBadDifficulty = errors.New("challenge: difficulty out of range")

	// ErrMissingAnswer indicates an empty answer, or a template stage with no
	// replacement answer.
	ErrMissingAnswer = errors.New("challenge: missing answer")

	// ErrMissingID indicates a set without an id.
	ErrMissingID = errors.New("challenge: missing set id")

	// ErrUnsupportedFormat indicates a file extension or format name other
	// than yaml, yml, toml or json.
	ErrUnsupportedFormat = errors.New("challenge: unsupported format")

	// ErrCiphertextMismatch indicates a stored encrypted message that the
	// stored answer does not reproduce.
	ErrCiphertextMismatch = errors.New("challenge: ciphertext mismatch")
)

// stageErrorf tags err with the stage it concerns.
func stageErrorf(stage Stage, err error, format string, args ...interface{}) error {
	return fmt.Errorf("stage %q: %s: %w", stage, fmt.Sprintf(format, args...), err)
}
