package challenge

import (
	"sort"

	"go.uber.org/multierr"

	"github.com/katalvlaran/cryptex/cipher"
)

const (
	// MinDifficulty and MaxDifficulty bound Challenge.Difficulty.
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Challenge is one enciphered clue of a hunt.
type Challenge struct {
	Stage            Stage         `yaml:"stage" toml:"stage" json:"stage"`
	Answer           string        `yaml:"answer" toml:"answer" json:"answer"`
	EncryptionType   string        `yaml:"encryption_type,omitempty" toml:"encryption_type,omitempty" json:"encryption_type,omitempty"`
	Hint             string        `yaml:"hint,omitempty" toml:"hint,omitempty" json:"hint,omitempty"`
	Tutorial         string        `yaml:"tutorial,omitempty" toml:"tutorial,omitempty" json:"tutorial,omitempty"`
	Difficulty       int           `yaml:"difficulty" toml:"difficulty" json:"difficulty"`
	Scheme           cipher.Scheme `yaml:"scheme" toml:"scheme" json:"scheme"`
	EncryptedMessage string        `yaml:"encrypted_message,omitempty" toml:"encrypted_message,omitempty" json:"encrypted_message,omitempty"`
}

// Validate checks the stage, answer, difficulty and scheme of c.
// All problems are reported together; errors.Is matches each of them.
func (c Challenge) Validate() error {
	var err error
	if !c.Stage.Valid() {
		err = multierr.Append(err, stageErrorf(c.Stage, ErrUnknownStage, "validate"))
	}
	if c.Answer == "" {
		err = multierr.Append(err, stageErrorf(c.Stage, ErrMissingAnswer, "validate"))
	}
	if c.Difficulty < MinDifficulty || c.Difficulty > MaxDifficulty {
		err = multierr.Append(err, stageErrorf(c.Stage, ErrBadDifficulty, "difficulty %d", c.Difficulty))
	}
	if serr := c.Scheme.Validate(); serr != nil {
		err = multierr.Append(err, stageErrorf(c.Stage, serr, "scheme"))
	}

	return err
}

// Set is a complete hunt: at most one challenge per stage.
type Set struct {
	ID          string      `yaml:"id" toml:"id" json:"id"`
	Title       string      `yaml:"title" toml:"title" json:"title"`
	Description string      `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
	Challenges  []Challenge `yaml:"challenges" toml:"challenges" json:"challenges"`
}

// Validate checks the id, every challenge and stage uniqueness.
func (s *Set) Validate() error {
	var err error
	if s.ID == "" {
		err = multierr.Append(err, ErrMissingID)
	}
	seen := make(map[Stage]bool, len(s.Challenges))
	for _, c := range s.Challenges {
		if seen[c.Stage] {
			err = multierr.Append(err, stageErrorf(c.Stage, ErrDuplicateStage, "set %q", s.ID))
		}
		seen[c.Stage] = true
		err = multierr.Append(err, c.Validate())
	}

	return err
}

// Lookup returns the challenge of stage.
func (s *Set) Lookup(stage Stage) (Challenge, bool) {
	for _, c := range s.Challenges {
		if c.Stage == stage {
			return c, true
		}
	}

	return Challenge{}, false
}

// Sort orders the challenges by play order; unknown stages go last.
func (s *Set) Sort() {
	sort.SliceStable(s.Challenges, func(i, j int) bool {
		return rank(s.Challenges[i].Stage) < rank(s.Challenges[j].Stage)
	})
}

// clone deep-copies s so generation never mutates the caller's set.
func (s *Set) clone() *Set {
	out := *s
	out.Challenges = make([]Challenge, len(s.Challenges))
	copy(out.Challenges, s.Challenges)
	for i := range out.Challenges {
		sc := &out.Challenges[i].Scheme
		sc.Key = cloneInts(sc.Key)
		sc.RowPermutation = cloneInts(sc.RowPermutation)
		sc.ColumnPermutation = cloneInts(sc.ColumnPermutation)
	}

	return &out
}

func rank(st Stage) int {
	if i := st.Index(); i >= 0 {
		return i
	}

	return len(stageOrder)
}

func cloneInts(xs []int) []int {
	if xs == nil {
		return nil
	}
	out := make([]int, len(xs))
	copy(out, xs)

	return out
}
