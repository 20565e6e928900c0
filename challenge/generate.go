package challenge

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/cryptex/cipher"
)

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. Panics on nil; use zap.NewNop to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("challenge: WithLogger(nil)")
	}

	return func(g *Generator) {
		g.logger = l
	}
}

// Generator enciphers the answers of challenge sets.
// It holds no state besides its logger and is safe for concurrent use.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator returns a Generator that logs nowhere unless WithLogger is
// given.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate validates set and returns a sorted copy in which every challenge
// carries the ciphertext of its answer. An empty EncryptionType is filled
// with the scheme label. set itself is not modified.
func (g *Generator) Generate(set *Set) (*Set, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	out := set.clone()
	out.Sort()
	for i := range out.Challenges {
		c := &out.Challenges[i]
		ct, err := cipher.Encipher(c.Scheme, c.Answer)
		if err != nil {
			return nil, stageErrorf(c.Stage, err, "encipher")
		}
		c.EncryptedMessage = ct
		if c.EncryptionType == "" {
			c.EncryptionType = c.Scheme.Label()
		}
		g.logger.Debug("stage generated",
			zap.String("set", out.ID),
			zap.String("stage", string(c.Stage)),
			zap.Stringer("kind", c.Scheme.Kind),
			zap.Int("answer_len", len([]rune(c.Answer))),
			zap.Int("ciphertext_len", len([]rune(ct))),
		)
	}
	g.logger.Info("challenge set generated",
		zap.String("set", out.ID),
		zap.Int("stages", len(out.Challenges)),
	)

	return out, nil
}

// FromTemplate clones tmpl under a new id and title, replaces each stage's
// answer from answers and regenerates the ciphertexts. Hints, tutorials,
// difficulties and schemes are kept.
//
// Errors: ErrMissingID, ErrUnknownStage (answers names a stage tmpl lacks),
// ErrMissingAnswer (a stage of tmpl has no answer), plus Generate's errors.
func (g *Generator) FromTemplate(tmpl *Set, id, title string, answers map[Stage]string) (*Set, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	var err error
	for st := range answers {
		if _, ok := tmpl.Lookup(st); !ok {
			err = multierr.Append(err, stageErrorf(st, ErrUnknownStage, "template %q", tmpl.ID))
		}
	}

	next := tmpl.clone()
	next.ID = id
	if title != "" {
		next.Title = title
	}
	for i := range next.Challenges {
		c := &next.Challenges[i]
		answer, ok := answers[c.Stage]
		if !ok || answer == "" {
			err = multierr.Append(err, stageErrorf(c.Stage, ErrMissingAnswer, "template %q", tmpl.ID))
			continue
		}
		c.Answer = answer
		c.EncryptedMessage = ""
	}
	if err != nil {
		return nil, err
	}
	g.logger.Debug("set derived from template",
		zap.String("template", tmpl.ID),
		zap.String("set", id),
	)

	return g.Generate(next)
}

// Verify checks that every stored encrypted message is what enciphering the
// stored answer produces. All mismatches are reported together.
// Errors: ErrCiphertextMismatch, or a scheme error.
func (g *Generator) Verify(set *Set) error {
	var err error
	for _, c := range set.Challenges {
		ok, verr := cipher.Verify(c.Scheme, c.Answer, c.EncryptedMessage)
		switch {
		case verr != nil:
			err = multierr.Append(err, stageErrorf(c.Stage, verr, "verify"))
		case !ok:
			err = multierr.Append(err, stageErrorf(c.Stage, ErrCiphertextMismatch, "verify"))
			g.logger.Warn("ciphertext mismatch",
				zap.String("set", set.ID),
				zap.String("stage", string(c.Stage)),
			)
		}
	}

	return err
}
