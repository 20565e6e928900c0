package challenge_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/cryptex/challenge"
	"github.com/katalvlaran/cryptex/cipher"
)

// TestStages covers play order, Next and Title.
func TestStages(t *testing.T) {
	st := challenge.Stages()
	require.Len(t, st, 8)
	assert.Equal(t, challenge.Continent, st[0])
	assert.Equal(t, challenge.Coordinates, st[7])

	next, ok := challenge.City.Next()
	assert.True(t, ok)
	assert.Equal(t, challenge.District, next)

	_, ok = challenge.Coordinates.Next()
	assert.False(t, ok)

	_, ok = challenge.Stage("moon").Next()
	assert.False(t, ok)

	assert.Equal(t, -1, challenge.Stage("moon").Index())
	assert.Equal(t, "Street", challenge.Street.Title())

	// Stages returns a copy.
	st[0] = "moon"
	assert.Equal(t, challenge.Continent, challenge.Stages()[0])
}

// TestDefaultSet_Generate pins every ciphertext of the reference hunt.
func TestDefaultSet_Generate(t *testing.T) {
	tmpl := challenge.DefaultSet()
	set, err := challenge.NewGenerator().Generate(tmpl)
	require.NoError(t, err)

	want := map[challenge.Stage]string{
		challenge.Continent:   "69 117 114 111 112 101",
		challenge.Country:     "Senapr",
		challenge.Region:      "Mligs",
		challenge.City:        "Gakzs",
		challenge.District:    "LaseMri a",
		challenge.Area:        "aiMars",
		challenge.Street:      "oeiRievuXRld",
		challenge.Coordinates: "DFGDDFDFDVGFDDGDADVDFADFDV",
	}
	require.Len(t, set.Challenges, len(want))
	for i, c := range set.Challenges {
		assert.Equal(t, challenge.Stages()[i], c.Stage, "sorted by play order")
		assert.Equal(t, want[c.Stage], c.EncryptedMessage, "stage %s", c.Stage)
	}

	city, ok := set.Lookup(challenge.City)
	require.True(t, ok)
	assert.Equal(t, "Vigenère Cipher (key: RAT)", city.EncryptionType)

	// The template is left untouched.
	for _, c := range tmpl.Challenges {
		assert.Empty(t, c.EncryptedMessage)
		assert.Empty(t, c.EncryptionType)
	}

	require.NoError(t, challenge.NewGenerator().Verify(set))
}

// TestGenerate_Sorts reorders challenges given out of play order.
func TestGenerate_Sorts(t *testing.T) {
	set := &challenge.Set{ID: "x", Challenges: []challenge.Challenge{
		{Stage: challenge.City, Answer: "Paris", Difficulty: 1, Scheme: cipher.Scheme{Kind: cipher.ROT13}},
		{Stage: challenge.Continent, Answer: "Europe", Difficulty: 1, Scheme: cipher.Scheme{Kind: cipher.ROT13}},
	}}
	out, err := challenge.NewGenerator().Generate(set)
	require.NoError(t, err)
	assert.Equal(t, challenge.Continent, out.Challenges[0].Stage)
	assert.Equal(t, challenge.City, set.Challenges[0].Stage)
}

// TestSet_Validate reports every problem at once.
func TestSet_Validate(t *testing.T) {
	set := &challenge.Set{Challenges: []challenge.Challenge{
		{Stage: challenge.City, Answer: "Paris", Difficulty: 3, Scheme: cipher.Scheme{Kind: cipher.Vigenere}},
		{Stage: challenge.City, Answer: "Lyon", Difficulty: 9, Scheme: cipher.Scheme{Kind: cipher.Atbash}},
		{Stage: "moon", Difficulty: 1, Scheme: cipher.Scheme{Kind: cipher.Atbash}},
	}}
	err := set.Validate()
	require.Error(t, err)
	for _, want := range []error{
		challenge.ErrMissingID,
		challenge.ErrDuplicateStage,
		challenge.ErrBadDifficulty,
		challenge.ErrUnknownStage,
		challenge.ErrMissingAnswer,
		cipher.ErrEmptyKeyword,
	} {
		assert.ErrorIs(t, err, want)
	}

	_, err = challenge.NewGenerator().Generate(set)
	assert.ErrorIs(t, err, challenge.ErrDuplicateStage)

	require.NoError(t, challenge.DefaultSet().Validate())
}

// TestFromTemplate derives a Rome hunt from the Paris one.
func TestFromTemplate(t *testing.T) {
	answers := map[challenge.Stage]string{
		challenge.Continent:   "Europe",
		challenge.Country:     "Italy",
		challenge.Region:      "Centre",
		challenge.City:        "Rome",
		challenge.District:    "Trastevere",
		challenge.Area:        "Ripa",
		challenge.Street:      "Via della Lungaretta",
		challenge.Coordinates: "DHBCXBEFCGX",
	}
	g := challenge.NewGenerator()
	tmpl := challenge.DefaultSet()

	set, err := g.FromTemplate(tmpl, "2", "Roman Holiday", answers)
	require.NoError(t, err)
	assert.Equal(t, "2", set.ID)
	assert.Equal(t, "Roman Holiday", set.Title)

	country, _ := set.Lookup(challenge.Country)
	assert.Equal(t, "Italy", country.Answer)
	assert.Equal(t, "Vgnyl", country.EncryptedMessage)

	area, _ := set.Lookup(challenge.Area)
	assert.Equal(t, "iRap", area.EncryptedMessage)

	// Hints and schemes come from the template.
	tc, _ := tmpl.Lookup(challenge.Street)
	sc, _ := set.Lookup(challenge.Street)
	assert.Equal(t, tc.Hint, sc.Hint)
	assert.Empty(t, cmp.Diff(tc.Scheme, sc.Scheme))

	require.NoError(t, g.Verify(set))
	assert.Equal(t, "Europe", mustLookup(t, tmpl, challenge.Continent).Answer)
	assert.Equal(t, "Paris", mustLookup(t, tmpl, challenge.City).Answer)
}

// TestFromTemplate_Errors covers missing and foreign stages.
func TestFromTemplate_Errors(t *testing.T) {
	g := challenge.NewGenerator()
	tmpl := challenge.DefaultSet()

	_, err := g.FromTemplate(tmpl, "", "", nil)
	assert.ErrorIs(t, err, challenge.ErrMissingID)

	_, err = g.FromTemplate(tmpl, "3", "", map[challenge.Stage]string{challenge.Country: "Spain"})
	assert.ErrorIs(t, err, challenge.ErrMissingAnswer)

	answers := map[challenge.Stage]string{"moon": "Tycho"}
	for _, st := range challenge.Stages() {
		answers[st] = "ABC"
	}
	_, err = g.FromTemplate(tmpl, "3", "", answers)
	assert.ErrorIs(t, err, challenge.ErrUnknownStage)

	// A coordinates answer the key square cannot encode fails generation.
	delete(answers, "moon")
	answers[challenge.Coordinates] = "48.85°N"
	_, err = g.FromTemplate(tmpl, "3", "", answers)
	assert.ErrorIs(t, err, cipher.ErrInvalidCharacter)
}

// TestVerify_Mismatch tampers with a stored message.
func TestVerify_Mismatch(t *testing.T) {
	g := challenge.NewGenerator()
	set, err := g.Generate(challenge.DefaultSet())
	require.NoError(t, err)

	set.Challenges[1].EncryptedMessage = "Frnapr"
	set.Challenges[3].EncryptedMessage = "Gakzz"
	err = g.Verify(set)
	require.ErrorIs(t, err, challenge.ErrCiphertextMismatch)
	assert.Contains(t, err.Error(), `"country"`)
	assert.Contains(t, err.Error(), `"city"`)
}

// TestNormalizeAndCheckGuess covers case, accents and spacing.
func TestNormalizeAndCheckGuess(t *testing.T) {
	cases := map[string]string{
		"  Le   Marais ": "le marais",
		"Vigenère":       "vigenere",
		"ÉUROPE":         "europe",
		"":               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, challenge.NormalizeAnswer(in), "in=%q", in)
	}

	c := challenge.Challenge{Answer: "Rue de Rivoli"}
	assert.True(t, challenge.CheckGuess(c, "rue  DE rivoli"))
	assert.False(t, challenge.CheckGuess(c, "Rue de Rivol"))
}

// TestGenerator_Logs records one debug entry per stage and a summary.
func TestGenerator_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	g := challenge.NewGenerator(challenge.WithLogger(zap.New(core)))

	_, err := g.Generate(challenge.DefaultSet())
	require.NoError(t, err)

	assert.Equal(t, 8, logs.FilterMessage("stage generated").Len())
	summary := logs.FilterMessage("challenge set generated").All()
	require.Len(t, summary, 1)
	assert.Equal(t, zapcore.InfoLevel, summary[0].Level)
	assert.Equal(t, int64(8), summary[0].ContextMap()["stages"])

	assert.Panics(t, func() { challenge.WithLogger(nil) })
}

func mustLookup(t *testing.T, s *challenge.Set, st challenge.Stage) challenge.Challenge {
	t.Helper()
	c, ok := s.Lookup(st)
	require.True(t, ok, "stage %s", st)

	return c
}
