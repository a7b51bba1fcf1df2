package gen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gramforge/gramforge/bias"
	"github.com/gramforge/gramforge/gen"
	"github.com/gramforge/gramforge/grammar"
)

func TestSentence_NilGrammar(t *testing.T) {
	_, err := gen.Sentence(nil)
	assert.ErrorIs(t, err, gen.ErrNilGrammar)
}

func TestSentence_RequiresFinalized(t *testing.T) {
	g := grammar.New()
	g.Symbol("S")
	_, err := gen.Sentence(g)
	assert.ErrorIs(t, err, grammar.ErrNotFinalized)
}

func TestSentence_WellFormedWithinBudget(t *testing.T) {
	g := buildAnBn(t)
	rnd := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		text, err := gen.Sentence(g, gen.WithBudget(15), gen.WithRand(rnd))
		require.NoError(t, err)
		assertAnBnShape(t, text)
		assert.LessOrEqual(t, len(text), 15)
	}
}

func TestSentence_TightBudgetRaised(t *testing.T) {
	g := buildAnBn(t)
	// Budget 0 is below the minimum sentence; only "c" fits the raised one.
	text, err := gen.Sentence(g, gen.WithBudget(0))
	require.NoError(t, err)
	assert.Equal(t, "c", text)
}

func TestSentence_MinLengthRetries(t *testing.T) {
	g := buildAnBn(t)
	rnd := rand.New(rand.NewSource(17))
	for i := 0; i < 20; i++ {
		text, err := gen.Sentence(g,
			gen.WithBudget(9),
			gen.WithMinLength(3),
			gen.WithRand(rnd),
		)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(text), 3)
		assertAnBnShape(t, text)
	}
}

func TestSentence_MinLengthUnreachable(t *testing.T) {
	g := grammar.New()
	require.NoError(t, g.AddProduction(g.Symbol("S"), g.Literal("c")))
	require.NoError(t, g.Finalize())

	_, err := gen.Sentence(g,
		gen.WithMinLength(5),
		gen.WithMaxAttempts(3),
	)
	require.ErrorIs(t, err, gen.ErrMinLengthUnreachable)
	assert.Contains(t, err.Error(), "floor 5")
	assert.Contains(t, err.Error(), "3 attempts")
}

func TestSentence_InterpretEscapes(t *testing.T) {
	g := grammar.New()
	require.NoError(t, g.AddProduction(g.Symbol("S"), g.Literal(`a\tb\x21`)))
	require.NoError(t, g.Finalize())

	raw, err := gen.Sentence(g)
	require.NoError(t, err)
	assert.Equal(t, `a\tb\x21`, raw)

	decoded, err := gen.Sentence(g, gen.WithInterpretEscapes())
	require.NoError(t, err)
	assert.Equal(t, "a\tb!", decoded)
}

func TestSentence_CustomChooserDrivesDerivation(t *testing.T) {
	g := buildAnBn(t)
	// Always pick the first offered expansion: the recursive alternative
	// while it fits, then the forced "c".
	text, err := gen.Sentence(g, gen.WithBudget(7), gen.WithChooser(firstChooser{}))
	require.NoError(t, err)
	assert.Equal(t, "aaacbbb", text)
}

type firstChooser struct{}

func (firstChooser) Choose(candidates []grammar.Item) grammar.Item {
	if len(candidates) == 0 {
		return nil
	}
	return candidates[0]
}

type nilChooser struct{}

func (nilChooser) Choose([]grammar.Item) grammar.Item { return nil }

func TestSentence_ChooserReturningNil(t *testing.T) {
	g := buildAnBn(t)
	_, err := gen.Sentence(g, gen.WithChooser(nilChooser{}))
	assert.ErrorIs(t, err, gen.ErrNoChoice)
}

func TestSentence_BiasEpisodeRecordsAndAdapts(t *testing.T) {
	g := grammar.New()
	x := g.Symbol("X")
	require.NoError(t, g.AddProduction(x, g.Literal("x")))
	require.NoError(t, g.AddProduction(x, g.Literal("y")))
	require.NoError(t, g.Finalize())

	root := bias.New(bias.WithRand(rand.New(rand.NewSource(23))))
	sawX, sawY := false, false
	for i := 0; i < 100; i++ {
		episode := root.Fork()
		text, err := gen.Sentence(g, gen.WithBudget(1), gen.WithBias(episode))
		require.NoError(t, err)
		require.NotEmpty(t, episode.History())
		if text == "x" {
			sawX = true
			episode.Reward()
		} else {
			sawY = true
			episode.Penalize()
		}
	}

	require.True(t, sawX || sawY)
	assert.Greater(t,
		root.Weight(g.Literal("x"), nil),
		root.Weight(g.Literal("y"), nil),
		"rewarded outcomes must outweigh penalized ones")
}

func TestSentence_OptionValidation(t *testing.T) {
	opts := gen.DefaultOptions()
	assert.Panics(t, func() { gen.WithBudget(-1)(&opts) })
	assert.Panics(t, func() { gen.WithMaxAttempts(0)(&opts) })
	assert.NotPanics(t, func() {
		gen.WithBudget(0)(&opts)
		gen.WithMaxAttempts(1)(&opts)
	})
}
