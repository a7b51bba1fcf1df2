package gen

import (
	"errors"
	"math/rand"

	"github.com/gramforge/gramforge/bias"
	"github.com/gramforge/gramforge/grammar"
)

// Sentinel errors for the generation engine and driver.
var (
	// ErrNilGrammar indicates a nil *grammar.Grammar was supplied.
	ErrNilGrammar = errors.New("gen: grammar is nil")

	// ErrInvalidExpansion indicates Expand was given a choice that is not
	// among the currently offered expansions.
	ErrInvalidExpansion = errors.New("gen: expansion was not among the offered choices")

	// ErrNoChoice indicates the Chooser returned nothing for a non-empty
	// candidate list (or the candidate list was empty, which cannot arise
	// from a well-formed finalized grammar).
	ErrNoChoice = errors.New("gen: chooser returned no choice")

	// ErrMinLengthUnreachable indicates the minimum-length retry policy
	// exhausted its attempts without producing a long enough string.
	ErrMinLengthUnreachable = errors.New("gen: minimum length not reached")

	// ErrBadBudget indicates a negative budget.
	ErrBadBudget = errors.New("gen: budget must be non-negative")

	// ErrBadMaxAttempts indicates a non-positive retry cap.
	ErrBadMaxAttempts = errors.New("gen: MaxAttempts must be positive")
)

// Chooser picks one of the offered expansions. Implementations must
// return one of the candidates (or nil to signal "no choice" for an empty
// list); returning anything else makes Expand fail with
// ErrInvalidExpansion.
type Chooser interface {
	Choose(candidates []grammar.Item) grammar.Item
}

// uniformChooser picks uniformly at random; the zero value uses the
// shared global source.
type uniformChooser struct {
	rnd *rand.Rand
}

func (u uniformChooser) Choose(candidates []grammar.Item) grammar.Item {
	if len(candidates) == 0 {
		return nil
	}
	if u.rnd != nil {
		return candidates[u.rnd.Intn(len(candidates))]
	}
	return candidates[rand.Intn(len(candidates))]
}

// biasChooser adapts a bias.Bias episode (which works on opaque values)
// to the Chooser interface.
type biasChooser struct {
	b *bias.Bias
}

func (bc biasChooser) Choose(candidates []grammar.Item) grammar.Item {
	boxed := make([]any, len(candidates))
	for i, c := range candidates {
		boxed[i] = c
	}
	picked := bc.b.Choose(boxed)
	if picked == nil {
		return nil
	}
	return picked.(grammar.Item)
}

// Options configures the Sentence driver. See the With* functions for
// the meaning and constraints of each field.
type Options struct {
	// Budget caps the output's token count (bytes under byte-cost
	// sizing). A budget below the start symbol's minimum length is
	// silently raised to that minimum.
	Budget int

	// MinLength is the minimum byte length of the output; shorter
	// results are discarded and generation is re-driven.
	MinLength int

	// MaxAttempts caps the MinLength retry loop.
	MaxAttempts int

	// InterpretEscapes decodes backslash escape sequences in the output.
	InterpretEscapes bool

	// Chooser resolves choice points; nil means uniform random.
	Chooser Chooser

	// Rand is the random source for the default uniform chooser.
	Rand *rand.Rand
}

// Option is a functional option for the Sentence driver.
type Option func(*Options)

// DefaultOptions returns the driver defaults: budget 20, no minimum
// length, 100 attempts, raw output, uniform random choice from the shared
// global source.
func DefaultOptions() Options {
	return Options{
		Budget:      20,
		MaxAttempts: 100,
	}
}

// WithBudget sets the token budget. Panics with ErrBadBudget if n is
// negative; a budget below the start symbol's minimum is not an error and
// is raised to that minimum.
func WithBudget(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadBudget.Error())
		}
		o.Budget = n
	}
}

// WithMinLength requires the output to be at least n bytes long,
// re-driving generation until it is (bounded by MaxAttempts).
func WithMinLength(n int) Option {
	return func(o *Options) { o.MinLength = n }
}

// WithMaxAttempts caps the MinLength retry loop. Panics with
// ErrBadMaxAttempts unless n is positive.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxAttempts.Error())
		}
		o.MaxAttempts = n
	}
}

// WithInterpretEscapes decodes backslash escape sequences (\n, \t, \xHH,
// \uHHHH, ...) in the generated text before returning it.
func WithInterpretEscapes() Option {
	return func(o *Options) { o.InterpretEscapes = true }
}

// WithChooser supplies a custom choice strategy.
func WithChooser(c Chooser) Option {
	return func(o *Options) { o.Chooser = c }
}

// WithBias steers generation with an adaptive bias episode. The episode
// records every choice it makes; score it afterwards with b.Reward or
// b.Penalize.
func WithBias(b *bias.Bias) Option {
	return func(o *Options) { o.Chooser = biasChooser{b: b} }
}

// WithRand sets the random source for the default uniform chooser.
func WithRand(rnd *rand.Rand) Option {
	return func(o *Options) { o.Rand = rnd }
}
