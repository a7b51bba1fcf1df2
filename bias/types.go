package bias

import (
	"errors"
	"math/rand"
)

// Tuning constants. All three rate constants live in the open interval
// (0, 1); the option constructors enforce that.
const (
	// DefaultWeight is the weight every item starts at on first sight.
	DefaultWeight = 0.5

	// DefaultRewardDelta is the fraction of the distance toward 1.0 a
	// weight moves on each reward. Small values learn slowly, large
	// values oscillate.
	DefaultRewardDelta = 0.05

	// DefaultPenaltyDelta is the fraction of the distance toward 0.0 a
	// weight moves on each penalty. If rewards are rare, a penalty delta
	// smaller than the reward delta may be appropriate.
	DefaultPenaltyDelta = 0.05

	// DefaultBigramPriority is the share of the effective weight taken
	// from the bigram weight when one exists. Bigrams are observed far
	// less often than individual items, so they dominate but never fully
	// override the marginal weight.
	DefaultBigramPriority = 0.8
)

// Sentinel errors for option validation.
var (
	// ErrBadWeight indicates a default weight outside the open interval (0, 1).
	ErrBadWeight = errors.New("bias: default weight must be in (0, 1)")

	// ErrBadDelta indicates a reward or penalty delta outside (0, 1).
	ErrBadDelta = errors.New("bias: learning delta must be in (0, 1)")

	// ErrBadPriority indicates a bigram priority outside (0, 1).
	ErrBadPriority = errors.New("bias: bigram priority must be in (0, 1)")
)

// Option configures a root Bias at construction time.
type Option func(*table)

// WithDefaultWeight sets the first-sight weight. Panics with ErrBadWeight
// unless 0 < w < 1.
func WithDefaultWeight(w float64) Option {
	return func(t *table) {
		if w <= 0 || w >= 1 {
			panic(ErrBadWeight.Error())
		}
		t.defaultWeight = w
	}
}

// WithRewardDelta sets the reward learning rate. Panics with ErrBadDelta
// unless 0 < d < 1.
func WithRewardDelta(d float64) Option {
	return func(t *table) {
		if d <= 0 || d >= 1 {
			panic(ErrBadDelta.Error())
		}
		t.rewardDelta = d
	}
}

// WithPenaltyDelta sets the penalty learning rate. Panics with ErrBadDelta
// unless 0 < d < 1.
func WithPenaltyDelta(d float64) Option {
	return func(t *table) {
		if d <= 0 || d >= 1 {
			panic(ErrBadDelta.Error())
		}
		t.penaltyDelta = d
	}
}

// WithBigramPriority sets the convex-combination coefficient applied to
// bigram weights. Panics with ErrBadPriority unless 0 < p < 1.
func WithBigramPriority(p float64) Option {
	return func(t *table) {
		if p <= 0 || p >= 1 {
			panic(ErrBadPriority.Error())
		}
		t.bigramPriority = p
	}
}

// WithRand sets the random source used by Choose. The default is the
// shared global source; inject a seeded *rand.Rand for reproducible draws.
func WithRand(rnd *rand.Rand) Option {
	return func(t *table) { t.rnd = rnd }
}
