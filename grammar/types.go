package grammar

import "errors"

// Huge is the sentinel token count, larger than any sentence we will
// generate. Symbol minimum lengths are initialized to Huge before the
// downward fixed point; a symbol still at Huge afterwards has no finite
// derivation. Potential-token estimates above MaxLowerBound are clamped
// to Huge and treated as "unbounded".
const Huge = 1 << 30

// DefaultMaxLowerBound is the default clamp threshold for the
// potential-tokens analysis. Estimates above it are treated as unbounded.
// The threshold is a tunable heuristic: lowering it makes deeply nested
// repetitions look unbounded earlier, which can only widen the set of
// repetition recursions offered near the budget boundary (the analysis
// never overstates reachable length either way).
const DefaultMaxLowerBound = 60

// Sentinel errors for grammar construction and finalization.
var (
	// ErrIncompleteGrammar indicates a symbol referenced on some right-hand
	// side had no production when Finalize ran. The wrapped message lists
	// the offending symbol names.
	ErrIncompleteGrammar = errors.New("grammar: symbols have no productions")

	// ErrNoFiniteDerivation indicates the minimum-length fixed point left
	// one or more symbols at the Huge sentinel: infinite mutual recursion
	// with no base case. The wrapped message lists the symbol names.
	ErrNoFiniteDerivation = errors.New("grammar: symbols have no finite derivation")

	// ErrNoStart indicates Finalize was called before any production was added.
	ErrNoStart = errors.New("grammar: no start symbol (no productions added)")

	// ErrFinalized indicates a construction operation (or a second Finalize)
	// on an already finalized grammar.
	ErrFinalized = errors.New("grammar: already finalized")

	// ErrNotFinalized indicates an operation that requires Finalize to have
	// run (Dump, Reanalyze, reachability queries, generation).
	ErrNotFinalized = errors.New("grammar: not finalized")

	// ErrMergeConflict indicates a merge declaration would join two symbol
	// names that already belong to distinct equivalence classes.
	ErrMergeConflict = errors.New("grammar: merge joins distinct leaders")

	// ErrLateMerge indicates a merge declaration named a symbol that was
	// already interned under its own name. Merges must be declared before
	// any lookup or creation of the merged names.
	ErrLateMerge = errors.New("grammar: merge declared after symbol was interned")

	// ErrBadMaxLowerBound indicates WithMaxLowerBound was given a
	// non-positive threshold.
	ErrBadMaxLowerBound = errors.New("grammar: MaxLowerBound must be positive")
)

// Option configures a Grammar at construction time.
type Option func(*Grammar)

// WithByteCost switches the unit of "token" from item to byte: a literal's
// cost becomes the byte length of its text rather than 1. Budgets and all
// size analyses are then measured in bytes of generated output.
func WithByteCost() Option {
	return func(g *Grammar) { g.byteCost = true }
}

// WithMaxLowerBound sets the clamp threshold for the potential-tokens
// analysis. Estimates above n are treated as unbounded (Huge), which
// guarantees the upward fixed point terminates. Must be positive;
// non-positive values panic with ErrBadMaxLowerBound.
func WithMaxLowerBound(n int) Option {
	return func(g *Grammar) {
		if n <= 0 {
			panic(ErrBadMaxLowerBound.Error())
		}
		g.maxLowerBound = n
	}
}
