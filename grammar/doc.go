// Package grammar defines the intermediate representation for context-free
// grammars used by gramforge, together with the two fixed-point size
// analyses that budget-aware generation depends on.
//
// What:
//
//   - Item: the right-hand-side tree. Concrete variants:
//   - *Literal — a terminal string (cost 1, or byte length under WithByteCost)
//   - *Symbol  — an interned reference to a non-terminal
//   - *Seq     — concatenation; the empty sequence generates nothing
//   - *Kleene  — zero-or-more repetitions of a child item
//   - *Choice  — ordered disjunction of alternatives
//   - *CharRange — a Choice over single-character literals with a
//     compact [a-z] display form
//   - Grammar: owns all interned symbols and literals, the start symbol,
//     symbol-merge equivalences, and the per-symbol productions. Built
//     incrementally, then sealed exactly once with Finalize.
//   - MinTokens(item): exact minimum number of tokens any derivation can
//     produce. Computed for symbols by a downward fixed point from the Huge
//     sentinel; a symbol stuck at Huge has no finite derivation and makes
//     Finalize fail with ErrNoFiniteDerivation.
//   - PotTokens(item): a guaranteed-achievable lower bound on the longest
//     derivation, computed by an upward fixed point and clamped to Huge
//     above MaxLowerBound so the fixed point terminates. Sound in one
//     direction only: it never overstates reachable length.
//   - Choices(item, budget): the admissible immediate expansions of a
//     non-terminal item whose minimum cost fits the budget.
//
// Why:
//   - Generation under a length budget needs to know, before committing to
//     an expansion, the cheapest sentence that expansion can still produce.
//   - Steered/learned choosers need stable node identity: symbols and
//     literals are interned, so reference equality implies value equality.
//
// Lifecycle:
//
//	g := grammar.New()                // construction options here
//	s := g.Symbol("S")                // intern symbols and literals
//	g.AddProduction(s, g.Seq(...))    // any number of productions
//	g.MergeSymbols([]string{...})     // optional Glade-style merges
//	err := g.Finalize()               // exactly once; runs both analyses
//
// After Finalize the grammar is read-only for generation; transform passes
// (package transform) may still rewrite it and must call Reanalyze.
//
// Errors:
//
//   - ErrIncompleteGrammar   a referenced symbol has no production
//   - ErrNoFiniteDerivation  a symbol's minimum length never left Huge
//   - ErrNoStart             Finalize before any production was added
//   - ErrFinalized           construction or Finalize after Finalize
//   - ErrNotFinalized        query that requires a finalized grammar
//   - ErrMergeConflict       a merge would join two distinct leaders
//   - ErrLateMerge           merge named a symbol that was already interned
package grammar
