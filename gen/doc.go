// Package gen drives the expansion of a finalized grammar's start symbol
// into a terminal string under a token budget, with an externally
// steerable choice point at every non-terminal expansion.
//
// What:
//
//   - State: the stackless generation state machine. The caller loop is
//     HasMore → (IsTerminal ? Shift : Choices + Expand). A margin ledger
//     (budget minus the minimum cost of all pending work) filters the
//     choices offered, so the margin never goes negative and generation
//     always terminates: once slack is exhausted, only the stopping
//     alternative of any repetition remains admissible.
//   - Chooser: picks one of the offered expansions. The default is
//     uniform random; WithBias plugs in an adaptive bias.Bias episode;
//     any custom Chooser (e.g. interactive) can be supplied.
//   - Sentence: the standard driver. A budget smaller than the start
//     symbol's minimum length is silently raised to that minimum, since a
//     strictly smaller budget is unsatisfiable. An optional minimum output
//     length re-drives generation (discard and retry, bounded by
//     MaxAttempts) — a driver policy, not an engine concern.
//
// Why:
//   - Grammar-derived test inputs and fuzzing corpora need length control:
//     a greedy, budget-rationed random walk produces syntactically valid
//     strings whose length is steered toward the budget without ever
//     exceeding it.
//
// Per-episode generation has no recoverable error path: for a well-formed
// finalized grammar and a non-negative budget every run terminates with a
// valid string. What CAN fail is driver misuse: Expand with a choice that
// was not offered (ErrInvalidExpansion), a Chooser returning nothing
// (ErrNoChoice), or an unreachable minimum length
// (ErrMinLengthUnreachable).
//
// Steps are traced at glog verbosity 2; the diagnostic derivation stack
// (StackStateString) renders the current nesting for interactive use.
package gen
