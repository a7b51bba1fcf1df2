// Package bias provides a substitute for uniform random choice with
// learnable weights: a weight table over previously seen choice values,
// reward/penalty updates that move weights toward 1.0 or 0.0, and an
// optional bigram extension keyed by (prior choice, choice) for one step
// of context sensitivity.
//
// The package is deliberately ignorant of grammars: choices are opaque
// comparable values (any two of which may be compared with ==, e.g.
// pointers), so the same mechanism can bias any discrete decision.
//
// Episodes and forking:
//
// A Bias records, as it samples, the ordered history of its choices for
// one episode. Fork returns a new Bias sharing the same underlying weight
// table — updates made through any fork are visible to all — but with an
// independent copy of the history so far. After an episode is judged,
// Reward or Penalize replays its whole history in order, applying the
// bigram-aware update with each item's immediate predecessor as context.
// That lets many independent episodes share one continuously improving
// global bias while each outcome is scored after the fact, a cheap online
// learning loop with no gradient machinery.
//
// Concurrency: the weight table is mutated by updates and read by Choose,
// and it is shared across all forks of one root. The design assumes
// sequential use — episodes run to completion one at a time, or
// cooperatively interleaved on one goroutine, with scoring between runs.
// Wrap all calls in a mutex if concurrent episodes are required.
package bias
