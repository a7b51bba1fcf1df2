// Package transform provides a postorder rewrite framework over grammar
// right-hand-side trees, plus the normalization passes gramforge runs
// before generation.
//
// What:
//
//   - Transform: a pass with an optional Setup (once, before any symbol),
//     an Apply hook called on every node in postorder (children before the
//     node itself), and an optional Teardown (once, after all symbols —
//     typically where the size analyses are recomputed).
//   - Run(g, t): applies a pass to every symbol's right-hand side exactly
//     once, replacing the stored expansion when its root changed.
//   - FactorEmpty: introduces one EMPTY symbol whose expansion is the empty
//     sequence and replaces every other empty sequence with a reference to
//     it. Idempotent.
//   - UnitProductions: replaces every occurrence of a symbol whose entire
//     expansion is a single symbol reference with the end of that reference
//     chain.
//   - CharClasses: folds a Choice whose alternatives are all
//     single-character literals into a compact CharRange. Representation
//     only; generation semantics are unchanged.
//
// Passes are independent and composable; no total order is enforced.
// Completing FactorEmpty (with its fixed-point recomputation) before
// generation is required for budget accounting to be exact.
//
// Rewrites are traced at glog verbosity 2.
package transform
