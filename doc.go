// Package gramforge generates random strings from context-free grammars
// under a length budget — test inputs, fuzzing corpora, sample sentences.
//
// 🚀 What is gramforge?
//
//	A pure-Go toolkit that brings together:
//		• Grammar IR: interned symbols & literals, sequences, choices, Kleene stars
//		• Size analyses: exact minimum and guaranteed-achievable token counts
//		• Budget-aware generation: a steerable state machine that never overshoots
//		• Grammar normalization: empty-sequence factoring, unit-production
//		  elimination, character-class folding
//		• Adaptive choice: online-learned weights with reward/penalty feedback
//		• BNF frontend: parse Glade-style BNF (with symbol merges) into the IR
//
// ✨ Why choose gramforge?
//
//   - Every generated string is syntactically valid and within budget
//   - Generation is externally steerable — plug in your own Chooser,
//     interactive or learned
//   - Forked bias episodes share one continuously improving weight table
//   - Pure Go — no cgo, no code generation
//
// Everything is organized under five subpackages:
//
//	grammar/   — Item tree, Grammar container, min/pot-token fixed points
//	transform/ — postorder rewrite framework + normalization passes
//	gen/       — budget-rationed sentence generation engine and driver
//	bias/      — learnable weighted choice with bigram context and forking
//	bnf/       — textual BNF reader producing grammar.Grammar values
//
// Quick example:
//
//	g, _ := bnf.ParseString(`S ::= "a" S "b" | "c" ;`)
//	_ = g.Finalize()
//	s, _ := gen.Sentence(g, gen.WithBudget(5))
//	// s is one of "c", "acb", "aacbb"
//
// Dive into README.md for the full tour: normalization passes, adaptive
// bias loops, and budget/margin accounting.
//
//	go get github.com/gramforge/gramforge
package gramforge
