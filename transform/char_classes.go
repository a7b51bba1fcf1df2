package transform

import (
	"unicode/utf8"

	"github.com/gramforge/gramforge/grammar"
)

// CharClasses folds every Choice whose alternatives are all
// single-character literals into a CharRange. Exact membership and
// generation semantics are preserved; only the representation (and its
// compact [a-z] display form) changes.
type CharClasses struct{}

// NewCharClasses returns the character-class folding pass.
func NewCharClasses() *CharClasses {
	return &CharClasses{}
}

// Setup is a no-op; the pass needs no auxiliary state.
func (c *CharClasses) Setup(g *grammar.Grammar) error { return nil }

// Apply folds an enumerable single-character Choice into a CharRange.
func (c *CharClasses) Apply(it grammar.Item) grammar.Item {
	choice, ok := it.(*grammar.Choice)
	if !ok || len(choice.Alts) == 0 {
		return it
	}
	lits := make([]*grammar.Literal, 0, len(choice.Alts))
	for _, alt := range choice.Alts {
		lit, isLit := alt.(*grammar.Literal)
		if !isLit || utf8.RuneCountInString(lit.Text()) != 1 {
			return it
		}
		lits = append(lits, lit)
	}
	return grammar.NewCharRange(lits)
}

// Teardown is a no-op: folding changes representation only, so every
// cached size bound is still exact.
func (c *CharClasses) Teardown(g *grammar.Grammar) error { return nil }
