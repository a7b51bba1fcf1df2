package transform

import "github.com/gramforge/gramforge/grammar"

// EmptySymbol is the name of the designated symbol whose expansion is the
// empty sequence.
const EmptySymbol = "EMPTY"

// FactorEmpty replaces every empty sequence on any right-hand side with a
// reference to one designated EMPTY symbol whose expansion is the (single)
// canonical empty sequence.
//
// The canonical empty sequence owned by EMPTY itself must not be replaced
// by the same pass: Setup temporarily gives EMPTY a non-matching
// placeholder expansion, and Teardown restores the true empty sequence and
// recomputes both size analyses. Running the pass twice is a no-op the
// second time.
type FactorEmpty struct {
	sym *grammar.Symbol
}

// NewFactorEmpty returns the empty-sequence factoring pass.
func NewFactorEmpty() *FactorEmpty {
	return &FactorEmpty{}
}

// Setup interns the EMPTY symbol and shields its own expansion from the
// pass with a placeholder literal.
func (f *FactorEmpty) Setup(g *grammar.Grammar) error {
	f.sym = g.Symbol(EmptySymbol)
	f.sym.SetMinTokens(0)
	f.sym.SetExpansion(g.Literal("\x00 factor-empty placeholder"))
	return nil
}

// Apply replaces an empty sequence with the EMPTY symbol.
func (f *FactorEmpty) Apply(it grammar.Item) grammar.Item {
	if seq, ok := it.(*grammar.Seq); ok && len(seq.Items) == 0 {
		return f.sym
	}
	return it
}

// Teardown restores EMPTY's canonical empty-sequence expansion and
// recomputes the fixed points. It runs after the traversal, so the
// canonical instance is never itself replaced.
func (f *FactorEmpty) Teardown(g *grammar.Grammar) error {
	f.sym.SetExpansion(g.Seq())
	return g.Reanalyze()
}
