package transform

import (
	"github.com/golang/glog"

	"github.com/gramforge/gramforge/grammar"
)

// Transform is a single rewrite pass over right-hand-side trees.
//
// Apply is called once per node in postorder and returns either its
// argument (no change) or a replacement node. Setup runs once before any
// symbol is visited (e.g. to register an auxiliary symbol); Teardown runs
// once after all symbols (e.g. to recompute the size analyses, or to fix
// up a node deliberately excluded from the pass).
type Transform interface {
	Setup(g *grammar.Grammar) error
	Apply(it grammar.Item) grammar.Item
	Teardown(g *grammar.Grammar) error
}

// Run applies t to the right-hand side of every symbol in g exactly once,
// in declaration order, replacing a symbol's stored expansion if its root
// changed. The grammar must be finalized.
func Run(g *grammar.Grammar, t Transform) error {
	if !g.Finalized() {
		return grammar.ErrNotFinalized
	}
	if err := t.Setup(g); err != nil {
		return err
	}
	for _, sym := range g.Symbols() {
		rhs := sym.Expansion()
		rewritten := rewrite(rhs, t)
		if rewritten != rhs {
			glog.V(2).Infof("transform: %s ::= %s -> %s", sym.Name(), rhs, rewritten)
			sym.SetExpansion(rewritten)
		}
	}
	return t.Teardown(g)
}

// rewrite walks one tree in postorder, rewriting children in place before
// applying t to the node itself. Symbol nodes are leaves here: their
// expansions belong to other symbols and are visited by Run's outer loop,
// never through references. CharRange members are interned literals and
// are likewise left alone.
func rewrite(it grammar.Item, t Transform) grammar.Item {
	switch x := it.(type) {
	case *grammar.Seq:
		for i, el := range x.Items {
			if r := rewrite(el, t); r != el {
				x.Items[i] = r
			}
		}
	case *grammar.Choice:
		for i, alt := range x.Alts {
			if r := rewrite(alt, t); r != alt {
				x.Alts[i] = r
			}
		}
	case *grammar.Kleene:
		if r := rewrite(x.Child(), t); r != x.Child() {
			x.SetChild(r)
		}
	case *grammar.Literal, *grammar.Symbol, *grammar.CharRange:
		// Leaves.
	}
	return t.Apply(it)
}
