package transform

import "github.com/gramforge/gramforge/grammar"

// UnitProductions eliminates unit productions by substitution: every
// occurrence of a symbol whose entire expansion is a single reference to
// another symbol is replaced with the end of that reference chain.
//
// The unit symbols themselves stay defined (their expansions collapse to
// the chain target as well), so referential integrity is preserved; they
// typically become unreachable and can be removed afterwards with
// Grammar.PruneUnreachable. Chains are always finite: a reference cycle
// would have no finite derivation and Finalize would already have failed.
type UnitProductions struct {
	target map[*grammar.Symbol]*grammar.Symbol
}

// NewUnitProductions returns the unit-production elimination pass.
func NewUnitProductions() *UnitProductions {
	return &UnitProductions{}
}

// Setup records, for every unit symbol, the non-unit symbol at the end of
// its reference chain.
func (u *UnitProductions) Setup(g *grammar.Grammar) error {
	u.target = make(map[*grammar.Symbol]*grammar.Symbol)
	for _, sym := range g.Symbols() {
		ref, ok := sym.Expansion().(*grammar.Symbol)
		if !ok {
			continue
		}
		for {
			next, again := ref.Expansion().(*grammar.Symbol)
			if !again {
				break
			}
			ref = next
		}
		u.target[sym] = ref
	}
	return nil
}

// Apply replaces a unit symbol occurrence with its chain target.
func (u *UnitProductions) Apply(it grammar.Item) grammar.Item {
	if sym, ok := it.(*grammar.Symbol); ok {
		if tgt, unit := u.target[sym]; unit {
			return tgt
		}
	}
	return it
}

// Teardown recomputes the size analyses.
func (u *UnitProductions) Teardown(g *grammar.Grammar) error {
	return g.Reanalyze()
}
