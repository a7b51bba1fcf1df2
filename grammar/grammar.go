package grammar

import (
	"fmt"
	"io"
	"strings"
)

// Grammar is a collection of productions indexed by non-terminal symbol.
//
// A Grammar is built incrementally through the factory methods (Symbol,
// Literal, Seq, Choice, Kleene), MergeSymbols, and AddProduction, then
// sealed exactly once with Finalize. All symbols and literals are interned:
// one node per distinct name or text, so reference equality implies value
// equality. A Grammar is not safe for concurrent construction; once
// finalized (and not being transformed) it is read-only and may be shared
// across concurrent generation episodes.
type Grammar struct {
	byteCost      bool
	maxLowerBound int

	start *Symbol

	// merges maps a merged symbol name to its elected leader. Lookups
	// follow the chain to the root, so overlapping merge declarations
	// still resolve to a single representative.
	merges map[string]string

	symbols  map[string]*Symbol
	order    []string // symbol creation order; drives Dump and analyses
	literals map[string]*Literal

	// prods is the temporary multi-map from symbol name to alternative
	// right-hand sides. Finalize moves its contents into the symbols and
	// drops it.
	prods map[string][]Item

	finalized bool
}

// New returns an empty Grammar configured by the given options.
func New(opts ...Option) *Grammar {
	g := &Grammar{
		maxLowerBound: DefaultMaxLowerBound,
		merges:        make(map[string]string),
		symbols:       make(map[string]*Symbol),
		literals:      make(map[string]*Literal),
		prods:         make(map[string][]Item),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// leader resolves a symbol name through the merge map to its
// representative name.
func (g *Grammar) leader(name string) string {
	for {
		next, ok := g.merges[name]
		if !ok {
			return name
		}
		name = next
	}
}

// Symbol interns and returns the unique node for a symbol with this name,
// after merge resolution. Creating a symbol does not give it a production;
// every symbol must have one by the time Finalize runs.
func (g *Grammar) Symbol(name string) *Symbol {
	name = g.leader(name)
	sym, ok := g.symbols[name]
	if !ok {
		sym = &Symbol{name: name, minTokens: Huge}
		g.symbols[name] = sym
		g.order = append(g.order, name)
	}
	return sym
}

// Lookup returns the interned symbol for name (after merge resolution)
// without creating it.
func (g *Grammar) Lookup(name string) (*Symbol, bool) {
	sym, ok := g.symbols[g.leader(name)]
	return sym, ok
}

// Literal interns and returns the unique node for this terminal text.
// The cost is fixed at creation: 1, or the byte length under WithByteCost.
func (g *Grammar) Literal(text string) *Literal {
	lit, ok := g.literals[text]
	if !ok {
		cost := 1
		if g.byteCost {
			cost = len(text)
		}
		lit = &Literal{text: text, cost: cost}
		g.literals[text] = lit
	}
	return lit
}

// Seq builds a concatenation of the given items. Seq() is the empty
// sequence, which generates nothing.
func (g *Grammar) Seq(items ...Item) *Seq {
	return &Seq{Items: items}
}

// Choice builds an ordered disjunction of the given alternatives.
func (g *Grammar) Choice(alts ...Item) *Choice {
	return &Choice{Alts: alts}
}

// Kleene builds a zero-or-more repetition of child.
func (g *Grammar) Kleene(child Item) *Kleene {
	return newKleene(child)
}

// MergeSymbols declares that all the given names denote one symbol. If any
// of the names already belongs to an equivalence class, that class's
// leader is reused; otherwise the last name in the list is elected leader.
// Merges must be declared before the merged names are interned
// (ErrLateMerge) and may not join two existing classes with different
// leaders (ErrMergeConflict).
func (g *Grammar) MergeSymbols(names []string) error {
	if g.finalized {
		return ErrFinalized
	}
	if len(names) == 0 {
		return nil
	}

	// Reuse an already elected leader if any member has one.
	leader := ""
	for _, name := range names {
		if _, merged := g.merges[name]; !merged {
			continue
		}
		root := g.leader(name)
		if leader == "" {
			leader = root
		} else if leader != root {
			return fmt.Errorf("%w: %s vs %s", ErrMergeConflict, leader, root)
		}
	}
	if leader == "" {
		leader = names[len(names)-1]
	}

	for _, name := range names {
		root := g.leader(name)
		if root == leader {
			continue
		}
		if _, interned := g.symbols[root]; interned {
			return fmt.Errorf("%w: %s", ErrLateMerge, root)
		}
		g.merges[root] = leader
	}
	return nil
}

// AddProduction records rhs as one alternative right-hand side for lhs.
// The left-hand side of the first production added becomes the start
// symbol.
func (g *Grammar) AddProduction(lhs *Symbol, rhs Item) error {
	if g.finalized {
		return ErrFinalized
	}
	if g.start == nil {
		g.start = lhs
	}
	g.prods[lhs.name] = append(g.prods[lhs.name], rhs)
	return nil
}

// Finalize seals the grammar: it attaches each symbol's expansion (the
// sole production, or a synthesized Choice over all of them in declaration
// order), validates that every interned symbol has a production, and runs
// both size analyses. It must be called exactly once, after all
// productions are added and before any size query or generation.
//
// Errors: ErrFinalized on a second call, ErrNoStart if no production was
// ever added, ErrIncompleteGrammar listing symbols without productions,
// ErrNoFiniteDerivation listing symbols whose minimum length never
// converged.
func (g *Grammar) Finalize() error {
	if g.finalized {
		return ErrFinalized
	}
	if g.start == nil {
		return ErrNoStart
	}

	// Connect non-terminals to their right-hand sides.
	for _, name := range g.order {
		alts, ok := g.prods[name]
		if !ok {
			continue
		}
		sym := g.symbols[name]
		if len(alts) == 1 {
			sym.expansion = alts[0]
		} else {
			sym.expansion = &Choice{Alts: alts}
		}
	}

	// Completeness: every referenced symbol needs an expansion.
	var missing []string
	for _, name := range g.order {
		if g.symbols[name].expansion == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrIncompleteGrammar, strings.Join(missing, ", "))
	}

	// The master copy now lives in the symbols; drop the temporary table.
	g.prods = nil

	if err := g.calcMinTokens(); err != nil {
		return err
	}
	g.calcPotTokens()

	g.finalized = true
	return nil
}

// Finalized reports whether Finalize has completed.
func (g *Grammar) Finalized() bool { return g.finalized }

// Start returns the start symbol (the LHS of the first production added),
// or nil before any production exists.
func (g *Grammar) Start() *Symbol { return g.start }

// Symbols returns all interned symbols in creation order.
func (g *Grammar) Symbols() []*Symbol {
	out := make([]*Symbol, len(g.order))
	for i, name := range g.order {
		out[i] = g.symbols[name]
	}
	return out
}

// ByteCost reports whether literal costs are measured in bytes rather than
// items.
func (g *Grammar) ByteCost() bool { return g.byteCost }

// MaxLowerBound returns the clamp threshold of the potential-tokens
// analysis.
func (g *Grammar) MaxLowerBound() int { return g.maxLowerBound }

// Dump writes the grammar with per-symbol minimum lengths, one production
// block per symbol in declaration order:
//
//	# S, min length 1
//	S ::= ("a" S "b" | "c")
//
// Requires a finalized grammar.
func (g *Grammar) Dump(w io.Writer) error {
	if !g.finalized {
		return ErrNotFinalized
	}
	for _, name := range g.order {
		sym := g.symbols[name]
		if _, err := fmt.Fprintf(w, "# %s, min length %d\n%s ::= %s\n\n",
			name, sym.minTokens, name, sym.expansion); err != nil {
			return err
		}
	}
	return nil
}
