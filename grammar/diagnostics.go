package grammar

// Reachability diagnostics over the finalized symbol graph. Transform
// passes such as unit-production elimination can leave symbols defined but
// unreferenced; these helpers report and optionally remove them.

// Reachable returns the names of symbols reachable from the start symbol
// through right-hand sides, in declaration order. Requires a finalized
// grammar.
func (g *Grammar) Reachable() ([]string, error) {
	if !g.finalized {
		return nil, ErrNotFinalized
	}
	seen := g.reachableSet()
	out := make([]string, 0, len(seen))
	for _, name := range g.order {
		if seen[name] {
			out = append(out, name)
		}
	}
	return out, nil
}

// Unreachable returns the names of symbols not reachable from the start
// symbol, in declaration order. Requires a finalized grammar.
func (g *Grammar) Unreachable() ([]string, error) {
	if !g.finalized {
		return nil, ErrNotFinalized
	}
	seen := g.reachableSet()
	var out []string
	for _, name := range g.order {
		if !seen[name] {
			out = append(out, name)
		}
	}
	return out, nil
}

// PruneUnreachable removes all unreachable symbols from the grammar and
// returns their names. The pruned grammar keeps its analyses intact, since
// no reachable right-hand side changes. Requires a finalized grammar.
func (g *Grammar) PruneUnreachable() ([]string, error) {
	removed, err := g.Unreachable()
	if err != nil {
		return nil, err
	}
	if len(removed) == 0 {
		return nil, nil
	}
	gone := make(map[string]bool, len(removed))
	for _, name := range removed {
		gone[name] = true
		delete(g.symbols, name)
	}
	kept := g.order[:0]
	for _, name := range g.order {
		if !gone[name] {
			kept = append(kept, name)
		}
	}
	g.order = kept
	return removed, nil
}

// reachableSet walks right-hand sides from the start symbol, following
// symbol references into their expansions.
func (g *Grammar) reachableSet() map[string]bool {
	seen := make(map[string]bool, len(g.symbols))
	var walk func(it Item)
	walk = func(it Item) {
		switch x := it.(type) {
		case *Symbol:
			if seen[x.name] {
				return
			}
			seen[x.name] = true
			walk(x.expansion)
		case *Seq:
			for _, el := range x.Items {
				walk(el)
			}
		case *Choice:
			for _, alt := range x.Alts {
				walk(alt)
			}
		case *Kleene:
			walk(x.child)
		case *Literal, *CharRange:
			// Terminals; nothing to follow.
		}
	}
	walk(g.start)
	return seen
}
