package grammar

import (
	"fmt"
	"strings"
)

// MinTokens returns the exact minimum number of tokens any derivation from
// it can produce. For symbols this is the current fixed-point estimate and
// is only accurate once Finalize (or Reanalyze) has run; querying a symbol
// that has never been analyzed panics, since no meaningful answer exists.
func MinTokens(it Item) int {
	switch x := it.(type) {
	case *Literal:
		return x.cost
	case *Symbol:
		if !x.minKnown {
			panic(fmt.Sprintf("grammar: min tokens of %s queried before analysis", x.name))
		}
		return x.minTokens
	case *Seq:
		sum := 0
		for _, el := range x.Items {
			sum += MinTokens(el)
			if sum >= Huge {
				return Huge
			}
		}
		return sum
	case *Kleene:
		// Zero iterations is always legal.
		return 0
	case *Choice:
		best := Huge
		for _, alt := range x.Alts {
			if n := MinTokens(alt); n < best {
				best = n
			}
		}
		return best
	case *CharRange:
		best := Huge
		for _, alt := range x.Alts {
			if alt.cost < best {
				best = alt.cost
			}
		}
		return best
	}
	panic(fmt.Sprintf("grammar: MinTokens on unknown item %T", it))
}

// PotTokens returns a lower bound on the largest number of tokens some
// derivation from it is guaranteed to be able to produce. Symbol estimates
// come from the upward fixed point and are clamped to Huge ("unbounded")
// above the grammar's MaxLowerBound. The bound is sound one way only:
// PotTokens(x) <= n guarantees a derivation of length >= PotTokens(x)
// exists, it does not bound derivations from above.
func PotTokens(it Item) int {
	switch x := it.(type) {
	case *Literal:
		return x.cost
	case *Symbol:
		return x.potTokens
	case *Seq:
		sum := 0
		for _, el := range x.Items {
			sum += PotTokens(el)
			if sum >= Huge {
				return Huge
			}
		}
		return sum
	case *Kleene:
		// A repetition whose child can produce anything at all can be
		// iterated arbitrarily often.
		if PotTokens(x.child) >= 1 {
			return Huge
		}
		return 0
	case *Choice:
		best := 0
		for _, alt := range x.Alts {
			if n := PotTokens(alt); n > best {
				best = n
			}
		}
		return best
	case *CharRange:
		best := 0
		for _, alt := range x.Alts {
			if alt.cost > best {
				best = alt.cost
			}
		}
		return best
	}
	panic(fmt.Sprintf("grammar: PotTokens on unknown item %T", it))
}

// Choices returns the admissible immediate expansions of a non-terminal
// item, given the number of tokens the caller can still afford for it
// (typically margin + MinTokens(item)).
//
//   - *Symbol: the sole expansion, unconditionally; the real decision is
//     deferred to the expansion, typically a Choice.
//   - *Choice / *CharRange: the alternatives whose minimum cost fits the
//     budget; over-budget branches are eliminated outright.
//   - *Kleene: "expand once more, then repeat" plus "stop now" while the
//     child's minimum cost still fits; only "stop now" once it does not.
//
// Literals and sequences are not choice points and return nil.
func Choices(it Item, budget int) []Item {
	switch x := it.(type) {
	case *Symbol:
		return []Item{x.expansion}
	case *Choice:
		out := make([]Item, 0, len(x.Alts))
		for _, alt := range x.Alts {
			if MinTokens(alt) <= budget {
				out = append(out, alt)
			}
		}
		return out
	case *CharRange:
		out := make([]Item, 0, len(x.Alts))
		for _, alt := range x.Alts {
			if alt.cost <= budget {
				out = append(out, alt)
			}
		}
		return out
	case *Kleene:
		if MinTokens(x.child) <= budget {
			return []Item{x.recursive, x.base}
		}
		return []Item{x.base}
	}
	return nil
}

// calcMinTokens runs the downward fixed point for minimum lengths: every
// symbol starts at the Huge over-estimate and estimates only ever
// decrease, so termination is guaranteed. A symbol left at Huge has no
// finite derivation.
func (g *Grammar) calcMinTokens() error {
	for _, name := range g.order {
		g.symbols[name].SetMinTokens(Huge)
	}
	changed := true
	for changed {
		changed = false
		for _, name := range g.order {
			sym := g.symbols[name]
			estimate := MinTokens(sym.expansion)
			if estimate < sym.minTokens {
				sym.minTokens = estimate
				changed = true
			}
		}
	}

	var stuck []string
	for _, name := range g.order {
		if g.symbols[name].minTokens >= Huge {
			stuck = append(stuck, name)
		}
	}
	if len(stuck) > 0 {
		return fmt.Errorf("%w: %s", ErrNoFiniteDerivation, strings.Join(stuck, ", "))
	}
	return nil
}

// calcPotTokens runs the upward fixed point for potential lengths: every
// symbol starts at 0 and estimates only ever increase, with values above
// MaxLowerBound clamped to Huge so the iteration terminates.
func (g *Grammar) calcPotTokens() {
	for _, name := range g.order {
		g.symbols[name].potTokens = 0
	}
	changed := true
	for changed {
		changed = false
		for _, name := range g.order {
			sym := g.symbols[name]
			estimate := PotTokens(sym.expansion)
			if estimate > g.maxLowerBound {
				estimate = Huge
			}
			if estimate > sym.potTokens {
				sym.potTokens = estimate
				changed = true
			}
		}
	}
}

// Reanalyze recomputes both size analyses. Transform passes that rewrite
// right-hand sides with different size characteristics must call it, since
// the cached symbol bounds become stale. Requires a finalized grammar.
func (g *Grammar) Reanalyze() error {
	if !g.finalized {
		return ErrNotFinalized
	}
	if err := g.calcMinTokens(); err != nil {
		return err
	}
	g.calcPotTokens()
	return nil
}
