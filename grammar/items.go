package grammar

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Item is a node of a right-hand-side tree: a terminal literal, a symbol
// reference, a sequence, a repetition, or a (character-range) choice.
//
// The variant set is closed; analyses and traversals dispatch with
// exhaustive type switches over the concrete pointer types. Symbols and
// literals are interned per Grammar, so reference equality implies value
// equality and items may be used as map keys (the adaptive chooser relies
// on this).
type Item interface {
	fmt.Stringer

	// item marks the closed variant set.
	item()
}

// Literal is a terminal: generating it appends its text to the output and
// consumes its cost (1, or the byte length of the text under WithByteCost)
// from the budget. Literals are interned; obtain them via Grammar.Literal.
type Literal struct {
	text string
	cost int
}

func (l *Literal) item() {}

// Text returns the terminal text.
func (l *Literal) Text() string { return l.text }

// Cost returns the token cost fixed at creation: 1, or the byte length of
// the text under the byte-cost sizing mode.
func (l *Literal) Cost() int { return l.cost }

// String renders the literal quoted and escaped, e.g. "a\tb".
func (l *Literal) String() string { return strconv.Quote(l.text) }

// Symbol is a reference to a non-terminal. It carries only its name until
// Finalize, which attaches the expansion (the sole production, or a Choice
// over all of them) and computes the two size bounds. Symbols are interned;
// obtain them via Grammar.Symbol.
type Symbol struct {
	name      string
	expansion Item
	minTokens int
	potTokens int
	minKnown  bool
}

func (s *Symbol) item() {}

// Name returns the symbol's (post-merge) name.
func (s *Symbol) Name() string { return s.name }

// Expansion returns the symbol's right-hand side. Nil before Finalize.
func (s *Symbol) Expansion() Item { return s.expansion }

// SetExpansion replaces the symbol's right-hand side. Intended for
// transform passes; callers must Reanalyze the grammar afterwards if the
// new tree has different size characteristics.
func (s *Symbol) SetExpansion(rhs Item) { s.expansion = rhs }

// SetMinTokens overrides the symbol's minimum-length estimate. Intended
// for transform passes that install auxiliary symbols (e.g. EMPTY) before
// the next Reanalyze.
func (s *Symbol) SetMinTokens(n int) {
	s.minTokens = n
	s.minKnown = true
}

// String returns the bare symbol name.
func (s *Symbol) String() string { return s.name }

// Seq is a concatenation of items. The empty sequence is the identity:
// it generates nothing at cost zero.
type Seq struct {
	Items []Item
}

func (s *Seq) item() {}

// Append adds an item at the end of the sequence.
func (s *Seq) Append(it Item) { s.Items = append(s.Items, it) }

// String renders the sequence space-joined, or "/* empty */" when empty.
func (s *Seq) String() string {
	if len(s.Items) == 0 {
		return "/* empty */"
	}
	parts := make([]string, len(s.Items))
	for i, it := range s.Items {
		parts[i] = it.String()
	}
	return strings.Join(parts, " ")
}

// Kleene is zero-or-more repetitions of a child item. For choice purposes
// A* behaves as (A A*) | empty: the two alternatives are materialized once
// so that they keep stable identity across choice offers (learned weights
// key on item identity).
type Kleene struct {
	child     Item
	recursive *Seq // expand the child once, then repeat
	base      *Seq // stop now: the empty sequence
}

func newKleene(child Item) *Kleene {
	k := &Kleene{base: &Seq{}}
	k.SetChild(child)
	return k
}

func (k *Kleene) item() {}

// Child returns the repeated item.
func (k *Kleene) Child() Item { return k.child }

// SetChild replaces the repeated item and rebuilds the recursive
// alternative so it references the new child. Intended for transform
// passes.
func (k *Kleene) SetChild(child Item) {
	k.child = child
	k.recursive = &Seq{Items: []Item{child, k}}
}

// String renders the repetition as (child)*.
func (k *Kleene) String() string { return "(" + k.child.String() + ")*" }

// Choice is an ordered disjunction among alternatives.
type Choice struct {
	Alts []Item
}

func (c *Choice) item() {}

// Append adds an alternative at the end of the choice.
func (c *Choice) Append(it Item) { c.Alts = append(c.Alts, it) }

// String renders the choice parenthesized, e.g. ("a" | "b" | C).
func (c *Choice) String() string {
	parts := make([]string, len(c.Alts))
	for i, it := range c.Alts {
		parts[i] = it.String()
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

// CharRange is a specialized Choice whose alternatives are all
// single-character literals. It is displayed compactly ([a-z0-9_]) but is
// semantically an ordinary choice over its literals; generation and size
// analyses treat it exactly like the Choice it replaced.
type CharRange struct {
	Alts []*Literal
}

// NewCharRange builds a CharRange over the given single-character
// literals, preserving their order. The caller (normally the transform
// CharClasses pass) is responsible for ensuring each literal is exactly
// one rune.
func NewCharRange(alts []*Literal) *CharRange {
	return &CharRange{Alts: alts}
}

func (r *CharRange) item() {}

// String renders the members as a bracketed class with contiguous runs
// folded, e.g. [0-9a-f]. Membership order does not affect the display:
// runes are shown sorted.
func (r *CharRange) String() string {
	runes := make([]rune, 0, len(r.Alts))
	for _, lit := range r.Alts {
		ch, _ := utf8.DecodeRuneInString(lit.text)
		runes = append(runes, ch)
	}
	return "[" + foldRuns(runes) + "]"
}

// foldRuns renders a sorted, deduplicated view of runes with runs of three
// or more consecutive code points folded into lo-hi form.
func foldRuns(runes []rune) string {
	if len(runes) == 0 {
		return ""
	}
	sorted := make([]rune, len(runes))
	copy(sorted, runes)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	var b strings.Builder
	for i := 0; i < len(sorted); {
		// Skip duplicates at the run start.
		if i > 0 && sorted[i] == sorted[i-1] {
			i++
			continue
		}
		j := i
		for j+1 < len(sorted) && sorted[j+1] == sorted[j]+1 {
			j++
		}
		if j-i >= 2 {
			b.WriteString(escapeClassRune(sorted[i]))
			b.WriteByte('-')
			b.WriteString(escapeClassRune(sorted[j]))
		} else {
			for k := i; k <= j; k++ {
				b.WriteString(escapeClassRune(sorted[k]))
			}
		}
		i = j + 1
	}
	return b.String()
}

// escapeClassRune escapes characters that are meta inside a bracketed class.
func escapeClassRune(ch rune) string {
	switch ch {
	case '-', ']', '\\', '^':
		return "\\" + string(ch)
	}
	return string(ch)
}
