package gen

import (
	"strings"

	"github.com/golang/glog"

	"github.com/gramforge/gramforge/grammar"
)

// closeMark is a pseudo-element marking the end of an expansion on the
// worklist. It exists purely so a diagnostic stack of open constructs can
// ride along with the otherwise stackless representation; it is never
// passed to size analyses or choice offers.
type closeMark struct {
	construct grammar.Item
	expansion grammar.Item
}

// State is the state of one generation episode. Each step of the caller
// loop transforms it: a prefix of already generated terminals, a suffix of
// items yet to be expanded, and the budget ledger.
//
// The suffix is kept in reverse order so the next item is pushed and
// popped at the tail.
type State struct {
	text   strings.Builder
	suffix []any          // grammar.Item or *closeMark, reversed
	stack  []grammar.Item // constructs currently being expanded (diagnostic)

	budget int // full budget for the sentence; never changes
	margin int // slack: budget minus minimum cost of pending work
	used   int // tokens actually emitted so far
}

// NewState starts an episode expanding g's start symbol under the given
// budget. The grammar must be finalized; the caller is responsible for a
// budget of at least the start symbol's minimum length (Sentence raises
// it automatically).
func NewState(g *grammar.Grammar, budget int) (*State, error) {
	if g == nil {
		return nil, ErrNilGrammar
	}
	if !g.Finalized() {
		return nil, grammar.ErrNotFinalized
	}
	return &State{
		suffix: []any{g.Start()},
		budget: budget,
		margin: budget - grammar.MinTokens(g.Start()),
	}, nil
}

// HasMore reports whether any item remains to shift or expand. It must be
// called before every step: as a side effect it slides past close marks
// and unfolds pending sequences into their elements, and it is the only
// place sequences are unfolded.
func (s *State) HasMore() bool {
	for len(s.suffix) > 0 {
		switch top := s.suffix[len(s.suffix)-1].(type) {
		case *grammar.Seq:
			s.suffix = s.suffix[:len(s.suffix)-1]
			glog.V(2).Infof("gen: unfolding sequence %s", top)
			// Reversed, so the first element is processed next.
			for i := len(top.Items) - 1; i >= 0; i-- {
				s.suffix = append(s.suffix, top.Items[i])
			}
		case *closeMark:
			s.suffix = s.suffix[:len(s.suffix)-1]
			s.stack = s.stack[:len(s.stack)-1]
		default:
			return true
		}
	}
	return false
}

// IsTerminal reports whether the next pending item is a literal, in which
// case Shift is the only legal operation.
func (s *State) IsTerminal() bool {
	_, ok := s.suffix[len(s.suffix)-1].(*grammar.Literal)
	return ok
}

// Shift moves the pending literal to the generated text and consumes its
// cost from the budget ledger. Panics if the head is not a literal; call
// IsTerminal first.
func (s *State) Shift() {
	lit, ok := s.suffix[len(s.suffix)-1].(*grammar.Literal)
	if !ok {
		panic("gen: Shift on a non-terminal item")
	}
	s.suffix = s.suffix[:len(s.suffix)-1]
	s.text.WriteString(lit.Text())
	s.used += lit.Cost()
}

// Choices returns the admissible expansions of the pending non-terminal:
// those whose minimum cost fits within the current margin plus what the
// item itself was already budgeted for.
func (s *State) Choices() []grammar.Item {
	head := s.suffix[len(s.suffix)-1].(grammar.Item)
	return grammar.Choices(head, s.margin+grammar.MinTokens(head))
}

// Expand replaces the pending item with the chosen expansion, spending
// margin in proportion to how much more expensive the concrete choice is
// than the item it replaces. This is the sole point of external control.
//
// The choice must be one of the currently offered expansions (compared by
// identity); anything else fails fast with ErrInvalidExpansion.
func (s *State) Expand(choice grammar.Item) error {
	offered := s.Choices()
	admissible := false
	for _, c := range offered {
		if c == choice {
			admissible = true
			break
		}
	}
	if !admissible {
		return ErrInvalidExpansion
	}

	head := s.suffix[len(s.suffix)-1].(grammar.Item)
	s.suffix = s.suffix[:len(s.suffix)-1]
	glog.V(2).Infof("gen: %s -> %s", head, choice)

	s.stack = append(s.stack, head)
	s.suffix = append(s.suffix, &closeMark{construct: head, expansion: choice})
	s.suffix = append(s.suffix, choice)

	s.margin -= grammar.MinTokens(choice) - grammar.MinTokens(head)
	return nil
}

// Text returns the terminals generated so far.
func (s *State) Text() string { return s.text.String() }

// Budget returns the fixed budget for this episode.
func (s *State) Budget() int { return s.budget }

// Margin returns the remaining slack: budget minus the minimum cost of
// all pending work. Non-negative at every step.
func (s *State) Margin() int { return s.margin }

// Used returns the token cost emitted so far. When the episode finishes,
// Used() + Margin() == Budget().
func (s *State) Used() int { return s.used }

// String renders the state as "prefix @ pending", e.g.
//
//	foobar @ A("b" | C)*"d"
func (s *State) String() string {
	var b strings.Builder
	b.WriteString(s.text.String())
	b.WriteString(" @ ")
	for i := len(s.suffix) - 1; i >= 0; i-- {
		if it, ok := s.suffix[i].(grammar.Item); ok {
			b.WriteString(it.String())
		}
	}
	return b.String()
}

// StackStateString renders the full derivation state with one indent
// level per open construct. Diagnostic only; it has no effect on
// generation.
func (s *State) StackStateString() string {
	const indent = "   |"
	var b strings.Builder
	level := 0
	for _, frame := range s.stack {
		b.WriteString(strings.Repeat(indent, level))
		b.WriteString(frame.String())
		b.WriteByte('\n')
		level++
	}
	b.WriteString(strings.Repeat(indent, level))
	for i := len(s.suffix) - 1; i >= 0; i-- {
		switch it := s.suffix[i].(type) {
		case *closeMark:
			level--
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(indent, level))
		case grammar.Item:
			b.WriteString(it.String())
		}
	}
	return b.String()
}
