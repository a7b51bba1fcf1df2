package gen

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/gramforge/gramforge/grammar"
)

// Sentence generates one random sentence from the finalized grammar g.
//
// The budget (WithBudget, default 20) caps the output's token count; a
// budget below the start symbol's minimum length is silently raised to
// that minimum, since no legal sentence could fit a smaller one. Choice
// points are resolved uniformly at random unless a Chooser (or a bias
// episode, WithBias) is supplied.
//
// With WithMinLength the driver discards too-short results and re-drives
// generation, up to MaxAttempts; this retry policy lives here, not in the
// engine.
func Sentence(g *grammar.Grammar, opts ...Option) (string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return "", ErrNilGrammar
	}
	if !g.Finalized() {
		return "", grammar.ErrNotFinalized
	}

	budget := cfg.Budget
	if minStart := grammar.MinTokens(g.Start()); budget < minStart {
		glog.V(2).Infof("gen: raising budget %d to minimum requirement %d", budget, minStart)
		budget = minStart
	}

	chooser := cfg.Chooser
	if chooser == nil {
		chooser = uniformChooser{rnd: cfg.Rand}
	}

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		text, err := run(g, budget, chooser)
		if err != nil {
			return "", err
		}
		if len(text) < cfg.MinLength {
			glog.V(2).Infof("gen: discarding %d-byte result below floor %d", len(text), cfg.MinLength)
			continue
		}
		if cfg.InterpretEscapes {
			return interpretEscapes(text), nil
		}
		return text, nil
	}
	return "", fmt.Errorf("%w: floor %d after %d attempts",
		ErrMinLengthUnreachable, cfg.MinLength, cfg.MaxAttempts)
}

// run drives one episode to completion: shift terminals, otherwise let
// the chooser pick among the offered expansions.
func run(g *grammar.Grammar, budget int, chooser Chooser) (string, error) {
	state, err := NewState(g, budget)
	if err != nil {
		return "", err
	}
	for state.HasMore() {
		if state.IsTerminal() {
			state.Shift()
			continue
		}
		choices := state.Choices()
		choice := chooser.Choose(choices)
		if choice == nil {
			return "", fmt.Errorf("%w: %d candidates at %s", ErrNoChoice, len(choices), state)
		}
		if err := state.Expand(choice); err != nil {
			return "", err
		}
	}
	glog.V(2).Infof("gen: final %q, used %d + margin %d = budget %d",
		state.Text(), state.Used(), state.Margin(), state.Budget())
	return state.Text(), nil
}
