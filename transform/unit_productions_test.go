package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gramforge/gramforge/grammar"
	"github.com/gramforge/gramforge/transform"
)

func TestUnitProductions_SubstitutesChainTarget(t *testing.T) {
	g := grammar.New()
	s := g.Symbol("S")
	a := g.Symbol("A")
	b := g.Symbol("B")
	require.NoError(t, g.AddProduction(s, g.Seq(a, g.Literal("x"))))
	require.NoError(t, g.AddProduction(a, b))
	require.NoError(t, g.AddProduction(b, g.Literal("b1")))
	require.NoError(t, g.AddProduction(b, g.Literal("b2")))
	require.NoError(t, g.Finalize())

	require.NoError(t, transform.Run(g, transform.NewUnitProductions()))

	assert.Equal(t, `B "x"`, s.Expansion().String())
	orphans, err := g.Unreachable()
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, orphans)
}

func TestUnitProductions_FollowsChains(t *testing.T) {
	g := grammar.New()
	s := g.Symbol("S")
	a := g.Symbol("A")
	b := g.Symbol("B")
	c := g.Symbol("C")
	require.NoError(t, g.AddProduction(s, g.Seq(a, b)))
	require.NoError(t, g.AddProduction(a, b))
	require.NoError(t, g.AddProduction(b, c))
	require.NoError(t, g.AddProduction(c, g.Literal("c")))
	require.NoError(t, g.Finalize())

	require.NoError(t, transform.Run(g, transform.NewUnitProductions()))

	assert.Equal(t, "C C", s.Expansion().String())
	orphans, err := g.Unreachable()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, orphans)

	removed, err := g.PruneUnreachable()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, removed)
	assert.Equal(t, []string{"S", "C"}, symbolNames(g.Symbols()))
}

func TestUnitProductions_KeepsBounds(t *testing.T) {
	g := grammar.New()
	s := g.Symbol("S")
	a := g.Symbol("A")
	require.NoError(t, g.AddProduction(s, g.Seq(a, a)))
	require.NoError(t, g.AddProduction(a, g.Symbol("B")))
	require.NoError(t, g.AddProduction(g.Symbol("B"), g.Literal("b")))
	require.NoError(t, g.Finalize())
	before := grammar.MinTokens(s)

	require.NoError(t, transform.Run(g, transform.NewUnitProductions()))

	assert.Equal(t, before, grammar.MinTokens(s))
}

func TestUnitProductions_NoUnitsIsNoOp(t *testing.T) {
	g := grammar.New()
	s := g.Symbol("S")
	require.NoError(t, g.AddProduction(s, g.Literal("a")))
	require.NoError(t, g.AddProduction(s, g.Seq(g.Literal("b"), s)))
	require.NoError(t, g.Finalize())
	before := s.Expansion().String()

	require.NoError(t, transform.Run(g, transform.NewUnitProductions()))

	assert.Equal(t, before, s.Expansion().String())
}

func symbolNames(syms []*grammar.Symbol) []string {
	names := make([]string, len(syms))
	for i, sym := range syms {
		names[i] = sym.Name()
	}
	return names
}
