package gen_test

import (
	"math/rand"
	"testing"

	"github.com/gramforge/gramforge/bias"
	"github.com/gramforge/gramforge/gen"
	"github.com/gramforge/gramforge/grammar"
)

func benchGrammar(b *testing.B) *grammar.Grammar {
	b.Helper()
	g := grammar.New()
	s := g.Symbol("S")
	if err := g.AddProduction(s, g.Seq(g.Literal("a"), s, g.Literal("b"))); err != nil {
		b.Fatal(err)
	}
	if err := g.AddProduction(s, g.Literal("c")); err != nil {
		b.Fatal(err)
	}
	if err := g.Finalize(); err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkSentence(b *testing.B) {
	g := benchGrammar(b)
	rnd := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gen.Sentence(g, gen.WithBudget(100), gen.WithRand(rnd)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSentenceBiased(b *testing.B) {
	g := benchGrammar(b)
	root := bias.New(bias.WithRand(rand.New(rand.NewSource(1))))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		episode := root.Fork()
		if _, err := gen.Sentence(g, gen.WithBudget(100), gen.WithBias(episode)); err != nil {
			b.Fatal(err)
		}
		episode.Reward()
	}
}
