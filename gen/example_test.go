package gen_test

import (
	"fmt"
	"math/rand"

	"github.com/gramforge/gramforge/gen"
	"github.com/gramforge/gramforge/grammar"
)

// Generate a few sentences of S ::= "a" S "b" | "c" under a small budget.
func ExampleSentence() {
	g := grammar.New()
	s := g.Symbol("S")
	if err := g.AddProduction(s, g.Seq(g.Literal("a"), s, g.Literal("b"))); err != nil {
		panic(err)
	}
	if err := g.AddProduction(s, g.Literal("c")); err != nil {
		panic(err)
	}
	if err := g.Finalize(); err != nil {
		panic(err)
	}

	text, err := gen.Sentence(g, gen.WithBudget(0))
	if err != nil {
		panic(err)
	}
	fmt.Println(text)
	// Output:
	// c
}

// Drive the engine step by step instead of using the Sentence driver.
func ExampleState() {
	g := grammar.New()
	s := g.Symbol("S")
	if err := g.AddProduction(s, g.Seq(g.Literal("a"), s, g.Literal("b"))); err != nil {
		panic(err)
	}
	if err := g.AddProduction(s, g.Literal("c")); err != nil {
		panic(err)
	}
	if err := g.Finalize(); err != nil {
		panic(err)
	}

	rnd := rand.New(rand.NewSource(4))
	st, err := gen.NewState(g, 9)
	if err != nil {
		panic(err)
	}
	for st.HasMore() {
		if st.IsTerminal() {
			st.Shift()
			continue
		}
		choices := st.Choices()
		if err := st.Expand(choices[rnd.Intn(len(choices))]); err != nil {
			panic(err)
		}
	}
	fmt.Println(st.Used()+st.Margin() == st.Budget())
	// Output:
	// true
}
