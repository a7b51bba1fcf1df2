package grammar_test

import (
	"fmt"
	"os"

	"github.com/gramforge/gramforge/grammar"
)

// ExampleGrammar builds S ::= "a" S "b" | "c" by hand, finalizes it, and
// dumps the annotated productions.
func ExampleGrammar() {
	g := grammar.New()
	s := g.Symbol("S")
	if err := g.AddProduction(s, g.Seq(g.Literal("a"), s, g.Literal("b"))); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := g.AddProduction(s, g.Literal("c")); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := g.Finalize(); err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = g.Dump(os.Stdout)
	fmt.Println("min:", grammar.MinTokens(s))
	// Output:
	// # S, min length 1
	// S ::= ("a" S "b" | "c")
	//
	// min: 1
}

// ExampleMinTokens shows the structural rules: sequences add, choices
// take the cheapest branch, repetitions may run zero times.
func ExampleMinTokens() {
	g := grammar.New()
	a, b := g.Literal("a"), g.Literal("b")

	fmt.Println(grammar.MinTokens(g.Seq(a, b)))
	fmt.Println(grammar.MinTokens(g.Choice(g.Seq(a, b), a)))
	fmt.Println(grammar.MinTokens(g.Kleene(a)))
	// Output:
	// 2
	// 1
	// 0
}
