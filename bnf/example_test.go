package bnf_test

import (
	"fmt"
	"os"

	"github.com/gramforge/gramforge/bnf"
	"github.com/gramforge/gramforge/grammar"
)

func ExampleMustGrammar() {
	g := bnf.MustGrammar(`
		# balanced a/b pairs around a core
		S ::= "a" S "b" | "c" ;
	`)
	if err := g.Dump(os.Stdout); err != nil {
		panic(err)
	}
	// Output:
	// # S, min length 1
	// S ::= ("a" S "b" | "c")
}

func ExampleParseString() {
	g, err := bnf.ParseString(`
		Word ::= Letter Letter* ;
		Letter ::= "x" | "y" ;
	`)
	if err != nil {
		panic(err)
	}
	if err := g.Finalize(); err != nil {
		panic(err)
	}
	word, _ := g.Lookup("Word")
	fmt.Println(grammar.MinTokens(word))
	// Output:
	// 1
}
