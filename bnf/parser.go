package bnf

import (
	"errors"
	"fmt"
	"io"

	"github.com/gramforge/gramforge/grammar"
)

// Sentinel errors for the BNF reader.
var (
	// ErrSyntax indicates malformed grammar source; the wrapped message
	// carries the line:column position.
	ErrSyntax = errors.New("bnf: syntax error")

	// ErrRead indicates the source reader failed.
	ErrRead = errors.New("bnf: cannot read grammar source")
)

// Parse reads a BNF grammar definition from r and returns the (not yet
// finalized) grammar. Construction options such as grammar.WithByteCost
// are forwarded to grammar.New.
func Parse(r io.Reader, opts ...grammar.Option) (*grammar.Grammar, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return ParseString(string(src), opts...)
}

// ParseString is Parse over an in-memory string.
func ParseString(src string, opts ...grammar.Option) (*grammar.Grammar, error) {
	p := &parser{lex: newLexer(src), g: grammar.New(opts...)}
	p.advance()
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.g, nil
}

// MustGrammar parses and finalizes src in one step, panicking on any
// error. Intended for tests and fixed grammars baked into programs.
func MustGrammar(src string, opts ...grammar.Option) *grammar.Grammar {
	g, err := ParseString(src, opts...)
	if err != nil {
		panic(err)
	}
	if err := g.Finalize(); err != nil {
		panic(err)
	}
	return g
}

// parser is a recursive-descent parser with one token of lookahead.
// The first error (lexical, syntactic, or from grammar construction)
// wins; everything after it bails out.
type parser struct {
	lex *lexer
	tok token
	g   *grammar.Grammar
	err error
}

func (p *parser) advance() {
	if p.err != nil {
		return
	}
	p.tok, p.err = p.lex.next()
}

// expect consumes a token of the given kind or records a syntax error.
func (p *parser) expect(kind tokenKind) token {
	tok := p.tok
	if p.err != nil {
		return tok
	}
	if tok.kind != kind {
		p.fail("expected %s, saw %s", kind, tok.kind)
		return tok
	}
	p.advance()
	return tok
}

func (p *parser) fail(format string, args ...any) {
	if p.err != nil {
		return
	}
	p.err = fmt.Errorf("%w at %d:%d: %s",
		ErrSyntax, p.tok.line, p.tok.col, fmt.Sprintf(format, args...))
}

// parse handles: grammar ::= { statement } EOF.
func (p *parser) parse() error {
	for p.err == nil && p.tok.kind == tokIdent {
		p.statement()
	}
	p.expect(tokEOF)
	return p.err
}

// statement handles: IDENT ('::=' rhs | ':::' '[' IDENT {',' IDENT} ']') ';'.
func (p *parser) statement() {
	name := p.expect(tokIdent).text
	switch p.tok.kind {
	case tokProd:
		p.advance()
		rhs := p.rhs()
		if p.err == nil {
			if err := p.g.AddProduction(p.g.Symbol(name), rhs); err != nil {
				p.err = err
			}
		}
	case tokMerge:
		p.advance()
		names := p.mergeList()
		if p.err == nil {
			// Merges are symmetric; the statement's subject joins the list.
			if err := p.g.MergeSymbols(append(names, name)); err != nil {
				p.err = err
			}
		}
	default:
		p.fail("expected '::=' or ':::' after %s", name)
		return
	}
	p.expect(tokSemi)
}

// mergeList handles: '[' IDENT { ',' IDENT } ']'.
func (p *parser) mergeList() []string {
	p.expect(tokLBrack)
	var names []string
	names = append(names, p.expect(tokIdent).text)
	for p.err == nil && p.tok.kind == tokComma {
		p.advance()
		names = append(names, p.expect(tokIdent).text)
	}
	p.expect(tokRBrack)
	return names
}

// rhs handles: seq { '|' seq }. A single alternative stays unwrapped.
func (p *parser) rhs() grammar.Item {
	first := p.seq()
	if p.err != nil || p.tok.kind != tokPipe {
		return first
	}
	choice := p.g.Choice(first)
	for p.err == nil && p.tok.kind == tokPipe {
		p.advance()
		choice.Append(p.seq())
	}
	return choice
}

// seq handles: { primary }. No leading primary means the empty sequence;
// a single primary stays unwrapped.
func (p *parser) seq() grammar.Item {
	if !p.startsSymbol() {
		return p.g.Seq()
	}
	first := p.primary()
	if p.err != nil || !p.startsSymbol() {
		return first
	}
	seq := p.g.Seq(first)
	for p.err == nil && p.startsSymbol() {
		seq.Append(p.primary())
	}
	return seq
}

// startsSymbol reports whether the current token can begin a primary.
func (p *parser) startsSymbol() bool {
	switch p.tok.kind {
	case tokIdent, tokString, tokLParen:
		return true
	}
	return false
}

// primary handles: symbol [ '*' ].
func (p *parser) primary() grammar.Item {
	item := p.symbol()
	if p.err == nil && p.tok.kind == tokStar {
		p.advance()
		return p.g.Kleene(item)
	}
	return item
}

// symbol handles: IDENT | STRING | '(' rhs ')'.
func (p *parser) symbol() grammar.Item {
	switch p.tok.kind {
	case tokLParen:
		p.advance()
		inner := p.rhs()
		p.expect(tokRParen)
		return inner
	case tokString:
		lit := p.g.Literal(p.tok.text)
		p.advance()
		return lit
	case tokIdent:
		sym := p.g.Symbol(p.tok.text)
		p.advance()
		return sym
	}
	p.fail("expected identifier, string, or group, saw %s", p.tok.kind)
	return p.g.Seq()
}
