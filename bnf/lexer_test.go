package bnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []token {
	t.Helper()
	l := newLexer(src)
	var toks []token
	for {
		tok, err := l.next()
		require.NoError(t, err)
		if tok.kind == tokEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func kinds(toks []token) []tokenKind {
	out := make([]tokenKind, len(toks))
	for i, tok := range toks {
		out[i] = tok.kind
	}
	return out
}

func TestLexer_Punctuation(t *testing.T) {
	toks := lexAll(t, "| * ( ) [ ] , ; ::= :::")
	assert.Equal(t, []tokenKind{
		tokPipe, tokStar, tokLParen, tokRParen,
		tokLBrack, tokRBrack, tokComma, tokSemi,
		tokProd, tokMerge,
	}, kinds(toks))
}

func TestLexer_Identifiers(t *testing.T) {
	toks := lexAll(t, "Expr _x a1b2 <Rep_4361187736>")
	require.Len(t, toks, 4)
	for _, tok := range toks {
		assert.Equal(t, tokIdent, tok.kind)
	}
	assert.Equal(t, "Expr", toks[0].text)
	assert.Equal(t, "_x", toks[1].text)
	assert.Equal(t, "a1b2", toks[2].text)
	assert.Equal(t, "<Rep_4361187736>", toks[3].text, "angle brackets stay in the name")
}

func TestLexer_Strings(t *testing.T) {
	toks := lexAll(t, `"double" 'single' "with \" escaped" 'a\nb' ""`)
	require.Len(t, toks, 5)
	assert.Equal(t, "double", toks[0].text)
	assert.Equal(t, "single", toks[1].text)
	assert.Equal(t, `with \" escaped`, toks[2].text, "escapes are kept verbatim")
	assert.Equal(t, `a\nb`, toks[3].text)
	assert.Equal(t, "", toks[4].text)
}

func TestLexer_Comments(t *testing.T) {
	toks := lexAll(t, "A # trailing comment\n# full line\nB")
	require.Len(t, toks, 2)
	assert.Equal(t, "A", toks[0].text)
	assert.Equal(t, "B", toks[1].text)
}

func TestLexer_Positions(t *testing.T) {
	toks := lexAll(t, "A ::= B ;\nC ::= D ;")
	require.Len(t, toks, 8)
	assert.Equal(t, 1, toks[0].line)
	assert.Equal(t, 1, toks[0].col)
	assert.Equal(t, 1, toks[1].line)
	assert.Equal(t, 3, toks[1].col)
	assert.Equal(t, 2, toks[4].line)
	assert.Equal(t, 1, toks[4].col)
}

func TestLexer_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"unexpected character", "A ::= @", "unexpected character"},
		{"lone colon", "A : B", "expected '::=' or ':::'"},
		{"two colons without equals", "A :: B", "expected '::=' or ':::'"},
		{"unterminated string", `A ::= "open`, "unterminated string"},
		{"string broken by newline", "A ::= \"open\nB", "unterminated string"},
		{"unterminated angle identifier", "A ::= <Rep", "unterminated '<'"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := newLexer(tc.src)
			var err error
			for i := 0; i < 20 && err == nil; i++ {
				var tok token
				tok, err = l.next()
				if tok.kind == tokEOF {
					break
				}
			}
			require.ErrorIs(t, err, ErrSyntax)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestTokenKind_String(t *testing.T) {
	assert.Equal(t, "'::='", tokProd.String())
	assert.Equal(t, "identifier", tokIdent.String())
	assert.Equal(t, "end of input", tokEOF.String())
}
