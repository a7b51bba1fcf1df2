package bnf

import "fmt"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString // quotes clipped, escapes kept verbatim
	tokProd   // ::=
	tokMerge  // :::
	tokPipe   // |
	tokStar   // *
	tokLParen // (
	tokRParen // )
	tokLBrack // [
	tokRBrack // ]
	tokComma  // ,
	tokSemi   // ;
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokIdent:
		return "identifier"
	case tokString:
		return "string"
	case tokProd:
		return "'::='"
	case tokMerge:
		return "':::'"
	case tokPipe:
		return "'|'"
	case tokStar:
		return "'*'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokLBrack:
		return "'['"
	case tokRBrack:
		return "']'"
	case tokComma:
		return "','"
	case tokSemi:
		return "';'"
	}
	return "unknown token"
}

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

// lexer produces tokens from BNF source. Errors are reported through the
// parser's error slot rather than error tokens: next returns the error
// alongside the token.
type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

func (l *lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

// skipSpace consumes whitespace and '#' comments.
func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.advance()
		case '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}

// next returns the next token, or a syntax error with position context.
func (l *lexer) next() (token, error) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, line: l.line, col: l.col}, nil
	}

	tok := token{line: l.line, col: l.col}
	ch := l.src[l.pos]
	switch {
	case ch == '|':
		l.advance()
		tok.kind = tokPipe
	case ch == '*':
		l.advance()
		tok.kind = tokStar
	case ch == '(':
		l.advance()
		tok.kind = tokLParen
	case ch == ')':
		l.advance()
		tok.kind = tokRParen
	case ch == '[':
		l.advance()
		tok.kind = tokLBrack
	case ch == ']':
		l.advance()
		tok.kind = tokRBrack
	case ch == ',':
		l.advance()
		tok.kind = tokComma
	case ch == ';':
		l.advance()
		tok.kind = tokSemi
	case ch == ':':
		return l.colonOp(tok)
	case ch == '"' || ch == '\'':
		return l.str(tok)
	case ch == '<':
		return l.angleIdent(tok)
	case isIdentStart(ch):
		start := l.pos
		for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
			l.advance()
		}
		tok.kind = tokIdent
		tok.text = l.src[start:l.pos]
	default:
		return tok, fmt.Errorf("%w at %d:%d: unexpected character %q",
			ErrSyntax, tok.line, tok.col, rune(ch))
	}
	return tok, nil
}

// colonOp lexes '::=' or ':::'.
func (l *lexer) colonOp(tok token) (token, error) {
	colons := 0
	for l.pos < len(l.src) && l.src[l.pos] == ':' {
		l.advance()
		colons++
	}
	switch {
	case colons == 3:
		tok.kind = tokMerge
		return tok, nil
	case colons == 2 && l.pos < len(l.src) && l.src[l.pos] == '=':
		l.advance()
		tok.kind = tokProd
		return tok, nil
	}
	return tok, fmt.Errorf("%w at %d:%d: expected '::=' or ':::'",
		ErrSyntax, tok.line, tok.col)
}

// str lexes a quoted string. The quotes are clipped; backslash escapes
// are kept verbatim (the following character is consumed blindly, so an
// escaped closing quote does not end the string).
func (l *lexer) str(tok token) (token, error) {
	quote := l.advance()
	start := l.pos
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		if ch == '\n' {
			break
		}
		if ch == quote {
			tok.kind = tokString
			tok.text = l.src[start:l.pos]
			l.advance()
			return tok, nil
		}
		l.advance()
		if ch == '\\' && l.pos < len(l.src) {
			l.advance()
		}
	}
	return tok, fmt.Errorf("%w at %d:%d: unterminated string",
		ErrSyntax, tok.line, tok.col)
}

// angleIdent lexes a Glade-style identifier like <Rep_4361187736>; the
// angle brackets stay part of the name.
func (l *lexer) angleIdent(tok token) (token, error) {
	start := l.pos
	l.advance()
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		if ch == '\n' {
			break
		}
		l.advance()
		if ch == '>' {
			tok.kind = tokIdent
			tok.text = l.src[start:l.pos]
			return tok, nil
		}
	}
	return tok, fmt.Errorf("%w at %d:%d: unterminated '<' identifier",
		ErrSyntax, tok.line, tok.col)
}
