// Package bnf reads textual BNF grammar definitions into grammar.Grammar
// values.
//
// The dialect is the one produced by Glade-style grammar learners and
// written by hand for test grammars:
//
//	grammar     ::= { statement }
//	statement   ::= production ';' | merge ';'
//	production  ::= IDENT '::=' rhs
//	merge       ::= IDENT ':::' '[' IDENT { ',' IDENT } ']'
//	rhs         ::= seq { '|' seq }
//	seq         ::= { primary }            -- empty sequence allowed
//	primary     ::= symbol [ '*' ]
//	symbol      ::= IDENT | STRING | '(' rhs ')'
//
// Identifiers are bare words or angle-bracketed names like
// <Rep_4361187736> (Glade emits those); '#' starts a comment to end of
// line. Strings are single- or double-quoted with backslash escapes kept
// verbatim — interpreting them is the generator's option, not the
// reader's. A merge statement declares that several names denote one
// symbol; merges must appear before productions for the merged names.
//
// The left-hand side of the first production becomes the start symbol.
// Parse does not finalize the returned grammar, so the caller can still
// add productions or merges; MustGrammar parses and finalizes in one step
// for the common path.
package bnf
