// Package lexer turns .ez source bytes into token.Token values.
//
// Whitespace and // comments are skipped. Identifiers are NFC-normalized so
// that visually identical names resolve to the same symbol. Problems are
// reported through diag.Reporter and scanning always continues; after EOF the
// lexer keeps returning EOF.
package lexer
