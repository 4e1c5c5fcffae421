// Package token defines lexical token kinds for ez sources.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Built-in type names (i32, i64, f32, f64, char, bool, string) are
//     identifiers. The parser recognizes them, not the lexer.
package token
