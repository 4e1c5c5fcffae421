// Package fuzztests houses Go fuzz harnesses that drive arbitrary bytes
// through the lexer, the parser and the code generator. They guard against
// panics, hangs and malformed instruction streams on hostile input.
package fuzztests
