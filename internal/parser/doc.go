// Package parser is a recursive-descent front end for .ez sources.
//
// It does not build a syntax tree for the whole file. Declarations go
// straight into a symbols.Env and every expression statement is turned into
// an expr tree and lowered through tac.Generator before the next statement is
// read, so instructions come out in source order.
//
// Syntax and semantic problems are reported through diag.Reporter and the
// parser resynchronizes at the next ';' or '}'. Only a failing emission sink
// stops parsing; ParseFile then returns that error.
package parser
