// Package diag defines the diagnostic model shared by the lexer, parser and
// driver.
//
// Producers report through a Reporter and never format anything themselves.
// A Bag collects diagnostics with a configurable limit, and internal/diagfmt
// renders them for humans or machines.
//
// Codes are grouped by phase: LEX1xxx for the lexer, SYN2xxx for the parser,
// SEM3xxx for name resolution and typing, IO4xxx for file access and PRJ5xxx
// for ez.toml problems.
package diag
