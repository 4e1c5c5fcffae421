// Package diagfmt renders diagnostics and token streams for the CLI.
//
// Pretty output is meant for terminals (optional color, source excerpt with
// a caret underline); JSON output is stable and meant for tools.
package diagfmt
