// Package driver runs the ezc pipeline over files and directories.
//
// Every compilation unit (one .ez file) gets its own tac.IDs, emission
// Recorder, symbols.Env and diag.Bag, so units can be compiled in parallel
// and each one numbers its temporaries from __t0. The only shared state is
// the read-only FileSet, the tracer and the disk cache.
package driver
