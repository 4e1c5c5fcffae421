// Package trace is the event log of the ezc pipeline.
//
// Tracing is off unless requested on the command line:
//
//	ezc build --trace=- --trace-level=detail src/
//
// Tracer implementations:
//
//   - Nop: disabled tracing, no overhead beyond an interface call
//   - StreamTracer: writes every event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events for a dump after a failure
//   - MultiTracer: fans out to several tracers
//
// Levels select which scopes are written:
//
//   - LevelPhase: driver and pass boundaries
//   - LevelDetail: plus one span per compilation unit
//   - LevelDebug: plus one event per emitted instruction
//
// Tracers travel through the pipeline inside a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace
