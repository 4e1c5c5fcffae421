package buildpipeline

import "time"

// Stage describes a high-level pipeline phase.
type Stage string

const (
	// StageCompile covers lexing, parsing and lowering of one unit.
	StageCompile Stage = "compile"
	// StageWrite stores the emitted instructions.
	StageWrite Stage = "write"
	// StageBuild is the whole build; used for events without a file.
	StageBuild Stage = "build"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusCached  Status = "cached"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for a file (or for the overall build when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. OnEvent may be called from
// several goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// Emit forwards evt to sink unless sink is nil.
func Emit(sink ProgressSink, evt Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(evt)
}

// EmitQueued marks every file as queued for compilation.
func EmitQueued(sink ProgressSink, files []string) {
	for _, file := range files {
		Emit(sink, Event{File: file, Stage: StageCompile, Status: StatusQueued})
	}
}
