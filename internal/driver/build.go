package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"ezc/internal/buildpipeline"
	"ezc/internal/diag"
	"ezc/internal/source"
	"ezc/internal/trace"
)

// SourceExt is the extension of compilable files.
const SourceExt = ".ez"

type BuildOptions struct {
	CompileOptions
	Jobs     int    // 0 means GOMAXPROCS
	OutDir   string // "" skips writing .tac files
	Progress buildpipeline.ProgressSink
}

// BuildResult holds one CompileResult per input, in input order.
type BuildResult struct {
	FileSet *source.FileSet
	Units   []*CompileResult
	Written []string // .tac files produced
}

// Failed reports whether any unit produced error diagnostics.
func (r *BuildResult) Failed() bool {
	for _, u := range r.Units {
		if u.Failed() {
			return true
		}
	}
	return false
}

// ListSources returns every *.ez file under dir, sorted.
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// BuildDir compiles every source under dir.
func BuildDir(ctx context.Context, dir string, opts BuildOptions) (*BuildResult, error) {
	files, err := ListSources(dir)
	if err != nil {
		return nil, err
	}
	return BuildFiles(ctx, dir, files, opts)
}

// BuildFiles compiles files in parallel. baseDir anchors display paths and
// the layout of OutDir. A returned error means the build itself failed
// (cancellation, emission or output write); source problems only show up
// in the units' bags.
func BuildFiles(ctx context.Context, baseDir string, files []string, opts BuildOptions) (*BuildResult, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "build", 0).
		WithExtra("files", strconv.Itoa(len(files)))
	start := time.Now()

	fileSet := source.NewFileSetWithBase(baseDir)
	result := &BuildResult{
		FileSet: fileSet,
		Units:   make([]*CompileResult, len(files)),
	}
	buildpipeline.EmitQueued(opts.Progress, files)
	buildpipeline.Emit(opts.Progress, buildpipeline.Event{Stage: buildpipeline.StageBuild, Status: buildpipeline.StatusWorking})

	// files are loaded up front so workers only read the FileSet; an
	// unreadable file is kept as an empty placeholder to anchor its diagnostic
	loaded := make([]*source.File, len(files))
	loadErrs := make([]error, len(files))
	for i, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrs[i] = err
			id = fileSet.AddVirtual(path, nil)
		}
		loaded[i] = fileSet.Get(id)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	written := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			unitStart := time.Now()
			emit := func(stage buildpipeline.Stage, status buildpipeline.Status, err error) {
				buildpipeline.Emit(opts.Progress, buildpipeline.Event{
					File: path, Stage: stage, Status: status, Err: err, Elapsed: time.Since(unitStart),
				})
			}

			if loadErrs[i] != nil {
				result.Units[i] = loadFailure(fileSet, loaded[i], opts.MaxDiagnostics, loadErrs[i])
				emit(buildpipeline.StageCompile, buildpipeline.StatusError, loadErrs[i])
				return nil
			}

			emit(buildpipeline.StageCompile, buildpipeline.StatusWorking, nil)
			unit, err := compileFile(gctx, fileSet, loaded[i], opts.CompileOptions, span.ID())
			if err != nil {
				emit(buildpipeline.StageCompile, buildpipeline.StatusError, err)
				return err
			}
			result.Units[i] = unit
			if unit.Failed() {
				emit(buildpipeline.StageCompile, buildpipeline.StatusError, nil)
				return nil
			}

			if opts.OutDir != "" {
				emit(buildpipeline.StageWrite, buildpipeline.StatusWorking, nil)
				out := OutputPath(baseDir, opts.OutDir, path)
				if err := WriteTAC(out, unit.Lines); err != nil {
					emit(buildpipeline.StageWrite, buildpipeline.StatusError, err)
					return err
				}
				written[i] = out
			}
			if unit.Cached {
				emit(buildpipeline.StageCompile, buildpipeline.StatusCached, nil)
			} else {
				emit(buildpipeline.StageCompile, buildpipeline.StatusDone, nil)
			}
			return nil
		})
	}

	err := g.Wait()
	for _, w := range written {
		if w != "" {
			result.Written = append(result.Written, w)
		}
	}
	status := buildpipeline.StatusDone
	if err != nil || result.Failed() {
		status = buildpipeline.StatusError
	}
	buildpipeline.Emit(opts.Progress, buildpipeline.Event{
		Stage: buildpipeline.StageBuild, Status: status, Err: err, Elapsed: time.Since(start),
	})
	span.End(string(status))
	return result, err
}

func loadFailure(fileSet *source.FileSet, file *source.File, maxDiagnostics int, err error) *CompileResult {
	bag := diag.NewBag(maxDiagnostics)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFileError,
		Message:  fmt.Sprintf("failed to load file: %v", err),
		Primary:  source.Span{File: file.ID},
	})
	return &CompileResult{Path: file.Path, FileSet: fileSet, File: file, Bag: bag}
}
