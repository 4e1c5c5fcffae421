package driver

import (
	"context"
	"fmt"
	"strconv"

	"fortio.org/safecast"

	"ezc/internal/diag"
	"ezc/internal/lexer"
	"ezc/internal/observ"
	"ezc/internal/parser"
	"ezc/internal/project"
	"ezc/internal/source"
	"ezc/internal/tac"
	"ezc/internal/trace"
)

type CompileOptions struct {
	MaxDiagnostics int
	Cache          *DiskCache // nil disables caching
}

// CompileResult is the outcome of one compilation unit.
type CompileResult struct {
	Path    string
	FileSet *source.FileSet
	File    *source.File
	Lines   []string // emitted text, one entry per line
	Bag     *diag.Bag
	Parse   parser.Result
	Temps   uint64
	Labels  uint64
	Timer   *observ.Timer
	Cached  bool
}

// Failed reports whether the unit produced error diagnostics.
func (r *CompileResult) Failed() bool {
	return r.Bag != nil && r.Bag.HasErrors()
}

// Compile loads path and lowers it to three-address code.
func Compile(ctx context.Context, path string, opts CompileOptions) (*CompileResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return compileFile(ctx, fs, fs.Get(id), opts, 0)
}

// compileFile runs lex, parse and lower over one loaded file. The error is
// non-nil only when emission itself failed.
func compileFile(ctx context.Context, fs *source.FileSet, file *source.File, opts CompileOptions, parent uint64) (*CompileResult, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeUnit, "unit", parent).WithExtra("path", file.Path)

	res := &CompileResult{
		Path:    file.Path,
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
		Timer:   observ.NewTimer(),
	}

	key := cacheKey(file)
	if hit := lookupCache(opts.Cache, key, file.Path, res); hit {
		span.End("cache hit")
		return res, nil
	}

	phase := res.Timer.Begin("lex+parse+lower")
	rec := tac.NewRecorder()
	gen := tac.NewGenerator(rec, tac.NewIDs()).WithTracer(tracer)
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: res.Bag})
	maxErrors, err := safecast.Conv[uint](max(opts.MaxDiagnostics, 0))
	if err != nil {
		return nil, fmt.Errorf("max diagnostics: %w", err)
	}

	lx := lexer.New(file, lexer.Options{Reporter: rep})
	pres, err := parser.ParseFile(lx, gen, parser.Options{
		MaxErrors: maxErrors,
		Reporter:  rep,
		Tracer:    tracer,
	})
	res.Timer.End(phase, strconv.Itoa(pres.Statements)+" statements")
	if err != nil {
		span.End("emission failed")
		return nil, fmt.Errorf("%s: %w", file.Path, err)
	}

	res.Parse = pres
	res.Lines = rec.Lines()
	res.Temps = gen.IDs().Temps()
	res.Labels = gen.IDs().Labels()
	res.Bag.Sort()

	storeCache(ctx, opts.Cache, key, res)
	span.WithExtra("temps", strconv.FormatUint(res.Temps, 10)).
		WithExtra("diagnostics", strconv.Itoa(res.Bag.Len())).
		End("")
	return res, nil
}

func lookupCache(cache *DiskCache, key project.Digest, path string, res *CompileResult) bool {
	if cache == nil {
		return false
	}
	var payload DiskPayload
	ok, err := cache.Get(key, &payload)
	if err != nil || !ok || !payload.usable(path) {
		return false
	}
	res.Lines = payload.Lines
	res.Temps = payload.Temps
	res.Labels = payload.Labels
	res.Parse = parser.Result{
		Declarations: payload.Declarations,
		Statements:   payload.Statements,
		MaxFrame:     payload.MaxFrame,
	}
	res.Cached = true
	return true
}

func storeCache(ctx context.Context, cache *DiskCache, key project.Digest, res *CompileResult) {
	if cache == nil {
		return
	}
	payload := newDiskPayload(res)
	if err := cache.Put(key, payload); err != nil {
		// a cache miss next time is harmless
		trace.Point(trace.FromContext(ctx), trace.ScopeUnit, "cache_put_failed", err.Error())
	}
}
