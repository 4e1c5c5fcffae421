package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ezc/internal/buildpipeline"
	"ezc/internal/diag"
	"ezc/internal/token"
)

const productOfSum = "let a: i32; let b: i32; let c: i32; (a + b) * c;\n"

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func wantLines(t *testing.T, got []string, want ...string) {
	t.Helper()
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("want lines %q, got %q", want, got)
	}
}

func TestCompileLowersStatements(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.ez", productOfSum)

	res, err := Compile(context.Background(), path, CompileOptions{MaxDiagnostics: 10})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if res.Failed() || res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", res.Bag.Len())
	}
	wantLines(t, res.Lines, "\tadd __t0 a b", "\tmul __t1 __t0 c")
	if res.Temps != 2 || res.Labels != 0 {
		t.Fatalf("want 2 temps and no labels, got %d/%d", res.Temps, res.Labels)
	}
	if res.Parse.Declarations != 3 || res.Parse.Statements != 1 {
		t.Fatalf("unexpected parse result %+v", res.Parse)
	}
	if res.Cached {
		t.Fatal("compile without a cache must not report a hit")
	}
}

func TestCompileMissingFile(t *testing.T) {
	_, err := Compile(context.Background(), filepath.Join(t.TempDir(), "nope.ez"), CompileOptions{})
	if err == nil {
		t.Fatal("expected a load error")
	}
}

func TestCompileReportsDiagnostics(t *testing.T) {
	path := writeSource(t, t.TempDir(), "bad.ez", "let a: i32; a + b;\n")

	res, err := Compile(context.Background(), path, CompileOptions{MaxDiagnostics: 10})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !res.Failed() {
		t.Fatal("undeclared identifier must fail the unit")
	}
	if got := res.Bag.Items()[0].Code; got != diag.SemaUndeclared {
		t.Fatalf("want %s, got %s", diag.SemaUndeclared.ID(), got.ID())
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	key := [32]byte{1, 2, 3}
	in := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   "a.ez",
		Lines:  []string{"\tadd __t0 a b"},
		Temps:  1,
	}
	if err := cache.Put(key, in); err != nil {
		t.Fatalf("put: %v", err)
	}
	var out DiskPayload
	ok, err := cache.Get(key, &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if out.Path != in.Path || out.Temps != 1 || len(out.Lines) != 1 || out.Lines[0] != in.Lines[0] {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if !out.usable("a.ez") || out.usable("b.ez") {
		t.Fatal("payload must be usable for its own path only")
	}

	if err := cache.DropAll(); err != nil {
		t.Fatalf("drop: %v", err)
	}
	ok, err = cache.Get(key, &out)
	if err != nil || ok {
		t.Fatalf("entry must be gone after DropAll: ok=%v err=%v", ok, err)
	}
}

func TestCompileServesCleanUnitsFromCache(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "main.ez", productOfSum)
	cache, err := NewDiskCache(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	opts := CompileOptions{MaxDiagnostics: 10, Cache: cache}

	first, err := Compile(context.Background(), path, opts)
	if err != nil {
		t.Fatalf("first compile: %v", err)
	}
	second, err := Compile(context.Background(), path, opts)
	if err != nil {
		t.Fatalf("second compile: %v", err)
	}
	if first.Cached || !second.Cached {
		t.Fatalf("want miss then hit, got %v then %v", first.Cached, second.Cached)
	}
	wantLines(t, second.Lines, first.Lines...)
	if second.Temps != first.Temps || second.Parse != first.Parse {
		t.Fatalf("cached result differs: %+v vs %+v", second.Parse, first.Parse)
	}
}

func TestCompileNeverServesBrokenUnits(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "warn.ez", "let a: i32; let a: i32; a;\n")
	cache, err := NewDiskCache(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	opts := CompileOptions{MaxDiagnostics: 10, Cache: cache}

	for i := 0; i < 2; i++ {
		res, err := Compile(context.Background(), path, opts)
		if err != nil {
			t.Fatalf("compile %d: %v", i, err)
		}
		if res.Cached {
			t.Fatalf("compile %d: unit with diagnostics served from cache", i)
		}
		if !res.Bag.HasWarnings() {
			t.Fatalf("compile %d: redeclaration warning must be reported every time", i)
		}
	}
}

func TestBuildFilesNumbersTemporariesPerUnit(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeSource(t, dir, "a.ez", productOfSum),
		writeSource(t, dir, "b.ez", "let x: f64; let y: i32; x * y;\n"),
	}
	sink := &buildpipeline.RecordingSink{}

	res, err := BuildFiles(context.Background(), dir, files, BuildOptions{
		CompileOptions: CompileOptions{MaxDiagnostics: 10},
		Jobs:           2,
		Progress:       sink,
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if res.Failed() {
		t.Fatal("build must succeed")
	}
	wantLines(t, res.Units[0].Lines, "\tadd __t0 a b", "\tmul __t1 __t0 c")
	wantLines(t, res.Units[1].Lines, "\tmul __t0 x y")
	if len(res.Written) != 0 {
		t.Fatalf("no output dir means nothing written, got %v", res.Written)
	}

	events := sink.Events()
	if len(events) == 0 || events[len(events)-1].Stage != buildpipeline.StageBuild ||
		events[len(events)-1].Status != buildpipeline.StatusDone {
		t.Fatalf("last event must close the build, got %+v", events)
	}
	done := 0
	for _, ev := range events {
		if ev.Stage == buildpipeline.StageCompile && ev.Status == buildpipeline.StatusDone {
			done++
		}
	}
	if done != len(files) {
		t.Fatalf("want %d done events, got %d", len(files), done)
	}
}

func TestBuildDirWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	writeSource(t, src, "main.ez", productOfSum)
	writeSource(t, src, "nested/more.ez", "let v: [4]i32; v[1];\n")
	writeSource(t, src, "broken.ez", "x;\n")
	writeSource(t, src, "notes.txt", "ignored")
	out := filepath.Join(dir, "build")

	res, err := BuildDir(context.Background(), src, BuildOptions{
		CompileOptions: CompileOptions{MaxDiagnostics: 10},
		OutDir:         out,
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(res.Units) != 3 {
		t.Fatalf("want 3 units, got %d", len(res.Units))
	}
	if !res.Failed() {
		t.Fatal("broken.ez must fail the build")
	}

	data, err := os.ReadFile(filepath.Join(out, "main.tac"))
	if err != nil {
		t.Fatalf("read main.tac: %v", err)
	}
	if string(data) != "\tadd __t0 a b\n\tmul __t1 __t0 c\n" {
		t.Fatalf("unexpected main.tac %q", data)
	}
	if _, err := os.Stat(filepath.Join(out, "nested", "more.tac")); err != nil {
		t.Fatalf("nested output missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "broken.tac")); !os.IsNotExist(err) {
		t.Fatalf("failed unit must not be written, stat err=%v", err)
	}
	if len(res.Written) != 2 {
		t.Fatalf("want 2 written files, got %v", res.Written)
	}
}

func TestBuildFilesReportsLoadFailure(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.ez")

	res, err := BuildFiles(context.Background(), dir, []string{missing}, BuildOptions{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	unit := res.Units[0]
	if !unit.Failed() || unit.Bag.Items()[0].Code != diag.IOLoadFileError {
		t.Fatal("missing file must produce an IO diagnostic")
	}
	if unit.File == nil || unit.FileSet != res.FileSet {
		t.Fatal("load failure must be anchored to a placeholder file")
	}
}

func TestBuildFilesHonorsCancellation(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "main.ez", productOfSum)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildFiles(ctx, dir, []string{path}, BuildOptions{})
	if err == nil {
		t.Fatal("cancelled build must return an error")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		base, src, want string
	}{
		{"/p/src", "/p/src/main.ez", "/out/main.tac"},
		{"/p/src", "/p/src/a/b.ez", "/out/a/b.tac"},
		{"/p/src", "/elsewhere/c.ez", "/out/c.tac"},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.base, "/out", tt.src); filepath.ToSlash(got) != tt.want {
			t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.base, tt.src, got, tt.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	path := writeSource(t, t.TempDir(), "tok.ez", "let x: i32; x @;")

	res, err := Tokenize(path, 10)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if n := len(res.Tokens); n == 0 || res.Tokens[n-1].Kind != token.EOF {
		t.Fatal("token stream must end with EOF")
	}
	if res.Tokens[0].Kind != token.KwLet {
		t.Fatalf("first token: want let, got %v", res.Tokens[0].Kind)
	}
	if res.Bag.Len() != 1 || res.Bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("want one unknown-char diagnostic, got %d", res.Bag.Len())
	}
}
