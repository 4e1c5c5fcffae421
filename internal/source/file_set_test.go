package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mem.ez", []byte("let a: i32;\na + 1;\n"))

	start, end := fs.Resolve(Span{File: id, Start: 12, End: 13})
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("unexpected start %+v", start)
	}
	if end.Line != 2 || end.Col != 2 {
		t.Fatalf("unexpected end %+v", end)
	}

	first, _ := fs.Resolve(Span{File: id, Start: 4, End: 5})
	if first.Line != 1 || first.Col != 5 {
		t.Fatalf("unexpected first-line position %+v", first)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mem.ez", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	cases := map[uint32]string{0: "", 1: "one", 2: "two", 3: "three", 4: ""}
	for n, want := range cases {
		if got := f.GetLine(n); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestLoadNormalizesInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.ez")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a;\r\nb;\r\n")...)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a;\nb;\n" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected BOM and CRLF flags, got %b", f.Flags)
	}
	if latest, ok := fs.GetLatest(path); !ok || latest != id {
		t.Fatalf("GetLatest returned %v %v", latest, ok)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got.Start != 2 || got.End != 8 {
		t.Fatalf("unexpected cover %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("spans from other files must not merge, got %v", got)
	}
}
