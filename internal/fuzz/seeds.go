package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

var languageSeeds = []string{
	"",
	"let a: i32; let b: i32; let c: i32; (a + b) * c;",
	"let x: f64; let y: i32; x * y + -y;",
	"let v: [4][2]f32; v[1][0] / 2.0;",
	"let c: char; c + 'a'; '\\n';",
	"let big: i64; big - 0x7fff_ffff_ff;",
	"{ let a: i32; { let a: f32; a; } a; }",
	"let a: i32; let a: i32; a;",
	"let b: bool; b + 1; true;",
	"let a: i32 a + ; ) } ((",
	"let w: [0]i32; w[0]; let n: [0x10]char;",
	"let é: i32; é;",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range languageSeeds {
		f.Add([]byte(seed))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("testdata", "seeds")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".ez" {
			return nil
		}
		// #nosec G304 -- path comes from the testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return src
	}
	return src[:maxSeedBytes]
}
