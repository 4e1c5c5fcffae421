package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ezc/internal/tac"
)

// OutputPath maps src under baseDir to <outDir>/<rel>.tac.
func OutputPath(baseDir, outDir, src string) string {
	rel, err := filepath.Rel(baseDir, src)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(src)
	}
	return filepath.Join(outDir, strings.TrimSuffix(rel, SourceExt)+".tac")
}

// WriteTAC stores lines at path through a tac.Writer, replacing the file
// atomically.
func WriteTAC(path string, lines []string) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), ".tac-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	w := tac.NewWriter(f)
	for _, line := range lines {
		if err = w.WriteLine(line); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
