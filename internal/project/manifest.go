package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	ErrPackageSectionMissing = errors.New("missing [package]")
	ErrPackageNameMissing    = errors.New("missing [package].name")
)

type PackageConfig struct {
	Name string `toml:"name"`
}

type BuildConfig struct {
	Sources        string `toml:"sources"`
	Out            string `toml:"out"`
	Jobs           int    `toml:"jobs"` // 0 means GOMAXPROCS
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Cache          bool   `toml:"cache"`
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
}

// Manifest is a decoded ez.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
	// Unknown lists keys that were present but not understood.
	Unknown []string
}

// DefaultConfig returns the values used for keys missing from ez.toml.
func DefaultConfig() Config {
	return Config{
		Build: BuildConfig{
			Sources:        "src",
			Out:            "build",
			MaxDiagnostics: 100,
			Cache:          true,
		},
	}
}

// LoadConfig decodes the ez.toml at path over DefaultConfig.
func LoadConfig(path string) (*Manifest, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	if cfg.Build.Jobs < 0 {
		return nil, fmt.Errorf("%s: [build].jobs must not be negative, got %d", path, cfg.Build.Jobs)
	}
	if cfg.Build.MaxDiagnostics <= 0 {
		return nil, fmt.Errorf("%s: [build].max_diagnostics must be positive, got %d", path, cfg.Build.MaxDiagnostics)
	}

	m := &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}
	for _, key := range meta.Undecoded() {
		m.Unknown = append(m.Unknown, key.String())
	}
	return m, nil
}

// Load finds and decodes the manifest above startDir. ok is false when no
// ez.toml exists.
func Load(startDir string) (m *Manifest, ok bool, err error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err = LoadConfig(path)
	return m, true, err
}

// SourcesDir is the absolute directory holding the .ez files.
func (m *Manifest) SourcesDir() string {
	return m.resolve(m.Config.Build.Sources)
}

// OutDir is the absolute directory receiving .tac files.
func (m *Manifest) OutDir() string {
	return m.resolve(m.Config.Build.Out)
}

func (m *Manifest) resolve(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(m.Root, filepath.FromSlash(rel))
}
