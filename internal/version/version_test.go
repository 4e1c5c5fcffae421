package version

import (
	"strings"
	"testing"
)

func TestBannerPlain(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate })

	Version, GitCommit, BuildDate = "1.2.3", "abc123", "2026-01-15"
	if got := Banner(false); got != "ezc 1.2.3 (abc123, 2026-01-15)" {
		t.Fatalf("unexpected banner %q", got)
	}
	GitCommit = ""
	if got := Banner(false); got != "ezc 1.2.3" {
		t.Fatalf("unexpected banner %q", got)
	}
}

func TestBannerColored(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "0.4.1-rc1"
	got := Banner(true)
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-rc1") {
		t.Fatalf("expected colored version with suffix, got %q", got)
	}

	Version = "nightly"
	if got := Banner(true); got != "ezc nightly" {
		t.Fatalf("non-semver versions stay plain, got %q", got)
	}
}

func TestGet(t *testing.T) {
	info := Get()
	if info.Version != Version || info.GoVersion == "" {
		t.Fatalf("unexpected info %+v", info)
	}
}
