package ui

import (
	"math"
	"strings"
	"testing"

	"ezc/internal/buildpipeline"
)

func TestApplyEventTracksStatus(t *testing.T) {
	m := NewProgressModel("build", []string{"a.ez", "b.ez"}, nil).(*progressModel)

	m.applyEvent(buildpipeline.Event{File: "a.ez", Stage: buildpipeline.StageCompile, Status: buildpipeline.StatusWorking})
	m.applyEvent(buildpipeline.Event{File: "b.ez", Stage: buildpipeline.StageCompile, Status: buildpipeline.StatusCached})
	m.applyEvent(buildpipeline.Event{File: "unknown.ez", Stage: buildpipeline.StageCompile, Status: buildpipeline.StatusDone})
	m.applyEvent(buildpipeline.Event{Stage: buildpipeline.StageBuild, Status: buildpipeline.StatusWorking})

	if got := m.items[0].status; got != "compiling" {
		t.Fatalf("a.ez: want compiling, got %q", got)
	}
	if got := m.items[1].status; got != "cached" {
		t.Fatalf("b.ez: want cached, got %q", got)
	}
	if m.stageLabel != "building" {
		t.Fatalf("want build label, got %q", m.stageLabel)
	}
	if got := m.percent(); math.Abs(got-0.7) > 1e-9 {
		t.Fatalf("unexpected percent %v", got)
	}

	view := m.View()
	for _, want := range []string{"build (building)", "compiling", "cached", "a.ez", "b.ez"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestDoneMessageQuits(t *testing.T) {
	m := NewProgressModel("build", []string{"a.ez"}, nil)
	next, cmd := m.Update(doneMsg{})
	if cmd == nil {
		t.Fatal("done must return a quit command")
	}
	if !next.(*progressModel).done {
		t.Fatal("model must be marked done")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.ez", 20, "short.ez"},
		{"very/long/path/main.ez", 10, "very/lo..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestEmptyModelRendersNothing(t *testing.T) {
	if got := NewProgressModel("build", nil, nil).View(); got != "" {
		t.Fatalf("want empty view, got %q", got)
	}
}
