package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug"} {
		lvl, err := ParseLevel(s)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
		if lvl.String() != s {
			t.Fatalf("round trip %q -> %q", s, lvl.String())
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestLevelFiltersScopes(t *testing.T) {
	if !LevelPhase.ShouldEmit(ScopePass) || LevelPhase.ShouldEmit(ScopeUnit) {
		t.Fatalf("phase level must stop at pass scope")
	}
	if !LevelDetail.ShouldEmit(ScopeUnit) || LevelDetail.ShouldEmit(ScopeNode) {
		t.Fatalf("detail level must stop at unit scope")
	}
	if !LevelDebug.ShouldEmit(ScopeNode) {
		t.Fatalf("debug level emits everything")
	}
	if LevelError.ShouldEmit(ScopeDriver) {
		t.Fatalf("error level emits nothing by itself")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)

	span := Begin(tr, ScopeUnit, "unit", 0)
	span.WithExtra("temps", "3").End("ok")
	Point(tr, ScopeNode, "emit", "add __t0 a b")

	out := buf.String()
	if !strings.Contains(out, "→ unit unit") || !strings.Contains(out, "← unit unit (ok) {temps=3}") {
		t.Fatalf("unexpected trace output:\n%s", out)
	}
	if strings.Contains(out, "emit") {
		t.Fatalf("node events must be filtered at detail level:\n%s", out)
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, ScopeNode, "emit", "mul __t1 __t0 c")

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid ndjson %q: %v", buf.String(), err)
	}
	if decoded["name"] != "emit" || decoded["detail"] != "mul __t1 __t0 c" || decoded["scope"] != "node" {
		t.Fatalf("unexpected event %v", decoded)
	}
}

func TestRingTracerWraps(t *testing.T) {
	ring := NewRingTracer(2, LevelDebug)
	for _, name := range []string{"a", "b", "c"} {
		Point(ring, ScopeNode, name, "")
	}
	snap := ring.Snapshot()
	if len(snap) != 2 || snap[0].Name != "b" || snap[1].Name != "c" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatalf("missing tracer must resolve to Nop")
	}
	ring := NewRingTracer(4, LevelPhase)
	ctx := WithTracer(context.Background(), ring)
	if FromContext(ctx) != Tracer(ring) {
		t.Fatalf("tracer must round trip through context")
	}
}

func TestNewWithLevelOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("expected disabled tracer, got %v %v", tr, err)
	}
	span := Begin(tr, ScopeDriver, "build", 0)
	if span.ID() != 0 || span.End("") != 0 {
		t.Fatalf("disabled spans must be inert")
	}
}
