package agent

import (
	"strings"
	"testing"
)

func TestTruncateOutputUnderLimit(t *testing.T) {
	if got := TruncateOutput("short", 100); got != "short" {
		t.Errorf("got %q", got)
	}
}

func TestTruncateOutputKeepsHeadAndTail(t *testing.T) {
	input := strings.Repeat("a", 500) + strings.Repeat("z", 500)
	got := TruncateOutput(input, 100)

	if !strings.HasPrefix(got, strings.Repeat("a", 50)) {
		t.Error("head not preserved")
	}
	if !strings.HasSuffix(got, strings.Repeat("z", 50)) {
		t.Error("tail not preserved")
	}
	if !strings.Contains(got, "truncated") {
		t.Error("missing truncation marker")
	}
}

func TestTruncateLines(t *testing.T) {
	input := strings.TrimSuffix(strings.Repeat("line\n", 20), "\n")
	got := TruncateLines(input, 10)
	if !strings.Contains(got, "[... 10 lines omitted ...]") {
		t.Errorf("got %q", got)
	}

	if got := TruncateLines("a\nb", 10); got != "a\nb" {
		t.Errorf("under-limit input changed: %q", got)
	}
}

func TestTruncateToolOutputPerToolLimit(t *testing.T) {
	// The warning marker is inserted between the kept head and tail, so
	// assert on those rather than total length.
	input := strings.Repeat("a", 500) + strings.Repeat("z", 500)
	got := TruncateToolOutput(input, "mini", map[string]int{"mini": 50}, nil)
	if !strings.HasPrefix(got, strings.Repeat("a", 25)) {
		t.Error("head not preserved")
	}
	if !strings.HasSuffix(got, strings.Repeat("z", 25)) {
		t.Error("tail not preserved")
	}
	if !strings.Contains(got, "truncated") {
		t.Errorf("missing truncation marker: %q", got)
	}
	if strings.Contains(got, strings.Repeat("a", 26)) {
		t.Error("kept more than the per-tool limit allows")
	}

	// An unknown tool falls back to the default character limit.
	if got := TruncateToolOutput(strings.Repeat("x", 200), "unknown", nil, nil); got != strings.Repeat("x", 200) {
		t.Errorf("default limit should leave 200 chars alone")
	}
}

func TestTruncateToolOutputLineLimit(t *testing.T) {
	input := strings.TrimSuffix(strings.Repeat("l\n", 40), "\n")
	got := TruncateToolOutput(input, "tail", nil, map[string]int{"tail": 10})
	if !strings.Contains(got, "lines omitted") {
		t.Errorf("line limit not applied: %q", got)
	}
}
