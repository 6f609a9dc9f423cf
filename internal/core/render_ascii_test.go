package core

import (
	"strings"
	"testing"
)

func TestRenderGrid(t *testing.T) {
	raw := mustRaw(t, "o A o", "x B C")

	got := RenderGrid(raw)
	want := "o A o\nx B C\n"
	if got != want {
		t.Errorf("RenderGrid() = %q, want %q", got, want)
	}
}

func TestRenderBoard(t *testing.T) {
	raw := mustRaw(t, "o A", "o o")
	b, err := Expand(raw)
	if err != nil {
		t.Fatalf("Expand() failed: %v", err)
	}

	got := RenderBoard(b)
	if !strings.HasPrefix(got, "Board 5x5 (2 x 2 cells)\n") {
		t.Errorf("missing header: %q", got)
	}

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected header + 5 rows, got %d lines", len(lines))
	}
	if lines[1] != "xxxxx" || lines[5] != "xxxxx" {
		t.Errorf("boundary rows wrong: %q / %q", lines[1], lines[5])
	}
	// Row y=1 holds the cell centers of the first grid row at x=1 and x=3.
	if lines[2] != "xooAx" {
		t.Errorf("center row = %q, want %q", lines[2], "xooAx")
	}
}
