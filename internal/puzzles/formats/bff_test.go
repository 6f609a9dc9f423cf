package formats

import (
	"strings"
	"testing"

	"github.com/vovakirdan/lazor/internal/core"
)

const sampleBFF = `# mad_1 from the original game
GRID START
o o o o
o o o o
o o o o
GRID STOP

A 2
C 1

L 2 7 1 -1
P 3 0
P 4 3
P 2 5
P 4 7
`

func TestParseBFF(t *testing.T) {
	p, err := ParseBFF([]byte(sampleBFF))
	if err != nil {
		t.Fatalf("ParseBFF() failed: %v", err)
	}

	if len(p.Grid) != 3 || len(p.Grid[0]) != 4 {
		t.Fatalf("expected 3x4 grid, got %dx%d", len(p.Grid), len(p.Grid[0]))
	}
	for y, row := range p.Grid {
		for x, bl := range row {
			if bl != core.BlockEmpty {
				t.Errorf("cell (%d,%d): expected empty, got %v", x, y, bl)
			}
		}
	}

	want := core.Counts{Reflect: 2, Refract: 1}
	if p.Counts != want {
		t.Errorf("counts = %+v, want %+v", p.Counts, want)
	}

	if len(p.Lasers) != 1 {
		t.Fatalf("expected 1 laser, got %d", len(p.Lasers))
	}
	if l := p.Lasers[0]; l != (core.Laser{X: 2, Y: 7, DX: 1, DY: -1}) {
		t.Errorf("laser = %+v", l)
	}

	if len(p.Targets) != 4 {
		t.Fatalf("expected 4 targets, got %d", len(p.Targets))
	}
	if p.Targets[0] != core.C(3, 0) {
		t.Errorf("first target = %v", p.Targets[0])
	}
}

func TestParseBFFFixedBlocks(t *testing.T) {
	src := `GRID START
o A o
x B C
GRID STOP
L 1 0 1 1
P 0 1
`
	p, err := ParseBFF([]byte(src))
	if err != nil {
		t.Fatalf("ParseBFF() failed: %v", err)
	}
	wantRow1 := []core.Block{core.BlockEmpty, core.BlockReflect, core.BlockEmpty}
	wantRow2 := []core.Block{core.BlockBoundary, core.BlockOpaque, core.BlockRefract}
	for x := range wantRow1 {
		if p.Grid[0][x] != wantRow1[x] {
			t.Errorf("grid[0][%d] = %v, want %v", x, p.Grid[0][x], wantRow1[x])
		}
		if p.Grid[1][x] != wantRow2[x] {
			t.Errorf("grid[1][%d] = %v, want %v", x, p.Grid[1][x], wantRow2[x])
		}
	}
}

func TestParseBFFErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty file", "", "no grid layout"},
		{"unterminated grid", "GRID START\no o\n", "GRID START without GRID STOP"},
		{"bad grid char", "GRID START\no Z o\nGRID STOP\n", "invalid grid character"},
		{"bad count", "GRID START\no\nGRID STOP\nA two\n", "block count"},
		{"short laser", "GRID START\no\nGRID STOP\nL 1 0\n", "want 4 numbers"},
		{"short target", "GRID START\no\nGRID STOP\nP 1\n", "want 2 numbers"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseBFF([]byte(tc.src))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestParseBFFSkipsUnknownDirectives(t *testing.T) {
	src := `GRID START
o
GRID STOP
VERSION 2
L 1 0 1 1
P 0 1
`
	p, err := ParseBFF([]byte(src))
	if err != nil {
		t.Fatalf("ParseBFF() failed: %v", err)
	}
	if len(p.Lasers) != 1 || len(p.Targets) != 1 {
		t.Errorf("directives after unknown line not parsed: %+v", p)
	}
}
