package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/lazor/internal/core"
	"github.com/vovakirdan/lazor/internal/puzzles"
	"github.com/vovakirdan/lazor/internal/solver"
)

func sampleSolution() *solver.Solution {
	p := &puzzles.Puzzle{
		ID: "sample",
		Grid: [][]core.Block{
			{core.BlockEmpty, core.BlockEmpty},
			{core.BlockEmpty, core.BlockEmpty},
		},
		Lasers:  []core.Laser{{X: 1, Y: 0, DX: 1, DY: 1}},
		Targets: []core.Coord{core.C(3, 2)},
	}
	return &solver.Solution{
		Puzzle: p,
		Grid: [][]core.Block{
			{core.BlockReflect, core.BlockEmpty},
			{core.BlockEmpty, core.BlockOpaque},
		},
		Paths: []core.Path{
			{States: []core.Laser{
				{X: 1, Y: 0, DX: 1, DY: 1},
				{X: 2, Y: 1, DX: 1, DY: 1},
				{X: 3, Y: 2, DX: 1, DY: 1},
			}},
		},
	}
}

func TestImageDimensions(t *testing.T) {
	img := Image(sampleSolution(), 40)

	b := img.Bounds()
	if b.Dx() != 80 || b.Dy() != 80 {
		t.Errorf("image size = %dx%d, want 80x80", b.Dx(), b.Dy())
	}
}

func TestImageCellColors(t *testing.T) {
	img := Image(sampleSolution(), 40)

	// Sample mid-cell pixels away from grid lines, labels and the beam.
	if got := img.RGBAAt(10, 25); got != colorReflect {
		t.Errorf("reflect cell pixel = %v, want %v", got, colorReflect)
	}
	if got := img.RGBAAt(50, 70); got != colorOpaque {
		t.Errorf("opaque cell pixel = %v, want %v", got, colorOpaque)
	}
	if got := img.RGBAAt(10, 50); got != colorEmpty {
		t.Errorf("empty cell pixel = %v, want %v", got, colorEmpty)
	}
}

func TestImageDrawsBeamAndEmitter(t *testing.T) {
	img := Image(sampleSolution(), 40)

	// The emitter disc sits at doubled (1,0) scaled by blockSize/2.
	if got := img.RGBAAt(20, 2); got != colorBeam {
		t.Errorf("emitter pixel = %v, want %v", got, colorBeam)
	}
	// The beam runs diagonally from (20,0) to (60,40); its midpoint is on it.
	if got := img.RGBAAt(40, 20); got != colorBeam {
		t.Errorf("beam pixel = %v, want %v", got, colorBeam)
	}
}

func TestWritePNG(t *testing.T) {
	dir := t.TempDir()
	out, err := WritePNG(filepath.Join(dir, "sample.bff"), sampleSolution(), 20)
	if err != nil {
		t.Fatalf("WritePNG() failed: %v", err)
	}
	if filepath.Ext(out) != ".png" {
		t.Errorf("output path %q is not a png", out)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 40 {
		t.Errorf("decoded size = %v, want 40x40", img.Bounds())
	}
}
