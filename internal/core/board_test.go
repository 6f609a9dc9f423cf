package core

import (
	"errors"
	"testing"
)

// mustRaw parses rows of block characters (spaces ignored) into a raw grid.
func mustRaw(t *testing.T, rows ...string) [][]Block {
	t.Helper()
	raw := make([][]Block, 0, len(rows))
	for _, row := range rows {
		var cells []Block
		for i := 0; i < len(row); i++ {
			if row[i] == ' ' {
				continue
			}
			bl, ok := ParseBlock(row[i])
			if !ok {
				t.Fatalf("bad block char %q", row[i])
			}
			cells = append(cells, bl)
		}
		raw = append(raw, cells)
	}
	return raw
}

func TestExpandDimensions(t *testing.T) {
	raw := mustRaw(t,
		"o o o",
		"o A o",
	)
	b, err := Expand(raw)
	if err != nil {
		t.Fatalf("Expand() failed: %v", err)
	}

	if b.W != 7 || b.H != 5 {
		t.Errorf("expected 7x5 doubled board, got %dx%d", b.W, b.H)
	}
	if b.Cols() != 3 || b.Rows() != 2 {
		t.Errorf("expected 3x2 cell grid, got %dx%d", b.Cols(), b.Rows())
	}

	// Cell centers carry the raw symbols.
	if b.At(C(3, 3)) != BlockReflect {
		t.Errorf("expected reflect block at center (3,3), got %v", b.At(C(3, 3)))
	}
	if b.At(C(1, 1)) != BlockEmpty {
		t.Errorf("expected empty center at (1,1), got %v", b.At(C(1, 1)))
	}

	// Everything off-center is a boundary marker.
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if x%2 == 1 && y%2 == 1 {
				continue
			}
			if b.At(C(x, y)) != BlockBoundary {
				t.Fatalf("expected boundary at (%d,%d), got %v", x, y, b.At(C(x, y)))
			}
		}
	}
}

func TestExpandRejectsEmptyGrid(t *testing.T) {
	if _, err := Expand(nil); err == nil {
		t.Error("expected error for nil grid")
	}
	if _, err := Expand([][]Block{}); err == nil {
		t.Error("expected error for empty grid")
	}
}

func TestExpandRejectsRaggedGrid(t *testing.T) {
	raw := [][]Block{
		{BlockEmpty, BlockEmpty},
		{BlockEmpty},
	}
	_, err := Expand(raw)
	if err == nil {
		t.Fatal("expected error for ragged grid")
	}
	var verr ValidationError
	if !errors.As(err, &verr) || verr.Code != CodeRaggedGrid {
		t.Errorf("expected %s error, got %v", CodeRaggedGrid, err)
	}
}

func TestAtOutOfBoundsIsBoundary(t *testing.T) {
	b, err := Expand(mustRaw(t, "o"))
	if err != nil {
		t.Fatalf("Expand() failed: %v", err)
	}
	if b.At(C(-1, 0)) != BlockBoundary || b.At(C(0, 99)) != BlockBoundary {
		t.Error("out-of-bounds lookup should report boundary")
	}
}

func TestFixedCenters(t *testing.T) {
	raw := mustRaw(t,
		"o B o",
		"A o x",
	)
	fixed := FixedCenters(raw)

	want := []Coord{C(3, 1), C(1, 3)}
	if len(fixed) != len(want) {
		t.Fatalf("expected %d fixed centers, got %d", len(want), len(fixed))
	}
	for _, c := range want {
		if !fixed[c] {
			t.Errorf("expected %s to be fixed", c)
		}
	}
	// Unusable 'x' cells are not pre-placed blocks.
	if fixed[C(5, 3)] {
		t.Error("boundary cell should not be a fixed center")
	}
}

func TestInstantiateRowMajorFill(t *testing.T) {
	raw := mustRaw(t,
		"o x",
		"A o",
	)
	b, err := Expand(raw)
	if err != nil {
		t.Fatalf("Expand() failed: %v", err)
	}
	fixed := FixedCenters(raw)

	got, err := b.Instantiate([]Block{BlockOpaque, BlockRefract}, fixed)
	if err != nil {
		t.Fatalf("Instantiate() failed: %v", err)
	}

	if got.At(C(1, 1)) != BlockOpaque {
		t.Errorf("first open center got %v, want opaque", got.At(C(1, 1)))
	}
	if got.At(C(3, 3)) != BlockRefract {
		t.Errorf("second open center got %v, want refract", got.At(C(3, 3)))
	}
	if got.At(C(1, 3)) != BlockReflect {
		t.Errorf("fixed block was overwritten: %v", got.At(C(1, 3)))
	}
	if got.At(C(3, 1)) != BlockBoundary {
		t.Errorf("unusable cell was overwritten: %v", got.At(C(3, 1)))
	}

	// The source board must be untouched.
	if b.At(C(1, 1)) != BlockEmpty || b.At(C(3, 3)) != BlockEmpty {
		t.Error("Instantiate mutated the original board")
	}
}

func TestInstantiateExtraSymbolsIgnored(t *testing.T) {
	raw := mustRaw(t, "o")
	b, err := Expand(raw)
	if err != nil {
		t.Fatalf("Expand() failed: %v", err)
	}

	got, err := b.Instantiate([]Block{BlockReflect, BlockOpaque, BlockOpaque}, nil)
	if err != nil {
		t.Fatalf("Instantiate() failed: %v", err)
	}
	if got.At(C(1, 1)) != BlockReflect {
		t.Errorf("expected reflect at (1,1), got %v", got.At(C(1, 1)))
	}
}

func TestInstantiateShortPlacement(t *testing.T) {
	raw := mustRaw(t,
		"o o",
		"o o",
	)
	b, err := Expand(raw)
	if err != nil {
		t.Fatalf("Expand() failed: %v", err)
	}

	_, err = b.Instantiate([]Block{BlockReflect}, nil)
	if err == nil {
		t.Fatal("expected error for under-sized placement")
	}
	var verr ValidationError
	if !errors.As(err, &verr) || verr.Code != CodePlacementShort {
		t.Errorf("expected %s error, got %v", CodePlacementShort, err)
	}
}

func TestEmptyCenters(t *testing.T) {
	raw := mustRaw(t,
		"o A o",
		"x o o",
	)
	b, err := Expand(raw)
	if err != nil {
		t.Fatalf("Expand() failed: %v", err)
	}

	got := b.EmptyCenters(FixedCenters(raw))
	want := []Coord{C(1, 1), C(5, 1), C(3, 3), C(5, 3)}
	if len(got) != len(want) {
		t.Fatalf("expected %d open centers, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("open center %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	b, err := Expand(mustRaw(t, "o o"))
	if err != nil {
		t.Fatalf("Expand() failed: %v", err)
	}
	c := b.Clone()
	c.Set(C(1, 1), BlockOpaque)
	if b.At(C(1, 1)) != BlockEmpty {
		t.Error("mutating a clone changed the original board")
	}
}
