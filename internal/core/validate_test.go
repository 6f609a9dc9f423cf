package core

import (
	"errors"
	"testing"
)

func TestValidateAcceptsGoodPuzzle(t *testing.T) {
	raw := mustRaw(t,
		"o o o",
		"o o o",
	)
	err := Validate(raw,
		Counts{Reflect: 1},
		[]Laser{{X: 3, Y: 0, DX: -1, DY: 1}},
		[]Coord{C(0, 3)},
	)
	if err != nil {
		t.Errorf("Validate() failed on a good puzzle: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	raw := mustRaw(t,
		"o o",
		"o o",
	)
	laser := Laser{X: 1, Y: 0, DX: 1, DY: 1}
	target := C(0, 1)

	cases := []struct {
		name    string
		counts  Counts
		lasers  []Laser
		targets []Coord
		code    string
	}{
		{"no lasers", Counts{Reflect: 1}, nil, []Coord{target}, CodeNoLasers},
		{"no targets", Counts{Reflect: 1}, []Laser{laser}, nil, CodeNoTargets},
		{"no blocks", Counts{}, []Laser{laser}, []Coord{target}, CodeNoBlocks},
		{"too many blocks", Counts{Opaque: 4}, []Laser{laser}, []Coord{target}, CodeTooManyBlocks},
		{"laser outside", Counts{Reflect: 1}, []Laser{{X: 99, Y: 0, DX: 1, DY: 1}}, []Coord{target}, CodeLaserOutOfGrid},
		{"bad direction", Counts{Reflect: 1}, []Laser{{X: 1, Y: 0, DX: 2, DY: 1}}, []Coord{target}, CodeBadDirection},
		{"target outside", Counts{Reflect: 1}, []Laser{laser}, []Coord{C(-1, 0)}, CodeTargetOutOfGrid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(raw, tc.counts, tc.lasers, tc.targets)
			if err == nil {
				t.Fatal("expected validation to fail")
			}
			var verr ValidationError
			if !errors.As(err, &verr) || verr.Code != tc.code {
				t.Errorf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestValidateCountsAgainstOpenCells(t *testing.T) {
	// Three of four cells are unusable; two blocks cannot fit in one slot.
	raw := mustRaw(t,
		"x x",
		"x o",
	)
	err := Validate(raw,
		Counts{Reflect: 1, Opaque: 1},
		[]Laser{{X: 1, Y: 0, DX: 1, DY: 1}},
		[]Coord{C(0, 1)},
	)
	if err == nil {
		t.Fatal("expected validation to fail")
	}
	var verr ValidationError
	if !errors.As(err, &verr) || verr.Code != CodeTooManyBlocks {
		t.Errorf("expected %s, got %v", CodeTooManyBlocks, err)
	}
}
