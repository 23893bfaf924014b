package geom_test

import (
	"testing"

	"github.com/FranciscoPDNeto/eucligpu/geom"
)

// fakeGrid is a minimal geom.Classifier for neighborhood tests, independent
// of the imageview package to keep geom free of that dependency.
type fakeGrid struct {
	w, h int
	bg   map[int]bool // idx -> background
}

func (g fakeGrid) InBounds(y, x int) bool {
	return y >= 0 && y < g.h && x >= 0 && x < g.w
}

func (g fakeGrid) IsBackground(c geom.Coord) bool {
	return g.bg[int(c.Idx)]
}

func TestNeighborhoodSizes(t *testing.T) {
	g := fakeGrid{w: 4, h: 4, bg: map[int]bool{}}

	cases := []struct {
		name    string
		y, x    int
		wantLen int
	}{
		{"corner top-left", 0, 0, 3},
		{"corner top-right", 0, 3, 3},
		{"corner bottom-right", 3, 3, 3},
		{"edge top", 0, 1, 5},
		{"edge left", 1, 0, 5},
		{"interior", 1, 1, 8},
		{"interior center", 2, 2, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nb := geom.Of(g, tc.y, tc.x, g.w)
			if nb.Len() != tc.wantLen {
				t.Fatalf("Len() = %d, want %d", nb.Len(), tc.wantLen)
			}
		})
	}
}

func TestNeighborhoodRowMajorOrder(t *testing.T) {
	g := fakeGrid{w: 3, h: 3, bg: map[int]bool{}}
	nb := geom.Of(g, 1, 1, g.w)
	wantIdx := []uint32{0, 1, 2, 3, 5, 6, 7, 8}
	if nb.Len() != len(wantIdx) {
		t.Fatalf("Len() = %d, want %d", nb.Len(), len(wantIdx))
	}
	for i, want := range wantIdx {
		if got := nb.At(i).Coord.Idx; got != want {
			t.Fatalf("At(%d).Coord.Idx = %d, want %d", i, got, want)
		}
	}
}

func TestNeighborhoodClassifiesBackground(t *testing.T) {
	g := fakeGrid{w: 3, h: 3, bg: map[int]bool{1: true}} // idx 1 = (0,1)
	nb := geom.Of(g, 0, 0, g.w)
	foundBG := false
	for i := 0; i < nb.Len(); i++ {
		p := nb.At(i)
		if p.Coord.Idx == 1 && p.Background {
			foundBG = true
		}
	}
	if !foundBG {
		t.Fatalf("expected neighbor at idx 1 to be classified background")
	}
}
