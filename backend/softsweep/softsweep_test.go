package softsweep_test

import (
	"context"
	"testing"

	"github.com/FranciscoPDNeto/eucligpu/backend/softsweep"
	"github.com/FranciscoPDNeto/eucligpu/imageview"
	"github.com/FranciscoPDNeto/eucligpu/propagate"
	"github.com/FranciscoPDNeto/eucligpu/voronoi"
)

func TestRunPassConvergesOnSimpleImage(t *testing.T) {
	img, err := imageview.New(5, 1, []byte{0, 255, 255, 255, 0})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	diag, wave := voronoi.Seed(img)
	eng := propagate.New(softsweep.New())

	if _, err := eng.Run(context.Background(), img, diag, wave); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []float32{0, 1, 2, 1, 0}
	for i, w := range want {
		if got := diag.DistanceAt(uint32(i)); got != w {
			t.Fatalf("DistanceAt(%d) = %v, want %v", i, got, w)
		}
	}
}
