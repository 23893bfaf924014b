package cpu_test

import (
	"context"
	"testing"

	"github.com/FranciscoPDNeto/eucligpu/backend/cpu"
	"github.com/FranciscoPDNeto/eucligpu/imageview"
	"github.com/FranciscoPDNeto/eucligpu/voronoi"
)

func TestRunPassConvergesOnSimpleImage(t *testing.T) {
	// 1x5 strip: [0, 255, 255, 255, 0]
	img, err := imageview.New(5, 1, []byte{0, 255, 255, 255, 0})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	diag, wave := voronoi.Seed(img)
	b := cpu.New()

	ctx := context.Background()
	passes := 0
	for {
		changed, err := b.RunPass(ctx, img, diag, wave)
		if err != nil {
			t.Fatalf("RunPass: %v", err)
		}
		passes++
		if !changed {
			break
		}
		if passes > 100 {
			t.Fatalf("did not converge within 100 passes")
		}
	}

	wantDist := []float32{0, 1, 2, 1, 0}
	for i, want := range wantDist {
		if got := diag.DistanceAt(uint32(i)); got != want {
			t.Fatalf("DistanceAt(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestRunPassEmptyWavefrontReportsNoChange(t *testing.T) {
	img, err := imageview.New(2, 2, make([]byte, 4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	diag, wave := voronoi.Seed(img) // all background, wave is empty
	b := cpu.New()

	changed, err := b.RunPass(context.Background(), img, diag, wave)
	if err != nil {
		t.Fatalf("RunPass: %v", err)
	}
	if changed {
		t.Fatalf("expected no change on an empty wavefront")
	}
}

func TestMaxPasses(t *testing.T) {
	b := cpu.New()
	if got := b.MaxPasses(10, 20); got != 31 {
		t.Fatalf("MaxPasses(10,20) = %d, want 31", got)
	}
}
