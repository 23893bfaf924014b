package propagate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/FranciscoPDNeto/eucligpu/backend/cpu"
	"github.com/FranciscoPDNeto/eucligpu/ecode"
	"github.com/FranciscoPDNeto/eucligpu/imageview"
	"github.com/FranciscoPDNeto/eucligpu/propagate"
	"github.com/FranciscoPDNeto/eucligpu/voronoi"
)

func TestEngineRunConverges(t *testing.T) {
	img, err := imageview.New(2, 2, []byte{0, 255, 255, 0})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	diag, wave := voronoi.Seed(img)
	eng := propagate.New(cpu.New())

	passes, err := eng.Run(context.Background(), img, diag, wave)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if passes == 0 {
		t.Fatalf("expected at least one pass")
	}
	if !wave.Empty() {
		t.Fatalf("expected wavefront drained at termination, got %d items", wave.Len())
	}
}

// failingBackend always reports a change, to exercise the non-convergence
// safety bound.
type failingBackend struct{}

func (failingBackend) Name() string { return "loop-forever" }
func (failingBackend) MaxPasses(w, h int) int {
	return 3
}
func (failingBackend) RunPass(ctx context.Context, img *imageview.Image, diag *voronoi.Diagram, wave *voronoi.Wavefront) (bool, error) {
	return true, nil
}

func TestEngineReportsNonConvergence(t *testing.T) {
	img, err := imageview.New(2, 2, []byte{0, 255, 255, 0})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	diag, wave := voronoi.Seed(img)
	eng := propagate.New(failingBackend{})

	_, err = eng.Run(context.Background(), img, diag, wave)
	if !errors.Is(err, ecode.ErrNonConvergence) {
		t.Fatalf("err = %v, want ecode.ErrNonConvergence", err)
	}
}
