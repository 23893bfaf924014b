package materialize_test

import (
	"context"
	"math"
	"testing"

	"github.com/FranciscoPDNeto/eucligpu/backend/cpu"
	"github.com/FranciscoPDNeto/eucligpu/imageview"
	"github.com/FranciscoPDNeto/eucligpu/materialize"
	"github.com/FranciscoPDNeto/eucligpu/propagate"
	"github.com/FranciscoPDNeto/eucligpu/voronoi"
)

// converge runs the real seeding + Schedule A pipeline end to end, so these
// tests exercise materialize.Bytes against an actually-converged diagram
// rather than a hand-fabricated one.
func converge(t *testing.T, width, height int, data []byte) (*voronoi.Diagram, *imageview.Image) {
	t.Helper()
	img, err := imageview.New(width, height, data)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	diag, wave := voronoi.Seed(img)
	eng := propagate.New(cpu.New())
	if _, err := eng.Run(context.Background(), img, diag, wave); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return diag, img
}

func TestMaxDistance(t *testing.T) {
	got := materialize.MaxDistance(2, 2)
	want := float32(math.Sqrt(8))
	if math.Abs(float64(got-want)) > 1e-5 {
		t.Fatalf("MaxDistance(2,2) = %v, want %v", got, want)
	}
}

func TestBytesScenario1AllBackground(t *testing.T) {
	diag, img := converge(t, 2, 2, []byte{0, 0, 0, 0})
	got := materialize.Bytes(diag, img.Width(), img.Height())
	for i, b := range got {
		if b != 0 {
			t.Fatalf("Bytes()[%d] = %d, want 0", i, b)
		}
	}
}

func TestBytesScenario2AllForeground(t *testing.T) {
	diag, img := converge(t, 2, 2, []byte{255, 255, 255, 255})
	got := materialize.Bytes(diag, img.Width(), img.Height())
	for i, b := range got {
		if b != 255 {
			t.Fatalf("Bytes()[%d] = %d, want 255 (no background exists)", i, b)
		}
	}
}

func TestBytesScenario3(t *testing.T) {
	diag, img := converge(t, 2, 2, []byte{0, 255, 255, 0})
	got := materialize.Bytes(diag, img.Width(), img.Height())
	want := []byte{0, 90, 90, 0}
	if string(got) != string(want) {
		t.Fatalf("Bytes() = %v, want %v", got, want)
	}
}

func TestBytesScenario4CenterByte(t *testing.T) {
	diag, img := converge(t, 3, 3, []byte{0, 255, 0, 255, 255, 255, 0, 255, 0})
	got := materialize.Bytes(diag, img.Width(), img.Height())
	want := []byte{0, 60, 0, 60, 85, 60, 0, 60, 0}
	if string(got) != string(want) {
		t.Fatalf("Bytes() = %v, want %v", got, want)
	}
}

func TestBytesScenario5HorizontalStrip(t *testing.T) {
	diag, img := converge(t, 5, 1, []byte{0, 255, 255, 255, 0})
	got := materialize.Bytes(diag, img.Width(), img.Height())
	want := []byte{0, 50, 100, 50, 0}
	if string(got) != string(want) {
		t.Fatalf("Bytes() = %v, want %v", got, want)
	}
}

func TestBytesDisk(t *testing.T) {
	const size = 32
	const radius = 10.0
	const cy, cx = 16.0, 16.0
	data := make([]byte, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dy, dx := float64(y)-cy, float64(x)-cx
			if math.Hypot(dy, dx) <= radius {
				data[y*size+x] = 0 // inside disk: background
			} else {
				data[y*size+x] = 255 // outside: foreground
			}
		}
	}
	diag, img := converge(t, size, size, data)
	maxDist := materialize.MaxDistance(size, size)
	tol := 1e-4 * float64(maxDist)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			idx := uint32(y*size + x)
			if data[idx] == 0 {
				continue // only check foreground pixels per spec.md §8 scenario 6
			}
			dy, dx := float64(y)-cy, float64(x)-cx
			want := math.Max(0, math.Hypot(dy, dx)-radius)
			got := float64(diag.DistanceAt(idx))
			if math.Abs(got-want) > tol {
				t.Fatalf("(%d,%d): distance = %v, want %v (tol %v)", y, x, got, want, tol)
			}
		}
	}
}
