package geom

// maxNeighbors is the capacity of a Neighborhood: the 3x3 window around a
// pixel minus its center.
const maxNeighbors = 8

// Pixel is a coordinate plus whether the image value there is background
// (zero). Pixels are value objects, recomputable from (image, coordinate).
type Pixel struct {
	Coord      Coord
	Background bool
}

// Classifier answers whether a coordinate is background. imageview.Image
// implements it; geom depends only on this narrow interface so it never
// imports imageview.
type Classifier interface {
	IsBackground(c Coord) bool
	InBounds(y, x int) bool
}

// Neighborhood is a fixed-capacity, in-place sequence of up to 8 pixels: a
// corner yields 3, a non-corner edge 5, an interior pixel 8. Neighbors are
// enumerated in row-major order over the 3x3 window excluding the center,
// in-bounds entries only; out-of-range neighbors are omitted, never wrapped
// or clamped.
type Neighborhood struct {
	pixels [maxNeighbors]Pixel
	size   int
}

// Len returns the number of valid entries (0..8).
func (n *Neighborhood) Len() int { return n.size }

// At returns the i-th neighbor, 0 <= i < Len().
func (n *Neighborhood) At(i int) Pixel { return n.pixels[i] }

// deltas enumerates the 3x3 window excluding the center in row-major order.
var deltas = [maxNeighbors][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Of builds the neighborhood of the pixel at (y, x) within a grid of the
// given width, classifying each surviving neighbor through cls.
func Of(cls Classifier, y, x, width int) Neighborhood {
	var nb Neighborhood
	for _, d := range deltas {
		ny, nx := y+d[0], x+d[1]
		if !cls.InBounds(ny, nx) {
			continue
		}
		c := New(ny, nx, width)
		nb.pixels[nb.size] = Pixel{Coord: c, Background: cls.IsBackground(c)}
		nb.size++
	}
	return nb
}
