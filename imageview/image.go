// Package imageview binds a read-only grayscale byte buffer to its
// dimensions and classifies coordinates as background or foreground.
package imageview

import (
	"errors"
	"fmt"

	"github.com/FranciscoPDNeto/eucligpu/geom"
)

// ErrDimensionMismatch is returned by New when len(data) != width*height.
var ErrDimensionMismatch = errors.New("imageview: data length does not match width*height")

// Image is an immutable H x W grayscale view: N = H*W bytes, indexed
// image[y*W+x]. A byte value of 0 is background, any other value is
// foreground.
type Image struct {
	width, height int
	data          []byte
}

// New binds data to the given dimensions without copying it; data is never
// written to for the lifetime of the Image. data is borrowed, not owned.
func New(width, height int, data []byte) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("imageview: non-positive dimensions %dx%d", width, height)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrDimensionMismatch, len(data), width*height)
	}
	return &Image{width: width, height: height, data: data}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// Size returns the pixel count N = Width() * Height().
func (img *Image) Size() int { return img.width * img.height }

// InBounds reports whether (y, x) lies within [0, Height) x [0, Width).
func (img *Image) InBounds(y, x int) bool {
	return y >= 0 && y < img.height && x >= 0 && x < img.width
}

// ValueAt returns the raw byte at coord.
func (img *Image) ValueAt(coord geom.Coord) byte {
	return img.data[coord.Idx]
}

// IsBackground reports whether the image value at coord is 0.
func (img *Image) IsBackground(coord geom.Coord) bool {
	return img.data[coord.Idx] == 0
}

// PixelAt returns the Pixel (coordinate + background classification) at coord.
func (img *Image) PixelAt(coord geom.Coord) geom.Pixel {
	return geom.Pixel{Coord: coord, Background: img.IsBackground(coord)}
}

// NeighborhoodOf returns the in-bounds 3x3 neighborhood of (y, x), excluding
// the center, in row-major order.
func (img *Image) NeighborhoodOf(y, x int) geom.Neighborhood {
	return geom.Of(img, y, x, img.width)
}

// Coordinates calls fn once for every coordinate in the image in row-major
// order. Row-major is the "any deterministic order" spec.md §4.3 allows.
func (img *Image) Coordinates(fn func(geom.Coord)) {
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			fn(geom.New(y, x, img.width))
		}
	}
}

var _ geom.Classifier = (*Image)(nil)
