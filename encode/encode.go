// Package encode writes a materialized distance field back out as a PNG,
// following the teacher's export_png pattern of wrapping raw bytes in an
// image.Gray before handing them to the standard library's image/png.
package encode

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/FranciscoPDNeto/eucligpu/ecode"
)

// WritePNG writes width x height grayscale bytes to path as an 8-bit PNG. An
// allocation or I/O failure is wrapped in ecode.ErrAllocationFailure.
func WritePNG(path string, width, height int, data []byte) error {
	if len(data) != width*height {
		return fmt.Errorf("%w: got %d bytes, want %d", ecode.ErrAllocationFailure, len(data), width*height)
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	copy(img.Pix, data)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ecode.ErrAllocationFailure, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("%w: %v", ecode.ErrAllocationFailure, err)
	}
	return nil
}
