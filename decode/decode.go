// Package decode reads an input image from disk and reduces it to the
// single-channel grayscale buffer imageview.Image expects, per SPEC_FULL.md
// C8: PNG via the standard library, BMP via golang.org/x/image/bmp, both
// normalized the way the teacher's export_png example normalized DICOM
// pixel data down to an image.Gray before encoding.
package decode

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/FranciscoPDNeto/eucligpu/ecode"
	"github.com/FranciscoPDNeto/eucligpu/imageview"
)

// Read decodes the file at path and returns a single-channel imageview.Image.
// Any decode error, unsupported extension, or non-reducible color model is
// wrapped in ecode.ErrInputUnreadable.
func Read(path string) (*imageview.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ecode.ErrInputUnreadable, err)
	}
	defer f.Close()

	var img image.Image
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		img, err = png.Decode(f)
	case ".bmp":
		img, err = bmp.Decode(f)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ecode.ErrInputUnreadable, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ecode.ErrInputUnreadable, err)
	}

	return fromImage(img)
}

// fromImage reduces an arbitrary decoded image to grayscale bytes and binds
// them into an imageview.Image. A pixel is background (0) only if its luma
// after conversion through image.Gray is exactly 0 (so a colored pixel dim
// enough to round to luma 0 is background too); any other gray level is
// squashed to 255,
// matching spec.md's 0/non-zero background rule rather than a windowed
// threshold.
func fromImage(img image.Image) (*imageview.Image, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: empty image", ecode.ErrInputUnreadable)
	}

	gray := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gray.Set(x, y, img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	data := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := gray.GrayAt(x, y).Y
			if v != 0 {
				v = 255
			}
			data[y*width+x] = v
		}
	}

	out, err := imageview.New(width, height, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ecode.ErrInputUnreadable, err)
	}
	return out, nil
}
