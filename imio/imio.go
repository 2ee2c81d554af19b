// Package imio converts between pictor images and encoded raster formats.
// It is the codec boundary of the library: the core packages never touch
// files or byte streams themselves, they only consume and produce decoded
// pixel buffers. PNG, JPEG and BMP are supported on both sides.
package imio

import (
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"github.com/pictorlib/pictor"
	"github.com/pictorlib/pictor/utils"
)

// ErrUnsupportedFormat is returned when encoding to an unknown format.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Decode reads an encoded image from the reader and converts it to a
// pictor image. Any format registered with the standard image package can
// be decoded; PNG, JPEG, BMP and GIF are registered by importing this
// package.
func Decode(r io.Reader) (pictor.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return pictor.Image{}, errors.Wrap(err, "could not decode the image")
	}
	return FromImage(src), nil
}

// Encode writes the image to the writer in the given format. The format is
// one of "png", "jpg", "jpeg" or "bmp"; JPEG output is written at maximum
// quality.
func Encode(w io.Writer, img pictor.Image, format string) error {
	nrgba := ToNRGBA(img)

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "png":
		return png.Encode(w, nrgba)
	case "jpg", "jpeg":
		return jpeg.Encode(w, nrgba, &jpeg.Options{Quality: 100})
	case "bmp":
		return bmp.Encode(w, nrgba)
	default:
		return errors.Wrap(ErrUnsupportedFormat, format)
	}
}

// FromImage converts any image.Image to a pictor image. The source is
// first normalized to 8-bit NRGBA with its origin moved to (0,0), so
// subimages and exotic color models are handled uniformly.
func FromImage(src image.Image) pictor.Image {
	nrgba := imaging.Clone(src)
	dim := pictor.Dim{W: nrgba.Rect.Dx(), H: nrgba.Rect.Dy()}

	pixels := make([]pictor.Colour, 0, dim.Area())
	for y := 0; y < dim.H; y++ {
		i := nrgba.PixOffset(0, y)
		for x := 0; x < dim.W; x++ {
			pixels = append(pixels, pictor.Colour{
				R: nrgba.Pix[i+0],
				G: nrgba.Pix[i+1],
				B: nrgba.Pix[i+2],
				A: nrgba.Pix[i+3],
			})
			i += 4
		}
	}

	out, _ := pictor.FromPixels(dim, pixels)
	return out
}

// ToNRGBA converts a pictor image to the standard library representation.
// The conversion is lossless: both sides store straight-alpha 8-bit
// channels.
func ToNRGBA(img pictor.Image) *image.NRGBA {
	dim := img.Dimensions()
	out := image.NewNRGBA(image.Rect(0, 0, dim.W, dim.H))

	for y := 0; y < dim.H; y++ {
		i := out.PixOffset(0, y)
		for x := 0; x < dim.W; x++ {
			c, _ := img.Get(pictor.Loc{X: x, Y: y})
			out.Pix[i+0] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = c.A
			i += 4
		}
	}
	return out
}

// Load reads and decodes the image file at the given path. The file
// content is sniffed first so that a file with a misleading extension is
// rejected before the decoder runs.
func Load(path string) (pictor.Image, error) {
	ctype, err := utils.DetectContentType(path)
	if err != nil {
		return pictor.Image{}, errors.Wrapf(err, "could not read %s", path)
	}
	if !strings.Contains(ctype, "image") {
		return pictor.Image{}, errors.Errorf("%s is not an image file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return pictor.Image{}, errors.Wrapf(err, "could not open %s", path)
	}
	defer file.Close()

	return Decode(file)
}

// Save encodes the image into the file at the given path, picking the
// format from the file extension. A missing extension defaults to JPEG,
// matching the behaviour of writing to a non-file stream.
func Save(path string, img pictor.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", path)
	}
	defer file.Close()

	ext := filepath.Ext(path)
	if ext == "" {
		ext = ".jpg"
	}
	return Encode(file, img, ext)
}
