package pictor

import (
	"github.com/pkg/errors"
)

// Image is an immutable raster of Colour values. The pixels are stored
// densely in row-major order and the slice length is always exactly
// Dim.Area(). Every operation returns a new Image and leaves the receiver
// untouched; no two Image values ever share a pixel buffer.
type Image struct {
	dim    Dim
	pixels []Colour
}

// Blank creates an opaque black canvas of the given dimensions.
func Blank(d Dim) (Image, error) {
	return BlankWithColour(d, Black)
}

// BlankWithColour creates a canvas of the given dimensions where every
// pixel equals the fill colour. Dimensions with a zero component yield a
// valid, empty image.
func BlankWithColour(d Dim, colour Colour) (Image, error) {
	if err := d.validate(); err != nil {
		return Image{}, err
	}

	pixels := make([]Colour, d.Area())
	for i := range pixels {
		pixels[i] = colour
	}
	return Image{dim: d, pixels: pixels}, nil
}

// FromPixels builds an image from a row-major pixel slice, as produced by
// an external codec. The slice is copied, so the caller keeps ownership of
// its buffer. The slice length must equal the area of the dimensions.
func FromPixels(d Dim, pixels []Colour) (Image, error) {
	if err := d.validate(); err != nil {
		return Image{}, err
	}
	if len(pixels) != d.Area() {
		return Image{}, errors.Wrapf(ErrInvalidDimensions,
			"%d pixels for a %dx%d image", len(pixels), d.W, d.H)
	}

	buf := make([]Colour, len(pixels))
	copy(buf, pixels)
	return Image{dim: d, pixels: buf}, nil
}

// Dimensions returns the width and height of the image.
func (img Image) Dimensions() Dim {
	return img.dim
}

// Bounds returns the entire image as a region anchored at the origin.
func (img Image) Bounds() Region {
	return FromTopLeft(img.dim)
}

// Get looks up the colour of a single pixel. It returns ErrOutOfBounds
// when the location is not within [0,w)x[0,h).
func (img Image) Get(loc Loc) (Colour, error) {
	if !loc.Inside(img.Bounds()) {
		return Colour{}, errors.Wrapf(ErrOutOfBounds, "(%d,%d) in %dx%d", loc.X, loc.Y, img.dim.W, img.dim.H)
	}
	return img.pixels[loc.Index(img.dim)], nil
}

// set replaces a single pixel. It is only ever called on an Image that has
// not yet been handed to a caller, which is what keeps returned values
// immutable. The location must already be in bounds.
func (img Image) set(loc Loc, colour Colour) {
	img.pixels[loc.Index(img.dim)] = colour
}

// clone returns a deep copy sharing no pixel storage with the receiver.
func (img Image) clone() Image {
	pixels := make([]Colour, len(img.pixels))
	copy(pixels, img.pixels)
	return Image{dim: img.dim, pixels: pixels}
}

// Fill returns a new image of the same dimensions with every pixel set to
// the given colour.
func (img Image) Fill(colour Colour) Image {
	out, _ := BlankWithColour(img.dim, colour)
	return out
}

// FillRegion returns a new image where the pixels inside the region are
// replaced by the given colour and all others are copied unchanged. The
// part of the region outside the image, if any, is ignored.
func (img Image) FillRegion(region Region, colour Colour) Image {
	out := img.clone()
	span := region.Intersect(img.Bounds())

	for y := span.Min.Y; y < span.Min.Y+span.Dim.H; y++ {
		for x := span.Min.X; x < span.Min.X+span.Dim.W; x++ {
			out.set(Loc{X: x, Y: y}, colour)
		}
	}
	return out
}

// Crop cuts the given region out of the image and returns it as a new
// image. A region reaching past the right or bottom edge is clamped to the
// image bounds. It returns ErrRegionOutOfBounds when the region's top-left
// corner does not lie inside the image.
func (img Image) Crop(region Region) (Image, error) {
	if !region.Min.Inside(img.Bounds()) {
		return Image{}, errors.Wrapf(ErrRegionOutOfBounds,
			"crop corner (%d,%d) in %dx%d", region.Min.X, region.Min.Y, img.dim.W, img.dim.H)
	}
	span := region.Intersect(img.Bounds())

	out := Image{
		dim:    span.Dim,
		pixels: make([]Colour, span.Dim.Area()),
	}
	for y := 0; y < span.Dim.H; y++ {
		for x := 0; x < span.Dim.W; x++ {
			out.set(Loc{X: x, Y: y}, img.pixels[Loc{X: span.Min.X + x, Y: span.Min.Y + y}.Index(img.dim)])
		}
	}
	return out, nil
}
