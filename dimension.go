package pictor

import (
	"github.com/pkg/errors"

	"github.com/pictorlib/pictor/utils"
)

// Dim holds the width and height of an image or region, in pixels.
// Both components are always non-negative; a Dim with a zero component
// is valid and describes an empty area.
type Dim struct {
	W, H int
}

// Square returns a Dim with equal width and height.
func Square(side int) Dim {
	return Dim{W: side, H: side}
}

// Area returns the number of pixels covered by the dimensions.
func (d Dim) Area() int {
	return d.W * d.H
}

// Expand grows the dimensions symmetrically on both axes, adding the
// margin twice per axis. This is the canvas size needed to draw a border
// of the given width around an image. It returns an error when a negative
// margin would shrink either component below zero.
func (d Dim) Expand(margin int) (Dim, error) {
	out := Dim{W: d.W + 2*margin, H: d.H + 2*margin}
	if err := out.validate(); err != nil {
		return Dim{}, errors.Wrapf(err, "cannot expand %dx%d by %d", d.W, d.H, margin)
	}
	return out, nil
}

func (d Dim) validate() error {
	if d.W < 0 || d.H < 0 {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d", d.W, d.H)
	}
	return nil
}

// Loc is a pixel location. (0,0) is the top-left corner, x grows to the
// right and y grows downwards. The components are signed because an
// overlay offset may place a source image partially off-canvas.
type Loc struct {
	X, Y int
}

// Add returns the location translated by another location.
func (l Loc) Add(rhs Loc) Loc {
	return Loc{X: l.X + rhs.X, Y: l.Y + rhs.Y}
}

// Offset returns the location translated by a dimension.
func (l Loc) Offset(d Dim) Loc {
	return Loc{X: l.X + d.W, Y: l.Y + d.H}
}

// Index returns the position of the location in a row-major pixel buffer
// of the given dimensions. Only meaningful for in-bounds locations.
func (l Loc) Index(d Dim) int {
	return l.Y*d.W + l.X
}

// LocFromIndex is the inverse of Index for buffers of the given dimensions.
func LocFromIndex(idx int, d Dim) Loc {
	return Loc{X: idx % d.W, Y: idx / d.W}
}

// Inside reports whether the location falls within a region. The check is
// left-inclusive and right-exclusive on both axes.
func (l Loc) Inside(r Region) bool {
	return l.X >= r.Min.X && l.X < r.Min.X+r.Dim.W &&
		l.Y >= r.Min.Y && l.Y < r.Min.Y+r.Dim.H
}

// Region is a rectangular area given by its top-left corner and its size.
type Region struct {
	Min Loc
	Dim Dim
}

// FromTopLeft returns the region of the given size anchored at the origin.
func FromTopLeft(d Dim) Region {
	return Region{Min: Loc{}, Dim: d}
}

// Intersect clamps the region to another region, returning the overlapping
// area. A disjoint pair yields a region with a zero component.
func (r Region) Intersect(other Region) Region {
	x0 := utils.Max(r.Min.X, other.Min.X)
	y0 := utils.Max(r.Min.Y, other.Min.Y)
	x1 := utils.Min(r.Min.X+r.Dim.W, other.Min.X+other.Dim.W)
	y1 := utils.Min(r.Min.Y+r.Dim.H, other.Min.Y+other.Dim.H)

	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Region{Min: Loc{X: x0, Y: y0}, Dim: Dim{W: x1 - x0, H: y1 - y0}}
}
