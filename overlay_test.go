package pictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlay_OpaqueReplace(t *testing.T) {
	assert := assert.New(t)

	dst, _ := Blank(Square(4))
	src, _ := BlankWithColour(Square(2), White)

	res := dst.Overlay(src, Loc{X: 1, Y: 1})
	assert.Equal(Square(4), res.Dimensions())

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c, err := res.Get(Loc{X: x, Y: y})
			assert.NoError(err)

			covered := x >= 1 && x <= 2 && y >= 1 && y <= 2
			if covered {
				assert.Equal(White, c, "(%d,%d)", x, y)
			} else {
				assert.Equal(Black, c, "(%d,%d)", x, y)
			}
		}
	}
}

func TestOverlay_TransparentIdentity(t *testing.T) {
	assert := assert.New(t)

	dst, _ := BlankWithColour(Square(5), Colour{R: 20, G: 40, B: 60, A: 255})
	src, _ := BlankWithColour(Square(3), Transparent)

	for _, offset := range []Loc{{}, {X: 2, Y: 2}, {X: -1, Y: -1}, {X: 4, Y: 4}} {
		res := dst.Overlay(src, offset)
		assert.Equal(dst, res, "offset %v", offset)
	}
}

func TestOverlay_Clipping(t *testing.T) {
	assert := assert.New(t)

	dst, _ := BlankWithColour(Square(4), Black)
	src, _ := BlankWithColour(Square(2), White)

	// Entirely off-canvas placements leave the destination unchanged.
	for _, offset := range []Loc{{X: -2, Y: 0}, {X: 0, Y: -2}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: -10, Y: -10}} {
		res := dst.Overlay(src, offset)
		assert.Equal(dst, res, "offset %v", offset)
	}

	// A negative offset clips the top-left part of the source.
	res := dst.Overlay(src, Loc{X: -1, Y: -1})
	c, _ := res.Get(Loc{})
	assert.Equal(White, c)
	c, _ = res.Get(Loc{X: 1, Y: 0})
	assert.Equal(Black, c)
	c, _ = res.Get(Loc{X: 0, Y: 1})
	assert.Equal(Black, c)

	// A bottom-right overhang clips the rest of the source.
	res = dst.Overlay(src, Loc{X: 3, Y: 3})
	c, _ = res.Get(Loc{X: 3, Y: 3})
	assert.Equal(White, c)
	c, _ = res.Get(Loc{X: 2, Y: 3})
	assert.Equal(Black, c)
}

func TestOverlay_SourceOverBlending(t *testing.T) {
	assert := assert.New(t)

	// A half transparent white over opaque black mixes proportionally.
	dst, _ := BlankWithColour(Square(1), Black)
	src, _ := BlankWithColour(Square(1), Colour{R: 255, G: 255, B: 255, A: 128})

	c, _ := dst.Overlay(src, Loc{}).Get(Loc{})
	assert.Equal(Colour{R: 128, G: 128, B: 128, A: 255}, c)

	// Over a fully transparent backdrop the source colour passes through
	// with its own alpha.
	dst, _ = BlankWithColour(Square(1), Transparent)
	src, _ = BlankWithColour(Square(1), Colour{R: 255, A: 128})

	c, _ = dst.Overlay(src, Loc{}).Get(Loc{})
	assert.Equal(Colour{R: 255, A: 128}, c)

	// Two fully transparent pixels stay fully transparent black.
	src, _ = BlankWithColour(Square(1), Colour{R: 99, G: 99, B: 99})
	c, _ = dst.Overlay(src, Loc{}).Get(Loc{})
	assert.Equal(Transparent, c)
}

func TestOverlay_OrderMatters(t *testing.T) {
	assert := assert.New(t)

	base, _ := Blank(Square(2))
	red, _ := BlankWithColour(Square(2), Colour{R: 255, A: 255})
	blue, _ := BlankWithColour(Square(2), Colour{B: 255, A: 255})

	redLast := base.Overlay(blue, Loc{}).Overlay(red, Loc{})
	blueLast := base.Overlay(red, Loc{}).Overlay(blue, Loc{})

	c, _ := redLast.Get(Loc{})
	assert.Equal(Colour{R: 255, A: 255}, c)
	c, _ = blueLast.Get(Loc{})
	assert.Equal(Colour{B: 255, A: 255}, c)
}

func TestOverlay_DoesNotMutateInputs(t *testing.T) {
	assert := assert.New(t)

	dst, _ := BlankWithColour(Square(3), Black)
	src, _ := BlankWithColour(Square(3), White)

	_ = dst.Overlay(src, Loc{})

	c, _ := dst.Get(Loc{X: 1, Y: 1})
	assert.Equal(Black, c)
	c, _ = src.Get(Loc{X: 1, Y: 1})
	assert.Equal(White, c)
}

func TestOverlay_Border(t *testing.T) {
	assert := assert.New(t)

	const borderWidth = 2

	img, _ := BlankWithColour(Dim{W: 4, H: 3}, Colour{R: 10, G: 20, B: 30, A: 255})

	dim, err := img.Dimensions().Expand(borderWidth)
	assert.NoError(err)
	assert.Equal(Dim{W: 8, H: 7}, dim)

	canvas, err := BlankWithColour(dim, White)
	assert.NoError(err)

	res := canvas.Overlay(img, Loc{X: borderWidth, Y: borderWidth})

	for y := 0; y < dim.H; y++ {
		for x := 0; x < dim.W; x++ {
			c, err := res.Get(Loc{X: x, Y: y})
			assert.NoError(err)

			inner := x >= borderWidth && x < borderWidth+4 &&
				y >= borderWidth && y < borderWidth+3
			if inner {
				assert.Equal(Colour{R: 10, G: 20, B: 30, A: 255}, c, "(%d,%d)", x, y)
			} else {
				assert.Equal(White, c, "(%d,%d)", x, y)
			}
		}
	}
}
