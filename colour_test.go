package pictor

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColour_ParseHex(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		hex  string
		want Colour
	}{
		{"fff", White},
		{"#fff", White},
		{"000", Black},
		{"f00f", Colour{R: 255, A: 255}},
		{"0000", Transparent},
		{"#2196f3", Colour{R: 33, G: 150, B: 243, A: 255}},
		{"e91e6380", Colour{R: 233, G: 30, B: 99, A: 128}},
	}

	for _, tc := range testCases {
		got, ok := ParseHex(tc.hex)
		assert.True(ok, tc.hex)
		assert.Equal(tc.want, got, tc.hex)
	}

	for _, invalid := range []string{"", "#", "ggg", "12345", "#fffffffff"} {
		_, ok := ParseHex(invalid)
		assert.False(ok, invalid)
	}
}

func TestColour_NRGBA(t *testing.T) {
	assert := assert.New(t)

	c := Colour{R: 10, G: 20, B: 30, A: 40}
	assert.Equal(color.NRGBA{R: 10, G: 20, B: 30, A: 40}, c.NRGBA())
	assert.Equal(c, FromColor(c.NRGBA()))

	assert.Equal(White, FromColor(color.White))
	assert.Equal(Transparent, FromColor(color.NRGBA{}))
}
