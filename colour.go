package pictor

import "image/color"

// Colour is an 8-bit per channel sRGB colour with straight (non-premultiplied)
// alpha. A is 0 for fully transparent and 255 for fully opaque.
type Colour struct {
	R, G, B, A uint8
}

// Convenience colours.
var (
	Black       = Colour{R: 0, G: 0, B: 0, A: 255}
	White       = Colour{R: 255, G: 255, B: 255, A: 255}
	Transparent = Colour{}
)

// NRGBA converts the colour to the standard library representation.
func (c Colour) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts any color.Color to a Colour, quantizing to 8 bits
// per channel.
func FromColor(c color.Color) Colour {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Colour{R: nrgba.R, G: nrgba.G, B: nrgba.B, A: nrgba.A}
}

// ParseHex parses a colour from a hex string, with or without a leading '#'.
// The accepted forms are RGB, RGBA, RRGGBB and RRGGBBAA; the alpha channel
// defaults to opaque when absent. It returns false when the string does not
// match any of these forms.
func ParseHex(hex string) (Colour, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	a := uint32(255)
	ok := true

	parse := func(s string) uint32 {
		var v uint32
		for i := 0; i < len(s); i++ {
			var n uint32
			switch ch := s[i]; {
			case ch >= '0' && ch <= '9':
				n = uint32(ch - '0')
			case ch >= 'a' && ch <= 'f':
				n = uint32(ch-'a') + 10
			case ch >= 'A' && ch <= 'F':
				n = uint32(ch-'A') + 10
			default:
				ok = false
			}
			v = v<<4 | n
		}
		return v
	}

	switch len(hex) {
	case 3:
		r, g, b = parse(hex[0:1])*17, parse(hex[1:2])*17, parse(hex[2:3])*17
	case 4:
		r, g, b = parse(hex[0:1])*17, parse(hex[1:2])*17, parse(hex[2:3])*17
		a = parse(hex[3:4]) * 17
	case 6:
		r, g, b = parse(hex[0:2]), parse(hex[2:4]), parse(hex[4:6])
	case 8:
		r, g, b = parse(hex[0:2]), parse(hex[2:4]), parse(hex[4:6])
		a = parse(hex[6:8])
	default:
		return Colour{}, false
	}

	if !ok {
		return Colour{}, false
	}
	return Colour{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, true
}
