package pictor

// Overlay composites the source image on top of the destination at the
// given offset and returns the result as a new image with the
// destination's dimensions. Blending uses the source-over rule: a fully
// opaque source pixel replaces the destination pixel, a fully transparent
// one leaves it untouched, and partial alpha mixes the two proportionally.
// Source pixels landing outside the destination are clipped silently, so
// any offset is valid, including negative ones. Overlay order matters:
// stacking B then C is not the same as C then B where they overlap.
func (img Image) Overlay(src Image, offset Loc) Image {
	out := img.clone()

	for sy := 0; sy < src.dim.H; sy++ {
		for sx := 0; sx < src.dim.W; sx++ {
			dst := Loc{X: offset.X + sx, Y: offset.Y + sy}
			if !dst.Inside(out.Bounds()) {
				continue
			}

			s := src.pixels[Loc{X: sx, Y: sy}.Index(src.dim)]
			d := out.pixels[dst.Index(out.dim)]
			out.set(dst, srcOver(s, d))
		}
	}
	return out
}

// srcOver applies the source-over alpha composition formula to a single
// pixel pair. The channels are normalized to [0, 1], blended with straight
// alpha and quantized back to 8 bits.
func srcOver(src, dst Colour) Colour {
	rsn := float64(src.R) / 255
	gsn := float64(src.G) / 255
	bsn := float64(src.B) / 255
	asn := float64(src.A) / 255

	rbn := float64(dst.R) / 255
	gbn := float64(dst.G) / 255
	bbn := float64(dst.B) / 255
	abn := float64(dst.A) / 255

	an := asn + abn*(1-asn)
	if an == 0 {
		return Transparent
	}

	rn := (asn*rsn + abn*rbn*(1-asn)) / an
	gn := (asn*gsn + abn*gbn*(1-asn)) / an
	bn := (asn*bsn + abn*bbn*(1-asn)) / an

	return Colour{
		R: uint8(rn*255 + 0.5),
		G: uint8(gn*255 + 0.5),
		B: uint8(bn*255 + 0.5),
		A: uint8(an*255 + 0.5),
	}
}
