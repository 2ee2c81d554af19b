/*
Package pictor is an image composition library built around immutable pixel
buffers. Images are plain values: every operation returns a new Image and
never mutates its inputs, so calls chain naturally and independent images can
be processed concurrently without locking.

The package provides canvas creation, dimension arithmetic, cropping, region
fills and an overlay operation that blends one image onto another with
source-over alpha compositing. Decoding and encoding raster formats lives in
the imio subpackage; a batch border tool is available as a command line
interface under cmd/pictor.

Adding a white border around an image is the canonical example:

	package main

	import (
		"log"

		"github.com/pictorlib/pictor"
		"github.com/pictorlib/pictor/imio"
	)

	func main() {
		const border = 16

		img, err := imio.Load("in.png")
		if err != nil {
			log.Fatal(err)
		}

		dim, err := img.Dimensions().Expand(border)
		if err != nil {
			log.Fatal(err)
		}

		canvas, err := pictor.BlankWithColour(dim, pictor.White)
		if err != nil {
			log.Fatal(err)
		}

		out := canvas.Overlay(img, pictor.Loc{X: border, Y: border})
		if err := imio.Save("out.png", out); err != nil {
			log.Fatal(err)
		}
	}
*/
package pictor
