/*
File    : pixelscript/pixel/codec.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package pixel

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"
)

// Decode reads a PNG or JPEG image from r and converts it into a Grid of
// RGB triples (alpha, if present, is discarded -- the pixel value model
// has no notion of transparency). The codec is built directly on the
// standard library's image packages; see DESIGN.md.
func Decode(r io.Reader) (*Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts any decoded image.Image into a Grid.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	grid := NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// image.Image.RGBA returns 16-bit-scaled channels; reduce to 8-bit.
			grid.pix[y*width+x] = [3]byte{byte(r >> 8), byte(g >> 8), byte(b >> 8)}
		}
	}
	return grid
}

// ToImage converts the grid to a standard image.Image for encoding.
func (g *Grid) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := g.pix[y*g.Width+x]
			i := img.PixOffset(x, y)
			img.Pix[i+0] = p[0]
			img.Pix[i+1] = p[1]
			img.Pix[i+2] = p[2]
			img.Pix[i+3] = 0xff
		}
	}
	return img
}

// EncodePNG writes the grid to w as a PNG image.
func (g *Grid) EncodePNG(w io.Writer) error {
	return png.Encode(w, g.ToImage())
}

// EncodeJPEG writes the grid to w as a JPEG image at the given quality
// (1-100).
func (g *Grid) EncodeJPEG(w io.Writer, quality int) error {
	return jpeg.Encode(w, g.ToImage(), &jpeg.Options{Quality: quality})
}

// IsSupportedImageExt reports whether filename's extension is one this
// package can decode: png, jpg, or jpeg.
func IsSupportedImageExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg":
		return true
	default:
		return false
	}
}
