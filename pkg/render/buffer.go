package render

import (
	"image"
	"image/color"
)

// Buffer is an RGB image with 8 bits per channel and no alpha. Pix holds the
// rows top to bottom, three bytes per pixel.
type Buffer struct {
	Width, Height int
	Pix           []uint8
}

var _ image.Image = (*Buffer)(nil)

func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 3*width*height),
	}
}

// Row returns the bytes of row y.
func (b *Buffer) Row(y int) []uint8 {
	stride := 3 * b.Width
	return b.Pix[y*stride : (y+1)*stride]
}

func (b *Buffer) SetRGB(x, y int, c color.RGBA) {
	i := 3 * (y*b.Width + x)
	b.Pix[i] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
}

func (b *Buffer) RGBAt(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return color.RGBA{}
	}

	i := 3 * (y*b.Width + x)
	return color.RGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: 0xff}
}

func (b *Buffer) ColorModel() color.Model {
	return color.RGBAModel
}

func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

func (b *Buffer) At(x, y int) color.Color {
	return b.RGBAt(x, y)
}
