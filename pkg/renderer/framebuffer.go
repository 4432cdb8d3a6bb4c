package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// Framebuffer is a single contiguous block of interleaved RGB byte samples.
// Layout is row-major, top-to-bottom: pixel (x, y) starts at (y*Width+x)*3
// and row 0 is the top row of the image. It is allocated once before workers
// start; safety under concurrent writes comes from workers owning disjoint
// regions, not from locking.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFramebuffer allocates a framebuffer for a width×height image
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
}

// SetRGB writes one pixel's channels
func (f *Framebuffer) SetRGB(x, y int, r, g, b uint8) {
	i := (y*f.Width + x) * 3
	f.Pix[i] = r
	f.Pix[i+1] = g
	f.Pix[i+2] = b
}

// RGB reads one pixel's channels
func (f *Framebuffer) RGB(x, y int) (r, g, b uint8) {
	i := (y*f.Width + x) * 3
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// ToRGBA copies the buffer into an image.RGBA for encoding
func (f *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.RGB(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// WritePPM writes the buffer as a binary P6 PPM image
func (f *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", f.Width, f.Height); err != nil {
		return err
	}
	if _, err := bw.Write(f.Pix); err != nil {
		return err
	}
	return bw.Flush()
}
