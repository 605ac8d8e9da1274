package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
	"github.com/df07/go-spectral-pathtracer/pkg/spectrum"
)

// Image is the render output: a buffer of spectrally integrated CIE XYZ
// pixels. Encoding to a file format is the caller's responsibility.
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3 // row-major XYZ
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the XYZ value of pixel (x, y)
func (img *Image) At(x, y int) core.Vec3 {
	return img.Pixels[y*img.Width+x]
}

// Set stores the XYZ value of pixel (x, y)
func (img *Image) Set(x, y int, xyz core.Vec3) {
	img.Pixels[y*img.Width+x] = xyz
}

// maxElement returns the largest XYZ component in the buffer, at least 1
func (img *Image) maxElement() float64 {
	maxVal := 1.0
	for _, pixel := range img.Pixels {
		maxVal = math.Max(maxVal, pixel.MaxComponent())
	}
	return maxVal
}

// ToRGBA converts the XYZ buffer to an 8-bit sRGB image. The buffer is
// normalized by its peak component so the brightest feature maps to full
// scale, then companded to sRGB and adjusted by gamma.
func (img *Image) ToRGBA(gamma float64) *image.RGBA {
	scale := 1.0 / img.maxElement()

	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			srgb := spectrum.XYZToSRGB(img.At(x, y).Multiply(scale))
			if gamma != 1.0 {
				srgb = core.NewVec3(
					math.Pow(srgb.X, gamma),
					math.Pow(srgb.Y, gamma),
					math.Pow(srgb.Z, gamma),
				)
			}
			out.SetRGBA(x, y, color.RGBA{
				R: uint8(255*srgb.X + 0.5),
				G: uint8(255*srgb.Y + 0.5),
				B: uint8(255*srgb.Z + 0.5),
				A: 255,
			})
		}
	}
	return out
}
