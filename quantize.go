package complexplanet

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/mazznoer/colorgrad"
)

// Format selects how elevations are packed into pixels.
type Format int

const (
	// Greyscale8 packs elevation into one 8-bit channel.
	Greyscale8 Format = iota
	// Greyscale16 packs elevation into one 16-bit channel.
	Greyscale16
	// Colour24 spreads a 24-bit quantized elevation across the R, G and B
	// channels. The high byte lands in R, so the green and blue channels
	// carry rapidly-cycling low-order bits rather than independent data.
	Colour24
	// Terrain maps elevation through a hypsometric colour ramp. Not a
	// lossless encoding; meant for previews.
	Terrain
)

var formatNames = map[Format]string{
	Greyscale8:  "greyscale8",
	Greyscale16: "greyscale16",
	Colour24:    "colour24",
	Terrain:     "terrain",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return "unknown"
}

// ParseFormat maps a CLI format name to a Format.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if s == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown format %q", s)
}

// unit maps an elevation in [-1, 1] to [0, 1], clamping out-of-range input.
func unit(v float64) float64 {
	t := (v + 1.0) / 2.0
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Image quantizes a rendered field into an image in this format.
func (f Format) Image(field *Field) (image.Image, error) {
	bounds := image.Rect(0, 0, field.Width, field.Height)
	switch f {
	case Greyscale8:
		img := image.NewGray(bounds)
		for y := 0; y < field.Height; y++ {
			for x := 0; x < field.Width; x++ {
				img.SetGray(x, y, color.Gray{Y: uint8(math.Round(unit(field.At(x, y)) * 255.0))})
			}
		}
		return img, nil
	case Greyscale16:
		img := image.NewGray16(bounds)
		for y := 0; y < field.Height; y++ {
			for x := 0; x < field.Width; x++ {
				img.SetGray16(x, y, color.Gray16{Y: uint16(math.Round(unit(field.At(x, y)) * 65535.0))})
			}
		}
		return img, nil
	case Colour24:
		img := image.NewRGBA(bounds)
		for y := 0; y < field.Height; y++ {
			for x := 0; x < field.Width; x++ {
				q := uint32(unit(field.At(x, y)) * 16777215.0)
				img.SetRGBA(x, y, color.RGBA{
					R: uint8(q >> 16),
					G: uint8(q >> 8),
					B: uint8(q),
					A: 255,
				})
			}
		}
		return img, nil
	case Terrain:
		grad, err := terrainGradient()
		if err != nil {
			return nil, err
		}
		img := image.NewRGBA(bounds)
		for y := 0; y < field.Height; y++ {
			for x := 0; x < field.Width; x++ {
				r, g, b, _ := grad.At(unit(field.At(x, y))).RGBA()
				img.SetRGBA(x, y, color.RGBA{
					R: uint8(r >> 8),
					G: uint8(g >> 8),
					B: uint8(b >> 8),
					A: 255,
				})
			}
		}
		return img, nil
	default:
		return nil, fmt.Errorf("unknown format %d", int(f))
	}
}

// terrainGradient builds the hypsometric ramp: abyss through shallows below
// the midpoint, shore, lowland, highland and snow above it.
func terrainGradient() (colorgrad.Gradient, error) {
	return colorgrad.NewGradient().
		HtmlColors(
			"#000060", // abyss
			"#0040c0",
			"#40a0e0", // shallows
			"#d0c880", // shore
			"#308838",
			"#705830",
			"#808080",
			"#ffffff", // snow
		).
		Domain(0.0, 0.28, 0.48, 0.5, 0.6, 0.75, 0.88, 1.0).
		Build()
}
