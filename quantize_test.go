package complexplanet_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjn33/complexplanet"
)

func fieldOf(values ...float64) *complexplanet.Field {
	return &complexplanet.Field{Width: len(values), Height: 1, Values: values}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"greyscale8", "greyscale16", "colour24", "terrain"} {
		f, err := complexplanet.ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}
	_, err := complexplanet.ParseFormat("sepia")
	assert.Error(t, err)
}

func TestGreyscale8Endpoints(t *testing.T) {
	img, err := complexplanet.Greyscale8.Image(fieldOf(-1.0, 0.0, 1.0, -2.0, 2.0))
	require.NoError(t, err)
	gray, ok := img.(*image.Gray)
	require.True(t, ok)

	assert.Equal(t, uint8(0), gray.GrayAt(0, 0).Y, "-1 maps to black")
	assert.Equal(t, uint8(128), gray.GrayAt(1, 0).Y, "0 rounds to mid grey")
	assert.Equal(t, uint8(255), gray.GrayAt(2, 0).Y, "+1 maps to white")
	assert.Equal(t, uint8(0), gray.GrayAt(3, 0).Y, "below range clamps")
	assert.Equal(t, uint8(255), gray.GrayAt(4, 0).Y, "above range clamps")
}

func TestGreyscale8Monotone(t *testing.T) {
	values := []float64{-1.0, -0.6, -0.2, 0.0, 0.3, 0.7, 1.0}
	img, err := complexplanet.Greyscale8.Image(fieldOf(values...))
	require.NoError(t, err)
	gray := img.(*image.Gray)

	prev := uint8(0)
	for i := range values {
		cur := gray.GrayAt(i, 0).Y
		assert.GreaterOrEqual(t, cur, prev, "quantization must preserve elevation order")
		prev = cur
	}
}

func TestGreyscale16Endpoints(t *testing.T) {
	img, err := complexplanet.Greyscale16.Image(fieldOf(-1.0, 1.0))
	require.NoError(t, err)
	gray, ok := img.(*image.Gray16)
	require.True(t, ok)

	assert.Equal(t, uint16(0), gray.Gray16At(0, 0).Y)
	assert.Equal(t, uint16(65535), gray.Gray16At(1, 0).Y)
}

func TestColour24PacksAcrossChannels(t *testing.T) {
	img, err := complexplanet.Colour24.Image(fieldOf(-1.0, 1.0))
	require.NoError(t, err)
	rgba, ok := img.(*image.RGBA)
	require.True(t, ok)

	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 0, A: 255}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, rgba.RGBAAt(1, 0))
}

func TestColour24HighByteOrdersElevations(t *testing.T) {
	// The red channel carries the high byte of the 24-bit value, so it must
	// order elevations even though green and blue cycle.
	values := []float64{-1.0, -0.5, 0.0, 0.5, 1.0}
	img, err := complexplanet.Colour24.Image(fieldOf(values...))
	require.NoError(t, err)
	rgba := img.(*image.RGBA)

	prev := uint8(0)
	for i := range values {
		cur := rgba.RGBAAt(i, 0).R
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestTerrainFormatProducesOpaqueColours(t *testing.T) {
	img, err := complexplanet.Terrain.Image(fieldOf(-1.0, -0.2, 0.0, 0.4, 1.0))
	require.NoError(t, err)
	rgba, ok := img.(*image.RGBA)
	require.True(t, ok)

	for i := 0; i < 5; i++ {
		assert.Equal(t, uint8(255), rgba.RGBAAt(i, 0).A)
	}
	// The ramp ends are pinned: deep ocean is dark blue, peaks are snow.
	deep := rgba.RGBAAt(0, 0)
	assert.Greater(t, deep.B, deep.R, "deep ocean leans blue")
	assert.Greater(t, deep.B, deep.G, "deep ocean leans blue")
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, rgba.RGBAAt(4, 0),
		"the top of the ramp is snow white")
}
