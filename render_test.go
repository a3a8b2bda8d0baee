package complexplanet_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjn33/complexplanet"
)

func TestRenderCubeMatchesSequentialFaces(t *testing.T) {
	p, err := complexplanet.NewPlanet(0, nil)
	require.NoError(t, err)

	const size = 8
	fields, err := complexplanet.RenderCube(p, size)
	require.NoError(t, err)

	for i, face := range complexplanet.Faces {
		want, err := complexplanet.RenderFace(p, face, size)
		require.NoError(t, err)
		require.NotNil(t, fields[i])
		assert.Equal(t, want.Values, fields[i].Values,
			"concurrent render of face %s must match a sequential one", face)
	}
}

func TestRenderFaceDimensions(t *testing.T) {
	p, err := complexplanet.NewPlanet(0, nil)
	require.NoError(t, err)

	f, err := complexplanet.RenderFace(p, complexplanet.FaceZP, 6)
	require.NoError(t, err)
	assert.Equal(t, 6, f.Width)
	assert.Equal(t, 6, f.Height)
	assert.Len(t, f.Values, 36)
}

func TestRenderRectDimensionsAndReproducibility(t *testing.T) {
	p0, err := complexplanet.NewPlanet(0, nil)
	require.NoError(t, err)
	p1, err := complexplanet.NewPlanet(0, nil)
	require.NoError(t, err)

	f0, err := complexplanet.RenderRect(p0, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, f0.Width)
	assert.Equal(t, 4, f0.Height)
	assert.Len(t, f0.Values, 32)

	f1, err := complexplanet.RenderRect(p1, 8)
	require.NoError(t, err)
	assert.Equal(t, f0.Values, f1.Values,
		"two planets built from one seed must render bit-identical maps")
}

func TestRenderRectSeedZeroSnapshot(t *testing.T) {
	// Golden bytes for the smallest full render. Any change to the node
	// table, a primitive backend or the quantizer shows up here, even when
	// the output stays internally consistent.
	p, err := complexplanet.NewPlanet(0, nil)
	require.NoError(t, err)

	f, err := complexplanet.RenderRect(p, 4)
	require.NoError(t, err)

	img, err := complexplanet.Greyscale8.Image(f)
	require.NoError(t, err)
	gray, ok := img.(*image.Gray)
	require.True(t, ok)
	assert.Equal(t, []uint8{26, 0, 2, 131, 159, 159, 159, 159}, gray.Pix)
}

func TestRenderRejectsBadSizes(t *testing.T) {
	p, err := complexplanet.NewPlanet(0, nil)
	require.NoError(t, err)

	_, err = complexplanet.RenderFace(p, complexplanet.FaceXP, 1)
	assert.Error(t, err)

	_, err = complexplanet.RenderCube(p, 0)
	assert.Error(t, err)

	_, err = complexplanet.RenderRect(p, 1)
	assert.Error(t, err)
}

func TestRenderRectOddWidthFloorsHeight(t *testing.T) {
	p, err := complexplanet.NewPlanet(0, nil)
	require.NoError(t, err)

	f, err := complexplanet.RenderRect(p, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, f.Width)
	assert.Equal(t, 3, f.Height)
	assert.Len(t, f.Values, 21)
}

func TestRenderedElevationsBounded(t *testing.T) {
	p, err := complexplanet.NewPlanet(3, nil)
	require.NoError(t, err)

	f, err := complexplanet.RenderRect(p, 16)
	require.NoError(t, err)
	for i, v := range f.Values {
		assert.GreaterOrEqual(t, v, -1.0, "pixel %d", i)
		assert.LessOrEqual(t, v, 1.0, "pixel %d", i)
	}
}
