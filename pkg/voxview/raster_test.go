package voxview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeRaster_Grayscale(t *testing.T) {
	raster := ComposeRaster(2, 1, 1, []uint8{10, 200})

	assert.Len(t, raster, 8)
	assert.Equal(t, []byte{10, 10, 10, 255, 200, 200, 200, 255}, raster)
}

func TestComposeRaster_RGB(t *testing.T) {
	raster := ComposeRaster(2, 1, 3, []uint8{1, 2, 3, 4, 5, 6})

	assert.Equal(t, []byte{1, 2, 3, 255, 4, 5, 6, 255}, raster)
}

func TestComposeRaster_RGBAAlphaPassthrough(t *testing.T) {
	raster := ComposeRaster(1, 1, 4, []uint8{9, 8, 7, 42})

	assert.Equal(t, []byte{9, 8, 7, 42}, raster)
}

func TestComposeRaster_DegradedChannelsUseFirstSample(t *testing.T) {
	// 5 channels per pixel: only the first drives the gray value
	raster := ComposeRaster(2, 1, 5, []uint8{10, 1, 2, 3, 4, 20, 5, 6, 7, 8})

	assert.Equal(t, []byte{10, 10, 10, 255, 20, 20, 20, 255}, raster)
}

func TestComposeRaster_ShortInputIsTransparentBlack(t *testing.T) {
	// second pixel has no samples left
	raster := ComposeRaster(2, 1, 1, []uint8{128})

	assert.Equal(t, []byte{128, 128, 128, 255, 0, 0, 0, 0}, raster)

	// RGBA pixel missing only its alpha also goes transparent black
	raster = ComposeRaster(1, 1, 4, []uint8{9, 8, 7})
	assert.Equal(t, []byte{0, 0, 0, 0}, raster)
}

func TestComposeRaster_OutputLength(t *testing.T) {
	raster := ComposeRaster(7, 5, 3, make([]uint8, 7*5*3))
	assert.Len(t, raster, 7*5*4)
}
