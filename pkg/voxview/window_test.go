package voxview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayIntensity_SoftTissueBoundaries(t *testing.T) {
	// typical soft-tissue CT window
	win := Window{Center: 40, Width: 400}

	assert.Equal(t, uint8(0), win.DisplayIntensity(-160, PhotometricNormal))
	assert.Equal(t, uint8(255), win.DisplayIntensity(240, PhotometricNormal))

	mid := win.DisplayIntensity(40, PhotometricNormal)
	assert.InDelta(t, 128, float64(mid), 1)
}

func TestDisplayIntensity_BelowAndAbove(t *testing.T) {
	win := Window{Center: 40, Width: 400}

	assert.Equal(t, uint8(0), win.DisplayIntensity(-1000, PhotometricNormal))
	assert.Equal(t, uint8(255), win.DisplayIntensity(3000, PhotometricNormal))
}

func TestDisplayIntensity_Inverted(t *testing.T) {
	win := Window{Center: 40, Width: 400}

	for _, v := range []float64{-1000, -160, -39.5, 0, 40, 120.25, 239, 240, 3000} {
		normal := win.DisplayIntensity(v, PhotometricNormal)
		inverted := win.DisplayIntensity(v, PhotometricInverted)
		assert.Equal(t, 255-int(normal), int(inverted), "v=%g", v)
	}
}

func TestDisplayIntensity_Pure(t *testing.T) {
	win := Window{Center: 127.5, Width: 256}
	for i := 0; i < 3; i++ {
		assert.Equal(t, win.DisplayIntensity(64, PhotometricNormal), win.DisplayIntensity(64, PhotometricNormal))
	}
}

func TestDisplayIntensity_DegenerateWidth(t *testing.T) {
	// width below 1 acts as a hard threshold at the center
	win := Window{Center: 100, Width: 0}

	assert.Equal(t, uint8(0), win.DisplayIntensity(99, PhotometricNormal))
	assert.Equal(t, uint8(255), win.DisplayIntensity(100, PhotometricNormal))
}

func TestDisplayIntensity_Monotonic(t *testing.T) {
	win := Window{Center: 40, Width: 400}

	prev := win.DisplayIntensity(-200, PhotometricNormal)
	for v := -199.0; v <= 260; v++ {
		cur := win.DisplayIntensity(v, PhotometricNormal)
		assert.GreaterOrEqual(t, cur, prev, "v=%g", v)
		prev = cur
	}
}

func TestPresetWindow(t *testing.T) {
	win, ok := PresetWindow("soft_tissue")
	assert.True(t, ok)
	assert.Equal(t, SoftTissueWindow, win)

	win, ok = PresetWindow("BONE")
	assert.True(t, ok)
	assert.Equal(t, float64(2000), win.Width)

	_, ok = PresetWindow("nope")
	assert.False(t, ok)
}
