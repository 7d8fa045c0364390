package voxview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPhysical_LinearRescale(t *testing.T) {
	// CT convention: slope 1, intercept -1024
	assert.Equal(t, 0.0, ToPhysical(1024, 1, -1024))
	assert.Equal(t, 976.0, ToPhysical(2000, 1, -1024))
	assert.Equal(t, 476.0, ToPhysical(1000, 1.5, -1024))
}

func TestToPhysical_HounsfieldClamp(t *testing.T) {
	// out-of-spec data clamps instead of overflowing the windowing math
	assert.Equal(t, PhysicalMin, ToPhysical(0, 1, -5000))
	assert.Equal(t, PhysicalMax, ToPhysical(65535, 1, 0))
}

func TestIsPhysicalUnit(t *testing.T) {
	assert.True(t, IsPhysicalUnit("HU"))
	assert.True(t, IsPhysicalUnit("hu"))
	assert.True(t, IsPhysicalUnit(" HU "))
	assert.False(t, IsPhysicalUnit(""))
	assert.False(t, IsPhysicalUnit("US"))
	assert.False(t, IsPhysicalUnit("OD"))
}

func TestPhysical_RawPassthroughWithoutUnit(t *testing.T) {
	sd := NewShapeDescriptor(4, 4)
	sd.RescaleSlope = 2
	sd.RescaleIntercept = 100

	// no recognized unit tag: slope/intercept ignored, no clamp
	assert.Equal(t, 50000.0, sd.Physical(50000))

	sd.RescaleType = "HU"
	assert.Equal(t, PhysicalMax, sd.Physical(50000))
	assert.Equal(t, 120.0, sd.Physical(10))
}
