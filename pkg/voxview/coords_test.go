package voxview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFrame_MixedRadix(t *testing.T) {
	// 4x4 frames over extra dims 3x2: first extra dimension fastest-varying
	sd := NewShapeDescriptor(4, 4, 3, 2)

	assert.Equal(t, 0, sd.ResolveFrame(CoordinateVector{1, 1}))
	assert.Equal(t, 1, sd.ResolveFrame(CoordinateVector{2, 1}))
	assert.Equal(t, 2, sd.ResolveFrame(CoordinateVector{3, 1}))
	assert.Equal(t, 3, sd.ResolveFrame(CoordinateVector{1, 2}))
	assert.Equal(t, 5, sd.ResolveFrame(CoordinateVector{3, 2}))
}

func TestResolveFrame_Clamping(t *testing.T) {
	sd := NewShapeDescriptor(4, 4, 3)

	// stale coordinates degrade to the nearest valid frame, never fail
	assert.Equal(t, 2, sd.ResolveFrame(CoordinateVector{99}))
	assert.Equal(t, 0, sd.ResolveFrame(CoordinateVector{0}))
	assert.Equal(t, 0, sd.ResolveFrame(CoordinateVector{-5}))
}

func TestResolveFrame_DefaultCoordinate(t *testing.T) {
	sd := NewShapeDescriptor(4, 4, 3, 2)

	def := sd.DefaultCoordinate()
	assert.Equal(t, CoordinateVector{1, 1}, def)
	assert.Equal(t, 0, sd.ResolveFrame(def))

	// nil and short vectors fill with ones
	assert.Equal(t, 0, sd.ResolveFrame(nil))
	assert.Equal(t, 1, sd.ResolveFrame(CoordinateVector{2}))
}

func TestResolveFrame_SizeOneDimensions(t *testing.T) {
	// size-1 dims occupy a position but never vary
	sd := NewShapeDescriptor(4, 4, 1, 3)

	assert.Equal(t, 3, sd.FrameCount())
	assert.Equal(t, 0, sd.ResolveFrame(CoordinateVector{1, 1}))
	assert.Equal(t, 1, sd.ResolveFrame(CoordinateVector{1, 2}))
	assert.Equal(t, CoordinateVector{1, 2}, sd.FrameCoordinate(1))
}

func TestResolveFrame_NoExtraDimensions(t *testing.T) {
	sd := NewShapeDescriptor(16, 16)

	assert.Equal(t, 1, sd.FrameCount())
	assert.Equal(t, 0, sd.ResolveFrame(nil))
	assert.Empty(t, sd.FrameCoordinate(0))
}

func TestFrameCoordinate_RoundTrip(t *testing.T) {
	shapes := []*ShapeDescriptor{
		NewShapeDescriptor(4, 4, 3),
		NewShapeDescriptor(8, 8, 3, 2),
		NewShapeDescriptor(8, 8, 2, 1, 4),
		NewShapeDescriptor(2, 2, 5, 4, 3),
	}

	for _, sd := range shapes {
		// resolve(unresolve(i)) == i for all valid i
		for i := 0; i < sd.FrameCount(); i++ {
			coord := sd.FrameCoordinate(i)
			require.Equal(t, i, sd.ResolveFrame(coord), "dims=%v index=%d coord=%v", sd.Dimensions, i, coord)
		}
	}
}

func TestResolveFrame_RoundTripInverse(t *testing.T) {
	sd := NewShapeDescriptor(4, 4, 3, 2, 4)

	// unresolve(resolve(c)) == c for all valid c
	for a := 1; a <= 3; a++ {
		for b := 1; b <= 2; b++ {
			for c := 1; c <= 4; c++ {
				coord := CoordinateVector{a, b, c}
				index := sd.ResolveFrame(coord)
				require.Equal(t, coord, sd.FrameCoordinate(index))
			}
		}
	}
}

func TestFrameCoordinate_ClampsIndex(t *testing.T) {
	sd := NewShapeDescriptor(4, 4, 3, 2)

	assert.Equal(t, sd.FrameCoordinate(5), sd.FrameCoordinate(99))
	assert.Equal(t, sd.FrameCoordinate(0), sd.FrameCoordinate(-1))
}
