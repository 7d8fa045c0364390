package voxview

// CoordinateVector holds one 1-indexed position per extra dimension,
// typically produced from navigation controls (sliders) by the presentation
// layer. A nil or short vector is padded with 1s (the first frame along
// each missing dimension).
type CoordinateVector []int

// DefaultCoordinate returns the all-ones vector selecting the first frame
func (sd *ShapeDescriptor) DefaultCoordinate() CoordinateVector {
	extra := sd.ExtraDims()
	coord := make(CoordinateVector, len(extra))
	for i := range coord {
		coord[i] = 1
	}
	return coord
}

// ResolveFrame converts a 1-indexed coordinate vector into a flat 0-indexed
// frame index using mixed-radix encoding over the extra dimensions, with the
// first extra dimension fastest-varying.
//
// Out-of-range digits are clamped to their dimension, and the final index is
// clamped to [0, FrameCount-1]. Stale coordinates from a navigation control
// (e.g. after a dimension shrank) degrade to the nearest valid frame rather
// than failing.
func (sd *ShapeDescriptor) ResolveFrame(coord CoordinateVector) int {
	extra := sd.ExtraDims()
	index := 0
	stride := 1
	for i, size := range extra {
		c := 1
		if i < len(coord) {
			c = coord[i]
		}
		if c < 1 {
			c = 1
		}
		if c > size {
			c = size
		}
		if size > 1 {
			index += (c - 1) * stride
			stride *= size
		}
	}
	if max := sd.FrameCount() - 1; index > max {
		index = max
	}
	if index < 0 {
		index = 0
	}
	return index
}

// FrameCoordinate is the inverse of ResolveFrame: it converts a flat frame
// index back into the 1-indexed coordinate vector. Indices outside
// [0, FrameCount-1] are clamped first, so the round trip
// ResolveFrame(FrameCoordinate(i)) == i holds for all valid i.
func (sd *ShapeDescriptor) FrameCoordinate(index int) CoordinateVector {
	if index < 0 {
		index = 0
	}
	if max := sd.FrameCount() - 1; index > max {
		index = max
	}
	extra := sd.ExtraDims()
	coord := make(CoordinateVector, len(extra))
	for i, size := range extra {
		if size > 1 {
			coord[i] = index%size + 1
			index /= size
		} else {
			// size <= 1 dimensions occupy a position but never vary
			coord[i] = 1
		}
	}
	return coord
}
