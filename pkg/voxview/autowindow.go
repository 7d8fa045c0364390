package voxview

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// AutoWindow estimates a window from the physical values of a frame.
//
// Data spanning a CT-like range (below -500 and above +500) gets a
// percentile window: center at the midpoint of the 5th and 95th
// percentiles, width their spread, floored at 100 so near-uniform frames
// keep usable contrast. Anything else falls back to the soft tissue
// window at 40/350.
func AutoWindow(values []float64) Window {
	if len(values) == 0 {
		return Window{Center: 40, Width: 350, Explanation: "AUTO"}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	min, max := sorted[0], sorted[len(sorted)-1]
	if min < -500 && max > 500 {
		p5 := stat.Quantile(0.05, stat.Empirical, sorted, nil)
		p95 := stat.Quantile(0.95, stat.Empirical, sorted, nil)
		width := p95 - p5
		if width < 100 {
			width = 100
		}
		return Window{Center: (p5 + p95) / 2, Width: width, Explanation: "AUTO"}
	}

	return Window{Center: 40, Width: 350, Explanation: "AUTO"}
}

// AutoWindowFrame decodes one frame and estimates its window from the
// rescaled sample values. Alpha samples of RGBA frames are excluded so the
// opacity plane does not skew the percentiles.
func AutoWindowFrame(sd *ShapeDescriptor, frames *FrameCollection, coord CoordinateVector) (Window, error) {
	if err := sd.Validate(); err != nil {
		return Window{}, err
	}
	index := sd.ResolveFrame(coord)
	raw, err := frames.Frame(index)
	if err != nil {
		return Window{}, err
	}
	samples, err := DecodeSamples(raw, sd.Width(), sd.Height(), sd.Channels, sd.BitDepth)
	if err != nil {
		if ble, ok := err.(*BufferLengthError); ok {
			ble.FrameIndex = index
		}
		return Window{}, err
	}

	values := make([]float64, 0, len(samples))
	for i, s := range samples {
		if sd.Channels == 4 && i%4 == 3 {
			continue
		}
		values = append(values, sd.Physical(s))
	}
	return AutoWindow(values), nil
}
