package voxview

import (
	"math"
	"strings"
)

// Window represents a single window/level preset mapping physical values
// into display intensities, per DICOM Part 3 C.11.2.1.2 (linear VOI LUT).
type Window struct {
	Center      float64
	Width       float64
	Explanation string // optional description (e.g. "BONE", "SOFT TISSUE")
}

// Common CT viewing presets
var (
	SoftTissueWindow = Window{Center: 40, Width: 400, Explanation: "SOFT_TISSUE"}
	BoneWindow       = Window{Center: 400, Width: 2000, Explanation: "BONE"}
	LungWindow       = Window{Center: -600, Width: 1500, Explanation: "LUNG"}
	BrainWindow      = Window{Center: 50, Width: 350, Explanation: "BRAIN"}
)

// CTWindowPresets lists the named CT presets in display order
var CTWindowPresets = []Window{SoftTissueWindow, BoneWindow, LungWindow, BrainWindow}

// PresetWindow returns the named CT preset, matching case-insensitively on
// the explanation (e.g. "soft_tissue", "BONE").
func PresetWindow(name string) (Window, bool) {
	for _, w := range CTWindowPresets {
		if strings.EqualFold(w.Explanation, name) {
			return w, true
		}
	}
	return Window{}, false
}

// DisplayIntensity maps a physical value into an 8-bit display intensity.
//
// Values at or below center - 0.5 - (width-1)/2 map to 0, values above
// center - 0.5 + (width-1)/2 map to 255, and values in between map
// linearly. PhotometricInverted complements the result after windowing.
// The mapping is a pure function of its inputs.
func (w Window) DisplayIntensity(v float64, photometric Photometric) uint8 {
	width := w.Width
	if width < 1 {
		width = 1
	}
	lower := w.Center - 0.5 - (width-1)/2
	upper := w.Center - 0.5 + (width-1)/2

	var y float64
	switch {
	case v <= lower:
		y = 0
	case v > upper:
		y = 255
	default:
		y = math.Round(((v-(w.Center-0.5))/(width-1) + 0.5) * 255)
		if y < 0 {
			y = 0
		}
		if y > 255 {
			y = 255
		}
	}

	if photometric == PhotometricInverted {
		y = 255 - y
	}
	return uint8(y)
}
