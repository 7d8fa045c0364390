package voxview

import "strings"

// Physical value clamp bounds, matching the Hounsfield range used by CT
// viewers. Rescaled values outside this range are treated as corrupt or
// out-of-spec and clamped rather than allowed to overflow the windowing
// math. The clamp applies only on the rescale path; raw samples pass
// through unchanged.
const (
	PhysicalMin = -1000.0
	PhysicalMax = 3000.0
)

// IsPhysicalUnit reports whether a rescale type tag names a recognized
// physical unit. Only tagged data gets the slope/intercept transform;
// anything else is displayed in raw sample values.
func IsPhysicalUnit(rescaleType string) bool {
	switch strings.ToUpper(strings.TrimSpace(rescaleType)) {
	case "HU", "HOUNSFIELD":
		return true
	}
	return false
}

// ToPhysical converts a raw sample into a physical-unit value via the
// linear rescale, clamped to [PhysicalMin, PhysicalMax].
func ToPhysical(sample uint16, slope, intercept float64) float64 {
	v := float64(sample)*slope + intercept
	if v < PhysicalMin {
		return PhysicalMin
	}
	if v > PhysicalMax {
		return PhysicalMax
	}
	return v
}

// Physical maps a raw sample through the descriptor's rescale metadata.
// When RescaleType is not a recognized physical unit the raw sample value
// is returned unchanged.
func (sd *ShapeDescriptor) Physical(sample uint16) float64 {
	if !IsPhysicalUnit(sd.RescaleType) {
		return float64(sample)
	}
	return ToPhysical(sample, sd.RescaleSlope, sd.RescaleIntercept)
}
