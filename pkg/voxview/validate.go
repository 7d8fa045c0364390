package voxview

import "fmt"

// ValidationError represents a single problem found in a shape descriptor
type ValidationError struct {
	Field      string
	Message    string
	IsCritical bool // critical problems prevent decoding entirely
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult contains all validation errors and warnings for a
// shape descriptor
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// IsValid returns true if there are no critical errors
func (r ValidationResult) IsValid() bool {
	for _, err := range r.Errors {
		if err.IsCritical {
			return false
		}
	}
	return true
}

// HasErrors returns true if there are any errors
func (r ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// ValidateShape checks a descriptor and reports every problem found.
// Critical errors (bad geometry, bit depth, channel count) make the shape
// undecodable; warnings flag degraded-but-renderable metadata such as
// unsupported channel counts or mismatched name lists.
func ValidateShape(sd *ShapeDescriptor) ValidationResult {
	result := ValidationResult{}

	if len(sd.Dimensions) < 2 {
		result.Errors = append(result.Errors, ValidationError{
			Field:      "dimensions",
			Message:    fmt.Sprintf("need at least width and height, got %d dimension(s)", len(sd.Dimensions)),
			IsCritical: true,
		})
	}
	for i, size := range sd.Dimensions {
		if size < 1 {
			result.Errors = append(result.Errors, ValidationError{
				Field:      "dimensions",
				Message:    fmt.Sprintf("dimension %d is %d, must be positive", i, size),
				IsCritical: true,
			})
		}
	}

	if sd.BitDepth != 8 && sd.BitDepth != 16 {
		result.Errors = append(result.Errors, ValidationError{
			Field:      "bit_depth",
			Message:    fmt.Sprintf("%d is unsupported, must be 8 or 16", sd.BitDepth),
			IsCritical: true,
		})
	}

	if sd.Channels < 1 {
		result.Errors = append(result.Errors, ValidationError{
			Field:      "channels",
			Message:    fmt.Sprintf("%d is invalid, must be positive", sd.Channels),
			IsCritical: true,
		})
	} else if !sd.ChannelsSupported() {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "channels",
			Message: fmt.Sprintf("%d channels will render grayscale from the first channel", sd.Channels),
		})
	}

	if sd.WindowWidth < 1 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "window_width",
			Message: fmt.Sprintf("%g is below 1, treated as a hard threshold at the window center", sd.WindowWidth),
		})
	}

	if len(sd.DimensionNames) > 0 && len(sd.DimensionNames) != len(sd.Dimensions) {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "dimension_names",
			Message: fmt.Sprintf("%d names for %d dimensions, defaults used for the rest", len(sd.DimensionNames), len(sd.Dimensions)),
		})
	}
	if len(sd.ChannelNames) > 0 && len(sd.ChannelNames) != sd.Channels {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "channel_names",
			Message: fmt.Sprintf("%d names for %d channels", len(sd.ChannelNames), sd.Channels),
		})
	}

	return result
}
