// Package voxview resolves and renders frames of multi-dimensional image
// volumes. Given a shape descriptor, a collection of raw per-frame buffers
// and a coordinate in the navigable dimensions, it decodes the selected
// frame's samples, applies linear rescale and window/level mapping, and
// composes an RGBA display raster. Every operation is a pure transform of
// immutable inputs: no I/O, no logging, no shared state.
package voxview

import (
	"fmt"
	"strings"
)

// Photometric controls whether higher physical values render brighter or
// darker, per DICOM Photometric Interpretation (MONOCHROME2 vs MONOCHROME1).
type Photometric int

const (
	// PhotometricNormal maps higher values to brighter intensities (MONOCHROME2)
	PhotometricNormal Photometric = iota
	// PhotometricInverted maps higher values to darker intensities (MONOCHROME1)
	PhotometricInverted
)

// String returns the canonical name for the interpretation
func (p Photometric) String() string {
	if p == PhotometricInverted {
		return "INVERTED"
	}
	return "NORMAL"
}

// ParsePhotometric parses a photometric interpretation name.
// Accepts NORMAL/INVERTED and the DICOM MONOCHROME2/MONOCHROME1 spellings.
func ParsePhotometric(s string) (Photometric, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NORMAL", "MONOCHROME2":
		return PhotometricNormal, nil
	case "INVERTED", "MONOCHROME1":
		return PhotometricInverted, nil
	}
	return PhotometricNormal, fmt.Errorf("unknown photometric interpretation %q", s)
}

// ShapeDescriptor is the validated view of one image module's N-dimensional
// geometry and radiometric metadata. It is assembled once by the reader
// collaborator and treated as immutable for the lifetime of the module.
//
// Dimensions[0] is width and Dimensions[1] is height; any remaining entries
// are navigable "extra" dimensions (slice, phase, channel of acquisition).
type ShapeDescriptor struct {
	Dimensions     []int
	DimensionNames []string
	Channels       int
	ChannelNames   []string

	// BitDepth is bits per stored sample, 8 or 16
	BitDepth int

	// RescaleType tags the physical unit of rescaled values (e.g. "HU").
	// Rescale is only applied when the tag is a recognized physical unit.
	RescaleType      string
	RescaleSlope     float64
	RescaleIntercept float64

	WindowCenter float64
	WindowWidth  float64
	Photometric  Photometric
}

// NewShapeDescriptor creates a descriptor with the given dimensions and
// grayscale 8-bit defaults: slope 1, intercept 0, window 0/255.
func NewShapeDescriptor(dimensions ...int) *ShapeDescriptor {
	return &ShapeDescriptor{
		Dimensions:   dimensions,
		Channels:     1,
		BitDepth:     8,
		RescaleSlope: 1.0,
		WindowCenter: 0,
		WindowWidth:  255,
	}
}

// Width returns the first dimension
func (sd *ShapeDescriptor) Width() int {
	if len(sd.Dimensions) < 1 {
		return 0
	}
	return sd.Dimensions[0]
}

// Height returns the second dimension
func (sd *ShapeDescriptor) Height() int {
	if len(sd.Dimensions) < 2 {
		return 0
	}
	return sd.Dimensions[1]
}

// ExtraDims returns the navigable dimensions beyond width and height
func (sd *ShapeDescriptor) ExtraDims() []int {
	if len(sd.Dimensions) <= 2 {
		return nil
	}
	return sd.Dimensions[2:]
}

// FrameCount returns the number of frames implied by the extra dimensions.
// A descriptor with no extra dimensions holds a single frame.
func (sd *ShapeDescriptor) FrameCount() int {
	count := 1
	for _, size := range sd.ExtraDims() {
		if size > 1 {
			count *= size
		}
	}
	return count
}

// PixelsPerFrame returns width * height
func (sd *ShapeDescriptor) PixelsPerFrame() int {
	return sd.Width() * sd.Height()
}

// BytesPerSample returns BitDepth / 8
func (sd *ShapeDescriptor) BytesPerSample() int {
	return sd.BitDepth / 8
}

// SamplesPerFrame returns width * height * channels
func (sd *ShapeDescriptor) SamplesPerFrame() int {
	return sd.PixelsPerFrame() * sd.Channels
}

// FrameSize returns the expected raw byte length of one frame buffer
func (sd *ShapeDescriptor) FrameSize() int {
	return sd.SamplesPerFrame() * sd.BytesPerSample()
}

// DimensionName returns the configured name for dimension i, or "Dimension i"
func (sd *ShapeDescriptor) DimensionName(i int) string {
	if i >= 0 && i < len(sd.DimensionNames) && sd.DimensionNames[i] != "" {
		return sd.DimensionNames[i]
	}
	return fmt.Sprintf("Dimension %d", i)
}

// ChannelsSupported reports whether the channel count has a first-class
// raster mapping. Other counts still decode, treated as grayscale with the
// extra channel samples dropped, and the render result is flagged degraded.
func (sd *ShapeDescriptor) ChannelsSupported() bool {
	switch sd.Channels {
	case 1, 3, 4:
		return true
	}
	return false
}

// Window returns the descriptor's window as a Window value
func (sd *ShapeDescriptor) Window() Window {
	return Window{Center: sd.WindowCenter, Width: sd.WindowWidth}
}

// GeometryError reports a descriptor whose geometry cannot support decoding.
// The engine refuses to decode rather than guessing at intent.
type GeometryError struct {
	Dimensions []int
	Reason     string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid geometry %v: %s", e.Dimensions, e.Reason)
}

// Validate returns the first critical problem with the descriptor, or nil.
// Use ValidateShape for the full list of errors and warnings.
func (sd *ShapeDescriptor) Validate() error {
	if len(sd.Dimensions) < 2 {
		return &GeometryError{Dimensions: sd.Dimensions, Reason: "need at least width and height"}
	}
	for i, size := range sd.Dimensions {
		if size < 1 {
			return &GeometryError{Dimensions: sd.Dimensions, Reason: fmt.Sprintf("dimension %d is %d, must be positive", i, size)}
		}
	}
	if sd.BitDepth != 8 && sd.BitDepth != 16 {
		return fmt.Errorf("unsupported bit depth %d: must be 8 or 16", sd.BitDepth)
	}
	if sd.Channels < 1 {
		return fmt.Errorf("invalid channel count %d: must be positive", sd.Channels)
	}
	return nil
}
