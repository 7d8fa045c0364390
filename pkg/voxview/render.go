package voxview

import (
	"image"
)

// RenderResult is one decoded display raster plus the auxiliary facts the
// presentation layer needs: which frame was resolved, its pixel geometry,
// and whether channel handling was degraded.
type RenderResult struct {
	// Raster is the row-major RGBA buffer, top-left origin, width*height*4 bytes
	Raster []byte

	Width  int
	Height int

	// FrameIndex is the flat index the coordinate vector resolved to
	FrameIndex int

	// PixelsPerFrame is width*height
	PixelsPerFrame int

	// Degraded is set when the channel count has no first-class raster
	// mapping and the frame was rendered grayscale from the first channel
	Degraded bool

	// Window is the effective window used for the mapping
	Window Window
}

// Image wraps the raster in an *image.NRGBA sharing the same pixel buffer
func (r *RenderResult) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    r.Raster,
		Stride: r.Width * 4,
		Rect:   image.Rect(0, 0, r.Width, r.Height),
	}
}

// RenderFrame resolves the coordinate vector against the shape, decodes the
// selected frame and maps it into a fresh RGBA raster using the
// descriptor's own window. A nil coordinate selects the first frame.
//
// The pipeline is stateless and performs no I/O; concurrent calls for
// different (or identical) frames need no coordination.
func RenderFrame(sd *ShapeDescriptor, frames *FrameCollection, coord CoordinateVector) (*RenderResult, error) {
	return RenderFrameWindow(sd, frames, coord, sd.Window())
}

// RenderFrameWindow is RenderFrame with an explicit window override,
// for viewers that let the user pick presets or drag window/level.
func RenderFrameWindow(sd *ShapeDescriptor, frames *FrameCollection, coord CoordinateVector, win Window) (*RenderResult, error) {
	if err := sd.Validate(); err != nil {
		return nil, err
	}

	index := sd.ResolveFrame(coord)
	raw, err := frames.Frame(index)
	if err != nil {
		return nil, err
	}
	if expected := sd.FrameSize(); len(raw) != expected {
		return nil, &BufferLengthError{FrameIndex: index, Expected: expected, Actual: len(raw)}
	}

	samples, err := DecodeSamples(raw, sd.Width(), sd.Height(), sd.Channels, sd.BitDepth)
	if err != nil {
		if ble, ok := err.(*BufferLengthError); ok {
			ble.FrameIndex = index
		}
		return nil, err
	}

	intensities := make([]uint8, len(samples))
	for i, s := range samples {
		if sd.Channels == 4 && i%4 == 3 {
			// alpha channel passes through unwindowed
			intensities[i] = alphaByte(s, sd.BitDepth)
			continue
		}
		intensities[i] = win.DisplayIntensity(sd.Physical(s), sd.Photometric)
	}

	return &RenderResult{
		Raster:         ComposeRaster(sd.Width(), sd.Height(), sd.Channels, intensities),
		Width:          sd.Width(),
		Height:         sd.Height(),
		FrameIndex:     index,
		PixelsPerFrame: sd.PixelsPerFrame(),
		Degraded:       !sd.ChannelsSupported(),
		Window:         win,
	}, nil
}

// alphaByte narrows a raw alpha sample to 8 bits. 16-bit alpha keeps its
// high byte; 8-bit alpha is already in range.
func alphaByte(s uint16, bitDepth int) uint8 {
	if bitDepth == 16 {
		return uint8(s >> 8)
	}
	return uint8(s)
}
