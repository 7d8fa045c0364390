package voxview

import "fmt"

// BufferLengthError reports a raw frame buffer whose length does not match
// the size implied by the geometry. The engine never pads or truncates; the
// caller decides whether to abort or substitute a placeholder frame.
type BufferLengthError struct {
	FrameIndex int
	Expected   int
	Actual     int
}

func (e *BufferLengthError) Error() string {
	return fmt.Sprintf("frame %d: buffer is %d bytes, expected %d", e.FrameIndex, e.Actual, e.Expected)
}

// DecodeSamples unpacks one frame's raw bytes into width*height*channels
// unsigned sample values, channel-interleaved in buffer order.
//
// At bit depth 8 each byte is one sample. At bit depth 16 every two bytes
// form one sample, little-endian. The buffer length must equal
// width*height*channels*(bitDepth/8) exactly.
func DecodeSamples(raw []byte, width, height, channels, bitDepth int) ([]uint16, error) {
	if width < 1 || height < 1 {
		return nil, &GeometryError{Dimensions: []int{width, height}, Reason: "width and height must be positive"}
	}
	if channels < 1 {
		return nil, fmt.Errorf("invalid channel count %d: must be positive", channels)
	}
	if bitDepth != 8 && bitDepth != 16 {
		return nil, fmt.Errorf("unsupported bit depth %d: must be 8 or 16", bitDepth)
	}

	count := width * height * channels
	expected := count * (bitDepth / 8)
	if len(raw) != expected {
		return nil, &BufferLengthError{Expected: expected, Actual: len(raw)}
	}

	samples := make([]uint16, count)
	if bitDepth == 8 {
		for i, b := range raw {
			samples[i] = uint16(b)
		}
		return samples, nil
	}
	for i := range samples {
		samples[i] = uint16(raw[i*2]) | uint16(raw[i*2+1])<<8
	}
	return samples, nil
}

// SampleStats holds the observed value range of a decoded frame
type SampleStats struct {
	Min uint16
	Max uint16
}

// Stats returns the min/max over a sample slice
func Stats(samples []uint16) SampleStats {
	if len(samples) == 0 {
		return SampleStats{}
	}
	s := SampleStats{Min: samples[0], Max: samples[0]}
	for _, v := range samples {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	return s
}
