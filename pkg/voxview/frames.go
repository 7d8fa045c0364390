package voxview

import "fmt"

// FrameCollection is the ordered set of raw per-frame byte buffers for one
// image module, one buffer per flattened combination of the extra
// dimensions. Buffers are produced by the upstream reader and are only read
// here, never modified.
type FrameCollection struct {
	Frames [][]byte
}

// NumFrames returns the number of frame buffers
func (fc *FrameCollection) NumFrames() int {
	return len(fc.Frames)
}

// HasFrames returns true if any frame buffers are present
func (fc *FrameCollection) HasFrames() bool {
	return len(fc.Frames) > 0
}

// Frame returns the raw buffer at the given flat index
func (fc *FrameCollection) Frame(index int) ([]byte, error) {
	if index < 0 || index >= len(fc.Frames) {
		return nil, fmt.Errorf("frame index %d out of range (0-%d)", index, len(fc.Frames)-1)
	}
	return fc.Frames[index], nil
}

// Validate checks the collection against a shape descriptor: the frame count
// must match the descriptor's extra dimensions and every buffer must be
// exactly one frame long.
func (fc *FrameCollection) Validate(sd *ShapeDescriptor) error {
	if err := sd.Validate(); err != nil {
		return err
	}
	if got, want := fc.NumFrames(), sd.FrameCount(); got != want {
		return fmt.Errorf("frame count %d does not match shape (%d expected)", got, want)
	}
	size := sd.FrameSize()
	for i, frame := range fc.Frames {
		if len(frame) != size {
			return &BufferLengthError{FrameIndex: i, Expected: size, Actual: len(frame)}
		}
	}
	return nil
}

// SplitFrames slices a contiguous buffer of concatenated frames into a
// FrameCollection. The buffer length must be an exact multiple of the
// descriptor's frame size and hold exactly FrameCount frames.
func SplitFrames(raw []byte, sd *ShapeDescriptor) (*FrameCollection, error) {
	if err := sd.Validate(); err != nil {
		return nil, err
	}
	size := sd.FrameSize()
	count := sd.FrameCount()
	if len(raw) != size*count {
		return nil, &BufferLengthError{Expected: size * count, Actual: len(raw)}
	}
	fc := &FrameCollection{Frames: make([][]byte, count)}
	for i := 0; i < count; i++ {
		fc.Frames[i] = raw[i*size : (i+1)*size]
	}
	return fc, nil
}
