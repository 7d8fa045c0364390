package voxview

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// shapeFile is the YAML sidecar form of a ShapeDescriptor, the interchange
// format the reader collaborator hands to tooling. Fallback chains for
// missing fields live here, not in the engine: the descriptor coming out of
// UnmarshalShape is fully normalized.
type shapeFile struct {
	Dimensions       []int    `yaml:"dimensions"`
	DimensionNames   []string `yaml:"dimensionNames,omitempty"`
	Channels         int      `yaml:"channels"`
	ChannelNames     []string `yaml:"channelNames,omitempty"`
	BitDepth         int      `yaml:"bitDepth"`
	RescaleType      string   `yaml:"rescaleType,omitempty"`
	RescaleSlope     *float64 `yaml:"rescaleSlope,omitempty"`
	RescaleIntercept float64  `yaml:"rescaleIntercept,omitempty"`
	WindowCenter     float64  `yaml:"windowCenter,omitempty"`
	WindowWidth      float64  `yaml:"windowWidth,omitempty"`
	Photometric      string   `yaml:"photometric,omitempty"`
}

// UnmarshalShape parses a YAML shape descriptor and normalizes defaults:
// channels 1, bit depth 8, slope 1, window 0/255, photometric NORMAL.
func UnmarshalShape(data []byte) (*ShapeDescriptor, error) {
	var sf shapeFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing shape descriptor: %w", err)
	}

	sd := NewShapeDescriptor(sf.Dimensions...)
	sd.DimensionNames = sf.DimensionNames
	if sf.Channels > 0 {
		sd.Channels = sf.Channels
	}
	sd.ChannelNames = sf.ChannelNames
	if sf.BitDepth > 0 {
		sd.BitDepth = sf.BitDepth
	}
	sd.RescaleType = sf.RescaleType
	if sf.RescaleSlope != nil {
		sd.RescaleSlope = *sf.RescaleSlope
	}
	sd.RescaleIntercept = sf.RescaleIntercept
	if sf.WindowWidth > 0 {
		sd.WindowCenter = sf.WindowCenter
		sd.WindowWidth = sf.WindowWidth
	}

	photometric, err := ParsePhotometric(sf.Photometric)
	if err != nil {
		return nil, err
	}
	sd.Photometric = photometric

	if err := sd.Validate(); err != nil {
		return nil, err
	}
	return sd, nil
}

// MarshalShape serializes a descriptor to its YAML sidecar form
func MarshalShape(sd *ShapeDescriptor) ([]byte, error) {
	slope := sd.RescaleSlope
	sf := shapeFile{
		Dimensions:       sd.Dimensions,
		DimensionNames:   sd.DimensionNames,
		Channels:         sd.Channels,
		ChannelNames:     sd.ChannelNames,
		BitDepth:         sd.BitDepth,
		RescaleType:      sd.RescaleType,
		RescaleSlope:     &slope,
		RescaleIntercept: sd.RescaleIntercept,
		WindowCenter:     sd.WindowCenter,
		WindowWidth:      sd.WindowWidth,
		Photometric:      sd.Photometric.String(),
	}
	return yaml.Marshal(&sf)
}

// LoadShapeFile reads and parses a YAML shape descriptor from disk
func LoadShapeFile(path string) (*ShapeDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading shape file: %w", err)
	}
	return UnmarshalShape(data)
}

// SaveShapeFile writes a descriptor to a YAML sidecar file
func SaveShapeFile(sd *ShapeDescriptor, path string) error {
	data, err := MarshalShape(sd)
	if err != nil {
		return fmt.Errorf("marshaling shape descriptor: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing shape file: %w", err)
	}
	return nil
}
