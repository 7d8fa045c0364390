package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jpfielding/voxview.go/pkg/voxview"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info cobra command
func NewInfoCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Inspect a frame volume's shape and per-frame statistics",
		Long:  "Parses a YAML shape descriptor (and optionally its raw frame buffers) and prints geometry, radiometric metadata, validation findings and frame value ranges.",
		RunE: func(cmd *cobra.Command, args []string) error {
			shapePath, _ := cmd.Flags().GetString("shape")
			framesPath, _ := cmd.Flags().GetString("frames")
			maxFrames, _ := cmd.Flags().GetInt("max-frames")

			if shapePath == "" && len(args) > 0 {
				shapePath = args[0]
			}
			if shapePath == "" {
				return fmt.Errorf("shape file is required. Use --shape flag or provide as argument")
			}

			sd, err := voxview.LoadShapeFile(shapePath)
			if err != nil {
				return err
			}
			return runInfo(sd, framesPath, maxFrames)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("shape", "s", "", "YAML shape descriptor path")
	pf.StringP("frames", "f", "", "raw frame buffer file to analyze (optional)")
	pf.Int("max-frames", 3, "max number of frames to show statistics for")

	return cmd
}

func runInfo(sd *voxview.ShapeDescriptor, framesPath string, maxFrames int) error {
	fmt.Println("=== Shape ===")
	fmt.Printf("Width: %d\n", sd.Width())
	fmt.Printf("Height: %d\n", sd.Height())
	for i, size := range sd.ExtraDims() {
		fmt.Printf("%s: %d\n", sd.DimensionName(i+2), size)
	}
	fmt.Printf("Channels: %d\n", sd.Channels)
	fmt.Printf("BitDepth: %d\n", sd.BitDepth)
	fmt.Printf("FrameCount: %d\n", sd.FrameCount())
	fmt.Printf("FrameSize: %d bytes\n", sd.FrameSize())

	fmt.Println("\n=== Radiometry ===")
	if voxview.IsPhysicalUnit(sd.RescaleType) {
		fmt.Printf("Rescale: %s (slope=%g intercept=%g)\n", sd.RescaleType, sd.RescaleSlope, sd.RescaleIntercept)
	} else {
		fmt.Println("Rescale: none (raw sample values)")
	}
	fmt.Printf("Window: %g/%g\n", sd.WindowCenter, sd.WindowWidth)
	fmt.Printf("Photometric: %s\n", sd.Photometric)

	result := voxview.ValidateShape(sd)
	if result.HasErrors() || result.HasWarnings() {
		fmt.Println("\n=== Validation ===")
		for _, e := range result.Errors {
			fmt.Printf("error: %v\n", e)
		}
		for _, w := range result.Warnings {
			fmt.Printf("warning: %v\n", w)
		}
	}

	if framesPath == "" {
		return nil
	}

	raw, err := os.ReadFile(framesPath)
	if err != nil {
		return fmt.Errorf("reading frames: %w", err)
	}
	frames, err := voxview.SplitFrames(raw, sd)
	if err != nil {
		return err
	}

	fmt.Println("\n=== Frames ===")
	fmt.Printf("Frames: %d\n", frames.NumFrames())

	show := frames.NumFrames()
	if show > maxFrames {
		show = maxFrames
	}
	for i := 0; i < show; i++ {
		buf, err := frames.Frame(i)
		if err != nil {
			return err
		}
		samples, err := voxview.DecodeSamples(buf, sd.Width(), sd.Height(), sd.Channels, sd.BitDepth)
		if err != nil {
			fmt.Printf("\n--- Frame %d ---\ndecode error: %v\n", i, err)
			continue
		}
		stats := voxview.Stats(samples)
		coord := sd.FrameCoordinate(i)
		fmt.Printf("\n--- Frame %d (coord %v) ---\n", i, []int(coord))
		fmt.Printf("Samples: %d\n", len(samples))
		fmt.Printf("Sample range: min=%d, max=%d\n", stats.Min, stats.Max)
		if voxview.IsPhysicalUnit(sd.RescaleType) {
			fmt.Printf("Physical range: min=%.1f, max=%.1f\n", sd.Physical(stats.Min), sd.Physical(stats.Max))
		}
	}
	return nil
}
