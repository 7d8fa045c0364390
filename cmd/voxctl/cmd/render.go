package cmd

import (
	"context"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jpfielding/voxview.go/pkg/voxview"
	"github.com/spf13/cobra"
)

// NewRenderCmd creates the render cobra command
func NewRenderCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a frame volume to PNG",
		Long:  "Reads a YAML shape descriptor and a raw frame buffer file, resolves the requested coordinate and writes the windowed RGBA raster as a PNG.",
		RunE: func(cmd *cobra.Command, args []string) error {
			shapePath, _ := cmd.Flags().GetString("shape")
			framesPath, _ := cmd.Flags().GetString("frames")
			coordSpec, _ := cmd.Flags().GetString("coord")
			outPath, _ := cmd.Flags().GetString("out")
			preset, _ := cmd.Flags().GetString("preset")
			windowSpec, _ := cmd.Flags().GetString("window")
			auto, _ := cmd.Flags().GetBool("auto-window")
			all, _ := cmd.Flags().GetBool("all")

			if shapePath == "" || framesPath == "" {
				return fmt.Errorf("both --shape and --frames are required")
			}

			sd, err := voxview.LoadShapeFile(shapePath)
			if err != nil {
				return err
			}
			if result := voxview.ValidateShape(sd); result.HasWarnings() {
				for _, w := range result.Warnings {
					slog.WarnContext(ctx, "shape warning", "field", w.Field, "message", w.Message)
				}
			}

			raw, err := os.ReadFile(framesPath)
			if err != nil {
				return fmt.Errorf("reading frames: %w", err)
			}
			frames, err := voxview.SplitFrames(raw, sd)
			if err != nil {
				return err
			}

			coord, err := parseCoord(coordSpec)
			if err != nil {
				return err
			}

			win, err := pickWindow(sd, frames, coord, preset, windowSpec, auto)
			if err != nil {
				return err
			}

			if all {
				return renderAll(ctx, sd, frames, win, outPath)
			}

			result, err := voxview.RenderFrameWindow(sd, frames, coord, win)
			if err != nil {
				return err
			}
			if result.Degraded {
				slog.WarnContext(ctx, "unsupported channel count, rendered grayscale",
					"channels", sd.Channels, "frame", result.FrameIndex)
			}
			if outPath == "" {
				outPath = fmt.Sprintf("frame_%d.png", result.FrameIndex)
			}
			slog.InfoContext(ctx, "rendered frame",
				"frame", result.FrameIndex,
				"size", fmt.Sprintf("%dx%d", result.Width, result.Height),
				"window", fmt.Sprintf("%g/%g", win.Center, win.Width),
				"out", outPath)
			return writePNG(result, outPath)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("shape", "s", "", "YAML shape descriptor path")
	pf.StringP("frames", "f", "", "raw frame buffer file (frames concatenated in flat order)")
	pf.StringP("coord", "c", "", "1-indexed coordinate vector, comma separated (e.g. 12,2); default first frame")
	pf.StringP("out", "o", "", "output PNG path (default frame_<n>.png)")
	pf.String("preset", "", "CT window preset (soft_tissue|bone|lung|brain)")
	pf.String("window", "", "explicit window as center:width (e.g. 40:400)")
	pf.Bool("auto-window", false, "estimate the window from the frame's value percentiles")
	pf.Bool("all", false, "render every frame to <out>_<n>.png")

	return cmd
}

// pickWindow resolves the window precedence: explicit > preset > auto > shape
func pickWindow(sd *voxview.ShapeDescriptor, frames *voxview.FrameCollection, coord voxview.CoordinateVector, preset, windowSpec string, auto bool) (voxview.Window, error) {
	switch {
	case windowSpec != "":
		parts := strings.SplitN(windowSpec, ":", 2)
		if len(parts) != 2 {
			return voxview.Window{}, fmt.Errorf("invalid window %q: expected center:width", windowSpec)
		}
		center, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return voxview.Window{}, fmt.Errorf("invalid window center %q: %w", parts[0], err)
		}
		width, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return voxview.Window{}, fmt.Errorf("invalid window width %q: %w", parts[1], err)
		}
		return voxview.Window{Center: center, Width: width}, nil
	case preset != "":
		win, ok := voxview.PresetWindow(preset)
		if !ok {
			return voxview.Window{}, fmt.Errorf("unknown window preset %q", preset)
		}
		return win, nil
	case auto:
		return voxview.AutoWindowFrame(sd, frames, coord)
	}
	return sd.Window(), nil
}

// renderAll walks every flat frame index and writes one PNG per frame
func renderAll(ctx context.Context, sd *voxview.ShapeDescriptor, frames *voxview.FrameCollection, win voxview.Window, outPrefix string) error {
	if outPrefix == "" {
		outPrefix = "frame"
	}
	outPrefix = strings.TrimSuffix(outPrefix, ".png")

	for i := 0; i < sd.FrameCount(); i++ {
		coord := sd.FrameCoordinate(i)
		result, err := voxview.RenderFrameWindow(sd, frames, coord, win)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		outPath := fmt.Sprintf("%s_%03d.png", outPrefix, i)
		if err := writePNG(result, outPath); err != nil {
			return err
		}
		slog.DebugContext(ctx, "rendered frame", "frame", i, "coord", fmt.Sprint(coord), "out", outPath)
	}
	slog.InfoContext(ctx, "rendered all frames", "count", sd.FrameCount())
	return nil
}

func writePNG(result *voxview.RenderResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, result.Image()); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

// parseCoord parses "2,1,3" into a CoordinateVector; empty means default
func parseCoord(spec string) (voxview.CoordinateVector, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	parts := strings.Split(spec, ",")
	coord := make(voxview.CoordinateVector, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", part, err)
		}
		coord[i] = v
	}
	return coord, nil
}
