package voxview

// ComposeRaster assembles per-channel 8-bit display intensities into a
// row-major RGBA buffer of length width*height*4.
//
// One channel replicates gray to R/G/B with opaque alpha. Three channels
// map to R/G/B with opaque alpha. Four channels map to R/G/B/A, alpha
// passed through as supplied. Any other channel count falls back to
// grayscale using only the first sample per pixel, dropping the rest.
// Pixels whose samples run past the end of the input are written as fully
// transparent black rather than read out of bounds.
func ComposeRaster(width, height, channels int, intensities []uint8) []byte {
	if channels < 1 {
		channels = 1
	}
	raster := make([]byte, width*height*4)
	for p := 0; p < width*height; p++ {
		base := p * channels
		out := p * 4
		switch channels {
		case 3, 4:
			if base+2 >= len(intensities) {
				continue // transparent black
			}
			raster[out] = intensities[base]
			raster[out+1] = intensities[base+1]
			raster[out+2] = intensities[base+2]
			if channels == 4 {
				if base+3 >= len(intensities) {
					raster[out], raster[out+1], raster[out+2] = 0, 0, 0
					continue
				}
				raster[out+3] = intensities[base+3]
			} else {
				raster[out+3] = 0xFF
			}
		default: // grayscale and degraded counts use the first sample only
			if base >= len(intensities) {
				continue
			}
			gray := intensities[base]
			raster[out] = gray
			raster[out+1] = gray
			raster[out+2] = gray
			raster[out+3] = 0xFF
		}
	}
	return raster
}
