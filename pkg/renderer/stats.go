package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	SamplesPerPixel int           // Samples taken per pixel
	MaxDepth        int           // Maximum bounce depth
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	Duration        time.Duration // Wall time spent rendering
}

// SamplesPerSecond returns the sampling throughput, or 0 if no time was measured
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// Complete reports whether every pixel of the image was rendered
func (s RenderStats) Complete() bool {
	return s.TotalPixels == s.Width*s.Height
}
