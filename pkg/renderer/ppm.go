package renderer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-pathtracer/pkg/core"
)

// intensity keeps every channel strictly below 1 so scaling by 256 stays within a byte
var intensity = core.NewInterval(0.000, 0.999)

// PPMWriter writes a plain-text (P3) PPM image
type PPMWriter struct {
	w *bufio.Writer
}

// NewPPMWriter buffers writes to out; call Flush when done
func NewPPMWriter(out io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(out)}
}

// WriteHeader writes the "P3", dimensions and max value lines
func (p *PPMWriter) WriteHeader(width, height int) error {
	if _, err := fmt.Fprintf(p.w, "P3\n%d %d \n255\n", width, height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}
	return nil
}

// WriteColor averages a sum of samples, clamps it and writes one "r g b" line
func (p *PPMWriter) WriteColor(pixelColor core.Vec3, samplesPerPixel int) error {
	r, g, b := ToRGB(pixelColor, samplesPerPixel)
	if _, err := fmt.Fprintf(p.w, "%d %d %d\n", r, g, b); err != nil {
		return fmt.Errorf("writing ppm pixel: %w", err)
	}
	return nil
}

// Flush writes any buffered data to the underlying writer
func (p *PPMWriter) Flush() error {
	if err := p.w.Flush(); err != nil {
		return fmt.Errorf("flushing ppm output: %w", err)
	}
	return nil
}

// ToRGB converts a sum of samplesPerPixel color samples to 8-bit channel values
func ToRGB(pixelColor core.Vec3, samplesPerPixel int) (r, g, b int) {
	scaled := pixelColor.Divide(float64(samplesPerPixel))
	r = int(256 * intensity.Clamp(scaled.X))
	g = int(256 * intensity.Clamp(scaled.Y))
	b = int(256 * intensity.Clamp(scaled.Z))
	return r, g, b
}
