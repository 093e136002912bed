package renderer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

var (
	skyWhite = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue  = core.NewVec3(0.5, 0.7, 1.0)
)

// backgroundGradient returns a gradient color based on ray direction
func backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.UnitVector()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	return skyWhite.Lerp(skyBlue, t)
}

// RayColor returns the light gathered along r, following at most depth bounces
func (c *Camera) RayColor(r core.Ray, depth int, world core.Shape, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(r, c.hitInterval)
	if !isHit {
		return backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(c.RayColor(scatter.Scattered, depth-1, world, sampler))
}

// SamplePixel returns the sum of SamplesPerPixel jittered samples for pixel (i, j)
func (c *Camera) SamplePixel(i, j int, world core.Shape, sampler core.Sampler) core.Vec3 {
	var pixelColor core.Vec3
	for sample := 0; sample < c.config.SamplesPerPixel; sample++ {
		ray := c.GetRay(i, j, sampler)
		pixelColor.AddAssign(c.RayColor(ray, c.config.MaxDepth, world, sampler))
	}
	return pixelColor
}

// Render traces every pixel in raster order and writes the image to out as P3.
// ctx is checked between scanlines; a cancelled render stops early and returns ctx.Err().
func (c *Camera) Render(ctx context.Context, world core.Shape, sampler core.Sampler, out io.Writer) (RenderStats, error) {
	logger := Logger()
	startTime := time.Now()
	stats := RenderStats{
		Width:           c.imageWidth,
		Height:          c.imageHeight,
		SamplesPerPixel: c.config.SamplesPerPixel,
		MaxDepth:        c.config.MaxDepth,
	}

	logger.Info("render started",
		"width", c.imageWidth, "height", c.imageHeight,
		"samples_per_pixel", c.config.SamplesPerPixel, "max_depth", c.config.MaxDepth)

	ppm := NewPPMWriter(out)
	if err := ppm.WriteHeader(c.imageWidth, c.imageHeight); err != nil {
		return stats, err
	}

	for j := 0; j < c.imageHeight; j++ {
		if err := ctx.Err(); err != nil {
			logger.Warn("render cancelled", "scanline", j)
			return stats, err
		}
		logger.Debug("scanlines remaining", "remaining", c.imageHeight-j)

		for i := 0; i < c.imageWidth; i++ {
			pixelColor := c.SamplePixel(i, j, world, sampler)
			if err := ppm.WriteColor(pixelColor, c.config.SamplesPerPixel); err != nil {
				return stats, fmt.Errorf("pixel (%d, %d): %w", i, j, err)
			}
			stats.TotalPixels++
			stats.TotalSamples += c.config.SamplesPerPixel
		}
	}

	if err := ppm.Flush(); err != nil {
		return stats, err
	}

	stats.Duration = time.Since(startTime)
	logger.Info("render done", "pixels", stats.TotalPixels, "samples", stats.TotalSamples, "duration", stats.Duration)
	return stats, nil
}
