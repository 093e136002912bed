package renderer

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

const (
	focalLength    = 1.0
	viewportHeight = 2.0
)

// Camera is a fixed pinhole camera at the origin looking down -Z
type Camera struct {
	config      CameraConfig
	imageWidth  int
	imageHeight int
	center      core.Vec3 // Eye position
	pixel00Loc  core.Vec3 // Center of the upper left pixel
	pixelDeltaU core.Vec3 // Offset to the pixel to the right
	pixelDeltaV core.Vec3 // Offset to the pixel below
	hitInterval core.Interval
}

// NewCamera derives the viewport geometry from config
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	imageHeight := max(1, int(float64(config.Width)/config.AspectRatio))

	// Viewport width follows the integer image size, not the requested ratio
	viewportWidth := viewportHeight * (float64(config.Width) / float64(imageHeight))

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := core.NewVec3(viewportWidth, 0, 0)
	viewportV := core.NewVec3(0, -viewportHeight, 0)

	pixelDeltaU := viewportU.Divide(float64(config.Width))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	center := core.NewVec3(0, 0, 0)
	viewportUpperLeft := center.
		Subtract(core.NewVec3(0, 0, focalLength)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	return &Camera{
		config:      config,
		imageWidth:  config.Width,
		imageHeight: imageHeight,
		center:      center,
		pixel00Loc:  pixel00Loc,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		hitInterval: core.NewInterval(config.ShadowAcneEpsilon, core.UniverseInterval.Max),
	}, nil
}

// ImageWidth returns the rendered image width in pixels
func (c *Camera) ImageWidth() int { return c.imageWidth }

// ImageHeight returns the rendered image height in pixels
func (c *Camera) ImageHeight() int { return c.imageHeight }

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }

// PixelCenter returns the world-space center of pixel (i, j)
func (c *Camera) PixelCenter(i, j int) core.Vec3 {
	return c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
}

// GetRay returns a ray from the eye through a random point inside pixel (i, j)
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	pixelSample := c.PixelCenter(i, j).Add(c.sampleSquare(sampler))
	return core.NewRay(c.center, pixelSample.Subtract(c.center))
}

// sampleSquare returns a random offset within the footprint of one pixel
func (c *Camera) sampleSquare(sampler core.Sampler) core.Vec3 {
	px := -0.5 + sampler.Get1D()
	py := -0.5 + sampler.Get1D()
	return c.pixelDeltaU.Multiply(px).Add(c.pixelDeltaV.Multiply(py))
}
