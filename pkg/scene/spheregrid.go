package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to linear RGB clamped to [0, 1]
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := core.DegreesToRadians(h)

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to cone responses
	lCone := l + 0.3963377774*a + 0.2158037573*b
	mCone := l - 0.1055613458*a - 0.0638541728*b
	sCone := l - 0.0894841775*a - 1.2914855480*b

	lCone = lCone * lCone * lCone
	mCone = mCone * mCone * mCone
	sCone = sCone * sCone * sCone

	rgb := core.NewVec3(
		+4.0767416621*lCone-3.3077115913*mCone+0.2309699292*sCone,
		-1.2684380046*lCone+2.6097574011*mCone-0.3413193965*sCone,
		-0.0041960863*lCone-0.7034186147*mCone+1.7076147010*sCone,
	)

	unit := core.NewInterval(0, 1)
	return core.NewVec3(unit.Clamp(rgb.X), unit.Clamp(rgb.Y), unit.Clamp(rgb.Z))
}

// NewSphereGridScene creates a grid of diffuse spheres in a rainbow of albedos on a gray ground
func NewSphereGridScene() *Scene {
	s := NewScene("spheregrid")
	s.CameraConfig.SamplesPerPixel = 50
	s.CameraConfig.MaxDepth = 20

	const (
		gridSize  = 7
		groundY   = -0.5
		spacing   = 0.6
		nearZ     = -1.5
		lightness = 0.7
		minChroma = 0.05
		maxChroma = 0.2
	)
	radius := spacing * 0.35

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewVec3(0, groundY-100, -3), 100, ground))

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := (float64(i) - float64(gridSize-1)/2) * spacing
			z := nearZ - float64(j)*spacing

			// Hue varies across x, chroma with depth
			hue := float64(i) / float64(gridSize-1) * 360.0
			chroma := minChroma + float64(j)/float64(gridSize-1)*(maxChroma-minChroma)
			albedo := oklchToRGB(lightness, chroma, hue)

			center := core.NewVec3(x, groundY+radius, z)
			s.Add(geometry.NewSphere(center, radius, material.NewLambertian(albedo)))
		}
	}

	return s
}
