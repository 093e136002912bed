package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates a gray sphere resting on a large gray ground sphere
func NewDefaultScene() *Scene {
	s := NewScene("default")
	s.CameraConfig.SamplesPerPixel = 100
	s.CameraConfig.MaxDepth = 50

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -50.5, -1), 50, gray),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
	)

	return s
}

// NewTwoSpheresScene creates the default geometry with a single sample and a single bounce,
// which makes every sphere pixel black and every sky pixel an exact background sample
func NewTwoSpheresScene() *Scene {
	s := NewDefaultScene()
	s.Name = "two-spheres"
	s.CameraConfig.SamplesPerPixel = 1
	s.CameraConfig.MaxDepth = 1
	return s
}
