package scene

import (
	"context"
	"fmt"
	"io"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// DefaultSeed seeds the sampler when a scene does not choose its own
const DefaultSeed int64 = 42

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *geometry.HittableList // Objects in the scene
	CameraConfig renderer.CameraConfig
	Seed         int64 // Sampler seed, so renders are reproducible
}

// NewScene creates an empty scene with the default camera configuration
func NewScene(name string) *Scene {
	return &Scene{
		Name:         name,
		World:        geometry.NewHittableList(),
		CameraConfig: renderer.DefaultCameraConfig(),
		Seed:         DefaultSeed,
	}
}

// Add appends shapes to the scene's world
func (s *Scene) Add(shapes ...core.Shape) {
	for _, shape := range shapes {
		s.World.Add(shape)
	}
}

// NewCamera builds the camera for this scene with override applied on top of its configuration
func (s *Scene) NewCamera(override renderer.CameraConfig) (*renderer.Camera, error) {
	config := renderer.MergeCameraConfig(s.CameraConfig, override)
	camera, err := renderer.NewCamera(config)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}
	return camera, nil
}

// Render renders the scene to out as a P3 image using a sampler seeded with s.Seed
func (s *Scene) Render(ctx context.Context, override renderer.CameraConfig, out io.Writer) (renderer.RenderStats, error) {
	camera, err := s.NewCamera(override)
	if err != nil {
		return renderer.RenderStats{}, err
	}

	renderer.Logger().Info("rendering scene", "scene", s.Name, "objects", s.World.Len(), "seed", s.Seed)
	return camera.Render(ctx, s.World, core.NewSeededSampler(s.Seed), out)
}
