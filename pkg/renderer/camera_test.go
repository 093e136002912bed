package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func testConfig(width int, aspectRatio float64) CameraConfig {
	config := DefaultCameraConfig()
	config.Width = width
	config.AspectRatio = aspectRatio
	return config
}

func TestNewCamera_ImageHeight(t *testing.T) {
	tests := []struct {
		name           string
		width          int
		aspectRatio    float64
		expectedHeight int
	}{
		{"16:9 at 400", 400, 16.0 / 9.0, 225},
		{"square", 400, 1.0, 400},
		{"fraction truncated", 100, 3.0, 33},
		{"portrait", 10, 0.5, 20},
		{"clamped to one row", 1, 16.0 / 9.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera, err := NewCamera(testConfig(tt.width, tt.aspectRatio))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if camera.ImageWidth() != tt.width {
				t.Errorf("Expected width %d, got %d", tt.width, camera.ImageWidth())
			}
			if camera.ImageHeight() != tt.expectedHeight {
				t.Errorf("Expected height %d, got %d", tt.expectedHeight, camera.ImageHeight())
			}
		})
	}
}

func TestNewCamera_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*CameraConfig)
	}{
		{"zero width", func(c *CameraConfig) { c.Width = 0 }},
		{"negative width", func(c *CameraConfig) { c.Width = -5 }},
		{"zero aspect ratio", func(c *CameraConfig) { c.AspectRatio = 0 }},
		{"NaN aspect ratio", func(c *CameraConfig) { c.AspectRatio = math.NaN() }},
		{"infinite aspect ratio", func(c *CameraConfig) { c.AspectRatio = math.Inf(1) }},
		{"zero samples", func(c *CameraConfig) { c.SamplesPerPixel = 0 }},
		{"negative depth", func(c *CameraConfig) { c.MaxDepth = -1 }},
		{"negative epsilon", func(c *CameraConfig) { c.ShadowAcneEpsilon = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			tt.modify(&config)

			camera, err := NewCamera(config)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
			if camera != nil {
				t.Error("Expected nil camera for invalid config")
			}
		})
	}
}

func TestNewCamera_ZeroDepthIsValid(t *testing.T) {
	config := DefaultCameraConfig()
	config.MaxDepth = 0
	config.ShadowAcneEpsilon = 0
	if _, err := NewCamera(config); err != nil {
		t.Errorf("Depth 0 and epsilon 0 should be valid, got %v", err)
	}
}

func TestCamera_PixelCenters(t *testing.T) {
	camera, err := NewCamera(testConfig(400, 16.0/9.0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	viewportWidth := 2.0 * 400.0 / 225.0
	du := viewportWidth / 400.0
	dv := 2.0 / 225.0

	topLeft := camera.PixelCenter(0, 0)
	expectedTopLeft := core.NewVec3(-viewportWidth/2+du/2, 1-dv/2, -1)
	if topLeft.Subtract(expectedTopLeft).Length() > 1e-12 {
		t.Errorf("Expected pixel (0,0) at %v, got %v", expectedTopLeft, topLeft)
	}

	// The image is symmetric about the optical axis
	bottomRight := camera.PixelCenter(399, 224)
	expectedBottomRight := core.NewVec3(-expectedTopLeft.X, -expectedTopLeft.Y, -1)
	if bottomRight.Subtract(expectedBottomRight).Length() > 1e-9 {
		t.Errorf("Expected pixel (399,224) at %v, got %v", expectedBottomRight, bottomRight)
	}

	// Increasing j moves down the image
	if camera.PixelCenter(0, 1).Y >= topLeft.Y {
		t.Error("Row 1 should be below row 0")
	}
	if camera.PixelCenter(1, 0).X <= topLeft.X {
		t.Error("Column 1 should be right of column 0")
	}
}

func TestCamera_GetRayJitterStaysInPixel(t *testing.T) {
	camera, err := NewCamera(testConfig(200, 2.0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	sampler := core.NewSeededSampler(42)

	du := camera.pixelDeltaU.X
	dv := -camera.pixelDeltaV.Y

	for i := 0; i < 1000; i++ {
		px, py := i%200, (i*7)%100
		ray := camera.GetRay(px, py, sampler)

		if ray.Origin != (core.Vec3{}) {
			t.Fatalf("Rays must start at the eye, got %v", ray.Origin)
		}

		offset := ray.Direction.Subtract(camera.PixelCenter(px, py))
		if math.Abs(offset.X) > du/2+1e-12 || math.Abs(offset.Y) > dv/2+1e-12 || offset.Z != 0 {
			t.Fatalf("Jitter %v leaves the pixel footprint (%f x %f)", offset, du, dv)
		}
	}
}
