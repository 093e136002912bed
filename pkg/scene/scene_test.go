package scene

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func TestBuiltinScenes_Valid(t *testing.T) {
	tests := []struct {
		name    string
		create  func() *Scene
		objects int
	}{
		{"default", NewDefaultScene, 2},
		{"two-spheres", NewTwoSpheresScene, 2},
		{"spheregrid", NewSphereGridScene, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.create()
			if s.Name != tt.name {
				t.Errorf("Expected name %q, got %q", tt.name, s.Name)
			}
			if s.World.Len() != tt.objects {
				t.Errorf("Expected %d objects, got %d", tt.objects, s.World.Len())
			}
			if err := s.CameraConfig.Validate(); err != nil {
				t.Errorf("Scene camera config invalid: %v", err)
			}
		})
	}
}

func TestTwoSpheresScene_Render(t *testing.T) {
	s := NewTwoSpheresScene()

	var out bytes.Buffer
	stats, err := s.Render(context.Background(), renderer.NoOverride(), &out)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if header := strings.Join(lines[:3], "\n") + "\n"; header != "P3\n400 225 \n255\n" {
		t.Errorf("Unexpected header %q", header)
	}
	if len(lines) != 3+400*225 {
		t.Errorf("Expected %d lines, got %d", 3+400*225, len(lines))
	}
	if !stats.Complete() {
		t.Errorf("Render incomplete: %+v", stats)
	}

	// Replay the first sample of pixel (0,0): a miss, so it must equal the background
	camera, err := s.NewCamera(renderer.NoOverride())
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}
	sampler := core.NewSeededSampler(s.Seed)
	ray := camera.GetRay(0, 0, sampler)
	if _, isHit := s.World.Hit(ray, core.NewInterval(renderer.DefaultShadowAcneEpsilon, core.UniverseInterval.Max)); isHit {
		t.Fatal("Top-left camera ray should miss both spheres")
	}
	expected := camera.RayColor(ray, 1, s.World, sampler)
	r, g, b := renderer.ToRGB(expected, 1)

	var got [3]int
	if _, err := fmt.Sscan(lines[3], &got[0], &got[1], &got[2]); err != nil {
		t.Fatalf("Bad pixel line %q: %v", lines[3], err)
	}
	if got != [3]int{r, g, b} {
		t.Errorf("Top-left pixel %v should match background %v", got, [3]int{r, g, b})
	}
}

func TestScene_RenderOverride(t *testing.T) {
	s := NewDefaultScene()
	override := renderer.NoOverride()
	override.Width = 20
	override.SamplesPerPixel = 2
	override.MaxDepth = 3

	var out bytes.Buffer
	stats, err := s.Render(context.Background(), override, &out)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if stats.Width != 20 || stats.Height != 11 || stats.SamplesPerPixel != 2 || stats.MaxDepth != 3 {
		t.Errorf("Override not applied: %+v", stats)
	}
	if !strings.HasPrefix(out.String(), "P3\n20 11 \n255\n") {
		t.Errorf("Unexpected header in %q", out.String()[:20])
	}
}

func TestScene_RenderInvalidOverride(t *testing.T) {
	s := NewDefaultScene()
	override := renderer.NoOverride()
	override.SamplesPerPixel = -3

	_, err := s.Render(context.Background(), override, &bytes.Buffer{})
	if !errors.Is(err, renderer.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestOklchToRGB_InUnitRange(t *testing.T) {
	for hue := 0.0; hue <= 360; hue += 15 {
		c := oklchToRGB(0.7, 0.2, hue)
		for axis := 0; axis < 3; axis++ {
			if v := c.Index(axis); v < 0 || v > 1 {
				t.Fatalf("hue %f: channel %d = %f outside [0, 1]", hue, axis, v)
			}
		}
	}

	// Zero chroma is a neutral gray
	gray := oklchToRGB(0.7, 0, 123)
	if gray.Subtract(core.NewVec3(gray.X, gray.X, gray.X)).Length() > 1e-6 {
		t.Errorf("Expected neutral gray, got %v", gray)
	}
}
