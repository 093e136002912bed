package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// scriptedSampler replays a fixed sequence of 1D samples
type scriptedSampler struct {
	values []float64
	next   int
}

func (s *scriptedSampler) Get1D() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *scriptedSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.Get1D(), s.Get1D(), s.Get1D())
}

func TestLambertian_AlwaysScattersWithAlbedo(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewSeededSampler(42)

	hit := core.HitRecord{
		Point:  core.NewVec3(1, 2, 3),
		Normal: core.NewVec3(0, 0, 1),
	}
	ray := core.NewRay(core.NewVec3(1, 2, 4), core.NewVec3(0, 0, -1))

	for i := 0; i < 1000; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray should start at hit point %v, got %v", hit.Point, scatter.Scattered.Origin)
		}
		// normal + unit vector never points below the surface
		if scatter.Scattered.Direction.Dot(hit.Normal) < -1e-12 {
			t.Fatalf("Scatter direction %v points below the surface", scatter.Scattered.Direction)
		}
		if scatter.Scattered.Direction.NearZero() {
			t.Fatal("Scatter direction must never be degenerate")
		}
	}
}

func TestLambertian_CosineWeighted(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sampler := core.NewSeededSampler(7)
	normal := core.NewVec3(0, 1, 0)
	hit := core.HitRecord{Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// For a cosine distribution E[cos θ] = 2/3
	const n = 50000
	sum := 0.0
	for i := 0; i < n; i++ {
		scatter, _ := lambertian.Scatter(ray, hit, sampler)
		sum += scatter.Scattered.Direction.UnitVector().Dot(normal)
	}
	mean := sum / n
	if math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("Expected mean cosine near 2/3, got %f", mean)
	}
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	normal := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	// 0.5, 0.5, 0.25 maps to the candidate (0, 0, -0.5), whose unit vector cancels the normal exactly
	sampler := &scriptedSampler{values: []float64{0.5, 0.5, 0.25}}

	scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Lambertian should always scatter")
	}
	if scatter.Scattered.Direction != normal {
		t.Errorf("Expected fallback to normal %v, got %v", normal, scatter.Scattered.Direction)
	}
}
