package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrInvalidSceneFile is returned when a scene file parses but describes an unusable scene
var ErrInvalidSceneFile = errors.New("invalid scene file")

// Vec3Cfg is a vector written as a JSON array [x, y, z]
type Vec3Cfg [3]float64

func (v Vec3Cfg) toVec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// CameraCfg holds optional render parameters; omitted fields keep the defaults
type CameraCfg struct {
	ImageWidth        *int     `json:"image_width,omitempty"`
	AspectRatio       *float64 `json:"aspect_ratio,omitempty"`
	SamplesPerPixel   *int     `json:"samples_per_pixel,omitempty"`
	MaxDepth          *int     `json:"max_depth,omitempty"`
	ShadowAcneEpsilon *float64 `json:"shadow_acne_epsilon,omitempty"`
}

// MaterialCfg describes a named material
type MaterialCfg struct {
	Type   string  `json:"type"` // only "lambertian" is supported
	Albedo Vec3Cfg `json:"albedo"`
}

// SphereCfg describes a sphere referencing a material by name
type SphereCfg struct {
	Center   Vec3Cfg `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"`
}

// SceneFile is the JSON representation of a scene
type SceneFile struct {
	Name        string                 `json:"name,omitempty"`
	Description string                 `json:"description,omitempty"`
	Seed        *int64                 `json:"seed,omitempty"`
	Camera      CameraCfg              `json:"camera"`
	Materials   map[string]MaterialCfg `json:"materials"`
	Spheres     []SphereCfg            `json:"spheres"`
}

// ParseSceneFile decodes a JSON scene description. Unknown fields are rejected.
func ParseSceneFile(r io.Reader) (*SceneFile, error) {
	var file SceneFile
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding scene file: %w", err)
	}
	return &file, nil
}

// LoadSceneFile reads and builds the scene stored at path
func LoadSceneFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene file: %w", err)
	}
	defer f.Close()

	file, err := ParseSceneFile(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	s, err := file.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Build turns the file description into a renderable scene.
// Materials are created once and shared by every sphere that names them.
func (f *SceneFile) Build() (*Scene, error) {
	s := NewScene(f.Name)
	if f.Seed != nil {
		s.Seed = *f.Seed
	}
	f.Camera.apply(&s.CameraConfig)
	if err := s.CameraConfig.Validate(); err != nil {
		return nil, err
	}

	materials := make(map[string]core.Material, len(f.Materials))
	for name, cfg := range f.Materials {
		m, err := cfg.build()
		if err != nil {
			return nil, fmt.Errorf("%w: material %q: %v", ErrInvalidSceneFile, name, err)
		}
		materials[name] = m
	}

	for i, cfg := range f.Spheres {
		if !(cfg.Radius > 0) {
			return nil, fmt.Errorf("%w: sphere %d: radius must be positive, got %g", ErrInvalidSceneFile, i, cfg.Radius)
		}
		m, ok := materials[cfg.Material]
		if !ok {
			return nil, fmt.Errorf("%w: sphere %d: unknown material %q", ErrInvalidSceneFile, i, cfg.Material)
		}
		s.Add(geometry.NewSphere(cfg.Center.toVec3(), cfg.Radius, m))
	}

	return s, nil
}

func (c CameraCfg) apply(config *renderer.CameraConfig) {
	if c.ImageWidth != nil {
		config.Width = *c.ImageWidth
	}
	if c.AspectRatio != nil {
		config.AspectRatio = *c.AspectRatio
	}
	if c.SamplesPerPixel != nil {
		config.SamplesPerPixel = *c.SamplesPerPixel
	}
	if c.MaxDepth != nil {
		config.MaxDepth = *c.MaxDepth
	}
	if c.ShadowAcneEpsilon != nil {
		config.ShadowAcneEpsilon = *c.ShadowAcneEpsilon
	}
}

func (m MaterialCfg) build() (core.Material, error) {
	switch m.Type {
	case "lambertian", "":
		for _, c := range m.Albedo {
			if !(c >= 0 && c <= 1) {
				return nil, fmt.Errorf("albedo %v outside [0, 1]", m.Albedo)
			}
		}
		return material.NewLambertian(m.Albedo.toVec3()), nil
	default:
		return nil, fmt.Errorf("unsupported material type %q", m.Type)
	}
}
