package renderer

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned when a camera configuration cannot be rendered
var ErrInvalidConfig = errors.New("invalid camera config")

// DefaultShadowAcneEpsilon is the minimum t accepted for a hit, so rays leaving a surface do not re-hit it
const DefaultShadowAcneEpsilon = 0.001

// CameraConfig contains render setup parameters
type CameraConfig struct {
	Width             int     // Rendered image width in pixels
	AspectRatio       float64 // Ratio of image width to height
	SamplesPerPixel   int     // Number of jittered rays per pixel
	MaxDepth          int     // Maximum ray bounce depth
	ShadowAcneEpsilon float64 // Lower bound of the hit interval
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:             400,
		AspectRatio:       16.0 / 9.0,
		SamplesPerPixel:   100,
		MaxDepth:          50,
		ShadowAcneEpsilon: DefaultShadowAcneEpsilon,
	}
}

// Validate checks that the configuration describes a renderable image
func (c CameraConfig) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: image width must be positive, got %d", ErrInvalidConfig, c.Width)
	}
	if !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0) {
		return fmt.Errorf("%w: aspect ratio must be positive and finite, got %g", ErrInvalidConfig, c.AspectRatio)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	if !(c.ShadowAcneEpsilon >= 0) || math.IsInf(c.ShadowAcneEpsilon, 0) {
		return fmt.Errorf("%w: shadow acne epsilon must be non-negative and finite, got %g", ErrInvalidConfig, c.ShadowAcneEpsilon)
	}
	return nil
}

// MergeCameraConfig applies the non-zero fields of override on top of base.
// MaxDepth and ShadowAcneEpsilon use negative values to mean "unset" since zero is meaningful.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth >= 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.ShadowAcneEpsilon >= 0 {
		result.ShadowAcneEpsilon = override.ShadowAcneEpsilon
	}
	return result
}

// NoOverride returns an override config that changes nothing when merged
func NoOverride() CameraConfig {
	return CameraConfig{MaxDepth: -1, ShadowAcneEpsilon: -1}
}
