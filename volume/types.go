package volume

import (
	"errors"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/grid"
)

var (
	// ErrSizeMismatch is returned when an image and a gradient disagree on size.
	ErrSizeMismatch = errors.New("volume: size mismatch")

	// ErrEmptyImage is returned for images without voxels or without signal.
	ErrEmptyImage = errors.New("volume: empty image")
)

// IntensitySampler samples image intensity.
type IntensitySampler interface {
	// SampleIntensity interpolates the intensity at p.
	SampleIntensity(p geom.Point) float64
	// IsInsideRegion reports whether idx lies in the image region.
	IsInsideRegion(idx grid.Index) bool
	// GridSize returns the voxel extent.
	GridSize() grid.Size
}

// GradientSampler samples the (scaled) image gradient.
type GradientSampler interface {
	// SampleGradient interpolates the gradient vector at p.
	SampleGradient(p geom.Point) geom.Vector
	// SampleGradientComponent returns component axis of the gradient at voxel idx.
	SampleGradientComponent(idx grid.Index, axis int) float64
}

// Sampler is everything the extractor reads from an image.
type Sampler interface {
	IntensitySampler
	GradientSampler
}
