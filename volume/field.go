package volume

import (
	"fmt"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/grid"
)

// Field pairs an image with its gradient and implements Sampler.
// It is read-only once built and safe for concurrent use.
type Field struct {
	img  *Image
	grad *Gradient
}

// NewField computes the gradient of img and returns the combined sampler.
func NewField(img *Image, smoothing, scaling float64) (*Field, error) {
	grad, err := ComputeGradient(img, smoothing, scaling)
	if err != nil {
		return nil, err
	}

	return &Field{img: img, grad: grad}, nil
}

// NewFieldFrom pairs an existing image and gradient.
func NewFieldFrom(img *Image, grad *Gradient) (*Field, error) {
	if img == nil || grad == nil {
		return nil, ErrEmptyImage
	}
	if img.GridSize() != grad.g.Size() {
		return nil, fmt.Errorf("image %v, gradient %v: %w", img.GridSize(), grad.g.Size(), ErrSizeMismatch)
	}

	return &Field{img: img, grad: grad}, nil
}

// Image returns the intensity image.
func (f *Field) Image() *Image { return f.img }

// Gradient returns the gradient field.
func (f *Field) Gradient() *Gradient { return f.grad }

// Is2D reports whether the field is planar.
func (f *Field) Is2D() bool { return f.img.Is2D() }

// SampleIntensity interpolates the raw intensity at p.
func (f *Field) SampleIntensity(p geom.Point) float64 { return f.img.SampleIntensity(p) }

// IsInsideRegion reports whether idx lies within the image.
func (f *Field) IsInsideRegion(idx grid.Index) bool { return f.img.IsInsideRegion(idx) }

// GridSize returns the voxel extent.
func (f *Field) GridSize() grid.Size { return f.img.GridSize() }

// SampleGradient interpolates the gradient at p.
func (f *Field) SampleGradient(p geom.Point) geom.Vector { return f.grad.SampleGradient(p) }

// SampleGradientComponent returns one gradient component at a voxel.
func (f *Field) SampleGradientComponent(idx grid.Index, axis int) float64 {
	return f.grad.SampleGradientComponent(idx, axis)
}
