package volume

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/NoSuchProcess/SOAX/grid"
)

// LoadImage decodes a planar image file (PNG, JPEG, TIFF, BMP, GIF) into a
// 16-bit range intensity image. A positive blur applies a Gaussian of that
// sigma before conversion; blurring goes through 8-bit NRGBA, so 16-bit
// sources lose precision.
func LoadImage(path string, blur float64) (*Image, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open image %s", path)
	}
	if blur > 0 {
		src = imaging.Blur(src, blur)
	}

	return FromImage(src)
}

// LoadStack decodes equally sized planar slices into one 3-D image, slice i
// at z = i. A single path yields a planar image.
func LoadStack(paths []string, blur float64) (*Image, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyImage
	}
	if len(paths) == 1 {
		return LoadImage(paths[0], blur)
	}

	var stack *Image
	for z, p := range paths {
		slice, err := LoadImage(p, blur)
		if err != nil {
			return nil, err
		}
		s := slice.GridSize()
		if stack == nil {
			if stack, err = NewImage(grid.Size{s[0], s[1], len(paths)}); err != nil {
				return nil, errors.Wrap(err, "allocate stack")
			}
		}
		if s[0] != stack.GridSize()[0] || s[1] != stack.GridSize()[1] {
			return nil, errors.Wrapf(ErrSizeMismatch, "slice %s", p)
		}
		for y := 0; y < s[1]; y++ {
			for x := 0; x < s[0]; x++ {
				stack.Set(grid.Index{x, y, z}, slice.At(grid.Index{x, y, 0}))
			}
		}
	}

	return stack, nil
}

// FromImage converts any image.Image to a planar intensity image using the
// 16-bit gray model.
func FromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	img, err := NewImage(grid.Size{b.Dx(), b.Dy(), 1})
	if err != nil {
		return nil, errors.Wrap(err, "convert image")
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.Gray16Model.Convert(src.At(x, y)).(color.Gray16)
			img.Set(grid.Index{x - b.Min.X, y - b.Min.Y, 0}, float64(g.Y))
		}
	}

	return img, nil
}

// Gray16 renders plane z of m, clamping values to [0, 65535].
func (m *Image) Gray16(z int) *image.Gray16 {
	s := m.GridSize()
	out := image.NewGray16(image.Rect(0, 0, s[0], s[1]))
	for y := 0; y < s[1]; y++ {
		for x := 0; x < s[0]; x++ {
			v := m.At(grid.Index{x, y, z})
			v = min(max(v, 0), 65535)
			out.SetGray16(x, y, color.Gray16{Y: uint16(v + 0.5)})
		}
	}

	return out
}

// SaveImage writes plane z of m to path; the format follows the extension.
func SaveImage(path string, m *Image, z int) error {
	return errors.Wrapf(imaging.Save(m.Gray16(z), path), "save image %s", path)
}
