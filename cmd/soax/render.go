package main

import (
	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/snake"
	"github.com/NoSuchProcess/SOAX/volume"
)

const (
	overlayLineWidth = 1.5
	junctionRadius   = 2.5
)

// renderOverlay draws the snakes (projected on xy) in red and the junctions
// in blue over the middle plane of img, and saves a PNG.
func renderOverlay(path string, img *volume.Image, snakes []*snake.Snake, junctions []geom.Point) error {
	size := img.GridSize()
	dc := gg.NewContext(size[0], size[1])
	dc.DrawImage(img.Gray16(size[2]/2), 0, 0)

	for _, s := range snakes {
		dc.NewSubPath()
		for _, v := range s.Vertices() {
			dc.LineTo(v.X, v.Y)
		}
		if !s.Open() {
			dc.ClosePath()
		}
	}
	dc.SetRGB(1, 0, 0)
	dc.SetLineWidth(overlayLineWidth)
	dc.Stroke()

	for _, j := range junctions {
		dc.DrawCircle(j.X, j.Y, junctionRadius)
	}
	dc.SetRGB(0, 0, 1)
	dc.Fill()

	return errors.Wrapf(dc.SavePNG(path), "save overlay %s", path)
}
