package multisnake

import (
	"context"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/NoSuchProcess/SOAX/snakefile"
	"github.com/NoSuchProcess/SOAX/volume"
)

// ProcessSequence extracts a network from every frame in order and returns
// one snakefile.Frame per image. With WithStore each frame is written as
// soon as it is done, together with the image name and parameters.
func (m *Multisnake) ProcessSequence(ctx context.Context, frames []*volume.Image) ([]snakefile.Frame, error) {
	if len(frames) == 0 {
		return nil, ErrEmptySequence
	}
	if st := m.opts.store; st != nil {
		if err := st.PutMeta(m.opts.imageName, snakefile.HeadersFromParameters(m.params)); err != nil {
			return nil, err
		}
	}

	out := make([]snakefile.Frame, 0, len(frames))
	for i, img := range frames {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if err := m.SetImage(img); err != nil {
			return out, errors.Wrapf(err, "multisnake: frame %d", i)
		}
		if err := m.Extract(ctx); err != nil {
			return out, errors.Wrapf(err, "multisnake: frame %d", i)
		}
		f := m.Frame()
		out = append(out, f)
		if st := m.opts.store; st != nil {
			if err := st.PutFrame(i, f); err != nil {
				return out, err
			}
		}
		klog.Infof("multisnake: frame %d: %d snakes, %d junctions", i, len(f.Curves), len(f.Junctions))
	}

	return out, nil
}
