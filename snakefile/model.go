package snakefile

import (
	"github.com/NoSuchProcess/SOAX/config"
	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/snake"
)

// Header is one "key value" line.
type Header struct {
	Key   string
	Value string
}

// Curve is one stored snake.
type Curve struct {
	Open        bool
	Points      []geom.Point
	Intensities []float64 // empty or one per point
}

// Frame holds the network of one image.
type Frame struct {
	Curves    []Curve
	Junctions []geom.Point
}

// Document is a whole snake file.
type Document struct {
	Image    string
	Headers  []Header // everything but the image line, in file order
	Frames   []Frame
	Sequence bool
}

// CurveFromSnake captures the snaxels of s, with intensities when the snake
// has a sampler.
func CurveFromSnake(s *snake.Snake) Curve {
	c := Curve{Open: s.Open(), Points: append([]geom.Point(nil), s.Vertices()...)}
	if env := s.Env(); env != nil && env.Sampler != nil {
		c.Intensities = s.Intensities()
	}

	return c
}

// FrameFromSnakes captures a network.
func FrameFromSnakes(snakes []*snake.Snake, junctions []geom.Point) Frame {
	f := Frame{Junctions: append([]geom.Point(nil), junctions...)}
	for _, s := range snakes {
		f.Curves = append(f.Curves, CurveFromSnake(s))
	}

	return f
}

// Snake rebuilds a resampled snake from the curve; the result may be
// non-viable.
func (c Curve) Snake(env *snake.Env) *snake.Snake {
	s := snake.New(env, c.Points, c.Open, false)
	s.Resample()

	return s
}

// Snakes rebuilds the viable snakes of a frame.
func (f Frame) Snakes(env *snake.Env) []*snake.Snake {
	var out []*snake.Snake
	for _, c := range f.Curves {
		if len(c.Points) < 2 {
			continue
		}
		if s := c.Snake(env); s.Viable() {
			out = append(out, s)
		}
	}

	return out
}

// HeadersFromParameters lists every parameter as a header, in key order.
func HeadersFromParameters(p config.Parameters) []Header {
	keys := config.Keys()
	out := make([]Header, 0, len(keys))
	for _, k := range keys {
		v, err := p.Value(k)
		if err != nil {
			continue
		}
		out = append(out, Header{Key: k, Value: v})
	}

	return out
}

// Parameters applies the headers on top of config.Default(). Headers that
// name no parameter are returned in unknown.
func (d *Document) Parameters() (p config.Parameters, unknown []string, err error) {
	p = config.Default()
	for _, h := range d.Headers {
		if !config.IsKey(h.Key) {
			unknown = append(unknown, h.Key)
			continue
		}
		if err = p.Assign(h.Key, h.Value); err != nil {
			return p, unknown, err
		}
	}

	return p, unknown, nil
}
