package candidate

import (
	"fmt"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/grid"
	"github.com/NoSuchProcess/SOAX/snake"
)

// Generator produces initial snakes for one image.
type Generator struct {
	env *snake.Env
	g   *grid.Grid
}

// NewGenerator binds a generator to env.
func NewGenerator(env *snake.Env) (*Generator, error) {
	if env == nil || env.Sampler == nil {
		return nil, ErrNilEnv
	}
	g, err := grid.New(env.Sampler.GridSize())
	if err != nil {
		return nil, fmt.Errorf("NewGenerator: %w", err)
	}

	return &Generator{env: env, g: g}, nil
}

// Grid returns the voxel lattice of the image.
func (gen *Generator) Grid() *grid.Grid { return gen.g }

// Directions returns how many axes are linked: two, or three when
// z-initialization is enabled on a stack.
func (gen *Generator) Directions() int {
	if gen.g.Dim() == 3 && gen.env.Params.InitZ {
		return 3
	}

	return 2
}

// ScanGradient marks ridge voxels per axis. Starting at every voxel whose
// gradient component along the axis reaches the ridge threshold, the walk
// moves forward until the component exceeds the threshold again (no ridge)
// or drops below its negative, in which case the voxel half a run back is a
// ridge.
func (gen *Generator) ScanGradient() *grid.Flags {
	ridge := grid.NewFlags(gen.g)
	thr := gen.env.Params.RidgeThreshold
	s := gen.env.Sampler
	size := gen.g.Size()

	for axis := 0; axis < gen.g.Dim(); axis++ {
		for off := 0; off < gen.g.Len(); off++ {
			idx := gen.g.Coordinate(off)
			if s.SampleGradientComponent(idx, axis) < thr {
				continue
			}
			cur, cnt := idx, 0
			for {
				cur[axis]++
				cnt++
				if cur[axis] >= size[axis] {
					break
				}
				c := s.SampleGradientComponent(cur, axis)
				if c > thr {
					break
				}
				if c < -thr {
					cur[axis] -= cnt / 2
					ridge.Set(cur, axis, true)
					break
				}
			}
		}
	}

	return ridge
}

// GenerateCandidates sets the direction-d flag of every voxel whose intensity
// lies in [background, foreground] and that is a ridge across the other axes.
func (gen *Generator) GenerateCandidates(ridge, cand *grid.Flags, d int) error {
	dim := gen.g.Dim()
	if d < 0 || d >= dim {
		return fmt.Errorf("GenerateCandidates(%d): %w", d, ErrDirection)
	}
	p := gen.env.Params
	for off := 0; off < gen.g.Len(); off++ {
		idx := gen.g.Coordinate(off)
		v := gen.env.Sampler.SampleIntensity(voxelPoint(idx))
		if v > p.Foreground || v < p.Background {
			continue
		}
		on := ridge.Get(idx, (d+1)%dim)
		if dim == 3 {
			on = on && ridge.Get(idx, (d+2)%dim)
		}
		cand.Set(idx, d, on)
	}

	return nil
}

// LinkCandidates chains direction-d candidates into open initial snakes.
// Every visited voxel loses its direction-d flag. Chains of one voxel are
// discarded, as are chains that fail resampling.
func (gen *Generator) LinkCandidates(cand *grid.Flags, d int) ([]*snake.Snake, error) {
	var out []*snake.Snake
	err := gen.g.Scan(d, func(idx grid.Index) bool {
		if !cand.Get(idx, d) {
			return true
		}
		if s := gen.linkFrom(cand, idx, d); s != nil {
			out = append(out, s)
		}

		return true
	})
	if err != nil {
		return nil, fmt.Errorf("LinkCandidates(%d): %w", d, ErrDirection)
	}

	return out, nil
}

func (gen *Generator) linkFrom(cand *grid.Flags, idx grid.Index, d int) *snake.Snake {
	var pts []geom.Point
	for gen.g.InBounds(idx) {
		pts = append(pts, voxelPoint(idx))
		// only direction d is cleared, so a voxel can seed one chain per
		// direction; the cross scenario relies on this to yield two snakes
		cand.Set(idx, d, false)
		next, ok := gen.nextCandidate(cand, idx, d)
		if !ok {
			break
		}
		idx = next
	}
	if len(pts) < 2 {
		return nil
	}
	s := snake.New(gen.env, pts, true, true)
	if s.Resample(); !s.Viable() {
		return nil
	}

	return s
}

// nextCandidate looks one step ahead along d, straight on first and then
// over the lateral offsets.
func (gen *Generator) nextCandidate(cand *grid.Flags, idx grid.Index, d int) (grid.Index, bool) {
	ahead := idx
	ahead[d]++
	if !gen.g.InBounds(ahead) {
		return ahead, false
	}
	if cand.Get(ahead, d) {
		return ahead, true
	}
	for _, o := range gen.g.LateralOffsets(d) {
		n := grid.Index{ahead[0] + o[0], ahead[1] + o[1], ahead[2] + o[2]}
		if gen.g.InBounds(n) && cand.Get(n, d) {
			return n, true
		}
	}

	return ahead, false
}

// Generate runs the full candidate pipeline and returns the initial snakes
// sorted shortest first.
func (gen *Generator) Generate() ([]*snake.Snake, error) {
	ridge := gen.ScanGradient()
	cand := grid.NewFlags(gen.g)
	n := gen.Directions()
	for d := 0; d < n; d++ {
		if err := gen.GenerateCandidates(ridge, cand, d); err != nil {
			return nil, err
		}
	}

	var all []*snake.Snake
	for d := 0; d < n; d++ {
		ss, err := gen.LinkCandidates(cand, d)
		if err != nil {
			return nil, err
		}
		all = append(all, ss...)
	}
	snake.SortShortestFirst(all)

	return all, nil
}

func voxelPoint(idx grid.Index) geom.Point {
	return geom.P(float64(idx[0]), float64(idx[1]), float64(idx[2]))
}
