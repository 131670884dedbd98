package analysis

import (
	"math"

	"github.com/NoSuchProcess/SOAX/geom"
	"github.com/NoSuchProcess/SOAX/snake"
)

// Comparison is the agreement between a result and a reference network.
type Comparison struct {
	VertexError float64 // mean of both directed mean snaxel distances
	Hausdorff   float64 // largest snaxel distance in either direction
}

// ShortestDistance is the distance from p to the closest snaxel of snakes,
// or +Inf when there is none.
func ShortestDistance(p geom.Point, snakes []*snake.Snake) float64 {
	best := math.Inf(1)
	for _, s := range snakes {
		for _, v := range s.Vertices() {
			best = math.Min(best, p.Distance(v))
		}
	}

	return best
}

// VertexErrors returns, for every snaxel of from, its distance to the
// closest snaxel of to.
func VertexErrors(from, to []*snake.Snake) []float64 {
	out := make([]float64, 0, snake.TotalPoints(from))
	for _, s := range from {
		for _, v := range s.Vertices() {
			out = append(out, ShortestDistance(v, to))
		}
	}

	return out
}

// Compare measures result against truth in both directions.
func Compare(result, truth []*snake.Snake) (Comparison, error) {
	if snake.TotalPoints(result) == 0 || snake.TotalPoints(truth) == 0 {
		return Comparison{}, ErrNoSnakes
	}
	e1 := VertexErrors(result, truth)
	e2 := VertexErrors(truth, result)

	return Comparison{
		VertexError: (mean(e1) + mean(e2)) / 2,
		Hausdorff:   math.Max(maximum(e1), maximum(e2)),
	}, nil
}
