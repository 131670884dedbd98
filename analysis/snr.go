package analysis

import "github.com/NoSuchProcess/SOAX/snake"

// LocalSNRs collects the defined local SNR of every snaxel of snakes.
func LocalSNRs(snakes []*snake.Snake) []float64 {
	var out []float64
	for _, s := range snakes {
		for i := 0; i < s.Len(); i++ {
			if v, ok := s.LocalSNR(i); ok {
				out = append(out, v)
			}
		}
	}

	return out
}

// FValue scores a set of local SNRs: penalizer times the number of values
// below threshold, minus the number of values, divided by the number of
// snakes they came from. Lower is better. Empty input scores 0.
func FValue(snrs []float64, threshold, penalizer float64, snakes int) float64 {
	if len(snrs) == 0 || snakes <= 0 {
		return 0
	}
	var low int
	for _, v := range snrs {
		if v < threshold {
			low++
		}
	}

	return (penalizer*float64(low) - float64(len(snrs))) / float64(snakes)
}
