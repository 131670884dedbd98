// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// bandErrorf wraps an underlying error with Band method context.
func bandErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Band.%s(%d,%d): %w", method, row, col, err)
}

// Band is a square n×n matrix whose non-zero entries lie within kl diagonals
// below and ku diagonals above the main diagonal.
//
// Storage is row-major over the band: row i keeps columns i-kl .. i+ku in a
// window of width kl+ku+1, so element (i, j) lives at data[i*w + j-i+kl].
// Positions of the window that fall outside the matrix are never read.
//
// Complexity: O(n*(kl+ku+1)) memory.
type Band struct {
	n      int       // order
	kl, ku int       // lower and upper bandwidth
	w      int       // window width (kl+ku+1)
	data   []float64 // band storage, length n*w
}

// NewBand allocates a zero n×n band matrix with the given bandwidths.
// A bandwidth larger than n-1 is clamped so that a dense matrix can be
// represented with NewBand(n, n-1, n-1).
//
// Errors:
//   - ErrInvalidDimensions if n <= 0.
//   - ErrInvalidBandwidth if kl or ku is negative.
func NewBand(n, kl, ku int) (*Band, error) {
	if n <= 0 {
		return nil, matrixErrorf(opNewBand, ErrInvalidDimensions)
	}
	if kl < 0 || ku < 0 {
		return nil, matrixErrorf(opNewBand, ErrInvalidBandwidth)
	}
	kl = min(kl, n-1)
	ku = min(ku, n-1)
	w := kl + ku + 1

	return &Band{n: n, kl: kl, ku: ku, w: w, data: make([]float64, n*w)}, nil
}

// Rows returns the order of the matrix.
func (b *Band) Rows() int { return b.n }

// Cols returns the order of the matrix.
func (b *Band) Cols() int { return b.n }

// Lower returns the lower bandwidth.
func (b *Band) Lower() int { return b.kl }

// Upper returns the upper bandwidth.
func (b *Band) Upper() int { return b.ku }

// inBand reports whether (i, j) lies inside the stored band.
func (b *Band) inBand(i, j int) bool {
	return j-i <= b.ku && i-j <= b.kl
}

// At returns element (i, j); positions outside the band read as zero.
func (b *Band) At(i, j int) (float64, error) {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return 0, bandErrorf("At", i, j, ErrOutOfRange)
	}
	if !b.inBand(i, j) {
		return 0, nil
	}

	return b.data[i*b.w+j-i+b.kl], nil
}

// Set assigns element (i, j). Writing a non-zero value outside the band
// returns ErrOutsideBand; writing zero there is a no-op.
func (b *Band) Set(i, j int, v float64) error {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return bandErrorf("Set", i, j, ErrOutOfRange)
	}
	if !b.inBand(i, j) {
		if v == 0 {
			return nil
		}

		return bandErrorf("Set", i, j, ErrOutsideBand)
	}
	b.data[i*b.w+j-i+b.kl] = v

	return nil
}

// Dense expands the band into a Dense matrix (debugging and tests).
func (b *Band) Dense() *Dense {
	d := &Dense{r: b.n, c: b.n, data: make([]float64, b.n*b.n)}
	for i := 0; i < b.n; i++ {
		lo := max(0, i-b.kl)
		hi := min(b.n-1, i+b.ku)
		for j := lo; j <= hi; j++ {
			d.data[i*b.n+j] = b.data[i*b.w+j-i+b.kl]
		}
	}

	return d
}
