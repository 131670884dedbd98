package solver

import (
	"fmt"

	"github.com/NoSuchProcess/SOAX/matrix"
)

// FillOpen builds the pentadiagonal stiffness matrix of an open snake.
//
// The first and last two rows carry the free-end boundary terms:
//
//	row 0:    a+b+g     -a-2b     b
//	row 1:    -a-2b     2a+5b+g   -a-4b     b
//	row i:    b  -a-4b  2a+6b+g   -a-4b     b
//	row n-2:  b  -a-4b  2a+5b+g   -a-2b
//	row n-1:  b  -a-2b  a+b+g
func FillOpen(order int, c Coefficients) (*matrix.Band, error) {
	if order < MinimumEvolvingSize {
		return nil, fmt.Errorf("FillOpen(order=%d): %w", order, ErrOrderTooSmall)
	}
	a, b, g := c.Alpha, c.Beta, c.Gamma
	m, err := matrix.NewBand(order, 2, 2)
	if err != nil {
		return nil, err
	}

	diag := make([]float64, order)
	off1 := make([]float64, order-1) // (i, i+1) and (i+1, i)
	for i := range diag {
		diag[i] = 2*a + 6*b + g
	}
	diag[0], diag[order-1] = a+b+g, a+b+g
	diag[1], diag[order-2] = 2*a+5*b+g, 2*a+5*b+g
	for i := range off1 {
		off1[i] = -a - 4*b
	}
	off1[0], off1[order-2] = -a-2*b, -a-2*b

	for i := 0; i < order; i++ {
		_ = m.Set(i, i, diag[i])
		if i+1 < order {
			_ = m.Set(i, i+1, off1[i])
			_ = m.Set(i+1, i, off1[i])
		}
		if i+2 < order {
			_ = m.Set(i, i+2, b)
			_ = m.Set(i+2, i, b)
		}
	}

	return m, nil
}

// FillClosed builds the circulant pentadiagonal stiffness matrix of a closed
// snake. Every row is b, -a-4b, 2a+6b+g, -a-4b, b centred on the diagonal with
// column indices taken modulo order.
func FillClosed(order int, c Coefficients) (*matrix.Dense, error) {
	if order < MinimumEvolvingSize {
		return nil, fmt.Errorf("FillClosed(order=%d): %w", order, ErrOrderTooSmall)
	}
	a, b, g := c.Alpha, c.Beta, c.Gamma
	m, err := matrix.NewDense(order, order)
	if err != nil {
		return nil, err
	}
	row := [5]float64{b, -a - 4*b, 2*a + 6*b + g, -a - 4*b, b}
	for i := 0; i < order; i++ {
		for k, v := range row {
			_ = m.Set(i, (i+k-2+order)%order, v)
		}
	}

	return m, nil
}
