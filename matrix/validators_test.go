// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/NoSuchProcess/SOAX/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	var nilDense *matrix.Dense
	var nilBand *matrix.Band
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(nilDense), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(nilBand), matrix.ErrNilMatrix)

	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(d))
	require.ErrorIs(t, matrix.ValidateSquare(d), matrix.ErrDimensionMismatch)

	b, err := matrix.NewBand(4, 2, 2)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSquare(b))

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))

	require.NoError(t, matrix.ValidateFinite([]float64{0, -1, 1e300}))
	require.ErrorIs(t, matrix.ValidateFinite([]float64{math.NaN()}), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite([]float64{math.Inf(-1)}), matrix.ErrNaNInf)
}
