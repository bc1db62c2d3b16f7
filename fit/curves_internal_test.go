package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fsc/matrix"
)

func TestControlPointsStampsTimes(t *testing.T) {
	x, err := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	pts, err := controlPoints(x, func(j int) float64 { return 10 * float64(j) })
	require.NoError(t, err)
	require.Len(t, pts, 2)
	assert.Equal(t, 4.0, pts[1].X)
	assert.Equal(t, 6.0, pts[1].Z)
	assert.Equal(t, 10.0, pts[1].Time)
}

func TestControlPointsRejectsWrongWidth(t *testing.T) {
	x, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	_, err = controlPoints(x, func(int) float64 { return 0 })
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
