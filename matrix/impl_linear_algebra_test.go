package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fsc/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func TestMul(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	b := mustDense(t, [][]float64{{1, 0, 2}, {0, 1, 3}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 8]\n[3, 4, 18]\n[5, 6, 28]\n", c.String())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestGramMatchesTransposeProduct(t *testing.T) {
	b := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	g, err := matrix.Gram(b)
	require.NoError(t, err)

	bt, err := matrix.Transpose(b)
	require.NoError(t, err)
	want, err := matrix.Mul(bt, b)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			gv, _ := g.At(i, j)
			wv, _ := want.At(i, j)
			assert.InDelta(t, wv, gv, tol)
		}
	}
}

func TestTranspose(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, "[1, 4]\n[2, 5]\n[3, 6]\n", tr.String())
}

func TestMatVecAndMatTVec(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	y, err := matrix.MatVec(m, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, -1}, y)

	z, err := matrix.MatTVec(m, []float64{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 8}, z)

	_, err = matrix.MatVec(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatTVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScaleRows(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	s, err := matrix.ScaleRows(m, []float64{2, 0.5})
	require.NoError(t, err)
	assert.Equal(t, "[2, 4]\n[1.5, 2]\n", s.String())
}

func TestSolveSquare(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 1}, {1, 3}})
	b := mustDense(t, [][]float64{{3, 1}, {5, 2}})

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, x.Rows())
	require.Equal(t, 2, x.Cols())

	// A·X must reproduce B column by column.
	ax, err := matrix.Mul(a, x)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			got, _ := ax.At(i, j)
			want, _ := b.At(i, j)
			assert.InDelta(t, want, got, 1e-10)
		}
	}
}

func TestSolveTallLeastSquares(t *testing.T) {
	// y = 1 + 2t sampled exactly; least squares recovers the line.
	a := mustDense(t, [][]float64{{1, 0}, {1, 1}, {1, 2}, {1, 3}})
	b := mustDense(t, [][]float64{{1}, {3}, {5}, {7}})

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	c0, _ := x.At(0, 0)
	c1, _ := x.At(1, 0)
	assert.InDelta(t, 1.0, c0, 1e-10)
	assert.InDelta(t, 2.0, c1, 1e-10)
}

func TestSolveErrors(t *testing.T) {
	singular := mustDense(t, [][]float64{{1, 2}, {2, 4}})
	rhs := mustDense(t, [][]float64{{1}, {2}})
	_, err := matrix.Solve(singular, rhs)
	require.ErrorIs(t, err, matrix.ErrSingular)

	wide := mustDense(t, [][]float64{{1, 2, 3}})
	_, err = matrix.Solve(wide, mustDense(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrUnderdetermined)

	_, err = matrix.Solve(singular, mustDense(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestIdentityAndColumn(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, id.RowSums())

	col, err := matrix.NewColumn([]float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "[1]\n[2]\n", col.String())

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
