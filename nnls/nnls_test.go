package nnls_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/fsc/matrix"
	"github.com/katalvlaran/fsc/nnls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestSolveIdentityProjectsNegative(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	res, err := nnls.Solve(id, []float64{1, -1, 2})
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDeltaSlice(t, []float64{1, 0, 2}, res.X, 1e-12)
}

func TestSolveUnconstrainedOptimumIsKept(t *testing.T) {
	b, err := matrix.NewDenseFrom([][]float64{{1, 0}, {0, 2}, {1, 1}})
	require.NoError(t, err)
	// y = B·[1, 3]
	res, err := nnls.Solve(b, []float64{1, 6, 4})
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDeltaSlice(t, []float64{1, 3}, res.X, 1e-9)
}

func TestSolveReoptimizesAfterClipping(t *testing.T) {
	b, err := matrix.NewDenseFrom([][]float64{{1, 1}, {0, 1}})
	require.NoError(t, err)
	y := []float64{1, -1}

	res, err := nnls.Solve(b, y)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 2, res.Iterations)
	assert.InDeltaSlice(t, []float64{1, 0}, res.X, 1e-12)
}

func TestSolveIterationCapWarns(t *testing.T) {
	b, err := matrix.NewDenseFrom([][]float64{{1, 1}, {0, 1}})
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	res, err := nnls.Solve(b, []float64{1, -1}, nnls.WithMaxIterations(1), nnls.WithLogger(logger))
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	for _, v := range res.X {
		assert.GreaterOrEqual(t, v, 0.0)
	}
	assert.Contains(t, buf.String(), "iteration cap reached")
}

func TestSolveSingularStart(t *testing.T) {
	b, err := matrix.NewDenseFrom([][]float64{{1, 1}, {1, 1}})
	require.NoError(t, err)

	res, err := nnls.Solve(b, []float64{1, 1}, nnls.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.Len(t, res.X, 2)
	assert.GreaterOrEqual(t, res.X[0], 0.0)
	assert.GreaterOrEqual(t, res.X[1], 0.0)
	assert.InDelta(t, 1.0, res.X[0]+res.X[1], 1e-6)
}

// TestSolveKKTRandom checks feasibility and the optimality conditions on
// seeded random problems.
func TestSolveKKTRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		rows, cols := 30, 8
		data := make([][]float64, rows)
		y := make([]float64, rows)
		for i := range data {
			data[i] = make([]float64, cols)
			for j := range data[i] {
				data[i][j] = rng.NormFloat64()
			}
			y[i] = rng.NormFloat64() * 3
		}
		b, err := matrix.NewDenseFrom(data)
		require.NoError(t, err)

		res, err := nnls.Solve(b, y, nnls.WithLogger(quietLogger()))
		require.NoError(t, err)
		require.True(t, res.Converged, "trial %d", trial)

		g, err := nnls.KKT(b, y, res.X)
		require.NoError(t, err)
		for i, x := range res.X {
			require.GreaterOrEqual(t, x, 0.0)
			if x > 1e-8 {
				assert.InDelta(t, 0, g[i], 1e-4, "trial %d free gradient %d", trial, i)
			} else {
				assert.GreaterOrEqual(t, g[i], -1e-4, "trial %d bound gradient %d", trial, i)
			}
		}
	}
}

func TestSolveErrors(t *testing.T) {
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	_, err = nnls.Solve(id, []float64{1})
	require.ErrorIs(t, err, nnls.ErrDimensionMismatch)

	_, err = nnls.Solve(id, []float64{1, math.NaN()})
	require.ErrorIs(t, err, nnls.ErrNonFinite)

	_, err = nnls.Solve(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = nnls.KKT(id, []float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, nnls.ErrDimensionMismatch)

	assert.Panics(t, func() { nnls.WithHistory(0) })
	assert.Panics(t, func() { nnls.WithLogger(nil) })
	assert.Panics(t, func() { nnls.WithTolerance(0) })
}
