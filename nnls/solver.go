// SPDX-License-Identifier: MIT

package nnls

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/fsc/matrix"
)

// Result is the outcome of Solve.
type Result struct {
	// X is the solution; every component is ≥ 0.
	X []float64
	// Iterations is the number of outer iterations performed.
	Iterations int
	// Converged is false when the iteration cap stopped the solver.
	Converged bool
}

// problem holds the quadratic form f(x) = ½·xᵗAx − cᵗx with A = BᵗB and
// c = Bᵗy; its gradient is Ax − c. a caches the rows of gram.
type problem struct {
	gram *matrix.Dense
	all  []int
	a    [][]float64
	c    []float64
}

func (p *problem) gradient(x []float64) []float64 {
	g := make([]float64, len(x))
	for i, row := range p.a {
		g[i] = floats.Dot(row, x) - p.c[i]
	}

	return g
}

func (p *problem) objective(x []float64) float64 {
	var f float64
	for i, row := range p.a {
		f += x[i] * (0.5*floats.Dot(row, x) - p.c[i])
	}

	return f
}

// Solve minimizes ‖B·x − y‖² subject to x ≥ 0.
//
// Implementation:
//   - Stage 1: validate, form A = BᵗB and c = Bᵗy, start from the clipped
//     unconstrained solution.
//   - Stage 2: iterate free-set partition → L-BFGS direction → projected
//     Armijo search → scatter and push the curvature pair, until the free
//     step is below tolerance or the cap is reached.
//
// Behavior highlights:
//   - The result is feasible on every return path.
//   - Hitting the iteration cap logs a warning and returns the iterate with
//     Converged=false; it is not an error.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrDimensionMismatch, ErrNonFinite.
//
// Complexity:
//   - Setup O(N·M²); each iteration O(M² + h·M) for h stored pairs.
func Solve(b matrix.Matrix, y []float64, opts ...Option) (Result, error) {
	if err := matrix.ValidateNotNil(b); err != nil {
		return Result{}, nnlsErrorf("Solve", err)
	}
	if len(y) != b.Rows() {
		return Result{}, fmt.Errorf("Solve: %d observations for %d rows: %w", len(y), b.Rows(), ErrDimensionMismatch)
	}
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Result{}, fmt.Errorf("Solve: observation %d: %w", i, ErrNonFinite)
		}
	}
	cfg := newConfig(opts...)

	p, err := newProblem(b, y)
	if err != nil {
		return Result{}, nnlsErrorf("Solve", err)
	}
	x := p.start(cfg.logger)
	g := p.gradient(x)
	hist := newHistory(cfg.history)

	var (
		free      []int
		gF, xF, d []float64
		cand      []float64
		delta     float64
		iter      int
	)
	for iter = 1; iter <= cfg.maxIter; iter++ {
		free = freeSet(x, g)
		if len(free) == 0 {
			return Result{X: x, Iterations: iter, Converged: true}, nil
		}
		if gF, err = p.freeGradient(x, free); err != nil {
			return Result{}, nnlsErrorf("Solve", err)
		}
		xF = gather(x, free)

		d = twoLoop(gF, hist, free)
		if !(floats.Dot(gF, d) > 0) {
			// Not a descent direction: restart from steepest descent.
			d = gF
			hist.reset()
		}

		cand = p.lineSearch(x, xF, gF, d, free)

		xNew := append([]float64(nil), x...)
		scatter(xNew, cand, free)
		gNew := p.gradient(xNew)

		s := make([]float64, len(x))
		floats.SubTo(s, xNew, x)
		yv := make([]float64, len(x))
		floats.SubTo(yv, gNew, g)
		hist.push(s, yv)

		delta = floats.Distance(cand, xF, 2)
		delta *= delta
		x, g = xNew, gNew
		if delta < cfg.tol {
			return Result{X: x, Iterations: iter, Converged: true}, nil
		}
	}

	cfg.logger.Warn("nnls: iteration cap reached, returning current estimate",
		slog.Int("iterations", cfg.maxIter),
		slog.Float64("last_step_sq", delta),
		slog.Int("unknowns", len(x)))

	return Result{X: x, Iterations: cfg.maxIter, Converged: false}, nil
}

func newProblem(b matrix.Matrix, y []float64) (*problem, error) {
	gram, err := matrix.Gram(b)
	if err != nil {
		return nil, err
	}
	c, err := matrix.MatTVec(b, y)
	if err != nil {
		return nil, err
	}
	a := make([][]float64, gram.Rows())
	all := make([]int, gram.Rows())
	for i := range a {
		if a[i], err = gram.Row(i); err != nil {
			return nil, err
		}
		all[i] = i
	}

	return &problem{gram: gram, all: all, a: a, c: c}, nil
}

// freeGradient returns A[free,:]·x − c[free], the gradient restricted to
// the free variables.
func (p *problem) freeGradient(x []float64, free []int) ([]float64, error) {
	sub, err := p.gram.Induced(free, p.all)
	if err != nil {
		return nil, err
	}
	gF, err := matrix.MatVec(sub, x)
	if err != nil {
		return nil, err
	}
	floats.Sub(gF, gather(p.c, free))

	return gF, nil
}

// start returns the unconstrained solution of A·x = c clipped to x ≥ 0,
// or zeros when A is singular.
func (p *problem) start(logger *slog.Logger) []float64 {
	x := make([]float64, len(p.c))
	var (
		sol *matrix.Dense
		col []float64
	)
	rhs, err := matrix.NewColumn(p.c)
	if err == nil {
		sol, err = matrix.Solve(p.gram, rhs)
	}
	if err == nil {
		col, err = sol.Col(0)
	}
	if err == nil {
		for i, v := range col {
			x[i] = math.Max(0, v)
		}

		return x
	}
	if errors.Is(err, matrix.ErrSingular) {
		logger.Debug("nnls: singular normal equations, starting from zero", slog.Int("unknowns", len(x)))
	} else {
		logger.Debug("nnls: unconstrained start failed, starting from zero", slog.Any("error", err))
	}

	return x
}

// lineSearch backtracks α = 1, ½, … along the projection arc
// P(xF − α·d) and returns the first candidate with
//
//	f(candidate) ≤ f(x) + τ·gFᵗ(candidate − xF).
//
// If no candidate qualifies within maxHalvings the current point is kept.
func (p *problem) lineSearch(x, xF, gF, d []float64, free []int) []float64 {
	f0 := p.objective(x)
	trial := append([]float64(nil), x...)
	cand := make([]float64, len(xF))
	step := make([]float64, len(xF))
	alpha := 1.0
	for h := 0; h < maxHalvings; h++ {
		for i := range cand {
			cand[i] = math.Max(0, xF[i]-alpha*d[i])
		}
		scatter(trial, cand, free)
		floats.SubTo(step, cand, xF)
		if p.objective(trial) <= f0+armijoTau*floats.Dot(gF, step) {
			return cand
		}
		alpha *= 0.5
	}

	return append([]float64(nil), xF...)
}

// twoLoop applies the L-BFGS inverse-Hessian approximation built from the
// stored pairs (restricted to free) to gF.
func twoLoop(gF []float64, hist *history, free []int) []float64 {
	q := append([]float64(nil), gF...)
	m := hist.len()
	if m == 0 {
		return q
	}

	ss := make([][]float64, m)
	ys := make([][]float64, m)
	rho := make([]float64, m)
	alpha := make([]float64, m)
	for i := 0; i < m; i++ {
		pr := hist.at(i)
		ss[i] = gather(pr.s, free)
		ys[i] = gather(pr.y, free)
		rho[i] = safeRatio(1, floats.Dot(ys[i], ss[i]))
	}

	for i := m - 1; i >= 0; i-- {
		alpha[i] = rho[i] * floats.Dot(ss[i], q)
		floats.AddScaled(q, -alpha[i], ys[i])
	}

	gamma := safeRatio(floats.Dot(ss[m-1], ys[m-1]), floats.Dot(ys[m-1], ys[m-1]))
	floats.Scale(gamma, q)

	var beta float64
	for i := 0; i < m; i++ {
		beta = rho[i] * floats.Dot(ys[i], q)
		floats.AddScaled(q, alpha[i]-beta, ss[i])
	}

	return q
}

// safeRatio returns num/den, or 1 when the quotient is NaN or ±Inf.
func safeRatio(num, den float64) float64 {
	r := num / den
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 1
	}

	return r
}

// freeSet returns the indices with x_i > 0, or x_i = 0 and g_i ≤ 0.
func freeSet(x, g []float64) []int {
	free := make([]int, 0, len(x))
	for i := range x {
		if x[i] > 0 || g[i] <= 0 {
			free = append(free, i)
		}
	}

	return free
}

func gather(v []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for k, i := range idx {
		out[k] = v[i]
	}

	return out
}

func scatter(dst, src []float64, idx []int) {
	for k, i := range idx {
		dst[i] = src[k]
	}
}

// KKT returns the full gradient BᵗB·x − Bᵗy at x. At a solution every
// component is ≈ 0 where x_i > 0 and ≥ 0 where x_i = 0.
//
// Errors: matrix.ErrNilMatrix, ErrDimensionMismatch.
func KKT(b matrix.Matrix, y, x []float64) ([]float64, error) {
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, nnlsErrorf("KKT", err)
	}
	if len(y) != b.Rows() || len(x) != b.Cols() {
		return nil, nnlsErrorf("KKT", ErrDimensionMismatch)
	}
	bx, err := matrix.MatVec(b, x)
	if err != nil {
		return nil, nnlsErrorf("KKT", err)
	}
	floats.Sub(bx, y)
	g, err := matrix.MatTVec(b, bx)
	if err != nil {
		return nil, nnlsErrorf("KKT", err)
	}

	return g, nil
}
