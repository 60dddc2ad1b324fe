// Package ops provides advanced matrix operations for the matrix package.
package ops

import (
	"math"

	"github.com/hanfengsunshine/halfedge/matrix"
)

// BiCGSTABOptions configures the solver's stopping criteria.
type BiCGSTABOptions struct {
	// MaxIterations caps the number of outer loop iterations.
	MaxIterations int
	// Tolerance is the squared-residual threshold; the solver stops once
	// dot(b-Ax, b-Ax) falls below it.
	Tolerance float64
}

// DefaultBiCGSTABOptions mirrors the constants the original assignment's
// smoother used (MAX_ITERATIONS=2000, ERROR_TOLERANCE=1e-7), widened to
// double precision.
func DefaultBiCGSTABOptions() BiCGSTABOptions {
	return BiCGSTABOptions{
		MaxIterations: 2000,
		Tolerance:     1e-7,
	}
}

// BiCGSTAB solves A x = b for x via the biconjugate gradient stabilized
// method, starting from x0 (which may be the zero vector or a warm-started
// guess) and returning the iterate it holds when the tolerance is met or
// opts.MaxIterations steps are used up.
//
// Unlike Eigen in this package, non-convergence is not reported as an error:
// the caller receives whatever iterate the loop reached when it either
// satisfied the tolerance or exhausted its iteration budget, plus a bool
// reporting whether the tolerance was actually met. Smoothing a mesh with a
// slightly-under-converged operator is a visibly-softer result, not a
// failure, so there is nothing here worth returning an error for.
//
// Grounded on the biconjugate gradient stabilized method
// (https://en.wikipedia.org/wiki/Biconjugate_gradient_stabilized_method), the same
// recursion the original mesh smoother used under the name
// "fnConjugateGradient" (a misnomer the original file itself carries: the
// recursion computed is BiCGSTAB, not plain CG).
func BiCGSTAB(A matrix.Matrix, b []float64, x0 []float64, opts BiCGSTABOptions) (x []float64, converged bool, err error) {
	if err = matrix.ValidateNotNil(A); err != nil {
		return nil, false, err
	}
	if err = matrix.ValidateSquare(A); err != nil {
		return nil, false, err
	}
	n := A.Rows()
	if len(b) != n {
		return nil, false, matrix.ErrMatrixDimensionMismatch
	}

	x = make([]float64, n)
	if x0 != nil {
		if len(x0) != n {
			return nil, false, matrix.ErrMatrixDimensionMismatch
		}
		copy(x, x0)
	}

	tol := opts.Tolerance
	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultBiCGSTABOptions().MaxIterations
	}

	r, rErr := residual(A, b, x)
	if rErr != nil {
		return nil, false, rErr
	}
	rStar := append([]float64(nil), r...)

	rho := 1.0
	alpha := 1.0
	omega := 1.0
	v := make([]float64, n)
	p := make([]float64, n)

	for iter := 0; iter < maxIter; iter++ {
		cur, cErr := residual(A, b, x)
		if cErr != nil {
			return nil, false, cErr
		}
		if dot(cur, cur) < tol {
			return x, true, nil
		}

		rhoNext := dot(rStar, r)
		beta := (rhoNext / rho) * (alpha / omega)

		pNext := axpy(1, r, beta, sub(p, scale(omega, v)))
		vNext, mvErr := matrix.MatVec(A, pNext)
		if mvErr != nil {
			return nil, false, mvErr
		}
		alpha = rhoNext / dot(rStar, vNext)
		h := axpy(1, x, alpha, pNext)

		diff, dErr := residual(A, b, h)
		if dErr != nil {
			return nil, false, dErr
		}
		if dot(diff, diff) < tol {
			return h, true, nil
		}

		s := axpy(1, r, -alpha, vNext)
		t, tErr := matrix.MatVec(A, s)
		if tErr != nil {
			return nil, false, tErr
		}
		tDotT := dot(t, t)
		var omegaNext float64
		if tDotT == 0 {
			omegaNext = 0
		} else {
			omegaNext = dot(t, s) / tDotT
		}
		xNext := axpy(1, h, omegaNext, s)
		rNext := axpy(1, s, -omegaNext, t)

		r, rho, omega, v, p, x = rNext, rhoNext, omegaNext, vNext, pNext, xNext
	}

	finalResidual, fErr := residual(A, b, x)
	if fErr != nil {
		return nil, false, fErr
	}

	return x, dot(finalResidual, finalResidual) < tol, nil
}

// residual computes b - A*x.
func residual(A matrix.Matrix, b, x []float64) ([]float64, error) {
	ax, err := matrix.MatVec(A, x)
	if err != nil {
		return nil, err
	}
	return sub(b, ax), nil
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func scale(alpha float64, a []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = alpha * a[i]
	}
	return out
}

// axpy computes alpha*a + beta*b element-wise.
func axpy(alpha float64, a []float64, beta float64, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = alpha*a[i] + beta*b[i]
	}
	return out
}

// residualNorm returns the Euclidean norm ‖b − A·x‖ of the residual of x.
// It is unexported, so only code inside package ops can call it.
func residualNorm(A matrix.Matrix, b, x []float64) (float64, error) {
	r, err := residual(A, b, x)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(dot(r, r)), nil
}
