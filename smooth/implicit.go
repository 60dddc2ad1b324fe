package smooth

import (
	"github.com/hanfengsunshine/halfedge/matrix"
	"github.com/hanfengsunshine/halfedge/matrix/ops"
	"github.com/hanfengsunshine/halfedge/mesh"
	"github.com/hanfengsunshine/halfedge/meshlog"
)

// systemMatrix builds A = I − λ·P from the assembled operator P, so that
// A[i,i] = 1 + λ and A[i,j] = −λ·w_ij for the off-diagonal weights §4.7
// stored in P (§4.9).
func systemMatrix(P *matrix.Dense, lambda float64) (matrix.Matrix, error) {
	scaled, err := matrix.Scale(P, -lambda)
	if err != nil {
		return nil, err
	}
	identity, err := matrix.NewIdentity(P.Rows())
	if err != nil {
		return nil, err
	}
	return matrix.Add(scaled, identity)
}

// Convergence reports whether the implicit solve for each coordinate axis
// reached opts.Tolerance within opts.MaxIterations (§4.9); non-convergence
// is advisory only (§7) — it is never an error.
type Convergence struct {
	X, Y, Z bool
}

// Converged reports whether every axis converged.
func (c Convergence) Converged() bool { return c.X && c.Y && c.Z }

func implicitStep(m *mesh.Mesh, w Weighting, lambda float64, opts ops.BiCGSTABOptions) (Convergence, error) {
	P, err := AssembleOperator(m, w)
	if err != nil {
		return Convergence{}, err
	}
	A, err := systemMatrix(P, lambda)
	if err != nil {
		return Convergence{}, err
	}

	x, y, z := positionColumns(m)

	nx, convX, err := ops.BiCGSTAB(A, x, nil, opts)
	if err != nil {
		return Convergence{}, err
	}
	ny, convY, err := ops.BiCGSTAB(A, y, nil, opts)
	if err != nil {
		return Convergence{}, err
	}
	nz, convZ, err := ops.BiCGSTAB(A, z, nil, opts)
	if err != nil {
		return Convergence{}, err
	}

	conv := Convergence{X: convX, Y: convY, Z: convZ}
	if !conv.Converged() {
		meshlog.Default().Warnf(
			"smooth: implicit %s solve did not reach tolerance %.1e within %d iterations (axes converged: x=%v y=%v z=%v)",
			w, opts.Tolerance, opts.MaxIterations, convX, convY, convZ,
		)
	}

	writePositionColumns(m, nx, ny, nz)
	m.ComputeVertexNormals()
	m.SetPositionsDirty(true)
	return conv, nil
}

// ImplicitUniform solves (I − λ·P)·X' = X once per coordinate axis with
// uniform weights, via BiCGSTAB (§4.9), and writes the result back to the
// mesh.
func ImplicitUniform(m *mesh.Mesh, lambda float64, opts ops.BiCGSTABOptions) (Convergence, error) {
	return implicitStep(m, Uniform, lambda, opts)
}

// ImplicitCotangent solves (I − λ·P)·X' = X once per coordinate axis with
// cotangent weights, via BiCGSTAB (§4.9), and writes the result back to
// the mesh.
func ImplicitCotangent(m *mesh.Mesh, lambda float64, opts ops.BiCGSTABOptions) (Convergence, error) {
	return implicitStep(m, Cotangent, lambda, opts)
}

// DefaultOptions is a convenience re-export of the solver's documented
// defaults (MaxIterations=2000, Tolerance=1e-7, §4.9) so callers don't need
// to import matrix/ops solely to get them.
func DefaultOptions() ops.BiCGSTABOptions {
	return ops.DefaultBiCGSTABOptions()
}
