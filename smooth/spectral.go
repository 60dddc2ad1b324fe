package smooth

import (
	"sort"

	"github.com/hanfengsunshine/halfedge/matrix"
	"github.com/hanfengsunshine/halfedge/matrix/ops"
	"github.com/hanfengsunshine/halfedge/mesh"
)

// SpectralGap is a supplemental mesh-quality diagnostic (§4.9.5, expanded
// beyond the distilled spec): it symmetrizes the assembled operator P into
// S = (P + Pᵀ)/2 and runs Jacobi eigendecomposition (matrix/ops.Eigen) on
// −S, which is positive semi-definite for a valid discrete Laplacian
// (P's diagonal is −1, its rows sum to zero), and returns the k smallest
// eigenvalues in ascending order.
//
// A small second-smallest eigenvalue (the "spectral gap") signals a
// near-disconnected or poorly triangulated mesh; a first eigenvalue of
// (near) zero per connected component is expected for any Laplacian.
func SpectralGap(m *mesh.Mesh, w Weighting, k int) ([]float64, error) {
	P, err := AssembleOperator(m, w)
	if err != nil {
		return nil, err
	}

	pt, err := matrix.Transpose(P)
	if err != nil {
		return nil, err
	}
	sum, err := matrix.Add(P, pt)
	if err != nil {
		return nil, err
	}
	s, err := matrix.Scale(sum, 0.5)
	if err != nil {
		return nil, err
	}
	negS, err := matrix.Scale(s, -1)
	if err != nil {
		return nil, err
	}

	eigenvalues, _, err := ops.Eigen(negS, 1e-9, 500)
	if err != nil {
		return nil, err
	}

	sort.Float64s(eigenvalues)
	if k > len(eigenvalues) {
		k = len(eigenvalues)
	}
	if k < 0 {
		k = 0
	}
	return eigenvalues[:k], nil
}
