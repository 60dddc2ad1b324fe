package smooth

import "github.com/hanfengsunshine/halfedge/mesh"

// explicitStep applies X' = X + λ·P·X once, using the operator for
// weighting w, writes X' back to the mesh's vertex positions, recomputes
// normals, and raises the positions-dirty flag (§4.8).
func explicitStep(m *mesh.Mesh, w Weighting, lambda float64) error {
	P, err := AssembleOperator(m, w)
	if err != nil {
		return err
	}

	x, y, z := positionColumns(m)
	px, py, pz, err := matVec3(P, x, y, z)
	if err != nil {
		return err
	}

	for i := range x {
		x[i] += lambda * px[i]
		y[i] += lambda * py[i]
		z[i] += lambda * pz[i]
	}

	writePositionColumns(m, x, y, z)
	m.ComputeVertexNormals()
	m.SetPositionsDirty(true)
	return nil
}

// ExplicitUniform runs one explicit Laplacian smoothing pass with uniform
// weights (§4.8, §9 — exposed as a distinct operation per the spec's
// preferred resolution of the explicit-smoother double-branch ambiguity).
// With λ=1 this replaces every vertex by the centroid of its one-ring.
func ExplicitUniform(m *mesh.Mesh, lambda float64) error {
	return explicitStep(m, Uniform, lambda)
}

// ExplicitCotangent runs one explicit Laplacian smoothing pass with
// cotangent weights (§4.8, §9).
func ExplicitCotangent(m *mesh.Mesh, lambda float64) error {
	return explicitStep(m, Cotangent, lambda)
}
