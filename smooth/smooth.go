// Package smooth builds the per-vertex neighborhood operator P from a
// mesh's connectivity (§4.7) and implements the two Laplacian smoothers
// that use it: the explicit single-step update (§4.8) and the implicit
// per-axis linear solve (§4.9), plus a spectral diagnostic (§4.9.5,
// expanded beyond the distilled spec).
//
// Both smoothers read positions and valences as of the instant they are
// invoked and must not run concurrently with another smoother on the same
// mesh (§5); P is always rebuilt from the mesh's current connectivity, not
// cached across calls.
package smooth

import (
	"errors"

	"github.com/hanfengsunshine/halfedge/geom"
	"github.com/hanfengsunshine/halfedge/matrix"
	"github.com/hanfengsunshine/halfedge/mesh"
)

// Weighting selects how AssembleOperator fills P's off-diagonal entries.
type Weighting int

const (
	// Uniform sets P[i,j] = 1/valence(i) for every one-ring neighbor j.
	Uniform Weighting = iota
	// Cotangent sets P[i,j] to the row-normalized cotangent weight
	// described in §4.7.
	Cotangent
)

func (w Weighting) String() string {
	switch w {
	case Uniform:
		return "uniform"
	case Cotangent:
		return "cotangent"
	default:
		return "unknown"
	}
}

// ErrEmptyMesh is returned by every operation in this package when the
// mesh has no vertices; there is nothing to assemble or solve.
var ErrEmptyMesh = errors.New("smooth: mesh has no vertices")

// ErrUnknownWeighting is returned when a Weighting value outside Uniform/
// Cotangent is passed in.
var ErrUnknownWeighting = errors.New("smooth: unknown weighting")

// positionColumns returns the mesh's vertex positions as three parallel
// []float64 columns indexed by Vertex.Index, matching the flat right-hand
// side shape matrix/ops.BiCGSTAB expects (§4.9's per-axis solve).
func positionColumns(m *mesh.Mesh) (x, y, z []float64) {
	vs := m.Vertices()
	x = make([]float64, len(vs))
	y = make([]float64, len(vs))
	z = make([]float64, len(vs))
	for _, v := range vs {
		x[v.Index] = v.Position.X
		y[v.Index] = v.Position.Y
		z[v.Index] = v.Position.Z
	}
	return x, y, z
}

// writePositionColumns writes x/y/z back into the mesh's vertex positions
// by index.
func writePositionColumns(m *mesh.Mesh, x, y, z []float64) {
	for _, v := range m.Vertices() {
		v.Position = geom.Vec3{X: x[v.Index], Y: y[v.Index], Z: z[v.Index]}
	}
}

// matVec3 applies m to each of the three columns, matching
// matrix.MatVec's signature and error behavior.
func matVec3(m matrix.Matrix, x, y, z []float64) (px, py, pz []float64, err error) {
	if px, err = matrix.MatVec(m, x); err != nil {
		return nil, nil, nil, err
	}
	if py, err = matrix.MatVec(m, y); err != nil {
		return nil, nil, nil, err
	}
	if pz, err = matrix.MatVec(m, z); err != nil {
		return nil, nil, nil, err
	}
	return px, py, pz, nil
}
