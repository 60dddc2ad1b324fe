package smooth

import (
	"math"

	"github.com/hanfengsunshine/halfedge/geom"
	"github.com/hanfengsunshine/halfedge/matrix"
	"github.com/hanfengsunshine/halfedge/mesh"
)

// AssembleOperator builds the V×V neighborhood operator P for the chosen
// weighting (§4.7). Every row sums to zero: P[i,i] = -1 and the
// off-diagonal entries in row i sum to 1.
//
// Uniform: P[i,j] = 1/valence(i) for each one-ring neighbor j.
//
// Cotangent: for each one-ring neighbor j with predecessor/successor
// n_{j-1}, n_{j+1} in traversal order, w_ij = cot(angle at n_{j-1} in
// triangle (i, n_{j-1}, n_j)) + cot(angle at n_{j+1} in triangle
// (i, n_{j+1}, n_j)), then P[i,j] = w_ij / Σ_j w_ij.
//
// A vertex with no one-ring neighbors (a degenerate, disconnected vertex)
// contributes an all-zero row rather than a division by zero.
func AssembleOperator(m *mesh.Mesh, w Weighting) (*matrix.Dense, error) {
	n := len(m.Vertices())
	if n == 0 {
		return nil, ErrEmptyMesh
	}

	P, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	for _, v := range m.Vertices() {
		ring := mesh.OneRingVertices(v)
		k := len(ring)
		if k == 0 {
			continue
		}

		switch w {
		case Uniform:
			if err := fillUniformRow(P, v, ring); err != nil {
				return nil, err
			}
		case Cotangent:
			if err := fillCotangentRow(P, v, ring); err != nil {
				return nil, err
			}
		default:
			return nil, ErrUnknownWeighting
		}

		if err := P.Set(v.Index, v.Index, -1); err != nil {
			return nil, err
		}
	}

	return P, nil
}

func fillUniformRow(P *matrix.Dense, v *mesh.Vertex, ring []*mesh.Vertex) error {
	weight := 1.0 / float64(len(ring))
	for _, nb := range ring {
		if err := P.Set(v.Index, nb.Index, weight); err != nil {
			return err
		}
	}
	return nil
}

func fillCotangentRow(P *matrix.Dense, v *mesh.Vertex, ring []*mesh.Vertex) error {
	k := len(ring)
	weights := make([]float64, k)
	sum := 0.0
	for j := 0; j < k; j++ {
		prev := ring[(j-1+k)%k]
		cur := ring[j]
		next := ring[(j+1)%k]

		cotPrev := geom.Cot(prev.Position, v.Position, cur.Position)
		cotNext := geom.Cot(next.Position, v.Position, cur.Position)
		weights[j] = cotPrev + cotNext
		sum += weights[j]
	}

	// A vanishing sum means every incident triangle at v was degenerate;
	// fall back to uniform weighting for this row rather than dividing by
	// zero (§4.1/§4.7: degeneracy propagates, it is never trapped into an
	// error).
	if math.Abs(sum) < geom.Epsilon {
		return fillUniformRow(P, v, ring)
	}

	for j := 0; j < k; j++ {
		if err := P.Set(v.Index, ring[j].Index, weights[j]/sum); err != nil {
			return err
		}
	}
	return nil
}
