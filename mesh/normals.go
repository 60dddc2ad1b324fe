package mesh

import "github.com/hanfengsunshine/halfedge/geom"

// ComputeVertexNormals recomputes every vertex's Normal as an area-weighted
// average of its incident triangle normals (§4.6), then raises the
// normals-dirty flag.
//
// Known limitation (§4.6): area weighting underweights sliver triangles
// relative to their angular contribution; acceptable for this package's
// target use (interactive smoothing, not high-fidelity shading).
func (m *Mesh) ComputeVertexNormals() {
	for _, v := range m.vertices {
		v.Normal = vertexNormal(v)
	}
	m.normalsDirty = true
}

func vertexNormal(v *Vertex) geom.Vec3 {
	hs := OneRingHalfEdges(v)
	ring := OneRingVertices(v)
	k := len(ring)
	if k < 2 {
		return geom.Vec3{}
	}

	var accum geom.Vec3
	var totalArea float64
	for j := 0; j < k; j++ {
		if hs[j].Boundary {
			continue // no triangle on this side of the edge
		}
		// hs[j]'s face is (v, ring[j], ring[j+1]) in its own winding order.
		nj := ring[j]
		njp1 := ring[(j+1)%k]
		a := geom.Area(v.Position, nj.Position, njp1.Position)
		n := geom.Normal(v.Position, nj.Position, njp1.Position)
		accum = accum.Add(n.Scale(a))
		totalArea += a
	}

	if totalArea < geom.Epsilon {
		return geom.Vec3{}
	}
	return accum.Scale(1.0 / totalArea).Normalize()
}
