package mesh

// OneRingHalfEdges returns the half-edges incident to v, in the order
// described by §4.4: starting at v.HalfEdge, each step yields the current
// half-edge then advances to current.Prev.Twin, stopping when the advance
// would revisit the start. For a boundary vertex this yields every
// incident half-edge exactly once, including the boundary half-edge.
func OneRingHalfEdges(v *Vertex) []*HalfEdge {
	if v == nil || v.HalfEdge == nil {
		return nil
	}

	var ring []*HalfEdge
	start := v.HalfEdge
	curr := start
	for {
		ring = append(ring, curr)
		next := curr.Prev.Twin
		if next == start {
			break
		}
		curr = next
	}
	return ring
}

// OneRingVertices returns the vertices adjacent to v: he.End() for each
// half-edge OneRingHalfEdges(v) yields, in the same order (§4.4).
func OneRingVertices(v *Vertex) []*Vertex {
	ring := OneRingHalfEdges(v)
	out := make([]*Vertex, len(ring))
	for i, h := range ring {
		out[i] = h.End()
	}
	return out
}

// Valence returns the size of v's one-ring of vertices.
func Valence(v *Vertex) int {
	return len(OneRingVertices(v))
}

// IsBoundaryVertex reports whether any half-edge in v's one-ring has the
// Boundary bit set.
func IsBoundaryVertex(v *Vertex) bool {
	for _, h := range OneRingHalfEdges(v) {
		if h.Boundary {
			return true
		}
	}
	return false
}

// IsBoundaryFace reports whether any of a face's three half-edges has a
// boundary twin.
func IsBoundaryFace(f *Face) bool {
	curr := f.HalfEdge
	for i := 0; i < 3; i++ {
		if curr.Twin.Boundary {
			return true
		}
		curr = curr.Next
	}
	return false
}
