package mesh

import (
	"github.com/hanfengsunshine/halfedge/geom"
	"github.com/hanfengsunshine/halfedge/meshlog"
)

// edgeKey identifies a directed half-edge by its (start, end) vertex-index
// pair, used to look up a boundary half-edge's potential twin during
// construction (§4.3's "Design Notes" invites replacing the transient
// per-vertex incidence multiset with a side map keyed by endpoint pair).
type edgeKey struct {
	start, end int
}

// NewFromArrays builds a half-edge mesh from a dense vertex-position table
// and a dense triangle-index table, per §4.3. positions[i] gives the 3D
// position of vertex i; faces[f] gives the three vertex indices of
// triangle f, in consistent winding order across the mesh (the caller's
// responsibility — §6).
func NewFromArrays(positions [][3]float64, faces [][3]int) (*Mesh, error) {
	if len(positions) == 0 {
		return nil, ErrEmptyPositions
	}

	m := &Mesh{}
	m.vertices = make([]*Vertex, len(positions))
	for i, p := range positions {
		m.vertices[i] = &Vertex{
			Position: geom.Vec3{X: p[0], Y: p[1], Z: p[2]},
			Color:    defaultVertexColor,
			Index:    i,
			Valid:    true,
		}
	}

	// pending maps a directed (start, end) pair to the boundary half-edge
	// created for it, so the next face that would create the reverse
	// directed pair can find and splice it in O(1) instead of scanning a
	// per-vertex incidence list.
	pending := make(map[edgeKey]*HalfEdge)

	for _, f := range faces {
		if err := validateTriangle(f, len(positions)); err != nil {
			return nil, err
		}
		if err := m.addFace(f[0], f[1], f[2], pending); err != nil {
			return nil, err
		}
	}

	// Filter half-edges that boundary merging marked unused (Start == nil)
	// out of the boundary list; they remain allocated but unreferenced
	// until Clear, per §4.3.
	live := m.boundary[:0]
	for _, b := range m.boundary {
		if b.Start != nil {
			live = append(live, b)
		}
	}
	m.boundary = live

	return m, nil
}

func validateTriangle(f [3]int, n int) error {
	for _, idx := range f {
		if idx < 0 || idx >= n {
			return ErrTriangleVertexOutOfRange
		}
	}
	if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
		return ErrDegenerateTriangleIndices
	}
	return nil
}

var defaultVertexColor = geom.Vec3{X: 0, Y: 0, Z: 1} // blue, per §3

// addFace allocates one triangle's three interior half-edges and three
// candidate boundary half-edges, wires next/prev/twin/start/face, and
// attempts to merge each candidate boundary half-edge with a previously
// created one that closes the same undirected edge (§4.3 steps 1-6 plus
// boundary merging).
func (m *Mesh) addFace(v1, v2, v3 int, pending map[edgeKey]*HalfEdge) error {
	face := &Face{Valid: true}

	h := [3]*HalfEdge{{Valid: true}, {Valid: true}, {Valid: true}}
	b := [3]*HalfEdge{{Valid: true, Boundary: true}, {Valid: true, Boundary: true}, {Valid: true, Boundary: true}}
	v := [3]*Vertex{m.vertices[v1], m.vertices[v2], m.vertices[v3]}

	// Step 2: wire interior and candidate-boundary next/prev cyclically.
	for i := 0; i < 3; i++ {
		setPrevNext(h[i], h[(i+1)%3])
		setPrevNext(b[i], b[(i+1)%3])
	}

	// Step 3: pair twins. The boundary triangle traverses the opposite
	// orientation, so h0 pairs with b0, h1 with b2, h2 with b1.
	setTwin(h[0], b[0])
	setTwin(h[1], b[2])
	setTwin(h[2], b[1])

	// Step 4: set start vertices. Interior half-edge i starts at v_i;
	// boundary half-edges start at the *other* endpoint of their twin.
	for i := 0; i < 3; i++ {
		h[i].Start = v[i]
	}
	b[0].Start = v[1]
	b[1].Start = v[0]
	b[2].Start = v[2]

	// Step 5: attach face, record one outgoing half-edge per vertex.
	for i := 0; i < 3; i++ {
		setFace(face, h[i])
		v[i].HalfEdge = h[i]
	}

	// Step 6: append to each vertex's transient incidence multiset (kept
	// for parity with §4.3's description; the actual boundary-merge
	// lookup below uses the side map, which is the handle-based
	// replacement §9's Design Notes suggest).
	v[0].adj = append(v[0].adj, h[0], b[1])
	v[1].adj = append(v[1].adj, h[1], b[0])
	v[2].adj = append(v[2].adj, h[2], b[2])

	// Boundary merging: for each candidate boundary half-edge (s, e),
	// look for a previously pending boundary half-edge (e, s) — the same
	// undirected edge approached from the other face.
	for i := 0; i < 3; i++ {
		s, e := b[i].Start.Index, b[i].End().Index
		if twin, ok := pending[edgeKey{start: e, end: s}]; ok {
			spliceBoundary(b[i], twin)
			delete(pending, edgeKey{start: e, end: s})
		} else if _, dup := pending[edgeKey{start: s, end: e}]; dup {
			// A second face repeats the directed edge (s, e) that an
			// earlier face left pending: two faces traverse the shared
			// edge in the same direction, which the two-way splice above
			// cannot pair (§7, "implementations should validate in debug
			// builds"). A third face on an edge that has already been
			// spliced is not detected here, since its pending entry is gone.
			meshlog.Default().Warnf("mesh: non-manifold edge (%d, %d) during construction", s, e)
			return ErrNonManifoldEdge
		} else {
			pending[edgeKey{start: s, end: e}] = b[i]
		}
	}

	m.halfEdges = append(m.halfEdges, h[0], h[1], h[2])
	m.boundary = append(m.boundary, b[0], b[1], b[2])
	m.faces = append(m.faces, face)

	return nil
}

func setPrevNext(e1, e2 *HalfEdge) {
	e1.Next = e2
	e2.Prev = e1
}

func setTwin(e1, e2 *HalfEdge) {
	e1.Twin = e2
	e2.Twin = e1
}

func setFace(f *Face, e *HalfEdge) {
	f.HalfEdge = e
	e.Face = f
}

// spliceBoundary merges candidate boundary half-edge bi with the existing
// boundary half-edge c that closes the same edge from the other face,
// per §4.3: bi and c are spliced out of the boundary next/prev chain and
// their twins are repointed at each other (so the two *interior*
// half-edges become true twins of one another), then both bi and c are
// marked unused.
func spliceBoundary(bi, c *HalfEdge) {
	setPrevNext(bi.Prev, c.Next)
	setPrevNext(c.Prev, bi.Next)
	setTwin(bi.Twin, c.Twin)
	bi.Start = nil // mark as unused
	c.Start = nil  // mark as unused
	bi.Valid = false
	c.Valid = false
}
