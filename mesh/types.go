// Package mesh implements the half-edge connectivity structure for
// triangle meshes: the Vertex/HalfEdge/Face entities, the Constructor that
// builds a half-edge graph from a position table and a triangle-index
// table, the one-ring traversal primitives, topology statistics, and
// per-vertex normal computation.
//
// A Mesh owns its entities outright: no operator in this package or in
// package smooth allocates or deletes vertices, half-edges, or faces after
// construction — smoothing mutates Vertex.Position in place only.
package mesh

import (
	"errors"

	"github.com/hanfengsunshine/halfedge/geom"
)

// Sentinel errors for mesh construction and queries.
var (
	// ErrEmptyPositions indicates the position table has no rows.
	ErrEmptyPositions = errors.New("mesh: position table is empty")

	// ErrTriangleVertexOutOfRange indicates a face references a vertex
	// index outside [0, len(positions)).
	ErrTriangleVertexOutOfRange = errors.New("mesh: triangle vertex index out of range")

	// ErrDegenerateTriangleIndices indicates a face repeats a vertex index.
	ErrDegenerateTriangleIndices = errors.New("mesh: triangle repeats a vertex index")

	// ErrNonManifoldEdge indicates that a face repeats a directed edge
	// (start, end) that an earlier face left pending in the boundary merge,
	// i.e. two faces traverse one shared edge in the same direction.
	ErrNonManifoldEdge = errors.New("mesh: non-manifold edge encountered during construction")
)

// nilIndex marks an absent slice index. It is declared for that purpose
// but nothing in this package currently references it; the cross-links
// below are plain pointers, as in the original half-edge graph.
const nilIndex = -1

// Vertex is one corner of the mesh.
type Vertex struct {
	Position geom.Vec3
	Normal   geom.Vec3
	Color    geom.Vec3

	// Index is dense in [0, V) and stable once Construction completes.
	Index int

	// Flag is scratch space owned by whichever traversal or statistics
	// operator is currently running; it must be reset on entry by that
	// operator (§5 — callers may not assume it starts at zero).
	Flag int

	// Valid is false only for entities retained-but-unused after boundary
	// merging marks them dead; live vertices are always Valid.
	Valid bool

	// HalfEdge is one outgoing half-edge from this vertex. It is a lookup
	// aid only: it may be overwritten whenever a new incident face is
	// added, and no caller should assume it stays stable across
	// construction (§9, "back-pointer from vertex to half-edge").
	HalfEdge *HalfEdge

	// adj collects every half-edge (interior or boundary) ever created
	// with this vertex as Start. The constructor appends to it but nothing
	// reads it; the boundary merge uses its own (start, end) side map.
	adj []*HalfEdge
}

// HalfEdge is one directed side of one triangle (or, if Boundary is set,
// the outer side of a mesh hole).
type HalfEdge struct {
	Start *Vertex
	Next  *HalfEdge
	Prev  *HalfEdge
	Twin  *HalfEdge
	Face  *Face // nil for boundary half-edges

	// Boundary is fixed at creation and never changes.
	Boundary bool

	// Flag is scratch space for visitation, reset on entry by whichever
	// traversal currently owns it (§5).
	Flag bool

	// Valid is false for half-edges that boundary merging marked unused
	// (start set to nil, then filtered from the boundary list); they
	// remain allocated until Mesh.Clear.
	Valid bool
}

// End returns the vertex this half-edge points to: the start of the half-edge
// that follows it around the same face. By the invariant h.Next.Start ==
// h.Twin.Start (§3), this equals h.Twin.Start too; Next is used here to
// match the half-edge graph this package was grounded on.
func (h *HalfEdge) End() *Vertex {
	return h.Next.Start
}

// Face is a triangle. The other two half-edges are reached by following
// HalfEdge.Next from HalfEdge.
type Face struct {
	HalfEdge *HalfEdge
	Valid    bool
}
