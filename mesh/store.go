package mesh

import "github.com/hanfengsunshine/halfedge/geom"

// Mesh owns the three entity catalogs (vertices, half-edges, faces) that
// together form the half-edge graph, plus the three dirty flags an
// external renderer polls once per frame (§4.2, §6).
//
// Mesh is single-threaded: §5 rules out concurrent access during
// smoothing, so unlike the teacher's core.Graph this type carries no
// mutex (see DESIGN.md, Open Question 3).
type Mesh struct {
	vertices  []*Vertex
	halfEdges []*HalfEdge // interior half-edges only
	boundary  []*HalfEdge // boundary half-edges only
	faces     []*Face

	positionsDirty bool
	normalsDirty   bool
	colorsDirty    bool
}

// New returns an empty Mesh. Use NewFromArrays to build one from loader
// output.
func New() *Mesh {
	return &Mesh{}
}

// Vertices returns the mesh's vertices in index order. The returned slice
// is owned by Mesh; callers must not mutate its length.
func (m *Mesh) Vertices() []*Vertex { return m.vertices }

// HalfEdges returns the interior half-edges (one per triangle side).
func (m *Mesh) HalfEdges() []*HalfEdge { return m.halfEdges }

// BoundaryHalfEdges returns the boundary half-edges (outer sides of holes).
func (m *Mesh) BoundaryHalfEdges() []*HalfEdge { return m.boundary }

// Faces returns the mesh's triangles.
func (m *Mesh) Faces() []*Face { return m.faces }

// IsPositionsDirty reports whether vertex positions changed since the last
// clear of the flag.
func (m *Mesh) IsPositionsDirty() bool { return m.positionsDirty }

// SetPositionsDirty sets or clears the positions dirty flag.
func (m *Mesh) SetPositionsDirty(b bool) { m.positionsDirty = b }

// IsNormalsDirty reports whether vertex normals changed since the last
// clear of the flag.
func (m *Mesh) IsNormalsDirty() bool { return m.normalsDirty }

// SetNormalsDirty sets or clears the normals dirty flag.
func (m *Mesh) SetNormalsDirty(b bool) { m.normalsDirty = b }

// IsColorsDirty reports whether vertex colors changed since the last clear
// of the flag.
func (m *Mesh) IsColorsDirty() bool { return m.colorsDirty }

// SetColorsDirty sets or clears the colors dirty flag.
func (m *Mesh) SetColorsDirty(b bool) { m.colorsDirty = b }

// Clear releases all entities, returning the Mesh to its zero state.
// Outstanding traversal iterators become invalid (§9, "Iterator
// invalidation").
func (m *Mesh) Clear() {
	m.vertices = nil
	m.halfEdges = nil
	m.boundary = nil
	m.faces = nil
	m.positionsDirty = false
	m.normalsDirty = false
	m.colorsDirty = false
}

// RenderBuffers returns the outbound vertex/index buffers an external
// renderer expects (§6): one (position, normal, color) triple per vertex
// in index order, and a flat triangle-corner index buffer of length 3·F.
func (m *Mesh) RenderBuffers() (positions, normals, colors []geom.Vec3, indices []int) {
	positions = make([]geom.Vec3, len(m.vertices))
	normals = make([]geom.Vec3, len(m.vertices))
	colors = make([]geom.Vec3, len(m.vertices))
	for i, v := range m.vertices {
		positions[i] = v.Position
		normals[i] = v.Normal
		colors[i] = v.Color
	}

	indices = make([]int, 0, 3*len(m.faces))
	for _, f := range m.faces {
		h := f.HalfEdge
		for i := 0; i < 3; i++ {
			indices = append(indices, h.Start.Index)
			h = h.Next
		}
	}
	return positions, normals, colors, indices
}
