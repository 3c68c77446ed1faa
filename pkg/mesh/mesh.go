// Package mesh defines the shared triangle-mesh model used by every
// solver: a vertex array, a face array, and the edge graph derived
// from the faces.
package mesh

import "github.com/nilsaker/geolab/pkg/vec3"

// Face is an ordered triple of indices into a Mesh's Vertices.
type Face [3]int

// Edge is one entry of a vertex's adjacency list: a neighbouring
// vertex index and the Euclidean weight of the edge connecting them.
type Edge struct {
	Neighbor int
	Weight   float64
}

// Mesh is the canonical, immutable-once-loaded vertex/face/adjacency
// model shared by the Dijkstra, analytic and heat solvers.
type Mesh struct {
	Vertices  []vec3.Vec3
	Faces     []Face
	adjacency [][]Edge
	edgeCount int
}

// New builds a Mesh from vertices and faces, deriving the edge graph
// by inserting each face's three undirected edges. Duplicate entries
// for an edge shared by two triangles are permitted; the graph stores
// them as parallel edges with identical weight, matching spec §3.
func New(vertices []vec3.Vec3, faces []Face) *Mesh {
	m := &Mesh{
		Vertices:  vertices,
		Faces:     faces,
		adjacency: make([][]Edge, len(vertices)),
	}
	for _, f := range faces {
		m.addEdge(f[0], f[1])
		m.addEdge(f[1], f[2])
		m.addEdge(f[2], f[0])
	}
	return m
}

func (m *Mesh) addEdge(i, j int) {
	if i < 0 || j < 0 || i >= len(m.Vertices) || j >= len(m.Vertices) {
		return
	}
	w := m.Vertices[i].Distance(m.Vertices[j])
	m.adjacency[i] = append(m.adjacency[i], Edge{Neighbor: j, Weight: w})
	m.adjacency[j] = append(m.adjacency[j], Edge{Neighbor: i, Weight: w})
	m.edgeCount++
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Vertex returns the vertex at index i.
func (m *Mesh) Vertex(i int) vec3.Vec3 {
	return m.Vertices[i]
}

// Neighbors returns the adjacency list for vertex i, including
// parallel entries for edges shared by two triangles.
func (m *Mesh) Neighbors(i int) []Edge {
	if i < 0 || i >= len(m.adjacency) {
		return nil
	}
	return m.adjacency[i]
}

// EdgeCount returns the total number of undirected edge insertions
// (one per face side, duplicates included).
func (m *Mesh) EdgeCount() int {
	return m.edgeCount
}

// BoundingBox computes the axis-aligned bounding box of all vertices.
func (m *Mesh) BoundingBox() BoundingBox {
	bbox := NewBoundingBox()
	for _, v := range m.Vertices {
		bbox.Extend(v)
	}
	return bbox
}

// Empty reports whether the mesh has no vertices.
func (m *Mesh) Empty() bool {
	return len(m.Vertices) == 0
}
