// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package ddelaunay

// CellID identifies a cell within one Triangulation. Identifiers start at
// 1 and are never reused.
type CellID int64

// NoCell marks the absence of a neighbor: a facet with a NoCell neighbor
// lies on the convex hull.
const NoCell CellID = 0

// Cell is a d-dimensional simplex of the triangulation: exactly d+1
// vertices and one neighbor slot per facet. Facet i is the (d-1)-face
// obtained by omitting vertex i, and neighbors[i] is the cell sharing
// that facet.
//
// The vertex tuple is kept in canonical order: ascending by identifier,
// with the last two swapped when needed so the simplex orientation is
// positive. Canonical order makes facet indexing deterministic.
type Cell struct {
	// Data is an opaque payload slot. The triangulation never inspects
	// or modifies it.
	Data any

	id        CellID
	vertices  []VertexID
	neighbors []CellID
}

// ID returns the cell identifier.
func (c *Cell) ID() CellID {
	return c.id
}

// NumVertices returns the number of vertices, always dim+1.
func (c *Cell) NumVertices() int {
	return len(c.vertices)
}

// Vertices returns the vertex identifiers in canonical order.
// The returned slice is a view and must not be modified.
func (c *Cell) Vertices() []VertexID {
	return c.vertices
}

// Vertex returns the i-th vertex identifier in canonical order.
// It panics if i is out of range.
func (c *Cell) Vertex(i int) VertexID {
	if i < 0 || i >= len(c.vertices) {
		panic("Vertex: index out of range")
	}
	return c.vertices[i]
}

// Facet returns the vertex identifiers of facet i, the face spanned by
// every vertex except vertex i.
// It panics if i is out of range.
func (c *Cell) Facet(i int) []VertexID {
	if i < 0 || i >= len(c.vertices) {
		panic("Facet: index out of range")
	}
	f := make([]VertexID, 0, len(c.vertices)-1)
	for j, v := range c.vertices {
		if j != i {
			f = append(f, v)
		}
	}
	return f
}

// Neighbor returns the cell across facet i, or NoCell for a hull facet.
// It panics if i is out of range.
func (c *Cell) Neighbor(i int) CellID {
	if i < 0 || i >= len(c.neighbors) {
		panic("Neighbor: index out of range")
	}
	return c.neighbors[i]
}

// Neighbors returns the neighbor identifiers, one per facet, NoCell for
// hull facets. The returned slice is a view and must not be modified.
func (c *Cell) Neighbors() []CellID {
	return c.neighbors
}

// HasVertex reports whether v is one of the cell's vertices.
func (c *Cell) HasVertex(v VertexID) bool {
	return c.indexOf(v) >= 0
}

func (c *Cell) indexOf(v VertexID) int {
	for i, cv := range c.vertices {
		if cv == v {
			return i
		}
	}
	return -1
}

// setNeighbor assigns the neighbor slot across the facet omitting the
// vertex `omitted`. Only the local slot is updated; the caller is
// responsible for restoring symmetric adjacency on the other side.
func (c *Cell) setNeighbor(omitted VertexID, n CellID) {
	i := c.indexOf(omitted)
	if i < 0 {
		panic("setNeighbor: vertex not in cell")
	}
	c.neighbors[i] = n
}
