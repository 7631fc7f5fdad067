// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package ddelaunay

// VertexID identifies a vertex within one Triangulation. Identifiers are
// assigned at insertion time, start at 1 and are never reused, so a stale
// identifier can never alias a later vertex.
type VertexID int64

// NoVertex is the zero VertexID; it never identifies a live vertex.
const NoVertex VertexID = 0

// Vertex wraps an inserted point with its stable identifier.
type Vertex struct {
	// Data is an opaque payload slot. The triangulation never inspects
	// or modifies it.
	Data any

	id    VertexID
	point Point
}

// ID returns the vertex identifier.
func (v *Vertex) ID() VertexID {
	return v.id
}

// Point returns the vertex coordinates.
func (v *Vertex) Point() Point {
	return v.point
}
