// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package ddelaunay maintains Delaunay triangulations of finite point
// sets in arbitrary dimension d. The convex hull of the inserted points
// is partitioned into (d+1)-vertex simplices (cells) such that no vertex
// lies strictly inside the circumscribing hypersphere of any cell.
//
// Points are inserted one at a time (Bowyer-Watson): the cells whose
// circumsphere contains the new point are removed and the resulting
// cavity is re-triangulated around the new vertex. All destructive
// mutation is staged, so a failed insertion leaves the triangulation
// exactly as it was.
//
// A Triangulation is not safe for concurrent mutation. Read-only queries
// may run concurrently with each other, but never with Insert or Remove.
package ddelaunay

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"math"
	"slices"

	"github.com/2dChan/ddelaunay/matrix"
	"github.com/2dChan/ddelaunay/predicates"
)

// Triangulation owns the vertex and cell arenas of one d-dimensional
// Delaunay triangulation. Vertices and cells are addressed by stable
// identifiers; neighbor and incidence relations are stored as identifiers
// looked up through the arenas.
type Triangulation struct {
	dim int
	eps float64

	vertices map[VertexID]*Vertex
	cells    map[CellID]*Cell

	// order holds the vertex identifiers in insertion order.
	order []VertexID
	// byCoords indexes vertices by exact coordinates for duplicate
	// detection.
	byCoords map[string]VertexID
	// incident maps every vertex to one of its incident cells.
	incident map[VertexID]CellID

	nextVertexID VertexID
	nextCellID   CellID

	// hint is the starting cell of the next locate walk.
	hint CellID
}

// NewTriangulation returns an empty triangulation of the given dimension.
// The dimension must be at least 1.
func NewTriangulation(dim int, setters ...TriangulationOption) (*Triangulation, error) {
	if dim < 1 {
		return nil, fmt.Errorf("NewTriangulation: %w: dimension %d, want at least 1", ErrDimensionMismatch, dim)
	}

	opts := TriangulationOptions{Eps: defaultEps}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	return &Triangulation{
		dim:      dim,
		eps:      opts.Eps,
		vertices: make(map[VertexID]*Vertex),
		cells:    make(map[CellID]*Cell),
		byCoords: make(map[string]VertexID),
		incident: make(map[VertexID]CellID),
	}, nil
}

// Dim returns the triangulation's dimension.
func (t *Triangulation) Dim() int {
	return t.dim
}

// Eps returns the predicate tolerance.
func (t *Triangulation) Eps() float64 {
	return t.eps
}

// NumVertices returns the number of live vertices.
func (t *Triangulation) NumVertices() int {
	return len(t.vertices)
}

// NumCells returns the number of live cells.
func (t *Triangulation) NumCells() int {
	return len(t.cells)
}

// Vertex returns the vertex with the given identifier.
func (t *Triangulation) Vertex(id VertexID) (*Vertex, bool) {
	v, ok := t.vertices[id]
	return v, ok
}

// Cell returns the cell with the given identifier.
func (t *Triangulation) Cell(id CellID) (*Cell, bool) {
	c, ok := t.cells[id]
	return c, ok
}

// Vertices returns the live vertices in insertion order.
func (t *Triangulation) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.vertices[id])
	}
	return out
}

// Cells returns the live cells. The order is ascending by identifier,
// but callers must not rely on it.
func (t *Triangulation) Cells() []*Cell {
	out := make([]*Cell, 0, len(t.cells))
	for _, c := range t.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *Cell) int {
		return cmp.Compare(a.id, b.id)
	})
	return out
}

// Locate returns the identifier of a cell containing the point, walking
// the adjacency graph from the last touched cell. Points on a shared
// facet locate into one of the incident cells. It returns NoCell when
// the point lies outside the convex hull, and ErrEmptyTriangulation when
// no cell exists yet.
func (t *Triangulation) Locate(p Point) (CellID, error) {
	if p.Dim() != t.dim {
		return NoCell, fmt.Errorf("Locate: %w: point has dimension %d, want %d", ErrDimensionMismatch, p.Dim(), t.dim)
	}
	if len(t.cells) == 0 {
		return NoCell, fmt.Errorf("Locate: %w", ErrEmptyTriangulation)
	}

	c, inside := t.locateWalk(p)
	if !inside {
		return NoCell, nil
	}
	return c, nil
}

// Circumcenter returns the circumcenter and squared circumradius of the
// cell with the given identifier.
func (t *Triangulation) Circumcenter(id CellID) (Point, float64, error) {
	c, ok := t.cells[id]
	if !ok {
		return Point{}, 0, fmt.Errorf("Circumcenter: no cell with id %d", id)
	}

	// The center x is equidistant from all vertices:
	// 2*(v_i - v_0)*x = |v_i|^2 - |v_0|^2 for i = 1..d.
	v0 := t.coords(c.vertices[0])
	a := make([][]float64, t.dim)
	b := make([]float64, t.dim)
	for i := 1; i <= t.dim; i++ {
		vi := t.coords(c.vertices[i])
		row := make([]float64, t.dim)
		rhs := 0.0
		for k := range t.dim {
			row[k] = 2 * (vi[k] - v0[k])
			rhs += vi[k]*vi[k] - v0[k]*v0[k]
		}
		a[i-1] = row
		b[i-1] = rhs
	}

	center, err := matrix.Solve(a, b)
	if err != nil {
		return Point{}, 0, fmt.Errorf("Circumcenter: %w", ErrDegenerateConfiguration)
	}

	r2 := 0.0
	for k := range t.dim {
		diff := center[k] - v0[k]
		r2 += diff * diff
	}
	return Point{coords: center}, r2, nil
}

// locateWalk walks the adjacency graph toward p. It returns a containing
// cell and true, or the last visited cell and false when p lies outside
// the hull. The walk is capped and falls back to an exhaustive scan to
// stay safe on degenerate inputs.
func (t *Triangulation) locateWalk(p Point) (CellID, bool) {
	c := t.hint
	if _, ok := t.cells[c]; !ok {
		for id := range t.cells {
			c = id
			break
		}
	}

	maxSteps := 8*len(t.cells) + 32
	for range maxSteps {
		cell := t.cells[c]
		next := NoCell
		hullExit := false
		for i := range cell.vertices {
			if t.facetOrientation(cell, i, p.coords) != predicates.Negative {
				continue
			}
			if n := cell.neighbors[i]; n != NoCell {
				next = n
				break
			}
			hullExit = true
		}
		if next != NoCell {
			c = next
			continue
		}
		if hullExit {
			return c, false
		}
		return c, true
	}

	for id, cell := range t.cells {
		if t.containsPoint(cell, p.coords) {
			return id, true
		}
	}
	return c, false
}

// containsPoint reports whether p lies in the closed simplex of the cell.
// Points on a facet count as contained.
func (t *Triangulation) containsPoint(c *Cell, p []float64) bool {
	for i := range c.vertices {
		if t.facetOrientation(c, i, p) == predicates.Negative {
			return false
		}
	}
	return true
}

// facetOrientation reports which side of facet i of the cell the point
// lies on: Positive for the cell's side, Negative for the far side,
// Degenerate for the facet's hyperplane. Cells are stored positively
// oriented, so this is the orientation of the cell's vertex tuple with
// vertex i replaced by p.
func (t *Triangulation) facetOrientation(c *Cell, i int, p []float64) predicates.Sign {
	pts := make([][]float64, len(c.vertices))
	for j, v := range c.vertices {
		if j == i {
			pts[j] = p
		} else {
			pts[j] = t.coords(v)
		}
	}
	return predicates.Orientation(pts, t.eps)
}

// inSphere reports where p lies relative to the cell's circumsphere.
func (t *Triangulation) inSphere(c *Cell, p []float64) predicates.Position {
	simplex := make([][]float64, len(c.vertices))
	for i, v := range c.vertices {
		simplex[i] = t.coords(v)
	}
	return predicates.InSphere(simplex, p, t.eps)
}

// coords returns the raw coordinate slice of a live vertex.
func (t *Triangulation) coords(id VertexID) []float64 {
	return t.vertices[id].point.coords
}

// canonicalVerts sorts the vertex tuple ascending by identifier and swaps
// the last two entries if needed so that the simplex orientation comes
// out positive. The apex identifier may refer to a vertex that is not
// registered yet; its coordinates are supplied separately. It returns
// an error wrapping ErrDegenerateConfiguration if the points are
// affinely dependent.
func (t *Triangulation) canonicalVerts(verts []VertexID, apex VertexID, apexCoords []float64) ([]VertexID, error) {
	canon := slices.Clone(verts)
	slices.Sort(canon)

	pts := make([][]float64, len(canon))
	lookup := func(id VertexID) []float64 {
		if id == apex {
			return apexCoords
		}
		return t.coords(id)
	}
	for i, id := range canon {
		pts[i] = lookup(id)
	}

	switch predicates.Orientation(pts, t.eps) {
	case predicates.Positive:
		return canon, nil
	case predicates.Negative:
		n := len(canon)
		canon[n-1], canon[n-2] = canon[n-2], canon[n-1]
		return canon, nil
	default:
		return nil, fmt.Errorf("%w: affinely dependent cell vertices", ErrDegenerateConfiguration)
	}
}

// pointKey encodes coordinates into a map key for exact duplicate
// detection. Negative zero is folded into zero to match float equality.
func pointKey(coords []float64) string {
	buf := make([]byte, 0, len(coords)*8)
	for _, c := range coords {
		if c == 0 {
			c = 0
		}
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(c))
	}
	return string(buf)
}

// facetKey encodes an unordered vertex set into a map key.
func facetKey(verts []VertexID) string {
	s := slices.Clone(verts)
	slices.Sort(s)
	buf := make([]byte, 0, len(s)*8)
	for _, id := range s {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(id))
	}
	return string(buf)
}
