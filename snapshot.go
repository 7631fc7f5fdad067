// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package ddelaunay

import (
	"fmt"
	"slices"
)

// VertexSnapshot is the serializable view of one vertex.
type VertexSnapshot struct {
	ID     VertexID  `json:"id"`
	Coords []float64 `json:"coords"`
}

// CellSnapshot is the serializable view of one cell. Neighbors holds one
// entry per facet; 0 marks a hull facet.
type CellSnapshot struct {
	ID        CellID     `json:"id"`
	Vertices  []VertexID `json:"vertices"`
	Neighbors []CellID   `json:"neighbors"`
}

// Snapshot is a stable, order-independent view of a triangulation:
// vertices in insertion order, cells ascending by identifier, adjacency
// spelled out explicitly so the mesh can be reconstructed without
// recomputation. It marshals to plain JSON. Payload data slots are not
// part of the snapshot; serializing them is the caller's concern.
type Snapshot struct {
	Dim      int              `json:"dim"`
	Eps      float64          `json:"eps"`
	Vertices []VertexSnapshot `json:"vertices"`
	Cells    []CellSnapshot   `json:"cells"`
}

// Snapshot captures the current state of the triangulation.
func (t *Triangulation) Snapshot() *Snapshot {
	s := &Snapshot{
		Dim:      t.dim,
		Eps:      t.eps,
		Vertices: make([]VertexSnapshot, 0, len(t.order)),
		Cells:    make([]CellSnapshot, 0, len(t.cells)),
	}

	for _, id := range t.order {
		s.Vertices = append(s.Vertices, VertexSnapshot{
			ID:     id,
			Coords: t.vertices[id].point.Coords(),
		})
	}

	for _, c := range t.Cells() {
		s.Cells = append(s.Cells, CellSnapshot{
			ID:        c.id,
			Vertices:  slices.Clone(c.vertices),
			Neighbors: slices.Clone(c.neighbors),
		})
	}

	return s
}

// FromSnapshot reconstructs a triangulation from a snapshot, rebuilding
// every derived index. It validates referential integrity but does not
// re-run geometric checks; Validate covers those.
func FromSnapshot(s *Snapshot) (*Triangulation, error) {
	if s.Dim < 1 {
		return nil, fmt.Errorf("FromSnapshot: %w: dimension %d, want at least 1", ErrDimensionMismatch, s.Dim)
	}
	eps := s.Eps
	if eps == 0 {
		eps = defaultEps
	}
	if eps < 0 || eps >= 1 {
		return nil, fmt.Errorf("FromSnapshot: eps %v out of range (0, 1)", eps)
	}

	t := &Triangulation{
		dim:      s.Dim,
		eps:      eps,
		vertices: make(map[VertexID]*Vertex, len(s.Vertices)),
		cells:    make(map[CellID]*Cell, len(s.Cells)),
		byCoords: make(map[string]VertexID, len(s.Vertices)),
		incident: make(map[VertexID]CellID, len(s.Vertices)),
	}

	for _, vs := range s.Vertices {
		if vs.ID <= NoVertex {
			return nil, fmt.Errorf("FromSnapshot: invalid vertex id %d", vs.ID)
		}
		if len(vs.Coords) != s.Dim {
			return nil, fmt.Errorf("FromSnapshot: %w: vertex %d has %d coordinates, want %d", ErrDimensionMismatch, vs.ID, len(vs.Coords), s.Dim)
		}
		if _, ok := t.vertices[vs.ID]; ok {
			return nil, fmt.Errorf("FromSnapshot: duplicate vertex id %d", vs.ID)
		}
		key := pointKey(vs.Coords)
		if _, ok := t.byCoords[key]; ok {
			return nil, fmt.Errorf("FromSnapshot: %w: vertex %d", ErrDuplicatePoint, vs.ID)
		}

		t.vertices[vs.ID] = &Vertex{id: vs.ID, point: NewPoint(vs.Coords...)}
		t.order = append(t.order, vs.ID)
		t.byCoords[key] = vs.ID
		t.nextVertexID = max(t.nextVertexID, vs.ID)
	}

	for _, cs := range s.Cells {
		if cs.ID <= NoCell {
			return nil, fmt.Errorf("FromSnapshot: invalid cell id %d", cs.ID)
		}
		if len(cs.Vertices) != s.Dim+1 || len(cs.Neighbors) != s.Dim+1 {
			return nil, fmt.Errorf("FromSnapshot: cell %d has %d vertices and %d neighbor slots, want %d", cs.ID, len(cs.Vertices), len(cs.Neighbors), s.Dim+1)
		}
		if _, ok := t.cells[cs.ID]; ok {
			return nil, fmt.Errorf("FromSnapshot: duplicate cell id %d", cs.ID)
		}
		for _, v := range cs.Vertices {
			if _, ok := t.vertices[v]; !ok {
				return nil, fmt.Errorf("FromSnapshot: cell %d references unknown vertex %d", cs.ID, v)
			}
		}

		c := &Cell{
			id:        cs.ID,
			vertices:  slices.Clone(cs.Vertices),
			neighbors: slices.Clone(cs.Neighbors),
		}
		t.cells[cs.ID] = c
		t.nextCellID = max(t.nextCellID, cs.ID)
	}

	for id, c := range t.cells {
		for i, n := range c.neighbors {
			if n == NoCell {
				continue
			}
			other, ok := t.cells[n]
			if !ok {
				return nil, fmt.Errorf("FromSnapshot: cell %d references unknown neighbor %d", id, n)
			}
			if !t.mirrorsFacet(c, i, other) {
				return nil, fmt.Errorf("FromSnapshot: adjacency between cells %d and %d is not symmetric", id, n)
			}
		}
		for _, v := range c.vertices {
			t.incident[v] = id
		}
		t.hint = id
	}

	return t, nil
}
