// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package ddelaunay

import (
	"fmt"
	"maps"
	"slices"

	"github.com/2dChan/ddelaunay/predicates"
)

// Remove deletes a vertex and re-triangulates its star cavity so that
// the Delaunay property keeps holding: the cavity is filled with the
// Delaunay cells of its own boundary vertices that are in conflict with
// the departing vertex. Removal is supported for interior vertices only;
// hull vertices and cavities that do not admit a conflict-based refill
// return ErrUnsupportedRemoval and leave the triangulation unmodified.
// With dim+1 or fewer vertices the structure degenerates gracefully: the
// vertex and all cells are dropped.
func (t *Triangulation) Remove(id VertexID) error {
	v, ok := t.vertices[id]
	if !ok {
		return fmt.Errorf("Remove: %w: id %d", ErrVertexNotFound, id)
	}

	if len(t.vertices) <= t.dim+1 {
		clear(t.cells)
		clear(t.incident)
		t.hint = NoCell
		t.deleteVertex(v)
		return nil
	}

	star := make(map[CellID]bool)
	for cid, c := range t.cells {
		if c.HasVertex(id) {
			star[cid] = true
		}
	}

	var boundary []cavityFacet
	for _, cid := range slices.Sorted(maps.Keys(star)) {
		cell := t.cells[cid]
		vi := cell.indexOf(id)
		for i, n := range cell.neighbors {
			if i == vi {
				// The one facet omitting the vertex bounds the cavity.
				boundary = append(boundary, cavityFacet{verts: cell.Facet(i), outer: n, owner: cid})
				continue
			}
			if n == NoCell {
				return fmt.Errorf("Remove: %w: vertex %d lies on the hull", ErrUnsupportedRemoval, id)
			}
		}
	}

	staged, err := t.retriangulateStar(id, boundary)
	if err != nil {
		return err
	}

	t.commitCavity(star, boundary, staged)
	t.deleteVertex(v)
	return nil
}

// retriangulateStar builds the replacement cells for the cavity left by
// deleting the vertex: the Delaunay triangulation of the boundary
// vertices, restricted to the cells whose circumsphere contains the
// departing vertex. Those cells tile exactly the star-shaped cavity.
// The result is checked combinatorially before anything is committed:
// every cavity boundary facet must appear on exactly one replacement
// cell and every inner facet on exactly two.
func (t *Triangulation) retriangulateStar(id VertexID, boundary []cavityFacet) ([][]VertexID, error) {
	seen := make(map[VertexID]bool)
	var bverts []VertexID
	for _, f := range boundary {
		for _, w := range f.verts {
			if !seen[w] {
				seen[w] = true
				bverts = append(bverts, w)
			}
		}
	}
	slices.Sort(bverts)

	sub, err := NewTriangulation(t.dim, WithEps(t.eps))
	if err != nil {
		return nil, fmt.Errorf("Remove: %w", err)
	}

	// Insert in ascending identifier order, holding back points the
	// bootstrap rejects until an independent prefix has been found.
	toReal := make(map[VertexID]VertexID, len(bverts))
	pending := bverts
	for len(pending) > 0 {
		var held []VertexID
		for _, w := range pending {
			sid, err := sub.Insert(t.vertices[w].point)
			if err != nil {
				held = append(held, w)
				continue
			}
			toReal[sid] = w
		}
		if len(held) == len(pending) {
			return nil, fmt.Errorf("Remove: %w: cannot triangulate the boundary of vertex %d", ErrUnsupportedRemoval, id)
		}
		pending = held
	}

	q := t.coords(id)
	var staged [][]VertexID
	for _, c := range sub.Cells() {
		if sub.inSphere(c, q) != predicates.Inside {
			continue
		}
		verts := make([]VertexID, len(c.vertices))
		for i, sv := range c.vertices {
			verts[i] = toReal[sv]
		}
		canon, err := t.canonicalVerts(verts, NoVertex, nil)
		if err != nil {
			return nil, fmt.Errorf("Remove: %w", err)
		}
		staged = append(staged, canon)
	}
	if len(staged) == 0 {
		return nil, fmt.Errorf("Remove: %w: no cell of the boundary triangulation conflicts with vertex %d", ErrUnsupportedRemoval, id)
	}

	onBoundary := make(map[string]bool, len(boundary))
	for _, f := range boundary {
		onBoundary[facetKey(f.verts)] = true
	}
	count := make(map[string]int)
	for _, verts := range staged {
		for i := range verts {
			f := make([]VertexID, 0, len(verts)-1)
			for j, w := range verts {
				if j != i {
					f = append(f, w)
				}
			}
			count[facetKey(f)]++
		}
	}
	for key, cnt := range count {
		want := 2
		if onBoundary[key] {
			want = 1
		}
		if cnt != want {
			return nil, fmt.Errorf("Remove: %w: conflict cells do not tile the cavity of vertex %d", ErrUnsupportedRemoval, id)
		}
	}
	for key := range onBoundary {
		if count[key] != 1 {
			return nil, fmt.Errorf("Remove: %w: conflict cells do not tile the cavity of vertex %d", ErrUnsupportedRemoval, id)
		}
	}

	return staged, nil
}

func (t *Triangulation) deleteVertex(v *Vertex) {
	delete(t.vertices, v.id)
	delete(t.byCoords, pointKey(v.point.coords))
	delete(t.incident, v.id)
	t.order = slices.DeleteFunc(t.order, func(id VertexID) bool {
		return id == v.id
	})
}
