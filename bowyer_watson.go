// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package ddelaunay

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/2dChan/ddelaunay/predicates"
)

// cavityFacet is one facet of a retriangulation cavity's boundary.
type cavityFacet struct {
	verts []VertexID // the facet's d vertices
	outer CellID     // surviving cell on the far side, NoCell at the hull
	owner CellID     // cavity cell the facet was taken from
}

// Insert adds the point as a new vertex and restores the Delaunay
// property around it. It returns ErrDimensionMismatch for a point of the
// wrong dimension, ErrDuplicatePoint for exact coordinate duplicates and
// ErrDegenerateConfiguration when no well-defined retriangulation exists
// (affinely dependent bootstrap points, cospherical cavities without a
// valid boundary). On any error the triangulation is left unmodified.
//
// The first dim points are buffered as bare vertices; inserting the
// (dim+1)-th point builds the initial simplex. If the bootstrap points
// are affinely dependent the offending point is rejected, but a later
// independent point may still complete the simplex.
func (t *Triangulation) Insert(p Point) (VertexID, error) {
	if p.Dim() != t.dim {
		return NoVertex, fmt.Errorf("Insert: %w: point has dimension %d, want %d", ErrDimensionMismatch, p.Dim(), t.dim)
	}
	for _, c := range p.coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return NoVertex, fmt.Errorf("Insert: %w: non-finite coordinate", ErrDegenerateConfiguration)
		}
	}
	key := pointKey(p.coords)
	if _, ok := t.byCoords[key]; ok {
		return NoVertex, fmt.Errorf("Insert: %w", ErrDuplicatePoint)
	}

	if len(t.cells) == 0 {
		if len(t.vertices) < t.dim {
			return t.addVertex(p, key), nil
		}
		return t.bootstrap(p, key)
	}
	return t.insertPoint(p, key)
}

// addVertex registers a new vertex and returns its identifier.
func (t *Triangulation) addVertex(p Point, key string) VertexID {
	t.nextVertexID++
	id := t.nextVertexID
	t.vertices[id] = &Vertex{id: id, point: p}
	t.order = append(t.order, id)
	t.byCoords[key] = id
	return id
}

// bootstrap builds the initial simplex from the dim buffered vertices
// plus the new point.
func (t *Triangulation) bootstrap(p Point, key string) (VertexID, error) {
	apex := t.nextVertexID + 1
	verts := append(slices.Clone(t.order), apex)
	canon, err := t.canonicalVerts(verts, apex, p.coords)
	if err != nil {
		return NoVertex, fmt.Errorf("Insert: %w", err)
	}

	id := t.addVertex(p, key)
	t.nextCellID++
	c := &Cell{id: t.nextCellID, vertices: canon, neighbors: make([]CellID, len(canon))}
	t.cells[c.id] = c
	for _, v := range canon {
		t.incident[v] = c.id
	}
	t.hint = c.id
	return id, nil
}

// insertPoint runs one Bowyer-Watson step: find the cavity of cells in
// conflict with p, stage its retriangulation, then commit. Staging
// happens entirely before the first destructive mutation.
func (t *Triangulation) insertPoint(p Point, key string) (VertexID, error) {
	bad, boundary, closed, err := t.insertCavity(p)
	if err != nil {
		return NoVertex, err
	}

	apex := t.nextVertexID + 1
	staged, err := t.stageCavity(apex, p.coords, bad, boundary, closed)
	if err != nil {
		return NoVertex, fmt.Errorf("Insert: %w", err)
	}

	id := t.addVertex(p, key)
	t.commitCavity(bad, boundary, staged)
	return id, nil
}

// insertCavity collects the cells whose circumsphere strictly contains p
// and the boundary facets of the region they cover together with the
// part of the exterior visible from p. The reported closed flag is true
// when p lies inside the hull, in which case the boundary must form a
// closed shell.
func (t *Triangulation) insertCavity(p Point) (map[CellID]bool, []cavityFacet, bool, error) {
	loc, inside := t.locateWalk(p)

	var visible []cavityFacet
	var seeds []CellID
	if inside {
		seeds = []CellID{loc}
	} else {
		for _, id := range slices.Sorted(maps.Keys(t.cells)) {
			cell := t.cells[id]
			for i, n := range cell.neighbors {
				if n != NoCell {
					continue
				}
				if t.facetOrientation(cell, i, p.coords) == predicates.Negative {
					visible = append(visible, cavityFacet{verts: cell.Facet(i), outer: id, owner: id})
					seeds = append(seeds, id)
				}
			}
		}
		if len(visible) == 0 {
			return nil, nil, false, fmt.Errorf("Insert: %w: exterior point sees no hull facet", ErrDegenerateConfiguration)
		}
	}

	// NOTE: OnBoundary (cospherical) never counts as bad. The cavity
	// stays minimal and expansion terminates.
	bad := make(map[CellID]bool)
	visited := make(map[CellID]bool)
	stack := slices.Clone(seeds)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		cell := t.cells[id]
		if t.inSphere(cell, p.coords) != predicates.Inside {
			continue
		}
		bad[id] = true
		for _, n := range cell.neighbors {
			if n != NoCell && !visited[n] {
				stack = append(stack, n)
			}
		}
	}

	if inside && len(bad) == 0 {
		return nil, nil, false, fmt.Errorf("Insert: %w: point within the tolerance band of the triangulation", ErrDegenerateConfiguration)
	}

	var boundary []cavityFacet
	for _, id := range slices.Sorted(maps.Keys(bad)) {
		cell := t.cells[id]
		for i, n := range cell.neighbors {
			if n != NoCell && bad[n] {
				continue
			}
			side := t.facetOrientation(cell, i, p.coords)
			if n == NoCell {
				switch side {
				case predicates.Negative:
					// Visible hull facet of a bad cell dissolves into
					// the cavity.
					continue
				case predicates.Degenerate:
					return nil, nil, false, fmt.Errorf("Insert: %w: point on the hyperplane of a hull facet", ErrDegenerateConfiguration)
				}
				boundary = append(boundary, cavityFacet{verts: cell.Facet(i), outer: NoCell, owner: id})
				continue
			}
			if side != predicates.Positive {
				return nil, nil, false, fmt.Errorf("Insert: %w: cavity is not star-shaped around the point", ErrDegenerateConfiguration)
			}
			boundary = append(boundary, cavityFacet{verts: cell.Facet(i), outer: n, owner: id})
		}
	}
	for _, hf := range visible {
		if bad[hf.owner] {
			continue
		}
		boundary = append(boundary, hf)
	}

	return bad, boundary, inside, nil
}

// stageCavity validates the cavity boundary combinatorially and builds
// the vertex tuples of the replacement cells without touching the
// triangulation. Every ridge of the boundary may be shared by at most
// two facets (exactly two when the boundary must be closed), no vertex
// of a cavity cell may vanish, and every replacement cell must be
// non-degenerate.
func (t *Triangulation) stageCavity(apex VertexID, apexCoords []float64, bad map[CellID]bool, boundary []cavityFacet, closed bool) ([][]VertexID, error) {
	ridgeCount := make(map[string]int)
	inBoundary := make(map[VertexID]bool)
	for _, f := range boundary {
		for _, v := range f.verts {
			inBoundary[v] = true
		}
		for i := range f.verts {
			ridge := make([]VertexID, 0, len(f.verts)-1)
			for j, v := range f.verts {
				if j != i {
					ridge = append(ridge, v)
				}
			}
			ridgeCount[facetKey(ridge)]++
		}
	}
	for _, cnt := range ridgeCount {
		if cnt > 2 || (closed && cnt != 2) {
			return nil, fmt.Errorf("%w: cavity boundary is not combinatorially valid", ErrDegenerateConfiguration)
		}
	}

	for id := range bad {
		for _, v := range t.cells[id].vertices {
			if !inBoundary[v] {
				return nil, fmt.Errorf("%w: cavity would swallow vertex %d", ErrDegenerateConfiguration, v)
			}
		}
	}

	staged := make([][]VertexID, 0, len(boundary))
	for _, f := range boundary {
		verts := append(slices.Clone(f.verts), apex)
		canon, err := t.canonicalVerts(verts, apex, apexCoords)
		if err != nil {
			return nil, err
		}
		staged = append(staged, canon)
	}
	if len(staged) == 0 {
		return nil, fmt.Errorf("%w: empty cavity", ErrDegenerateConfiguration)
	}
	return staged, nil
}

// commitCavity applies a staged retriangulation: the cavity cells are
// destroyed, the replacement cells created, and all neighbor links and
// incidence entries patched. It must not fail; every validation has
// already happened during staging.
func (t *Triangulation) commitCavity(bad map[CellID]bool, boundary []cavityFacet, staged [][]VertexID) {
	outerByKey := make(map[string]CellID, len(boundary))
	for _, f := range boundary {
		outerByKey[facetKey(f.verts)] = f.outer
	}

	for id := range bad {
		delete(t.cells, id)
	}

	newCells := make([]*Cell, len(staged))
	for i, verts := range staged {
		t.nextCellID++
		c := &Cell{id: t.nextCellID, vertices: verts, neighbors: make([]CellID, len(verts))}
		newCells[i] = c
		t.cells[c.id] = c
	}

	type facetSide struct {
		cell    *Cell
		omitted VertexID
		verts   []VertexID
	}
	sides := make(map[string][]facetSide)
	for _, c := range newCells {
		for i := range c.vertices {
			f := c.Facet(i)
			key := facetKey(f)
			sides[key] = append(sides[key], facetSide{cell: c, omitted: c.vertices[i], verts: f})
		}
	}

	for key, fs := range sides {
		switch len(fs) {
		case 2:
			fs[0].cell.setNeighbor(fs[0].omitted, fs[1].cell.id)
			fs[1].cell.setNeighbor(fs[1].omitted, fs[0].cell.id)
		case 1:
			outer, ok := outerByKey[key]
			if !ok || outer == NoCell {
				continue // hull facet of the new triangulation
			}
			fs[0].cell.setNeighbor(fs[0].omitted, outer)

			oc := t.cells[outer]
			inFacet := make(map[VertexID]bool, len(fs[0].verts))
			for _, v := range fs[0].verts {
				inFacet[v] = true
			}
			for _, v := range oc.vertices {
				if !inFacet[v] {
					oc.setNeighbor(v, fs[0].cell.id)
					break
				}
			}
		default:
			panic("commitCavity: facet shared by more than two new cells")
		}
	}

	for _, c := range newCells {
		for _, v := range c.vertices {
			t.incident[v] = c.id
		}
	}
	t.hint = newCells[0].id
}
