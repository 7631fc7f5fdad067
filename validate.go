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

// Validate scans the whole triangulation and returns one error per
// violated invariant: cell orientation validity, the Delaunay property
// against every vertex, symmetric neighbor adjacency and consistency of
// the incidence index. It returns nil when the triangulation is clean.
//
// Validate is intended for test harnesses and debugging; it is not run
// on the insertion path.
func (t *Triangulation) Validate() []error {
	var errs []error

	for _, cid := range slices.Sorted(maps.Keys(t.cells)) {
		cell := t.cells[cid]

		if len(cell.vertices) != t.dim+1 {
			errs = append(errs, fmt.Errorf("cell %d: has %d vertices, want %d", cid, len(cell.vertices), t.dim+1))
			continue
		}

		valid := true
		for _, v := range cell.vertices {
			if _, ok := t.vertices[v]; !ok {
				errs = append(errs, fmt.Errorf("cell %d: references dead vertex %d", cid, v))
				valid = false
			}
		}
		if !valid {
			continue
		}

		simplex := make([][]float64, len(cell.vertices))
		for i, v := range cell.vertices {
			simplex[i] = t.coords(v)
		}
		if predicates.Orientation(simplex, t.eps) != predicates.Positive {
			errs = append(errs, fmt.Errorf("cell %d: vertices are not positively oriented", cid))
			continue
		}

		for _, vid := range t.order {
			if cell.HasVertex(vid) {
				continue
			}
			if predicates.InSphere(simplex, t.coords(vid), t.eps) == predicates.Inside {
				errs = append(errs, fmt.Errorf("cell %d: vertex %d lies inside its circumsphere", cid, vid))
			}
		}

		for i, n := range cell.neighbors {
			if n == NoCell {
				continue
			}
			other, ok := t.cells[n]
			if !ok {
				errs = append(errs, fmt.Errorf("cell %d: facet %d references dead neighbor %d", cid, i, n))
				continue
			}
			if !t.mirrorsFacet(cell, i, other) {
				errs = append(errs, fmt.Errorf("cell %d: facet %d adjacency with cell %d is not symmetric", cid, i, n))
			}
		}
	}

	for _, vid := range t.order {
		cid, ok := t.incident[vid]
		if len(t.cells) == 0 {
			if ok {
				errs = append(errs, fmt.Errorf("vertex %d: incident cell recorded in an empty triangulation", vid))
			}
			continue
		}
		if !ok {
			errs = append(errs, fmt.Errorf("vertex %d: no incident cell recorded", vid))
			continue
		}
		cell, live := t.cells[cid]
		if !live {
			errs = append(errs, fmt.Errorf("vertex %d: incident cell %d is dead", vid, cid))
			continue
		}
		if !cell.HasVertex(vid) {
			errs = append(errs, fmt.Errorf("vertex %d: incident cell %d does not contain it", vid, cid))
		}
	}

	return errs
}

// mirrorsFacet reports whether other shares facet i of cell and lists
// cell as its neighbor across that same facet.
func (t *Triangulation) mirrorsFacet(cell *Cell, i int, other *Cell) bool {
	inFacet := make(map[VertexID]bool, len(cell.vertices)-1)
	for _, v := range cell.Facet(i) {
		inFacet[v] = true
	}

	omitted := NoVertex
	for _, v := range other.vertices {
		if !inFacet[v] {
			if omitted != NoVertex {
				return false // shares fewer than d vertices
			}
			omitted = v
		}
	}
	if omitted == NoVertex {
		return false
	}
	return other.neighbors[other.indexOf(omitted)] == cell.id
}
