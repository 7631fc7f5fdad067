// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package ddelaunay

import "errors"

var (
	// ErrDuplicatePoint is returned by Insert when a vertex with exactly
	// the same coordinates already exists.
	ErrDuplicatePoint = errors.New("ddelaunay: duplicate point")

	// ErrDegenerateConfiguration is returned when the input points do not
	// admit a well-defined local retriangulation: affinely dependent
	// bootstrap points, or a cospherical cavity whose boundary is not
	// combinatorially valid. The triangulation is left unmodified.
	ErrDegenerateConfiguration = errors.New("ddelaunay: degenerate configuration")

	// ErrDimensionMismatch is returned when a point's coordinate count
	// does not match the triangulation's dimension.
	ErrDimensionMismatch = errors.New("ddelaunay: dimension mismatch")

	// ErrUnsupportedRemoval is returned by Remove when the vertex lies on
	// the hull or its star cavity is not star-shaped from any boundary
	// vertex. The triangulation is left unmodified.
	ErrUnsupportedRemoval = errors.New("ddelaunay: unsupported removal")

	// ErrEmptyTriangulation is returned by queries that need at least one
	// cell while fewer than dim+1 vertices have been inserted.
	ErrEmptyTriangulation = errors.New("ddelaunay: empty triangulation")

	// ErrVertexNotFound is returned when a vertex identifier does not
	// refer to a live vertex.
	ErrVertexNotFound = errors.New("ddelaunay: vertex not found")
)
