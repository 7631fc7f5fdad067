// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package ddelaunay

import "fmt"

const defaultEps = 1e-12

// TriangulationOptions holds the tunable parameters of a Triangulation.
type TriangulationOptions struct {
	// Eps is the relative tolerance band of the geometric predicates.
	// Determinant magnitudes below Eps times the row-norm bound collapse
	// into the Degenerate/OnBoundary outcome.
	Eps float64
}

// TriangulationOption configures a Triangulation at construction time.
type TriangulationOption func(*TriangulationOptions) error

// WithEps overrides the default predicate tolerance (1e-12).
// Eps must be in (0, 1).
func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 || eps >= 1 {
			return fmt.Errorf("WithEps: eps %v out of range (0, 1)", eps)
		}
		o.Eps = eps
		return nil
	}
}
