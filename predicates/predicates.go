// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package predicates provides the sign-sensitive geometric tests the
// triangulation depends on: simplex orientation and the in-circumsphere
// test. Both collapse an explicit tolerance band around zero into the
// Degenerate/OnBoundary outcome instead of leaking floating-point noise
// as a hard decision, so callers always branch on the ambiguous case.
package predicates

import (
	"math"

	"github.com/2dChan/ddelaunay/matrix"
)

// Sign is the outcome of an orientation test.
type Sign int

const (
	Negative   Sign = -1
	Degenerate Sign = 0
	Positive   Sign = 1
)

func (s Sign) String() string {
	switch s {
	case Negative:
		return "Negative"
	case Positive:
		return "Positive"
	default:
		return "Degenerate"
	}
}

// Position is the outcome of an in-circumsphere test.
type Position int

const (
	Outside    Position = -1
	OnBoundary Position = 0
	Inside     Position = 1
)

func (p Position) String() string {
	switch p {
	case Outside:
		return "Outside"
	case Inside:
		return "Inside"
	default:
		return "OnBoundary"
	}
}

// Orientation returns the sign of the signed volume spanned by the d+1
// points pts, each of dimension d. Degenerate means the points are
// affinely dependent within the tolerance band.
//
// The determinant is built from the difference matrix (rows pts[i]-pts[0])
// and its magnitude is compared against eps times the Hadamard bound
// (the product of the row norms), so the band scales with the input.
// It panics if the points do not form a (d+1)-tuple of d-dimensional
// coordinates.
func Orientation(pts [][]float64, eps float64) Sign {
	d := len(pts) - 1
	if d < 1 {
		panic("Orientation: need at least 2 points")
	}
	m := make([][]float64, d)
	for i := 1; i <= d; i++ {
		if len(pts[i]) != d || len(pts[0]) != d {
			panic("Orientation: points must be d-dimensional")
		}
		row := make([]float64, d)
		for k := range d {
			row[k] = pts[i][k] - pts[0][k]
		}
		m[i-1] = row
	}

	det := matrix.Det(m)
	return signWithin(det, eps*hadamardBound(m))
}

// InSphere reports where the query point q lies relative to the
// circumscribing hypersphere of the simplex. The simplex must be
// non-degenerate (see Orientation); its vertex order does not matter
// because the lifted determinant is normalized by the simplex's own
// orientation.
//
// The test lifts every point onto the paraboloid (x, |x|^2) after
// translating by q, which reduces the classic (d+2)x(d+2) determinant to
// a (d+1)x(d+1) one with rows [v_i - q, |v_i - q|^2]. For a positively
// oriented simplex the query is inside exactly when (-1)^d * det > 0.
// It panics on shape mismatch.
func InSphere(simplex [][]float64, q []float64, eps float64) Position {
	d := len(q)
	if len(simplex) != d+1 {
		panic("InSphere: simplex must have d+1 vertices")
	}

	orient := Orientation(simplex, eps)
	if orient == Degenerate {
		return OnBoundary
	}

	m := make([][]float64, d+1)
	for i, v := range simplex {
		if len(v) != d {
			panic("InSphere: points must be d-dimensional")
		}
		row := make([]float64, d+1)
		norm2 := 0.0
		for k := range d {
			diff := v[k] - q[k]
			row[k] = diff
			norm2 += diff * diff
		}
		row[d] = norm2
		m[i] = row
	}

	lifted := signWithin(matrix.Det(m), eps*hadamardBound(m))
	if lifted == Degenerate {
		return OnBoundary
	}

	s := int(lifted) * int(orient)
	if d%2 == 1 {
		s = -s
	}
	if s > 0 {
		return Inside
	}
	return Outside
}

func signWithin(det, band float64) Sign {
	if math.Abs(det) <= band {
		return Degenerate
	}
	if det > 0 {
		return Positive
	}
	return Negative
}

// hadamardBound returns the product of the Euclidean row norms, an upper
// bound on the determinant magnitude of m.
func hadamardBound(m [][]float64) float64 {
	bound := 1.0
	for _, row := range m {
		norm2 := 0.0
		for _, v := range row {
			norm2 += v * v
		}
		bound *= math.Sqrt(norm2)
	}
	return bound
}
