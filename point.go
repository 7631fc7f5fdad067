// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package ddelaunay

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Point is an immutable d-dimensional coordinate tuple.
// The zero value is a 0-dimensional point and is not usable with a
// Triangulation.
type Point struct {
	coords []float64
}

// NewPoint returns a point with the given coordinates. The coordinates
// are copied, so the caller keeps ownership of the slice.
func NewPoint(coords ...float64) Point {
	c := make([]float64, len(coords))
	copy(c, coords)
	return Point{coords: c}
}

// PointFromR2 converts an r2.Point into a 2-dimensional Point.
func PointFromR2(p r2.Point) Point {
	return NewPoint(p.X, p.Y)
}

// PointFromR3 converts an r3.Vector into a 3-dimensional Point.
func PointFromR3(v r3.Vector) Point {
	return NewPoint(v.X, v.Y, v.Z)
}

// Dim returns the number of coordinates.
func (p Point) Dim() int {
	return len(p.coords)
}

// Coord returns the i-th coordinate.
// It panics if i is out of range.
func (p Point) Coord(i int) float64 {
	if i < 0 || i >= len(p.coords) {
		panic("Coord: index out of range")
	}
	return p.coords[i]
}

// Coords returns a copy of the coordinates.
func (p Point) Coords() []float64 {
	c := make([]float64, len(p.coords))
	copy(c, p.coords)
	return c
}

// R2 converts a 2-dimensional point into an r2.Point.
// It returns an error if the point is not 2-dimensional.
func (p Point) R2() (r2.Point, error) {
	if len(p.coords) != 2 {
		return r2.Point{}, fmt.Errorf("R2: %w: point has dimension %d, want 2", ErrDimensionMismatch, len(p.coords))
	}
	return r2.Point{X: p.coords[0], Y: p.coords[1]}, nil
}

// R3 converts a 3-dimensional point into an r3.Vector.
// It returns an error if the point is not 3-dimensional.
func (p Point) R3() (r3.Vector, error) {
	if len(p.coords) != 3 {
		return r3.Vector{}, fmt.Errorf("R3: %w: point has dimension %d, want 3", ErrDimensionMismatch, len(p.coords))
	}
	return r3.Vector{X: p.coords[0], Y: p.coords[1], Z: p.coords[2]}, nil
}

// Sub returns the coordinate-wise difference p - q.
// It panics if the dimensions differ.
func (p Point) Sub(q Point) Point {
	if len(p.coords) != len(q.coords) {
		panic("Sub: dimension mismatch")
	}
	c := make([]float64, len(p.coords))
	for i := range c {
		c[i] = p.coords[i] - q.coords[i]
	}
	return Point{coords: c}
}

// Dot returns the dot product of p and q.
// It panics if the dimensions differ.
func (p Point) Dot(q Point) float64 {
	if len(p.coords) != len(q.coords) {
		panic("Dot: dimension mismatch")
	}
	sum := 0.0
	for i := range p.coords {
		sum += p.coords[i] * q.coords[i]
	}
	return sum
}

// Norm2 returns the squared Euclidean norm of p.
func (p Point) Norm2() float64 {
	return p.Dot(p)
}

// Equal reports whether p and q have identical dimension and coordinates.
// Comparison is exact, with no tolerance.
func (p Point) Equal(q Point) bool {
	if len(p.coords) != len(q.coords) {
		return false
	}
	for i := range p.coords {
		if p.coords[i] != q.coords[i] {
			return false
		}
	}
	return true
}

func (p Point) String() string {
	return fmt.Sprintf("Point%v", p.coords)
}
