// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package predicates

import "testing"

const eps = 1e-12

func TestSignString(t *testing.T) {
	tests := []struct {
		in   Sign
		want string
	}{
		{Negative, "Negative"},
		{Degenerate, "Degenerate"},
		{Positive, "Positive"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Sign(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPositionString(t *testing.T) {
	tests := []struct {
		in   Position
		want string
	}{
		{Outside, "Outside"},
		{OnBoundary, "OnBoundary"},
		{Inside, "Inside"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Position(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOrientation(t *testing.T) {
	tests := []struct {
		name string
		pts  [][]float64
		want Sign
	}{
		{"1d ascending", [][]float64{{0}, {1}}, Positive},
		{"1d descending", [][]float64{{1}, {0}}, Negative},
		{"1d coincident", [][]float64{{2}, {2}}, Degenerate},
		{"2d ccw", [][]float64{{0, 0}, {1, 0}, {0, 1}}, Positive},
		{"2d cw", [][]float64{{0, 0}, {0, 1}, {1, 0}}, Negative},
		{"2d collinear", [][]float64{{0, 0}, {1, 1}, {2, 2}}, Degenerate},
		{"2d nearly collinear", [][]float64{{0, 0}, {1, 1}, {2, 2 + 1e-15}}, Degenerate},
		{"3d positive tetra", [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, Positive},
		{"3d negative tetra", [][]float64{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}, {0, 0, 1}}, Negative},
		{"3d coplanar", [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}, Degenerate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Orientation(tt.pts, eps); got != tt.want {
				t.Errorf("Orientation(%v) = %v, want %v", tt.pts, got, tt.want)
			}
		})
	}
}

func TestOrientation_Panics(t *testing.T) {
	assertPanic := func(name string, pts [][]float64) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Orientation(%s) did not panic, want panic", name)
			}
		}()
		Orientation(pts, eps)
	}

	assertPanic("single point", [][]float64{{0}})
	assertPanic("dimension mismatch", [][]float64{{0, 0}, {1}, {0, 1}})
}

func TestInSphere(t *testing.T) {
	unitTriangle := [][]float64{{0, 0}, {1, 0}, {0, 1}}
	unitTetra := [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	tests := []struct {
		name    string
		simplex [][]float64
		q       []float64
		want    Position
	}{
		// The circumsphere of a 1d simplex is the pair of its endpoints.
		{"1d between", [][]float64{{0}, {2}}, []float64{1}, Inside},
		{"1d beyond", [][]float64{{0}, {2}}, []float64{3}, Outside},
		{"1d before", [][]float64{{0}, {2}}, []float64{-1}, Outside},
		{"1d endpoint", [][]float64{{0}, {2}}, []float64{2}, OnBoundary},
		{"1d reversed between", [][]float64{{2}, {0}}, []float64{1}, Inside},

		// Circumcircle of the unit right triangle: center (0.5,0.5), r^2 = 0.5.
		{"2d centroid", unitTriangle, []float64{0.25, 0.25}, Inside},
		{"2d far", unitTriangle, []float64{2, 2}, Outside},
		{"2d cocircular", unitTriangle, []float64{1, 1}, OnBoundary},
		{"2d vertex", unitTriangle, []float64{1, 0}, OnBoundary},
		{"2d cw order", [][]float64{{0, 0}, {0, 1}, {1, 0}}, []float64{0.25, 0.25}, Inside},
		{"2d degenerate simplex", [][]float64{{0, 0}, {1, 1}, {2, 2}}, []float64{5, 5}, OnBoundary},

		// Circumsphere of the unit tetra: center (0.5,0.5,0.5), r^2 = 0.75.
		{"3d centroid", unitTetra, []float64{0.25, 0.25, 0.25}, Inside},
		{"3d near center", unitTetra, []float64{0.5, 0.5, 0.5}, Inside},
		{"3d far", unitTetra, []float64{2, 2, 2}, Outside},
		{"3d cospherical", unitTetra, []float64{1, 1, 1}, OnBoundary},
		{"3d flipped order", [][]float64{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {0, 0, 1}}, []float64{0.25, 0.25, 0.25}, Inside},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InSphere(tt.simplex, tt.q, eps); got != tt.want {
				t.Errorf("InSphere(%v, %v) = %v, want %v", tt.simplex, tt.q, got, tt.want)
			}
		})
	}
}

func TestInSphere_Panics(t *testing.T) {
	assertPanic := func(name string, simplex [][]float64, q []float64) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("InSphere(%s) did not panic, want panic", name)
			}
		}()
		InSphere(simplex, q, eps)
	}

	assertPanic("wrong vertex count", [][]float64{{0, 0}, {1, 0}}, []float64{0, 0})
	assertPanic("dimension mismatch", [][]float64{{0, 0}, {1, 0}, {0}}, []float64{0, 0})
}
