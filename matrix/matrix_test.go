// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package matrix

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDet(t *testing.T) {
	tests := []struct {
		name string
		in   [][]float64
		want float64
	}{
		{"identity 1x1", [][]float64{{1}}, 1},
		{"scalar", [][]float64{{-3.5}}, -3.5},
		{"identity 3x3", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"2x2 swapped rows", [][]float64{{3, 4}, {1, 2}}, 2},
		{"singular", [][]float64{{1, 2}, {2, 4}}, 0},
		{"3x3", [][]float64{{2, 0, 1}, {1, 3, 2}, {1, 1, 4}}, 18},
		{"4x4 diagonal", [][]float64{{2, 0, 0, 0}, {0, 3, 0, 0}, {0, 0, 4, 0}, {0, 0, 0, 5}}, 120},
		{"zero pivot needs swap", [][]float64{{0, 1}, {1, 0}}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Det(tt.in)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Det(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDet_DoesNotModifyInput(t *testing.T) {
	in := [][]float64{{1, 2}, {3, 4}}
	want := [][]float64{{1, 2}, {3, 4}}
	Det(in)
	if diff := cmp.Diff(want, in); diff != "" {
		t.Errorf("Det modified its input (-want +got):\n%s", diff)
	}
}

func TestDet_Panics(t *testing.T) {
	assertPanic := func(name string, in [][]float64) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Det(%s) did not panic, want panic", name)
			}
		}()
		Det(in)
	}

	assertPanic("empty", nil)
	assertPanic("not square", [][]float64{{1, 2}, {3}})
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name    string
		a       [][]float64
		b       []float64
		want    []float64
		wantErr bool
	}{
		{"identity", [][]float64{{1, 0}, {0, 1}}, []float64{3, 4}, []float64{3, 4}, false},
		{"2x2", [][]float64{{2, 1}, {1, 3}}, []float64{5, 10}, []float64{1, 3}, false},
		{"needs pivoting", [][]float64{{0, 1}, {1, 0}}, []float64{2, 7}, []float64{7, 2}, false},
		{"3x3", [][]float64{{1, 1, 1}, {0, 2, 5}, {2, 5, -1}}, []float64{6, -4, 27}, []float64{5, 3, -2}, false},
		{"singular", [][]float64{{1, 2}, {2, 4}}, []float64{1, 2}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Solve(%v, %v) error = %v, wantErr %v", tt.a, tt.b, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			for i := range tt.want {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("Solve(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
					break
				}
			}
		})
	}
}

func TestSolve_Panics(t *testing.T) {
	assertPanic := func(name string, a [][]float64, b []float64) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Solve(%s) did not panic, want panic", name)
			}
		}()
		//nolint:errcheck
		Solve(a, b)
	}

	assertPanic("empty", nil, nil)
	assertPanic("shape mismatch", [][]float64{{1, 0}, {0, 1}}, []float64{1})
}
