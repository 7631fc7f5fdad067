// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package matrix provides the small dense linear algebra needed by the
// triangulation predicates: determinants and linear solves on (d+1)-sized
// square matrices.
package matrix

import (
	"errors"
	"math"
)

// Det computes the determinant of the square matrix a by LU decomposition
// with partial pivoting. The matrix is not modified.
// It panics if a is empty or not square.
func Det(a [][]float64) float64 {
	n := len(a)
	if n == 0 {
		panic("Det: empty matrix")
	}

	m := clone(a, n)

	det := 1.0
	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(m[row][col]) > math.Abs(m[pivot][col]) {
				pivot = row
			}
		}
		if m[pivot][col] == 0 {
			return 0
		}
		if pivot != col {
			m[pivot], m[col] = m[col], m[pivot]
			det = -det
		}

		det *= m[col][col]
		for row := col + 1; row < n; row++ {
			f := m[row][col] / m[col][col]
			for k := col + 1; k < n; k++ {
				m[row][k] -= f * m[col][k]
			}
		}
	}

	return det
}

// Solve solves the linear system a*x = b by Gaussian elimination with
// partial pivoting. The inputs are not modified.
// It returns an error if the system is singular.
// It panics if the shapes of a and b do not agree.
func Solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	if n == 0 || len(b) != n {
		panic("Solve: shape mismatch")
	}

	m := clone(a, n)
	x := make([]float64, n)
	copy(x, b)

	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(m[row][col]) > math.Abs(m[pivot][col]) {
				pivot = row
			}
		}
		if m[pivot][col] == 0 {
			return nil, errors.New("matrix: singular system")
		}
		if pivot != col {
			m[pivot], m[col] = m[col], m[pivot]
			x[pivot], x[col] = x[col], x[pivot]
		}

		for row := col + 1; row < n; row++ {
			f := m[row][col] / m[col][col]
			for k := col + 1; k < n; k++ {
				m[row][k] -= f * m[col][k]
			}
			x[row] -= f * x[col]
		}
	}

	for col := n - 1; col >= 0; col-- {
		for k := col + 1; k < n; k++ {
			x[col] -= m[col][k] * x[k]
		}
		x[col] /= m[col][col]
	}

	return x, nil
}

func clone(a [][]float64, n int) [][]float64 {
	m := make([][]float64, n)
	for i, row := range a {
		if len(row) != n {
			panic("matrix: not square")
		}
		m[i] = make([]float64, n)
		copy(m[i], row)
	}
	return m
}
