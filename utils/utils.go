// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating point
// coordinates for triangulation tests, benchmarks and examples.
package utils

import (
	"math/rand"
)

// GenerateRandomCoords generates cnt coordinate tuples of the given
// dimension, uniformly distributed in the cube [-1, 1)^dim.
// The seed parameter ensures reproducibility.
func GenerateRandomCoords(cnt, dim int, seed int64) [][]float64 {
	if dim < 1 {
		panic("GenerateRandomCoords: dim must be positive")
	}

	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	coords := make([][]float64, cnt)

	for i := range cnt {
		c := make([]float64, dim)
		for k := range dim {
			c[k] = random.Float64()*2 - 1
		}
		coords[i] = c
	}

	return coords
}

// GenerateGridCoords generates the coordinates of the integer grid
// {0..side-1}^dim in row-major order, scaled by step.
func GenerateGridCoords(side, dim int, step float64) [][]float64 {
	if dim < 1 {
		panic("GenerateGridCoords: dim must be positive")
	}
	if side < 1 {
		panic("GenerateGridCoords: side must be positive")
	}

	total := 1
	for range dim {
		total *= side
	}

	coords := make([][]float64, total)
	for i := range total {
		c := make([]float64, dim)
		rem := i
		for k := dim - 1; k >= 0; k-- {
			c[k] = float64(rem%side) * step
			rem /= side
		}
		coords[i] = c
	}

	return coords
}
