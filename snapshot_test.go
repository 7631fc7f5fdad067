// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package ddelaunay

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSnapshotRoundTrip(t *testing.T) {
	tr := mustTriangulation(t, 2)
	insertAll(t, tr, [][]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {0, 0}})

	s := tr.Snapshot()

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	restored, err := FromSnapshot(&decoded)
	if err != nil {
		t.Fatalf("FromSnapshot error = %v", err)
	}
	if diff := cmp.Diff(s, restored.Snapshot()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	assertValid(t, restored)

	// The restored triangulation keeps working: duplicates are still
	// detected and new points insert cleanly.
	if _, err := restored.Insert(NewPoint(0, 0)); err == nil {
		t.Error("Insert(duplicate) after restore error = nil, want error")
	}
	insertAll(t, restored, [][]float64{{0.3, 0.2}})
	assertValid(t, restored)
}

func TestSnapshotEmpty(t *testing.T) {
	tr := mustTriangulation(t, 3)
	s := tr.Snapshot()

	if len(s.Vertices) != 0 || len(s.Cells) != 0 {
		t.Fatalf("empty snapshot has %d vertices, %d cells", len(s.Vertices), len(s.Cells))
	}

	restored, err := FromSnapshot(s)
	if err != nil {
		t.Fatalf("FromSnapshot error = %v", err)
	}
	if restored.Dim() != 3 || restored.NumVertices() != 0 || restored.NumCells() != 0 {
		t.Errorf("restored: dim %d, %d vertices, %d cells", restored.Dim(), restored.NumVertices(), restored.NumCells())
	}
}

func TestSnapshot_BareVertexPhase(t *testing.T) {
	tr := mustTriangulation(t, 2)
	insertAll(t, tr, [][]float64{{0, 0}, {1, 0}})

	restored, err := FromSnapshot(tr.Snapshot())
	if err != nil {
		t.Fatalf("FromSnapshot error = %v", err)
	}

	// The third point completes the bootstrap as if nothing happened.
	insertAll(t, restored, [][]float64{{0, 1}})
	if restored.NumCells() != 1 {
		t.Errorf("NumCells() = %d, want 1", restored.NumCells())
	}
	assertValid(t, restored)
}

func TestFromSnapshot_Errors(t *testing.T) {
	valid := func() *Snapshot {
		tr := mustTriangulation(t, 2)
		insertAll(t, tr, [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
		return tr.Snapshot()
	}

	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"zero dimension", func(s *Snapshot) { s.Dim = 0 }},
		{"eps out of range", func(s *Snapshot) { s.Eps = 2 }},
		{"invalid vertex id", func(s *Snapshot) { s.Vertices[0].ID = 0 }},
		{"duplicate vertex id", func(s *Snapshot) { s.Vertices[1].ID = s.Vertices[0].ID }},
		{"coordinate count", func(s *Snapshot) { s.Vertices[0].Coords = []float64{1} }},
		{"duplicate coordinates", func(s *Snapshot) { s.Vertices[1].Coords = s.Vertices[0].Coords }},
		{"invalid cell id", func(s *Snapshot) { s.Cells[0].ID = 0 }},
		{"duplicate cell id", func(s *Snapshot) { s.Cells[1].ID = s.Cells[0].ID }},
		{"vertex tuple size", func(s *Snapshot) { s.Cells[0].Vertices = s.Cells[0].Vertices[:2] }},
		{"unknown cell vertex", func(s *Snapshot) { s.Cells[0].Vertices[0] = 99 }},
		{"unknown neighbor", func(s *Snapshot) {
			for i, n := range s.Cells[0].Neighbors {
				if n != 0 {
					s.Cells[0].Neighbors[i] = 99
				}
			}
		}},
		{"asymmetric adjacency", func(s *Snapshot) {
			// Cell 1 keeps pointing at cell 0, which no longer points back.
			for i, n := range s.Cells[0].Neighbors {
				if n != 0 {
					s.Cells[0].Neighbors[i] = 0
				}
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			if _, err := FromSnapshot(s); err == nil {
				t.Error("FromSnapshot error = nil, want error")
			}
		})
	}
}
