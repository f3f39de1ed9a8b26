package mesh

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestRecordRoundTrip(t *testing.T) {
	m := squareMesh(t)
	m.SetLandmarks(map[string][]int{"diag": {0, 2}})

	back, err := FromRecord(m.Record())
	if err != nil {
		t.Fatalf("FromRecord() error = %v", err)
	}

	if back.PointCount() != m.PointCount() {
		t.Errorf("point count = %d, want %d", back.PointCount(), m.PointCount())
	}
	if back.TriangleCount() != m.TriangleCount() {
		t.Errorf("triangle count = %d, want %d", back.TriangleCount(), m.TriangleCount())
	}
	if !reflect.DeepEqual(back.TriList(), m.TriList()) {
		t.Errorf("trilist = %v, want %v", back.TriList(), m.TriList())
	}
	if !reflect.DeepEqual(back.Data(), m.Data()) {
		t.Errorf("points = %v, want %v", back.Data(), m.Data())
	}
	if !reflect.DeepEqual(back.Landmarks(), m.Landmarks()) {
		t.Errorf("landmarks = %v, want %v", back.Landmarks(), m.Landmarks())
	}
}

func TestRecordEmptyMeshRoundTrip(t *testing.T) {
	m := squareMesh(t)
	empty, err := m.FromMask([]bool{false, false, false, false})
	if err != nil {
		t.Fatalf("FromMask() error = %v", err)
	}

	r := empty.Record()
	if r.Dims != 2 {
		t.Errorf("record dims = %d, want 2", r.Dims)
	}

	back, err := FromRecord(r)
	if err != nil {
		t.Fatalf("FromRecord() error = %v", err)
	}
	if back.PointCount() != 0 || back.TriangleCount() != 0 {
		t.Errorf("round trip gave %s, want empty mesh", back)
	}
	if back.Dims() != 2 {
		t.Errorf("Dims() = %d, want 2", back.Dims())
	}
}

func TestRecordIsPlainSequences(t *testing.T) {
	m := squareMesh(t)
	r := m.Record()

	if len(r.Points) != 4 || len(r.Points[0]) != 2 {
		t.Errorf("record points shape = (%d,%d), want (4,2)", len(r.Points), len(r.Points[0]))
	}
	if len(r.TriList) != 2 || len(r.TriList[0]) != 3 {
		t.Errorf("record trilist shape = (%d,%d), want (2,3)", len(r.TriList), len(r.TriList[0]))
	}

	// The record owns its sequences; mutating it leaves the mesh alone.
	r.Points[0][0] = 42
	r.TriList[0][0] = 3
	if m.At(0)[0] != 0 || m.Triangle(0)[0] != 0 {
		t.Error("record aliased mesh storage")
	}
}

func TestRecordFileRoundTrip(t *testing.T) {
	m := squareMesh(t)
	path := filepath.Join(t.TempDir(), "square.json")

	if err := m.Record().WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	r, err := ReadRecordFile(path)
	if err != nil {
		t.Fatalf("ReadRecordFile() error = %v", err)
	}
	back, err := FromRecord(r)
	if err != nil {
		t.Fatalf("FromRecord() error = %v", err)
	}
	if back.PointCount() != 4 || back.TriangleCount() != 2 {
		t.Errorf("round trip gave %s", back)
	}
}

func TestFromRecordRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{"no points and no dims", Record{}},
		{"bad dims", Record{Dims: 5}},
		{"ragged points", Record{Points: [][]float64{{0, 0}, {1}}}},
		{"bad triangle row", Record{Points: [][]float64{{0, 0}, {1, 0}, {1, 1}}, TriList: [][]int{{0, 1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromRecord(tt.rec); err == nil {
				t.Error("FromRecord() expected error")
			}
		})
	}
}
