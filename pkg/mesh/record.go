package mesh

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/chazu/trimesh/pkg/pointcloud"
)

// Record is the structural export of a mesh: plain nested numeric
// sequences suitable for embedding in a generic tree-structured format.
// Dims carries the dimensionality explicitly so that a zero-point mesh,
// whose rows cannot encode it, still round-trips.
type Record struct {
	Dims      int              `json:"dims"`
	Points    [][]float64      `json:"points"`
	TriList   [][]int          `json:"trilist"`
	Landmarks map[string][]int `json:"landmarks,omitempty"`
}

// Record exports the mesh as a structural record.
func (m *TriMesh) Record() Record {
	return Record{
		Dims:      m.Dims(),
		Points:    m.Rows(),
		TriList:   m.TriangleRows(),
		Landmarks: m.Landmarks(),
	}
}

// FromRecord reconstructs a mesh from a structural record. Point counts,
// triangle counts and index contents round-trip exactly, empty meshes
// included.
func FromRecord(r Record) (*TriMesh, error) {
	var pc *pointcloud.PointCloud
	var err error
	if len(r.Points) == 0 {
		pc, err = pointcloud.New(nil, r.Dims, false)
	} else {
		pc, err = pointcloud.FromRows(r.Points, true)
	}
	if err != nil {
		return nil, fmt.Errorf("mesh: bad record points: %w", err)
	}
	if len(r.Landmarks) > 0 {
		pc.SetLandmarks(r.Landmarks)
	}
	m, err := FromTriangleRows(pc, r.TriList, true)
	if err != nil {
		return nil, fmt.Errorf("mesh: bad record trilist: %w", err)
	}
	return m, nil
}

// WriteFile writes the record to path as JSON.
func (r Record) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("mesh: encoding record: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadRecordFile reads a JSON record from path.
func ReadRecordFile(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("mesh: reading record: %w", err)
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("mesh: decoding record: %w", err)
	}
	return r, nil
}
