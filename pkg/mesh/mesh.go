package mesh

import (
	"fmt"
	"log/slog"

	"github.com/chazu/trimesh/pkg/graph"
	"github.com/chazu/trimesh/pkg/mesh/normals"
	"github.com/chazu/trimesh/pkg/pointcloud"
)

// TriMesh is a point cloud whose connectivity is defined by a triangle
// list: a flat row-major (M,3) table of vertex indices. The trilist is
// owned exclusively by the mesh unless it was adopted from flat input with
// copyTris=false.
type TriMesh struct {
	*pointcloud.PointCloud
	tris           []int
	trisCopyForced bool
}

// New creates a TriMesh over pc with the given flat (M,3) triangle list.
// When copyTris is true the trilist is defensively copied; otherwise it is
// adopted in place (flat slices are always contiguous, so the no-copy
// request is honoured). A nil trilist triggers a Delaunay triangulation of
// the points via the default triangulator.
//
// Triangle indices are not range-checked here; callers supplying a
// malformed trilist get well-defined but meaningless downstream behaviour.
// Use Validate for eager checking.
func New(pc *pointcloud.PointCloud, tris []int, copyTris bool) (*TriMesh, error) {
	if pc == nil {
		return nil, fmt.Errorf("mesh: nil point cloud")
	}
	if tris == nil {
		return NewWithTriangulator(DefaultTriangulator(), pc)
	}
	if len(tris)%3 != 0 {
		return nil, &pointcloud.ShapeMismatchError{
			What: "trilist length",
			Got:  len(tris),
			Want: (len(tris) / 3) * 3,
		}
	}
	if copyTris {
		tris = append([]int(nil), tris...)
	}
	return &TriMesh{PointCloud: pc, tris: tris}, nil
}

// NewWithTriangulator creates a TriMesh by triangulating pc with the given
// triangulation capability. Triangulation is expensive and runs exactly
// once, at construction.
func NewWithTriangulator(t Triangulator, pc *pointcloud.PointCloud) (*TriMesh, error) {
	if pc == nil {
		return nil, fmt.Errorf("mesh: nil point cloud")
	}
	tris, err := t.Triangulate(pc.Data(), pc.Dims())
	if err != nil {
		return nil, fmt.Errorf("mesh: triangulation failed: %w", err)
	}
	return &TriMesh{PointCloud: pc, tris: tris}, nil
}

// FromTriangleRows creates a TriMesh from a row-sliced triangle table. Row
// slices are never contiguous, so the rows are always flattened into owned
// storage. If copyTris is false the promise cannot be honoured: the copy is
// forced anyway, a warning is logged, and TrisCopyForced reports true.
func FromTriangleRows(pc *pointcloud.PointCloud, rows [][]int, copyTris bool) (*TriMesh, error) {
	if pc == nil {
		return nil, fmt.Errorf("mesh: nil point cloud")
	}
	forced := false
	if !copyTris {
		slog.Warn("mesh: no-copy request not honoured for row-sliced trilist, copying",
			"triangles", len(rows))
		forced = true
	}
	tris := make([]int, 0, len(rows)*3)
	for i, row := range rows {
		if len(row) != 3 {
			return nil, &pointcloud.ShapeMismatchError{
				What: fmt.Sprintf("triangle row %d length", i),
				Got:  len(row),
				Want: 3,
			}
		}
		tris = append(tris, row...)
	}
	return &TriMesh{PointCloud: pc, tris: tris, trisCopyForced: forced}, nil
}

// TriangleCount returns the number of triangles.
func (m *TriMesh) TriangleCount() int {
	return len(m.tris) / 3
}

// Triangle returns the three vertex indices of triangle i.
func (m *TriMesh) Triangle(i int) [3]int {
	return [3]int{m.tris[3*i], m.tris[3*i+1], m.tris[3*i+2]}
}

// TriList returns the backing flat (M,3) triangle table. Callers must treat
// it as read-only.
func (m *TriMesh) TriList() []int {
	return m.tris
}

// TriangleRows returns a freshly allocated row-sliced copy of the trilist.
func (m *TriMesh) TriangleRows() [][]int {
	n := m.TriangleCount()
	rows := make([][]int, n)
	for i := 0; i < n; i++ {
		rows[i] = append([]int(nil), m.tris[3*i:3*i+3]...)
	}
	return rows
}

// TrisCopyForced reports whether a no-copy request for the trilist could not
// be honoured at construction and a defensive copy was made anyway.
func (m *TriMesh) TrisCopyForced() bool {
	return m.trisCopyForced
}

// Copy returns an independent deep copy of the mesh, landmarks included.
// The trilist forced-copy diagnostic is inherited.
func (m *TriMesh) Copy() *TriMesh {
	return &TriMesh{
		PointCloud:     m.PointCloud.Copy(),
		tris:           append([]int(nil), m.tris...),
		trisCopyForced: m.trisCopyForced,
	}
}

// Validate eagerly checks every triangle index against the point count and
// that the three indices of each triangle are distinct. Construction does
// not run these checks; callers who want the stronger guarantee opt in.
func (m *TriMesh) Validate() error {
	n := m.PointCount()
	for i := 0; i < m.TriangleCount(); i++ {
		t := m.Triangle(i)
		for _, v := range t {
			if v < 0 || v >= n {
				return fmt.Errorf("mesh: triangle %d references vertex %d, have %d points", i, v, n)
			}
		}
		if t[0] == t[1] || t[1] == t[2] || t[0] == t[2] {
			return fmt.Errorf("mesh: triangle %d has repeated vertices %v", i, t)
		}
	}
	return nil
}

// VertexNormals computes the per-vertex unit normals. Only defined for 3D
// meshes.
func (m *TriMesh) VertexNormals() ([]float64, error) {
	if m.Dims() != 3 {
		return nil, &pointcloud.DimensionalityError{Op: "mesh.VertexNormals", Dims: m.Dims()}
	}
	vertex, _ := normals.Compute(m.Data(), m.tris)
	return vertex, nil
}

// FaceNormals computes the per-face unit normals. Only defined for 3D
// meshes.
func (m *TriMesh) FaceNormals() ([]float64, error) {
	if m.Dims() != 3 {
		return nil, &pointcloud.DimensionalityError{Op: "mesh.FaceNormals", Dims: m.Dims()}
	}
	_, face := normals.Compute(m.Data(), m.tris)
	return face, nil
}

// AsPointGraph projects the mesh onto its point connectivity: an undirected
// graph over the same points with one edge per triangle edge. Landmark
// groups are copied onto the graph, never aliased. When copyData is false
// the graph shares the mesh's coordinate storage.
func (m *TriMesh) AsPointGraph(copyData bool) (*graph.PointGraph, error) {
	pg, err := graph.New(m.PointCloud, TriListToEdges(m.tris), copyData)
	if err != nil {
		return nil, fmt.Errorf("mesh: point graph projection failed: %w", err)
	}
	pg.SetLandmarks(m.Landmarks())
	return pg, nil
}

func (m *TriMesh) String() string {
	return fmt.Sprintf("TriMesh: %d points (%dD), %d triangles",
		m.PointCount(), m.Dims(), m.TriangleCount())
}
