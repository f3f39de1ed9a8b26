// Package render defines the one-way visualization boundary. A mesh is
// handed off as a Scene (pure data) plus an Options record; Renderer
// implementations live behind the interface so the core never depends on
// rendering-library types.
package render

import "github.com/chazu/trimesh/pkg/mesh"

// Scene is the data handed to a renderer: a flat row-major point table and
// the flat (M,3) triangle list connecting it.
type Scene struct {
	Points  []float64
	Dims    int
	TriList []int
}

// MeshScene extracts the render hand-off data from a mesh. The scene views
// the mesh's storage; it must not outlive mutations (there are none) or be
// written through.
func MeshScene(m *mesh.TriMesh) Scene {
	return Scene{
		Points:  m.Data(),
		Dims:    m.Dims(),
		TriList: m.TriList(),
	}
}

// Renderer consumes a scene. Implementations may raster to screen, write a
// file, or discard the scene entirely; no result flows back to the core.
type Renderer interface {
	Render(s Scene, o Options) error
}
