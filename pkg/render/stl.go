package render

import (
	"fmt"

	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/trimesh/pkg/pointcloud"
)

// Compile-time interface check.
var _ Renderer = (*STLWriter)(nil)

// STLWriter renders a 3D scene to a binary STL file. Rendering options are
// accepted but STL carries no styling, so they are ignored.
type STLWriter struct {
	Path string
}

// NewSTLWriter returns an STLWriter targeting path.
func NewSTLWriter(path string) *STLWriter {
	return &STLWriter{Path: path}
}

// Render writes the scene's triangles to the target file. Only 3D scenes
// can be written; 2D scenes yield a DimensionalityError.
func (w *STLWriter) Render(s Scene, _ Options) error {
	if s.Dims != 3 {
		return &pointcloud.DimensionalityError{Op: "render.STLWriter", Dims: s.Dims}
	}

	n := len(s.Points) / 3
	tris := make([]*sdf.Triangle3, 0, len(s.TriList)/3)
	for i := 0; i+2 < len(s.TriList); i += 3 {
		var t sdf.Triangle3
		for j := 0; j < 3; j++ {
			v := s.TriList[i+j]
			if v < 0 || v >= n {
				return fmt.Errorf("render: triangle %d references vertex %d, have %d points", i/3, v, n)
			}
			t[j] = v3.Vec{X: s.Points[3*v], Y: s.Points[3*v+1], Z: s.Points[3*v+2]}
		}
		tris = append(tris, &t)
	}

	if err := sdfxrender.SaveSTL(w.Path, tris); err != nil {
		return fmt.Errorf("render: writing %s: %w", w.Path, err)
	}
	return nil
}
