package render

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/trimesh/pkg/mesh"
	"github.com/chazu/trimesh/pkg/pointcloud"
)

func pyramidScene(t *testing.T) Scene {
	t.Helper()
	pc, err := pointcloud.New([]float64{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}, 3, true)
	require.NoError(t, err)
	m, err := mesh.New(pc, []int{0, 1, 2, 0, 1, 3, 0, 2, 3, 1, 2, 3}, true)
	require.NoError(t, err)
	return MeshScene(m)
}

func TestSTLWriterWritesBinarySTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh.stl")
	s := pyramidScene(t)

	require.NoError(t, NewSTLWriter(path).Render(s, Defaults()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	// Binary STL: 80-byte header + 4-byte count + 50 bytes per triangle.
	assert.Equal(t, int64(84+50*4), info.Size())
}

func TestSTLWriterRejects2D(t *testing.T) {
	s := Scene{Points: []float64{0, 0, 1, 0, 1, 1}, Dims: 2, TriList: []int{0, 1, 2}}
	err := NewSTLWriter(filepath.Join(t.TempDir(), "x.stl")).Render(s, Defaults())

	var dimErr *pointcloud.DimensionalityError
	require.Error(t, err)
	assert.True(t, errors.As(err, &dimErr), "want DimensionalityError, got %v", err)
}

func TestSTLWriterRejectsBadIndices(t *testing.T) {
	s := Scene{Points: []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}, Dims: 3, TriList: []int{0, 1, 7}}
	err := NewSTLWriter(filepath.Join(t.TempDir(), "x.stl")).Render(s, Defaults())
	assert.Error(t, err)
}

func TestMeshSceneViewsMesh(t *testing.T) {
	s := pyramidScene(t)
	assert.Equal(t, 3, s.Dims)
	assert.Len(t, s.Points, 12)
	assert.Len(t, s.TriList, 12)
}
