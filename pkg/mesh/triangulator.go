package mesh

import (
	"sync"

	"github.com/chazu/trimesh/pkg/delaunay"
)

// Triangulator produces a flat (M,3) triangle list over a flat row-major
// point table. Implementations may be expensive; a mesh constructor invokes
// its triangulator exactly once.
type Triangulator interface {
	Triangulate(points []float64, dims int) ([]int, error)
}

// The default triangulator is created on first use and shared by every
// construction that does not inject its own.
var defaultTriangulator = sync.OnceValue(func() Triangulator {
	return delaunay.New()
})

// DefaultTriangulator returns the process-wide Delaunay triangulator,
// created lazily exactly once.
func DefaultTriangulator() Triangulator {
	return defaultTriangulator()
}

var _ Triangulator = (*delaunay.Delaunay)(nil)
