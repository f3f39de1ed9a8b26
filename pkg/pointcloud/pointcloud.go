// Package pointcloud provides the point container underlying triangle
// meshes and point graphs: a flat row-major coordinate table with
// exclusive ownership semantics and an attached landmark slot.
package pointcloud

import (
	"fmt"
	"log/slog"
)

// PointCloud is an ordered set of N points of fixed dimensionality (2 or 3).
// Coordinates are stored in a single flat row-major slice. A PointCloud owns
// its storage exclusively unless it was constructed with copyData=false from
// flat input, in which case the caller has promised not to mutate it.
type PointCloud struct {
	points     []float64
	dims       int
	landmarks  map[string][]int
	copyForced bool
}

// New creates a PointCloud over a flat row-major coordinate slice of
// length n*dims. When copyData is true the slice is defensively copied;
// otherwise it is adopted in place. Flat slices are always contiguous, so a
// no-copy request on this path is always honoured.
func New(points []float64, dims int, copyData bool) (*PointCloud, error) {
	if dims != 2 && dims != 3 {
		return nil, &DimensionalityError{Op: "pointcloud.New", Dims: dims}
	}
	if len(points)%dims != 0 {
		return nil, &ShapeMismatchError{
			What: "coordinate slice length",
			Got:  len(points),
			Want: (len(points) / dims) * dims,
		}
	}
	if copyData {
		points = append([]float64(nil), points...)
	}
	return &PointCloud{points: points, dims: dims}, nil
}

// FromRows creates a PointCloud from row-sliced input. Row slices are never
// contiguous, so the rows are always flattened into owned storage. If
// copyData is false the promise cannot be honoured: the copy is forced
// anyway and a warning is logged, and CopyForced reports true on the result.
func FromRows(rows [][]float64, copyData bool) (*PointCloud, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("pointcloud: cannot build a cloud from zero rows")
	}
	dims := len(rows[0])
	if dims != 2 && dims != 3 {
		return nil, &DimensionalityError{Op: "pointcloud.FromRows", Dims: dims}
	}
	forced := false
	if !copyData {
		slog.Warn("pointcloud: no-copy request not honoured for row-sliced input, copying",
			"rows", len(rows), "dims", dims)
		forced = true
	}
	points := make([]float64, 0, len(rows)*dims)
	for i, row := range rows {
		if len(row) != dims {
			return nil, &ShapeMismatchError{What: fmt.Sprintf("row %d length", i), Got: len(row), Want: dims}
		}
		points = append(points, row...)
	}
	return &PointCloud{points: points, dims: dims, copyForced: forced}, nil
}

// PointCount returns the number of points.
func (p *PointCloud) PointCount() int {
	return len(p.points) / p.dims
}

// Dims returns the dimensionality of each point (2 or 3).
func (p *PointCloud) Dims() int {
	return p.dims
}

// Data returns the backing flat coordinate slice. Callers must treat it as
// read-only; use Copy for an independent cloud.
func (p *PointCloud) Data() []float64 {
	return p.points
}

// At returns the coordinates of point i as a view into the backing storage.
func (p *PointCloud) At(i int) []float64 {
	return p.points[i*p.dims : (i+1)*p.dims]
}

// Rows returns a freshly allocated row-sliced copy of the coordinates.
func (p *PointCloud) Rows() [][]float64 {
	n := p.PointCount()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = append([]float64(nil), p.At(i)...)
	}
	return rows
}

// CopyForced reports whether a no-copy request could not be honoured at
// construction and a defensive copy was made anyway.
func (p *PointCloud) CopyForced() bool {
	return p.copyForced
}

// Copy returns an independent deep copy of the cloud, landmarks included.
// The forced-copy diagnostic is inherited; it describes where the data came
// from, not how this instance was built.
func (p *PointCloud) Copy() *PointCloud {
	c := &PointCloud{
		points:     append([]float64(nil), p.points...),
		dims:       p.dims,
		copyForced: p.copyForced,
	}
	c.landmarks = copyLandmarks(p.landmarks)
	return c
}

// ApplyMask returns a new cloud containing only the points selected by mask,
// order preserved. The mask length must equal PointCount. Landmark groups
// are not carried over; their indices refer to the original index space.
func (p *PointCloud) ApplyMask(mask []bool) (*PointCloud, error) {
	if len(mask) != p.PointCount() {
		return nil, &ShapeMismatchError{What: "mask length", Got: len(mask), Want: p.PointCount()}
	}
	points := make([]float64, 0, len(p.points))
	for i, keep := range mask {
		if keep {
			points = append(points, p.At(i)...)
		}
	}
	return &PointCloud{points: points, dims: p.dims}, nil
}

// Bounds returns the per-axis minimum and maximum over all points. Both
// slices have Dims entries. An empty cloud returns nil slices.
func (p *PointCloud) Bounds() (min, max []float64) {
	n := p.PointCount()
	if n == 0 {
		return nil, nil
	}
	min = append([]float64(nil), p.At(0)...)
	max = append([]float64(nil), p.At(0)...)
	for i := 1; i < n; i++ {
		row := p.At(i)
		for d := 0; d < p.dims; d++ {
			if row[d] < min[d] {
				min[d] = row[d]
			}
			if row[d] > max[d] {
				max[d] = row[d]
			}
		}
	}
	return min, max
}

// Landmarks returns a deep copy of the named landmark groups. A landmark
// group is a set of point indices with a semantic label.
func (p *PointCloud) Landmarks() map[string][]int {
	return copyLandmarks(p.landmarks)
}

// SetLandmarks replaces the landmark slot wholesale. The groups are deep
// copied; the cloud never aliases caller-owned landmark storage.
func (p *PointCloud) SetLandmarks(groups map[string][]int) {
	p.landmarks = copyLandmarks(groups)
}

// HasLandmarks reports whether any landmark group is attached.
func (p *PointCloud) HasLandmarks() bool {
	return len(p.landmarks) > 0
}

func (p *PointCloud) String() string {
	return fmt.Sprintf("PointCloud: %d points (%dD)", p.PointCount(), p.dims)
}

func copyLandmarks(groups map[string][]int) map[string][]int {
	if groups == nil {
		return nil
	}
	out := make(map[string][]int, len(groups))
	for name, idx := range groups {
		out[name] = append([]int(nil), idx...)
	}
	return out
}
