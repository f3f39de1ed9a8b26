package mesh

import (
	"github.com/chazu/trimesh/pkg/adjacency"
	"github.com/chazu/trimesh/pkg/pointcloud"
)

// FromMask returns a new mesh containing only the points selected by mask,
// with the trilist rebuilt for the reduced vertex set. A triangle survives
// only if all three of its vertices are selected; a selected vertex that
// appears in no surviving triangle is isolated and is dropped as well, so
// the result never carries dangling, triangle-less vertices. Surviving
// triangle indices are remapped onto the compacted [0, N') range.
//
// The mask length must equal PointCount or a ShapeMismatchError is
// returned. The source mesh is never mutated. A mask selecting every
// vertex returns a full copy, landmarks included; any other mask drops the
// landmark groups, whose indices refer to the original index space.
func (m *TriMesh) FromMask(mask []bool) (*TriMesh, error) {
	if len(mask) != m.PointCount() {
		return nil, &pointcloud.ShapeMismatchError{
			What: "mask length",
			Got:  len(mask),
			Want: m.PointCount(),
		}
	}

	all := true
	for _, keep := range mask {
		if !keep {
			all = false
			break
		}
	}
	if all {
		return m.Copy(), nil
	}

	corrected := m.isolatedMask(mask)
	surviving := adjacency.MaskRows(corrected, m.tris, 3)
	reindexed := adjacency.Reindex(surviving)

	pc, err := m.PointCloud.ApplyMask(corrected)
	if err != nil {
		return nil, err
	}
	return &TriMesh{PointCloud: pc, tris: reindexed}, nil
}

// isolatedMask narrows mask so that vertices belonging to no fully selected
// triangle are deselected. The result is always a subset of mask.
func (m *TriMesh) isolatedMask(mask []bool) []bool {
	surviving := adjacency.MaskRows(mask, m.tris, 3)
	occupied := adjacency.OccupiedMask(surviving, m.PointCount())
	corrected := make([]bool, len(mask))
	for i := range mask {
		corrected[i] = mask[i] && occupied[i]
	}
	return corrected
}
