package mesh

import (
	"errors"
	"reflect"
	"testing"

	"github.com/chazu/trimesh/pkg/pointcloud"
)

func TestFromMaskSquareExample(t *testing.T) {
	// Masking out vertex 3 removes triangle (0,2,3) but keeps (0,1,2);
	// the survivor's indices are already dense.
	m := squareMesh(t)

	masked, err := m.FromMask([]bool{true, true, true, false})
	if err != nil {
		t.Fatalf("FromMask() error = %v", err)
	}
	if masked.PointCount() != 3 {
		t.Errorf("PointCount() = %d, want 3", masked.PointCount())
	}
	if masked.TriangleCount() != 1 {
		t.Errorf("TriangleCount() = %d, want 1", masked.TriangleCount())
	}
	if got := masked.Triangle(0); got != [3]int{0, 1, 2} {
		t.Errorf("Triangle(0) = %v, want [0 1 2]", got)
	}
}

func TestFromMaskAllTrue(t *testing.T) {
	m := squareMesh(t)
	mask := []bool{true, true, true, true}

	once, err := m.FromMask(mask)
	if err != nil {
		t.Fatalf("FromMask() error = %v", err)
	}
	twice, err := once.FromMask(mask)
	if err != nil {
		t.Fatalf("FromMask() second application error = %v", err)
	}

	for _, got := range []*TriMesh{once, twice} {
		if !reflect.DeepEqual(got.Data(), m.Data()) {
			t.Errorf("points = %v, want %v", got.Data(), m.Data())
		}
		if !reflect.DeepEqual(got.TriList(), m.TriList()) {
			t.Errorf("trilist = %v, want %v", got.TriList(), m.TriList())
		}
	}

	// The fast-path result is a copy, not the same instance.
	once.TriList()[0] = 9
	if m.Triangle(0)[0] != 0 {
		t.Error("FromMask(all-true) aliased the source trilist")
	}
}

func TestFromMaskIsolatedVertexDropped(t *testing.T) {
	// Five points, two triangles. Masking out vertex 2 kills both
	// triangles that use it; vertex 4 survives the caller's mask but ends
	// up in no triangle and must be dropped too.
	pc, err := pointcloud.New([]float64{0, 0, 1, 0, 1, 1, 0, 1, 2, 2}, 2, true)
	if err != nil {
		t.Fatalf("pointcloud.New() error = %v", err)
	}
	m, err := New(pc, []int{0, 1, 2, 0, 2, 4}, true)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	masked, err := m.FromMask([]bool{true, true, false, true, true})
	if err != nil {
		t.Fatalf("FromMask() error = %v", err)
	}
	// Every triangle used vertex 2, so nothing survives: vertices 0, 1, 3
	// and 4 are all isolated.
	if masked.PointCount() != 0 {
		t.Errorf("PointCount() = %d, want 0", masked.PointCount())
	}
	if masked.TriangleCount() != 0 {
		t.Errorf("TriangleCount() = %d, want 0", masked.TriangleCount())
	}
}

func TestFromMaskPartialIsolation(t *testing.T) {
	// A strip of two triangles: (0,1,2) and (1,2,3). Dropping vertex 0
	// keeps (1,2,3) intact, so only vertex 0 goes; indices remap to the
	// three survivors.
	pc, err := pointcloud.New([]float64{0, 0, 1, 0, 0, 1, 1, 1}, 2, true)
	if err != nil {
		t.Fatalf("pointcloud.New() error = %v", err)
	}
	m, err := New(pc, []int{0, 1, 2, 1, 2, 3}, true)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	masked, err := m.FromMask([]bool{false, true, true, true})
	if err != nil {
		t.Fatalf("FromMask() error = %v", err)
	}
	if masked.PointCount() != 3 {
		t.Errorf("PointCount() = %d, want 3", masked.PointCount())
	}
	if got := masked.Triangle(0); got != [3]int{0, 1, 2} {
		t.Errorf("Triangle(0) = %v, want [0 1 2]", got)
	}
	// Point 0 of the result is original point 1.
	if masked.At(0)[0] != 1 || masked.At(0)[1] != 0 {
		t.Errorf("At(0) = %v, want [1 0]", masked.At(0))
	}
}

func TestFromMaskNoIsolatedVerticesEverSurvive(t *testing.T) {
	m := squareMesh(t)

	masks := [][]bool{
		{true, true, true, false},
		{true, false, true, true},
		{false, true, false, true},
		{true, true, false, false},
	}
	for _, mask := range masks {
		masked, err := m.FromMask(mask)
		if err != nil {
			t.Fatalf("FromMask(%v) error = %v", mask, err)
		}
		// Every surviving vertex must appear in at least one triangle.
		used := make([]bool, masked.PointCount())
		for _, v := range masked.TriList() {
			used[v] = true
		}
		for i, u := range used {
			if !u {
				t.Errorf("mask %v: vertex %d survived with no triangle", mask, i)
			}
		}
		if err := masked.Validate(); err != nil {
			t.Errorf("mask %v: result fails validation: %v", mask, err)
		}
	}
}

func TestFromMaskShapeMismatch(t *testing.T) {
	m := squareMesh(t)
	_, err := m.FromMask([]bool{true, true})
	var shapeErr *pointcloud.ShapeMismatchError
	if !errors.As(err, &shapeErr) {
		t.Errorf("FromMask(short mask) error = %v, want ShapeMismatchError", err)
	}
}

func TestFromMaskSourceUnmodified(t *testing.T) {
	m := squareMesh(t)
	before := append([]int(nil), m.TriList()...)

	if _, err := m.FromMask([]bool{true, false, true, false}); err != nil {
		t.Fatalf("FromMask() error = %v", err)
	}
	if !reflect.DeepEqual(m.TriList(), before) {
		t.Error("FromMask mutated the source mesh")
	}
	if m.PointCount() != 4 {
		t.Errorf("source point count = %d, want 4", m.PointCount())
	}
}
