// Package delaunay implements 2D Delaunay triangulation of a point set
// using the incremental Bowyer-Watson algorithm. 3D points are triangulated
// on their XY projection, as in TIN construction.
package delaunay

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Delaunay triangulates point sets. The zero value is ready to use; New
// exists for symmetry with injected capabilities.
type Delaunay struct{}

// New returns a Delaunay triangulator.
func New() *Delaunay {
	return &Delaunay{}
}

// Triangulate computes a Delaunay triangulation over a flat row-major point
// table and returns a flat (M,3) triangle list indexing into it. At least
// three non-collinear points are required.
func (d *Delaunay) Triangulate(points []float64, dims int) ([]int, error) {
	if dims != 2 && dims != 3 {
		return nil, errors.Errorf("delaunay: unsupported dimensionality %d", dims)
	}
	if len(points)%dims != 0 {
		return nil, errors.Errorf("delaunay: point table length %d is not a multiple of %d", len(points), dims)
	}
	n := len(points) / dims
	if n < 3 {
		return nil, errors.Errorf("delaunay: need at least 3 points, have %d", n)
	}

	sites := make([]r2.Point, n)
	for i := 0; i < n; i++ {
		sites[i] = r2.Point{X: points[i*dims], Y: points[i*dims+1]}
	}

	tris := bowyerWatson(sites)
	if len(tris) == 0 {
		return nil, errors.New("delaunay: degenerate point set, no triangles produced")
	}
	return tris, nil
}

// triangle holds three site indices. Indices >= len(sites) refer to the
// synthetic super-triangle vertices.
type triangle struct {
	a, b, c int
}

func (t triangle) edges() [3][2]int {
	return [3][2]int{{t.a, t.b}, {t.b, t.c}, {t.c, t.a}}
}

// bowyerWatson runs the incremental insertion: seed with a super-triangle
// enclosing every site, insert sites one at a time re-triangulating the
// cavity of circumcircle-violating triangles, then strip every triangle
// touching a super-triangle vertex.
func bowyerWatson(sites []r2.Point) []int {
	n := len(sites)
	all := make([]r2.Point, 0, n+3)
	all = append(all, sites...)
	all = append(all, superTriangle(sites)...)

	tris := []triangle{{n, n + 1, n + 2}}

	for p := 0; p < n; p++ {
		var bad, keep []triangle
		for _, t := range tris {
			if inCircumcircle(all[t.a], all[t.b], all[t.c], all[p]) {
				bad = append(bad, t)
			} else {
				keep = append(keep, t)
			}
		}

		tris = keep
		for _, e := range cavityBoundary(bad) {
			tris = append(tris, triangle{a: e[0], b: e[1], c: p})
		}
	}

	out := make([]int, 0, 3*len(tris))
	for _, t := range tris {
		if t.a < n && t.b < n && t.c < n {
			out = append(out, t.a, t.b, t.c)
		}
	}
	return out
}

// cavityBoundary returns, in first-seen order, the edges belonging to
// exactly one of the bad triangles. Those edges form the polygon around the
// cavity left by their removal.
func cavityBoundary(bad []triangle) [][2]int {
	counts := make(map[[2]int]int)
	var order [][2]int
	for _, t := range bad {
		for _, e := range t.edges() {
			key := e
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if counts[key] == 0 {
				order = append(order, e)
			}
			counts[key]++
		}
	}

	var boundary [][2]int
	for _, e := range order {
		key := e
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if counts[key] == 1 {
			boundary = append(boundary, e)
		}
	}
	return boundary
}

// superTriangle returns three synthetic vertices enclosing every site by a
// wide margin.
func superTriangle(sites []r2.Point) []r2.Point {
	min := sites[0]
	max := sites[0]
	for _, s := range sites[1:] {
		if s.X < min.X {
			min.X = s.X
		}
		if s.X > max.X {
			max.X = s.X
		}
		if s.Y < min.Y {
			min.Y = s.Y
		}
		if s.Y > max.Y {
			max.Y = s.Y
		}
	}

	d := max.X - min.X
	if dy := max.Y - min.Y; dy > d {
		d = dy
	}
	if d == 0 {
		d = 1
	}
	mid := r2.Point{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2}

	return []r2.Point{
		{X: mid.X - 20*d, Y: mid.Y - d},
		{X: mid.X, Y: mid.Y + 20*d},
		{X: mid.X + 20*d, Y: mid.Y - d},
	}
}

// inCircumcircle reports whether p lies strictly inside the circumcircle of
// triangle (a,b,c). Collinear triangles have no circumcircle and contain
// nothing.
func inCircumcircle(a, b, c, p r2.Point) bool {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if d < 1e-12 && d > -1e-12 {
		return false
	}

	aa := a.X*a.X + a.Y*a.Y
	bb := b.X*b.X + b.Y*b.Y
	cc := c.X*c.X + c.Y*c.Y
	centre := r2.Point{
		X: (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d,
		Y: (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d,
	}

	r := centre.Sub(a).Norm()
	return p.Sub(centre).Norm() < r
}
