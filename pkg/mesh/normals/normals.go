// Package normals implements the normal-computation kernel for 3D triangle
// meshes.
package normals

import "github.com/go-gl/mathgl/mgl64"

// Compute returns per-vertex and per-face unit normals for a 3D mesh given
// as a flat (N,3) point table and a flat (M,3) triangle list. The face
// normal is the normalised cross product of two triangle edges; the vertex
// normal accumulates the unnormalised cross products of all incident faces
// (so larger faces weigh more) before normalising. Degenerate faces and
// unreferenced vertices yield zero normals.
func Compute(points []float64, tris []int) (vertex, face []float64) {
	n := len(points) / 3
	m := len(tris) / 3

	face = make([]float64, 3*m)
	acc := make([]mgl64.Vec3, n)

	for i := 0; i < m; i++ {
		ia, ib, ic := tris[3*i], tris[3*i+1], tris[3*i+2]
		a := vec(points, ia)
		b := vec(points, ib)
		c := vec(points, ic)

		cross := b.Sub(a).Cross(c.Sub(a))
		fn := safeNormalize(cross)
		face[3*i], face[3*i+1], face[3*i+2] = fn.X(), fn.Y(), fn.Z()

		acc[ia] = acc[ia].Add(cross)
		acc[ib] = acc[ib].Add(cross)
		acc[ic] = acc[ic].Add(cross)
	}

	vertex = make([]float64, 3*n)
	for i := 0; i < n; i++ {
		vn := safeNormalize(acc[i])
		vertex[3*i], vertex[3*i+1], vertex[3*i+2] = vn.X(), vn.Y(), vn.Z()
	}
	return vertex, face
}

func vec(points []float64, i int) mgl64.Vec3 {
	return mgl64.Vec3{points[3*i], points[3*i+1], points[3*i+2]}
}

// safeNormalize returns the unit vector, or the zero vector when the input
// has no length to normalise.
func safeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	if v.Len() == 0 {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}
