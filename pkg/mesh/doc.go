// Package mesh defines the TriMesh type: a point cloud with connectivity
// given by a triangle list. Meshes are never mutated after construction;
// every transformation returns a new, consistent instance.
package mesh
